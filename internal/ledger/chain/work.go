package chain

import (
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
)

// Work returns the proof-of-work a block with the given compact target contributes.
func Work(bits uint32) *big.Int {
	return blockchain.CalcWork(bits)
}
