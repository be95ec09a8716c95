package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Checkpoint pins the block expected at a height. Outputs, when set, is the
// expected number of unspent outputs after that block.
type Checkpoint struct {
	Chain   string
	Height  uint32
	Hash    chainhash.Hash
	Outputs *uint64
}

func (c Checkpoint) String() string {
	return fmt.Sprintf("%s %d: %s", c.Chain, c.Height, c.Hash)
}
