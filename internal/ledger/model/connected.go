package model

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Root points at a trie root node and records its digest.
type Root struct {
	ID     uint64
	Digest chainhash.Hash
	Size   uint64
}

// ConnectedBlockInfo records where a block sits in the chain graph and the
// ledger state after it.
type ConnectedBlockInfo struct {
	Hash         chainhash.Hash
	Parent       chainhash.Hash
	Height       uint32
	Work         *big.Int
	TxIDRoot     Root
	ContractRoot Root
	// Seq is the arrival order of the record among the chain's connections.
	Seq uint64
	// NodeBase is the highest trie node ID allocated before the block was
	// applied. Every node the block created has a larger ID.
	NodeBase uint64
}

// IsGenesis reports whether the record has no parent.
func (i ConnectedBlockInfo) IsGenesis() bool {
	return i.Height == 0
}

// Validate checks height and work bounds, and the link to parent when given.
func (i ConnectedBlockInfo) Validate(parent *ConnectedBlockInfo) error {
	if i.Work == nil || i.Work.Sign() <= 0 {
		return fmt.Errorf("%w: block %s aggregate work must be at least 1", ErrValidation, i.Hash)
	}
	if parent == nil {
		if i.Height != 0 {
			return fmt.Errorf("%w: block %s has height %d without parent", ErrValidation, i.Hash, i.Height)
		}
		return nil
	}
	if i.Parent != parent.Hash {
		return fmt.Errorf("%w: block %s parent %s, got record for %s", ErrStructuralInvariant, i.Hash, i.Parent, parent.Hash)
	}
	if i.Height != parent.Height+1 {
		return fmt.Errorf("%w: block %s height %d, parent height %d", ErrStructuralInvariant, i.Hash, i.Height, parent.Height)
	}
	if i.Work.Cmp(parent.Work) <= 0 {
		return fmt.Errorf("%w: block %s work %s does not exceed parent work %s", ErrStructuralInvariant, i.Hash, i.Work, parent.Work)
	}
	return nil
}
