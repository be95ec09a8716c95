package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/safe"
)

// ErrCheckpointMismatch is returned when a block contradicts a checkpoint.
var ErrCheckpointMismatch = fmt.Errorf("%w: checkpoint mismatch", model.ErrValidation)

// Checkpoints is a read-mostly set of (chain, height) pins.
type Checkpoints struct {
	mu      sync.RWMutex
	byChain map[string]map[uint32]model.Checkpoint
}

func NewCheckpoints() *Checkpoints {
	return &Checkpoints{byChain: make(map[string]map[uint32]model.Checkpoint)}
}

// Add registers cp. Re-adding an identical checkpoint is a no-op; a different
// one at the same (chain, height) is a conflict.
func (c *Checkpoints) Add(cp model.Checkpoint) error {
	if cp.Chain == "" {
		return fmt.Errorf("%w: checkpoint chain is required", model.ErrValidation)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	heights, ok := c.byChain[cp.Chain]
	if !ok {
		heights = make(map[uint32]model.Checkpoint)
		c.byChain[cp.Chain] = heights
	}
	if existing, ok := heights[cp.Height]; ok {
		if existing.Hash == cp.Hash && sameOutputs(existing.Outputs, cp.Outputs) {
			return nil
		}
		return fmt.Errorf("%w: %s conflicts with %s", model.ErrUniquenessConflict, cp, existing)
	}
	heights[cp.Height] = cp
	return nil
}

// At returns the checkpoint pinned at height, if any.
func (c *Checkpoints) At(chain string, height uint32) (model.Checkpoint, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cp, ok := c.byChain[chain][height]
	return cp, ok
}

// Check rejects hash when a checkpoint at height names another block.
func (c *Checkpoints) Check(chain string, height uint32, hash chainhash.Hash) error {
	cp, ok := c.At(chain, height)
	if !ok || cp.Hash == hash {
		return nil
	}
	return fmt.Errorf("%w: block %s at height %d, expected %s", ErrCheckpointMismatch, hash, height, cp.Hash)
}

// CheckOutputs rejects an unspent-output count that contradicts the checkpoint at height.
func (c *Checkpoints) CheckOutputs(chain string, height uint32, outputs uint64) error {
	cp, ok := c.At(chain, height)
	if !ok || cp.Outputs == nil || *cp.Outputs == outputs {
		return nil
	}
	return fmt.Errorf("%w: %d unspent outputs at height %d, expected %d", ErrCheckpointMismatch, outputs, height, *cp.Outputs)
}

// List returns the checkpoints of chain ordered by height.
func (c *Checkpoints) List(chain string) []model.Checkpoint {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Checkpoint, 0, len(c.byChain[chain]))
	for _, cp := range c.byChain[chain] {
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Height < out[j].Height })
	return out
}

// CheckpointsFromParams converts the checkpoints compiled into btcd network parameters.
func CheckpointsFromParams(chain string, p *chaincfg.Params) []model.Checkpoint {
	out := make([]model.Checkpoint, 0, len(p.Checkpoints))
	for _, cp := range p.Checkpoints {
		height, err := safe.Uint32(cp.Height)
		if err != nil || cp.Hash == nil {
			continue
		}
		out = append(out, model.Checkpoint{Chain: chain, Height: height, Hash: *cp.Hash})
	}
	return out
}

func sameOutputs(a, b *uint64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
