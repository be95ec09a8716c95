// Package bitcoin reads blocks from a btcd-compatible node.
package bitcoin

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/safe"
)

// Source fetches blocks by height.
type Source struct {
	rpc RPCClient
}

func NewSource(rpc RPCClient) (*Source, error) {
	if rpc == nil {
		return nil, errors.New("rpc client is required")
	}
	return &Source{rpc: rpc}, nil
}

// LatestHeight returns the height of the node's best block.
func (s *Source) LatestHeight(ctx context.Context) (uint32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	height, err := safe.Uint32(count)
	if err != nil {
		return 0, fmt.Errorf("block count: %w", err)
	}
	return height, nil
}

// FetchBlock retrieves the block the node has at height.
func (s *Source) FetchBlock(ctx context.Context, height uint32) (*model.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hash, err := s.rpc.GetBlockHash(int64(height))
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	return s.fetch(ctx, hash)
}

// FetchBlockByHash retrieves a block by its digest.
func (s *Source) FetchBlockByHash(ctx context.Context, hash chainhash.Hash) (*model.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.fetch(ctx, &hash)
}

func (s *Source) fetch(_ context.Context, hash *chainhash.Hash) (*model.Block, error) {
	msg, err := s.rpc.GetBlock(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	if msg == nil {
		return nil, fmt.Errorf("%w: block %s", model.ErrNotFound, hash)
	}
	block := model.BlockFromMsgBlock(msg)
	if got := block.Hash(); got != *hash {
		return nil, fmt.Errorf("%w: node returned block %s for %s", model.ErrValidation, got, hash)
	}
	return block, nil
}
