package chain

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/patricia"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		patricia.NodeReader
		ConnectedInfo(ctx context.Context, hash chainhash.Hash) (model.ConnectedBlockInfo, error)
		Commit(ctx context.Context, c Commit) error
	}
	OutputResolver interface {
		Output(ctx context.Context, op model.OutPoint) (model.Output, error)
	}
	Checkpoints interface {
		Check(chain string, height uint32, hash chainhash.Hash) error
		CheckOutputs(chain string, height uint32, outputs uint64) error
	}
	Metrics interface {
		ObserveConnect(err error, txs int, started time.Time)
		ObserveReorg(depth int)
		ObserveBest(height uint32)
	}
)

// Created is an output made by a connected block.
type Created struct {
	OutPoint model.OutPoint
	Output   model.Output
}

// Commit is everything one block connection writes. Stores apply it atomically.
type Commit struct {
	Chain   string
	Block   *model.Block
	Info    model.ConnectedBlockInfo
	Nodes   []*patricia.Node
	Outputs []Created
	LastID  patricia.NodeID
}
