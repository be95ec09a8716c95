package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/chain"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/patricia"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// ConnectedBlock is a freshly connected block with the trie nodes it created.
type ConnectedBlock struct {
	Block *model.Block
	Info  model.ConnectedBlockInfo
	Nodes []*patricia.Node
}

type (
	BlockSource interface {
		LatestHeight(ctx context.Context) (uint32, error)
		FetchBlock(ctx context.Context, height uint32) (*model.Block, error)
		FetchBlockByHash(ctx context.Context, hash chainhash.Hash) (*model.Block, error)
	}
	Connector interface {
		Connect(ctx context.Context, block *model.Block) (*chain.Result, error)
	}
	ChainView interface {
		Best() (model.ConnectedBlockInfo, bool)
		Info(hash chainhash.Hash) (model.ConnectedBlockInfo, bool)
	}
	Mirror interface {
		Start(ctx context.Context)
		Stop()
		WriteBlock(ctx context.Context, b ConnectedBlock) error
		Resync(ctx context.Context, best model.ConnectedBlockInfo) (int, error)
	}
	BlockStore interface {
		Node(id patricia.NodeID) (*patricia.Node, error)
		ConnectedInfo(ctx context.Context, hash chainhash.Hash) (model.ConnectedBlockInfo, error)
		Block(ctx context.Context, hash chainhash.Hash) (*model.Block, error)
	}
	ClickhouseRepository interface {
		InsertBlocks(ctx context.Context, chain string, blocks []*model.Block) error
		InsertBlockTransactions(ctx context.Context, chain string, blocks []*model.Block) error
		InsertTransactions(ctx context.Context, chain string, txs []*model.Transaction) error
		InsertInputs(ctx context.Context, chain string, txs []*model.Transaction) error
		InsertOutputs(ctx context.Context, chain string, txs []*model.Transaction) error
		InsertConnectedBlocks(ctx context.Context, chain string, infos []model.ConnectedBlockInfo) error
		InsertPatriciaNodes(ctx context.Context, chain string, nodes []*patricia.Node) error
		MaxConnectedHeight(ctx context.Context, chain string) (uint32, error)
		MirroredBlocks(ctx context.Context, chain string, from, to uint32) (map[chainhash.Hash]struct{}, error)
	}
	FollowerMetrics interface {
		ObservePoll(err error, blocks int, started time.Time)
		ObserveFetch(err error, height uint32, started time.Time)
		ObserveMirror(err error)
	}
	VerifierMetrics interface {
		ObserveVerify(err error, started time.Time)
	}
)
