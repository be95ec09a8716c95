package transport

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/patricia"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainView interface {
		Best() (model.ConnectedBlockInfo, bool)
		Tips() []model.ConnectedBlockInfo
		Info(hash chainhash.Hash) (model.ConnectedBlockInfo, bool)
	}
	BlockStore interface {
		Node(id patricia.NodeID) (*patricia.Node, error)
		Block(ctx context.Context, hash chainhash.Hash) (*model.Block, error)
	}
)
