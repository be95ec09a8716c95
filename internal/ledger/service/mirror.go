package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/patricia"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/batcher"
	"go.uber.org/zap"
)

// ClickhouseMirror copies connected blocks into the relational store in
// batches. The connection record of a block is written after every other
// row of the batch, so a mirrored record implies its rows are present.
type ClickhouseMirror struct {
	repo         ClickhouseRepository
	store        BlockStore
	chain        string
	metrics      FollowerMetrics
	logger       *zap.Logger
	blockBatcher *batcher.Batcher[ConnectedBlock]
}

func NewClickhouseMirror(
	repo ClickhouseRepository,
	store BlockStore,
	chainName string,
	metrics FollowerMetrics,
	logger *zap.Logger,
) (*ClickhouseMirror, error) {
	if repo == nil {
		return nil, errors.New("mirror repository is required")
	}
	if store == nil {
		return nil, errors.New("mirror block store is required")
	}
	if metrics == nil {
		return nil, errors.New("mirror metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &ClickhouseMirror{
		repo:    repo,
		store:   store,
		chain:   chainName,
		metrics: metrics,
		logger:  logger.Named("mirror").With(zap.String("chain", chainName)),
	}
	m.blockBatcher = batcher.New[ConnectedBlock](
		m.logger.Named("blockBatcher"),
		m.flush,
		batcher.Config{
			FlushSize:     mirrorBatcherCapacity,
			FlushInterval: mirrorBatcherFlushInterval,
			RPS:           mirrorBatcherRPS,
			MaxAttempts:   mirrorFlushAttempts,
			RetryBackoff:  mirrorRetryBackoff,
		},
	)
	m.blockBatcher.OnDrop(m.dropped)
	return m, nil
}

// dropped reports blocks the mirror gave up on. Resync finds their missing
// connection records on the next start and queues them again.
func (m *ClickhouseMirror) dropped(batch []ConnectedBlock, err error) {
	if len(batch) == 0 {
		return
	}
	m.logger.Error("mirror batch dropped",
		zap.Error(err),
		zap.Int("blocks", len(batch)),
		zap.Uint32("from_height", batch[0].Info.Height),
		zap.Uint32("to_height", batch[len(batch)-1].Info.Height),
	)
}

func (m *ClickhouseMirror) Start(ctx context.Context) {
	m.blockBatcher.Start(ctx)
}

func (m *ClickhouseMirror) Stop() {
	m.blockBatcher.Stop()
	stats := m.blockBatcher.Stats()
	m.logger.Info("mirror stopped", zap.Uint64("mirrored", stats.Flushed), zap.Uint64("dropped", stats.Dropped))
}

func (m *ClickhouseMirror) WriteBlock(ctx context.Context, b ConnectedBlock) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.blockBatcher.Add(ctx, b)
}

// Resync queues every best-chain block whose connection record is missing
// from the relational store, oldest first. Heights up to the highest
// mirrored one are compared in windows, so gaps left by dropped batches are
// filled too. Trie nodes are rebuilt from the roots of each queued block.
func (m *ClickhouseMirror) Resync(ctx context.Context, best model.ConnectedBlockInfo) (int, error) {
	var (
		top       uint32
		anyMirror bool
	)
	mirrored, err := m.repo.MaxConnectedHeight(ctx, m.chain)
	switch {
	case err == nil:
		top, anyMirror = mirrored, true
	case !errors.Is(err, model.ErrNotFound):
		return 0, fmt.Errorf("max mirrored height: %w", err)
	}

	var (
		pending []model.ConnectedBlockInfo
		have    map[chainhash.Hash]struct{}
		low     uint32
	)
	for info := best; ; {
		if anyMirror && info.Height <= top && (have == nil || info.Height < low) {
			low = 0
			if info.Height >= resyncWindow {
				low = info.Height - resyncWindow + 1
			}
			if have, err = m.repo.MirroredBlocks(ctx, m.chain, low, info.Height); err != nil {
				return 0, fmt.Errorf("mirrored blocks %d-%d: %w", low, info.Height, err)
			}
		}
		if _, ok := have[info.Hash]; !ok {
			pending = append(pending, info)
		}
		if info.IsGenesis() {
			break
		}
		parent := info.Parent
		if info, err = m.store.ConnectedInfo(ctx, parent); err != nil {
			return 0, fmt.Errorf("load connected block %s: %w", parent, err)
		}
	}
	slices.Reverse(pending)

	for i, info := range pending {
		b, err := m.store.Block(ctx, info.Hash)
		if err != nil {
			return i, fmt.Errorf("load block %s: %w", info.Hash, err)
		}
		nodes, err := patricia.Newer(m.store, patricia.NodeID(info.NodeBase),
			patricia.NodeID(info.TxIDRoot.ID), patricia.NodeID(info.ContractRoot.ID))
		if err != nil {
			return i, fmt.Errorf("load trie nodes of %s: %w", info.Hash, err)
		}
		if err := m.WriteBlock(ctx, ConnectedBlock{Block: b, Info: info, Nodes: nodes}); err != nil {
			return i, err
		}
	}
	return len(pending), nil
}

func (m *ClickhouseMirror) flush(ctx context.Context, connected []ConnectedBlock) (err error) {
	defer func() {
		m.metrics.ObserveMirror(err)
	}()

	blocks := make([]*model.Block, 0, len(connected))
	infos := make([]model.ConnectedBlockInfo, 0, len(connected))
	txs := make([]*model.Transaction, 0, len(connected))
	nodes := make([]*patricia.Node, 0, len(connected))

	for _, c := range connected {
		blocks = append(blocks, c.Block)
		infos = append(infos, c.Info)
		for _, bt := range c.Block.Transactions() {
			txs = append(txs, bt.Tx)
		}
		if len(txs) >= transactionFlushThreshold {
			if err = m.insertTransactions(ctx, txs); err != nil {
				return err
			}
			txs = txs[:0]
		}
		nodes = append(nodes, c.Nodes...)
		if len(nodes) >= nodeFlushThreshold {
			if err = m.repo.InsertPatriciaNodes(ctx, m.chain, nodes); err != nil {
				return err
			}
			m.logger.Debug("InsertPatriciaNodes", zap.Int("count", len(nodes)))
			nodes = nodes[:0]
		}
	}

	if err = m.insertTransactions(ctx, txs); err != nil {
		return err
	}
	if err = m.repo.InsertPatriciaNodes(ctx, m.chain, nodes); err != nil {
		return err
	}
	if err = m.repo.InsertBlockTransactions(ctx, m.chain, blocks); err != nil {
		return err
	}
	if err = m.repo.InsertBlocks(ctx, m.chain, blocks); err != nil {
		return err
	}
	return m.repo.InsertConnectedBlocks(ctx, m.chain, infos)
}

func (m *ClickhouseMirror) insertTransactions(ctx context.Context, txs []*model.Transaction) error {
	if err := m.repo.InsertTransactions(ctx, m.chain, txs); err != nil {
		return err
	}
	if err := m.repo.InsertInputs(ctx, m.chain, txs); err != nil {
		return err
	}
	if err := m.repo.InsertOutputs(ctx, m.chain, txs); err != nil {
		return err
	}
	m.logger.Debug("InsertTransactions", zap.Int("count", len(txs)))
	return nil
}
