// Package service runs the long-lived ledger workflows: following a block
// source into the connector and verifying stored blocks.
package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/workerpool"
	"go.uber.org/zap"
)

// FollowerService connects the blocks a source reports above the local best
// block, in height order, and hands every new connection to the mirror.
type FollowerService struct {
	logger        *zap.Logger
	source        BlockSource
	connector     Connector
	view          ChainView
	mirror        Mirror
	metrics       FollowerMetrics
	wait          func(context.Context, time.Duration, <-chan struct{}) error
	sleepDuration time.Duration
	idleDuration  time.Duration
	blockSignal   <-chan struct{}
	workerCount   int
	batchSize     uint32
	maxReorgDepth int
}

// NewFollowerService builds a FollowerService. mirror may be nil when no
// relational mirror is configured.
func NewFollowerService(
	chainName string,
	source BlockSource,
	connector Connector,
	view ChainView,
	mirror Mirror,
	metrics FollowerMetrics,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*FollowerService, error) {
	if source == nil {
		return nil, errors.New("follower block source is required")
	}
	if connector == nil {
		return nil, errors.New("follower connector is required")
	}
	if view == nil {
		return nil, errors.New("follower chain view is required")
	}
	if metrics == nil {
		return nil, errors.New("follower metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &FollowerService{
		logger:        logger.Named("follower").With(zap.String("chain", chainName)),
		source:        source,
		connector:     connector,
		view:          view,
		mirror:        mirror,
		metrics:       metrics,
		wait:          clock.SleepOrSignal,
		sleepDuration: sleepDuration,
		idleDuration:  idleSleepDuration,
		blockSignal:   blockSignal,
		workerCount:   defaultWorkerCount,
		batchSize:     defaultBatchSize,
		maxReorgDepth: defaultMaxReorgDepth,
	}, nil
}

// Run follows the source until the context is canceled.
func (s *FollowerService) Run(ctx context.Context) error {
	if s.mirror != nil {
		s.mirror.Start(ctx)
		defer s.mirror.Stop()

		if best, ok := s.view.Best(); ok {
			n, err := s.mirror.Resync(ctx, best)
			if err != nil {
				s.logger.Warn("mirror resync failed", zap.Error(err))
			} else if n > 0 {
				s.logger.Info("mirror resynced", zap.Int("blocks", n))
			}
		}
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.sleepDuration))
			if sleepErr := s.wait(ctx, s.sleepDuration, nil); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *FollowerService) run(ctx context.Context) (err error) {
	started := time.Now()
	connected := 0
	defer func() {
		s.metrics.ObservePoll(err, connected, started)
	}()

	latest, err := s.source.LatestHeight(ctx)
	if err != nil {
		return fmt.Errorf("latest height: %w", err)
	}

	next := uint32(0)
	if best, ok := s.view.Best(); ok {
		next = best.Height + 1
	}
	if next > latest {
		s.logger.Debug("caught up with source; waiting", zap.Uint32("latest", latest), zap.Duration("sleep", s.idleDuration))
		return s.wait(ctx, s.idleDuration, s.blockSignal)
	}

	count := min(latest-next+1, s.batchSize)
	heights := make([]uint32, count)
	for i := range heights {
		heights[i] = next + uint32(i)
	}

	blocks, err := workerpool.Map(ctx, s.workerCount, heights, s.fetch)
	if err != nil {
		return err
	}

	for _, b := range blocks {
		n, err := s.connect(ctx, b)
		connected += n
		if err != nil {
			return err
		}
	}

	s.logger.Info("connected blocks",
		zap.Uint32("from", heights[0]),
		zap.Uint32("to", heights[len(heights)-1]),
		zap.Int("connected", connected),
		zap.Uint32("latest", latest),
	)
	return nil
}

func (s *FollowerService) fetch(ctx context.Context, height uint32) (*model.Block, error) {
	started := time.Now()
	b, err := s.source.FetchBlock(ctx, height)
	s.metrics.ObserveFetch(err, height, started)
	if err != nil {
		return nil, fmt.Errorf("fetch block %d: %w", height, err)
	}
	return b, nil
}

// connect connects b after any ancestors the source switched to since the
// last poll.
func (s *FollowerService) connect(ctx context.Context, b *model.Block) (int, error) {
	branch, err := s.branch(ctx, b)
	if err != nil {
		return 0, err
	}

	connected := 0
	for _, blk := range branch {
		res, err := s.connector.Connect(ctx, blk)
		if err != nil {
			return connected, fmt.Errorf("connect block %s: %w", blk.Hash(), err)
		}
		if res.Existing {
			continue
		}
		connected++

		if res.Reorg != nil && res.Reorg.Depth() > 0 {
			s.logger.Info("followed source reorganization",
				zap.Stringer("tip", res.Info.Hash),
				zap.Int("detached", len(res.Reorg.Detached)),
				zap.Int("attached", len(res.Reorg.Attached)),
			)
		}

		if s.mirror != nil {
			if err := s.mirror.WriteBlock(ctx, ConnectedBlock{Block: blk, Info: res.Info, Nodes: res.Nodes}); err != nil {
				return connected, fmt.Errorf("mirror block %s: %w", blk.Hash(), err)
			}
		}
	}
	return connected, nil
}

// branch returns b preceded by its unconnected ancestors, oldest first.
func (s *FollowerService) branch(ctx context.Context, b *model.Block) ([]*model.Block, error) {
	branch := []*model.Block{b}
	for tip := b; ; {
		parent := tip.ParentHash()
		if parent == (chainhash.Hash{}) {
			break
		}
		if _, ok := s.view.Info(parent); ok {
			break
		}
		if len(branch) > s.maxReorgDepth {
			return nil, fmt.Errorf("%w: no connected ancestor of %s within %d blocks", model.ErrNotFound, b.Hash(), s.maxReorgDepth)
		}
		p, err := s.source.FetchBlockByHash(ctx, parent)
		if err != nil {
			return nil, fmt.Errorf("fetch ancestor %s: %w", parent, err)
		}
		branch = append(branch, p)
		tip = p
	}
	slices.Reverse(branch)
	return branch, nil
}
