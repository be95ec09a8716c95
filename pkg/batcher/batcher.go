// Package batcher provides a generic buffered batch processor with rate
// limiting and bounded flush retries.
package batcher

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Config tunes a Batcher.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
	// MaxAttempts bounds the flush attempts per batch. Zero means one.
	MaxAttempts int
	// RetryBackoff is multiplied by the attempt number between retries.
	RetryBackoff time.Duration
}

// Stats counts the items that left the batcher.
type Stats struct {
	Flushed uint64
	Dropped uint64
}

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	onDrop        func([]T, error)
	cfg           Config
	itemsCh       chan T
	rl            ratelimit.Limiter
	logger        *zap.Logger

	flushed atomic.Uint64
	dropped atomic.Uint64

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, cfg Config) *Batcher[T] {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = 1
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		cfg:           cfg,
		itemsCh:       make(chan T, cfg.FlushSize*2),
		rl:            ratelimit.New(cfg.RPS),
		stop:          make(chan struct{}),
	}
}

// OnDrop registers fn to receive every batch given up after MaxAttempts
// failures. It must be called before Start.
func (b *Batcher[T]) OnDrop(fn func(batch []T, err error)) {
	b.onDrop = fn
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop stops the background flushing loop. Items already queued are flushed
// before Stop returns. Stop may be called more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Stats reports how many items were flushed and dropped so far.
func (b *Batcher[T]) Stats() Stats {
	return Stats{Flushed: b.flushed.Load(), Dropped: b.dropped.Load()}
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return context.Canceled
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.FlushSize)

	flush := func() {
		if len(buf) == 0 {
			return
		}
		b.flush(ctx, buf)
		buf = buf[:0]
	}
	add := func(item T) {
		buf = append(buf, item)
		if len(buf) >= b.cfg.FlushSize {
			flush()
		}
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return

		case <-b.stop:
			for drained := false; !drained; {
				select {
				case item := <-b.itemsCh:
					add(item)
				default:
					drained = true
				}
			}
			flush()
			return

		case item := <-b.itemsCh:
			add(item)

		case <-ticker.C:
			flush()
		}
	}
}

func (b *Batcher[T]) flush(ctx context.Context, batch []T) {
	var err error
	for attempt := 1; ; attempt++ {
		b.rl.Take()
		if err = b.flushCallback(ctx, batch); err == nil {
			b.flushed.Add(uint64(len(batch)))
			b.logger.Debug("batch flushed", zap.Int("size", len(batch)), zap.Int("attempt", attempt))
			return
		}
		if attempt >= b.cfg.MaxAttempts || ctx.Err() != nil {
			break
		}
		b.logger.Warn("batch flush failed, retrying", zap.Error(err), zap.Int("attempt", attempt))
		if !b.backoff(ctx, time.Duration(attempt)*b.cfg.RetryBackoff) {
			break
		}
	}

	b.dropped.Add(uint64(len(batch)))
	b.logger.Error("batch not flushed", zap.Error(err), zap.Int("size", len(batch)))
	if b.onDrop != nil {
		b.onDrop(append([]T(nil), batch...), err)
	}
}

// backoff waits d and reports whether retrying still makes sense.
func (b *Batcher[T]) backoff(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
