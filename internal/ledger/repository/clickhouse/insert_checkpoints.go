package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

const insertCheckpointsQuery = `
INSERT INTO ledger_checkpoints (
	chain,
	height,
	hash,
	outputs
) VALUES`

// InsertCheckpoints stores checkpoints; the table keeps one row per (chain, height).
func (r *Repository) InsertCheckpoints(ctx context.Context, checkpoints []model.Checkpoint) error {
	start := time.Now()
	var err error
	defer func() {
		chain := ""
		if len(checkpoints) > 0 {
			chain = checkpoints[0].Chain
		}
		r.metrics.Observe("insert_checkpoints", chain, err, start)
	}()

	if len(checkpoints) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertCheckpointsQuery)
	if err != nil {
		return fmt.Errorf("prepare checkpoints batch: %w", err)
	}

	for _, cp := range checkpoints {
		if err = batch.Append(cp.Chain, cp.Height, cp.Hash.String(), cp.Outputs); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append checkpoint: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert checkpoints: %w", err)
	}
	return nil
}
