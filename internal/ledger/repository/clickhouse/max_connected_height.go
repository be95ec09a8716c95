package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

const maxConnectedHeightQuery = `
SELECT count() AS blocks, max(height) AS max_height
FROM ledger_connected_blocks
WHERE chain = ?`

// MaxConnectedHeight returns the highest mirrored connected height of chain.
func (r *Repository) MaxConnectedHeight(ctx context.Context, chain string) (uint32, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_connected_height", chain, err, start)
	}()

	rows, err := r.conn.Query(ctx, maxConnectedHeightQuery, chain)
	if err != nil {
		return 0, fmt.Errorf("query max connected height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, fmt.Errorf("read max connected height: %w", err)
		}
		return 0, fmt.Errorf("%w: max connected height of %s", model.ErrNotFound, chain)
	}

	var (
		count  uint64
		height uint32
	)
	if err = rows.Scan(&count, &height); err != nil {
		return 0, fmt.Errorf("scan max connected height: %w", err)
	}
	if count == 0 {
		return 0, fmt.Errorf("%w: no connected blocks mirrored for %s", model.ErrNotFound, chain)
	}
	return height, nil
}
