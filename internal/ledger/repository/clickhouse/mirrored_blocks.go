package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const mirroredBlocksQuery = `
SELECT DISTINCT hash
FROM ledger_connected_blocks
WHERE chain = ? AND height >= ? AND height <= ?`

// MirroredBlocks returns the hashes of the connection records of chain with
// a height in [from, to].
func (r *Repository) MirroredBlocks(ctx context.Context, chain string, from, to uint32) (map[chainhash.Hash]struct{}, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("mirrored_blocks", chain, err, start)
	}()

	rows, err := r.conn.Query(ctx, mirroredBlocksQuery, chain, from, to)
	if err != nil {
		return nil, fmt.Errorf("query mirrored blocks: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	hashes := make(map[chainhash.Hash]struct{})
	for rows.Next() {
		var s string
		if err = rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan mirrored block: %w", err)
		}
		h, parseErr := chainhash.NewHashFromStr(s)
		if parseErr != nil {
			err = fmt.Errorf("parse mirrored block hash %q: %w", s, parseErr)
			return nil, err
		}
		hashes[*h] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("read mirrored blocks: %w", err)
	}
	return hashes, nil
}
