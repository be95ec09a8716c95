package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

const insertTransactionsQuery = `
INSERT INTO ledger_transactions (
	chain,
	txid,
	format,
	version,
	lock_time,
	reference_height,
	input_count,
	output_count
) VALUES`

// InsertTransactions stores transaction rows.
func (r *Repository) InsertTransactions(ctx context.Context, chain string, txs []*model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", chain, err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			chain,
			tx.Hash().String(),
			tx.Format(),
			tx.Version(),
			uint32(tx.LockTime()),
			tx.ReferenceHeight(),
			uint32(len(tx.Inputs())),
			uint32(len(tx.Outputs())),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
