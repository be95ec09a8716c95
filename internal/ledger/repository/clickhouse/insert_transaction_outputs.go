package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

const insertOutputsQuery = `
INSERT INTO ledger_outputs (
	chain,
	txid,
	position,
	amount,
	contract
) VALUES`

// InsertOutputs stores the outputs of txs.
func (r *Repository) InsertOutputs(ctx context.Context, chain string, txs []*model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_outputs", chain, err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertOutputsQuery)
	if err != nil {
		return fmt.Errorf("prepare outputs batch: %w", err)
	}

	for _, tx := range txs {
		txid := tx.Hash().String()
		for _, out := range tx.Outputs() {
			if err = batch.Append(chain, txid, out.Offset, out.Amount, string(out.Contract)); err != nil {
				_ = batch.Abort()
				return fmt.Errorf("append output: %w", err)
			}
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert outputs: %w", err)
	}
	return nil
}
