package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

const insertInputsQuery = `
INSERT INTO ledger_inputs (
	chain,
	txid,
	position,
	prev_txid,
	prev_index,
	endorsement,
	sequence,
	resolved_amount
) VALUES`

// InsertInputs stores the inputs of txs. Resolved amounts are written when known.
func (r *Repository) InsertInputs(ctx context.Context, chain string, txs []*model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_inputs", chain, err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertInputsQuery)
	if err != nil {
		return fmt.Errorf("prepare inputs batch: %w", err)
	}

	for _, tx := range txs {
		txid := tx.Hash().String()
		for _, in := range tx.Inputs() {
			var resolved *int64
			if in.Resolved != nil {
				amount := in.Resolved.Amount
				resolved = &amount
			}
			if err = batch.Append(
				chain,
				txid,
				in.Offset,
				in.PrevOut.Hash.String(),
				in.PrevOut.Index,
				string(in.Endorsement),
				in.Sequence,
				resolved,
			); err != nil {
				_ = batch.Abort()
				return fmt.Errorf("append input: %w", err)
			}
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert inputs: %w", err)
	}
	return nil
}
