package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

const insertBlocksQuery = `
INSERT INTO ledger_blocks (
	chain,
	hash,
	format,
	version,
	parent_hash,
	merkle_root,
	timestamp,
	bits,
	nonce,
	tx_count
) VALUES`

const insertBlockTransactionsQuery = `
INSERT INTO ledger_block_transactions (
	chain,
	block_hash,
	position,
	txid
) VALUES`

// InsertBlocks stores block header rows.
func (r *Repository) InsertBlocks(ctx context.Context, chain string, blocks []*model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", chain, err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlocksQuery)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, b := range blocks {
		header := b.Header()
		if err = batch.Append(
			chain,
			b.Hash().String(),
			b.Format(),
			header.Version,
			header.PrevBlock.String(),
			header.MerkleRoot.String(),
			header.Timestamp.UTC(),
			header.Bits,
			header.Nonce,
			uint32(b.TransactionCount()),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append block: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}

// InsertBlockTransactions stores the ordered membership of transactions in blocks.
func (r *Repository) InsertBlockTransactions(ctx context.Context, chain string, blocks []*model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_block_transactions", chain, err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlockTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare block transactions batch: %w", err)
	}

	for _, b := range blocks {
		hash := b.Hash().String()
		for _, bt := range b.Transactions() {
			if err = batch.Append(chain, hash, bt.Offset, bt.Tx.Hash().String()); err != nil {
				_ = batch.Abort()
				return fmt.Errorf("append block transaction: %w", err)
			}
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block transactions: %w", err)
	}
	return nil
}
