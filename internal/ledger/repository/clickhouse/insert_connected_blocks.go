package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

const insertConnectedBlocksQuery = `
INSERT INTO ledger_connected_blocks (
	chain,
	hash,
	parent_hash,
	height,
	aggregate_work,
	txid_root_id,
	txid_root_digest,
	txid_root_size,
	contract_root_id,
	contract_root_digest,
	contract_root_size
) VALUES`

// InsertConnectedBlocks stores connection records.
func (r *Repository) InsertConnectedBlocks(ctx context.Context, chain string, infos []model.ConnectedBlockInfo) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_connected_blocks", chain, err, start)
	}()

	if len(infos) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertConnectedBlocksQuery)
	if err != nil {
		return fmt.Errorf("prepare connected blocks batch: %w", err)
	}

	for _, info := range infos {
		if err = batch.Append(
			chain,
			info.Hash.String(),
			info.Parent.String(),
			info.Height,
			info.Work,
			info.TxIDRoot.ID,
			info.TxIDRoot.Digest.String(),
			info.TxIDRoot.Size,
			info.ContractRoot.ID,
			info.ContractRoot.Digest.String(),
			info.ContractRoot.Size,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append connected block: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert connected blocks: %w", err)
	}
	return nil
}
