package clickhouse

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

const insertChainsQuery = `
INSERT INTO ledger_chains (
	name,
	magic,
	port,
	genesis,
	genesis_hash,
	pubkey_prefix,
	script_prefix,
	secret_prefix,
	testnet
) VALUES`

// InsertChains stores chain definitions.
func (r *Repository) InsertChains(ctx context.Context, chains []model.Chain) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_chains", firstChainName(chains), err, start)
	}()

	if len(chains) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertChainsQuery)
	if err != nil {
		return fmt.Errorf("prepare chains batch: %w", err)
	}

	for _, c := range chains {
		if err = batch.Append(
			c.Name,
			binary.LittleEndian.Uint32(c.Magic[:]),
			c.Port,
			hex.EncodeToString(c.Genesis),
			c.GenesisHash.String(),
			c.PubKeyHashPrefix,
			c.ScriptHashPrefix,
			c.SecretPrefix,
			c.Testnet,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append chain: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert chains: %w", err)
	}
	return nil
}

func firstChainName(chains []model.Chain) string {
	if len(chains) == 0 {
		return ""
	}
	return chains[0].Name
}
