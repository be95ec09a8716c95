// Package main verifies blocks stored in a ledger directory against the
// roots their connection records claim.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/chain"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/repository/leveldb"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/service"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/metrics"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Network string `long:"network" env:"LEDGER_VERIFY_NETWORK" description:"network name" default:"mainnet"`
	DataDir string `long:"data-dir" env:"LEDGER_VERIFY_DATA_DIR" description:"LevelDB directory" default:"data/ledger"`
	Block   string `long:"block" description:"block digest to start from; the best block when empty"`
	Depth   uint32 `long:"depth" description:"number of blocks to verify walking toward genesis" default:"1"`
	Dump    bool   `long:"dump" description:"dump every verification report"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("ledger verification failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	store, err := leveldb.Open(cfg.DataDir, cfg.Network, 0, metrics.NewLevelDBStore(cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("open ledger store: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	start, err := startHash(ctx, cfg.Block, store)
	if err != nil {
		return err
	}

	verifier, err := service.NewVerifierService(store, metrics.NewVerifier(cfg.Network), logger)
	if err != nil {
		return err
	}

	hash := start
	for i := uint32(0); i < cfg.Depth; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		rep, err := verifier.Verify(ctx, hash)
		if err != nil {
			return fmt.Errorf("verify %s: %w", hash, err)
		}
		if cfg.Dump {
			spew.Fdump(os.Stdout, rep.Info, rep.Block.Header())
		}

		var value btcutil.Amount
		for _, bt := range rep.Block.Transactions() {
			for _, out := range bt.Tx.Outputs() {
				value += btcutil.Amount(out.Amount)
			}
		}
		logger.Info("block verified",
			zap.Stringer("block", hash),
			zap.Uint32("height", rep.Info.Height),
			zap.Int("transactions", rep.Block.TransactionCount()),
			zap.Stringer("output_value", value),
			zap.Stringer("txid_root", rep.TxIDDigest),
			zap.Stringer("contract_root", rep.ContractDigest),
		)

		if rep.Info.IsGenesis() {
			break
		}
		hash = rep.Info.Parent
	}
	return nil
}

func startHash(ctx context.Context, raw string, store *leveldb.Store) (chainhash.Hash, error) {
	if raw != "" {
		h, err := chainhash.NewHashFromStr(raw)
		if err != nil {
			return chainhash.Hash{}, fmt.Errorf("parse block digest: %w", err)
		}
		return *h, nil
	}

	infos, err := store.ConnectedInfos(ctx)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("load connected blocks: %w", err)
	}
	selector := chain.NewSelector(chain.FirstSeen)
	if err := selector.Load(infos); err != nil {
		return chainhash.Hash{}, err
	}
	best, ok := selector.Best()
	if !ok {
		return chainhash.Hash{}, errors.New("ledger has no connected blocks")
	}
	return best.Hash, nil
}
