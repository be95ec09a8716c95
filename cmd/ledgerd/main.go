// Package main runs the ledger daemon: it follows a bitcoin node into the
// authenticated ledger and serves the connected state over gRPC and HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/chain"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/patricia"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/registry"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/repository/leveldb"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/service"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/metrics"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Network       string `long:"network" env:"LEDGERD_NETWORK" description:"network name (mainnet, testnet3, regtest, signet, simnet)" default:"mainnet"`
	DataDir       string `long:"data-dir" env:"LEDGERD_DATA_DIR" description:"LevelDB directory" default:"data/ledger"`
	NodeCacheSize int    `long:"node-cache-size" env:"LEDGERD_NODE_CACHE_SIZE" description:"trie nodes kept in memory" default:"100000"`
	TieBreak      string `long:"tie-break" env:"LEDGERD_TIE_BREAK" description:"equal-work tip policy (first-seen, lowest-hash)" default:"first-seen"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"LEDGERD_CLICKHOUSE_DSN" description:"ClickHouse DSN; the mirror is disabled when empty"`
	RPCURL        string `long:"rpc-url" env:"LEDGERD_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string `long:"rpc-user" env:"LEDGERD_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword   string `long:"rpc-password" env:"LEDGERD_RPC_PASSWORD" description:"Bitcoin RPC password"`
	ZMQAddr       string `long:"zmq-addr" env:"LEDGERD_ZMQ_ADDR" description:"bitcoind zmqpubhashblock address"`
	Addr          string `long:"addr" env:"LEDGERD_ADDR" description:"gRPC listen address" default:":8000"`
	RestAddr      string `long:"rest-addr" env:"LEDGERD_REST_ADDR" description:"REST and metrics listen address" default:":8001"`
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

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("ledgerd failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	chains, checkpoints, err := registry.Default()
	if err != nil {
		return fmt.Errorf("load chain registry: %w", err)
	}
	c, err := chains.Get(cfg.Network)
	if err != nil {
		return err
	}
	tieBreak, err := chain.ParseTieBreak(cfg.TieBreak)
	if err != nil {
		return err
	}
	logger = logger.With(zap.String("chain", c.Name))

	store, err := leveldb.Open(cfg.DataDir, c.Name, cfg.NodeCacheSize, metrics.NewLevelDBStore(c.Name), logger)
	if err != nil {
		return fmt.Errorf("open ledger store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close ledger store", zap.Error(err))
		}
	}()

	selector := chain.NewSelector(tieBreak)
	infos, err := store.ConnectedInfos(ctx)
	if err != nil {
		return fmt.Errorf("load connected blocks: %w", err)
	}
	if err := selector.Load(infos); err != nil {
		return fmt.Errorf("rebuild chain selection: %w", err)
	}
	if best, ok := selector.Best(); ok {
		logger.Info("ledger loaded", zap.Int("blocks", len(infos)), zap.Uint32("best_height", best.Height), zap.Stringer("best", best.Hash))
	}

	connector, err := chain.NewConnector(
		c,
		store,
		store,
		checkpoints,
		selector,
		patricia.NewAllocator(store.LastNodeID()),
		metrics.NewConnector(c.Name),
		logger,
	)
	if err != nil {
		return err
	}

	rpcClient, err := bitcoin.Dial(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init bitcoin rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	source, err := bitcoin.NewSource(bitcoin.NewObservedClient(rpcClient, metrics.NewRPCClient(c.Name)))
	if err != nil {
		return err
	}

	followerMetrics := metrics.NewFollower(c.Name)
	var mirror service.Mirror
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init clickhouse repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error("failed to close clickhouse repository", zap.Error(err))
			}
		}()
		if err := repo.InsertChains(ctx, chains.All()); err != nil {
			return fmt.Errorf("mirror chains: %w", err)
		}
		if err := repo.InsertCheckpoints(ctx, checkpoints.List(c.Name)); err != nil {
			return fmt.Errorf("mirror checkpoints: %w", err)
		}
		if mirror, err = service.NewClickhouseMirror(repo, store, c.Name, followerMetrics, logger); err != nil {
			return err
		}
	}

	blockSignal, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		return fmt.Errorf("start block signal: %w", err)
	}

	follower, err := service.NewFollowerService(c.Name, source, connector, selector, mirror, followerMetrics, logger, blockSignal)
	if err != nil {
		return err
	}

	if err := startGRPCServer(ctx, cfg.Addr, selector, logger); err != nil {
		return err
	}
	if err := startHTTPServer(ctx, cfg.RestAddr, cfg.Addr, selector, store, logger); err != nil {
		return err
	}

	return follower.Run(ctx)
}
