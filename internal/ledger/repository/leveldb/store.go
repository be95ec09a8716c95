// Package leveldb persists connected blocks, trie nodes and outputs of one
// chain in a LevelDB database. Every block connection is a single batch.
package leveldb

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/chain"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/patricia"
	lru "github.com/hashicorp/golang-lru"
	"github.com/syndtr/goleveldb/leveldb"
	ldbErrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
	"go.uber.org/zap"
)

const (
	nodePrefix      byte = 'n'
	connectedPrefix byte = 'c'
	blockPrefix     byte = 'b'
	outputPrefix    byte = 'o'

	// DefaultCacheSize is the number of decoded trie nodes kept in memory.
	DefaultCacheSize = 1 << 16
)

var (
	chainKey      = []byte("m/chain")
	lastNodeIDKey = []byte("m/last-node-id")

	defaultOptions = opt.Options{
		Compression:        opt.SnappyCompression,
		BlockCacheCapacity: 64 * opt.MiB,
		WriteBuffer:        32 * opt.MiB,
	}
)

// Store implements the connector's storage on LevelDB.
type Store struct {
	db      *leveldb.DB
	nodes   *lru.Cache
	chain   string
	metrics Metrics

	mu     sync.Mutex
	lastID uint64
}

// Open opens or creates the database at path. A corrupted database is
// recovered before use.
func Open(path, chainName string, cacheSize int, metrics Metrics, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	options := defaultOptions
	db, err := leveldb.OpenFile(path, &options)
	if ldbErrors.IsCorrupted(err) {
		logger.Warn("leveldb corruption detected, recovering", zap.String("path", path), zap.Error(err))
		db, err = leveldb.RecoverFile(path, &options)
	}
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", path, err)
	}
	s, err := newStore(db, chainName, cacheSize, metrics)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// OpenMemory opens a store backed by memory only.
func OpenMemory(chainName string, metrics Metrics) (*Store, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("open memory leveldb: %w", err)
	}
	return newStore(db, chainName, DefaultCacheSize, metrics)
}

func newStore(db *leveldb.DB, chainName string, cacheSize int, metrics Metrics) (*Store, error) {
	if chainName == "" {
		return nil, errors.New("leveldb store chain is required")
	}
	if metrics == nil {
		return nil, errors.New("leveldb store metrics is required")
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("node cache: %w", err)
	}

	stored, err := db.Get(chainKey, nil)
	switch {
	case errors.Is(err, leveldb.ErrNotFound):
		if err := db.Put(chainKey, []byte(chainName), &opt.WriteOptions{Sync: true}); err != nil {
			return nil, fmt.Errorf("write chain marker: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("read chain marker: %w", err)
	case string(stored) != chainName:
		return nil, fmt.Errorf("%w: store belongs to chain %q, not %q", model.ErrValidation, stored, chainName)
	}

	s := &Store{db: db, nodes: cache, chain: chainName, metrics: metrics}
	last, err := s.readLastID()
	if err != nil {
		return nil, err
	}
	s.lastID = last
	return s, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Chain returns the chain the store belongs to.
func (s *Store) Chain() string {
	return s.chain
}

// Node loads a published trie node.
func (s *Store) Node(id patricia.NodeID) (*patricia.Node, error) {
	if v, ok := s.nodes.Get(id); ok {
		return v.(*patricia.Node), nil
	}
	data, err := s.db.Get(nodeKey(uint64(id)), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, fmt.Errorf("%w: node %d", model.ErrNotFound, id)
		}
		return nil, fmt.Errorf("get node %d: %w", id, err)
	}
	n, err := patricia.UnmarshalNode(id, data)
	if err != nil {
		return nil, fmt.Errorf("decode node %d: %w", id, err)
	}
	s.nodes.Add(id, n)
	return n, nil
}

// ConnectedInfo loads the connection record of a block.
func (s *Store) ConnectedInfo(ctx context.Context, hash chainhash.Hash) (info model.ConnectedBlockInfo, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe("connected_info", ignoreNotFound(err), start) }()

	if err = ctx.Err(); err != nil {
		return info, err
	}
	data, err := s.get(hashKey(connectedPrefix, hash), "connected block", hash)
	if err != nil {
		return info, err
	}
	return decodeInfo(hash, data)
}

// ConnectedInfos returns every connection record in key order.
func (s *Store) ConnectedInfos(ctx context.Context) (infos []model.ConnectedBlockInfo, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe("connected_infos", err, start) }()

	it := s.db.NewIterator(util.BytesPrefix([]byte{connectedPrefix}), nil)
	defer it.Release()
	for it.Next() {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		var hash chainhash.Hash
		copy(hash[:], it.Key()[1:])
		info, err := decodeInfo(hash, append([]byte(nil), it.Value()...))
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	if err = it.Error(); err != nil {
		return nil, fmt.Errorf("iterate connected blocks: %w", err)
	}
	return infos, nil
}

// Block loads a stored block with its transactions.
func (s *Store) Block(ctx context.Context, hash chainhash.Hash) (b *model.Block, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe("block", ignoreNotFound(err), start) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.get(hashKey(blockPrefix, hash), "block", hash)
	if err != nil {
		return nil, err
	}
	b, err = decodeBlock(data)
	if err != nil {
		return nil, fmt.Errorf("decode block %s: %w", hash, err)
	}
	return b, nil
}

// Output loads an output created by any connected block.
func (s *Store) Output(ctx context.Context, op model.OutPoint) (out model.Output, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe("output", ignoreNotFound(err), start) }()

	if err = ctx.Err(); err != nil {
		return out, err
	}
	data, err := s.db.Get(outputKey(op), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return out, fmt.Errorf("%w: output %s", model.ErrNotFound, op)
		}
		return out, fmt.Errorf("get output %s: %w", op, err)
	}
	return decodeOutput(op.Index, data)
}

// LastNodeID returns the highest node ID ever committed.
func (s *Store) LastNodeID() patricia.NodeID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return patricia.NodeID(s.lastID)
}

// Commit writes one block connection in a single synced batch.
func (s *Store) Commit(ctx context.Context, c chain.Commit) (err error) {
	start := time.Now()
	defer func() { s.metrics.Observe("commit", err, start) }()

	if err = ctx.Err(); err != nil {
		return err
	}
	if c.Chain != s.chain {
		return fmt.Errorf("%w: commit for chain %q into store of %q", model.ErrValidation, c.Chain, s.chain)
	}

	batch := new(leveldb.Batch)
	for _, n := range c.Nodes {
		data, err := patricia.MarshalNode(n)
		if err != nil {
			return fmt.Errorf("encode node %d: %w", n.ID(), err)
		}
		batch.Put(nodeKey(uint64(n.ID())), data)
	}
	for _, o := range c.Outputs {
		data, err := encodeOutput(o.Output)
		if err != nil {
			return fmt.Errorf("encode output %s: %w", o.OutPoint, err)
		}
		batch.Put(outputKey(o.OutPoint), data)
	}
	block, err := encodeBlock(c.Block)
	if err != nil {
		return fmt.Errorf("encode block %s: %w", c.Info.Hash, err)
	}
	batch.Put(hashKey(blockPrefix, c.Info.Hash), block)
	info, err := encodeInfo(c.Info)
	if err != nil {
		return fmt.Errorf("encode connected block %s: %w", c.Info.Hash, err)
	}
	batch.Put(hashKey(connectedPrefix, c.Info.Hash), info)

	s.mu.Lock()
	defer s.mu.Unlock()

	last := s.lastID
	if uint64(c.LastID) > last {
		last = uint64(c.LastID)
	}
	var lastBuf [8]byte
	binary.BigEndian.PutUint64(lastBuf[:], last)
	batch.Put(lastNodeIDKey, lastBuf[:])

	if err = s.db.Write(batch, &opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("write batch for block %s: %w", c.Info.Hash, err)
	}
	s.lastID = last
	for _, n := range c.Nodes {
		s.nodes.Add(n.ID(), n)
	}
	return nil
}

func (s *Store) get(key []byte, what string, hash chainhash.Hash) ([]byte, error) {
	data, err := s.db.Get(key, nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s %s", model.ErrNotFound, what, hash)
		}
		return nil, fmt.Errorf("get %s %s: %w", what, hash, err)
	}
	return data, nil
}

func (s *Store) readLastID() (uint64, error) {
	data, err := s.db.Get(lastNodeIDKey, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read last node id: %w", err)
	}
	if len(data) != 8 {
		return 0, fmt.Errorf("%w: last node id has %d bytes", model.ErrStructuralInvariant, len(data))
	}
	return binary.BigEndian.Uint64(data), nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return nil
	}
	return err
}
