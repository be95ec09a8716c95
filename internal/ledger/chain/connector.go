package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/index"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/patricia"
	"go.uber.org/zap"
)

// Result is the outcome of one connection attempt.
type Result struct {
	Info     model.ConnectedBlockInfo
	Reorg    *Reorg
	Outputs  []Created
	Nodes    []*patricia.Node
	Existing bool
}

// Connector moves blocks from Unconnected to Connected. Siblings may be
// connected concurrently; attempts for the same block are serialized.
type Connector struct {
	chain       model.Chain
	store       Store
	resolver    OutputResolver
	checkpoints Checkpoints
	selector    *Selector
	alloc       *patricia.Allocator
	metrics     Metrics
	logger      *zap.Logger

	txids     *index.TxIDIndex
	contracts *index.ContractIndex

	mu       sync.Mutex
	inflight map[chainhash.Hash]chan struct{}
}

func NewConnector(
	chain model.Chain,
	store Store,
	resolver OutputResolver,
	checkpoints Checkpoints,
	selector *Selector,
	alloc *patricia.Allocator,
	metrics Metrics,
	logger *zap.Logger,
) (*Connector, error) {
	if store == nil {
		return nil, errors.New("connector store is required")
	}
	if resolver == nil {
		return nil, errors.New("connector output resolver is required")
	}
	if checkpoints == nil {
		return nil, errors.New("connector checkpoints is required")
	}
	if selector == nil {
		return nil, errors.New("connector selector is required")
	}
	if alloc == nil {
		return nil, errors.New("connector allocator is required")
	}
	if metrics == nil {
		return nil, errors.New("connector metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Connector{
		chain:       chain,
		store:       store,
		resolver:    resolver,
		checkpoints: checkpoints,
		selector:    selector,
		alloc:       alloc,
		metrics:     metrics,
		logger:      logger.Named("connector").With(zap.String("chain", chain.Name)),
		txids:       index.NewTxIDIndex(),
		contracts:   index.NewContractIndex(),
		inflight:    make(map[chainhash.Hash]chan struct{}),
	}, nil
}

// Selector returns the best-chain tracker fed by this connector.
func (c *Connector) Selector() *Selector {
	return c.selector
}

// TxIDs returns the txid index bound to the connector's store.
func (c *Connector) TxIDs() *index.TxIDIndex {
	return c.txids
}

// Contracts returns the contract index bound to the connector's store.
func (c *Connector) Contracts() *index.ContractIndex {
	return c.contracts
}

// Connect computes the connection record of block and commits it together
// with the trie nodes and outputs it creates. A failed attempt writes nothing.
func (c *Connector) Connect(ctx context.Context, block *model.Block) (res *Result, err error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveConnect(err, block.TransactionCount(), start)
	}()

	if err = block.Validate(); err != nil {
		return nil, err
	}
	hash := block.Hash()

	release, err := c.acquire(ctx, hash)
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := c.store.ConnectedInfo(ctx, hash)
	switch {
	case err == nil:
		return &Result{Info: existing, Existing: true}, nil
	case !errors.Is(err, model.ErrNotFound):
		return nil, fmt.Errorf("load connected block %s: %w", hash, err)
	}

	parent, err := c.parent(ctx, block)
	if err != nil {
		return nil, err
	}

	info := model.ConnectedBlockInfo{
		Hash:   hash,
		Parent: block.ParentHash(),
		Work:   new(big.Int).Set(Work(block.Bits())),
	}
	txRoot, contractRoot := patricia.NoNode, patricia.NoNode
	if parent != nil {
		info.Height = parent.Height + 1
		info.Work.Add(info.Work, parent.Work)
		txRoot = patricia.NodeID(parent.TxIDRoot.ID)
		contractRoot = patricia.NodeID(parent.ContractRoot.ID)
	} else {
		info.Parent = chainhash.Hash{}
	}

	if err = c.checkpoints.Check(c.chain.Name, info.Height, hash); err != nil {
		return nil, err
	}

	info.NodeBase = uint64(c.alloc.Last())
	s := patricia.NewSession(c.store, c.alloc)
	d, err := c.apply(ctx, s, block, txRoot, contractRoot)
	if err != nil {
		return nil, fmt.Errorf("apply block %s: %w", hash, err)
	}
	txRoot, contractRoot, created := d.txRoot, d.contractRoot, d.created

	if info.TxIDRoot, err = c.root(s, c.txids.Trie(), txRoot); err != nil {
		return nil, err
	}
	if info.ContractRoot, err = c.root(s, c.contracts.Trie(), contractRoot); err != nil {
		return nil, err
	}
	if err = c.checkpoints.CheckOutputs(c.chain.Name, info.Height, info.ContractRoot.Size); err != nil {
		return nil, err
	}
	if err = info.Validate(parent); err != nil {
		return nil, err
	}

	info.Seq = c.selector.NextSeq()
	commit := Commit{
		Chain:   c.chain.Name,
		Block:   block,
		Info:    info,
		Nodes:   s.Reachable(txRoot, contractRoot),
		Outputs: created,
		LastID:  c.alloc.Last(),
	}
	if err = c.store.Commit(ctx, commit); err != nil {
		return nil, fmt.Errorf("commit block %s: %w", hash, err)
	}
	for _, r := range d.resolved {
		if err = r.tx.ResolveInput(r.pos, r.out); err != nil {
			return nil, fmt.Errorf("annotate block %s: %w", hash, err)
		}
	}

	reorg, err := c.selector.Consider(info)
	if err != nil {
		return nil, fmt.Errorf("select block %s: %w", hash, err)
	}
	if reorg != nil {
		c.metrics.ObserveBest(reorg.New.Height)
		if reorg.Depth() > 0 {
			c.metrics.ObserveReorg(reorg.Depth())
			c.logger.Warn("best chain reorganized",
				zap.Stringer("old", reorg.Old.Hash),
				zap.Stringer("new", reorg.New.Hash),
				zap.Int("depth", reorg.Depth()),
			)
		}
	}

	var value btcutil.Amount
	for _, o := range created {
		value += btcutil.Amount(o.Output.Amount)
	}
	c.logger.Debug("block connected",
		zap.Stringer("block", hash),
		zap.Uint32("height", info.Height),
		zap.Int("txs", block.TransactionCount()),
		zap.Int("nodes", len(commit.Nodes)),
		zap.Uint64("utxos", info.ContractRoot.Size),
		zap.Stringer("created_value", value),
	)

	return &Result{
		Info:    info,
		Reorg:   reorg,
		Outputs: created,
		Nodes:   commit.Nodes,
	}, nil
}

func (c *Connector) acquire(ctx context.Context, hash chainhash.Hash) (func(), error) {
	for {
		c.mu.Lock()
		wait, busy := c.inflight[hash]
		if !busy {
			done := make(chan struct{})
			c.inflight[hash] = done
			c.mu.Unlock()
			return func() {
				c.mu.Lock()
				delete(c.inflight, hash)
				c.mu.Unlock()
				close(done)
			}, nil
		}
		c.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-wait:
		}
	}
}

func (c *Connector) parent(ctx context.Context, block *model.Block) (*model.ConnectedBlockInfo, error) {
	hash := block.Hash()
	if hash == c.chain.GenesisHash {
		return nil, nil
	}
	if block.ParentHash() == (chainhash.Hash{}) {
		return nil, fmt.Errorf("%w: block %s has no parent and is not the genesis of %s", model.ErrValidation, hash, c.chain.Name)
	}
	parent, err := c.store.ConnectedInfo(ctx, block.ParentHash())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("%w: parent %s of block %s is not connected", model.ErrNotFound, block.ParentHash(), hash)
		}
		return nil, fmt.Errorf("load parent %s: %w", block.ParentHash(), err)
	}
	return &parent, nil
}

// blockDelta is what applying one block to its parent's roots produced.
// Spent outputs are kept aside and attached to the block's inputs only
// after the connection is committed.
type blockDelta struct {
	txRoot       patricia.NodeID
	contractRoot patricia.NodeID
	created      []Created
	resolved     []resolution
}

type resolution struct {
	tx  *model.Transaction
	pos int
	out model.Output
}

// apply runs the block's deltas against the parent roots: spent outputs leave
// the contract index, then the txid and the new outputs are inserted.
func (c *Connector) apply(
	ctx context.Context,
	s *patricia.Session,
	block *model.Block,
	txRoot, contractRoot patricia.NodeID,
) (blockDelta, error) {
	pending := make(map[model.OutPoint]model.Output)
	d := blockDelta{txRoot: txRoot, contractRoot: contractRoot}

	for _, bt := range block.Transactions() {
		tx := bt.Tx
		txid := tx.Hash()

		for i, in := range tx.Inputs() {
			if in.IsCoinbase() {
				continue
			}
			out, err := c.resolve(ctx, pending, in.PrevOut)
			if err != nil {
				return blockDelta{}, fmt.Errorf("input %d of %s: %w", i, txid, err)
			}
			d.contractRoot, err = c.contracts.Remove(s, d.contractRoot, index.ContractEntry{
				OutPoint: in.PrevOut,
				Amount:   out.Amount,
				Contract: out.Contract,
			})
			if err != nil {
				return blockDelta{}, fmt.Errorf("input %d of %s spends %s: %w", i, txid, in.PrevOut, err)
			}
			d.resolved = append(d.resolved, resolution{tx: tx, pos: i, out: out})
			delete(pending, in.PrevOut)
		}

		var err error
		d.txRoot, err = c.txids.Insert(s, d.txRoot, index.TxIDEntry{TxID: txid})
		if err != nil {
			return blockDelta{}, err
		}

		for _, out := range tx.Outputs() {
			op := model.OutPoint{Hash: txid, Index: out.Offset}
			d.contractRoot, err = c.contracts.Insert(s, d.contractRoot, index.ContractEntry{
				OutPoint: op,
				Amount:   out.Amount,
				Contract: out.Contract,
			})
			if err != nil {
				return blockDelta{}, fmt.Errorf("output %s: %w", op, err)
			}
			pending[op] = out
			d.created = append(d.created, Created{OutPoint: op, Output: out})
		}
	}
	return d, nil
}

func (c *Connector) resolve(ctx context.Context, pending map[model.OutPoint]model.Output, op model.OutPoint) (model.Output, error) {
	if out, ok := pending[op]; ok {
		return out, nil
	}
	out, err := c.resolver.Output(ctx, op)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Output{}, fmt.Errorf("%w: unresolved input %s", model.ErrNotFound, op)
		}
		return model.Output{}, fmt.Errorf("resolve %s: %w", op, err)
	}
	return out, nil
}

func (c *Connector) root(r patricia.NodeReader, t *patricia.Trie, id patricia.NodeID) (model.Root, error) {
	digest, err := t.RootDigest(r, id)
	if err != nil {
		return model.Root{}, err
	}
	size, err := t.Size(r, id)
	if err != nil {
		return model.Root{}, err
	}
	return model.Root{ID: uint64(id), Digest: digest, Size: size}, nil
}
