package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/index"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/patricia"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/workerpool"
	"go.uber.org/zap"
)

// Report is the outcome of verifying one stored block.
type Report struct {
	Info           model.ConnectedBlockInfo
	Block          *model.Block
	TxIDDigest     chainhash.Hash
	ContractDigest chainhash.Hash
}

// VerifierService re-derives what a stored connection record claims: the
// block digest, both trie roots and the membership of every transaction.
type VerifierService struct {
	store     BlockStore
	txids     *index.TxIDIndex
	contracts *index.ContractIndex
	metrics   VerifierMetrics
	logger    *zap.Logger
}

func NewVerifierService(store BlockStore, metrics VerifierMetrics, logger *zap.Logger) (*VerifierService, error) {
	if store == nil {
		return nil, errors.New("verifier block store is required")
	}
	if metrics == nil {
		return nil, errors.New("verifier metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VerifierService{
		store:     store,
		txids:     index.NewTxIDIndex(),
		contracts: index.NewContractIndex(),
		metrics:   metrics,
		logger:    logger.Named("verifier"),
	}, nil
}

type rootAudit struct {
	name string
	trie *patricia.Trie
	root model.Root
}

// Verify checks the block stored under hash.
func (v *VerifierService) Verify(ctx context.Context, hash chainhash.Hash) (rep *Report, err error) {
	started := time.Now()
	defer func() {
		v.metrics.ObserveVerify(err, started)
	}()

	info, err := v.store.ConnectedInfo(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("load connected block %s: %w", hash, err)
	}
	block, err := v.store.Block(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("load block %s: %w", hash, err)
	}

	if got := block.Hash(); got != hash {
		return nil, fmt.Errorf("%w: stored block digest %s, want %s", model.ErrStructuralInvariant, got, hash)
	}
	if err = block.Validate(); err != nil {
		return nil, fmt.Errorf("stored block %s: %w", hash, err)
	}
	if !info.IsGenesis() && block.ParentHash() != info.Parent {
		return nil, fmt.Errorf("%w: block %s parent %s, record says %s", model.ErrStructuralInvariant, hash, block.ParentHash(), info.Parent)
	}
	if info.TxIDRoot.Size < uint64(block.TransactionCount()) {
		return nil, fmt.Errorf("%w: txid root holds %d entries, block has %d transactions",
			model.ErrStructuralInvariant, info.TxIDRoot.Size, block.TransactionCount())
	}

	audits := []rootAudit{
		{name: index.KindName(index.TxIDKind), trie: v.txids.Trie(), root: info.TxIDRoot},
		{name: index.KindName(index.ContractKind), trie: v.contracts.Trie(), root: info.ContractRoot},
	}
	digests, err := workerpool.Map(ctx, len(audits), audits, v.audit)
	if err != nil {
		return nil, err
	}

	txRoot := patricia.NodeID(info.TxIDRoot.ID)
	for _, bt := range block.Transactions() {
		ok, err := v.txids.Contains(v.store, txRoot, bt.Tx.Hash())
		if err != nil {
			return nil, fmt.Errorf("look up transaction %s: %w", bt.Tx.Hash(), err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: transaction %s missing from txid index of %s", model.ErrStructuralInvariant, bt.Tx.Hash(), hash)
		}
	}

	v.logger.Debug("block verified",
		zap.Stringer("block", hash),
		zap.Uint32("height", info.Height),
		zap.Stringer("txid_root", digests[0]),
		zap.Stringer("contract_root", digests[1]),
	)

	return &Report{
		Info:           info,
		Block:          block,
		TxIDDigest:     digests[0],
		ContractDigest: digests[1],
	}, nil
}

func (v *VerifierService) audit(_ context.Context, a rootAudit) (chainhash.Hash, error) {
	root := patricia.NodeID(a.root.ID)
	digest, err := a.trie.Audit(v.store, root)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("audit %s: %w", a.name, err)
	}
	if digest != a.root.Digest {
		return chainhash.Hash{}, fmt.Errorf("%w: %s digest %s, record says %s", model.ErrStructuralInvariant, a.name, digest, a.root.Digest)
	}
	size, err := a.trie.Size(v.store, root)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("size %s: %w", a.name, err)
	}
	if size != a.root.Size {
		return chainhash.Hash{}, fmt.Errorf("%w: %s holds %d entries, record says %d", model.ErrStructuralInvariant, a.name, size, a.root.Size)
	}
	return digest, nil
}
