package chain

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// TieBreak orders tips that carry exactly equal aggregate work.
type TieBreak int

const (
	// FirstSeen keeps the tip that was connected first.
	FirstSeen TieBreak = iota
	// LowestHash prefers the tip whose digest is numerically smallest.
	LowestHash
)

// ParseTieBreak reads a policy name.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(s) {
	case "", "first-seen":
		return FirstSeen, nil
	case "lowest-hash":
		return LowestHash, nil
	default:
		return FirstSeen, fmt.Errorf("%w: unknown tie-break policy %q", model.ErrValidation, s)
	}
}

func (p TieBreak) String() string {
	if p == LowestHash {
		return "lowest-hash"
	}
	return "first-seen"
}

// Reorg describes a change of best tip. Detached runs from the old tip down
// to the fork point, Attached from just above the fork point up to the new tip.
type Reorg struct {
	Old      *model.ConnectedBlockInfo
	New      model.ConnectedBlockInfo
	Fork     *model.ConnectedBlockInfo
	Detached []chainhash.Hash
	Attached []chainhash.Hash
}

// Depth is the number of blocks removed from the best chain.
func (r *Reorg) Depth() int {
	return len(r.Detached)
}

type entry struct {
	info     model.ConnectedBlockInfo
	children int
}

// Selector tracks connection records and the best tip. Best is lock-free;
// every other method takes a short lock.
type Selector struct {
	policy TieBreak

	mu      sync.Mutex
	entries map[chainhash.Hash]*entry
	seq     uint64
	top     *entry

	best atomic.Pointer[model.ConnectedBlockInfo]
}

func NewSelector(policy TieBreak) *Selector {
	return &Selector{
		policy:  policy,
		entries: make(map[chainhash.Hash]*entry),
	}
}

// Load feeds persisted records in height order, parents before children.
// Records of equal height replay in arrival order.
func (s *Selector) Load(infos []model.ConnectedBlockInfo) error {
	sorted := append([]model.ConnectedBlockInfo(nil), infos...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Height != sorted[j].Height {
			return sorted[i].Height < sorted[j].Height
		}
		return sorted[i].Seq < sorted[j].Seq
	})
	for _, info := range sorted {
		if _, err := s.Consider(info); err != nil {
			return err
		}
	}
	return nil
}

// NextSeq reserves the arrival sequence for a record about to be persisted.
func (s *Selector) NextSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// Consider records a newly connected block. A record without a sequence is
// given the next one. It returns a Reorg when the best tip changes and nil
// otherwise.
func (s *Selector) Consider(info model.ConnectedBlockInfo) (*Reorg, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[info.Hash]; ok {
		return nil, nil
	}

	var parent *entry
	if !info.IsGenesis() {
		p, ok := s.entries[info.Parent]
		if !ok {
			return nil, fmt.Errorf("%w: parent %s of %s is not connected", model.ErrNotFound, info.Parent, info.Hash)
		}
		parent = p
	}
	var parentInfo *model.ConnectedBlockInfo
	if parent != nil {
		parentInfo = &parent.info
	}
	if err := info.Validate(parentInfo); err != nil {
		return nil, err
	}

	info.Work = new(big.Int).Set(info.Work)
	switch {
	case info.Seq == 0:
		s.seq++
		info.Seq = s.seq
	case info.Seq > s.seq:
		s.seq = info.Seq
	}
	e := &entry{info: info}
	s.entries[info.Hash] = e
	if parent != nil {
		parent.children++
	}

	if s.top != nil && !s.better(e, s.top) {
		return nil, nil
	}
	old := s.top
	s.top = e
	best := e.info
	s.best.Store(&best)
	return s.reorg(old, e), nil
}

// Best returns the current best tip.
func (s *Selector) Best() (model.ConnectedBlockInfo, bool) {
	b := s.best.Load()
	if b == nil {
		return model.ConnectedBlockInfo{}, false
	}
	return *b, true
}

// Tips returns every connected block without a connected child, best first.
func (s *Selector) Tips() []model.ConnectedBlockInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	tips := make([]*entry, 0)
	for _, e := range s.entries {
		if e.children == 0 {
			tips = append(tips, e)
		}
	}
	sort.Slice(tips, func(i, j int) bool { return s.better(tips[i], tips[j]) })

	out := make([]model.ConnectedBlockInfo, 0, len(tips))
	for _, e := range tips {
		out = append(out, e.info)
	}
	return out
}

// Info returns the record for hash.
func (s *Selector) Info(hash chainhash.Hash) (model.ConnectedBlockInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[hash]
	if !ok {
		return model.ConnectedBlockInfo{}, false
	}
	return e.info, true
}

// Len returns the number of records.
func (s *Selector) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// better reports whether a ranks above b.
func (s *Selector) better(a, b *entry) bool {
	if c := a.info.Work.Cmp(b.info.Work); c != 0 {
		return c > 0
	}
	if s.policy == LowestHash {
		if c := blockchain.HashToBig(&a.info.Hash).Cmp(blockchain.HashToBig(&b.info.Hash)); c != 0 {
			return c < 0
		}
	}
	return a.info.Seq < b.info.Seq
}

func (s *Selector) reorg(old, next *entry) *Reorg {
	r := &Reorg{New: next.info}
	if old == nil {
		r.Attached = []chainhash.Hash{next.info.Hash}
		return r
	}
	oldInfo := old.info
	r.Old = &oldInfo

	a, b := old, next
	var attached []chainhash.Hash
	for a != nil && b != nil && a.info.Height > b.info.Height {
		r.Detached = append(r.Detached, a.info.Hash)
		a = s.parentOf(a)
	}
	for a != nil && b != nil && b.info.Height > a.info.Height {
		attached = append(attached, b.info.Hash)
		b = s.parentOf(b)
	}
	for a != nil && b != nil && a != b {
		r.Detached = append(r.Detached, a.info.Hash)
		attached = append(attached, b.info.Hash)
		a, b = s.parentOf(a), s.parentOf(b)
	}
	if a != nil && a == b {
		fork := a.info
		r.Fork = &fork
	}
	for i := len(attached) - 1; i >= 0; i-- {
		r.Attached = append(r.Attached, attached[i])
	}
	return r
}

func (s *Selector) parentOf(e *entry) *entry {
	if e.info.IsGenesis() {
		return nil
	}
	return s.entries[e.info.Parent]
}
