package patricia

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// NodeReader resolves published nodes.
type NodeReader interface {
	Node(id NodeID) (*Node, error)
}

// Allocator hands out node IDs. It is safe for concurrent sessions.
type Allocator struct {
	last atomic.Uint64
}

// NewAllocator continues numbering after last.
func NewAllocator(last NodeID) *Allocator {
	a := &Allocator{}
	a.last.Store(uint64(last))
	return a
}

// Next reserves a fresh ID.
func (a *Allocator) Next() NodeID {
	return NodeID(a.last.Add(1))
}

// Last returns the highest ID handed out so far.
func (a *Allocator) Last() NodeID {
	return NodeID(a.last.Load())
}

// Session stages the nodes created by one writer on top of a published base.
// Nothing staged is visible to other sessions until the caller persists
// Created() and publishes the new root.
type Session struct {
	base  NodeReader
	alloc *Allocator

	mu     sync.RWMutex
	staged map[NodeID]*Node
	order  []NodeID
}

// NewSession starts a session. base may be nil for a trie built from scratch.
func NewSession(base NodeReader, alloc *Allocator) *Session {
	return &Session{
		base:   base,
		alloc:  alloc,
		staged: make(map[NodeID]*Node),
	}
}

// Node returns a staged node or falls back to the base.
func (s *Session) Node(id NodeID) (*Node, error) {
	s.mu.RLock()
	n, ok := s.staged[id]
	s.mu.RUnlock()
	if ok {
		return n, nil
	}
	if s.base == nil {
		return nil, fmt.Errorf("%w: node %d", model.ErrNotFound, id)
	}
	return s.base.Node(id)
}

// Created returns the staged nodes in creation order.
func (s *Session) Created() []*Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Node, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.staged[id])
	}
	return out
}

// Reachable returns the staged nodes still reachable from roots. Nodes made
// obsolete by later updates in the same session are left out.
func (s *Session) Reachable(roots ...NodeID) []*Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[NodeID]struct{})
	stack := append([]NodeID(nil), roots...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n, ok := s.staged[id]
		if !ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		for _, l := range n.links {
			if l != nil {
				stack = append(stack, l.Child)
			}
		}
	}

	out := make([]*Node, 0, len(seen))
	for _, id := range s.order {
		if _, ok := seen[id]; ok {
			out = append(out, s.staged[id])
		}
	}
	return out
}

// Newer returns the published nodes with an ID above base that are reachable
// from roots, in ID order. The walk stops at nodes at or below base: updates
// copy whole paths, so the parent of a newer node is newer too. With base set
// to Allocator.Last() before a session started, the result is the session's
// Reachable set once it is published.
func Newer(r NodeReader, base NodeID, roots ...NodeID) ([]*Node, error) {
	seen := make(map[NodeID]*Node)
	stack := append([]NodeID(nil), roots...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id <= base {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		n, err := r.Node(id)
		if err != nil {
			return nil, fmt.Errorf("load node %d: %w", id, err)
		}
		seen[id] = n
		for _, l := range n.links {
			if l != nil {
				stack = append(stack, l.Child)
			}
		}
	}

	out := make([]*Node, 0, len(seen))
	for _, n := range seen {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out, nil
}

func (s *Session) stage(n *Node) *Node {
	n.id = s.alloc.Next()
	n.Digest()

	s.mu.Lock()
	s.staged[n.id] = n
	s.order = append(s.order, n.id)
	s.mu.Unlock()
	return n
}
