package patricia

import (
	"fmt"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// MemoryStore is a map-backed NodeReader holding published nodes.
type MemoryStore struct {
	mu    sync.RWMutex
	nodes map[NodeID]*Node
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nodes: make(map[NodeID]*Node)}
}

// Node returns a published node.
func (m *MemoryStore) Node(id NodeID) (*Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, ok := m.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: node %d", model.ErrNotFound, id)
	}
	return n, nil
}

// Publish makes nodes visible to readers.
func (m *MemoryStore) Publish(nodes []*Node) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, n := range nodes {
		m.nodes[n.id] = n
	}
}

// Len returns the number of published nodes.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.nodes)
}
