package patricia

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// Check verifies the structural invariants of the trie under root.
func (t *Trie) Check(r NodeReader, root NodeID) error {
	_, err := t.Audit(r, root)
	return err
}

// Audit verifies the trie under root and returns its root digest recomputed
// from scratch, ignoring every memoized digest.
func (t *Trie) Audit(r NodeReader, root NodeID) (chainhash.Hash, error) {
	if root == NoNode {
		return chainhash.Hash{}, nil
	}
	n, err := r.Node(root)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("load root %d: %w", root, err)
	}
	if !n.pruned {
		if n.hasValue {
			return chainhash.Hash{}, fmt.Errorf("%w: root %d carries a value", model.ErrStructuralInvariant, root)
		}
		if n.Links() == 0 {
			return chainhash.Hash{}, fmt.Errorf("%w: root %d has no children", model.ErrStructuralInvariant, root)
		}
	}
	return t.audit(r, n, 0, true)
}

func (t *Trie) audit(r NodeReader, n *Node, depth int, isRoot bool) (chainhash.Hash, error) {
	if n.tag != t.cfg.Tag {
		return chainhash.Hash{}, fmt.Errorf("%w: node %d tag %d, want %d", model.ErrStructuralInvariant, n.id, n.tag, t.cfg.Tag)
	}
	if n.pruned {
		if depth+int(n.length) != t.cfg.KeyBits {
			return chainhash.Hash{}, fmt.Errorf("%w: stub %d ends at bit %d", model.ErrStructuralInvariant, n.id, depth+int(n.length))
		}
		return n.stub, nil
	}

	var (
		size   uint64
		length uint32
	)
	switch {
	case n.hasValue:
		if n.Links() != 0 {
			return chainhash.Hash{}, fmt.Errorf("%w: leaf %d has children", model.ErrStructuralInvariant, n.id)
		}
		if depth != t.cfg.KeyBits {
			return chainhash.Hash{}, fmt.Errorf("%w: leaf %d at bit %d, want %d", model.ErrStructuralInvariant, n.id, depth, t.cfg.KeyBits)
		}
		size = 1
	case !isRoot && n.Links() != 2:
		return chainhash.Hash{}, fmt.Errorf("%w: branch %d has %d children", model.ErrStructuralInvariant, n.id, n.Links())
	}

	for side, l := range n.links {
		if l == nil {
			continue
		}
		if l.Prefix.Len() == 0 {
			return chainhash.Hash{}, fmt.Errorf("node %d: %w", n.id, ErrEmptyPrefix)
		}
		if l.Prefix.At(0) != uint8(side) {
			return chainhash.Hash{}, fmt.Errorf("%w: node %d edge %s on side %d", model.ErrStructuralInvariant, n.id, l.Prefix, side)
		}
		child, err := r.Node(l.Child)
		if err != nil {
			return chainhash.Hash{}, fmt.Errorf("load child %d: %w", l.Child, err)
		}
		h, err := t.audit(r, child, depth+l.Prefix.Len(), false)
		if err != nil {
			return chainhash.Hash{}, err
		}
		if h != l.Hash {
			return chainhash.Hash{}, fmt.Errorf("%w: node %d edge digest %s, child %d digest %s", model.ErrStructuralInvariant, n.id, l.Hash, l.Child, h)
		}
		size += child.size
		length = max(length, uint32(l.Prefix.Len())+child.length)
	}
	if size != n.size || length != n.length {
		return chainhash.Hash{}, fmt.Errorf("%w: node %d records size %d length %d, computed %d and %d",
			model.ErrStructuralInvariant, n.id, n.size, n.length, size, length)
	}
	return hashNode(n.tag, n.value, n.hasValue, n.links, n.size, n.length), nil
}
