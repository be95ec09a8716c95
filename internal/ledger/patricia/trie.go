package patricia

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// Config fixes the tag stamped on every node and the key width.
type Config struct {
	Tag     Tag
	KeyBits int
}

// Trie runs persistent operations over roots held in an arena. It carries no
// state of its own and is safe for concurrent use.
type Trie struct {
	cfg Config
}

func New(cfg Config) *Trie {
	return &Trie{cfg: cfg}
}

func (t *Trie) Config() Config {
	return t.cfg
}

// Lookup returns the value stored under key.
func (t *Trie) Lookup(r NodeReader, root NodeID, key Bits) ([]byte, error) {
	if err := t.checkKey(key); err != nil {
		return nil, err
	}
	if root == NoNode {
		return nil, notFound(key)
	}

	id, rem := root, key
	for {
		n, err := load(r, id)
		if err != nil {
			return nil, err
		}
		if rem.Len() == 0 {
			if v, ok := n.Value(); ok {
				return v, nil
			}
			return nil, notFound(key)
		}
		l := n.links[rem.At(0)]
		if l == nil || !rem.HasPrefix(l.Prefix) {
			return nil, notFound(key)
		}
		id, rem = l.Child, rem.From(l.Prefix.Len())
	}
}

// Insert stores value under key and returns the new root. Inserting a value
// equal to the stored one returns root unchanged.
func (t *Trie) Insert(s *Session, root NodeID, key Bits, value []byte) (NodeID, error) {
	if err := t.checkKey(key); err != nil {
		return NoNode, err
	}
	// Published nodes must not alias caller memory.
	value = append([]byte{}, value...)

	if root == NoNode {
		leaf := s.stage(t.leaf(value))
		top := &Node{tag: t.cfg.Tag}
		top.setLink(key.At(0), &Link{Prefix: key, Child: leaf.id, Hash: leaf.Digest()})
		top.setStats(1, uint32(key.Len()))
		return s.stage(top).id, nil
	}
	return t.insert(s, root, key, value)
}

func (t *Trie) insert(s *Session, id NodeID, rem Bits, value []byte) (NodeID, error) {
	n, err := load(s, id)
	if err != nil {
		return NoNode, err
	}

	if rem.Len() == 0 {
		if n.Links() != 0 {
			return NoNode, fmt.Errorf("%w: key ends at branch node %d", model.ErrStructuralInvariant, id)
		}
		if old, ok := n.Value(); ok && bytes.Equal(old, value) {
			return id, nil
		}
		cp := n.clone()
		cp.setValue(value)
		return s.stage(cp).id, nil
	}

	side := rem.At(0)
	l := n.links[side]
	if l == nil {
		if n.hasValue {
			return NoNode, fmt.Errorf("%w: key continues past leaf %d", model.ErrStructuralInvariant, id)
		}
		leaf := s.stage(t.leaf(value))
		cp := n.clone()
		cp.setLink(side, &Link{Prefix: rem, Child: leaf.id, Hash: leaf.Digest()})
		return t.finishID(s, cp)
	}

	common := rem.CommonPrefixLen(l.Prefix)
	if common == l.Prefix.Len() {
		childID, err := t.insert(s, l.Child, rem.From(common), value)
		if err != nil {
			return NoNode, err
		}
		if childID == l.Child {
			return id, nil
		}
		child, err := s.Node(childID)
		if err != nil {
			return NoNode, err
		}
		cp := n.clone()
		cp.setLink(side, &Link{Prefix: l.Prefix, Child: childID, Hash: child.Digest()})
		return t.finishID(s, cp)
	}

	// Split the edge at the first differing bit.
	residual := rem.From(common)
	if residual.Len() == 0 {
		return NoNode, fmt.Errorf("split edge %s under node %d: %w", l.Prefix, id, ErrEmptyPrefix)
	}
	kept := l.Prefix.From(common)
	leaf := s.stage(t.leaf(value))
	mid := &Node{tag: t.cfg.Tag}
	mid.links[kept.At(0)] = &Link{Prefix: kept, Child: l.Child, Hash: l.Hash}
	mid.links[residual.At(0)] = &Link{Prefix: residual, Child: leaf.id, Hash: leaf.Digest()}
	staged, err := t.finish(s, mid)
	if err != nil {
		return NoNode, err
	}
	cp := n.clone()
	cp.setLink(side, &Link{Prefix: l.Prefix.Slice(0, common), Child: staged.id, Hash: staged.Digest()})
	return t.finishID(s, cp)
}

type replacement struct {
	gone  bool
	extra Bits
	node  *Node
}

// Delete removes key and returns the new root. Branches left with a single
// child are contracted into their parent edge.
func (t *Trie) Delete(s *Session, root NodeID, key Bits) (NodeID, error) {
	if err := t.checkKey(key); err != nil {
		return NoNode, err
	}
	if root == NoNode {
		return NoNode, notFound(key)
	}
	n, err := load(s, root)
	if err != nil {
		return NoNode, err
	}
	side := key.At(0)
	l := n.links[side]
	if l == nil || !key.HasPrefix(l.Prefix) {
		return NoNode, notFound(key)
	}
	rep, err := t.remove(s, l.Child, key.From(l.Prefix.Len()))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return NoNode, notFound(key)
		}
		return NoNode, err
	}

	cp := n.clone()
	if rep.gone {
		cp.setLink(side, nil)
		if cp.Links() == 0 {
			return NoNode, nil
		}
	} else {
		cp.setLink(side, rep.link(l.Prefix))
	}
	return t.finishID(s, cp)
}

func (t *Trie) remove(s *Session, id NodeID, rem Bits) (replacement, error) {
	n, err := load(s, id)
	if err != nil {
		return replacement{}, err
	}
	if rem.Len() == 0 {
		if !n.hasValue {
			return replacement{}, fmt.Errorf("%w: no value at node %d", model.ErrNotFound, id)
		}
		return replacement{gone: true}, nil
	}

	side := rem.At(0)
	l := n.links[side]
	if l == nil || !rem.HasPrefix(l.Prefix) {
		return replacement{}, fmt.Errorf("%w: no edge below node %d", model.ErrNotFound, id)
	}
	rep, err := t.remove(s, l.Child, rem.From(l.Prefix.Len()))
	if err != nil {
		return replacement{}, err
	}

	if rep.gone {
		other := n.links[1-side]
		if other == nil {
			return replacement{}, fmt.Errorf("%w: branch %d has a single child", model.ErrStructuralInvariant, id)
		}
		sibling, err := s.Node(other.Child)
		if err != nil {
			return replacement{}, err
		}
		return replacement{extra: other.Prefix, node: sibling}, nil
	}

	cp := n.clone()
	cp.setLink(side, rep.link(l.Prefix))
	staged, err := t.finish(s, cp)
	if err != nil {
		return replacement{}, err
	}
	return replacement{node: staged}, nil
}

func (r replacement) link(prefix Bits) *Link {
	if r.extra.Len() > 0 {
		prefix = prefix.Concat(r.extra)
	}
	return &Link{Prefix: prefix, Child: r.node.id, Hash: r.node.Digest()}
}

// Walk visits every (key, value) pair in key order.
func (t *Trie) Walk(r NodeReader, root NodeID, fn func(key Bits, value []byte) error) error {
	if root == NoNode {
		return nil
	}
	return t.walk(r, root, Bits{}, fn)
}

func (t *Trie) walk(r NodeReader, id NodeID, path Bits, fn func(Bits, []byte) error) error {
	n, err := load(r, id)
	if err != nil {
		return err
	}
	if v, ok := n.Value(); ok {
		if err := fn(path, v); err != nil {
			return err
		}
	}
	for _, l := range n.links {
		if l == nil {
			continue
		}
		if err := t.walk(r, l.Child, path.Concat(l.Prefix), fn); err != nil {
			return err
		}
	}
	return nil
}

// RootDigest returns the digest of root; the empty trie has the zero digest.
func (t *Trie) RootDigest(r NodeReader, root NodeID) (chainhash.Hash, error) {
	if root == NoNode {
		return chainhash.Hash{}, nil
	}
	n, err := r.Node(root)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("load root %d: %w", root, err)
	}
	return n.Digest(), nil
}

// Size returns the number of keys under root.
func (t *Trie) Size(r NodeReader, root NodeID) (uint64, error) {
	if root == NoNode {
		return 0, nil
	}
	n, err := r.Node(root)
	if err != nil {
		return 0, fmt.Errorf("load root %d: %w", root, err)
	}
	return n.size, nil
}

func (t *Trie) checkKey(key Bits) error {
	if key.Len() == 0 || key.Len() != t.cfg.KeyBits {
		return fmt.Errorf("%w: got %d bits, want %d", ErrInvalidKey, key.Len(), t.cfg.KeyBits)
	}
	return nil
}

func (t *Trie) leaf(value []byte) *Node {
	return &Node{tag: t.cfg.Tag, value: value, hasValue: true, size: 1}
}

// finish recomputes size and length from the children and stages n.
func (t *Trie) finish(s *Session, n *Node) (*Node, error) {
	var (
		size   uint64
		length uint32
	)
	if n.hasValue {
		size = 1
	}
	for _, l := range n.links {
		if l == nil {
			continue
		}
		if l.Prefix.Len() == 0 {
			return nil, ErrEmptyPrefix
		}
		child, err := s.Node(l.Child)
		if err != nil {
			return nil, fmt.Errorf("load child %d: %w", l.Child, err)
		}
		size += child.size
		length = max(length, uint32(l.Prefix.Len())+child.length)
	}
	n.setStats(size, length)
	return s.stage(n), nil
}

func (t *Trie) finishID(s *Session, n *Node) (NodeID, error) {
	staged, err := t.finish(s, n)
	if err != nil {
		return NoNode, err
	}
	return staged.id, nil
}

func load(r NodeReader, id NodeID) (*Node, error) {
	n, err := r.Node(id)
	if err != nil {
		return nil, fmt.Errorf("load node %d: %w", id, err)
	}
	if n.pruned {
		return nil, fmt.Errorf("%w: node %d", ErrPruned, id)
	}
	return n, nil
}

func notFound(key Bits) error {
	return fmt.Errorf("%w: key %x", model.ErrNotFound, key.Bytes())
}
