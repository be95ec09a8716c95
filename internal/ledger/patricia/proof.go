package patricia

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// ProofStep describes one node on the path from the root to a leaf: the edge
// taken toward the key and the sibling edge left behind.
type ProofStep struct {
	Prefix        Bits
	Sibling       *Link
	SiblingSize   uint64
	SiblingLength uint32
}

// Proof is the material needed to recompute a root digest from one leaf.
type Proof struct {
	Tag   Tag
	Key   Bits
	Value []byte
	Steps []ProofStep
}

// Prove collects the path to key under root.
func (t *Trie) Prove(r NodeReader, root NodeID, key Bits) (*Proof, error) {
	if err := t.checkKey(key); err != nil {
		return nil, err
	}
	if root == NoNode {
		return nil, notFound(key)
	}

	p := &Proof{Tag: t.cfg.Tag, Key: key}
	id, rem := root, key
	for {
		n, err := load(r, id)
		if err != nil {
			return nil, err
		}
		if rem.Len() == 0 {
			v, ok := n.Value()
			if !ok {
				return nil, notFound(key)
			}
			p.Value = v
			return p, nil
		}

		side := rem.At(0)
		l := n.links[side]
		if l == nil || !rem.HasPrefix(l.Prefix) {
			return nil, notFound(key)
		}
		step := ProofStep{Prefix: l.Prefix}
		if sib := n.links[1-side]; sib != nil {
			sn, err := r.Node(sib.Child)
			if err != nil {
				return nil, fmt.Errorf("load sibling %d: %w", sib.Child, err)
			}
			cp := *sib
			step.Sibling = &cp
			step.SiblingSize = sn.size
			step.SiblingLength = sn.length
		}
		p.Steps = append(p.Steps, step)
		id, rem = l.Child, rem.From(l.Prefix.Len())
	}
}

// Root recomputes the root digest implied by the proof.
func (p *Proof) Root() (chainhash.Hash, error) {
	var path Bits
	for _, st := range p.Steps {
		path = path.Concat(st.Prefix)
	}
	if !path.Equal(p.Key) {
		return chainhash.Hash{}, fmt.Errorf("%w: path %s does not spell key", ErrProofMismatch, path)
	}

	h := hashNode(p.Tag, p.Value, true, [2]*Link{}, 1, 0)
	size, length := uint64(1), uint32(0)
	for i := len(p.Steps) - 1; i >= 0; i-- {
		links, err := p.Steps[i].links(h)
		if err != nil {
			return chainhash.Hash{}, err
		}
		size, length = p.Steps[i].stats(size, length)
		h = hashNode(p.Tag, nil, false, links, size, length)
	}
	return h, nil
}

// Verify checks the proof against a trusted root digest.
func (p *Proof) Verify(root chainhash.Hash) error {
	got, err := p.Root()
	if err != nil {
		return err
	}
	if got != root {
		return fmt.Errorf("%w: got %s, want %s", ErrProofMismatch, got, root)
	}
	return nil
}

// Materialize stages the proven path as a pruned trie and returns its root.
// Every subtree off the path becomes a stub, so the root digest matches the
// trie the proof was taken from.
func (p *Proof) Materialize(s *Session) (NodeID, error) {
	if _, err := p.Root(); err != nil {
		return NoNode, err
	}

	cur := s.stage(&Node{tag: p.Tag, value: p.Value, hasValue: true, size: 1})
	for i := len(p.Steps) - 1; i >= 0; i-- {
		st := p.Steps[i]
		links, err := st.links(cur.Digest())
		if err != nil {
			return NoNode, err
		}
		side := st.Prefix.At(0)
		links[side].Child = cur.id
		if st.Sibling != nil {
			stub := s.stage(NewStub(p.Tag, st.Sibling.Hash, st.SiblingSize, st.SiblingLength))
			links[1-side].Child = stub.id
		}
		size, length := st.stats(cur.size, cur.length)
		cur = s.stage(&Node{tag: p.Tag, links: links, size: size, length: length})
	}
	return cur.id, nil
}

func (st ProofStep) links(child chainhash.Hash) ([2]*Link, error) {
	var links [2]*Link
	if st.Prefix.Len() == 0 {
		return links, ErrEmptyPrefix
	}
	side := st.Prefix.At(0)
	links[side] = &Link{Prefix: st.Prefix, Hash: child}
	if st.Sibling != nil {
		if st.Sibling.Prefix.Len() == 0 || st.Sibling.Prefix.At(0) == side {
			return links, fmt.Errorf("%w: sibling edge on the wrong side", model.ErrValidation)
		}
		links[1-side] = &Link{Prefix: st.Sibling.Prefix, Hash: st.Sibling.Hash}
	}
	return links, nil
}

func (st ProofStep) stats(size uint64, length uint32) (uint64, uint32) {
	length += uint32(st.Prefix.Len())
	if st.Sibling != nil {
		size += st.SiblingSize
		length = max(length, uint32(st.Sibling.Prefix.Len())+st.SiblingLength)
	}
	return size, length
}
