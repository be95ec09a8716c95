// Package patricia implements a persistent, authenticated binary radix trie.
//
// Nodes live in an arena addressed by NodeID. Published nodes are never
// modified: every update copies the path from the root to the change into a
// Session and shares all other subtrees with the previous version.
package patricia

import (
	"bytes"
	"sync/atomic"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// NodeID addresses a node in the arena. NoNode is the empty trie.
type NodeID uint64

const NoNode NodeID = 0

// Tag discriminates the index a node belongs to.
type Tag uint8

const (
	Left  uint8 = 0
	Right uint8 = 1
)

const (
	flagValue uint8 = 1 << iota
	flagLeft
	flagRight
	flagPruned
)

// Link is a hash-stamped edge to a child node.
type Link struct {
	Prefix Bits
	Child  NodeID
	Hash   chainhash.Hash
}

// Node is a trie node. A node is either the root, a leaf carrying a value, a
// branch with two links, or a pruned stub standing in for an elided subtree.
type Node struct {
	id       NodeID
	tag      Tag
	value    []byte
	hasValue bool
	pruned   bool
	links    [2]*Link
	size     uint64
	length   uint32
	stub     chainhash.Hash

	digest atomic.Pointer[chainhash.Hash]
}

// NewStub returns a pruned node that stands in for a subtree known only by
// its digest, leaf count and depth.
func NewStub(tag Tag, digest chainhash.Hash, size uint64, length uint32) *Node {
	return &Node{tag: tag, pruned: true, stub: digest, size: size, length: length}
}

func (n *Node) ID() NodeID     { return n.id }
func (n *Node) Tag() Tag       { return n.tag }
func (n *Node) Pruned() bool   { return n.pruned }
func (n *Node) Size() uint64   { return n.size }
func (n *Node) Length() uint32 { return n.length }

// Value returns the leaf value, if any.
func (n *Node) Value() ([]byte, bool) {
	return n.value, n.hasValue
}

// Link returns the edge on the given side, or nil.
func (n *Node) Link(side uint8) *Link {
	if l := n.links[side&1]; l != nil {
		cp := *l
		return &cp
	}
	return nil
}

// Links returns the number of children.
func (n *Node) Links() int {
	c := 0
	for _, l := range n.links {
		if l != nil {
			c++
		}
	}
	return c
}

// Digest returns the memoized node digest. A pruned stub reports the digest of
// the subtree it replaces.
func (n *Node) Digest() chainhash.Hash {
	if n.pruned {
		return n.stub
	}
	if h := n.digest.Load(); h != nil {
		return *h
	}
	h := n.computeDigest()
	n.digest.Store(&h)
	return h
}

// Invalidate drops the cached digest.
func (n *Node) Invalidate() {
	n.digest.Store(nil)
}

func (n *Node) computeDigest() chainhash.Hash {
	if n.pruned {
		return n.stub
	}
	return hashNode(n.tag, n.value, n.hasValue, n.links, n.size, n.length)
}

func (n *Node) clone() *Node {
	cp := &Node{
		tag:      n.tag,
		value:    n.value,
		hasValue: n.hasValue,
		pruned:   n.pruned,
		size:     n.size,
		length:   n.length,
		stub:     n.stub,
	}
	for side, l := range n.links {
		if l != nil {
			link := *l
			cp.links[side] = &link
		}
	}
	return cp
}

func (n *Node) setValue(value []byte) {
	n.value = value
	n.hasValue = true
	n.Invalidate()
}

func (n *Node) setLink(side uint8, l *Link) {
	n.links[side&1] = l
	n.Invalidate()
}

func (n *Node) setStats(size uint64, length uint32) {
	n.size = size
	n.length = length
	n.Invalidate()
}

// hashNode is the canonical digest: tag, flags, value, left edge and digest,
// right edge and digest, size, length.
func hashNode(tag Tag, value []byte, hasValue bool, links [2]*Link, size uint64, length uint32) chainhash.Hash {
	var buf bytes.Buffer
	flags := uint8(0)
	if hasValue {
		flags |= flagValue
	}
	if links[Left] != nil {
		flags |= flagLeft
	}
	if links[Right] != nil {
		flags |= flagRight
	}
	buf.WriteByte(byte(tag))
	buf.WriteByte(flags)
	// bytes.Buffer writes never fail.
	if hasValue {
		_ = wire.WriteVarBytes(&buf, 0, value)
	}
	for _, l := range links {
		if l == nil {
			continue
		}
		_ = EncodeEdge(&buf, l.Prefix)
		buf.Write(l.Hash[:])
	}
	_ = wire.WriteVarInt(&buf, 0, size)
	_ = wire.WriteVarInt(&buf, 0, uint64(length))
	return chainhash.DoubleHashH(buf.Bytes())
}
