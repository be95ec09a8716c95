package patricia

import (
	"bytes"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const maxValueSize = 1 << 20

// MarshalNode encodes a node for storage. Unlike the digest encoding it also
// carries child IDs and, for stubs, the elided digest.
func MarshalNode(n *Node) ([]byte, error) {
	var buf bytes.Buffer
	flags := uint8(0)
	if n.hasValue {
		flags |= flagValue
	}
	if n.links[Left] != nil {
		flags |= flagLeft
	}
	if n.links[Right] != nil {
		flags |= flagRight
	}
	if n.pruned {
		flags |= flagPruned
	}
	buf.WriteByte(byte(n.tag))
	buf.WriteByte(flags)
	if n.hasValue {
		if err := wire.WriteVarBytes(&buf, 0, n.value); err != nil {
			return nil, fmt.Errorf("write value: %w", err)
		}
	}
	for _, l := range n.links {
		if l == nil {
			continue
		}
		if err := EncodeEdge(&buf, l.Prefix); err != nil {
			return nil, err
		}
		if err := wire.WriteVarInt(&buf, 0, uint64(l.Child)); err != nil {
			return nil, fmt.Errorf("write child id: %w", err)
		}
		buf.Write(l.Hash[:])
	}
	if err := wire.WriteVarInt(&buf, 0, n.size); err != nil {
		return nil, fmt.Errorf("write size: %w", err)
	}
	if err := wire.WriteVarInt(&buf, 0, uint64(n.length)); err != nil {
		return nil, fmt.Errorf("write length: %w", err)
	}
	if n.pruned {
		buf.Write(n.stub[:])
	}
	return buf.Bytes(), nil
}

// UnmarshalNode decodes a node written by MarshalNode.
func UnmarshalNode(id NodeID, data []byte) (*Node, error) {
	r := bytes.NewReader(data)
	var head [2]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, fmt.Errorf("read node header: %w", err)
	}
	n := &Node{id: id, tag: Tag(head[0])}
	flags := head[1]
	n.pruned = flags&flagPruned != 0
	if flags&flagValue != 0 {
		value, err := wire.ReadVarBytes(r, 0, maxValueSize, "value")
		if err != nil {
			return nil, fmt.Errorf("read value: %w", err)
		}
		n.value = value
		n.hasValue = true
	}
	for side, flag := range []uint8{flagLeft, flagRight} {
		if flags&flag == 0 {
			continue
		}
		prefix, err := DecodeEdge(r, uint8(side))
		if err != nil {
			return nil, err
		}
		child, err := wire.ReadVarInt(r, 0)
		if err != nil {
			return nil, fmt.Errorf("read child id: %w", err)
		}
		l := &Link{Prefix: prefix, Child: NodeID(child)}
		if _, err := io.ReadFull(r, l.Hash[:]); err != nil {
			return nil, fmt.Errorf("read child hash: %w", err)
		}
		n.links[side] = l
	}
	size, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return nil, fmt.Errorf("read size: %w", err)
	}
	length, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return nil, fmt.Errorf("read length: %w", err)
	}
	n.size = size
	n.length = uint32(length)
	if n.pruned {
		var stub chainhash.Hash
		if _, err := io.ReadFull(r, stub[:]); err != nil {
			return nil, fmt.Errorf("read stub digest: %w", err)
		}
		n.stub = stub
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("node %d: %d trailing bytes", id, r.Len())
	}
	return n, nil
}
