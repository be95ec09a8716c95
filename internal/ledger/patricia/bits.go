package patricia

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/btcsuite/btcd/wire"
)

// Bits is an immutable MSB-first bit string.
type Bits struct {
	data []byte
	n    int
}

// NewBits returns the first n bits of data.
func NewBits(data []byte, n int) (Bits, error) {
	if n < 0 || n > len(data)*8 {
		return Bits{}, fmt.Errorf("bit length %d outside [0, %d]", n, len(data)*8)
	}
	b := Bits{data: make([]byte, (n+7)/8), n: n}
	copy(b.data, data)
	if rem := n % 8; rem != 0 {
		b.data[len(b.data)-1] &= byte(0xff << (8 - rem))
	}
	return b, nil
}

// BitsFromBytes uses every bit of data.
func BitsFromBytes(data []byte) Bits {
	b := Bits{data: make([]byte, len(data)), n: len(data) * 8}
	copy(b.data, data)
	return b
}

// ParseBits reads a string of '0' and '1' characters.
func ParseBits(s string) (Bits, error) {
	var w bitWriter
	for i, c := range s {
		switch c {
		case '0':
			w.push(0)
		case '1':
			w.push(1)
		default:
			return Bits{}, fmt.Errorf("invalid bit %q at %d", c, i)
		}
	}
	return w.bits(), nil
}

// Len returns the number of bits.
func (b Bits) Len() int { return b.n }

// At returns bit i as 0 or 1.
func (b Bits) At(i int) uint8 {
	return (b.data[i/8] >> (7 - uint(i%8))) & 1
}

// Slice returns bits [from, to).
func (b Bits) Slice(from, to int) Bits {
	if from == 0 && to == b.n {
		return b
	}
	var w bitWriter
	for i := from; i < to; i++ {
		w.push(b.At(i))
	}
	return w.bits()
}

// From returns the bits starting at from.
func (b Bits) From(from int) Bits {
	return b.Slice(from, b.n)
}

// Concat returns b followed by o.
func (b Bits) Concat(o Bits) Bits {
	if b.n%8 == 0 {
		out := Bits{data: make([]byte, 0, len(b.data)+len(o.data)), n: b.n + o.n}
		out.data = append(append(out.data, b.data...), o.data...)
		return out
	}
	var w bitWriter
	for i := 0; i < b.n; i++ {
		w.push(b.At(i))
	}
	for i := 0; i < o.n; i++ {
		w.push(o.At(i))
	}
	return w.bits()
}

// CommonPrefixLen returns the number of leading bits b and o share.
func (b Bits) CommonPrefixLen(o Bits) int {
	limit := min(b.n, o.n)
	i := 0
	for i+8 <= limit && b.data[i/8] == o.data[i/8] {
		i += 8
	}
	for i < limit && b.At(i) == o.At(i) {
		i++
	}
	return i
}

// HasPrefix reports whether p is a prefix of b.
func (b Bits) HasPrefix(p Bits) bool {
	return p.n <= b.n && b.CommonPrefixLen(p) == p.n
}

// Equal reports whether both strings hold the same bits.
func (b Bits) Equal(o Bits) bool {
	return b.n == o.n && bytes.Equal(b.data, o.data)
}

// Bytes returns the packed bits, zero padded to a byte boundary.
func (b Bits) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		sb.WriteByte('0' + b.At(i))
	}
	return sb.String()
}

// EncodeEdge writes a link prefix. The first bit is implied by the side the
// link hangs on, so only varint(len-1) and the remaining packed bits are written.
func EncodeEdge(w io.Writer, prefix Bits) error {
	if prefix.n == 0 {
		return ErrEmptyPrefix
	}
	if err := wire.WriteVarInt(w, 0, uint64(prefix.n-1)); err != nil {
		return fmt.Errorf("write edge length: %w", err)
	}
	rest := prefix.From(1)
	if _, err := w.Write(rest.data); err != nil {
		return fmt.Errorf("write edge bits: %w", err)
	}
	return nil
}

// DecodeEdge reads a link prefix written by EncodeEdge for the given side.
func DecodeEdge(r io.Reader, first uint8) (Bits, error) {
	n, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return Bits{}, fmt.Errorf("read edge length: %w", err)
	}
	if n > maxEdgeBits {
		return Bits{}, fmt.Errorf("edge length %d exceeds %d", n+1, maxEdgeBits)
	}
	packed := make([]byte, (n+7)/8)
	if _, err := io.ReadFull(r, packed); err != nil {
		return Bits{}, fmt.Errorf("read edge bits: %w", err)
	}
	rest, err := NewBits(packed, int(n))
	if err != nil {
		return Bits{}, err
	}
	var w bitWriter
	w.push(first)
	return w.bits().Concat(rest), nil
}

const maxEdgeBits = 1 << 16

type bitWriter struct {
	data []byte
	n    int
}

func (w *bitWriter) push(bit uint8) {
	if w.n%8 == 0 {
		w.data = append(w.data, 0)
	}
	if bit != 0 {
		w.data[w.n/8] |= 1 << (7 - uint(w.n%8))
	}
	w.n++
}

func (w *bitWriter) bits() Bits {
	return Bits{data: w.data, n: w.n}
}
