package model

import (
	"bytes"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const (
	// MinBits and MaxBits bound the compact difficulty target.
	MinBits uint32 = 0x01010000
	MaxBits uint32 = 0x1d00ffff

	// BlockFormatLegacy is the only known block format.
	BlockFormatLegacy uint8 = 0

	// HeaderSize is the serialized header length.
	HeaderSize = wire.MaxBlockHeaderPayload
)

// BlockTransaction places a transaction at a position inside one block.
type BlockTransaction struct {
	Offset uint32
	Tx     *Transaction
}

// Block is a header plus its ordered transaction list.
type Block struct {
	format uint8
	header wire.BlockHeader
	txs    OrderedList[BlockTransaction]

	hash atomic.Pointer[chainhash.Hash]
}

// NewBlock creates a block without transactions.
func NewBlock(format uint8, header wire.BlockHeader) *Block {
	return &Block{
		format: format,
		header: header,
		txs: NewOrderedList(
			func(bt BlockTransaction) uint32 { return bt.Offset },
			func(bt *BlockTransaction, offset uint32) { bt.Offset = offset },
		),
	}
}

func (b *Block) Format() uint8                    { return b.format }
func (b *Block) Header() wire.BlockHeader         { return b.header }
func (b *Block) ParentHash() chainhash.Hash       { return b.header.PrevBlock }
func (b *Block) MerkleRoot() chainhash.Hash       { return b.header.MerkleRoot }
func (b *Block) Bits() uint32                     { return b.header.Bits }
func (b *Block) Timestamp() time.Time             { return b.header.Timestamp }
func (b *Block) TransactionCount() int            { return b.txs.Len() }
func (b *Block) Transactions() []BlockTransaction { return b.txs.All() }

// SetHeader replaces the header and drops the cached digest.
func (b *Block) SetHeader(header wire.BlockHeader) {
	b.header = header
	b.Invalidate()
}

// AppendTransaction adds tx at the end of the block.
func (b *Block) AppendTransaction(tx *Transaction) {
	b.txs.Append(BlockTransaction{Tx: tx})
}

// InsertTransaction places tx at position i and renumbers the rest.
func (b *Block) InsertTransaction(i int, tx *Transaction) error {
	return b.txs.Insert(i, BlockTransaction{Tx: tx})
}

// RemoveTransaction deletes the transaction at position i and renumbers the rest.
func (b *Block) RemoveTransaction(i int) (*Transaction, error) {
	bt, err := b.txs.Remove(i)
	if err != nil {
		return nil, err
	}
	return bt.Tx, nil
}

// Validate checks the format, bits range, transaction positions and every transaction.
func (b *Block) Validate() error {
	if b.format != BlockFormatLegacy {
		return fmt.Errorf("%w: unknown block format %d", ErrValidation, b.format)
	}
	if b.header.Bits < MinBits || b.header.Bits > MaxBits {
		return fmt.Errorf("%w: bits %#08x outside [%#08x, %#08x]", ErrValidation, b.header.Bits, MinBits, MaxBits)
	}
	if err := b.txs.CheckContiguous(); err != nil {
		return fmt.Errorf("block transactions: %w", err)
	}
	seen := make(map[chainhash.Hash]struct{}, b.txs.Len())
	for _, bt := range b.txs.items {
		if bt.Tx == nil {
			return fmt.Errorf("%w: empty transaction slot %d", ErrValidation, bt.Offset)
		}
		if err := bt.Tx.Validate(); err != nil {
			return fmt.Errorf("transaction %d: %w", bt.Offset, err)
		}
		h := bt.Tx.Hash()
		if _, ok := seen[h]; ok {
			return fmt.Errorf("%w: transaction %s listed twice", ErrValidation, h)
		}
		seen[h] = struct{}{}
	}
	return nil
}

// SerializeHeader returns the 80-byte header encoding.
func (b *Block) SerializeHeader() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(HeaderSize)
	if err := b.header.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("serialize header: %w", err)
	}
	return buf.Bytes(), nil
}

// Hash returns the memoized header digest.
func (b *Block) Hash() chainhash.Hash {
	if h := b.hash.Load(); h != nil {
		return *h
	}
	h := b.header.BlockHash()
	b.hash.Store(&h)
	return h
}

// Invalidate drops the cached digest.
func (b *Block) Invalidate() {
	b.hash.Store(nil)
}
