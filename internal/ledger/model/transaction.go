package model

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sync/atomic"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const (
	// MaxAmount is the largest amount an output may carry (2^53-1).
	MaxAmount int64 = 1<<53 - 1
	// CoinbaseIndex is the previous-output index of a coinbase input.
	CoinbaseIndex = wire.MaxPrevOutIndex

	// TxFormatLegacy is the plain transaction encoding.
	TxFormatLegacy uint8 = 0
	// TxFormatReferenceHeight appends a reference height to the hashed encoding.
	TxFormatReferenceHeight uint8 = 1
)

// OutPoint references an output by transaction digest and position.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// IsCoinbase reports whether the reference is the null outpoint.
func (o OutPoint) IsCoinbase() bool {
	return o.Index == CoinbaseIndex && o.Hash == (chainhash.Hash{})
}

func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.Hash, o.Index)
}

// Output is a spendable amount locked by an opaque contract.
type Output struct {
	Offset   uint32
	Amount   int64
	Contract []byte
}

// Validate checks the amount range.
func (o Output) Validate() error {
	if o.Amount < 0 || o.Amount > MaxAmount {
		return fmt.Errorf("%w: output %d amount %d outside [0, %d]", ErrValidation, o.Offset, o.Amount, MaxAmount)
	}
	return nil
}

// Input spends a previous output.
type Input struct {
	Offset      uint32
	PrevOut     OutPoint
	Endorsement []byte
	Sequence    uint32
	// Resolved is the spent output once it is known. It is not part of the digest.
	Resolved *Output
}

// IsCoinbase reports whether the input claims no real previous output.
func (in Input) IsCoinbase() bool {
	return in.PrevOut.IsCoinbase()
}

// Transaction is an ordered set of inputs and outputs with a memoized digest.
type Transaction struct {
	format          uint8
	version         int32
	lockTime        LockTime
	referenceHeight uint32

	inputs  OrderedList[Input]
	outputs OrderedList[Output]

	hash atomic.Pointer[chainhash.Hash]
}

// NewTransaction creates an empty transaction.
func NewTransaction(format uint8, version int32, lockTime LockTime, referenceHeight uint32) *Transaction {
	return &Transaction{
		format:          format,
		version:         version,
		lockTime:        lockTime,
		referenceHeight: referenceHeight,
		inputs: NewOrderedList(
			func(in Input) uint32 { return in.Offset },
			func(in *Input, offset uint32) { in.Offset = offset },
		),
		outputs: NewOrderedList(
			func(out Output) uint32 { return out.Offset },
			func(out *Output, offset uint32) { out.Offset = offset },
		),
	}
}

func (tx *Transaction) Format() uint8           { return tx.format }
func (tx *Transaction) Version() int32          { return tx.version }
func (tx *Transaction) LockTime() LockTime      { return tx.lockTime }
func (tx *Transaction) ReferenceHeight() uint32 { return tx.referenceHeight }

// SetVersion changes the version and drops the cached digest.
func (tx *Transaction) SetVersion(version int32) {
	tx.version = version
	tx.Invalidate()
}

// SetLockTime changes the lock-time and drops the cached digest.
func (tx *Transaction) SetLockTime(lockTime LockTime) {
	tx.lockTime = lockTime
	tx.Invalidate()
}

// SetReferenceHeight changes the reference height and drops the cached digest.
func (tx *Transaction) SetReferenceHeight(height uint32) {
	tx.referenceHeight = height
	tx.Invalidate()
}

// Inputs returns a copy of the inputs in order.
func (tx *Transaction) Inputs() []Input { return tx.inputs.All() }

// Outputs returns a copy of the outputs in order.
func (tx *Transaction) Outputs() []Output { return tx.outputs.All() }

// Input returns the input at position i.
func (tx *Transaction) Input(i int) (Input, error) { return tx.inputs.At(i) }

// Output returns the output at position i.
func (tx *Transaction) Output(i int) (Output, error) { return tx.outputs.At(i) }

// AppendInput adds an input at the end.
func (tx *Transaction) AppendInput(in Input) {
	tx.inputs.Append(in)
	tx.Invalidate()
}

// InsertInput places an input at position i and renumbers the rest.
func (tx *Transaction) InsertInput(i int, in Input) error {
	if err := tx.inputs.Insert(i, in); err != nil {
		return err
	}
	tx.Invalidate()
	return nil
}

// RemoveInput deletes the input at position i and renumbers the rest.
func (tx *Transaction) RemoveInput(i int) (Input, error) {
	in, err := tx.inputs.Remove(i)
	if err != nil {
		return Input{}, err
	}
	tx.Invalidate()
	return in, nil
}

// ResolveInput attaches the spent output to input i. The digest is unaffected.
func (tx *Transaction) ResolveInput(i int, out Output) error {
	in, err := tx.inputs.At(i)
	if err != nil {
		return err
	}
	in.Resolved = &out
	return tx.inputs.Set(i, in)
}

// AppendOutput adds an output at the end.
func (tx *Transaction) AppendOutput(out Output) {
	tx.outputs.Append(out)
	tx.Invalidate()
}

// InsertOutput places an output at position i and renumbers the rest.
func (tx *Transaction) InsertOutput(i int, out Output) error {
	if err := tx.outputs.Insert(i, out); err != nil {
		return err
	}
	tx.Invalidate()
	return nil
}

// RemoveOutput deletes the output at position i and renumbers the rest.
func (tx *Transaction) RemoveOutput(i int) (Output, error) {
	out, err := tx.outputs.Remove(i)
	if err != nil {
		return Output{}, err
	}
	tx.Invalidate()
	return out, nil
}

// IsCoinbase reports whether the transaction has a single coinbase input.
func (tx *Transaction) IsCoinbase() bool {
	if tx.inputs.Len() != 1 {
		return false
	}
	in, _ := tx.inputs.At(0)
	return in.IsCoinbase()
}

// Validate checks format, reference height, amounts and list positions.
func (tx *Transaction) Validate() error {
	switch tx.format {
	case TxFormatLegacy:
		if tx.referenceHeight != 0 {
			return fmt.Errorf("%w: reference height %d on format %d transaction", ErrValidation, tx.referenceHeight, tx.format)
		}
	case TxFormatReferenceHeight:
	default:
		return fmt.Errorf("%w: unknown transaction format %d", ErrValidation, tx.format)
	}
	for _, out := range tx.outputs.items {
		if err := out.Validate(); err != nil {
			return err
		}
	}
	if err := tx.inputs.CheckContiguous(); err != nil {
		return fmt.Errorf("inputs: %w", err)
	}
	if err := tx.outputs.CheckContiguous(); err != nil {
		return fmt.Errorf("outputs: %w", err)
	}
	return nil
}

// MsgTx returns the wire form of the transaction.
func (tx *Transaction) MsgTx() *wire.MsgTx {
	msg := wire.NewMsgTx(tx.version)
	for _, in := range tx.inputs.items {
		prev := wire.NewOutPoint(&in.PrevOut.Hash, in.PrevOut.Index)
		txIn := wire.NewTxIn(prev, in.Endorsement, nil)
		txIn.Sequence = in.Sequence
		msg.AddTxIn(txIn)
	}
	for _, out := range tx.outputs.items {
		msg.AddTxOut(wire.NewTxOut(out.Amount, out.Contract))
	}
	msg.LockTime = uint32(tx.lockTime)
	return msg
}

// Serialize writes the canonical hashed encoding of the transaction.
func (tx *Transaction) Serialize(buf *bytes.Buffer) error {
	if err := tx.MsgTx().SerializeNoWitness(buf); err != nil {
		return fmt.Errorf("serialize transaction: %w", err)
	}
	if tx.format == TxFormatReferenceHeight {
		var height [4]byte
		binary.LittleEndian.PutUint32(height[:], tx.referenceHeight)
		buf.Write(height[:])
	}
	return nil
}

// Hash returns the memoized transaction digest.
func (tx *Transaction) Hash() chainhash.Hash {
	if h := tx.hash.Load(); h != nil {
		return *h
	}
	var buf bytes.Buffer
	// Serialize only fails on writer errors, which bytes.Buffer never returns.
	_ = tx.Serialize(&buf)
	h := chainhash.DoubleHashH(buf.Bytes())
	tx.hash.Store(&h)
	return h
}

// Invalidate drops the cached digest.
func (tx *Transaction) Invalidate() {
	tx.hash.Store(nil)
}
