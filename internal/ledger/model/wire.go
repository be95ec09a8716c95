package model

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/wire"
)

// TransactionFromMsgTx builds a transaction from its wire form. Witness data is dropped.
func TransactionFromMsgTx(format uint8, msg *wire.MsgTx, referenceHeight uint32) *Transaction {
	tx := NewTransaction(format, msg.Version, LockTime(msg.LockTime), referenceHeight)
	for _, in := range msg.TxIn {
		tx.inputs.Append(Input{
			PrevOut:     OutPoint{Hash: in.PreviousOutPoint.Hash, Index: in.PreviousOutPoint.Index},
			Endorsement: in.SignatureScript,
			Sequence:    in.Sequence,
		})
	}
	for _, out := range msg.TxOut {
		tx.outputs.Append(Output{Amount: out.Value, Contract: out.PkScript})
	}
	return tx
}

// ReadTransaction decodes what Serialize writes for the given format.
func ReadTransaction(r io.Reader, format uint8) (*Transaction, error) {
	var msg wire.MsgTx
	if err := msg.DeserializeNoWitness(r); err != nil {
		return nil, fmt.Errorf("deserialize transaction: %w", err)
	}
	var height uint32
	if format == TxFormatReferenceHeight {
		if err := binary.Read(r, binary.LittleEndian, &height); err != nil {
			return nil, fmt.Errorf("read reference height: %w", err)
		}
	}
	return TransactionFromMsgTx(format, &msg, height), nil
}

// BlockFromMsgBlock builds a legacy-format block from its wire form.
func BlockFromMsgBlock(msg *wire.MsgBlock) *Block {
	b := NewBlock(BlockFormatLegacy, msg.Header)
	for _, tx := range msg.Transactions {
		b.txs.Append(BlockTransaction{Tx: TransactionFromMsgTx(TxFormatLegacy, tx, 0)})
	}
	return b
}

// MsgBlock returns the wire form of the block.
func (b *Block) MsgBlock() (*wire.MsgBlock, error) {
	msg := wire.NewMsgBlock(&b.header)
	for i, bt := range b.txs.items {
		if err := msg.AddTransaction(bt.Tx.MsgTx()); err != nil {
			return nil, fmt.Errorf("add transaction %d of block %s: %w", i, b.Hash(), err)
		}
	}
	return msg, nil
}
