package index

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/patricia"
)

// TxIDEntry marks a transaction as confirmed.
type TxIDEntry struct {
	TxID chainhash.Hash
}

type txIDCodec struct{}

func (txIDCodec) DeriveKey(e TxIDEntry) (patricia.Bits, error) {
	return patricia.BitsFromBytes(e.TxID[:]), nil
}

func (txIDCodec) EncodeValue(TxIDEntry) ([]byte, error) {
	return []byte{}, nil
}

func (txIDCodec) DecodeValue(value []byte) (TxIDEntry, error) {
	if len(value) != 0 {
		return TxIDEntry{}, fmt.Errorf("%w: txid index value has %d bytes", model.ErrStructuralInvariant, len(value))
	}
	return TxIDEntry{}, nil
}

// TxIDIndex is the presence index keyed by transaction digest.
type TxIDIndex struct {
	*Index[TxIDEntry]
}

func NewTxIDIndex() *TxIDIndex {
	return &TxIDIndex{Index: New[TxIDEntry](TxIDKind, TxIDKeyBits, txIDCodec{})}
}

// Contains reports whether txid is present under root.
func (i *TxIDIndex) Contains(r patricia.NodeReader, root patricia.NodeID, txid chainhash.Hash) (bool, error) {
	return i.Index.Contains(r, root, TxIDEntry{TxID: txid})
}
