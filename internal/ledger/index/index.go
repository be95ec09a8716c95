// Package index binds the trie engine to the two ledger indices: a presence
// index over transaction ids and a value-bearing index over unspent outputs.
package index

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/patricia"
)

const (
	TxIDKind     patricia.Tag = 1
	ContractKind patricia.Tag = 2

	TxIDKeyBits     = chainhash.HashSize * 8
	ContractKeyBits = chainhash.HashSize*8*2 + 32
)

// KindName returns the persisted name of an index tag.
func KindName(tag patricia.Tag) string {
	switch tag {
	case TxIDKind:
		return "txid_index"
	case ContractKind:
		return "contract_index"
	default:
		return "unknown"
	}
}

// Codec maps an entity to a trie key and a leaf value.
type Codec[E any] interface {
	DeriveKey(e E) (patricia.Bits, error)
	EncodeValue(e E) ([]byte, error)
	DecodeValue(value []byte) (E, error)
}

// Index is a trie specialised by a codec.
type Index[E any] struct {
	trie  *patricia.Trie
	codec Codec[E]
}

// New binds codec to a trie with the given tag and key width.
func New[E any](tag patricia.Tag, keyBits int, codec Codec[E]) *Index[E] {
	return &Index[E]{
		trie:  patricia.New(patricia.Config{Tag: tag, KeyBits: keyBits}),
		codec: codec,
	}
}

// Trie exposes the underlying engine.
func (i *Index[E]) Trie() *patricia.Trie {
	return i.trie
}

// Insert adds e under root.
func (i *Index[E]) Insert(s *patricia.Session, root patricia.NodeID, e E) (patricia.NodeID, error) {
	key, err := i.codec.DeriveKey(e)
	if err != nil {
		return patricia.NoNode, err
	}
	value, err := i.codec.EncodeValue(e)
	if err != nil {
		return patricia.NoNode, err
	}
	next, err := i.trie.Insert(s, root, key, value)
	if err != nil {
		return patricia.NoNode, fmt.Errorf("%s insert: %w", KindName(i.trie.Config().Tag), err)
	}
	return next, nil
}

// Remove deletes e from root.
func (i *Index[E]) Remove(s *patricia.Session, root patricia.NodeID, e E) (patricia.NodeID, error) {
	key, err := i.codec.DeriveKey(e)
	if err != nil {
		return patricia.NoNode, err
	}
	next, err := i.trie.Delete(s, root, key)
	if err != nil {
		return patricia.NoNode, fmt.Errorf("%s remove: %w", KindName(i.trie.Config().Tag), err)
	}
	return next, nil
}

// Lookup returns the fragment stored for e's key.
func (i *Index[E]) Lookup(r patricia.NodeReader, root patricia.NodeID, e E) (E, error) {
	var zero E
	key, err := i.codec.DeriveKey(e)
	if err != nil {
		return zero, err
	}
	value, err := i.trie.Lookup(r, root, key)
	if err != nil {
		return zero, err
	}
	return i.codec.DecodeValue(value)
}

// Contains reports whether e's key is present under root.
func (i *Index[E]) Contains(r patricia.NodeReader, root patricia.NodeID, e E) (bool, error) {
	key, err := i.codec.DeriveKey(e)
	if err != nil {
		return false, err
	}
	_, err = i.trie.Lookup(r, root, key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, model.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Prove returns the inclusion proof for e.
func (i *Index[E]) Prove(r patricia.NodeReader, root patricia.NodeID, e E) (*patricia.Proof, error) {
	key, err := i.codec.DeriveKey(e)
	if err != nil {
		return nil, err
	}
	return i.trie.Prove(r, root, key)
}

// Walk decodes every leaf under root in key order.
func (i *Index[E]) Walk(r patricia.NodeReader, root patricia.NodeID, fn func(key patricia.Bits, e E) error) error {
	return i.trie.Walk(r, root, func(key patricia.Bits, value []byte) error {
		e, err := i.codec.DecodeValue(value)
		if err != nil {
			return err
		}
		return fn(key, e)
	})
}
