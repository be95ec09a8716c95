package index

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/patricia"
)

const maxContractSize = 1 << 20

// ContractEntry is an unspent output claim: where it lives and what it locks.
type ContractEntry struct {
	OutPoint model.OutPoint
	Amount   int64
	Contract []byte
}

type contractCodec struct{}

// DeriveKey is H(contract) || txid || big-endian output index.
func (contractCodec) DeriveKey(e ContractEntry) (patricia.Bits, error) {
	key := make([]byte, 0, ContractKeyBits/8)
	key = append(key, chainhash.DoubleHashB(e.Contract)...)
	key = append(key, e.OutPoint.Hash[:]...)
	key = binary.BigEndian.AppendUint32(key, e.OutPoint.Index)
	return patricia.BitsFromBytes(key), nil
}

func (contractCodec) EncodeValue(e ContractEntry) ([]byte, error) {
	if err := (model.Output{Offset: e.OutPoint.Index, Amount: e.Amount}).Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := wire.WriteVarInt(&buf, 0, uint64(e.Amount)); err != nil {
		return nil, fmt.Errorf("write amount: %w", err)
	}
	if err := wire.WriteVarBytes(&buf, 0, e.Contract); err != nil {
		return nil, fmt.Errorf("write contract: %w", err)
	}
	return buf.Bytes(), nil
}

func (contractCodec) DecodeValue(value []byte) (ContractEntry, error) {
	r := bytes.NewReader(value)
	amount, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return ContractEntry{}, fmt.Errorf("read amount: %w", err)
	}
	if amount > math.MaxInt64 || int64(amount) > model.MaxAmount {
		return ContractEntry{}, fmt.Errorf("%w: stored amount %d", model.ErrStructuralInvariant, amount)
	}
	contract, err := wire.ReadVarBytes(r, 0, maxContractSize, "contract")
	if err != nil {
		return ContractEntry{}, fmt.Errorf("read contract: %w", err)
	}
	return ContractEntry{Amount: int64(amount), Contract: contract}, nil
}

// ContractIndex is the unspent-output index.
type ContractIndex struct {
	*Index[ContractEntry]
}

func NewContractIndex() *ContractIndex {
	return &ContractIndex{Index: New[ContractEntry](ContractKind, ContractKeyBits, contractCodec{})}
}

// Entry looks up an output claim and fills in its outpoint.
func (i *ContractIndex) Entry(r patricia.NodeReader, root patricia.NodeID, op model.OutPoint, contract []byte) (ContractEntry, error) {
	e, err := i.Lookup(r, root, ContractEntry{OutPoint: op, Contract: contract})
	if err != nil {
		return ContractEntry{}, err
	}
	e.OutPoint = op
	return e, nil
}

// OutPointFromKey recovers the outpoint encoded in a contract index key.
func OutPointFromKey(key patricia.Bits) (model.OutPoint, error) {
	if key.Len() != ContractKeyBits {
		return model.OutPoint{}, fmt.Errorf("%w: got %d bits, want %d", patricia.ErrInvalidKey, key.Len(), ContractKeyBits)
	}
	raw := key.Bytes()
	var op model.OutPoint
	copy(op.Hash[:], raw[chainhash.HashSize:2*chainhash.HashSize])
	op.Index = binary.BigEndian.Uint32(raw[2*chainhash.HashSize:])
	return op, nil
}
