package leveldb

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

const (
	maxWorkBytes     = 64
	maxContractBytes = 1 << 20
)

func nodeKey(id uint64) []byte {
	key := make([]byte, 9)
	key[0] = nodePrefix
	binary.BigEndian.PutUint64(key[1:], id)
	return key
}

func hashKey(prefix byte, hash chainhash.Hash) []byte {
	key := make([]byte, 1+chainhash.HashSize)
	key[0] = prefix
	copy(key[1:], hash[:])
	return key
}

func outputKey(op model.OutPoint) []byte {
	key := make([]byte, 1+chainhash.HashSize+4)
	key[0] = outputPrefix
	copy(key[1:], op.Hash[:])
	binary.BigEndian.PutUint32(key[1+chainhash.HashSize:], op.Index)
	return key
}

func encodeRoot(w io.Writer, r model.Root) error {
	if err := binary.Write(w, binary.BigEndian, r.ID); err != nil {
		return err
	}
	if _, err := w.Write(r.Digest[:]); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, r.Size)
}

func decodeRoot(r io.Reader) (model.Root, error) {
	var root model.Root
	if err := binary.Read(r, binary.BigEndian, &root.ID); err != nil {
		return root, err
	}
	if _, err := io.ReadFull(r, root.Digest[:]); err != nil {
		return root, err
	}
	if err := binary.Read(r, binary.BigEndian, &root.Size); err != nil {
		return root, err
	}
	return root, nil
}

func encodeInfo(info model.ConnectedBlockInfo) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(info.Parent[:])
	if err := binary.Write(&buf, binary.BigEndian, info.Height); err != nil {
		return nil, err
	}
	if err := wire.WriteVarBytes(&buf, 0, info.Work.Bytes()); err != nil {
		return nil, err
	}
	if err := encodeRoot(&buf, info.TxIDRoot); err != nil {
		return nil, err
	}
	if err := encodeRoot(&buf, info.ContractRoot); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.BigEndian, info.Seq); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.BigEndian, info.NodeBase); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeInfo(hash chainhash.Hash, data []byte) (model.ConnectedBlockInfo, error) {
	info := model.ConnectedBlockInfo{Hash: hash}
	r := bytes.NewReader(data)
	if _, err := io.ReadFull(r, info.Parent[:]); err != nil {
		return info, fmt.Errorf("read parent: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &info.Height); err != nil {
		return info, fmt.Errorf("read height: %w", err)
	}
	work, err := wire.ReadVarBytes(r, 0, maxWorkBytes, "work")
	if err != nil {
		return info, fmt.Errorf("read work: %w", err)
	}
	info.Work = new(big.Int).SetBytes(work)
	if info.TxIDRoot, err = decodeRoot(r); err != nil {
		return info, fmt.Errorf("read txid root: %w", err)
	}
	if info.ContractRoot, err = decodeRoot(r); err != nil {
		return info, fmt.Errorf("read contract root: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &info.Seq); err != nil {
		return info, fmt.Errorf("read seq: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &info.NodeBase); err != nil {
		return info, fmt.Errorf("read node base: %w", err)
	}
	if r.Len() != 0 {
		return info, fmt.Errorf("%w: %d trailing bytes in connected block %s", model.ErrStructuralInvariant, r.Len(), hash)
	}
	return info, nil
}

func encodeBlock(b *model.Block) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(b.Format())
	header := b.Header()
	if err := header.Serialize(&buf); err != nil {
		return nil, err
	}
	txs := b.Transactions()
	if err := wire.WriteVarInt(&buf, 0, uint64(len(txs))); err != nil {
		return nil, err
	}
	for _, bt := range txs {
		buf.WriteByte(bt.Tx.Format())
		if err := bt.Tx.Serialize(&buf); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func decodeBlock(data []byte) (*model.Block, error) {
	r := bytes.NewReader(data)
	format, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("read format: %w", err)
	}
	var header wire.BlockHeader
	if err := header.Deserialize(r); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	count, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return nil, fmt.Errorf("read transaction count: %w", err)
	}
	if count > uint64(r.Len()) {
		return nil, fmt.Errorf("%w: transaction count %d exceeds payload", model.ErrStructuralInvariant, count)
	}

	b := model.NewBlock(format, header)
	for i := uint64(0); i < count; i++ {
		txFormat, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("read transaction %d format: %w", i, err)
		}
		tx, err := model.ReadTransaction(r, txFormat)
		if err != nil {
			return nil, fmt.Errorf("read transaction %d: %w", i, err)
		}
		b.AppendTransaction(tx)
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes in block", model.ErrStructuralInvariant, r.Len())
	}
	return b, nil
}

func encodeOutput(out model.Output) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.BigEndian, out.Amount); err != nil {
		return nil, err
	}
	if err := wire.WriteVarBytes(&buf, 0, out.Contract); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeOutput(index uint32, data []byte) (model.Output, error) {
	out := model.Output{Offset: index}
	r := bytes.NewReader(data)
	if err := binary.Read(r, binary.BigEndian, &out.Amount); err != nil {
		return out, fmt.Errorf("read amount: %w", err)
	}
	contract, err := wire.ReadVarBytes(r, 0, maxContractBytes, "contract")
	if err != nil {
		return out, fmt.Errorf("read contract: %w", err)
	}
	out.Contract = contract
	return out, nil
}
