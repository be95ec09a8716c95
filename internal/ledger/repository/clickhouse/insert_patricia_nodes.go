package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/patricia"
)

const insertPatriciaNodesQuery = `
INSERT INTO ledger_patricia_nodes (
	chain,
	id,
	kind,
	value,
	pruned,
	left_prefix,
	left_child,
	left_hash,
	right_prefix,
	right_child,
	right_hash,
	hash,
	size,
	length
) VALUES`

// InsertPatriciaNodes stores trie nodes with inline child columns.
func (r *Repository) InsertPatriciaNodes(ctx context.Context, chain string, nodes []*patricia.Node) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_patricia_nodes", chain, err, start)
	}()

	if len(nodes) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertPatriciaNodesQuery)
	if err != nil {
		return fmt.Errorf("prepare patricia nodes batch: %w", err)
	}

	for _, n := range nodes {
		left := nodeLink(n.Link(patricia.Left))
		right := nodeLink(n.Link(patricia.Right))
		if err = batch.Append(
			chain,
			uint64(n.ID()),
			uint8(n.Tag()),
			nodeValue(n),
			n.Pruned(),
			left.prefix,
			left.child,
			left.hash,
			right.prefix,
			right.child,
			right.hash,
			n.Digest().String(),
			n.Size(),
			n.Length(),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append patricia node: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert patricia nodes: %w", err)
	}
	return nil
}

type linkColumns struct {
	prefix string
	child  uint64
	hash   string
}

func nodeLink(l *patricia.Link) linkColumns {
	if l == nil {
		return linkColumns{}
	}
	return linkColumns{prefix: l.Prefix.String(), child: uint64(l.Child), hash: l.Hash.String()}
}

func nodeValue(n *patricia.Node) *string {
	v, ok := n.Value()
	if !ok {
		return nil
	}
	s := string(v)
	return &s
}
