package patricia

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

var (
	// ErrInvalidKey is returned for keys of the wrong bit length.
	ErrInvalidKey = fmt.Errorf("%w: invalid key", model.ErrValidation)
	// ErrPruned is returned when an operation needs content elided from a pruned trie.
	ErrPruned = errors.New("subtree pruned")
	// ErrEmptyPrefix is returned when an edge would carry no bits.
	ErrEmptyPrefix = fmt.Errorf("%w: empty edge prefix", model.ErrStructuralInvariant)
	// ErrProofMismatch is returned when a proof does not recompute to the expected root.
	ErrProofMismatch = fmt.Errorf("%w: proof does not match root", model.ErrValidation)
)
