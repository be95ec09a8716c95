// Package registry keeps the chain definitions and checkpoints a node trusts.
package registry

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/safe"
)

// Chains holds registered chain definitions. Name, genesis bytes and genesis
// digest are each unique across the set.
type Chains struct {
	mu        sync.RWMutex
	byName    map[string]model.Chain
	byGenesis map[string]string
	byHash    map[chainhash.Hash]string
}

func NewChains() *Chains {
	return &Chains{
		byName:    make(map[string]model.Chain),
		byGenesis: make(map[string]string),
		byHash:    make(map[chainhash.Hash]string),
	}
}

// Register validates and adds a chain.
func (r *Chains) Register(c model.Chain) error {
	if err := c.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[c.Name]; ok {
		return fmt.Errorf("%w: chain name %q already registered", model.ErrUniquenessConflict, c.Name)
	}
	if other, ok := r.byGenesis[string(c.Genesis)]; ok {
		return fmt.Errorf("%w: chain %q shares genesis bytes with %q", model.ErrUniquenessConflict, c.Name, other)
	}
	if other, ok := r.byHash[c.GenesisHash]; ok {
		return fmt.Errorf("%w: chain %q shares genesis digest with %q", model.ErrUniquenessConflict, c.Name, other)
	}

	c.Genesis = bytes.Clone(c.Genesis)
	r.byName[c.Name] = c
	r.byGenesis[string(c.Genesis)] = c.Name
	r.byHash[c.GenesisHash] = c.Name
	return nil
}

// Get returns the chain registered under name.
func (r *Chains) Get(name string) (model.Chain, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byName[name]
	if !ok {
		return model.Chain{}, fmt.Errorf("%w: chain %q", model.ErrNotFound, name)
	}
	return c, nil
}

// ByGenesisHash returns the chain whose genesis block has digest h.
func (r *Chains) ByGenesisHash(h chainhash.Hash) (model.Chain, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.byHash[h]
	if !ok {
		return model.Chain{}, fmt.Errorf("%w: chain with genesis %s", model.ErrNotFound, h)
	}
	return r.byName[name], nil
}

// All returns the registered chains ordered by name.
func (r *Chains) All() []model.Chain {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Chain, 0, len(r.byName))
	for _, c := range r.byName {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ChainFromParams derives a chain definition from btcd network parameters.
func ChainFromParams(p *chaincfg.Params) (model.Chain, error) {
	raw, err := strconv.ParseUint(p.DefaultPort, 10, 64)
	if err != nil {
		return model.Chain{}, fmt.Errorf("%w: chain %s port %q: %v", model.ErrValidation, p.Name, p.DefaultPort, err)
	}
	port, err := safe.Uint16(raw)
	if err != nil {
		return model.Chain{}, fmt.Errorf("%w: chain %s port: %v", model.ErrValidation, p.Name, err)
	}

	var genesis bytes.Buffer
	if err := p.GenesisBlock.Header.Serialize(&genesis); err != nil {
		return model.Chain{}, fmt.Errorf("serialize %s genesis header: %w", p.Name, err)
	}

	c := model.Chain{
		Name:             p.Name,
		Port:             port,
		Genesis:          genesis.Bytes(),
		GenesisHash:      *p.GenesisHash,
		PubKeyHashPrefix: p.PubKeyHashAddrID,
		ScriptHashPrefix: p.ScriptHashAddrID,
		SecretPrefix:     p.PrivateKeyID,
		Testnet:          p.Net != wire.MainNet,
	}
	binary.LittleEndian.PutUint32(c.Magic[:], uint32(p.Net))
	return c, nil
}
