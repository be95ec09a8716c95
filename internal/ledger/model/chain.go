package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Chain describes one ledger universe. It is immutable once registered.
type Chain struct {
	Name             string
	Magic            [4]byte
	Port             uint16
	Genesis          []byte
	GenesisHash      chainhash.Hash
	PubKeyHashPrefix byte
	ScriptHashPrefix byte
	SecretPrefix     byte
	Testnet          bool
}

// Validate checks the definition before registration.
func (c Chain) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: chain name is required", ErrValidation)
	}
	if c.Port == 0 {
		return fmt.Errorf("%w: chain %s port must be non-zero", ErrValidation, c.Name)
	}
	if len(c.Genesis) != HeaderSize {
		return fmt.Errorf("%w: chain %s genesis is %d bytes, want %d", ErrValidation, c.Name, len(c.Genesis), HeaderSize)
	}
	if got := chainhash.DoubleHashH(c.Genesis); got != c.GenesisHash {
		return fmt.Errorf("%w: chain %s genesis digest %s does not match %s", ErrValidation, c.Name, got, c.GenesisHash)
	}
	if c.PubKeyHashPrefix == c.ScriptHashPrefix ||
		c.PubKeyHashPrefix == c.SecretPrefix ||
		c.ScriptHashPrefix == c.SecretPrefix {
		return fmt.Errorf("%w: chain %s payload prefixes %d/%d/%d are not distinct",
			ErrValidation, c.Name, c.PubKeyHashPrefix, c.ScriptHashPrefix, c.SecretPrefix)
	}
	return nil
}

// String identifies the chain by its genesis digest.
func (c Chain) String() string {
	return c.GenesisHash.String()
}
