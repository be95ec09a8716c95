package registry

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
)

var builtinParams = []*chaincfg.Params{
	&chaincfg.MainNetParams,
	&chaincfg.TestNet3Params,
	&chaincfg.RegressionNetParams,
	&chaincfg.SigNetParams,
	&chaincfg.SimNetParams,
}

// Default registers the networks btcd ships with, plus their checkpoints.
func Default() (*Chains, *Checkpoints, error) {
	chains := NewChains()
	checkpoints := NewCheckpoints()
	for _, p := range builtinParams {
		c, err := ChainFromParams(p)
		if err != nil {
			return nil, nil, err
		}
		if err := chains.Register(c); err != nil {
			return nil, nil, fmt.Errorf("register %s: %w", p.Name, err)
		}
		for _, cp := range CheckpointsFromParams(c.Name, p) {
			if err := checkpoints.Add(cp); err != nil {
				return nil, nil, fmt.Errorf("add %s checkpoint: %w", p.Name, err)
			}
		}
	}
	return chains, checkpoints, nil
}
