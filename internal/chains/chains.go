package chains

import (
	_ "embed"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

//go:embed presets.toml
var defaultPresets string

var ErrUnknownChain = errors.New("unknown chain")

// Chain describes an EVM network the token contract can live on.
type Chain struct {
	ID           int64    `toml:"id"`
	Key          string   `toml:"key"`
	Name         string   `toml:"name"`
	NativeSymbol string   `toml:"native_symbol"`
	RPCURLs      []string `toml:"rpc_urls"`
	ExplorerURL  string   `toml:"explorer_url"`
	Testnet      bool     `toml:"testnet"`
}

// AddressURL links to the address page of the chain explorer, empty if no explorer is known.
func (c Chain) AddressURL(address string) string {
	if c.ExplorerURL == "" {
		return ""
	}
	return strings.TrimSuffix(c.ExplorerURL, "/") + "/address/" + address
}

// TxURL links to the transaction page of the chain explorer, empty if no explorer is known.
func (c Chain) TxURL(hash string) string {
	if c.ExplorerURL == "" {
		return ""
	}
	return strings.TrimSuffix(c.ExplorerURL, "/") + "/tx/" + hash
}

type Registry struct {
	byID map[int64]Chain
}

type presetFile struct {
	Chain []Chain `toml:"chain"`
}

// Default returns the registry of the built-in presets.
func Default() (*Registry, error) {
	return Load(strings.NewReader(defaultPresets))
}

// LoadFile returns the built-in presets overlaid by the chains defined in path.
func LoadFile(path string) (*Registry, error) {
	reg, err := Default()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open chain presets")
	}
	defer f.Close()

	custom, err := Load(f)
	if err != nil {
		return nil, err
	}

	for id, chain := range custom.byID {
		reg.byID[id] = chain
	}

	return reg, nil
}

func Load(r io.Reader) (*Registry, error) {
	var file presetFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, errors.Wrap(err, "failed to decode chain presets")
	}

	reg := &Registry{byID: make(map[int64]Chain, len(file.Chain))}
	for _, chain := range file.Chain {
		if chain.ID <= 0 {
			return nil, errors.Errorf("chain %q has invalid id %d", chain.Name, chain.ID)
		}
		if _, dup := reg.byID[chain.ID]; dup {
			return nil, errors.Errorf("chain id %d defined twice", chain.ID)
		}
		reg.byID[chain.ID] = chain
	}

	return reg, nil
}

func (r *Registry) ByID(id int64) (Chain, error) {
	chain, ok := r.byID[id]
	if !ok {
		return Chain{}, errors.Wrapf(ErrUnknownChain, "chain_id=%d", id)
	}
	return chain, nil
}

// All returns the chains sorted by id.
func (r *Registry) All() []Chain {
	res := make([]Chain, 0, len(r.byID))
	for _, chain := range r.byID {
		res = append(res, chain)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}
