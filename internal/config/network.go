package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/config"
)

// defaultNetworks are the well-known chains. Endpoints and plugin repos come
// from veto.toml or flags.
var defaultNetworks = []config.Network{
	{Name: "mainnet", ChainID: 1},
	{Name: "goerli", ChainID: 5},
	{Name: "sepolia", ChainID: 11155111},
	{Name: "polygon", ChainID: 137},
	{Name: "mumbai", ChainID: 80001},
	{Name: "base", ChainID: 8453},
	{Name: "local", ChainID: 31337, RPCURL: "http://localhost:8545"},
}

// networkAliases map alternative names onto a default network
var networkAliases = map[string]string{
	"maticmum":  "mumbai",
	"homestead": "mainnet",
	"localhost": "local",
	"anvil":     "local",
}

// NetworkResolver resolves network names or chain ids to configurations.
// veto.toml entries are layered over the built-in defaults.
type NetworkResolver struct {
	networks      map[string]config.Network
	raw           map[string]config.NetworkConfig
	chainIDLookup map[uint64]string
}

// NewNetworkResolver creates a resolver over the [networks] table of veto.toml
func NewNetworkResolver(file *config.VetoFileConfig) *NetworkResolver {
	r := &NetworkResolver{
		networks:      make(map[string]config.Network),
		raw:           make(map[string]config.NetworkConfig),
		chainIDLookup: make(map[uint64]string),
	}
	for _, n := range defaultNetworks {
		r.networks[n.Name] = n
		r.chainIDLookup[n.ChainID] = n.Name
	}
	if file != nil {
		for name, nc := range file.Networks {
			name = strings.ToLower(name)
			r.raw[name] = nc
			if nc.ChainID != 0 {
				r.chainIDLookup[nc.ChainID] = name
			}
		}
	}
	return r
}

// Names lists every resolvable network name, sorted
func (r *NetworkResolver) Names() []string {
	names := lo.Uniq(append(lo.Keys(r.networks), lo.Keys(r.raw)...))
	slices.Sort(names)
	return names
}

// Resolve resolves a network by name (case-insensitive, aliases allowed) or chain id
func (r *NetworkResolver) Resolve(input string) (*config.Network, error) {
	if input == "" {
		return nil, fmt.Errorf("network not specified")
	}
	name := strings.ToLower(strings.TrimSpace(input))
	if alias, ok := networkAliases[name]; ok {
		if _, configured := r.raw[name]; !configured {
			name = alias
		}
	}

	if chainID, err := strconv.ParseUint(name, 10, 64); err == nil {
		known, ok := r.chainIDLookup[chainID]
		if !ok {
			return nil, domain.UnsupportedNetworkError{Network: input}
		}
		name = known
	}

	base, isDefault := r.networks[name]
	raw, configured := r.raw[name]
	if !isDefault && !configured {
		return nil, fmt.Errorf("unknown network: %s", input)
	}

	network := base
	network.Name = name
	if configured {
		if err := overlay(&network, name, raw); err != nil {
			return nil, err
		}
	}
	return &network, nil
}

// overlay applies a veto.toml network section onto n
func overlay(n *config.Network, name string, raw config.NetworkConfig) error {
	if raw.ChainID != 0 {
		n.ChainID = raw.ChainID
	}

	strs := []struct {
		field string
		raw   string
		dst   *string
	}{
		{"rpc_url", raw.RPCURL, &n.RPCURL},
		{"subgraph_url", raw.SubgraphURL, &n.SubgraphURL},
		{"ipfs_url", raw.IpfsURL, &n.IpfsURL},
		{"ipfs_api_key", raw.IpfsAPIKey, &n.IpfsAPIKey},
	}
	for _, s := range strs {
		if s.raw == "" {
			continue
		}
		v, err := expandField(name, s.field, s.raw)
		if err != nil {
			return err
		}
		*s.dst = v
	}

	addrs := []struct {
		field string
		raw   string
		dst   *common.Address
	}{
		{"ens_registry", raw.ENSRegistry, &n.ENSRegistry},
		{"veto_plugin_repo", raw.VetoPluginRepo, &n.VetoPluginRepo},
		{"multisig_plugin_repo", raw.MultisigPluginRepo, &n.MultisigPluginRepo},
	}
	for _, a := range addrs {
		if a.raw == "" {
			continue
		}
		v, err := expandField(name, a.field, a.raw)
		if err != nil {
			return err
		}
		if !common.IsHexAddress(v) {
			return fmt.Errorf("networks.%s.%s: %w: %q", name, a.field, domain.ErrInvalidAddress, v)
		}
		*a.dst = common.HexToAddress(v)
	}
	return nil
}

// ProvideNetworkResolver creates a NetworkResolver for Wire dependency injection
func ProvideNetworkResolver(cfg *config.RuntimeConfig) *NetworkResolver {
	return NewNetworkResolver(cfg.VetoConfig)
}
