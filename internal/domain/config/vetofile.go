package config

// VetoFileConfig represents the veto.toml file
type VetoFileConfig struct {
	Defaults DefaultsConfig           `toml:"defaults"`
	Networks map[string]NetworkConfig `toml:"networks"`
}

// DefaultsConfig are used when no flag or environment variable overrides them
type DefaultsConfig struct {
	Network             string  `toml:"network,omitempty"`
	Plugin              string  `toml:"plugin,omitempty"`
	PluginType          string  `toml:"plugin_type,omitempty"`
	GasEstimationFactor float64 `toml:"gas_estimation_factor,omitempty"`
	Timeout             string  `toml:"timeout,omitempty"`
}

// NetworkConfig is a [networks.<name>] section. String values may reference
// environment variables as ${VAR}.
type NetworkConfig struct {
	ChainID            uint64 `toml:"chain_id"`
	RPCURL             string `toml:"rpc_url"`
	SubgraphURL        string `toml:"subgraph_url"`
	IpfsURL            string `toml:"ipfs_url,omitempty"`
	IpfsAPIKey         string `toml:"ipfs_api_key,omitempty"` //nolint:gosec // holds env var reference, not a literal secret
	ENSRegistry        string `toml:"ens_registry,omitempty"`
	VetoPluginRepo     string `toml:"veto_plugin_repo,omitempty"`
	MultisigPluginRepo string `toml:"multisig_plugin_repo,omitempty"`
}
