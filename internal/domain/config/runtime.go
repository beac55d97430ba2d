package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/capitaldao/veto-cli/internal/domain"
)

// DefaultGasEstimationFactor scales the max fee down to the average fee estimate
const DefaultGasEstimationFactor = 0.625

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string

	// Context settings
	Network       *Network // nil if not specified
	PluginAddress string
	PluginType    domain.PluginType

	// Signing key, hex encoded. Empty means read-only.
	PrivateKey string

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	GasEstimationFactor float64

	// Config source tracking
	ConfigSource string // "veto.toml" or "defaults"

	VetoConfig *VetoFileConfig
}

// HasSigner reports whether a signing key was configured
func (c *RuntimeConfig) HasSigner() bool {
	return c.PrivateKey != ""
}

// Network represents network configuration
type Network struct {
	Name        string `json:"name"`
	ChainID     uint64 `json:"chainId"`
	RPCURL      string `json:"rpcUrl"`
	SubgraphURL string `json:"subgraphUrl"`
	IpfsURL     string `json:"ipfsUrl"`
	IpfsAPIKey  string `json:"-"`

	ENSRegistry        common.Address `json:"ensRegistry"`
	VetoPluginRepo     common.Address `json:"vetoPluginRepo"`
	MultisigPluginRepo common.Address `json:"multisigPluginRepo"`
}

// supportedNetworks are the networks the governance contracts are deployed on
var supportedNetworks = map[string]struct{}{
	"mainnet":  {},
	"goerli":   {},
	"sepolia":  {},
	"polygon":  {},
	"mumbai":   {},
	"maticmum": {},
	"base":     {},
	"local":    {},
}

// IsSupported reports whether the governance contracts are deployed on the network
func (n *Network) IsSupported() bool {
	if n == nil {
		return false
	}
	_, ok := supportedNetworks[n.Name]
	return ok
}
