package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"

	"github.com/capitaldao/veto-cli/internal/domain/config"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{out: out}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// RenderConfig renders the resolved runtime configuration. The signing key is never printed.
func (r *ConfigRenderer) RenderConfig(cfg *config.RuntimeConfig) error {
	fmt.Fprintln(r.out, "📋 Current config:")
	fmt.Fprintf(r.out, "Plugin type: %s\n", cfg.PluginType)
	fmt.Fprintf(r.out, "Plugin:      %s\n", orNotSet(cfg.PluginAddress))
	signer := "(read-only)"
	if cfg.HasSigner() {
		signer = "private key configured"
	}
	fmt.Fprintf(r.out, "Signer:      %s\n", signer)
	fmt.Fprintf(r.out, "Timeout:     %s\n", cfg.Timeout)
	fmt.Fprintf(r.out, "Gas factor:  %v\n", cfg.GasEstimationFactor)

	if cfg.Network == nil {
		fmt.Fprintf(r.out, "Network:     %s\n", "(not set)")
	} else {
		n := cfg.Network
		fmt.Fprintf(r.out, "Network:     %s (chain %d)\n", n.Name, n.ChainID)
		fmt.Fprintf(r.out, "  RPC:       %s\n", orNotSet(n.RPCURL))
		fmt.Fprintf(r.out, "  Subgraph:  %s\n", orNotSet(n.SubgraphURL))
		fmt.Fprintf(r.out, "  IPFS:      %s\n", orNotSet(n.IpfsURL))
		if n.VetoPluginRepo != (common.Address{}) {
			fmt.Fprintf(r.out, "  Veto repo: %s\n", n.VetoPluginRepo.Hex())
		}
		if n.MultisigPluginRepo != (common.Address{}) {
			fmt.Fprintf(r.out, "  Multisig repo: %s\n", n.MultisigPluginRepo.Hex())
		}
	}

	if cfg.ConfigSource == "defaults" {
		fmt.Fprintf(r.out, "\n📦 Config source: defaults (no veto.toml found)\n")
		return nil
	}
	fmt.Fprintf(r.out, "\n📦 Config source: %s\n", cfg.ConfigSource)
	fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(filepath.Join(cfg.ProjectRoot, cfg.ConfigSource)))
	return nil
}

// RenderNetworks renders the resolvable networks
func (r *ConfigRenderer) RenderNetworks(networks []*config.Network, errs map[string]error) error {
	if len(networks) == 0 && len(errs) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)
	for _, network := range networks {
		marker := "✅"
		if !network.IsSupported() {
			marker = "➖"
		}
		fmt.Fprintf(r.out, "  %s %s - Chain ID: %d\n", marker, network.Name, network.ChainID)
	}
	names := lo.Keys(errs)
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(r.out, "  ❌ %s - Error: %v\n", name, errs[name])
	}
	return nil
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
