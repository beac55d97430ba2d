package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/config"
)

// DefaultTimeout bounds every network call of a single command
const DefaultTimeout = 5 * time.Minute

// Provider creates RuntimeConfig for Wire dependency injection.
// Precedence is flag, then VETO_* environment variable, then veto.toml, then built-in defaults.
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		projectRoot = FindProjectRoot()
	}

	loadEnvFiles(projectRoot)

	vetoFile, err := loadVetoFile(projectRoot)
	if err != nil {
		return nil, err
	}
	defaults := config.DefaultsConfig{}
	source := "defaults"
	if vetoFile != nil {
		defaults = vetoFile.Defaults
		source = VetoFileName
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		PrivateKey:     v.GetString("private_key"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		ConfigSource:   source,
		VetoConfig:     vetoFile,
	}

	if cfg.Timeout, err = resolveTimeout(v.GetDuration("timeout"), defaults.Timeout); err != nil {
		return nil, err
	}
	if cfg.GasEstimationFactor, err = resolveFactor(v.GetFloat64("gas_estimation_factor"), defaults.GasEstimationFactor); err != nil {
		return nil, err
	}

	pluginType, err := domain.ParsePluginType(firstNonEmpty(v.GetString("plugin_type"), defaults.PluginType, string(domain.PluginTypeVeto)))
	if err != nil {
		return nil, err
	}
	cfg.PluginType = pluginType

	if plugin := firstNonEmpty(v.GetString("plugin"), defaults.Plugin); plugin != "" {
		if !common.IsHexAddress(plugin) {
			return nil, fmt.Errorf("plugin: %w: %q", domain.ErrInvalidAddress, plugin)
		}
		cfg.PluginAddress = strings.ToLower(plugin)
	}

	network, err := resolveNetwork(v, vetoFile, defaults.Network)
	if err != nil {
		return nil, err
	}
	cfg.Network = network

	return cfg, nil
}

// resolveNetwork picks the named network and applies endpoint overrides.
// Endpoint overrides without a network name produce an ad-hoc "custom" network.
func resolveNetwork(v *viper.Viper, vetoFile *config.VetoFileConfig, fileDefault string) (*config.Network, error) {
	name := firstNonEmpty(v.GetString("network"), fileDefault)
	rpcURL := v.GetString("rpc_url")
	subgraphURL := v.GetString("subgraph_url")

	var network *config.Network
	switch {
	case name != "":
		resolved, err := NewNetworkResolver(vetoFile).Resolve(name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve network %s: %w", name, err)
		}
		network = resolved
	case rpcURL != "" || subgraphURL != "":
		network = &config.Network{Name: "custom"}
	default:
		return nil, nil
	}

	override(&network.RPCURL, rpcURL)
	override(&network.SubgraphURL, subgraphURL)
	override(&network.IpfsURL, v.GetString("ipfs_url"))
	override(&network.IpfsAPIKey, v.GetString("ipfs_api_key"))
	return network, nil
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func resolveTimeout(flag time.Duration, fromFile string) (time.Duration, error) {
	if flag > 0 {
		return flag, nil
	}
	if fromFile != "" {
		d, err := time.ParseDuration(fromFile)
		if err != nil {
			return 0, fmt.Errorf("invalid timeout %q in %s: %w", fromFile, VetoFileName, err)
		}
		return d, nil
	}
	return DefaultTimeout, nil
}

func resolveFactor(fromEnv, fromFile float64) (float64, error) {
	factor := config.DefaultGasEstimationFactor
	switch {
	case fromEnv != 0:
		factor = fromEnv
	case fromFile != 0:
		factor = fromFile
	}
	if factor <= 0 || factor > 1 {
		return 0, fmt.Errorf("gas estimation factor must be in (0, 1], got %v", factor)
	}
	return factor, nil
}

// FindProjectRoot walks up from the current directory to find veto.toml.
// Outside a project the current directory is used.
func FindProjectRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}

	for dir := cwd; ; {
		if _, err := os.Stat(filepath.Join(dir, VetoFileName)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("VETO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("json", false)
	v.SetDefault("project_root", projectRoot)

	// Flags are bound under their snake_case key so VETO_RPC_URL and --rpc-url share one key
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(flagKey(f.Name), f); err != nil {
			panic(err)
		}
	})

	return v
}

func flagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
