package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/capitaldao/veto-cli/internal/domain/config"
)

// VetoFileName is the project configuration file looked up from the working directory upwards
const VetoFileName = "veto.toml"

// envVarPattern matches ${VAR_NAME} patterns in TOML values
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw TOML value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// loadEnvFiles loads .env and .env.local from the project root. Variables
// already present in the environment win.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadVetoFile loads and parses veto.toml if it exists.
// Returns (nil, nil) when veto.toml does not exist. Values are returned raw;
// ${VAR} references are expanded when a network is resolved.
func loadVetoFile(projectRoot string) (*config.VetoFileConfig, error) {
	path := filepath.Join(projectRoot, VetoFileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var cfg config.VetoFileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", VetoFileName, err)
	}

	cfg.Defaults.Network = os.ExpandEnv(cfg.Defaults.Network)
	cfg.Defaults.Plugin = os.ExpandEnv(cfg.Defaults.Plugin)
	cfg.Defaults.PluginType = os.ExpandEnv(cfg.Defaults.PluginType)
	cfg.Defaults.Timeout = os.ExpandEnv(cfg.Defaults.Timeout)

	return &cfg, nil
}

// expandField expands a raw value and fails when it is a pure ${VAR}
// reference to a variable that is not set.
func expandField(network, field, raw string) (string, error) {
	if name, ok := DetectEnvVar(raw); ok {
		if _, set := os.LookupEnv(name); !set {
			return "", fmt.Errorf("networks.%s.%s references ${%s}, which is not set", network, field, name)
		}
	}
	return os.ExpandEnv(raw), nil
}
