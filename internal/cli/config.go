package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/capitaldao/veto-cli/internal/cli/render"
	"github.com/capitaldao/veto-cli/internal/config"
	domainconfig "github.com/capitaldao/veto-cli/internal/domain/config"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Show the configuration the other commands run with.

Values are resolved from flags, then VETO_* environment variables, then
veto.toml, then built-in defaults. The private key is never printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			view := map[string]any{
				"pluginType":          a.Config.PluginType,
				"plugin":              a.Config.PluginAddress,
				"signer":              a.Config.HasSigner(),
				"timeout":             a.Config.Timeout.String(),
				"gasEstimationFactor": a.Config.GasEstimationFactor,
				"network":             a.Config.Network,
				"configSource":        a.Config.ConfigSource,
			}
			return emit(cmd, a, view, func() error {
				return render.NewConfigRenderer(cmd.OutOrStdout()).RenderConfig(a.Config)
			})
		},
	}
}

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List the networks veto can resolve",
		Long: `List built-in networks and the networks declared in veto.toml.

Networks marked ✅ have the governance contracts deployed. A network that
fails to resolve (for example an unset ${VAR} reference) is listed with its error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			var networks []*domainconfig.Network
			errs := map[string]error{}
			for _, name := range a.Networks.Names() {
				n, err := a.Networks.Resolve(name)
				if err != nil {
					errs[name] = err
					continue
				}
				networks = append(networks, n)
			}

			view := map[string]any{"networks": networks}
			if len(errs) > 0 {
				failed := map[string]string{}
				for name, err := range errs {
					failed[name] = err.Error()
				}
				view["errors"] = failed
			}
			return emit(cmd, a, view, func() error {
				return render.NewConfigRenderer(cmd.OutOrStdout()).RenderNetworks(networks, errs)
			})
		},
	}
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of veto",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "veto version %s (commit %s, built %s, %s)\n",
				config.Version, config.Commit, config.Date, runtime.Version())
		},
	}
}
