package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/capitaldao/veto-cli/internal/adapters/progress"
	"github.com/capitaldao/veto-cli/internal/app"
	"github.com/capitaldao/veto-cli/internal/cli/render"
	"github.com/capitaldao/veto-cli/internal/config"
	"github.com/capitaldao/veto-cli/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// skipInit lists commands that run without a resolved configuration
var skipInit = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
}

// NewRootCmd creates the root command of the veto CLI
func NewRootCmd() *cobra.Command {
	var cleanup func()

	rootCmd := &cobra.Command{
		Use:   "veto",
		Short: "Command line client for veto DAO governance plugins",
		Long: `veto reads and writes proposals of veto and multisig governance plugins.

Reads go through the plugin's subgraph, writes are signed with a local key and sent
to the network's RPC endpoint. Proposal metadata is pinned on IPFS.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipInit[cmd.Name()] {
				return nil
			}

			projectRoot := config.FindProjectRoot()
			v := config.SetupViper(projectRoot, cmd)

			sink := newSink(cmd, v.GetBool("json") || v.GetBool("non_interactive"))

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cancel := func() {}
			if appInstance.Config.Timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
			}
			cleanup = func() {
				stopProgress(appInstance)
				cancel()
			}
			cmd.SetContext(ctx)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cleanup != nil {
				cleanup()
			}
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("network", "n", "", "Network to use (name or chain id, e.g. mainnet, sepolia, 8453)")
	flags.StringP("plugin", "p", "", "Plugin instance address")
	flags.String("plugin-type", "", "Plugin type (e.g. veto.plugin.dao.eth, veto-multisig-v2.plugin.dao.eth)")
	flags.String("rpc-url", "", "RPC endpoint, overrides the network's")
	flags.String("subgraph-url", "", "Subgraph endpoint, overrides the network's")
	flags.String("ipfs-url", "", "IPFS API endpoint, overrides the network's")
	flags.String("ipfs-api-key", "", "IPFS API key")
	flags.String("private-key", "", "Hex private key used to sign transactions")
	flags.Duration("timeout", 0, "Command timeout (default 5m)")
	flags.Bool("json", false, "Output in JSON format")
	flags.StringP("output", "o", "text", "Output format (text, json, yaml)")
	flags.Bool("non-interactive", false, "Disable interactive prompts")
	flags.Bool("debug", false, "Enable debug output")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "governance",
		Title: "Governance Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "plugin",
		Title: "Plugin Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "tools",
		Title: "Encoding Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	addToGroup(rootCmd, "governance",
		NewProposalsCmd(),
		NewDepositCmd(),
		NewPinCmd(),
	)
	addToGroup(rootCmd, "plugin",
		NewSettingsCmd(),
		NewTokenCmd(),
		NewMembersCmd(),
		NewDaosCmd(),
	)
	addToGroup(rootCmd, "tools",
		NewEncodeCmd(),
		NewDecodeCmd(),
		NewEstimateCmd(),
	)
	addToGroup(rootCmd, "management",
		NewNetworksCmd(),
		NewConfigCmd(),
	)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

func addToGroup(root *cobra.Command, group string, cmds ...*cobra.Command) {
	for _, c := range cmds {
		c.GroupID = group
		root.AddCommand(c)
	}
}

// newSink picks the spinner for interactive terminals and a silent sink otherwise
func newSink(cmd *cobra.Command, quiet bool) usecase.ProgressSink {
	if quiet {
		return progress.NewNopSink()
	}
	if f, ok := cmd.ErrOrStderr().(*os.File); ok {
		return progress.NewSpinnerSinkWithWriter(f)
	}
	return progress.NewNopSink()
}

type stopper interface {
	Stop()
}

// stopProgress clears the spinner before results are printed
func stopProgress(a *app.App) {
	if s, ok := a.Sink.(stopper); ok {
		s.Stop()
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}

// outputFormat resolves --output, with --json taking precedence
func outputFormat(cmd *cobra.Command, a *app.App) (render.Format, error) {
	if a.Config.JSON {
		return render.FormatJSON, nil
	}
	s, err := cmd.Flags().GetString("output")
	if err != nil {
		return render.FormatText, nil
	}
	return render.ParseFormat(s)
}

// emit writes v in the requested structured format, or calls text for plain output
func emit(cmd *cobra.Command, a *app.App, v any, text func() error) error {
	format, err := outputFormat(cmd, a)
	if err != nil {
		return err
	}
	stopProgress(a)
	done, err := render.Structured(cmd.OutOrStdout(), format, v)
	if done || err != nil {
		return err
	}
	return text()
}

// pluginAddress returns the positional plugin argument or the configured plugin address
func pluginAddress(a *app.App, args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return a.Config.PluginAddress
}
