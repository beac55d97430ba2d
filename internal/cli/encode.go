package cli

import (
	"fmt"
	"math/big"
	"time"

	"github.com/spf13/cobra"

	"github.com/capitaldao/veto-cli/internal/app"
	"github.com/capitaldao/veto-cli/internal/cli/render"
	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// NewEncodeCmd creates the encode command group
func NewEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode DAO actions and plugin install data",
		Long: `Encode DAO actions to include in a proposal.

The output is the action's target, value and calldata. Use --output json to
paste it into other tools.`,
	}

	cmd.AddCommand(
		newEncodeSettingsCmd(),
		newEncodeMintCmd(),
		newEncodeMembersCmd("add-members", "Encode adding members to a multisig plugin", true),
		newEncodeMembersCmd("remove-members", "Encode removing members from a multisig plugin", false),
		newEncodeMultisigSettingsCmd(),
		newEncodeInstallCmd(),
	)
	return cmd
}

// votingSettingsFlags are the flags shared by settings encoding and veto plugin install
type votingSettingsFlags struct {
	mode             string
	support          float64
	participation    float64
	minDuration      time.Duration
	minProposerPower string
}

func (f *votingSettingsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mode, "voting-mode", string(models.VotingModeStandard), "Voting mode (Standard, EarlyExecution, VoteReplacement)")
	cmd.Flags().Float64Var(&f.support, "support", 0.5, "Support threshold ratio in [0, 1]")
	cmd.Flags().Float64Var(&f.participation, "participation", 0.1, "Minimum participation ratio in [0, 1]")
	cmd.Flags().DurationVar(&f.minDuration, "min-duration", 24*time.Hour, "Minimum proposal duration")
	cmd.Flags().StringVar(&f.minProposerPower, "min-proposer-power", "0", "Minimum voting power to create proposals, in token units")
}

func (f *votingSettingsFlags) settings() (models.VotingSettings, error) {
	power, ok := new(big.Int).SetString(f.minProposerPower, 10)
	if !ok || power.Sign() < 0 {
		return models.VotingSettings{}, fmt.Errorf("%w: min-proposer-power %q", domain.ErrInvalidAmount, f.minProposerPower)
	}
	if f.minDuration < 0 {
		return models.VotingSettings{}, fmt.Errorf("min-duration must not be negative")
	}
	return models.VotingSettings{
		VotingMode:             models.VotingMode(f.mode),
		SupportThreshold:       f.support,
		MinParticipation:       f.participation,
		MinDuration:            uint64(f.minDuration / time.Second),
		MinProposerVotingPower: power,
	}, nil
}

func newEncodeSettingsCmd() *cobra.Command {
	var flags votingSettingsFlags

	cmd := &cobra.Command{
		Use:   "settings [plugin]",
		Short: "Encode an update of the plugin's voting settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			veto, err := a.Veto()
			if err != nil {
				return err
			}
			settings, err := flags.settings()
			if err != nil {
				return err
			}

			action, err := veto.Encoding().UpdatePluginSettingsAction(pluginAddress(a, args), settings)
			if err != nil {
				return err
			}
			return renderAction(cmd, a, action)
		},
	}

	flags.register(cmd)
	return cmd
}

func newEncodeMintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint <token> <receiver> <amount>",
		Short: "Encode minting governance tokens",
		Long: `Encode a mint call on the governance token.

The amount is in token units (no decimal scaling).`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			veto, err := a.Veto()
			if err != nil {
				return err
			}

			amount, ok := new(big.Int).SetString(args[2], 10)
			if !ok {
				return fmt.Errorf("%w: %q", domain.ErrInvalidAmount, args[2])
			}
			action, err := veto.Encoding().MintTokenAction(args[0], models.MintTokenParams{Address: args[1], Amount: amount})
			if err != nil {
				return err
			}
			return renderAction(cmd, a, action)
		},
	}
	return cmd
}

func newEncodeMembersCmd(use, short string, add bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <member>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			multisig, err := a.Multisig()
			if err != nil {
				return err
			}

			params := models.MembersParams{PluginAddress: a.Config.PluginAddress, Members: args}
			var action *models.DaoAction
			if add {
				action, err = multisig.Encoding().AddAddressesAction(params)
			} else {
				action, err = multisig.Encoding().RemoveAddressesAction(params)
			}
			if err != nil {
				return err
			}
			return renderAction(cmd, a, action)
		},
	}
	return cmd
}

func newEncodeMultisigSettingsCmd() *cobra.Command {
	var settings models.MultisigVotingSettings

	cmd := &cobra.Command{
		Use:   "multisig-settings",
		Short: "Encode an update of a multisig plugin's settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			multisig, err := a.Multisig()
			if err != nil {
				return err
			}

			action, err := multisig.Encoding().UpdateMultisigVotingSettings(models.UpdateMultisigSettingsParams{
				PluginAddress:  a.Config.PluginAddress,
				VotingSettings: settings,
			})
			if err != nil {
				return err
			}
			return renderAction(cmd, a, action)
		},
	}

	cmd.Flags().Uint16Var(&settings.MinApprovals, "min-approvals", 1, "Approvals needed for a proposal to pass")
	cmd.Flags().BoolVar(&settings.OnlyListed, "only-listed", true, "Only members can create proposals")
	return cmd
}

func newEncodeInstallCmd() *cobra.Command {
	var (
		voting       votingSettingsFlags
		token        string
		members      []string
		minApprovals uint16
		onlyListed   bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Encode plugin install data for DAO creation",
		Long: `Encode the setup data of a new plugin instance.

The plugin type selects the repo: veto types take the voting settings and
--token, multisig types take --member and --min-approvals. The plugin repo
address comes from the network configuration in veto.toml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			var item *models.PluginInstallItem
			if veto, vErr := a.Veto(); vErr == nil {
				settings, err := voting.settings()
				if err != nil {
					return err
				}
				item, err = veto.Encoding().PluginInstallItem(models.VetoPluginInstall{VotingSettings: settings, TokenAddress: token})
				if err != nil {
					return err
				}
			} else {
				multisig, err := a.Multisig()
				if err != nil {
					return err
				}
				item, err = multisig.Encoding().PluginInstallItem(models.MultisigPluginInstall{
					Members:        members,
					VotingSettings: models.MultisigVotingSettings{MinApprovals: minApprovals, OnlyListed: onlyListed},
				})
				if err != nil {
					return err
				}
			}

			return emit(cmd, a, item, func() error {
				return render.NewActionRenderer(cmd.OutOrStdout()).RenderInstallItem(item)
			})
		},
	}

	voting.register(cmd)
	cmd.Flags().StringVar(&token, "token", "", "Existing governance token address (veto types)")
	cmd.Flags().StringSliceVar(&members, "member", nil, "Initial member address, repeatable (multisig types)")
	cmd.Flags().Uint16Var(&minApprovals, "min-approvals", 1, "Approvals needed for a proposal to pass (multisig types)")
	cmd.Flags().BoolVar(&onlyListed, "only-listed", true, "Only members can create proposals (multisig types)")
	return cmd
}

func renderAction(cmd *cobra.Command, a *app.App, action *models.DaoAction) error {
	return emit(cmd, a, action, func() error {
		return render.NewActionRenderer(cmd.OutOrStdout()).RenderAction(action)
	})
}
