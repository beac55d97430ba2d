package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/capitaldao/veto-cli/internal/app"
	"github.com/capitaldao/veto-cli/internal/cli/render"
	"github.com/capitaldao/veto-cli/internal/domain/models"
	"github.com/capitaldao/veto-cli/internal/usecase"
)

// estimateMetadataURI stands in for the pinned metadata so calldata has a realistic size
const estimateMetadataURI = "ipfs://bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"

// NewEstimateCmd creates the estimate command group
func NewEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the fees of proposal transactions",
		Long: `Estimate gas fees without sending a transaction.

Max is gas times the current max fee per gas, Average scales Max by the
configured gas estimation factor.`,
	}

	cmd.AddCommand(
		newEstimateCreateCmd(),
		newEstimateVoteCmd(),
		newEstimateExecuteCmd(),
	)
	return cmd
}

func newEstimateCreateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create --file <proposal.yaml>",
		Short: "Estimate the fees of creating a proposal",
		Long: `Estimate the fees of creating the proposal a YAML file describes.

Metadata is not pinned; a placeholder URI is used unless the file sets metadata_uri.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			veto, err := a.Veto()
			if err != nil {
				return err
			}

			proposalFile, err := usecase.ParseProposalFile(file)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", file, err)
			}
			params, err := proposalFile.Params(a.Config.PluginAddress, estimateMetadataURI, veto.Encoding())
			if err != nil {
				return err
			}

			est, err := veto.Estimation().CreateProposal(cmd.Context(), params)
			if err != nil {
				return err
			}
			return renderEstimate(cmd, a, "create proposal", est)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Proposal YAML file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newEstimateVoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vote <proposal-id> <yes|no|abstain>",
		Short: "Estimate the fees of casting a vote",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			veto, err := a.Veto()
			if err != nil {
				return err
			}
			vote, err := models.ParseVoteValue(args[1])
			if err != nil {
				return err
			}

			est, err := veto.Estimation().VoteProposal(cmd.Context(), models.VoteProposalParams{ProposalID: args[0], Vote: vote})
			if err != nil {
				return err
			}
			return renderEstimate(cmd, a, "vote", est)
		},
	}
}

func newEstimateExecuteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "execute <proposal-id>",
		Short: "Estimate the fees of executing a proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			veto, err := a.Veto()
			if err != nil {
				return err
			}

			est, err := veto.Estimation().ExecuteProposal(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderEstimate(cmd, a, "execute", est)
		},
	}
}

func renderEstimate(cmd *cobra.Command, a *app.App, operation string, est *models.GasFeeEstimate) error {
	return emit(cmd, a, est, func() error {
		return render.NewActionRenderer(cmd.OutOrStdout()).RenderEstimate(operation, est)
	})
}
