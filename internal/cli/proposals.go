package cli

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/spf13/cobra"

	"github.com/capitaldao/veto-cli/internal/app"
	"github.com/capitaldao/veto-cli/internal/cli/render"
	"github.com/capitaldao/veto-cli/internal/client"
	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
	"github.com/capitaldao/veto-cli/internal/usecase"
)

// NewProposalsCmd creates the proposals command group
func NewProposalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "proposals",
		Aliases: []string{"proposal", "p"},
		Short:   "Read, create, vote on and execute proposals",
	}

	cmd.AddCommand(
		newProposalsListCmd(),
		newProposalsShowCmd(),
		newProposalsCreateCmd(),
		newProposalsVoteCmd(),
		newProposalsExecuteCmd(),
		newProposalsCanVoteCmd(),
		newProposalsCanExecuteCmd(),
	)
	return cmd
}

type listFlags struct {
	dao       string
	status    string
	limit     int
	skip      int
	sortBy    string
	direction string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dao, "dao", "", "Filter by DAO address or ENS name")
	cmd.Flags().StringVar(&f.status, "status", "", "Filter by status (Pending, Active, Succeeded, Executed, Defeated)")
	cmd.Flags().IntVar(&f.limit, "limit", domain.DefaultQueryLimit, "Maximum number of proposals")
	cmd.Flags().IntVar(&f.skip, "skip", 0, "Number of proposals to skip")
	cmd.Flags().StringVar(&f.sortBy, "sort", string(domain.ProposalSortByCreatedAt), "Sort field (createdAt, name, popularity, votes)")
	cmd.Flags().StringVar(&f.direction, "direction", string(domain.SortAsc), "Sort direction (asc, desc)")
}

func (f *listFlags) params() (domain.ProposalQueryParams, error) {
	params := domain.ProposalQueryParams{
		DaoAddressOrEns: f.dao,
		Limit:           f.limit,
		Skip:            f.skip,
		SortBy:          domain.ProposalSortBy(f.sortBy),
		Direction:       domain.SortDirection(strings.ToLower(f.direction)),
	}
	if params.Direction != domain.SortAsc && params.Direction != domain.SortDesc {
		return params, fmt.Errorf("invalid sort direction %q (valid: asc, desc)", f.direction)
	}
	if f.status != "" {
		status, ok := parseStatus(f.status)
		if !ok {
			return params, fmt.Errorf("%w: %q", domain.ErrInvalidProposalStatus, f.status)
		}
		params.Status = status
	}
	return params, nil
}

func parseStatus(s string) (models.ProposalStatus, bool) {
	for _, status := range models.ProposalStatuses() {
		if strings.EqualFold(string(status), s) {
			return status, true
		}
	}
	return "", false
}

func newProposalsListCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List proposals of the plugin",
		Long: `List proposals from the plugin's subgraph.

Examples:
  veto proposals list
  veto proposals list --status Active
  veto proposals list --dao mydao.dao.eth --limit 20 --direction desc`,
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
			params, err := flags.params()
			if err != nil {
				return err
			}

			proposals, err := veto.Methods().GetProposals(cmd.Context(), params)
			if err != nil {
				return err
			}
			return emit(cmd, a, proposals, func() error {
				return render.NewProposalsRenderer(cmd.OutOrStdout()).RenderProposalList(proposals)
			})
		},
	}

	flags.register(cmd)
	return cmd
}

func newProposalsShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [proposal-id]",
		Short: "Show a proposal with its votes and actions",
		Long: `Show detailed information about a proposal.

Proposal ids have the form <plugin address>_<index in hex>, e.g. 0x1234...abcd_0x0.
Without an id an interactive picker lists the plugin's proposals.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			veto, err := a.Veto()
			if err != nil {
				return err
			}

			id, err := proposalArg(cmd.Context(), a, veto, args, "", "Select proposal")
			if err != nil {
				return err
			}
			proposal, err := veto.Methods().GetProposal(cmd.Context(), id)
			if err != nil {
				return err
			}
			if proposal == nil {
				return fmt.Errorf("proposal %s: %w", id, domain.ErrNotFound)
			}
			return emit(cmd, a, proposal, func() error {
				return render.NewProposalRenderer(cmd.OutOrStdout(), veto.Decoding()).RenderProposal(proposal)
			})
		},
	}
	return cmd
}

func newProposalsCreateCmd() *cobra.Command {
	var file string
	var yes bool

	cmd := &cobra.Command{
		Use:   "create --file <proposal.yaml>",
		Short: "Pin proposal metadata and create the proposal on chain",
		Long: `Create a proposal from a YAML file.

The file holds the metadata (title, summary, description, resources) and the
actions to execute. Metadata is pinned on IPFS unless metadata_uri is set.

Example file:
  title: Raise the support threshold
  summary: Bump support to 60%
  creator_vote: yes
  actions:
    - update_settings:
        voting_mode: Standard
        support_threshold: 0.6
        min_participation: 0.2
        min_duration: 72h
    - to: "0x..."
      value: "0"
      data: "0x"`,
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
			ctx := cmd.Context()

			proposalFile, err := usecase.ParseProposalFile(file)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", file, err)
			}

			metadataURI := proposalFile.MetadataURI
			if metadataURI == "" {
				a.Sink.Info("Pinning proposal metadata")
				if metadataURI, err = veto.Methods().PinMetadata(ctx, proposalFile.Metadata()); err != nil {
					return err
				}
				a.Sink.Info(fmt.Sprintf("Metadata pinned at %s", metadataURI))
			}

			params, err := proposalFile.Params(a.Config.PluginAddress, metadataURI, veto.Encoding())
			if err != nil {
				return err
			}

			if !yes {
				ok, err := a.Selector.Confirm(ctx, fmt.Sprintf("Create proposal %q with %d action(s)", proposalFile.Title, len(params.Actions)))
				if err != nil {
					return err
				}
				if !ok {
					return errors.New("proposal creation cancelled")
				}
			}

			steps, err := veto.Methods().CreateProposal(ctx, params)
			if err != nil {
				return err
			}
			result := map[string]any{"metadataUri": metadataURI}
			for step, err := range steps {
				if err != nil {
					return err
				}
				switch step.Key {
				case models.ProposalCreationCreating:
					result["txHash"] = step.TxHash.Hex()
					a.Sink.Info(fmt.Sprintf("Transaction sent: %s", step.TxHash.Hex()))
				case models.ProposalCreationDone:
					result["proposalId"] = step.ProposalID
				}
			}

			return emit(cmd, a, result, func() error {
				fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess(fmt.Sprintf("Proposal created: %s", result["proposalId"])))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Proposal YAML file")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newProposalsVoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote [proposal-id] [yes|no|abstain]",
		Short: "Cast a vote on an active proposal",
		Long: `Cast a vote on a proposal.

Missing arguments are asked for interactively: the proposal is picked from the
active ones and the vote from yes, no and abstain.

Examples:
  veto proposals vote 0x1234...abcd_0x2 no
  veto proposals vote`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			veto, err := a.Veto()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			id, err := proposalArg(ctx, a, veto, args, models.ProposalStatusActive, "Select proposal to vote on")
			if err != nil {
				return err
			}

			var vote models.VoteValue
			if len(args) > 1 {
				if vote, err = models.ParseVoteValue(args[1]); err != nil {
					return err
				}
			} else if vote, err = a.Selector.SelectVote(ctx, "Vote"); err != nil {
				return err
			}

			steps, err := veto.Methods().VoteProposal(ctx, models.VoteProposalParams{ProposalID: id, Vote: vote})
			if err != nil {
				return err
			}
			txHash, err := drainTx(a, steps, func(s models.VoteProposalStepValue) (string, bool) {
				return s.TxHash.Hex(), s.Key == models.VoteProposalVoting
			})
			if err != nil {
				return err
			}

			result := map[string]any{"proposalId": id, "vote": vote, "txHash": txHash}
			return emit(cmd, a, result, func() error {
				fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess(fmt.Sprintf("Voted %s on %s", vote, id)))
				return nil
			})
		},
	}
	return cmd
}

func newProposalsExecuteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute [proposal-id]",
		Short: "Execute a succeeded proposal",
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
			ctx := cmd.Context()

			id, err := proposalArg(ctx, a, veto, args, models.ProposalStatusSucceeded, "Select proposal to execute")
			if err != nil {
				return err
			}

			steps, err := veto.Methods().ExecuteProposal(ctx, id)
			if err != nil {
				return err
			}
			txHash, err := drainTx(a, steps, func(s models.ExecuteProposalStepValue) (string, bool) {
				return s.TxHash.Hex(), s.Key == models.ExecuteProposalExecuting
			})
			if err != nil {
				return err
			}

			result := map[string]any{"proposalId": id, "txHash": txHash}
			return emit(cmd, a, result, func() error {
				fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess(fmt.Sprintf("Executed %s", id)))
				return nil
			})
		},
	}
	return cmd
}

func newProposalsCanVoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "can-vote <proposal-id> <voter> [yes|no|abstain]",
		Short: "Check whether an address or ENS name can vote on a proposal",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			veto, err := a.Veto()
			if err != nil {
				return err
			}

			params := models.CanVoteParams{ProposalID: args[0], VoterAddressOrEns: args[1], Vote: models.VoteYes}
			if len(args) > 2 {
				if params.Vote, err = models.ParseVoteValue(args[2]); err != nil {
					return err
				}
			}

			ok, err := veto.Methods().CanVote(cmd.Context(), params)
			if err != nil {
				return err
			}
			return emit(cmd, a, map[string]any{"proposalId": params.ProposalID, "voter": params.VoterAddressOrEns, "canVote": ok}, func() error {
				return renderCheck(cmd, ok, fmt.Sprintf("%s can vote %s", params.VoterAddressOrEns, params.Vote), fmt.Sprintf("%s cannot vote %s", params.VoterAddressOrEns, params.Vote))
			})
		},
	}
	return cmd
}

func newProposalsCanExecuteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "can-execute [proposal-id]",
		Short: "Check whether a proposal can be executed",
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

			id, err := proposalArg(cmd.Context(), a, veto, args, models.ProposalStatusSucceeded, "Select proposal")
			if err != nil {
				return err
			}
			ok, err := veto.Methods().CanExecute(cmd.Context(), id)
			if err != nil {
				return err
			}
			return emit(cmd, a, map[string]any{"proposalId": id, "canExecute": ok}, func() error {
				return renderCheck(cmd, ok, fmt.Sprintf("%s can be executed", id), fmt.Sprintf("%s cannot be executed", id))
			})
		},
	}
	return cmd
}

// proposalArg returns args[0] or lets the user pick among the plugin's proposals with the given status
func proposalArg(ctx context.Context, a *app.App, veto *client.VetoClient, args []string, status models.ProposalStatus, prompt string) (string, error) {
	if len(args) > 0 {
		if !domain.IsProposalID(args[0]) {
			return "", fmt.Errorf("%w: %q", domain.ErrInvalidProposalID, args[0])
		}
		return args[0], nil
	}

	proposals, err := veto.Methods().GetProposals(ctx, domain.ProposalQueryParams{
		Limit:     100,
		Status:    status,
		Direction: domain.SortDesc,
	})
	if err != nil {
		return "", err
	}
	if len(proposals) == 0 {
		if status != "" {
			return "", fmt.Errorf("no %s proposals found", strings.ToLower(string(status)))
		}
		return "", errors.New("no proposals found")
	}

	selected, err := a.Selector.SelectProposal(ctx, proposals, prompt)
	if err != nil {
		return "", err
	}
	return selected.ID, nil
}

// drainTx consumes a staged write and returns the hash of the step sent reports
func drainTx[T any](a *app.App, steps iter.Seq2[T, error], sent func(T) (string, bool)) (string, error) {
	var txHash string
	for step, err := range steps {
		if err != nil {
			return txHash, err
		}
		if hash, ok := sent(step); ok {
			txHash = hash
			a.Sink.Info(fmt.Sprintf("Transaction sent: %s", hash))
		}
	}
	return txHash, nil
}

func renderCheck(cmd *cobra.Command, ok bool, yes, no string) error {
	if ok {
		fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess(yes))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), render.FormatError(no))
	}
	return nil
}
