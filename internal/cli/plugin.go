package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/capitaldao/veto-cli/internal/cli/render"
	"github.com/capitaldao/veto-cli/internal/domain"
)

// NewSettingsCmd creates the settings command
func NewSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings [plugin]",
		Short: "Show the voting settings of a plugin",
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

			plugin := pluginAddress(a, args)
			settings, err := veto.Methods().GetVotingSettings(cmd.Context(), plugin)
			if err != nil {
				return err
			}
			return emit(cmd, a, settings, func() error {
				return render.NewPluginRenderer(cmd.OutOrStdout()).RenderSettings(plugin, settings)
			})
		},
	}
}

// NewTokenCmd creates the token command
func NewTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token [plugin]",
		Short: "Show the governance token of a plugin",
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

			plugin := pluginAddress(a, args)
			token, err := veto.Methods().GetToken(cmd.Context(), plugin)
			if err != nil {
				return err
			}
			return emit(cmd, a, token, func() error {
				return render.NewPluginRenderer(cmd.OutOrStdout()).RenderToken(plugin, token)
			})
		},
	}
}

// NewMembersCmd creates the members command
func NewMembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "members [plugin]",
		Short: "List the members of a plugin",
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

			plugin := pluginAddress(a, args)
			members, err := veto.Methods().GetMembers(cmd.Context(), plugin)
			if err != nil {
				return err
			}
			return emit(cmd, a, members, func() error {
				return render.NewPluginRenderer(cmd.OutOrStdout()).RenderMembers(plugin, members)
			})
		},
	}
}

// NewDaosCmd creates the daos command
func NewDaosCmd() *cobra.Command {
	var (
		limit     int
		skip      int
		sortBy    string
		direction string
	)

	cmd := &cobra.Command{
		Use:   "daos",
		Short: "List DAOs that installed the plugin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			veto, err := a.Veto()
			if err != nil {
				return err
			}

			params := domain.DaoQueryParams{
				Limit:     limit,
				Skip:      skip,
				SortBy:    domain.DaoSortBy(sortBy),
				Direction: domain.SortDirection(direction),
			}
			if params.Direction != domain.SortAsc && params.Direction != domain.SortDesc {
				return fmt.Errorf("invalid sort direction %q (valid: asc, desc)", direction)
			}

			daos, err := veto.Methods().GetDaos(cmd.Context(), params)
			if err != nil {
				return err
			}
			return emit(cmd, a, daos, func() error {
				return render.NewPluginRenderer(cmd.OutOrStdout()).RenderDaos(daos)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultQueryLimit, "Maximum number of DAOs")
	cmd.Flags().IntVar(&skip, "skip", 0, "Number of DAOs to skip")
	cmd.Flags().StringVar(&sortBy, "sort", string(domain.DaoSortByCreatedAt), "Sort field (createdAt, subdomain, activity)")
	cmd.Flags().StringVar(&direction, "direction", string(domain.SortAsc), "Sort direction (asc, desc)")
	return cmd
}
