package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/capitaldao/veto-cli/internal/cli/render"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// NewDepositCmd creates the deposit command
func NewDepositCmd() *cobra.Command {
	var reference string

	cmd := &cobra.Command{
		Use:   "deposit <amount>",
		Short: "Deposit governance tokens into the plugin",
		Long: `Approve the plugin to spend the amount and deposit it.

The amount is in whole tokens and may use decimals up to the token's precision.

Examples:
  veto deposit 100
  veto deposit 12.5 --reference "Q3 budget"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			veto, err := a.Veto()
			if err != nil {
				return err
			}

			params := models.DepositParams{
				PluginAddress: a.Config.PluginAddress,
				Amount:        args[0],
				Reference:     reference,
			}
			if err := veto.Methods().Deposit(cmd.Context(), params); err != nil {
				return err
			}
			return emit(cmd, a, map[string]any{"amount": params.Amount, "deposited": true}, func() error {
				fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess(fmt.Sprintf("Deposited %s", params.Amount)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&reference, "reference", "", "Reference recorded with the deposit")
	return cmd
}

// NewPinCmd creates the pin command
func NewPinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin <file.json>",
		Short: "Pin a JSON metadata document on IPFS",
		Long: `Pin a JSON document on IPFS and print its ipfs:// URI.

Use "-" to read the document from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			veto, err := a.Veto()
			if err != nil {
				return err
			}

			var data []byte
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read metadata: %w", err)
			}

			var doc json.RawMessage
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("metadata is not valid JSON: %w", err)
			}

			uri, err := veto.Methods().PinMetadata(cmd.Context(), doc)
			if err != nil {
				return err
			}
			return emit(cmd, a, map[string]any{"uri": uri}, func() error {
				fmt.Fprintln(cmd.OutOrStdout(), uri)
				return nil
			})
		},
	}
	return cmd
}
