package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/capitaldao/veto-cli/internal/cli/render"
	"github.com/capitaldao/veto-cli/internal/client"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// decodedAction is the structured output of decode
type decodedAction struct {
	Interface *models.InterfaceParams `json:"interface" yaml:"interface"`
	Params    any                     `json:"params,omitempty" yaml:"params,omitempty"`
}

// NewDecodeCmd creates the decode command
func NewDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <calldata>",
		Short: "Decode the calldata of a DAO action",
		Long: `Decode 0x-prefixed calldata of a known plugin action.

Known functions are updateVotingSettings, mint, addAddresses, removeAddresses
and updateMultisigSettings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			data, err := hexutil.Decode(args[0])
			if err != nil {
				return fmt.Errorf("invalid calldata: %w", err)
			}

			out := decodedAction{}
			var decoder render.CallDecoder
			switch c := a.Client.(type) {
			case *client.VetoClient:
				decoder = c.Decoding()
				out.Interface = c.Decoding().FindInterface(data)
				if out.Interface != nil {
					out.Params, err = decodeVetoParams(c.Decoding(), out.Interface.FunctionName, data)
				}
			case *client.MultisigClient:
				decoder = c.Decoding()
				out.Interface = c.Decoding().FindInterface(data)
				if out.Interface != nil {
					out.Params, err = decodeMultisigParams(c.Decoding(), out.Interface.FunctionName, data)
				}
			default:
				return fmt.Errorf("plugin type %s does not support this command", a.Client.PluginType())
			}
			if err != nil {
				return err
			}

			return emit(cmd, a, out, func() error {
				if out.Interface == nil {
					return render.NewActionRenderer(cmd.OutOrStdout()).RenderInterface(nil)
				}
				render.RenderDecodedCall(cmd.OutOrStdout(), decoder.DecodeCall(data), "")
				return nil
			})
		},
	}
	return cmd
}

func decodeVetoParams(d *client.VetoDecoding, function string, data []byte) (any, error) {
	switch function {
	case "updateVotingSettings":
		return d.UpdatePluginSettingsAction(data)
	case "mint":
		return d.MintTokenAction(data)
	}
	return nil, nil
}

func decodeMultisigParams(d *client.MultisigDecoding, function string, data []byte) (any, error) {
	switch function {
	case "addAddresses":
		return d.AddAddressesAction(data)
	case "removeAddresses":
		return d.RemoveAddressesAction(data)
	case "updateMultisigSettings":
		return d.UpdateMultisigVotingSettings(data)
	}
	return nil, nil
}
