package render

import (
	"fmt"
	"io"

	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// ActionRenderer renders encoded actions, install items and fee estimates
type ActionRenderer struct {
	out io.Writer
}

// NewActionRenderer creates a new action renderer
func NewActionRenderer(out io.Writer) *ActionRenderer {
	return &ActionRenderer{out: out}
}

// RenderAction renders an encoded DAO action
func (r *ActionRenderer) RenderAction(action *models.DaoAction) error {
	fmt.Fprintf(r.out, "to:    %s\n", action.To.Hex())
	value := "0"
	if action.Value != nil {
		value = action.Value.String()
	}
	fmt.Fprintf(r.out, "value: %s\n", value)
	fmt.Fprintf(r.out, "data:  %s\n", action.Data)
	return nil
}

// RenderInstallItem renders encoded plugin install data
func (r *ActionRenderer) RenderInstallItem(item *models.PluginInstallItem) error {
	fmt.Fprintf(r.out, "repo: %s\n", item.ID.Hex())
	fmt.Fprintf(r.out, "data: %s\n", item.Data)
	return nil
}

// RenderInterface renders the function a calldata selector matched
func (r *ActionRenderer) RenderInterface(iface *models.InterfaceParams) error {
	if iface == nil {
		fmt.Fprintln(r.out, FormatWarning("unknown function selector"))
		return nil
	}
	fmt.Fprintf(r.out, "%s %s\n", headerStyle.Sprint(iface.ID), labelStyle.Sprint(iface.Hash))
	return nil
}

// RenderEstimate renders a gas fee estimate
func (r *ActionRenderer) RenderEstimate(operation string, est *models.GasFeeEstimate) error {
	headerStyle.Fprintf(r.out, "Estimated fees (%s):\n", operation)
	fmt.Fprintf(r.out, "  Average: %s\n", FormatEther(est.Average))
	fmt.Fprintf(r.out, "  Max:     %s\n", FormatEther(est.Max))
	return nil
}
