package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// PluginRenderer renders plugin level reads: settings, token, members and DAOs
type PluginRenderer struct {
	out io.Writer
}

// NewPluginRenderer creates a new plugin renderer
func NewPluginRenderer(out io.Writer) *PluginRenderer {
	return &PluginRenderer{out: out}
}

// RenderSettings renders the voting settings of a plugin
func (r *PluginRenderer) RenderSettings(plugin string, s *models.VotingSettings) error {
	if s == nil {
		fmt.Fprintf(r.out, "No voting settings found for plugin %s\n", plugin)
		return nil
	}
	headerStyle.Fprintf(r.out, "Voting settings: %s\n", plugin)
	fmt.Fprintf(r.out, "  Voting mode: %s\n", s.VotingMode)
	fmt.Fprintf(r.out, "  Support threshold: %s\n", FormatPercent(s.SupportThreshold))
	fmt.Fprintf(r.out, "  Minimum participation: %s\n", FormatPercent(s.MinParticipation))
	fmt.Fprintf(r.out, "  Minimum duration: %s\n", FormatDuration(int64(s.MinDuration)))
	minPower := "0"
	if s.MinProposerVotingPower != nil {
		minPower = s.MinProposerVotingPower.String()
	}
	fmt.Fprintf(r.out, "  Minimum proposer voting power: %s\n", minPower)
	return nil
}

// RenderToken renders the governance token of a plugin
func (r *PluginRenderer) RenderToken(plugin string, token models.TokenDetails) error {
	if token == nil {
		fmt.Fprintf(r.out, "No token found for plugin %s\n", plugin)
		return nil
	}
	headerStyle.Fprintf(r.out, "Token: %s\n", plugin)
	switch t := token.(type) {
	case *models.Erc20Token:
		fmt.Fprintf(r.out, "  Type: ERC20\n")
		fmt.Fprintf(r.out, "  Name: %s (%s)\n", t.Name, t.Symbol)
		fmt.Fprintf(r.out, "  Address: %s\n", addressStyle.Sprint(t.Address))
		fmt.Fprintf(r.out, "  Decimals: %d\n", t.Decimals)
	case *models.Erc721Token:
		fmt.Fprintf(r.out, "  Type: ERC721\n")
		fmt.Fprintf(r.out, "  Name: %s (%s)\n", t.Name, t.Symbol)
		fmt.Fprintf(r.out, "  Address: %s\n", addressStyle.Sprint(t.Address))
	}
	return nil
}

// RenderMembers renders the member addresses of a plugin
func (r *PluginRenderer) RenderMembers(plugin string, members []string) error {
	if len(members) == 0 {
		fmt.Fprintf(r.out, "No members found for plugin %s\n", plugin)
		return nil
	}
	headerStyle.Fprintf(r.out, "Members of %s (%d):\n", plugin, len(members))
	for _, m := range members {
		fmt.Fprintf(r.out, "  %s\n", addressStyle.Sprint(m))
	}
	return nil
}

// RenderDaos renders DAOs with their installed plugins
func (r *PluginRenderer) RenderDaos(daos []*models.DaoListItem) error {
	if len(daos) == 0 {
		fmt.Fprintln(r.out, "No DAOs found")
		return nil
	}

	t := newTable(r.out)
	t.AppendHeader(table.Row{"Name", "ENS", "Address", "Plugins"})
	for _, d := range daos {
		name := d.Metadata.Name
		if d.MetadataDegraded {
			name = warnStyle.Sprint(name)
		}
		plugins := lo.Map(d.Plugins, func(p models.InstalledPlugin, _ int) string {
			return fmt.Sprintf("%s v%d.%d", p.ID, p.Release, p.Build)
		})
		t.AppendRow(table.Row{name, d.EnsDomain, d.Address, strings.Join(plugins, ", ")})
	}
	t.Render()
	return nil
}
