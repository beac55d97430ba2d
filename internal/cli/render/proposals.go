package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/capitaldao/veto-cli/internal/adapters/abi"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// ProposalsRenderer renders proposal lists as tables
type ProposalsRenderer struct {
	out io.Writer
}

// NewProposalsRenderer creates a new proposals renderer
func NewProposalsRenderer(out io.Writer) *ProposalsRenderer {
	return &ProposalsRenderer{out: out}
}

// RenderProposalList renders one row per proposal
func (r *ProposalsRenderer) RenderProposalList(proposals []*models.ProposalListItem) error {
	if len(proposals) == 0 {
		fmt.Fprintln(r.out, "No proposals found")
		return nil
	}

	t := newTable(r.out)
	t.AppendHeader(table.Row{"ID", "Title", "Status", "Yes", "No", "Abstain", "Ends"})
	for _, p := range proposals {
		title := p.Metadata.Title
		if p.MetadataDegraded {
			title = warnStyle.Sprint(title)
		}
		t.AppendRow(table.Row{
			idStyle.Sprint(p.ID),
			title,
			FormatStatus(p.Status),
			FormatWeight(p.Result.Yes, p.Token),
			FormatWeight(p.Result.No, p.Token),
			FormatWeight(p.Result.Abstain, p.Token),
			FormatTime(p.EndDate),
		})
	}
	t.Render()
	return nil
}

// CallDecoder decodes action calldata for display
type CallDecoder interface {
	DecodeCall(data []byte) *abi.DecodedCall
}

// ProposalRenderer renders detailed information about a single proposal
type ProposalRenderer struct {
	out     io.Writer
	decoder CallDecoder
}

// NewProposalRenderer creates a new proposal renderer. Actions are decoded with decoder when set.
func NewProposalRenderer(out io.Writer, decoder CallDecoder) *ProposalRenderer {
	return &ProposalRenderer{out: out, decoder: decoder}
}

// RenderProposal renders detailed proposal information
func (r *ProposalRenderer) RenderProposal(p *models.Proposal) error {
	if p == nil {
		fmt.Fprintln(r.out, "Proposal not found")
		return nil
	}

	// Header
	headerStyle.Fprintf(r.out, "Proposal: %s\n", p.Metadata.Title)
	fmt.Fprintln(r.out, strings.Repeat("=", 80))
	if p.MetadataDegraded {
		fmt.Fprintln(r.out, FormatWarning("metadata could not be loaded, showing a placeholder"))
	}

	fmt.Fprintf(r.out, "  ID: %s\n", idStyle.Sprint(p.ID))
	fmt.Fprintf(r.out, "  Status: %s\n", FormatStatus(p.Status))
	fmt.Fprintf(r.out, "  DAO: %s (%s)\n", p.Dao.Name, addressStyle.Sprint(p.Dao.Address))
	fmt.Fprintf(r.out, "  Creator: %s\n", addressStyle.Sprint(p.CreatorAddress))
	if p.Metadata.Summary != "" {
		fmt.Fprintf(r.out, "  Summary: %s\n", p.Metadata.Summary)
	}

	sectionStyle.Fprintln(r.out, "\nTimeline:")
	fmt.Fprintf(r.out, "  Created: %s (block %d)\n", FormatTime(p.CreationDate), p.CreationBlockNumber)
	fmt.Fprintf(r.out, "  Start: %s\n", FormatTime(p.StartDate))
	fmt.Fprintf(r.out, "  End: %s\n", FormatTime(p.EndDate))
	if p.ExecutionDate != nil {
		line := fmt.Sprintf("  Executed: %s", FormatTime(*p.ExecutionDate))
		if p.ExecutionBlockNumber != nil {
			line += fmt.Sprintf(" (block %d)", *p.ExecutionBlockNumber)
		}
		fmt.Fprintln(r.out, line)
	}
	if p.ExecutionTxHash != nil {
		fmt.Fprintf(r.out, "  Execution tx: %s\n", *p.ExecutionTxHash)
	}

	sectionStyle.Fprintln(r.out, "\nSettings:")
	fmt.Fprintf(r.out, "  Support threshold: %s\n", FormatPercent(p.Settings.SupportThreshold))
	fmt.Fprintf(r.out, "  Minimum participation: %s\n", FormatPercent(p.Settings.MinParticipation))
	fmt.Fprintf(r.out, "  Duration: %s\n", FormatDuration(p.Settings.Duration))

	sectionStyle.Fprintln(r.out, "\nResult:")
	fmt.Fprintf(r.out, "  %s: %s\n", FormatVote(models.VoteYes), FormatWeight(p.Result.Yes, p.Token))
	fmt.Fprintf(r.out, "  %s: %s\n", FormatVote(models.VoteNo), FormatWeight(p.Result.No, p.Token))
	fmt.Fprintf(r.out, "  %s: %s\n", FormatVote(models.VoteAbstain), FormatWeight(p.Result.Abstain, p.Token))
	fmt.Fprintf(r.out, "  Used voting weight: %s of %s\n",
		FormatWeight(p.UsedVotingWeight, p.Token), FormatWeight(p.TotalVotingWeight, p.Token))

	if len(p.Votes) > 0 {
		sectionStyle.Fprintf(r.out, "\nVotes (%d):\n", len(p.Votes))
		t := newTable(r.out)
		t.AppendHeader(table.Row{"Voter", "Vote", "Weight", "Replaced"})
		for _, v := range p.Votes {
			replaced := ""
			if v.VoteReplaced {
				replaced = "yes"
			}
			t.AppendRow(table.Row{v.Address, FormatVote(v.Vote), FormatWeight(v.Weight, p.Token), replaced})
		}
		t.Render()
	}

	if len(p.Actions) > 0 {
		sectionStyle.Fprintf(r.out, "\nActions (%d):\n", len(p.Actions))
		for i, action := range p.Actions {
			r.renderAction(i, action)
		}
	}

	if p.Metadata.Description != "" {
		sectionStyle.Fprintln(r.out, "\nDescription:")
		fmt.Fprintln(r.out, p.Metadata.Description)
	}

	if len(p.Metadata.Resources) > 0 {
		sectionStyle.Fprintln(r.out, "\nResources:")
		for _, res := range p.Metadata.Resources {
			fmt.Fprintf(r.out, "  - %s: %s\n", res.Name, res.URL)
		}
	}
	return nil
}

func (r *ProposalRenderer) renderAction(i int, action models.DaoAction) {
	fmt.Fprintf(r.out, "  %d. to %s", i+1, addressStyle.Sprint(action.To.Hex()))
	if action.Value != nil && action.Value.Sign() > 0 {
		fmt.Fprintf(r.out, " value %s", FormatEther(action.Value))
	}
	fmt.Fprintln(r.out)

	if r.decoder == nil {
		fmt.Fprintf(r.out, "     data: %s\n", abi.FormatValue([]byte(action.Data)))
		return
	}
	RenderDecodedCall(r.out, r.decoder.DecodeCall(action.Data), "     ")
}

// RenderDecodedCall writes a decoded call with each input on its own line
func RenderDecodedCall(out io.Writer, call *abi.DecodedCall, indent string) {
	if call.Signature == "" {
		fmt.Fprintf(out, "%s%s %s\n", indent, labelStyle.Sprint("unknown function"), call.Selector)
		return
	}
	fmt.Fprintf(out, "%s%s %s\n", indent, headerStyle.Sprint(call.Signature), labelStyle.Sprint(call.Selector))
	for _, input := range call.Inputs {
		fmt.Fprintf(out, "%s  %s (%s): %s\n", indent, input.Name, input.Type, abi.FormatValue(input.Value))
	}
}

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Box = table.BoxStyle{
		PaddingRight:     "   ",
		MiddleHorizontal: "─",
	}
	t.Style().Format.Header = text.FormatUpper
	return t
}
