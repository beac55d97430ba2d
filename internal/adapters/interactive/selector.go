package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"

	"github.com/capitaldao/veto-cli/internal/domain/config"
	"github.com/capitaldao/veto-cli/internal/domain/models"
	"github.com/capitaldao/veto-cli/internal/usecase"
)

// ErrNonInteractive is returned when a prompt is needed but prompts are disabled
var ErrNonInteractive = errors.New("interactive selection not available in non-interactive mode")

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

var selectTemplates = &promptui.SelectTemplates{
	Label:    "{{ . }}",
	Active:   "▸ {{ . | cyan }}",
	Inactive: "  {{ . | faint }}",
	Selected: "✓ {{ . | green }}",
	Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
}

func (s *SelectorAdapter) interactive() bool {
	return !s.config.NonInteractive && !s.config.JSON
}

// SelectProposal selects a proposal from a list
func (s *SelectorAdapter) SelectProposal(ctx context.Context, proposals []*models.ProposalListItem, prompt string) (*models.ProposalListItem, error) {
	if len(proposals) == 0 {
		return nil, fmt.Errorf("no proposals to select from")
	}

	// If only one match, return it directly
	if len(proposals) == 1 {
		return proposals[0], nil
	}
	if !s.interactive() {
		return nil, ErrNonInteractive
	}

	options := FormatProposalOptions(proposals)
	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         selectTemplates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}
	return proposals[index], nil
}

// SelectVote asks for a ballot option
func (s *SelectorAdapter) SelectVote(ctx context.Context, prompt string) (models.VoteValue, error) {
	if !s.interactive() {
		return models.VoteNone, ErrNonInteractive
	}

	votes := []models.VoteValue{models.VoteYes, models.VoteNo, models.VoteAbstain}
	options := make([]string, len(votes))
	for i, v := range votes {
		options[i] = v.String()
	}

	promptSelect := promptui.Select{
		Label:     prompt,
		Items:     options,
		Templates: selectTemplates,
	}
	index, _, err := promptSelect.Run()
	if err != nil {
		return models.VoteNone, fmt.Errorf("selection cancelled: %w", err)
	}
	return votes[index], nil
}

// Confirm asks a yes/no question. Non-interactive runs are treated as confirmed.
func (s *SelectorAdapter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if !s.interactive() {
		return true, nil
	}

	p := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}
	if _, err := p.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation cancelled: %w", err)
	}
	return true, nil
}

// FormatProposalOptions creates display strings for proposal selection
func FormatProposalOptions(proposals []*models.ProposalListItem) []string {
	options := make([]string, len(proposals))
	for i, p := range proposals {
		title := color.New(color.FgWhite, color.Bold).Sprint(p.Metadata.Title)
		status := color.New(color.FgYellow).Sprintf("[%s]", p.Status)
		id := color.New(color.FgBlue).Sprint(p.ID)
		options[i] = fmt.Sprintf("%s %s (%s)", title, status, id)
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.Selector = (*SelectorAdapter)(nil)
