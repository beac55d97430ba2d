package usecase

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"gopkg.in/yaml.v3"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// ActionEncoder builds the typed actions a proposal file may declare
type ActionEncoder interface {
	UpdatePluginSettingsAction(pluginAddress string, settings models.VotingSettings) (*models.DaoAction, error)
	MintTokenAction(minterAddress string, params models.MintTokenParams) (*models.DaoAction, error)
}

// ProposalFile is the YAML document accepted by proposal creation
type ProposalFile struct {
	Title       string                    `yaml:"title"`
	Summary     string                    `yaml:"summary"`
	Description string                    `yaml:"description,omitempty"`
	Resources   []models.ProposalResource `yaml:"resources,omitempty"`
	Media       *models.ProposalMedia     `yaml:"media,omitempty"`

	// MetadataURI skips pinning when set
	MetadataURI string `yaml:"metadata_uri,omitempty"`

	Actions       []ProposalFileAction `yaml:"actions,omitempty"`
	Start         string               `yaml:"start,omitempty"`
	End           string               `yaml:"end,omitempty"`
	CreatorVote   string               `yaml:"creator_vote,omitempty"`
	ExecuteOnPass bool                 `yaml:"execute_on_pass,omitempty"`
}

// ProposalFileAction is a single action entry. Exactly one of the raw call
// fields (to, value, data), UpdateSettings or Mint is used.
type ProposalFileAction struct {
	To       string `yaml:"to,omitempty"`
	Value    string `yaml:"value,omitempty"`
	Data     string `yaml:"data,omitempty"`
	FailSafe bool   `yaml:"fail_safe,omitempty"`

	UpdateSettings *ProposalFileSettings `yaml:"update_settings,omitempty"`
	Mint           *ProposalFileMint     `yaml:"mint,omitempty"`
}

// ProposalFileSettings declares an update of the plugin's voting settings
type ProposalFileSettings struct {
	VotingMode             string  `yaml:"voting_mode"`
	SupportThreshold       float64 `yaml:"support_threshold"`
	MinParticipation       float64 `yaml:"min_participation"`
	MinDuration            string  `yaml:"min_duration"`
	MinProposerVotingPower string  `yaml:"min_proposer_voting_power,omitempty"`
}

// ProposalFileMint declares a governance token mint
type ProposalFileMint struct {
	Token   string `yaml:"token"`
	Address string `yaml:"address"`
	Amount  string `yaml:"amount"`
}

// ParseProposalFile reads and parses a proposal YAML file
func ParseProposalFile(path string) (*ProposalFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var file ProposalFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if file.Title == "" && file.MetadataURI == "" {
		return nil, errors.New("proposal file needs a title or a metadata_uri")
	}
	return &file, nil
}

// Metadata returns the metadata document to pin for the proposal
func (f *ProposalFile) Metadata() models.ProposalMetadata {
	resources := f.Resources
	if resources == nil {
		resources = []models.ProposalResource{}
	}
	return models.ProposalMetadata{
		Title:       f.Title,
		Summary:     f.Summary,
		Description: f.Description,
		Resources:   resources,
		Media:       f.Media,
	}
}

// Params turns the file into proposal creation parameters. metadataURI is
// used when the file does not set one.
func (f *ProposalFile) Params(pluginAddress, metadataURI string, enc ActionEncoder) (models.CreateProposalParams, error) {
	params := models.CreateProposalParams{
		PluginAddress: pluginAddress,
		MetadataURI:   metadataURI,
		ExecuteOnPass: f.ExecuteOnPass,
	}
	if f.MetadataURI != "" {
		params.MetadataURI = f.MetadataURI
	}

	var err error
	if params.StartDate, err = parseDate("start", f.Start); err != nil {
		return params, err
	}
	if params.EndDate, err = parseDate("end", f.End); err != nil {
		return params, err
	}
	if f.CreatorVote != "" {
		if params.CreatorVote, err = models.ParseVoteValue(f.CreatorVote); err != nil {
			return params, err
		}
	}

	anyFailSafe := false
	for i, a := range f.Actions {
		action, err := a.encode(pluginAddress, enc)
		if err != nil {
			return params, fmt.Errorf("action %d: %w", i+1, err)
		}
		params.Actions = append(params.Actions, *action)
		params.FailSafeActions = append(params.FailSafeActions, a.FailSafe)
		anyFailSafe = anyFailSafe || a.FailSafe
	}
	if !anyFailSafe {
		params.FailSafeActions = nil
	}
	return params, nil
}

func (a ProposalFileAction) encode(pluginAddress string, enc ActionEncoder) (*models.DaoAction, error) {
	switch {
	case a.UpdateSettings != nil:
		settings, err := a.UpdateSettings.votingSettings()
		if err != nil {
			return nil, err
		}
		return enc.UpdatePluginSettingsAction(pluginAddress, settings)
	case a.Mint != nil:
		amount, ok := new(big.Int).SetString(a.Mint.Amount, 10)
		if !ok || amount.Sign() < 0 {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, a.Mint.Amount)
		}
		return enc.MintTokenAction(a.Mint.Token, models.MintTokenParams{Address: a.Mint.Address, Amount: amount})
	}

	if !common.IsHexAddress(a.To) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, a.To)
	}
	action := &models.DaoAction{To: common.HexToAddress(a.To), Value: big.NewInt(0), Data: hexutil.Bytes{}}
	if a.Value != "" {
		value, ok := new(big.Int).SetString(a.Value, 0)
		if !ok || value.Sign() < 0 {
			return nil, fmt.Errorf("invalid value %q", a.Value)
		}
		action.Value = value
	}
	if a.Data != "" {
		data, err := hexutil.Decode(a.Data)
		if err != nil {
			return nil, fmt.Errorf("invalid data: %w", err)
		}
		action.Data = data
	}
	return action, nil
}

func (s ProposalFileSettings) votingSettings() (models.VotingSettings, error) {
	settings := models.VotingSettings{
		VotingMode:             models.VotingMode(s.VotingMode),
		SupportThreshold:       s.SupportThreshold,
		MinParticipation:       s.MinParticipation,
		MinProposerVotingPower: big.NewInt(0),
	}
	if settings.VotingMode == "" {
		settings.VotingMode = models.VotingModeStandard
	}
	if _, err := settings.VotingMode.ContractValue(); err != nil {
		return settings, err
	}

	d, err := time.ParseDuration(s.MinDuration)
	if err != nil {
		return settings, fmt.Errorf("invalid min_duration %q: %w", s.MinDuration, err)
	}
	if d < 0 || d%time.Second != 0 {
		return settings, fmt.Errorf("invalid min_duration %q: must be a non-negative whole number of seconds", s.MinDuration)
	}
	settings.MinDuration = uint64(d / time.Second)

	if s.MinProposerVotingPower != "" {
		power, ok := new(big.Int).SetString(s.MinProposerVotingPower, 10)
		if !ok {
			return settings, fmt.Errorf("invalid min_proposer_voting_power %q", s.MinProposerVotingPower)
		}
		settings.MinProposerVotingPower = power
	}
	return settings, nil
}

func parseDate(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date %q: expected RFC3339", field, s)
	}
	if t.Unix() < 0 {
		return nil, fmt.Errorf("invalid %s date %q: before 1970", field, s)
	}
	return &t, nil
}
