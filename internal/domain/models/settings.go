package models

import (
	"fmt"
	"math/big"
	"strings"
)

// VotingMode is the vote behavior configured on a plugin
type VotingMode string

const (
	VotingModeStandard        VotingMode = "Standard"
	VotingModeEarlyExecution  VotingMode = "EarlyExecution"
	VotingModeVoteReplacement VotingMode = "VoteReplacement"
)

// ContractValue returns the uint8 the plugin contract uses for the mode
func (m VotingMode) ContractValue() (uint8, error) {
	switch m {
	case VotingModeStandard, "":
		return 0, nil
	case VotingModeEarlyExecution:
		return 1, nil
	case VotingModeVoteReplacement:
		return 2, nil
	default:
		return 0, fmt.Errorf("unknown voting mode %q", string(m))
	}
}

// VotingModeFromContract is the inverse of VotingMode.ContractValue
func VotingModeFromContract(v uint8) (VotingMode, error) {
	switch v {
	case 0:
		return VotingModeStandard, nil
	case 1:
		return VotingModeEarlyExecution, nil
	case 2:
		return VotingModeVoteReplacement, nil
	default:
		return "", fmt.Errorf("unknown voting mode value %d", v)
	}
}

// VotingSettings is the voting configuration of a veto plugin
type VotingSettings struct {
	// MinDuration of the voting window in seconds
	MinDuration uint64 `json:"minDuration" yaml:"minDuration"`
	// SupportThreshold and MinParticipation are ratios in [0, 1] with 6 digits of precision
	SupportThreshold       float64    `json:"supportThreshold" yaml:"supportThreshold"`
	MinParticipation       float64    `json:"minParticipation" yaml:"minParticipation"`
	MinProposerVotingPower *big.Int   `json:"minProposerVotingPower" yaml:"minProposerVotingPower"`
	VotingMode             VotingMode `json:"votingMode" yaml:"votingMode"`
}

// VoteValue is a ballot option
type VoteValue uint8

const (
	VoteNone    VoteValue = 0
	VoteAbstain VoteValue = 1
	VoteYes     VoteValue = 2
	VoteNo      VoteValue = 3
)

func (v VoteValue) String() string {
	switch v {
	case VoteAbstain:
		return "abstain"
	case VoteYes:
		return "yes"
	case VoteNo:
		return "no"
	default:
		return "none"
	}
}

// ParseVoteValue accepts yes, no or abstain in any case
func ParseVoteValue(s string) (VoteValue, error) {
	switch strings.ToLower(s) {
	case "yes":
		return VoteYes, nil
	case "no":
		return VoteNo, nil
	case "abstain":
		return VoteAbstain, nil
	default:
		return VoteNone, fmt.Errorf("invalid vote %q (valid: yes, no, abstain)", s)
	}
}

// MarshalText renders the vote option name
func (v VoteValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// SubgraphVoteValues maps indexer vote options onto ballot values
var SubgraphVoteValues = map[string]VoteValue{
	"None":    VoteNone,
	"Abstain": VoteAbstain,
	"Yes":     VoteYes,
	"No":      VoteNo,
}
