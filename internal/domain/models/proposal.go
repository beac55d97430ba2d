package models

import (
	"math/big"
	"time"
)

// ProposalStatus represents the lifecycle status of a plugin proposal
type ProposalStatus string

const (
	ProposalStatusPending   ProposalStatus = "Pending"
	ProposalStatusActive    ProposalStatus = "Active"
	ProposalStatusSucceeded ProposalStatus = "Succeeded"
	ProposalStatusExecuted  ProposalStatus = "Executed"
	ProposalStatusDefeated  ProposalStatus = "Defeated"
)

// ProposalStatuses lists every status in lifecycle order
func ProposalStatuses() []ProposalStatus {
	return []ProposalStatus{
		ProposalStatusPending,
		ProposalStatusActive,
		ProposalStatusSucceeded,
		ProposalStatusExecuted,
		ProposalStatusDefeated,
	}
}

// DaoRef identifies the DAO a proposal belongs to
type DaoRef struct {
	Address string `json:"address" yaml:"address"`
	Name    string `json:"name" yaml:"name"`
}

// ProposalResult holds the vote tallies of a proposal
type ProposalResult struct {
	Yes     *big.Int `json:"yes" yaml:"yes"`
	No      *big.Int `json:"no" yaml:"no"`
	Abstain *big.Int `json:"abstain" yaml:"abstain"`
}

// ProposalSettings are the voting settings a proposal was created with
type ProposalSettings struct {
	SupportThreshold float64 `json:"supportThreshold" yaml:"supportThreshold"`
	MinParticipation float64 `json:"minParticipation" yaml:"minParticipation"`
	// Duration of the voting window in seconds
	Duration int64 `json:"duration" yaml:"duration"`
}

// ProposalVote is a single voter's ballot
type ProposalVote struct {
	Address      string    `json:"address" yaml:"address"`
	Vote         VoteValue `json:"vote" yaml:"vote"`
	Weight       *big.Int  `json:"weight" yaml:"weight"`
	VoteReplaced bool      `json:"voteReplaced" yaml:"voteReplaced"`
}

// Proposal is the fully detailed view of a veto plugin proposal
type Proposal struct {
	ID             string           `json:"id" yaml:"id"`
	Dao            DaoRef           `json:"dao" yaml:"dao"`
	CreatorAddress string           `json:"creatorAddress" yaml:"creatorAddress"`
	Metadata       ProposalMetadata `json:"metadata" yaml:"metadata"`
	// MetadataDegraded is set when Metadata is a placeholder
	MetadataDegraded  bool             `json:"metadataDegraded,omitempty" yaml:"metadataDegraded,omitempty"`
	StartDate         time.Time        `json:"startDate" yaml:"startDate"`
	EndDate           time.Time        `json:"endDate" yaml:"endDate"`
	CreationDate      time.Time        `json:"creationDate" yaml:"creationDate"`
	Actions           []DaoAction      `json:"actions" yaml:"actions"`
	Status            ProposalStatus   `json:"status" yaml:"status"`
	Result            ProposalResult   `json:"result" yaml:"result"`
	Settings          ProposalSettings `json:"settings" yaml:"settings"`
	Token             TokenDetails     `json:"token" yaml:"token"`
	UsedVotingWeight  *big.Int         `json:"usedVotingWeight" yaml:"usedVotingWeight"`
	Votes             []ProposalVote   `json:"votes" yaml:"votes"`
	TotalVotingWeight *big.Int         `json:"totalVotingWeight" yaml:"totalVotingWeight"`

	CreationBlockNumber  uint64     `json:"creationBlockNumber" yaml:"creationBlockNumber"`
	ExecutionDate        *time.Time `json:"executionDate,omitempty" yaml:"executionDate,omitempty"`
	ExecutionBlockNumber *uint64    `json:"executionBlockNumber,omitempty" yaml:"executionBlockNumber,omitempty"`
	ExecutionTxHash      *string    `json:"executionTxHash,omitempty" yaml:"executionTxHash,omitempty"`
}

// ProposalListItem is the summary view of a proposal used by list queries
type ProposalListItem struct {
	ID                string                   `json:"id" yaml:"id"`
	Dao               DaoRef                   `json:"dao" yaml:"dao"`
	CreatorAddress    string                   `json:"creatorAddress" yaml:"creatorAddress"`
	Metadata          ProposalListItemMetadata `json:"metadata" yaml:"metadata"`
	MetadataDegraded  bool                     `json:"metadataDegraded,omitempty" yaml:"metadataDegraded,omitempty"`
	StartDate         time.Time                `json:"startDate" yaml:"startDate"`
	EndDate           time.Time                `json:"endDate" yaml:"endDate"`
	Status            ProposalStatus           `json:"status" yaml:"status"`
	Result            ProposalResult           `json:"result" yaml:"result"`
	Token             TokenDetails             `json:"token" yaml:"token"`
	TotalVotingWeight *big.Int                 `json:"totalVotingWeight" yaml:"totalVotingWeight"`
}
