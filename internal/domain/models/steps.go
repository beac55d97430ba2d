package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ProposalCreationStep is a checkpoint of proposal creation
type ProposalCreationStep string

const (
	ProposalCreationCreating ProposalCreationStep = "creating"
	ProposalCreationDone     ProposalCreationStep = "done"
)

// ProposalCreationStepValue is yielded once per creation checkpoint
type ProposalCreationStepValue struct {
	Key ProposalCreationStep
	// TxHash is set on ProposalCreationCreating
	TxHash common.Hash
	// ProposalID is set on ProposalCreationDone
	ProposalID string
}

// VoteProposalStep is a checkpoint of casting a vote
type VoteProposalStep string

const (
	VoteProposalVoting VoteProposalStep = "voting"
	VoteProposalDone   VoteProposalStep = "done"
)

// VoteProposalStepValue is yielded once per vote checkpoint
type VoteProposalStepValue struct {
	Key    VoteProposalStep
	TxHash common.Hash
}

// ExecuteProposalStep is a checkpoint of executing a proposal
type ExecuteProposalStep string

const (
	ExecuteProposalExecuting ExecuteProposalStep = "executing"
	ExecuteProposalDone      ExecuteProposalStep = "done"
)

// ExecuteProposalStepValue is yielded once per execution checkpoint
type ExecuteProposalStepValue struct {
	Key    ExecuteProposalStep
	TxHash common.Hash
}

// CreateProposalParams are the inputs of a proposal creation
type CreateProposalParams struct {
	PluginAddress string
	MetadataURI   string
	Actions       []DaoAction
	// FailSafeActions marks actions allowed to fail; empty or the same length as Actions
	FailSafeActions []bool
	StartDate       *time.Time
	EndDate         *time.Time
	CreatorVote     VoteValue
	ExecuteOnPass   bool
}

// VoteProposalParams are the inputs of casting a vote
type VoteProposalParams struct {
	ProposalID string
	Vote       VoteValue
}

// CanVoteParams are the inputs of a vote eligibility check
type CanVoteParams struct {
	ProposalID        string
	VoterAddressOrEns string
	Vote              VoteValue
}

// DepositParams are the inputs of a token deposit into the plugin
type DepositParams struct {
	PluginAddress string
	// Amount in whole tokens, decimal notation allowed up to the token's decimals
	Amount    string
	Reference string
}
