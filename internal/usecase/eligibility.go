package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// CanVote is the use case for checking whether an address may cast a vote
type CanVote struct {
	web3  Web3
	calls PluginCalls
	log   *slog.Logger
}

// NewCanVote creates a new CanVote use case
func NewCanVote(web3 Web3, calls PluginCalls, log *slog.Logger) *CanVote {
	return &CanVote{
		web3:  web3,
		calls: calls,
		log:   log.With("component", "CanVote"),
	}
}

// Run asks the plugin whether the voter may cast the vote on the proposal
func (uc *CanVote) Run(ctx context.Context, params models.CanVoteParams) (bool, error) {
	id, err := domain.ParseProposalID(params.ProposalID)
	if err != nil {
		return false, err
	}
	provider, err := uc.web3.Provider()
	if err != nil {
		return false, err
	}
	voter, err := resolveAddressOrEns(ctx, uc.web3, params.VoterAddressOrEns)
	if err != nil {
		return false, err
	}

	data, err := uc.calls.CanVoteCall(id.Index, voter, params.Vote)
	if err != nil {
		return false, fmt.Errorf("failed to pack canVote: %w", err)
	}
	out, err := provider.Call(ctx, id.PluginAddress, data)
	if err != nil {
		return false, fmt.Errorf("canVote call failed: %w", err)
	}
	ok, err := uc.calls.DecodeCanVote(out)
	if err != nil {
		return false, fmt.Errorf("failed to decode canVote result: %w", err)
	}
	uc.log.Debug("canVote", "proposal", id.String(), "voter", voter.Hex(), "vote", params.Vote, "result", ok)
	return ok, nil
}

// CanExecute is the use case for checking whether a proposal can be executed
type CanExecute struct {
	web3  Web3
	calls PluginCalls
	log   *slog.Logger
}

// NewCanExecute creates a new CanExecute use case
func NewCanExecute(web3 Web3, calls PluginCalls, log *slog.Logger) *CanExecute {
	return &CanExecute{
		web3:  web3,
		calls: calls,
		log:   log.With("component", "CanExecute"),
	}
}

// Run asks the plugin whether the proposal can be executed now. A signer is
// required since execution is checked on behalf of the configured account.
func (uc *CanExecute) Run(ctx context.Context, proposalID string) (bool, error) {
	id, err := domain.ParseProposalID(proposalID)
	if err != nil {
		return false, err
	}
	if _, err := uc.web3.Signer(); err != nil {
		return false, err
	}
	provider, err := uc.web3.Provider()
	if err != nil {
		return false, err
	}

	data, err := uc.calls.CanExecuteCall(id.Index)
	if err != nil {
		return false, fmt.Errorf("failed to pack canExecute: %w", err)
	}
	out, err := provider.Call(ctx, id.PluginAddress, data)
	if err != nil {
		return false, fmt.Errorf("canExecute call failed: %w", err)
	}
	ok, err := uc.calls.DecodeCanExecute(out)
	if err != nil {
		return false, fmt.Errorf("failed to decode canExecute result: %w", err)
	}
	uc.log.Debug("canExecute", "proposal", id.String(), "result", ok)
	return ok, nil
}
