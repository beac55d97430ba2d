package usecase

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// VoteProposal is the use case for casting a vote
type VoteProposal struct {
	web3  Web3
	calls PluginCalls
	log   *slog.Logger
}

// NewVoteProposal creates a new VoteProposal use case
func NewVoteProposal(web3 Web3, calls PluginCalls, log *slog.Logger) *VoteProposal {
	return &VoteProposal{
		web3:  web3,
		calls: calls,
		log:   log.With("component", "VoteProposal"),
	}
}

// Run validates the request and returns the voting steps
func (uc *VoteProposal) Run(ctx context.Context, params models.VoteProposalParams) (iter.Seq2[models.VoteProposalStepValue, error], error) {
	signer, err := uc.web3.Signer()
	if err != nil {
		return nil, err
	}
	id, err := domain.ParseProposalID(params.ProposalID)
	if err != nil {
		return nil, err
	}
	data, err := uc.calls.VoteCall(id.Index, params.Vote)
	if err != nil {
		return nil, fmt.Errorf("failed to pack vote: %w", err)
	}

	return func(yield func(models.VoteProposalStepValue, error) bool) {
		hash, err := signer.SendTransaction(ctx, id.PluginAddress, data)
		if err != nil {
			yield(models.VoteProposalStepValue{}, fmt.Errorf("failed to submit vote: %w", err))
			return
		}
		uc.log.Debug("vote submitted", "proposal", id.String(), "vote", params.Vote, "tx", hash.Hex())
		if !yield(models.VoteProposalStepValue{Key: models.VoteProposalVoting, TxHash: hash}, nil) {
			return
		}
		if _, err := confirm(ctx, signer, hash); err != nil {
			yield(models.VoteProposalStepValue{}, err)
			return
		}
		yield(models.VoteProposalStepValue{Key: models.VoteProposalDone, TxHash: hash}, nil)
	}, nil
}
