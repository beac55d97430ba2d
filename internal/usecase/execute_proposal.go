package usecase

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// ExecuteProposal is the use case for executing a passed proposal
type ExecuteProposal struct {
	web3  Web3
	calls PluginCalls
	log   *slog.Logger
}

// NewExecuteProposal creates a new ExecuteProposal use case
func NewExecuteProposal(web3 Web3, calls PluginCalls, log *slog.Logger) *ExecuteProposal {
	return &ExecuteProposal{
		web3:  web3,
		calls: calls,
		log:   log.With("component", "ExecuteProposal"),
	}
}

// Run validates the request and returns the execution steps
func (uc *ExecuteProposal) Run(ctx context.Context, proposalID string) (iter.Seq2[models.ExecuteProposalStepValue, error], error) {
	signer, err := uc.web3.Signer()
	if err != nil {
		return nil, err
	}
	id, err := domain.ParseProposalID(proposalID)
	if err != nil {
		return nil, err
	}
	data, err := uc.calls.ExecuteCall(id.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to pack execute: %w", err)
	}

	return func(yield func(models.ExecuteProposalStepValue, error) bool) {
		hash, err := signer.SendTransaction(ctx, id.PluginAddress, data)
		if err != nil {
			yield(models.ExecuteProposalStepValue{}, fmt.Errorf("failed to submit execution: %w", err))
			return
		}
		uc.log.Debug("execution submitted", "proposal", id.String(), "tx", hash.Hex())
		if !yield(models.ExecuteProposalStepValue{Key: models.ExecuteProposalExecuting, TxHash: hash}, nil) {
			return
		}
		if _, err := confirm(ctx, signer, hash); err != nil {
			yield(models.ExecuteProposalStepValue{}, err)
			return
		}
		yield(models.ExecuteProposalStepValue{Key: models.ExecuteProposalDone, TxHash: hash}, nil)
	}, nil
}
