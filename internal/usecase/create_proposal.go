package usecase

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// CreateProposal is the use case for submitting a new proposal
type CreateProposal struct {
	web3  Web3
	calls PluginCalls
	log   *slog.Logger
}

// NewCreateProposal creates a new CreateProposal use case
func NewCreateProposal(web3 Web3, calls PluginCalls, log *slog.Logger) *CreateProposal {
	return &CreateProposal{
		web3:  web3,
		calls: calls,
		log:   log.With("component", "CreateProposal"),
	}
}

// Run validates the request and returns the creation steps. Nothing is
// submitted until the sequence is pulled; every iteration submits a new
// transaction.
func (uc *CreateProposal) Run(ctx context.Context, params models.CreateProposalParams) (iter.Seq2[models.ProposalCreationStepValue, error], error) {
	signer, err := uc.web3.Signer()
	if err != nil {
		return nil, err
	}
	if len(params.FailSafeActions) > 0 && len(params.FailSafeActions) != len(params.Actions) {
		return nil, fmt.Errorf("%w: %d actions, %d failSafeActions", domain.ErrSizeMismatch, len(params.Actions), len(params.FailSafeActions))
	}
	plugin, err := parseAddress(params.PluginAddress)
	if err != nil {
		return nil, err
	}
	data, err := uc.calls.CreateProposalCall(params)
	if err != nil {
		return nil, err
	}

	return func(yield func(models.ProposalCreationStepValue, error) bool) {
		hash, err := signer.SendTransaction(ctx, plugin, data)
		if err != nil {
			yield(models.ProposalCreationStepValue{}, fmt.Errorf("failed to submit proposal: %w", err))
			return
		}
		uc.log.Debug("proposal submitted", "plugin", plugin.Hex(), "tx", hash.Hex())
		if !yield(models.ProposalCreationStepValue{Key: models.ProposalCreationCreating, TxHash: hash}, nil) {
			return
		}

		receipt, err := confirm(ctx, signer, hash)
		if err != nil {
			yield(models.ProposalCreationStepValue{}, err)
			return
		}
		index, err := uc.calls.ProposalCreatedIndex(receipt.Logs, plugin)
		if err != nil {
			yield(models.ProposalCreationStepValue{}, err)
			return
		}
		if !index.IsUint64() {
			yield(models.ProposalCreationStepValue{}, fmt.Errorf("%w: proposal index %s out of range", domain.ErrProposalCreationFailed, index))
			return
		}
		yield(models.ProposalCreationStepValue{
			Key:        models.ProposalCreationDone,
			ProposalID: domain.EncodeProposalID(plugin, index.Uint64()),
		}, nil)
	}, nil
}
