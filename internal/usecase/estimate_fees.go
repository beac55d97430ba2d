package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// Estimator prices the staged plugin transactions without submitting them
type Estimator struct {
	web3   Web3
	calls  PluginCalls
	factor float64
	log    *slog.Logger
}

// NewEstimator creates a new Estimator. factor scales the maximum fee down
// to the reported average.
func NewEstimator(web3 Web3, calls PluginCalls, factor float64, log *slog.Logger) *Estimator {
	return &Estimator{
		web3:   web3,
		calls:  calls,
		factor: factor,
		log:    log.With("component", "Estimator"),
	}
}

// CreateProposal estimates the cost of submitting a proposal
func (e *Estimator) CreateProposal(ctx context.Context, params models.CreateProposalParams) (*models.GasFeeEstimate, error) {
	signer, provider, err := e.connect()
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
	data, err := e.calls.CreateProposalCall(params)
	if err != nil {
		return nil, err
	}
	return e.estimate(ctx, provider, signer.Address(), plugin, data)
}

// VoteProposal estimates the cost of casting a vote
func (e *Estimator) VoteProposal(ctx context.Context, params models.VoteProposalParams) (*models.GasFeeEstimate, error) {
	signer, provider, err := e.connect()
	if err != nil {
		return nil, err
	}
	id, err := domain.ParseProposalID(params.ProposalID)
	if err != nil {
		return nil, err
	}
	data, err := e.calls.VoteCall(id.Index, params.Vote)
	if err != nil {
		return nil, fmt.Errorf("failed to pack vote: %w", err)
	}
	return e.estimate(ctx, provider, signer.Address(), id.PluginAddress, data)
}

// ExecuteProposal estimates the cost of executing a proposal
func (e *Estimator) ExecuteProposal(ctx context.Context, proposalID string) (*models.GasFeeEstimate, error) {
	signer, provider, err := e.connect()
	if err != nil {
		return nil, err
	}
	id, err := domain.ParseProposalID(proposalID)
	if err != nil {
		return nil, err
	}
	data, err := e.calls.ExecuteCall(id.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to pack execute: %w", err)
	}
	return e.estimate(ctx, provider, signer.Address(), id.PluginAddress, data)
}

func (e *Estimator) connect() (Signer, Provider, error) {
	signer, err := e.web3.Signer()
	if err != nil {
		return nil, nil, err
	}
	provider, err := e.web3.Provider()
	if err != nil {
		return nil, nil, err
	}
	return signer, provider, nil
}

func (e *Estimator) estimate(ctx context.Context, provider Provider, from, to common.Address, data []byte) (*models.GasFeeEstimate, error) {
	gas, err := provider.EstimateGas(ctx, from, to, data)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}
	fees, err := provider.FeeData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read fee data: %w", err)
	}
	estimate := GasFeeEstimate(gas, fees.MaxFeePerGas, e.factor)
	e.log.Debug("estimated", "to", to.Hex(), "gas", gas, "max", estimate.Max, "average", estimate.Average)
	return estimate, nil
}

// GasFeeEstimate prices gas units at maxFeePerGas; the average is the
// maximum scaled by factor
func GasFeeEstimate(gas uint64, maxFeePerGas *big.Int, factor float64) *models.GasFeeEstimate {
	if maxFeePerGas == nil {
		maxFeePerGas = new(big.Int)
	}
	maxFee := new(big.Int).Mul(new(big.Int).SetUint64(gas), maxFeePerGas)
	avg, _ := new(big.Float).Mul(new(big.Float).SetInt(maxFee), big.NewFloat(factor)).Int(nil)
	return &models.GasFeeEstimate{Average: avg, Max: maxFee}
}
