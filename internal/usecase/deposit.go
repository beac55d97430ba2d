package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// Deposit is the use case for depositing governance tokens into the plugin
type Deposit struct {
	web3  Web3
	calls PluginCalls
	sink  ProgressSink
	log   *slog.Logger
}

// NewDeposit creates a new Deposit use case
func NewDeposit(web3 Web3, calls PluginCalls, sink ProgressSink, log *slog.Logger) *Deposit {
	return &Deposit{
		web3:  web3,
		calls: calls,
		sink:  sink,
		log:   log.With("component", "Deposit"),
	}
}

// Run approves the plugin to spend the amount and deposits it. Both
// transactions are awaited; an approval that succeeded is not revoked when
// the deposit fails.
func (uc *Deposit) Run(ctx context.Context, params models.DepositParams) error {
	signer, err := uc.web3.Signer()
	if err != nil {
		return err
	}
	provider, err := uc.web3.Provider()
	if err != nil {
		return err
	}
	plugin, err := parseAddress(params.PluginAddress)
	if err != nil {
		return err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "token", Message: "Reading voting token", Spinner: true})
	call, err := uc.calls.VotingTokenCall()
	if err != nil {
		return fmt.Errorf("failed to pack getVotingToken: %w", err)
	}
	out, err := provider.Call(ctx, plugin, call)
	if err != nil {
		return fmt.Errorf("getVotingToken call failed: %w", err)
	}
	token, err := uc.calls.DecodeVotingToken(out)
	if err != nil {
		return fmt.Errorf("failed to decode voting token: %w", err)
	}

	call, err = uc.calls.DecimalsCall()
	if err != nil {
		return fmt.Errorf("failed to pack decimals: %w", err)
	}
	out, err = provider.Call(ctx, token, call)
	if err != nil {
		return fmt.Errorf("decimals call failed: %w", err)
	}
	decimals, err := uc.calls.DecodeDecimals(out)
	if err != nil {
		return fmt.Errorf("failed to decode decimals: %w", err)
	}

	amount, err := domain.ParseTokenAmount(params.Amount, decimals)
	if err != nil {
		return err
	}
	uc.log.Debug("deposit", "plugin", plugin.Hex(), "token", token.Hex(), "units", amount)

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "approve", Current: 1, Total: 2, Message: "Approving token spend", Spinner: true})
	call, err = uc.calls.ApproveCall(plugin, amount)
	if err != nil {
		return fmt.Errorf("failed to pack approve: %w", err)
	}
	hash, err := signer.SendTransaction(ctx, token, call)
	if err != nil {
		return fmt.Errorf("failed to submit approval: %w", err)
	}
	if _, err := confirm(ctx, signer, hash); err != nil {
		return err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "deposit", Current: 2, Total: 2, Message: "Depositing", Spinner: true})
	call, err = uc.calls.DepositCall(amount, params.Reference)
	if err != nil {
		return fmt.Errorf("failed to pack deposit: %w", err)
	}
	hash, err = signer.SendTransaction(ctx, plugin, call)
	if err != nil {
		return fmt.Errorf("failed to submit deposit: %w", err)
	}
	if _, err := confirm(ctx, signer, hash); err != nil {
		return err
	}

	uc.sink.Info(fmt.Sprintf("Deposited %s tokens (tx %s)", params.Amount, hash.Hex()))
	return nil
}
