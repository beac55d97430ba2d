package abi

import (
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/samber/lo"

	"github.com/capitaldao/veto-cli/internal/domain/bindings"
	"github.com/capitaldao/veto-cli/internal/domain/models"
	"github.com/capitaldao/veto-cli/internal/usecase"
)

// Calls builds the call data of plugin and token transactions and decodes
// the results of read-only calls
type Calls struct {
	veto   *bindings.VetoPlugin
	token  *bindings.GovernanceERC20
	events *EventDecoder
	log    *slog.Logger
}

// NewCalls creates a new call data builder
func NewCalls(events *EventDecoder, log *slog.Logger) *Calls {
	return &Calls{
		veto:   bindings.NewVetoPlugin(),
		token:  bindings.NewGovernanceERC20(),
		events: events,
		log:    log.With("component", "Calls"),
	}
}

// CreateProposalCall packs createProposal. Unset dates are sent as zero so
// the plugin picks its own window.
func (c *Calls) CreateProposalCall(params models.CreateProposalParams) ([]byte, error) {
	start, err := unixSeconds("start", params.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := unixSeconds("end", params.EndDate)
	if err != nil {
		return nil, err
	}
	actions := lo.Map(params.Actions, func(a models.DaoAction, _ int) bindings.IDAOAction {
		value := a.Value
		if value == nil {
			value = new(big.Int)
		}
		return bindings.IDAOAction{To: a.To, Value: value, Data: a.Data}
	})
	data, err := c.veto.PackCreateProposal(
		[]byte(params.MetadataURI),
		actions,
		AllowFailureMap(params.FailSafeActions),
		start,
		end,
		uint8(params.CreatorVote),
		params.ExecuteOnPass,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to pack createProposal: %w", err)
	}
	return data, nil
}

func unixSeconds(field string, t *time.Time) (uint64, error) {
	if t == nil {
		return 0, nil
	}
	if t.Unix() < 0 {
		return 0, fmt.Errorf("%s date %s is before 1970", field, t.Format(time.RFC3339))
	}
	return uint64(t.Unix()), nil
}

// VoteCall packs vote without early execution
func (c *Calls) VoteCall(index uint64, vote models.VoteValue) ([]byte, error) {
	return c.veto.PackVote(new(big.Int).SetUint64(index), uint8(vote), false)
}

func (c *Calls) ExecuteCall(index uint64) ([]byte, error) {
	return c.veto.PackExecute(new(big.Int).SetUint64(index))
}

func (c *Calls) CanVoteCall(index uint64, voter common.Address, vote models.VoteValue) ([]byte, error) {
	return c.veto.PackCanVote(new(big.Int).SetUint64(index), voter, uint8(vote))
}

func (c *Calls) DecodeCanVote(data []byte) (bool, error) {
	return c.veto.UnpackCanVote(data)
}

func (c *Calls) CanExecuteCall(index uint64) ([]byte, error) {
	return c.veto.PackCanExecute(new(big.Int).SetUint64(index))
}

func (c *Calls) DecodeCanExecute(data []byte) (bool, error) {
	return c.veto.UnpackCanExecute(data)
}

func (c *Calls) VotingTokenCall() ([]byte, error) {
	return c.veto.PackGetVotingToken()
}

func (c *Calls) DecodeVotingToken(data []byte) (common.Address, error) {
	return c.veto.UnpackGetVotingToken(data)
}

func (c *Calls) DecimalsCall() ([]byte, error) {
	return c.token.PackDecimals()
}

func (c *Calls) DecodeDecimals(data []byte) (uint8, error) {
	return c.token.UnpackDecimals(data)
}

func (c *Calls) ApproveCall(spender common.Address, amount *big.Int) ([]byte, error) {
	return c.token.PackApprove(spender, amount)
}

func (c *Calls) DepositCall(amount *big.Int, reference string) ([]byte, error) {
	return c.veto.PackDeposit(amount, reference)
}

// ProposalCreatedIndex finds the index the plugin assigned to a new proposal
func (c *Calls) ProposalCreatedIndex(logs []*types.Log, plugin common.Address) (*big.Int, error) {
	return c.events.ProposalCreatedIndex(logs, plugin)
}

var _ usecase.PluginCalls = (*Calls)(nil)
