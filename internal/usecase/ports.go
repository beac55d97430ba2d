package usecase

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// Indexer queries the plugin subgraph. Lookups of a single entity return
// nil without error when the indexer has no record of it.
type Indexer interface {
	VetoProposal(ctx context.Context, id string) (*models.SubgraphProposal, error)
	VetoProposals(ctx context.Context, where map[string]any, params domain.ProposalQueryParams) ([]models.SubgraphProposalListItem, error)
	VetoSettings(ctx context.Context, pluginAddress string) (*models.SubgraphVotingSettings, error)
	VetoPluginToken(ctx context.Context, pluginAddress string) (*models.SubgraphToken, error)
	VetoMembers(ctx context.Context, pluginAddress string) ([]string, error)
	Daos(ctx context.Context, params domain.DaoQueryParams) ([]models.SubgraphDaoListItem, error)
}

// IPFS stores and fetches content-addressed documents
type IPFS interface {
	Add(ctx context.Context, data []byte) (string, error)
	Pin(ctx context.Context, cid string) error
	Cat(ctx context.Context, cid string) ([]byte, error)
}

// FeeData is the current fee market of the chain
type FeeData struct {
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// Provider is a read-only chain connection
type Provider interface {
	// ResolveName resolves an ENS name, domain.ErrInvalidAddressOrEns when it has no address
	ResolveName(ctx context.Context, name string) (common.Address, error)
	Call(ctx context.Context, to common.Address, data []byte) ([]byte, error)
	EstimateGas(ctx context.Context, from, to common.Address, data []byte) (uint64, error)
	FeeData(ctx context.Context) (*FeeData, error)
}

// Signer submits transactions from the configured account
type Signer interface {
	Address() common.Address
	SendTransaction(ctx context.Context, to common.Address, data []byte) (common.Hash, error)
	WaitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
}

// Web3 hands out the configured chain connection
type Web3 interface {
	// Provider fails with domain.ErrNoProvider when no RPC endpoint is configured
	Provider() (Provider, error)
	// Signer fails with domain.ErrNoSigner without a key and domain.ErrNoProvider without an RPC endpoint
	Signer() (Signer, error)
}

// PluginCalls builds call data for the plugin and its governance token and
// decodes the results of read-only calls
type PluginCalls interface {
	CreateProposalCall(params models.CreateProposalParams) ([]byte, error)
	VoteCall(index uint64, vote models.VoteValue) ([]byte, error)
	ExecuteCall(index uint64) ([]byte, error)
	CanVoteCall(index uint64, voter common.Address, vote models.VoteValue) ([]byte, error)
	DecodeCanVote(data []byte) (bool, error)
	CanExecuteCall(index uint64) ([]byte, error)
	DecodeCanExecute(data []byte) (bool, error)
	VotingTokenCall() ([]byte, error)
	DecodeVotingToken(data []byte) (common.Address, error)
	DecimalsCall() ([]byte, error)
	DecodeDecimals(data []byte) (uint8, error)
	ApproveCall(spender common.Address, amount *big.Int) ([]byte, error)
	DepositCall(amount *big.Int, reference string) ([]byte, error)
	// ProposalCreatedIndex fails with domain.ErrProposalCreationFailed when plugin emitted no ProposalCreated log
	ProposalCreatedIndex(logs []*types.Log, plugin common.Address) (*big.Int, error)
}

// Clock returns the current time
type Clock func() time.Time

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// Selector lets the user pick interactively when a command is missing an argument
type Selector interface {
	SelectProposal(ctx context.Context, proposals []*models.ProposalListItem, prompt string) (*models.ProposalListItem, error)
	SelectVote(ctx context.Context, prompt string) (models.VoteValue, error)
	Confirm(ctx context.Context, prompt string) (bool, error)
}
