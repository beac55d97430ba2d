package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
	"github.com/capitaldao/veto-cli/internal/usecase"
)

const (
	pluginAddress = "0x1234567890123456789012345678901234567890"
	daoAddress    = "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"
	voterAddress  = "0x00000000000000000000000000000000000000aa"
	metadataCID   = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockIndexer is a mock implementation of Indexer
type MockIndexer struct {
	mock.Mock
}

func (m *MockIndexer) VetoProposal(ctx context.Context, id string) (*models.SubgraphProposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubgraphProposal), args.Error(1)
}

func (m *MockIndexer) VetoProposals(ctx context.Context, where map[string]any, params domain.ProposalQueryParams) ([]models.SubgraphProposalListItem, error) {
	args := m.Called(ctx, where, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SubgraphProposalListItem), args.Error(1)
}

func (m *MockIndexer) VetoSettings(ctx context.Context, pluginAddress string) (*models.SubgraphVotingSettings, error) {
	args := m.Called(ctx, pluginAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubgraphVotingSettings), args.Error(1)
}

func (m *MockIndexer) VetoPluginToken(ctx context.Context, pluginAddress string) (*models.SubgraphToken, error) {
	args := m.Called(ctx, pluginAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubgraphToken), args.Error(1)
}

func (m *MockIndexer) VetoMembers(ctx context.Context, pluginAddress string) ([]string, error) {
	args := m.Called(ctx, pluginAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockIndexer) Daos(ctx context.Context, params domain.DaoQueryParams) ([]models.SubgraphDaoListItem, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SubgraphDaoListItem), args.Error(1)
}

// MockIPFS is a mock implementation of IPFS
type MockIPFS struct {
	mock.Mock
}

func (m *MockIPFS) Add(ctx context.Context, data []byte) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func (m *MockIPFS) Pin(ctx context.Context, cid string) error {
	return m.Called(ctx, cid).Error(0)
}

func (m *MockIPFS) Cat(ctx context.Context, cid string) ([]byte, error) {
	args := m.Called(ctx, cid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockProvider is a mock implementation of Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) ResolveName(ctx context.Context, name string) (common.Address, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(common.Address), args.Error(1)
}

func (m *MockProvider) Call(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	args := m.Called(ctx, to, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockProvider) EstimateGas(ctx context.Context, from, to common.Address, data []byte) (uint64, error) {
	args := m.Called(ctx, from, to, data)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockProvider) FeeData(ctx context.Context) (*usecase.FeeData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.FeeData), args.Error(1)
}

// MockSigner is a mock implementation of Signer
type MockSigner struct {
	mock.Mock
}

func (m *MockSigner) Address() common.Address {
	return common.HexToAddress(voterAddress)
}

func (m *MockSigner) SendTransaction(ctx context.Context, to common.Address, data []byte) (common.Hash, error) {
	args := m.Called(ctx, to, data)
	return args.Get(0).(common.Hash), args.Error(1)
}

func (m *MockSigner) WaitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Receipt), args.Error(1)
}

// fakeWeb3 hands out whichever connections the test configured
type fakeWeb3 struct {
	provider usecase.Provider
	signer   usecase.Signer
}

func (w *fakeWeb3) Provider() (usecase.Provider, error) {
	if w.provider == nil {
		return nil, domain.ErrNoProvider
	}
	return w.provider, nil
}

func (w *fakeWeb3) Signer() (usecase.Signer, error) {
	if w.signer == nil {
		return nil, domain.ErrNoSigner
	}
	if w.provider == nil {
		return nil, domain.ErrNoProvider
	}
	return w.signer, nil
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.infos = append(m.infos, message)
}

func (m *MockProgressSink) Error(string) {}

func successReceipt(logs ...*types.Log) *types.Receipt {
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, Logs: logs}
}
