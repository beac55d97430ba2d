package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
	"github.com/capitaldao/veto-cli/internal/usecase"
)

func fixedClock(sec int64) usecase.Clock {
	return func() time.Time { return time.Unix(sec, 0) }
}

func TestGetProposal(t *testing.T) {
	ctx := context.Background()
	log := discardLogger()

	t.Run("rejects malformed ids without querying", func(t *testing.T) {
		indexer := new(MockIndexer)
		uc := usecase.NewGetProposal(indexer, usecase.NewMetadataResolver(new(MockIPFS), log), fixedClock(0), log)

		_, err := uc.Run(ctx, "not-a-valid-id")

		assert.ErrorIs(t, err, domain.ErrInvalidProposalID)
		indexer.AssertNotCalled(t, "VetoProposal", mock.Anything, mock.Anything)
	})

	t.Run("queries the extended id", func(t *testing.T) {
		indexer := new(MockIndexer)
		ipfs := new(MockIPFS)
		extended := pluginAddress + "_0x0000000000000000000000000000000000000000000000000000000000000003"
		indexer.On("VetoProposal", mock.Anything, extended).Return(sampleProposal(), nil)
		ipfs.On("Cat", mock.Anything, metadataCID).Return([]byte(`{"title":"Raise","summary":"s","description":"d"}`), nil)

		uc := usecase.NewGetProposal(indexer, usecase.NewMetadataResolver(ipfs, log), fixedClock(1700001000), log)
		p, err := uc.Run(ctx, pluginAddress+"_0x3")

		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Raise", p.Metadata.Title)
		assert.Equal(t, []models.ProposalResource{}, p.Metadata.Resources)
		assert.False(t, p.MetadataDegraded)
		indexer.AssertExpectations(t)
	})

	t.Run("substitutes the unsupported link placeholder", func(t *testing.T) {
		indexer := new(MockIndexer)
		ipfs := new(MockIPFS)
		rec := sampleProposal()
		rec.Metadata = "https://example.com/metadata.json"
		indexer.On("VetoProposal", mock.Anything, mock.Anything).Return(rec, nil)

		uc := usecase.NewGetProposal(indexer, usecase.NewMetadataResolver(ipfs, log), fixedClock(0), log)
		p, err := uc.Run(ctx, pluginAddress+"_0x3")

		require.NoError(t, err)
		assert.Equal(t, models.UnsupportedProposalMetadataLink.Title, p.Metadata.Title)
		assert.Equal(t, models.UnsupportedProposalMetadataLink.Summary, p.Metadata.Summary)
		assert.True(t, p.MetadataDegraded)
		ipfs.AssertNotCalled(t, "Cat", mock.Anything, mock.Anything)
	})

	t.Run("substitutes the unavailable placeholder", func(t *testing.T) {
		indexer := new(MockIndexer)
		ipfs := new(MockIPFS)
		indexer.On("VetoProposal", mock.Anything, mock.Anything).Return(sampleProposal(), nil)
		ipfs.On("Cat", mock.Anything, metadataCID).Return(nil, errors.New("gateway timeout"))

		uc := usecase.NewGetProposal(indexer, usecase.NewMetadataResolver(ipfs, log), fixedClock(0), log)
		p, err := uc.Run(ctx, pluginAddress+"_0x3")

		require.NoError(t, err)
		assert.Equal(t, models.UnavailableProposalMetadata.Title, p.Metadata.Title)
	})

	t.Run("logs malformed action data", func(t *testing.T) {
		indexer := new(MockIndexer)
		ipfs := new(MockIPFS)
		rec := sampleProposal()
		rec.Actions = []models.SubgraphAction{{To: daoAddress, Value: "0", Data: "0xzz"}}
		indexer.On("VetoProposal", mock.Anything, mock.Anything).Return(rec, nil)
		ipfs.On("Cat", mock.Anything, metadataCID).Return([]byte(`{"title":"Raise"}`), nil)

		var buf bytes.Buffer
		debugLog := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		uc := usecase.NewGetProposal(indexer, usecase.NewMetadataResolver(ipfs, log), fixedClock(0), debugLog)
		p, err := uc.Run(ctx, pluginAddress+"_0x3")

		require.NoError(t, err)
		require.Len(t, p.Actions, 1)
		assert.Empty(t, p.Actions[0].Data)
		assert.Contains(t, buf.String(), "malformed action data")
		assert.Contains(t, buf.String(), "data=0xzz")
	})

	t.Run("returns nil when not indexed", func(t *testing.T) {
		indexer := new(MockIndexer)
		indexer.On("VetoProposal", mock.Anything, mock.Anything).Return(nil, nil)

		uc := usecase.NewGetProposal(indexer, usecase.NewMetadataResolver(new(MockIPFS), log), fixedClock(0), log)
		p, err := uc.Run(ctx, pluginAddress+"_0x3")

		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("wraps indexer failures", func(t *testing.T) {
		indexer := new(MockIndexer)
		indexer.On("VetoProposal", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

		uc := usecase.NewGetProposal(indexer, usecase.NewMetadataResolver(new(MockIPFS), log), fixedClock(0), log)
		_, err := uc.Run(ctx, pluginAddress+"_0x3")

		var gqlErr *domain.GraphQLError
		require.ErrorAs(t, err, &gqlErr)
		assert.Equal(t, "Veto proposal", gqlErr.Query)
	})
}

func TestListProposals(t *testing.T) {
	ctx := context.Background()
	log := discardLogger()
	now := int64(1700001000)

	t.Run("resolves ENS names and filters by status", func(t *testing.T) {
		indexer := new(MockIndexer)
		ipfs := new(MockIPFS)
		provider := new(MockProvider)
		provider.On("ResolveName", mock.Anything, "capital.dao.eth").Return(common.HexToAddress(daoAddress), nil)

		wantWhere := map[string]any{
			"dao":          strings.ToLower(daoAddress),
			"startDate_lt": "1700001000",
			"endDate_gte":  "1700001000",
		}
		wantParams := domain.ProposalQueryParams{
			DaoAddressOrEns: "capital.dao.eth",
			Limit:           10,
			Direction:       domain.SortAsc,
			SortBy:          domain.ProposalSortByCreatedAt,
			Status:          models.ProposalStatusActive,
		}
		indexer.On("VetoProposals", mock.Anything, wantWhere, wantParams).
			Return([]models.SubgraphProposalListItem{sampleProposal().SubgraphProposalListItem}, nil)
		ipfs.On("Cat", mock.Anything, metadataCID).Return([]byte(`{"title":"Raise","summary":"more"}`), nil)

		uc := usecase.NewListProposals(indexer, usecase.NewMetadataResolver(ipfs, log), &fakeWeb3{provider: provider}, fixedClock(now), log)
		items, err := uc.Run(ctx, domain.ProposalQueryParams{DaoAddressOrEns: "capital.dao.eth", Status: models.ProposalStatusActive})

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Raise", items[0].Metadata.Title)
		assert.Equal(t, models.ProposalStatusActive, items[0].Status)
		indexer.AssertExpectations(t)
	})

	t.Run("needs a provider for ENS names", func(t *testing.T) {
		indexer := new(MockIndexer)
		uc := usecase.NewListProposals(indexer, usecase.NewMetadataResolver(new(MockIPFS), log), &fakeWeb3{}, fixedClock(now), log)

		_, err := uc.Run(ctx, domain.ProposalQueryParams{DaoAddressOrEns: "capital.dao.eth"})

		assert.ErrorIs(t, err, domain.ErrNoProvider)
		indexer.AssertNotCalled(t, "VetoProposals", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects names that do not resolve", func(t *testing.T) {
		provider := new(MockProvider)
		provider.On("ResolveName", mock.Anything, "nobody.dao.eth").Return(common.Address{}, nil)
		uc := usecase.NewListProposals(new(MockIndexer), usecase.NewMetadataResolver(new(MockIPFS), log), &fakeWeb3{provider: provider}, fixedClock(now), log)

		_, err := uc.Run(ctx, domain.ProposalQueryParams{DaoAddressOrEns: "nobody.dao.eth"})

		assert.ErrorIs(t, err, domain.ErrInvalidAddressOrEns)
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		uc := usecase.NewListProposals(new(MockIndexer), usecase.NewMetadataResolver(new(MockIPFS), log), &fakeWeb3{}, fixedClock(now), log)

		_, err := uc.Run(ctx, domain.ProposalQueryParams{Status: "Vetoed"})

		assert.ErrorIs(t, err, domain.ErrInvalidProposalStatus)
	})

	t.Run("wraps indexer failures", func(t *testing.T) {
		indexer := new(MockIndexer)
		indexer.On("VetoProposals", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
		uc := usecase.NewListProposals(indexer, usecase.NewMetadataResolver(new(MockIPFS), log), &fakeWeb3{}, fixedClock(now), log)

		_, err := uc.Run(ctx, domain.ProposalQueryParams{})

		var gqlErr *domain.GraphQLError
		require.ErrorAs(t, err, &gqlErr)
		assert.Equal(t, "Veto proposals", gqlErr.Query)
	})
}

func TestReadSettings(t *testing.T) {
	ctx := context.Background()
	log := discardLogger()

	t.Run("decodes ratios", func(t *testing.T) {
		indexer := new(MockIndexer)
		indexer.On("VetoSettings", mock.Anything, pluginAddress).Return(&models.SubgraphVotingSettings{
			MinDuration:            "86400",
			MinProposerVotingPower: "1000",
			MinParticipation:       "150000",
			SupportThreshold:       "500000",
			VotingMode:             models.VotingModeEarlyExecution,
		}, nil)

		settings, err := usecase.NewReadSettings(indexer, log).Run(ctx, pluginAddress)

		require.NoError(t, err)
		assert.Equal(t, &models.VotingSettings{
			MinDuration:            86400,
			SupportThreshold:       0.5,
			MinParticipation:       0.15,
			MinProposerVotingPower: big.NewInt(1000),
			VotingMode:             models.VotingModeEarlyExecution,
		}, settings)
	})

	t.Run("returns nil for unknown plugins", func(t *testing.T) {
		indexer := new(MockIndexer)
		indexer.On("VetoSettings", mock.Anything, pluginAddress).Return(nil, nil)

		settings, err := usecase.NewReadSettings(indexer, log).Run(ctx, pluginAddress)

		require.NoError(t, err)
		assert.Nil(t, settings)
	})

	t.Run("rejects invalid addresses", func(t *testing.T) {
		indexer := new(MockIndexer)
		_, err := usecase.NewReadSettings(indexer, log).Run(ctx, "0x123")
		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
		indexer.AssertNotCalled(t, "VetoSettings", mock.Anything, mock.Anything)
	})

	t.Run("wraps indexer failures", func(t *testing.T) {
		indexer := new(MockIndexer)
		indexer.On("VetoSettings", mock.Anything, pluginAddress).Return(nil, errors.New("boom"))

		_, err := usecase.NewReadSettings(indexer, log).Run(ctx, pluginAddress)

		var gqlErr *domain.GraphQLError
		require.ErrorAs(t, err, &gqlErr)
		assert.Equal(t, "plugin settings", gqlErr.Query)
	})
}

func TestGetToken(t *testing.T) {
	ctx := context.Background()
	log := discardLogger()

	tests := []struct {
		name  string
		token *models.SubgraphToken
		want  models.TokenDetails
	}{
		{
			name:  "erc20",
			token: &models.SubgraphToken{ID: "0x10", Name: "Capital", Symbol: "CAP", Decimals: 18, Typename: models.SubgraphTypeERC20Contract},
			want:  models.NewErc20Token("0x10", "Capital", "CAP", 18),
		},
		{
			name:  "erc721",
			token: &models.SubgraphToken{ID: "0x11", Name: "Seats", Symbol: "SEAT", Typename: models.SubgraphTypeERC721Contract},
			want:  models.NewErc721Token("0x11", "Seats", "SEAT"),
		},
		{
			name:  "unknown type tag",
			token: &models.SubgraphToken{ID: "0x12", Name: "Odd", Symbol: "ODD", Decimals: 18, Typename: "ERC1155Contract"},
		},
		{
			name: "not indexed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indexer := new(MockIndexer)
			if tt.token == nil {
				indexer.On("VetoPluginToken", mock.Anything, pluginAddress).Return(nil, nil)
			} else {
				indexer.On("VetoPluginToken", mock.Anything, pluginAddress).Return(tt.token, nil)
			}

			token, err := usecase.NewGetToken(indexer, log).Run(ctx, pluginAddress)

			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, token)
				return
			}
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestGetMembers(t *testing.T) {
	indexer := new(MockIndexer)
	indexer.On("VetoMembers", mock.Anything, pluginAddress).Return([]string{voterAddress}, nil)

	members, err := usecase.NewGetMembers(indexer, discardLogger()).Run(context.Background(), pluginAddress)

	require.NoError(t, err)
	assert.Equal(t, []string{voterAddress}, members)
}

func TestListDaos(t *testing.T) {
	ctx := context.Background()
	log := discardLogger()

	t.Run("resolves DAO metadata", func(t *testing.T) {
		indexer := new(MockIndexer)
		ipfs := new(MockIPFS)
		indexer.On("Daos", mock.Anything, mock.MatchedBy(func(p domain.DaoQueryParams) bool {
			return p.PluginAddress == pluginAddress && p.Limit == 10
		})).Return([]models.SubgraphDaoListItem{
			{ID: daoAddress, Subdomain: "capital", Metadata: "ipfs://" + metadataCID},
			{ID: voterAddress, Subdomain: "empty"},
		}, nil)
		ipfs.On("Cat", mock.Anything, metadataCID).Return([]byte(`{"name":"Capital","description":"d"}`), nil)

		daos, err := usecase.NewListDaos(indexer, usecase.NewMetadataResolver(ipfs, log), log).
			Run(ctx, domain.DaoQueryParams{PluginAddress: pluginAddress})

		require.NoError(t, err)
		require.Len(t, daos, 2)
		assert.Equal(t, "Capital", daos[0].Metadata.Name)
		assert.Equal(t, "capital.dao.eth", daos[0].EnsDomain)
		assert.Equal(t, models.EmptyDaoMetadata, daos[1].Metadata)
		assert.True(t, daos[1].MetadataDegraded)
	})

	t.Run("wraps indexer failures", func(t *testing.T) {
		indexer := new(MockIndexer)
		indexer.On("Daos", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		_, err := usecase.NewListDaos(indexer, usecase.NewMetadataResolver(new(MockIPFS), log), log).
			Run(ctx, domain.DaoQueryParams{PluginAddress: pluginAddress})

		var gqlErr *domain.GraphQLError
		require.ErrorAs(t, err, &gqlErr)
		assert.Equal(t, "DAOs", gqlErr.Query)
	})
}
