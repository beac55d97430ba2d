package client

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/config"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

const testPlugin = "0x1234567890123456789012345678901234567890"

// settingsIndexer answers settings queries and records the plugin asked for
type settingsIndexer struct {
	noIndexer
	asked string
}

func (s *settingsIndexer) VetoSettings(_ context.Context, pluginAddress string) (*models.SubgraphVotingSettings, error) {
	s.asked = pluginAddress
	return &models.SubgraphVotingSettings{MinDuration: "3600", SupportThreshold: "500000", MinParticipation: "100000", MinProposerVotingPower: "0"}, nil
}

func testDeps() Deps {
	return Deps{
		Config: &config.RuntimeConfig{
			PluginAddress: testPlugin,
			Network:       &config.Network{Name: "sepolia", ChainID: 11155111},
		},
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		pluginType domain.PluginType
		family     domain.PluginFamily
	}{
		{domain.PluginTypeVeto, domain.PluginFamilyVeto},
		{domain.PluginTypeVetoV2, domain.PluginFamilyVeto},
		{domain.PluginTypeTokenVoting, domain.PluginFamilyVeto},
		{domain.PluginTypeCapitalDaoMumbai, domain.PluginFamilyVeto},
		{domain.PluginTypeVetoMultisigV1, domain.PluginFamilyMultisig},
		{domain.PluginTypeVetoMultisigV2, domain.PluginFamilyMultisig},
		{domain.PluginTypeMultisig, domain.PluginFamilyMultisig},
	}

	for _, tt := range tests {
		t.Run(string(tt.pluginType), func(t *testing.T) {
			c, err := New(tt.pluginType, testDeps())
			require.NoError(t, err)
			assert.Equal(t, tt.pluginType, c.PluginType())
			assert.Equal(t, tt.family, c.Family())

			switch c := c.(type) {
			case *VetoClient:
				assert.Equal(t, domain.PluginFamilyVeto, tt.family)
				assert.Same(t, c.Methods(), c.Methods())
			case *MultisigClient:
				assert.Equal(t, domain.PluginFamilyMultisig, tt.family)
				assert.Same(t, c.Encoding(), c.Encoding())
			default:
				t.Fatalf("unexpected client %T", c)
			}
		})
	}

	_, err := New("admin.plugin.dao.eth", testDeps())
	assert.ErrorIs(t, err, domain.ErrInvalidPluginType)
}

func TestVetoClientDefaultsToItsPlugin(t *testing.T) {
	deps := testDeps()
	indexer := &settingsIndexer{}
	deps.Indexer = indexer

	settings, err := NewVetoClient(domain.PluginTypeVeto, deps).Methods().GetVotingSettings(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, testPlugin, indexer.asked)
	assert.Equal(t, uint64(3600), settings.MinDuration)
	assert.InDelta(t, 0.1, settings.MinParticipation, 1e-9)
}

func TestVetoClientWithoutConnections(t *testing.T) {
	ctx := context.Background()
	c := NewVetoClient(domain.PluginTypeVeto, testDeps())

	_, err := c.Methods().CreateProposal(ctx, models.CreateProposalParams{})
	assert.ErrorIs(t, err, domain.ErrNoSigner)

	_, err = c.Estimation().ExecuteProposal(ctx, testPlugin+"_0x1")
	assert.ErrorIs(t, err, domain.ErrNoSigner)

	_, err = c.Methods().GetToken(ctx, "")
	var gqlErr *domain.GraphQLError
	require.ErrorAs(t, err, &gqlErr)
	assert.Equal(t, "token", gqlErr.Query)
}

func TestVetoEncodingRoundTrip(t *testing.T) {
	c := NewVetoClient(domain.PluginTypeVeto, testDeps())
	params := models.MintTokenParams{Address: "0x00000000000000000000000000000000000000aA", Amount: big.NewInt(5)}

	action, err := c.Encoding().MintTokenAction("0x0000000000000000000000000000000000000010", params)
	require.NoError(t, err)

	decoded, err := c.Decoding().MintTokenAction(action.Data)
	require.NoError(t, err)
	assert.Equal(t, 0, params.Amount.Cmp(decoded.Amount))

	iface := c.Decoding().FindInterface(action.Data)
	require.NotNil(t, iface)
	assert.Equal(t, "mint", iface.FunctionName)
}

func TestMultisigEncodingRoundTrip(t *testing.T) {
	c := NewMultisigClient(domain.PluginTypeMultisig, testDeps())
	members := []string{"0x00000000000000000000000000000000000000aa", "0x00000000000000000000000000000000000000bb"}

	action, err := c.Encoding().AddAddressesAction(models.MembersParams{PluginAddress: testPlugin, Members: members})
	require.NoError(t, err)

	got, err := c.Decoding().AddAddressesAction(action.Data)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "addAddresses", c.Decoding().FindInterface(action.Data).FunctionName)
}
