package abi

import (
	"errors"
	"log/slog"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/config"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

const (
	testPlugin = "0x1234567890123456789012345678901234567890"
	testToken  = "0x00000000000000000000000000000000000000aa"
	testMember = "0x00000000000000000000000000000000000000bb"
)

func selector(sig string) []byte {
	return crypto.Keccak256([]byte(sig))[:4]
}

func TestEncoder_UpdatePluginSettingsAction(t *testing.T) {
	enc := NewEncoder(slog.Default())

	tests := []struct {
		name     string
		plugin   string
		settings models.VotingSettings
		wantErr  error
	}{
		{
			name:   "standard settings",
			plugin: testPlugin,
			settings: models.VotingSettings{
				MinDuration:            3600,
				SupportThreshold:       0.5,
				MinParticipation:       0.25,
				MinProposerVotingPower: big.NewInt(1),
				VotingMode:             models.VotingModeEarlyExecution,
			},
		},
		{
			name:     "nil proposer power is zero",
			plugin:   testPlugin,
			settings: models.VotingSettings{SupportThreshold: 1, MinParticipation: 0},
		},
		{
			name:     "invalid plugin address",
			plugin:   "0x123",
			settings: models.VotingSettings{SupportThreshold: 0.5},
			wantErr:  domain.ErrInvalidAddress,
		},
		{
			name:     "ratio above one",
			plugin:   testPlugin,
			settings: models.VotingSettings{SupportThreshold: 1.5},
			wantErr:  domain.ErrInvalidRatio,
		},
		{
			name:     "negative ratio",
			plugin:   testPlugin,
			settings: models.VotingSettings{SupportThreshold: 0.5, MinParticipation: -0.1},
			wantErr:  domain.ErrInvalidRatio,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := enc.UpdatePluginSettingsAction(tt.plugin, tt.settings)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, action)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, common.HexToAddress(tt.plugin), action.To)
			assert.Equal(t, 0, action.Value.Sign())
			assert.Equal(t, selector("updateVotingSettings((uint8,uint32,uint32,uint64,uint256))"), []byte(action.Data[:4]))
		})
	}
}

func TestEncoder_MintTokenAction(t *testing.T) {
	enc := NewEncoder(slog.Default())

	action, err := enc.MintTokenAction(testToken, models.MintTokenParams{Address: testMember, Amount: big.NewInt(1000)})
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testToken), action.To)
	assert.Equal(t, "0x40c10f19", hexutil.Encode(action.Data[:4]))
	// selector + address word + amount word
	assert.Len(t, action.Data, 4+32+32)

	_, err = enc.MintTokenAction("not-an-address", models.MintTokenParams{Address: testMember, Amount: big.NewInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)

	_, err = enc.MintTokenAction(testToken, models.MintTokenParams{Address: "0xzz", Amount: big.NewInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)

	_, err = enc.MintTokenAction(testToken, models.MintTokenParams{Address: testMember})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestEncoder_MultisigActions(t *testing.T) {
	enc := NewEncoder(slog.Default())
	dec := NewDecoder(slog.Default())

	params := models.MembersParams{PluginAddress: testPlugin, Members: []string{testToken, testMember}}

	add, err := enc.AddAddressesAction(params)
	require.NoError(t, err)
	assert.Equal(t, selector("addAddresses(address[])"), []byte(add.Data[:4]))
	members, err := dec.AddAddressesAction(add.Data)
	require.NoError(t, err)
	assert.Equal(t, []string{common.HexToAddress(testToken).Hex(), common.HexToAddress(testMember).Hex()}, members)

	remove, err := enc.RemoveAddressesAction(params)
	require.NoError(t, err)
	assert.Equal(t, selector("removeAddresses(address[])"), []byte(remove.Data[:4]))
	members, err = dec.RemoveAddressesAction(remove.Data)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	_, err = enc.AddAddressesAction(models.MembersParams{PluginAddress: testPlugin, Members: []string{"bad"}})
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)

	update, err := enc.UpdateMultisigVotingSettings(models.UpdateMultisigSettingsParams{
		PluginAddress:  testPlugin,
		VotingSettings: models.MultisigVotingSettings{OnlyListed: true, MinApprovals: 3},
	})
	require.NoError(t, err)
	settings, err := dec.UpdateMultisigVotingSettings(update.Data)
	require.NoError(t, err)
	assert.Equal(t, &models.MultisigVotingSettings{OnlyListed: true, MinApprovals: 3}, settings)
}

func TestEncoder_PluginInstallItem(t *testing.T) {
	enc := NewEncoder(slog.Default())
	repo := common.HexToAddress("0x00000000000000000000000000000000000000cc")
	network := &config.Network{Name: "sepolia", VetoPluginRepo: repo, MultisigPluginRepo: repo}

	item, err := enc.PluginInstallItem(models.VetoPluginInstall{
		VotingSettings: models.VotingSettings{SupportThreshold: 0.5, MinParticipation: 0.1, MinDuration: 86400},
		TokenAddress:   testToken,
	}, network)
	require.NoError(t, err)
	assert.Equal(t, repo, item.ID)
	// address word + five static tuple words
	assert.Len(t, item.Data, 6*32)
	assert.Equal(t, common.HexToAddress(testToken), common.BytesToAddress(item.Data[:32]))
	assert.Equal(t, big.NewInt(500000), new(big.Int).SetBytes(item.Data[64:96]))

	_, err = enc.PluginInstallItem(models.VetoPluginInstall{}, &config.Network{Name: "unknown-chain"})
	var unsupported domain.UnsupportedNetworkError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "unknown-chain", unsupported.Network)

	_, err = enc.PluginInstallItem(models.VetoPluginInstall{}, nil)
	assert.True(t, errors.As(err, &unsupported))

	multisig, err := enc.MultisigInstallItem(models.MultisigPluginInstall{
		Members:        []string{testToken, testMember},
		VotingSettings: models.MultisigVotingSettings{OnlyListed: true, MinApprovals: 1},
	}, network)
	require.NoError(t, err)
	// offset + two tuple words, then length + two members
	assert.Len(t, multisig.Data, 3*32+32+2*32)
}

func TestAllowFailureMap(t *testing.T) {
	tests := []struct {
		name     string
		failSafe []bool
		want     int64
	}{
		{"empty", nil, 0},
		{"none allowed", []bool{false, false}, 0},
		{"first and third", []bool{true, false, true}, 5},
		{"all four", []bool{true, true, true, true}, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, big.NewInt(tt.want), AllowFailureMap(tt.failSafe))
		})
	}
}
