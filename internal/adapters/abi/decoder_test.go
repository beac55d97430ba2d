package abi

import (
	"log/slog"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitaldao/veto-cli/internal/domain/models"
)

func TestDecoder_FindInterface(t *testing.T) {
	enc := NewEncoder(slog.Default())
	dec := NewDecoder(slog.Default())

	mint, err := enc.MintTokenAction(testToken, models.MintTokenParams{Address: testMember, Amount: big.NewInt(5)})
	require.NoError(t, err)
	settings, err := enc.UpdatePluginSettingsAction(testPlugin, models.VotingSettings{SupportThreshold: 0.5})
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
		want *models.InterfaceParams
	}{
		{
			name: "mint",
			data: mint.Data,
			want: &models.InterfaceParams{ID: "function mint(address,uint256)", FunctionName: "mint", Hash: "0x40c10f19"},
		},
		{
			name: "update voting settings",
			data: settings.Data,
			want: &models.InterfaceParams{
				ID:           "function updateVotingSettings(tuple(uint8,uint32,uint32,uint64,uint256))",
				FunctionName: "updateVotingSettings",
				Hash:         "0x" + common.Bytes2Hex(selector("updateVotingSettings((uint8,uint32,uint32,uint64,uint256))")),
			},
		},
		{name: "unknown selector", data: []byte{0xde, 0xad, 0xbe, 0xef, 0x00}},
		{name: "too short", data: []byte{0x40, 0xc1}},
		{name: "empty", data: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.want, dec.FindInterface(tt.data))
			})
		})
	}
}

func TestDecoder_RejectsOtherCalls(t *testing.T) {
	enc := NewEncoder(slog.Default())
	dec := NewDecoder(slog.Default())

	mint, err := enc.MintTokenAction(testToken, models.MintTokenParams{Address: testMember, Amount: big.NewInt(5)})
	require.NoError(t, err)

	_, err = dec.UpdatePluginSettingsAction(mint.Data)
	assert.Error(t, err)

	_, err = dec.MintTokenAction([]byte{0x40, 0xc1, 0x0f, 0x19})
	assert.Error(t, err)

	_, err = dec.MintTokenAction(nil)
	assert.Error(t, err)
}

func TestDecoder_DecodeCall(t *testing.T) {
	enc := NewEncoder(slog.Default())
	dec := NewDecoder(slog.Default())

	mint, err := enc.MintTokenAction(testToken, models.MintTokenParams{Address: testMember, Amount: big.NewInt(42)})
	require.NoError(t, err)

	call := dec.DecodeCall(mint.Data)
	assert.Equal(t, "mint", call.Method)
	assert.Equal(t, "0x40c10f19", call.Selector)
	require.Len(t, call.Inputs, 2)
	assert.Equal(t, "to", call.Inputs[0].Name)
	assert.Equal(t, common.HexToAddress(testMember).Hex(), FormatValue(call.Inputs[0].Value))
	assert.Equal(t, "42", FormatValue(call.Inputs[1].Value))

	unknown := dec.DecodeCall([]byte{1, 2, 3, 4})
	assert.Equal(t, "unknown", unknown.Method)
	assert.Empty(t, unknown.Inputs)
}

func TestSettingsRoundTrip(t *testing.T) {
	enc := NewEncoder(slog.Default())
	dec := NewDecoder(slog.Default())

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	modes := []models.VotingMode{models.VotingModeStandard, models.VotingModeEarlyExecution, models.VotingModeVoteReplacement}

	properties.Property("decode(encode(settings)) == settings", prop.ForAll(
		func(support, participation uint32, duration uint64, mode int, power uint64) bool {
			in := models.VotingSettings{
				MinDuration:            duration,
				SupportThreshold:       float64(support) / 1e6,
				MinParticipation:       float64(participation) / 1e6,
				MinProposerVotingPower: new(big.Int).SetUint64(power),
				VotingMode:             modes[mode],
			}
			action, err := enc.UpdatePluginSettingsAction(testPlugin, in)
			if err != nil {
				return false
			}
			out, err := dec.UpdatePluginSettingsAction(action.Data)
			if err != nil {
				return false
			}
			return out.MinDuration == in.MinDuration &&
				out.SupportThreshold == in.SupportThreshold &&
				out.MinParticipation == in.MinParticipation &&
				out.MinProposerVotingPower.Cmp(in.MinProposerVotingPower) == 0 &&
				out.VotingMode == in.VotingMode
		},
		gen.UInt32Range(0, 1_000_000),
		gen.UInt32Range(0, 1_000_000),
		gen.UInt64(),
		gen.IntRange(0, 2),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestMintRoundTrip(t *testing.T) {
	enc := NewEncoder(slog.Default())
	dec := NewDecoder(slog.Default())

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("decode(encode(mint)) == mint", prop.ForAll(
		func(raw []uint8, amount uint64) bool {
			receiver := common.BytesToAddress(raw)
			action, err := enc.MintTokenAction(testToken, models.MintTokenParams{
				Address: receiver.Hex(),
				Amount:  new(big.Int).SetUint64(amount),
			})
			if err != nil {
				return false
			}
			out, err := dec.MintTokenAction(action.Data)
			if err != nil {
				return false
			}
			return common.HexToAddress(out.Address) == receiver && out.Amount.Uint64() == amount
		},
		gen.SliceOfN(20, gen.UInt8()),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
