package domain

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPlugin = "0x1234567890abcdef1234567890abcdef12345678"

func TestParseProposalID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ProposalID
		wantErr bool
	}{
		{
			name:  "compact",
			input: testPlugin + "_0x1",
			want:  ProposalID{PluginAddress: common.HexToAddress(testPlugin), Index: 1},
		},
		{
			name:  "extended",
			input: testPlugin + "_0x000000000000000000000000000000000000000000000000000000000000002a",
			want:  ProposalID{PluginAddress: common.HexToAddress(testPlugin), Index: 42},
		},
		{
			name:  "checksummed address and upper hex",
			input: common.HexToAddress(testPlugin).Hex() + "_0xFF",
			want:  ProposalID{PluginAddress: common.HexToAddress(testPlugin), Index: 255},
		},
		{
			name:  "zero index",
			input: testPlugin + "_0x0",
			want:  ProposalID{PluginAddress: common.HexToAddress(testPlugin)},
		},
		{name: "garbage", input: "not-a-valid-id", wantErr: true},
		{name: "missing index", input: testPlugin + "_", wantErr: true},
		{name: "decimal index", input: testPlugin + "_12", wantErr: true},
		{name: "short address", input: "0x1234_0x1", wantErr: true},
		{name: "index overflows", input: testPlugin + "_0x10000000000000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProposalID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidProposalID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProposalIDForms(t *testing.T) {
	id := ProposalID{PluginAddress: common.HexToAddress(testPlugin), Index: 10}

	assert.Equal(t, testPlugin+"_0xa", id.String())
	assert.Equal(t, testPlugin+"_0x000000000000000000000000000000000000000000000000000000000000000a", id.Extended())
	assert.Equal(t, id.String(), CompactProposalID(id.Extended()))
	assert.Equal(t, "unparseable", CompactProposalID("unparseable"))
}

func TestParseProposalID_NormalizesNonCanonicalForms(t *testing.T) {
	canonical := "0xabcdef0000000000000000000000000000000001_0x1"
	for _, in := range []string{
		"0xAbCdEf0000000000000000000000000000000001_0x1",
		"0xabcdef0000000000000000000000000000000001_0x01",
		"0xABCDEF0000000000000000000000000000000001_0x0000000000000000000000000000000000000000000000000000000000000001",
	} {
		p, err := ParseProposalID(in)
		require.NoError(t, err, in)
		assert.Equal(t, canonical, p.String(), in)
	}
}

func TestProposalIDRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("decode(encode(plugin, index)) == (plugin, index)", prop.ForAll(
		func(raw []byte, index uint64) bool {
			plugin := common.BytesToAddress(raw)
			gotPlugin, gotIndex, err := DecodeProposalID(EncodeProposalID(plugin, index))
			return err == nil && gotPlugin == plugin && gotIndex == index
		},
		gen.SliceOfN(20, gen.UInt8()),
		gen.UInt64(),
	))

	properties.Property("canonical strings survive parse and print", prop.ForAll(
		func(raw []byte, index uint64) bool {
			s := EncodeProposalID(common.BytesToAddress(raw), index)
			p, err := ParseProposalID(s)
			return err == nil && p.String() == s && IsProposalID(s)
		},
		gen.SliceOfN(20, gen.UInt8()),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
