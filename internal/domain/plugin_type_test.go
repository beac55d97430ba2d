package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePluginType(t *testing.T) {
	tests := []struct {
		input  string
		want   PluginType
		family PluginFamily
	}{
		{"veto.plugin.dao.eth", PluginTypeVeto, PluginFamilyVeto},
		{" Token-Voting.plugin.dao.eth ", PluginTypeTokenVoting, PluginFamilyVeto},
		{"capitaldaomumbai.plugin.dao.eth", PluginTypeCapitalDaoMumbai, PluginFamilyVeto},
		{"veto-multisig-v2.plugin.dao.eth", PluginTypeVetoMultisigV2, PluginFamilyMultisig},
		{"multisig.plugin.dao.eth", PluginTypeMultisig, PluginFamilyMultisig},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePluginType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			family, err := got.Family()
			require.NoError(t, err)
			assert.Equal(t, tt.family, family)
		})
	}

	_, err := ParsePluginType("admin.plugin.dao.eth")
	assert.ErrorIs(t, err, ErrInvalidPluginType)
}

func TestEveryPluginTypeHasAFamily(t *testing.T) {
	for _, pt := range PluginTypes() {
		_, err := pt.Family()
		assert.NoError(t, err, string(pt))
	}
}

func TestPluginFamilyString(t *testing.T) {
	assert.Equal(t, "veto", PluginFamilyVeto.String())
	assert.Equal(t, "multisig", PluginFamilyMultisig.String())
	assert.Equal(t, "PluginFamily(9)", PluginFamily(9).String())
}
