package app

import (
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/config"
	"github.com/capitaldao/veto-cli/internal/usecase"
)

func TestProvidePluginClient(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		pluginType domain.PluginType
		wantVeto   bool
	}{
		{"veto", domain.PluginTypeVeto, true},
		{"token voting", domain.PluginTypeTokenVoting, true},
		{"multisig", domain.PluginTypeVetoMultisigV2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.RuntimeConfig{PluginType: tt.pluginType}
			c, err := ProvidePluginClient(cfg, nil, nil, nil, usecase.NopProgress{}, nil, log)
			require.NoError(t, err)

			a := NewApp(cfg, c, nil, usecase.NopProgress{}, nil, log)
			veto, vetoErr := a.Veto()
			multisig, multisigErr := a.Multisig()
			if tt.wantVeto {
				require.NoError(t, vetoErr)
				assert.NotNil(t, veto)
				assert.ErrorContains(t, multisigErr, "does not support this command")
			} else {
				require.NoError(t, multisigErr)
				assert.NotNil(t, multisig)
				assert.ErrorContains(t, vetoErr, "does not support this command")
			}
		})
	}

	t.Run("invalid plugin type", func(t *testing.T) {
		_, err := ProvidePluginClient(&config.RuntimeConfig{PluginType: "governor"}, nil, nil, nil, nil, nil, log)
		assert.ErrorIs(t, err, domain.ErrInvalidPluginType)
	})
}

func TestInitApp_Offline(t *testing.T) {
	v := viper.New()
	v.Set("project_root", t.TempDir())

	a, err := InitApp(v, usecase.NopProgress{})
	require.NoError(t, err)

	assert.Equal(t, domain.PluginTypeVeto, a.Config.PluginType)
	assert.Nil(t, a.Config.Network)
	assert.NotNil(t, a.Selector)
	assert.NotNil(t, a.Networks)

	veto, err := a.Veto()
	require.NoError(t, err)
	assert.Equal(t, domain.PluginTypeVeto, veto.PluginType())
}
