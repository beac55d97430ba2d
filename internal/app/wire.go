//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/capitaldao/veto-cli/internal/adapters"
	"github.com/capitaldao/veto-cli/internal/config"
	"github.com/capitaldao/veto-cli/internal/logging"
	"github.com/capitaldao/veto-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		config.ProvideNetworkResolver,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Client
		ProvidePluginClient,

		// App
		NewApp,
	)
	return nil, nil
}
