package app

import (
	"fmt"
	"log/slog"

	"github.com/capitaldao/veto-cli/internal/client"
	internalconfig "github.com/capitaldao/veto-cli/internal/config"
	"github.com/capitaldao/veto-cli/internal/domain/config"
	"github.com/capitaldao/veto-cli/internal/usecase"
)

// App is the main application container that holds the plugin client
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Client   client.PluginClient
	Selector usecase.Selector
	Sink     usecase.ProgressSink
	Networks *internalconfig.NetworkResolver
	Log      *slog.Logger
}

// NewApp creates a new application instance
func NewApp(
	cfg *config.RuntimeConfig,
	pluginClient client.PluginClient,
	selector usecase.Selector,
	sink usecase.ProgressSink,
	networks *internalconfig.NetworkResolver,
	log *slog.Logger,
) *App {
	return &App{
		Config:   cfg,
		Client:   pluginClient,
		Selector: selector,
		Sink:     sink,
		Networks: networks,
		Log:      log,
	}
}

// Veto returns the client when the configured plugin type is in the veto family
func (a *App) Veto() (*client.VetoClient, error) {
	c, ok := a.Client.(*client.VetoClient)
	if !ok {
		return nil, fmt.Errorf("plugin type %s does not support this command", a.Client.PluginType())
	}
	return c, nil
}

// Multisig returns the client when the configured plugin type is in the multisig family
func (a *App) Multisig() (*client.MultisigClient, error) {
	c, ok := a.Client.(*client.MultisigClient)
	if !ok {
		return nil, fmt.Errorf("plugin type %s does not support this command", a.Client.PluginType())
	}
	return c, nil
}

// ProvidePluginClient builds the client for the configured plugin type
func ProvidePluginClient(
	cfg *config.RuntimeConfig,
	indexer usecase.Indexer,
	ipfs usecase.IPFS,
	web3 usecase.Web3,
	sink usecase.ProgressSink,
	clock usecase.Clock,
	log *slog.Logger,
) (client.PluginClient, error) {
	return client.New(cfg.PluginType, client.Deps{
		Config:  cfg,
		Indexer: indexer,
		IPFS:    ipfs,
		Web3:    web3,
		Sink:    sink,
		Clock:   clock,
		Log:     log,
	})
}
