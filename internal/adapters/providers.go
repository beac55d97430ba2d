package adapters

import (
	"log/slog"
	"time"

	"github.com/google/wire"

	"github.com/capitaldao/veto-cli/internal/adapters/interactive"
	"github.com/capitaldao/veto-cli/internal/adapters/ipfs"
	"github.com/capitaldao/veto-cli/internal/adapters/subgraph"
	"github.com/capitaldao/veto-cli/internal/adapters/web3"
	"github.com/capitaldao/veto-cli/internal/domain/config"
	"github.com/capitaldao/veto-cli/internal/usecase"
)

// ProvideIndexer provides the subgraph client, or a nil Indexer when the
// network has no subgraph endpoint
func ProvideIndexer(cfg *config.RuntimeConfig, log *slog.Logger) (usecase.Indexer, error) {
	if cfg.Network == nil || cfg.Network.SubgraphURL == "" {
		return nil, nil
	}
	client, err := subgraph.NewClient(cfg, log)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// ProvideIPFS provides the IPFS client, or a nil IPFS when the network has no IPFS endpoint
func ProvideIPFS(cfg *config.RuntimeConfig, log *slog.Logger) (usecase.IPFS, error) {
	if cfg.Network == nil || cfg.Network.IpfsURL == "" {
		return nil, nil
	}
	client, err := ipfs.NewClient(cfg, log)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// ProvideWeb3 provides the chain connection
func ProvideWeb3(cfg *config.RuntimeConfig, log *slog.Logger) (usecase.Web3, error) {
	client, err := web3.NewClient(cfg, log)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// ProvideClock provides the wall clock
func ProvideClock() usecase.Clock {
	return time.Now
}

// BoundarySet provides the network boundaries
var BoundarySet = wire.NewSet(
	ProvideIndexer,
	ProvideIPFS,
	ProvideWeb3,
	ProvideClock,
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.Selector), new(*interactive.SelectorAdapter)),
)

// AllAdapters combines all adapter sets
var AllAdapters = wire.NewSet(
	BoundarySet,
	InteractiveSet,
)
