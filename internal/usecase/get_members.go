package usecase

import (
	"context"
	"log/slog"

	"github.com/capitaldao/veto-cli/internal/domain"
)

// GetMembers is the use case for listing the members of a plugin
type GetMembers struct {
	indexer Indexer
	log     *slog.Logger
}

// NewGetMembers creates a new GetMembers use case
func NewGetMembers(indexer Indexer, log *slog.Logger) *GetMembers {
	return &GetMembers{
		indexer: indexer,
		log:     log.With("component", "GetMembers"),
	}
}

// Run returns the member addresses of the plugin
func (uc *GetMembers) Run(ctx context.Context, pluginAddress string) ([]string, error) {
	addr, err := parseAddress(pluginAddress)
	if err != nil {
		return nil, err
	}
	members, err := uc.indexer.VetoMembers(ctx, lowerHex(addr))
	if err != nil {
		return nil, domain.NewGraphQLError("Veto members", err)
	}
	uc.log.Debug("members loaded", "plugin", addr.Hex(), "count", len(members))
	return members, nil
}
