package usecase

import (
	"context"
	"log/slog"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// GetToken is the use case for reading the governance token of a plugin
type GetToken struct {
	indexer Indexer
	log     *slog.Logger
}

// NewGetToken creates a new GetToken use case
func NewGetToken(indexer Indexer, log *slog.Logger) *GetToken {
	return &GetToken{
		indexer: indexer,
		log:     log.With("component", "GetToken"),
	}
}

// Run returns the token details, nil when the plugin or its token shape is unknown
func (uc *GetToken) Run(ctx context.Context, pluginAddress string) (models.TokenDetails, error) {
	addr, err := parseAddress(pluginAddress)
	if err != nil {
		return nil, err
	}

	rec, err := uc.indexer.VetoPluginToken(ctx, lowerHex(addr))
	if err != nil {
		return nil, domain.NewGraphQLError("token", err)
	}
	token := tokenFromSubgraph(rec)
	if token == nil && rec != nil {
		uc.log.Debug("unknown token type", "typename", rec.Typename)
	}
	return token, nil
}
