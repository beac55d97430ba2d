package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// ListDaos is the use case for listing the DAOs a plugin is installed on
type ListDaos struct {
	indexer  Indexer
	metadata *MetadataResolver
	log      *slog.Logger
}

// NewListDaos creates a new ListDaos use case
func NewListDaos(indexer Indexer, metadata *MetadataResolver, log *slog.Logger) *ListDaos {
	return &ListDaos{
		indexer:  indexer,
		metadata: metadata,
		log:      log.With("component", "ListDaos"),
	}
}

// Run returns one page of the DAOs that have params.PluginAddress installed
func (uc *ListDaos) Run(ctx context.Context, params domain.DaoQueryParams) ([]*models.DaoListItem, error) {
	params = params.WithDefaults()
	addr, err := parseAddress(params.PluginAddress)
	if err != nil {
		return nil, err
	}
	params.PluginAddress = lowerHex(addr)

	recs, err := uc.indexer.Daos(ctx, params)
	if err != nil {
		return nil, domain.NewGraphQLError("DAOs", err)
	}

	items := make([]*models.DaoListItem, len(recs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(metadataFetchLimit)
	for i := range recs {
		g.Go(func() error {
			items[i] = ToDaoListItem(&recs[i], uc.metadata.Dao(gctx, recs[i].Metadata))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	uc.log.Debug("daos loaded", "count", len(items))
	return items, nil
}
