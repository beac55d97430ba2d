package usecase

import (
	"context"
	"log/slog"
	"maps"

	"golang.org/x/sync/errgroup"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// metadataFetchLimit bounds concurrent IPFS fetches of a list page
const metadataFetchLimit = 8

// ListProposals is the use case for listing proposals
type ListProposals struct {
	indexer  Indexer
	metadata *MetadataResolver
	web3     Web3
	now      Clock
	log      *slog.Logger
}

// NewListProposals creates a new ListProposals use case
func NewListProposals(indexer Indexer, metadata *MetadataResolver, web3 Web3, now Clock, log *slog.Logger) *ListProposals {
	return &ListProposals{
		indexer:  indexer,
		metadata: metadata,
		web3:     web3,
		now:      now,
		log:      log.With("component", "ListProposals"),
	}
}

// Run returns one page of proposals. A DAO given by ENS name is resolved
// through the chain provider first.
func (uc *ListProposals) Run(ctx context.Context, params domain.ProposalQueryParams) ([]*models.ProposalListItem, error) {
	params = params.WithDefaults()
	now := uc.now()

	where := map[string]any{}
	if params.DaoAddressOrEns != "" {
		dao, err := resolveAddressOrEns(ctx, uc.web3, params.DaoAddressOrEns)
		if err != nil {
			return nil, err
		}
		where["dao"] = lowerHex(dao)
	}
	if params.Status != "" {
		filter, err := domain.ProposalStatusFilter(params.Status, now)
		if err != nil {
			return nil, err
		}
		maps.Copy(where, filter)
	}

	recs, err := uc.indexer.VetoProposals(ctx, where, params)
	if err != nil {
		return nil, domain.NewGraphQLError("Veto proposals", err)
	}
	uc.log.Debug("proposals loaded", "count", len(recs), "where", where)

	items := make([]*models.ProposalListItem, len(recs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(metadataFetchLimit)
	for i := range recs {
		g.Go(func() error {
			meta := uc.metadata.Proposal(gctx, recs[i].Metadata)
			items[i] = ToProposalListItem(&recs[i], meta, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
