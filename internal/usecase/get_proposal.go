package usecase

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// GetProposal is the use case for reading one proposal in detail
type GetProposal struct {
	indexer  Indexer
	metadata *MetadataResolver
	now      Clock
	log      *slog.Logger
}

// NewGetProposal creates a new GetProposal use case
func NewGetProposal(indexer Indexer, metadata *MetadataResolver, now Clock, log *slog.Logger) *GetProposal {
	return &GetProposal{
		indexer:  indexer,
		metadata: metadata,
		now:      now,
		log:      log.With("component", "GetProposal"),
	}
}

// Run returns the proposal, nil when the indexer has no record of it.
// Malformed ids are rejected before any query.
func (uc *GetProposal) Run(ctx context.Context, proposalID string) (*models.Proposal, error) {
	id, err := domain.ParseProposalID(proposalID)
	if err != nil {
		return nil, err
	}

	rec, err := uc.indexer.VetoProposal(ctx, id.Extended())
	if err != nil {
		return nil, domain.NewGraphQLError("Veto proposal", err)
	}
	if rec == nil {
		uc.log.Debug("proposal not indexed", "id", id.String())
		return nil, nil
	}

	for i, a := range rec.Actions {
		if _, err := hexutil.Decode(a.Data); err != nil && a.Data != "" {
			uc.log.Debug("malformed action data, using empty calldata", "id", id.String(), "action", i, "data", a.Data, "error", err)
		}
	}

	meta := uc.metadata.Proposal(ctx, rec.Metadata)
	if meta.Degraded {
		uc.log.Debug("using placeholder metadata", "id", id.String(), "reason", meta.Reason)
	}
	return ToProposal(rec, meta, uc.now()), nil
}
