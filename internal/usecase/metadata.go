package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// MetadataResolver fetches off-chain metadata documents. Failures never
// escape as errors: callers receive a placeholder flagged as degraded.
type MetadataResolver struct {
	ipfs IPFS
	log  *slog.Logger
}

// NewMetadataResolver creates a new MetadataResolver
func NewMetadataResolver(ipfs IPFS, log *slog.Logger) *MetadataResolver {
	return &MetadataResolver{
		ipfs: ipfs,
		log:  log.With("component", "MetadataResolver"),
	}
}

// Proposal resolves proposal metadata. An unparseable link yields the
// unsupported-link placeholder and any other failure the unavailable one.
func (r *MetadataResolver) Proposal(ctx context.Context, uri string) models.MetadataResult[models.ProposalMetadata] {
	var metadata models.ProposalMetadata
	if err := r.fetch(ctx, uri, &metadata); err != nil {
		reason := degradedReason(err)
		return models.DegradedMetadata(reason, models.ProposalPlaceholder(reason))
	}
	if metadata.Resources == nil {
		metadata.Resources = []models.ProposalResource{}
	}
	return models.OkMetadata(metadata)
}

// Dao resolves DAO metadata. An empty link yields the not-defined placeholder.
func (r *MetadataResolver) Dao(ctx context.Context, uri string) models.MetadataResult[models.DaoMetadata] {
	if uri == "" {
		return models.DegradedMetadata(models.MetadataNotDefined, models.DaoPlaceholder(models.MetadataNotDefined))
	}
	var metadata models.DaoMetadata
	if err := r.fetch(ctx, uri, &metadata); err != nil {
		reason := degradedReason(err)
		return models.DegradedMetadata(reason, models.DaoPlaceholder(reason))
	}
	return models.OkMetadata(metadata)
}

func degradedReason(err error) models.DegradedReason {
	if errors.Is(err, domain.ErrInvalidCID) {
		return models.MetadataUnsupportedLink
	}
	return models.MetadataUnavailable
}

func (r *MetadataResolver) fetch(ctx context.Context, uri string, out any) error {
	cid, err := domain.ResolveCID(uri)
	if err != nil {
		r.log.Debug("unsupported metadata link", "uri", uri)
		return err
	}
	if r.ipfs == nil {
		return errors.New("no ipfs client")
	}
	data, err := r.ipfs.Cat(ctx, cid)
	if err != nil {
		r.log.Debug("metadata unavailable", "cid", cid, "err", err)
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		r.log.Debug("metadata is not valid JSON", "cid", cid, "err", err)
		return err
	}
	return nil
}
