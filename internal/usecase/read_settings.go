package usecase

import (
	"context"
	"log/slog"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// ReadSettings is the use case for reading the voting settings of a plugin
type ReadSettings struct {
	indexer Indexer
	log     *slog.Logger
}

// NewReadSettings creates a new ReadSettings use case
func NewReadSettings(indexer Indexer, log *slog.Logger) *ReadSettings {
	return &ReadSettings{
		indexer: indexer,
		log:     log.With("component", "ReadSettings"),
	}
}

// Run returns the plugin settings, nil when the indexer does not know the plugin
func (uc *ReadSettings) Run(ctx context.Context, pluginAddress string) (*models.VotingSettings, error) {
	addr, err := parseAddress(pluginAddress)
	if err != nil {
		return nil, err
	}

	rec, err := uc.indexer.VetoSettings(ctx, lowerHex(addr))
	if err != nil {
		return nil, domain.NewGraphQLError("plugin settings", err)
	}
	if rec == nil {
		uc.log.Debug("plugin not indexed", "plugin", addr.Hex())
		return nil, nil
	}

	return &models.VotingSettings{
		MinDuration:            parseUint(rec.MinDuration),
		SupportThreshold:       domain.DecodeRatio(parseBig(rec.SupportThreshold), domain.RatioDigits),
		MinParticipation:       domain.DecodeRatio(parseBig(rec.MinParticipation), domain.RatioDigits),
		MinProposerVotingPower: parseBig(rec.MinProposerVotingPower),
		VotingMode:             rec.VotingMode,
	}, nil
}
