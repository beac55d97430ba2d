package abi

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitaldao/veto-cli/internal/domain/models"
)

func TestCalls_CreateProposalCallDates(t *testing.T) {
	calls := NewCalls(NewEventDecoder(slog.Default()), slog.Default())

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	data, err := calls.CreateProposalCall(models.CreateProposalParams{
		MetadataURI: "ipfs://cid",
		StartDate:   &start,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	early := time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = calls.CreateProposalCall(models.CreateProposalParams{
		MetadataURI: "ipfs://cid",
		EndDate:     &early,
	})
	assert.ErrorContains(t, err, "end date 1960-01-01T00:00:00Z is before 1970")
}
