package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// SortDirection orders indexer results
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ProposalSortBy is the indexer field proposals are ordered by
type ProposalSortBy string

const (
	ProposalSortByCreatedAt  ProposalSortBy = "createdAt"
	ProposalSortByName       ProposalSortBy = "name"
	ProposalSortByPopularity ProposalSortBy = "popularity"
	ProposalSortByVotes      ProposalSortBy = "votes"
)

// DaoSortBy is the indexer field DAOs are ordered by
type DaoSortBy string

const (
	DaoSortByCreatedAt  DaoSortBy = "createdAt"
	DaoSortBySubdomain  DaoSortBy = "subdomain"
	DaoSortByPopularity DaoSortBy = "activity"
)

// Default page settings for list queries
const (
	DefaultQueryLimit = 10
	DefaultQuerySkip  = 0
)

// ProposalQueryParams defines filtering and paging options for proposal lists
type ProposalQueryParams struct {
	DaoAddressOrEns string
	Limit           int
	Skip            int
	Direction       SortDirection
	SortBy          ProposalSortBy
	Status          models.ProposalStatus
}

// WithDefaults fills unset paging and sorting options
func (p ProposalQueryParams) WithDefaults() ProposalQueryParams {
	if p.Limit <= 0 {
		p.Limit = DefaultQueryLimit
	}
	if p.Skip < 0 {
		p.Skip = DefaultQuerySkip
	}
	if p.Direction == "" {
		p.Direction = SortAsc
	}
	if p.SortBy == "" {
		p.SortBy = ProposalSortByCreatedAt
	}
	return p
}

// DaoQueryParams defines filtering and paging options for DAO lists
type DaoQueryParams struct {
	Limit     int
	Skip      int
	Direction SortDirection
	SortBy    DaoSortBy
	// PluginAddress restricts results to DAOs with this plugin installed
	PluginAddress string
}

// WithDefaults fills unset paging and sorting options
func (p DaoQueryParams) WithDefaults() DaoQueryParams {
	if p.Limit <= 0 {
		p.Limit = DefaultQueryLimit
	}
	if p.Skip < 0 {
		p.Skip = DefaultQuerySkip
	}
	if p.Direction == "" {
		p.Direction = SortAsc
	}
	if p.SortBy == "" {
		p.SortBy = DaoSortByCreatedAt
	}
	return p
}

// ComputeProposalStatus derives the lifecycle status of a proposal at instant now
func ComputeProposalStatus(executed, executable bool, start, end, now time.Time) models.ProposalStatus {
	switch {
	case executed:
		return models.ProposalStatusExecuted
	case !start.Before(now):
		return models.ProposalStatusPending
	case executable:
		return models.ProposalStatusSucceeded
	case !end.Before(now):
		return models.ProposalStatusActive
	default:
		return models.ProposalStatusDefeated
	}
}

// ProposalStatusFilter returns the indexer `where` clause selecting proposals in status at instant now
func ProposalStatusFilter(status models.ProposalStatus, now time.Time) (map[string]any, error) {
	ts := strconv.FormatInt(now.Unix(), 10)
	switch status {
	case models.ProposalStatusPending:
		return map[string]any{"startDate_gte": ts}, nil
	case models.ProposalStatusActive:
		return map[string]any{"startDate_lt": ts, "endDate_gte": ts}, nil
	case models.ProposalStatusExecuted:
		return map[string]any{"executed": true}, nil
	case models.ProposalStatusSucceeded:
		return map[string]any{"executable": true, "endDate_lt": ts}, nil
	case models.ProposalStatusDefeated:
		return map[string]any{"executable": false, "endDate_lt": ts, "executed": false}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidProposalStatus, status)
	}
}
