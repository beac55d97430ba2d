package usecase

import (
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/samber/lo"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

const ensDaoSuffix = ".dao.eth"

// ToProposal maps an indexer record and its resolved metadata onto a detailed
// proposal as observed at instant now
func ToProposal(rec *models.SubgraphProposal, meta models.MetadataResult[models.ProposalMetadata], now time.Time) *models.Proposal {
	start := parseUnix(rec.StartDate)
	end := parseUnix(rec.EndDate)
	total := parseBig(rec.TotalVotingPower)

	used := new(big.Int)
	votes := make([]models.ProposalVote, 0, len(rec.Voters))
	for _, v := range rec.Voters {
		weight := parseBig(v.VotingPower)
		used.Add(used, weight)
		votes = append(votes, models.ProposalVote{
			Address:      v.Voter.Address,
			Vote:         models.SubgraphVoteValues[v.VoteOption],
			Weight:       weight,
			VoteReplaced: v.VoteReplaced,
		})
	}

	p := &models.Proposal{
		ID:               domain.CompactProposalID(rec.ID),
		Dao:              models.DaoRef{Address: rec.Dao.ID, Name: rec.Dao.Subdomain},
		CreatorAddress:   rec.Creator,
		Metadata:         meta.Metadata,
		MetadataDegraded: meta.Degraded,
		StartDate:        start,
		EndDate:          end,
		CreationDate:     parseUnix(rec.CreatedAt),
		Actions:          lo.Map(rec.Actions, func(a models.SubgraphAction, _ int) models.DaoAction { return toDaoAction(a) }),
		Status:           domain.ComputeProposalStatus(rec.Executed, rec.Executable, start, end, now),
		Result:           toResult(rec.SubgraphProposalListItem),
		Settings: models.ProposalSettings{
			SupportThreshold: domain.DecodeRatio(parseBig(rec.SupportThreshold), domain.RatioDigits),
			MinParticipation: participationRatio(parseBig(rec.MinVotingPower), total),
			Duration:         int64(end.Sub(start) / time.Second),
		},
		Token:               tokenFromSubgraph(rec.Plugin.Token),
		UsedVotingWeight:    used,
		Votes:               votes,
		TotalVotingWeight:   total,
		CreationBlockNumber: parseUint(rec.CreationBlockNumber),
		ExecutionTxHash:     rec.ExecutionTxHash,
	}
	if rec.ExecutionDate != nil {
		t := parseUnix(*rec.ExecutionDate)
		p.ExecutionDate = &t
	}
	if rec.ExecutionBlockNumber != nil {
		n := parseUint(*rec.ExecutionBlockNumber)
		p.ExecutionBlockNumber = &n
	}
	return p
}

// ToProposalListItem maps an indexer list record onto a proposal summary as observed at instant now
func ToProposalListItem(rec *models.SubgraphProposalListItem, meta models.MetadataResult[models.ProposalMetadata], now time.Time) *models.ProposalListItem {
	start := parseUnix(rec.StartDate)
	end := parseUnix(rec.EndDate)
	return &models.ProposalListItem{
		ID:             domain.CompactProposalID(rec.ID),
		Dao:            models.DaoRef{Address: rec.Dao.ID, Name: rec.Dao.Subdomain},
		CreatorAddress: rec.Creator,
		Metadata: models.ProposalListItemMetadata{
			Title:   meta.Metadata.Title,
			Summary: meta.Metadata.Summary,
		},
		MetadataDegraded:  meta.Degraded,
		StartDate:         start,
		EndDate:           end,
		Status:            domain.ComputeProposalStatus(rec.Executed, rec.Executable, start, end, now),
		Result:            toResult(*rec),
		Token:             tokenFromSubgraph(rec.Plugin.Token),
		TotalVotingWeight: parseBig(rec.TotalVotingPower),
	}
}

// ToDaoListItem maps an indexer DAO record and its resolved metadata onto a DAO summary
func ToDaoListItem(rec *models.SubgraphDaoListItem, meta models.MetadataResult[models.DaoMetadata]) *models.DaoListItem {
	plugins := lo.FlatMap(rec.Plugins, func(p models.SubgraphPluginListItem, _ int) []models.InstalledPlugin {
		return lo.Map(p.Installations, func(i models.SubgraphPluginInstallation, _ int) models.InstalledPlugin {
			return models.InstalledPlugin{
				InstanceAddress: p.ID,
				ID:              i.AppliedVersion.PluginRepo.Subdomain + ".plugin.dao.eth",
				Release:         i.AppliedVersion.Release.Release,
				Build:           i.AppliedVersion.Build,
			}
		})
	})
	return &models.DaoListItem{
		Address:          rec.ID,
		EnsDomain:        rec.Subdomain + ensDaoSuffix,
		Metadata:         meta.Metadata,
		MetadataDegraded: meta.Degraded,
		Plugins:          plugins,
	}
}

// tokenFromSubgraph discriminates the token shape by its indexer type name.
// Unknown shapes map to nil.
func tokenFromSubgraph(t *models.SubgraphToken) models.TokenDetails {
	if t == nil {
		return nil
	}
	switch t.Typename {
	case models.SubgraphTypeERC20Contract:
		return models.NewErc20Token(t.ID, t.Name, t.Symbol, t.Decimals)
	case models.SubgraphTypeERC721Contract:
		return models.NewErc721Token(t.ID, t.Name, t.Symbol)
	default:
		return nil
	}
}

// participationRatio is minVotingPower / totalVotingPower with six digits of precision
func participationRatio(minVotingPower, total *big.Int) float64 {
	if total.Sign() == 0 {
		return 0
	}
	scaled := new(big.Int).Mul(minVotingPower, big.NewInt(1_000_000))
	return domain.DecodeRatio(scaled.Quo(scaled, total), domain.RatioDigits)
}

func toResult(rec models.SubgraphProposalListItem) models.ProposalResult {
	return models.ProposalResult{
		Yes:     parseBig(rec.Yes),
		No:      parseBig(rec.No),
		Abstain: parseBig(rec.Abstain),
	}
}

func toDaoAction(a models.SubgraphAction) models.DaoAction {
	data, err := hexutil.Decode(a.Data)
	if err != nil {
		data = []byte{}
	}
	return models.DaoAction{
		To:    common.HexToAddress(a.To),
		Value: parseBig(a.Value),
		Data:  data,
	}
}

// parseBig reads an indexer decimal string, zero when empty or malformed
func parseBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return new(big.Int)
	}
	return n
}

func parseUint(s string) uint64 {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// parseUnix reads an indexer timestamp in seconds
func parseUnix(s string) time.Time {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return time.Unix(n, 0).UTC()
}
