package usecase_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitaldao/veto-cli/internal/domain/models"
	"github.com/capitaldao/veto-cli/internal/usecase"
)

func newVoter(address, option, power string, replaced bool) models.SubgraphVoter {
	v := models.SubgraphVoter{VoteOption: option, VotingPower: power, VoteReplaced: replaced}
	v.Voter.Address = address
	return v
}

func sampleProposal() *models.SubgraphProposal {
	return &models.SubgraphProposal{
		SubgraphProposalListItem: models.SubgraphProposalListItem{
			ID:               pluginAddress + "_0x" + "0000000000000000000000000000000000000000000000000000000000000003",
			Dao:              models.SubgraphDao{ID: daoAddress, Subdomain: "capital"},
			Creator:          voterAddress,
			Metadata:         "ipfs://" + metadataCID,
			Yes:              "10",
			No:               "3",
			Abstain:          "2",
			StartDate:        "1700000000",
			EndDate:          "1700003600",
			TotalVotingPower: "100",
			Plugin: models.SubgraphPlugin{Token: &models.SubgraphToken{
				ID: "0x0000000000000000000000000000000000000010", Name: "Capital", Symbol: "CAP",
				Typename: models.SubgraphTypeERC20Contract, Decimals: 18,
			}},
		},
		CreatedAt:           "1699990000",
		CreationBlockNumber: "42",
		Actions: []models.SubgraphAction{
			{To: daoAddress, Value: "0", Data: "0x40c10f19"},
		},
		SupportThreshold: "500000",
		MinVotingPower:   "25",
		VotingMode:       models.VotingModeStandard,
		Voters: []models.SubgraphVoter{
			newVoter("0x01", "Yes", "5", false),
			newVoter("0x02", "No", "3", false),
			newVoter("0x03", "Abstain", "2", false),
		},
	}
}

func TestToProposal(t *testing.T) {
	now := time.Unix(1700001000, 0)
	meta := models.OkMetadata(models.ProposalMetadata{Title: "Raise threshold", Resources: []models.ProposalResource{}})

	p := usecase.ToProposal(sampleProposal(), meta, now)

	t.Run("sums voter power into used voting weight", func(t *testing.T) {
		assert.Equal(t, big.NewInt(10), p.UsedVotingWeight)
	})

	t.Run("converts seconds into instants", func(t *testing.T) {
		assert.Equal(t, 3600*time.Second, p.EndDate.Sub(p.StartDate))
		assert.Equal(t, int64(1700000000), p.StartDate.Unix())
		assert.Equal(t, int64(3600), p.Settings.Duration)
	})

	t.Run("maps ids and references", func(t *testing.T) {
		assert.Equal(t, pluginAddress+"_0x3", p.ID)
		assert.Equal(t, models.DaoRef{Address: daoAddress, Name: "capital"}, p.Dao)
		assert.Equal(t, uint64(42), p.CreationBlockNumber)
		assert.Nil(t, p.ExecutionDate)
	})

	t.Run("derives settings ratios", func(t *testing.T) {
		assert.InDelta(t, 0.5, p.Settings.SupportThreshold, 1e-9)
		assert.InDelta(t, 0.25, p.Settings.MinParticipation, 1e-9)
	})

	t.Run("maps votes", func(t *testing.T) {
		require.Len(t, p.Votes, 3)
		assert.Equal(t, models.VoteYes, p.Votes[0].Vote)
		assert.Equal(t, models.VoteNo, p.Votes[1].Vote)
		assert.Equal(t, models.VoteAbstain, p.Votes[2].Vote)
	})

	t.Run("decodes actions", func(t *testing.T) {
		require.Len(t, p.Actions, 1)
		assert.Equal(t, []byte{0x40, 0xc1, 0x0f, 0x19}, []byte(p.Actions[0].Data))
		assert.Equal(t, int64(0), p.Actions[0].Value.Int64())
	})

	t.Run("keeps token shape", func(t *testing.T) {
		token, ok := p.Token.(*models.Erc20Token)
		require.True(t, ok)
		assert.Equal(t, uint8(18), token.Decimals)
		assert.Equal(t, models.ProposalStatusActive, p.Status)
	})
}

func TestToProposal_IsDeterministic(t *testing.T) {
	now := time.Unix(1800000000, 0)
	meta := models.DegradedMetadata(models.MetadataUnavailable, models.UnavailableProposalMetadata)
	a := usecase.ToProposal(sampleProposal(), meta, now)
	b := usecase.ToProposal(sampleProposal(), meta, now)
	assert.Equal(t, a, b)
	assert.True(t, a.MetadataDegraded)
	assert.Equal(t, models.ProposalStatusDefeated, a.Status)
}

func TestToProposal_ZeroTotalVotingPower(t *testing.T) {
	rec := sampleProposal()
	rec.TotalVotingPower = "0"
	p := usecase.ToProposal(rec, models.OkMetadata(models.ProposalMetadata{}), time.Unix(0, 0))
	assert.Equal(t, 0.0, p.Settings.MinParticipation)
}

func TestToProposalListItem(t *testing.T) {
	tests := []struct {
		name       string
		executed   bool
		executable bool
		now        int64
		want       models.ProposalStatus
	}{
		{name: "pending", now: 1699999999, want: models.ProposalStatusPending},
		{name: "active", now: 1700000001, want: models.ProposalStatusActive},
		{name: "succeeded", executable: true, now: 1700000001, want: models.ProposalStatusSucceeded},
		{name: "defeated", now: 1700003601, want: models.ProposalStatusDefeated},
		{name: "executed", executed: true, now: 1700000001, want: models.ProposalStatusExecuted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := sampleProposal().SubgraphProposalListItem
			rec.Executed = tt.executed
			rec.Executable = tt.executable

			item := usecase.ToProposalListItem(&rec, models.OkMetadata(models.ProposalMetadata{Title: "T", Summary: "S"}), time.Unix(tt.now, 0))

			assert.Equal(t, tt.want, item.Status)
			assert.Equal(t, models.ProposalListItemMetadata{Title: "T", Summary: "S"}, item.Metadata)
			assert.Equal(t, big.NewInt(10), item.Result.Yes)
		})
	}
}

func TestToProposal_UnknownTokenType(t *testing.T) {
	rec := sampleProposal()
	rec.Plugin.Token.Typename = "ERC1155Contract"
	p := usecase.ToProposal(rec, models.OkMetadata(models.ProposalMetadata{}), time.Unix(0, 0))
	assert.Nil(t, p.Token)
}

func TestToDaoListItem(t *testing.T) {
	rec := &models.SubgraphDaoListItem{ID: daoAddress, Subdomain: "capital"}
	plugin := models.SubgraphPluginListItem{ID: pluginAddress}
	var inst models.SubgraphPluginInstallation
	inst.AppliedVersion.Build = 2
	inst.AppliedVersion.Release.Release = 1
	inst.AppliedVersion.PluginRepo.Subdomain = "veto"
	plugin.Installations = []models.SubgraphPluginInstallation{inst}
	rec.Plugins = []models.SubgraphPluginListItem{plugin}

	item := usecase.ToDaoListItem(rec, models.DegradedMetadata(models.MetadataNotDefined, models.EmptyDaoMetadata))

	assert.Equal(t, "capital.dao.eth", item.EnsDomain)
	assert.True(t, item.MetadataDegraded)
	require.Len(t, item.Plugins, 1)
	assert.Equal(t, models.InstalledPlugin{InstanceAddress: pluginAddress, ID: "veto.plugin.dao.eth", Release: 1, Build: 2}, item.Plugins[0])
}
