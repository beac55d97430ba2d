package models

// Records returned by the plugin subgraph. Numeric fields arrive as decimal strings.

// SubgraphDao is the DAO reference embedded in proposal records
type SubgraphDao struct {
	ID        string `json:"id"`
	Subdomain string `json:"subdomain"`
}

// SubgraphToken is the governance token of a plugin, discriminated by Typename
type SubgraphToken struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Typename string `json:"__typename"`
	Decimals uint8  `json:"decimals"`
}

// Indexer type names of the token contracts
const (
	SubgraphTypeERC20Contract  = "ERC20Contract"
	SubgraphTypeERC721Contract = "ERC721Contract"
)

// SubgraphPlugin is the plugin reference embedded in proposal records
type SubgraphPlugin struct {
	Token *SubgraphToken `json:"token"`
}

// SubgraphAction is an action as stored by the indexer
type SubgraphAction struct {
	To    string `json:"to"`
	Value string `json:"value"`
	Data  string `json:"data"`
}

// SubgraphVoter is a single ballot as stored by the indexer
type SubgraphVoter struct {
	Voter struct {
		Address string `json:"address"`
	} `json:"voter"`
	VoteReplaced bool   `json:"voteReplaced"`
	VoteOption   string `json:"voteOption"`
	VotingPower  string `json:"votingPower"`
}

// SubgraphProposalListItem is the proposal record returned by list queries
type SubgraphProposalListItem struct {
	ID               string         `json:"id"`
	Dao              SubgraphDao    `json:"dao"`
	Creator          string         `json:"creator"`
	Metadata         string         `json:"metadata"`
	Yes              string         `json:"yes"`
	No               string         `json:"no"`
	Abstain          string         `json:"abstain"`
	StartDate        string         `json:"startDate"`
	EndDate          string         `json:"endDate"`
	Executed         bool           `json:"executed"`
	Executable       bool           `json:"executable"`
	TotalVotingPower string         `json:"totalVotingPower"`
	Plugin           SubgraphPlugin `json:"plugin"`
}

// SubgraphProposal is the detailed proposal record
type SubgraphProposal struct {
	SubgraphProposalListItem

	CreatedAt            string           `json:"createdAt"`
	CreationBlockNumber  string           `json:"creationBlockNumber"`
	ExecutionDate        *string          `json:"executionDate"`
	ExecutionBlockNumber *string          `json:"executionBlockNumber"`
	ExecutionTxHash      *string          `json:"executionTxHash"`
	Actions              []SubgraphAction `json:"actions"`
	SupportThreshold     string           `json:"supportThreshold"`
	MinVotingPower       string           `json:"minVotingPower"`
	VotingMode           VotingMode       `json:"votingMode"`
	Voters               []SubgraphVoter  `json:"voters"`
}

// SubgraphVotingSettings is the settings record of a plugin
type SubgraphVotingSettings struct {
	MinDuration            string     `json:"minDuration"`
	MinProposerVotingPower string     `json:"minProposerVotingPower"`
	MinParticipation       string     `json:"minParticipation"`
	SupportThreshold       string     `json:"supportThreshold"`
	VotingMode             VotingMode `json:"votingMode"`
}

// SubgraphPluginInstallation is one installation of a plugin repo on a DAO
type SubgraphPluginInstallation struct {
	AppliedVersion struct {
		Build      int `json:"build"`
		PluginRepo struct {
			Subdomain string `json:"subdomain"`
		} `json:"pluginRepo"`
		Release struct {
			Release int `json:"release"`
		} `json:"release"`
	} `json:"appliedVersion"`
}

// SubgraphPluginListItem is a plugin attached to a DAO record
type SubgraphPluginListItem struct {
	ID            string                       `json:"id"`
	Installations []SubgraphPluginInstallation `json:"installations"`
}

// SubgraphDaoListItem is the DAO record returned by DAO queries
type SubgraphDaoListItem struct {
	ID        string                   `json:"id"`
	Subdomain string                   `json:"subdomain"`
	Metadata  string                   `json:"metadata"`
	Plugins   []SubgraphPluginListItem `json:"plugins"`
}
