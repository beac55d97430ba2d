package client

import (
	"context"
	"iter"

	"github.com/capitaldao/veto-cli/internal/adapters/abi"
	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/config"
	"github.com/capitaldao/veto-cli/internal/domain/models"
	"github.com/capitaldao/veto-cli/internal/usecase"
)

// VetoClient serves the veto and token voting plugins
type VetoClient struct {
	pluginType domain.PluginType
	methods    *VetoMethods
	encoding   *VetoEncoding
	decoding   *VetoDecoding
	estimation *usecase.Estimator
}

// NewVetoClient wires every veto use case over deps
func NewVetoClient(pluginType domain.PluginType, deps Deps) *VetoClient {
	deps = deps.withDefaults()
	log := deps.Log
	calls := abi.NewCalls(abi.NewEventDecoder(log), log)
	metadata := usecase.NewMetadataResolver(deps.IPFS, log)

	factor := deps.Config.GasEstimationFactor
	if factor <= 0 {
		factor = config.DefaultGasEstimationFactor
	}

	return &VetoClient{
		pluginType: pluginType,
		methods: &VetoMethods{
			pluginAddress:   deps.Config.PluginAddress,
			createProposal:  usecase.NewCreateProposal(deps.Web3, calls, log),
			voteProposal:    usecase.NewVoteProposal(deps.Web3, calls, log),
			executeProposal: usecase.NewExecuteProposal(deps.Web3, calls, log),
			deposit:         usecase.NewDeposit(deps.Web3, calls, deps.Sink, log),
			pinMetadata:     usecase.NewPinMetadata(deps.IPFS, log),
			canVote:         usecase.NewCanVote(deps.Web3, calls, log),
			canExecute:      usecase.NewCanExecute(deps.Web3, calls, log),
			getProposal:     usecase.NewGetProposal(deps.Indexer, metadata, deps.Clock, log),
			listProposals:   usecase.NewListProposals(deps.Indexer, metadata, deps.Web3, deps.Clock, log),
			readSettings:    usecase.NewReadSettings(deps.Indexer, log),
			getToken:        usecase.NewGetToken(deps.Indexer, log),
			getMembers:      usecase.NewGetMembers(deps.Indexer, log),
			listDaos:        usecase.NewListDaos(deps.Indexer, metadata, log),
		},
		encoding: &VetoEncoding{
			encoder: abi.NewEncoder(log),
			network: deps.Config.Network,
		},
		decoding:   &VetoDecoding{decoder: abi.NewDecoder(log)},
		estimation: usecase.NewEstimator(deps.Web3, calls, factor, log),
	}
}

func (c *VetoClient) PluginType() domain.PluginType { return c.pluginType }
func (c *VetoClient) Family() domain.PluginFamily   { return domain.PluginFamilyVeto }
func (*VetoClient) isPluginClient()                 {}

func (c *VetoClient) Methods() *VetoMethods          { return c.methods }
func (c *VetoClient) Encoding() *VetoEncoding        { return c.encoding }
func (c *VetoClient) Decoding() *VetoDecoding        { return c.decoding }
func (c *VetoClient) Estimation() *usecase.Estimator { return c.estimation }

// VetoMethods are the chain, indexer and IPFS operations of a veto plugin
type VetoMethods struct {
	pluginAddress string

	createProposal  *usecase.CreateProposal
	voteProposal    *usecase.VoteProposal
	executeProposal *usecase.ExecuteProposal
	deposit         *usecase.Deposit
	pinMetadata     *usecase.PinMetadata
	canVote         *usecase.CanVote
	canExecute      *usecase.CanExecute
	getProposal     *usecase.GetProposal
	listProposals   *usecase.ListProposals
	readSettings    *usecase.ReadSettings
	getToken        *usecase.GetToken
	getMembers      *usecase.GetMembers
	listDaos        *usecase.ListDaos
}

func (m *VetoMethods) CreateProposal(ctx context.Context, params models.CreateProposalParams) (iter.Seq2[models.ProposalCreationStepValue, error], error) {
	if params.PluginAddress == "" {
		params.PluginAddress = m.pluginAddress
	}
	return m.createProposal.Run(ctx, params)
}

func (m *VetoMethods) VoteProposal(ctx context.Context, params models.VoteProposalParams) (iter.Seq2[models.VoteProposalStepValue, error], error) {
	return m.voteProposal.Run(ctx, params)
}

func (m *VetoMethods) ExecuteProposal(ctx context.Context, proposalID string) (iter.Seq2[models.ExecuteProposalStepValue, error], error) {
	return m.executeProposal.Run(ctx, proposalID)
}

func (m *VetoMethods) Deposit(ctx context.Context, params models.DepositParams) error {
	if params.PluginAddress == "" {
		params.PluginAddress = m.pluginAddress
	}
	return m.deposit.Run(ctx, params)
}

// PinMetadata stores metadata on IPFS and returns its ipfs:// URI
func (m *VetoMethods) PinMetadata(ctx context.Context, metadata any) (string, error) {
	return m.pinMetadata.Run(ctx, metadata)
}

func (m *VetoMethods) CanVote(ctx context.Context, params models.CanVoteParams) (bool, error) {
	return m.canVote.Run(ctx, params)
}

func (m *VetoMethods) CanExecute(ctx context.Context, proposalID string) (bool, error) {
	return m.canExecute.Run(ctx, proposalID)
}

func (m *VetoMethods) GetProposal(ctx context.Context, proposalID string) (*models.Proposal, error) {
	return m.getProposal.Run(ctx, proposalID)
}

func (m *VetoMethods) GetProposals(ctx context.Context, params domain.ProposalQueryParams) ([]*models.ProposalListItem, error) {
	return m.listProposals.Run(ctx, params)
}

// GetVotingSettings reads the settings of pluginAddress, the client's plugin when empty
func (m *VetoMethods) GetVotingSettings(ctx context.Context, pluginAddress string) (*models.VotingSettings, error) {
	return m.readSettings.Run(ctx, m.orDefault(pluginAddress))
}

func (m *VetoMethods) GetToken(ctx context.Context, pluginAddress string) (models.TokenDetails, error) {
	return m.getToken.Run(ctx, m.orDefault(pluginAddress))
}

func (m *VetoMethods) GetMembers(ctx context.Context, pluginAddress string) ([]string, error) {
	return m.getMembers.Run(ctx, m.orDefault(pluginAddress))
}

// GetDaos lists the DAOs the plugin is installed on
func (m *VetoMethods) GetDaos(ctx context.Context, params domain.DaoQueryParams) ([]*models.DaoListItem, error) {
	params.PluginAddress = m.orDefault(params.PluginAddress)
	return m.listDaos.Run(ctx, params)
}

func (m *VetoMethods) orDefault(pluginAddress string) string {
	if pluginAddress == "" {
		return m.pluginAddress
	}
	return pluginAddress
}

// VetoEncoding builds DAO actions and install data for the veto plugin
type VetoEncoding struct {
	encoder *abi.Encoder
	network *config.Network
}

func (e *VetoEncoding) UpdatePluginSettingsAction(pluginAddress string, settings models.VotingSettings) (*models.DaoAction, error) {
	return e.encoder.UpdatePluginSettingsAction(pluginAddress, settings)
}

func (e *VetoEncoding) MintTokenAction(minterAddress string, params models.MintTokenParams) (*models.DaoAction, error) {
	return e.encoder.MintTokenAction(minterAddress, params)
}

// PluginInstallItem encodes the setup data of a new veto plugin on the client's network
func (e *VetoEncoding) PluginInstallItem(params models.VetoPluginInstall) (*models.PluginInstallItem, error) {
	return e.encoder.PluginInstallItem(params, e.network)
}

// VetoDecoding reads back DAO actions of the veto plugin
type VetoDecoding struct {
	decoder *abi.Decoder
}

func (d *VetoDecoding) UpdatePluginSettingsAction(data []byte) (*models.VotingSettings, error) {
	return d.decoder.UpdatePluginSettingsAction(data)
}

func (d *VetoDecoding) MintTokenAction(data []byte) (*models.MintTokenParams, error) {
	return d.decoder.MintTokenAction(data)
}

// FindInterface describes the known function data calls, nil when unknown
func (d *VetoDecoding) FindInterface(data []byte) *models.InterfaceParams {
	return d.decoder.FindInterface(data)
}

// DecodeCall decodes calldata of any known function for display
func (d *VetoDecoding) DecodeCall(data []byte) *abi.DecodedCall {
	return d.decoder.DecodeCall(data)
}
