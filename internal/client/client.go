// Package client groups the plugin use cases behind per-family facades.
// Facades are built once by New and expose no setters.
package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/config"
	"github.com/capitaldao/veto-cli/internal/domain/models"
	"github.com/capitaldao/veto-cli/internal/usecase"
)

// Deps are the boundaries a plugin client is built on
type Deps struct {
	Config  *config.RuntimeConfig
	Indexer usecase.Indexer
	IPFS    usecase.IPFS
	Web3    usecase.Web3
	Sink    usecase.ProgressSink
	Clock   usecase.Clock
	Log     *slog.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Config == nil {
		d.Config = &config.RuntimeConfig{}
	}
	if d.Web3 == nil {
		d.Web3 = offline{}
	}
	if d.Indexer == nil {
		d.Indexer = noIndexer{}
	}
	if d.Sink == nil {
		d.Sink = usecase.NopProgress{}
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.Log == nil {
		d.Log = slog.Default()
	}
	return d
}

// PluginClient is implemented by *VetoClient and *MultisigClient only
type PluginClient interface {
	PluginType() domain.PluginType
	Family() domain.PluginFamily
	isPluginClient()
}

// New builds the client serving pluginType
func New(pluginType domain.PluginType, deps Deps) (PluginClient, error) {
	family, err := pluginType.Family()
	if err != nil {
		return nil, err
	}
	deps = deps.withDefaults()

	switch family {
	case domain.PluginFamilyVeto:
		return NewVetoClient(pluginType, deps), nil
	case domain.PluginFamilyMultisig:
		return NewMultisigClient(pluginType, deps), nil
	}
	return nil, fmt.Errorf("%w: no client for family %s", domain.ErrInvalidPluginType, family)
}

// offline has no chain connection
type offline struct{}

func (offline) Provider() (usecase.Provider, error) { return nil, domain.ErrNoProvider }
func (offline) Signer() (usecase.Signer, error)     { return nil, domain.ErrNoSigner }

var errNoSubgraph = errors.New("no subgraph endpoint configured")

// noIndexer fails every query
type noIndexer struct{}

func (noIndexer) VetoProposal(context.Context, string) (*models.SubgraphProposal, error) {
	return nil, errNoSubgraph
}
func (noIndexer) VetoProposals(context.Context, map[string]any, domain.ProposalQueryParams) ([]models.SubgraphProposalListItem, error) {
	return nil, errNoSubgraph
}
func (noIndexer) VetoSettings(context.Context, string) (*models.SubgraphVotingSettings, error) {
	return nil, errNoSubgraph
}
func (noIndexer) VetoPluginToken(context.Context, string) (*models.SubgraphToken, error) {
	return nil, errNoSubgraph
}
func (noIndexer) VetoMembers(context.Context, string) ([]string, error) { return nil, errNoSubgraph }
func (noIndexer) Daos(context.Context, domain.DaoQueryParams) ([]models.SubgraphDaoListItem, error) {
	return nil, errNoSubgraph
}
