package subgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/config"
	"github.com/capitaldao/veto-cli/internal/domain/models"
	"github.com/capitaldao/veto-cli/internal/usecase"
)

// Client queries the plugin subgraph over GraphQL
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a subgraph client for the configured network
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) (*Client, error) {
	if cfg.Network == nil || cfg.Network.SubgraphURL == "" {
		return nil, fmt.Errorf("no subgraph url configured")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return NewClientWithEndpoint(cfg.Network.SubgraphURL, &http.Client{Timeout: timeout}, log), nil
}

// NewClientWithEndpoint creates a subgraph client for an explicit endpoint
func NewClientWithEndpoint(endpoint string, httpClient *http.Client, log *slog.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		log:        log.With("component", "Subgraph"),
	}
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type responseError struct {
	Message string `json:"message"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []responseError `json:"errors"`
}

// VetoProposal returns the proposal with the given indexer id, nil when none exists
func (c *Client) VetoProposal(ctx context.Context, id string) (*models.SubgraphProposal, error) {
	var out struct {
		TokenVotingProposal *models.SubgraphProposal `json:"tokenVotingProposal"`
	}
	if err := c.do(ctx, "VetoProposal", queryVetoProposal, map[string]any{"proposalId": strings.ToLower(id)}, &out); err != nil {
		return nil, err
	}
	return out.TokenVotingProposal, nil
}

// VetoProposals returns one page of proposals matching where
func (c *Client) VetoProposals(ctx context.Context, where map[string]any, params domain.ProposalQueryParams) ([]models.SubgraphProposalListItem, error) {
	var out struct {
		TokenVotingProposals []models.SubgraphProposalListItem `json:"tokenVotingProposals"`
	}
	vars := map[string]any{
		"where":     where,
		"limit":     params.Limit,
		"skip":      params.Skip,
		"direction": string(params.Direction),
		"sortBy":    string(params.SortBy),
	}
	if err := c.do(ctx, "VetoProposals", queryVetoProposals, vars, &out); err != nil {
		return nil, err
	}
	return out.TokenVotingProposals, nil
}

// VetoSettings returns the voting settings of a plugin, nil when the plugin is unknown
func (c *Client) VetoSettings(ctx context.Context, pluginAddress string) (*models.SubgraphVotingSettings, error) {
	var out struct {
		TokenVotingPlugin *models.SubgraphVotingSettings `json:"tokenVotingPlugin"`
	}
	if err := c.do(ctx, "VetoSettings", queryVetoSettings, addressVars(pluginAddress), &out); err != nil {
		return nil, err
	}
	return out.TokenVotingPlugin, nil
}

// VetoPluginToken returns the governance token of a plugin, nil when unknown
func (c *Client) VetoPluginToken(ctx context.Context, pluginAddress string) (*models.SubgraphToken, error) {
	var out struct {
		TokenVotingPlugin *models.SubgraphPlugin `json:"tokenVotingPlugin"`
	}
	if err := c.do(ctx, "VetoPlugin", queryVetoPlugin, addressVars(pluginAddress), &out); err != nil {
		return nil, err
	}
	if out.TokenVotingPlugin == nil {
		return nil, nil
	}
	return out.TokenVotingPlugin.Token, nil
}

// VetoMembers returns the member addresses of a plugin
func (c *Client) VetoMembers(ctx context.Context, pluginAddress string) ([]string, error) {
	var out struct {
		TokenVotingPlugin *struct {
			Members []member `json:"members"`
		} `json:"tokenVotingPlugin"`
	}
	if err := c.do(ctx, "VetoMembers", queryVetoMembers, addressVars(pluginAddress), &out); err != nil {
		return nil, err
	}
	if out.TokenVotingPlugin == nil {
		return []string{}, nil
	}
	return lo.Map(out.TokenVotingPlugin.Members, func(m member, _ int) string { return m.Address }), nil
}

// Daos returns one page of DAOs that have the plugin installed
func (c *Client) Daos(ctx context.Context, params domain.DaoQueryParams) ([]models.SubgraphDaoListItem, error) {
	var out struct {
		Daos []models.SubgraphDaoListItem `json:"daos"`
	}
	vars := map[string]any{
		"limit":     params.Limit,
		"skip":      params.Skip,
		"direction": string(params.Direction),
		"sortBy":    string(params.SortBy),
		"address":   strings.ToLower(params.PluginAddress),
	}
	if err := c.do(ctx, "Daos", queryDaos, vars, &out); err != nil {
		return nil, err
	}
	return out.Daos, nil
}

type member struct {
	Address string `json:"address"`
}

func addressVars(address string) map[string]any {
	return map[string]any{"address": strings.ToLower(address)}
}

func (c *Client) do(ctx context.Context, name, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(request{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.log.Debug("querying subgraph", "query", name, "endpoint", c.endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(decoded.Errors) > 0 {
		return errors.New(strings.Join(lo.Map(decoded.Errors, func(e responseError, _ int) string {
			return e.Message
		}), "; "))
	}
	if len(decoded.Data) == 0 || string(decoded.Data) == "null" {
		return errors.New("empty response data")
	}
	if err := json.Unmarshal(decoded.Data, out); err != nil {
		return fmt.Errorf("failed to decode %s data: %w", name, err)
	}
	return nil
}

var _ usecase.Indexer = (*Client)(nil)
