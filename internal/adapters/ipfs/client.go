package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/capitaldao/veto-cli/internal/domain/config"
	"github.com/capitaldao/veto-cli/internal/usecase"
)

// maxContentSize caps the content Cat reads; metadata documents are a few KiB
const maxContentSize = 4 << 20

// Client talks to an IPFS node through the Kubo RPC API
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	maxContent int64
	log        *slog.Logger
}

// NewClient creates an IPFS client for the configured network
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) (*Client, error) {
	if cfg.Network == nil || cfg.Network.IpfsURL == "" {
		return nil, fmt.Errorf("no ipfs url configured")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return NewClientWithEndpoint(cfg.Network.IpfsURL, cfg.Network.IpfsAPIKey, &http.Client{Timeout: timeout}, log), nil
}

// NewClientWithEndpoint creates an IPFS client for an explicit API endpoint
func NewClientWithEndpoint(endpoint, apiKey string, httpClient *http.Client, log *slog.Logger) *Client {
	return &Client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		maxContent: maxContentSize,
		log:        log.With("component", "IPFS"),
	}
}

// Add stores data and returns its content identifier
func (c *Client) Add(ctx context.Context, data []byte) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "metadata.json")
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to write form file: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close form: %w", err)
	}

	resp, err := c.post(ctx, "add", nil, &body, w.FormDataContentType())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var added struct {
		Hash string `json:"Hash"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&added); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if added.Hash == "" {
		return "", fmt.Errorf("node returned no hash")
	}
	c.log.Debug("added content", "cid", added.Hash, "size", len(data))
	return added.Hash, nil
}

// Pin keeps the content on the node
func (c *Client) Pin(ctx context.Context, cid string) error {
	resp, err := c.post(ctx, "pin/add", url.Values{"arg": {cid}}, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	c.log.Debug("pinned content", "cid", cid)
	return nil
}

// Cat returns the content stored under cid
func (c *Client) Cat(ctx context.Context, cid string) ([]byte, error) {
	resp, err := c.post(ctx, "cat", url.Values{"arg": {cid}}, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxContent+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	if int64(len(data)) > c.maxContent {
		return nil, fmt.Errorf("content of %s exceeds %d bytes", cid, c.maxContent)
	}
	return data, nil
}

func (c *Client) post(ctx context.Context, command string, query url.Values, body io.Reader, contentType string) (*http.Response, error) {
	u := fmt.Sprintf("%s/api/v0/%s", c.endpoint, command)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-KEY", c.apiKey)
	}

	c.log.Debug("ipfs request", "command", command)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		msg, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(msg))
	}
	return resp, nil
}

var _ usecase.IPFS = (*Client)(nil)
