package web3

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/config"
	"github.com/capitaldao/veto-cli/internal/usecase"
)

// DefaultPollInterval is how often receipts are polled while waiting for a transaction
const DefaultPollInterval = 2 * time.Second

// Backend is the subset of the JSON-RPC API the client uses. *ethclient.Client implements it.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Client hands out the provider and signer of the configured network
type Client struct {
	backend      Backend
	key          *ecdsa.PrivateKey
	chainID      uint64
	ensRegistry  common.Address
	pollInterval time.Duration
	log          *slog.Logger
}

// NewClient connects to the RPC endpoint of the configured network. Without
// an endpoint the client is created anyway and reports domain.ErrNoProvider
// when a connection is requested.
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) (*Client, error) {
	c := &Client{
		pollInterval: DefaultPollInterval,
		log:          log.With("component", "Web3"),
	}

	if cfg.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(cfg.PrivateKey), "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}
		c.key = key
	}

	if cfg.Network == nil || cfg.Network.RPCURL == "" {
		return c, nil
	}
	client, err := ethclient.Dial(cfg.Network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	c.backend = client
	c.chainID = cfg.Network.ChainID
	c.ensRegistry = cfg.Network.ENSRegistry
	return c, nil
}

// NewClientWithBackend creates a client over an existing backend. A zero
// chainID is read from the backend on first use.
func NewClientWithBackend(backend Backend, key *ecdsa.PrivateKey, chainID uint64, ensRegistry common.Address, log *slog.Logger) *Client {
	return &Client{
		backend:      backend,
		key:          key,
		chainID:      chainID,
		ensRegistry:  ensRegistry,
		pollInterval: DefaultPollInterval,
		log:          log.With("component", "Web3"),
	}
}

// WithPollInterval returns a copy of the client polling receipts at interval
func (c *Client) WithPollInterval(interval time.Duration) *Client {
	cp := *c
	cp.pollInterval = interval
	return &cp
}

// Provider returns the read-only connection
func (c *Client) Provider() (usecase.Provider, error) {
	if c.backend == nil {
		return nil, domain.ErrNoProvider
	}
	return &Provider{backend: c.backend, ens: newENS(c.backend, c.ensRegistry), log: c.log}, nil
}

// Signer returns the connection of the configured account
func (c *Client) Signer() (usecase.Signer, error) {
	if c.key == nil {
		return nil, domain.ErrNoSigner
	}
	if c.backend == nil {
		return nil, domain.ErrNoProvider
	}
	return &Signer{
		Provider:     &Provider{backend: c.backend, ens: newENS(c.backend, c.ensRegistry), log: c.log},
		key:          c.key,
		address:      crypto.PubkeyToAddress(c.key.PublicKey),
		chainID:      c.chainID,
		pollInterval: c.pollInterval,
	}, nil
}

// Provider performs read-only chain calls
type Provider struct {
	backend Backend
	ens     *ens
	log     *slog.Logger
}

// ResolveName resolves an ENS name to the address its resolver records
func (p *Provider) ResolveName(ctx context.Context, name string) (common.Address, error) {
	addr, err := p.ens.resolve(ctx, name)
	if err != nil {
		return common.Address{}, err
	}
	p.log.Debug("resolved ENS name", "name", name, "address", addr.Hex())
	return addr, nil
}

func (p *Provider) Call(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	return p.backend.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
}

func (p *Provider) EstimateGas(ctx context.Context, from, to common.Address, data []byte) (uint64, error) {
	return p.backend.EstimateGas(ctx, ethereum.CallMsg{From: from, To: &to, Data: data})
}

// FeeData returns the EIP-1559 fee caps; maxFeePerGas is twice the latest
// base fee plus the suggested tip. Chains without a base fee report the gas
// price for both.
func (p *Provider) FeeData(ctx context.Context) (*usecase.FeeData, error) {
	head, err := p.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest header: %w", err)
	}
	if head.BaseFee == nil {
		price, err := p.backend.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get gas price: %w", err)
		}
		return &usecase.FeeData{MaxFeePerGas: price, MaxPriorityFeePerGas: price}, nil
	}
	tip, err := p.backend.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gas tip cap: %w", err)
	}
	maxFee := new(big.Int).Mul(head.BaseFee, big.NewInt(2))
	maxFee.Add(maxFee, tip)
	return &usecase.FeeData{MaxFeePerGas: maxFee, MaxPriorityFeePerGas: tip}, nil
}

// Signer signs and submits EIP-1559 transactions from one account
type Signer struct {
	*Provider
	key          *ecdsa.PrivateKey
	address      common.Address
	chainID      uint64
	pollInterval time.Duration
}

func (s *Signer) Address() common.Address {
	return s.address
}

// SendTransaction signs a call to `to` with estimated gas and current fees
// and submits it
func (s *Signer) SendTransaction(ctx context.Context, to common.Address, data []byte) (common.Hash, error) {
	chainID, err := s.resolveChainID(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	nonce, err := s.backend.PendingNonceAt(ctx, s.address)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get nonce: %w", err)
	}
	gas, err := s.EstimateGas(ctx, s.address, to, data)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to estimate gas: %w", err)
	}
	fees, err := s.FeeData(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: fees.MaxPriorityFeePerGas,
		GasFeeCap: fees.MaxFeePerGas,
		Gas:       gas,
		To:        &to,
		Value:     new(big.Int),
		Data:      data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}
	if err := s.backend.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("failed to send transaction: %w", err)
	}
	s.log.Debug("transaction sent", "to", to.Hex(), "nonce", nonce, "gas", gas, "hash", signed.Hash().Hex())
	return signed.Hash(), nil
}

// WaitForReceipt polls until the transaction is mined or ctx is done
func (s *Signer) WaitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := s.backend.TransactionReceipt(ctx, hash)
		if err == nil {
			s.log.Debug("transaction mined", "hash", hash.Hex(), "status", receipt.Status)
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("failed to get transaction receipt: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (s *Signer) resolveChainID(ctx context.Context) (*big.Int, error) {
	if s.chainID != 0 {
		return new(big.Int).SetUint64(s.chainID), nil
	}
	id, err := s.backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	s.chainID = id.Uint64()
	return id, nil
}

var (
	_ usecase.Web3     = (*Client)(nil)
	_ usecase.Provider = (*Provider)(nil)
	_ usecase.Signer   = (*Signer)(nil)
	_ Backend          = (*ethclient.Client)(nil)
)
