package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for plugin client operations
var (
	// ErrNotFound is returned when the indexer has no record for a requested entity
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is malformed
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidAddressOrEns is returned when an ENS name does not resolve to an address
	ErrInvalidAddressOrEns = errors.New("invalid address or ENS name")

	// ErrInvalidProposalID is returned when a proposal id string cannot be parsed
	ErrInvalidProposalID = errors.New("invalid proposal id")

	// ErrInvalidProposalStatus is returned for a status filter outside the known set
	ErrInvalidProposalStatus = errors.New("invalid proposal status")

	// ErrNoSigner is returned when a write needs a signer and none is configured
	ErrNoSigner = errors.New("a signer is needed")

	// ErrNoProvider is returned when the signer (or client) has no connected provider
	ErrNoProvider = errors.New("a web3 provider is needed")

	// ErrSizeMismatch is returned when failSafeActions and actions differ in length
	ErrSizeMismatch = errors.New("size mismatch: actions and failSafeActions should match")

	// ErrProposalCreationFailed is returned when the ProposalCreated event is missing from the receipt
	ErrProposalCreationFailed = errors.New("failed to create proposal")

	// ErrIpfsPinFailed is returned when metadata could not be added to or pinned on IPFS
	ErrIpfsPinFailed = errors.New("could not pin the metadata on IPFS")

	// ErrInvalidCID is returned when a metadata link is not a valid IPFS content identifier
	ErrInvalidCID = errors.New("invalid IPFS CID")

	// ErrInvalidRatio is returned when a ratio is outside [0, 1]
	ErrInvalidRatio = errors.New("the ratio value should range between 0 and 1")

	// ErrInvalidPluginType is returned for a plugin type identifier with no client
	ErrInvalidPluginType = errors.New("the requested plugin type is invalid")

	// ErrInvalidAmount is returned when a deposit amount cannot be scaled to token units
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrTransactionReverted is returned when a mined transaction has a failed status
	ErrTransactionReverted = errors.New("transaction reverted")
)

// GraphQLError reports that an indexer query could not complete
type GraphQLError struct {
	Query string
	Err   error
}

func (e *GraphQLError) Error() string {
	return fmt.Sprintf("cannot fetch the %s data from GraphQL", e.Query)
}

func (e *GraphQLError) Unwrap() error {
	return e.Err
}

// NewGraphQLError wraps err as a failure of the named query
func NewGraphQLError(query string, err error) *GraphQLError {
	return &GraphQLError{Query: query, Err: err}
}

// UnsupportedNetworkError is returned when a network has no known deployment
type UnsupportedNetworkError struct {
	Network string
}

func (e UnsupportedNetworkError) Error() string {
	return fmt.Sprintf("unsupported network: %s", e.Network)
}
