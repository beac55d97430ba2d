package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/capitaldao/veto-cli/internal/domain"
)

// parseAddress validates an address-shaped input
func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

// resolveAddressOrEns returns addresses unchanged and resolves anything else
// as an ENS name through the provider
func resolveAddressOrEns(ctx context.Context, web3 Web3, s string) (common.Address, error) {
	if common.IsHexAddress(s) {
		return common.HexToAddress(s), nil
	}
	provider, err := web3.Provider()
	if err != nil {
		return common.Address{}, err
	}
	addr, err := provider.ResolveName(ctx, s)
	if err != nil {
		return common.Address{}, err
	}
	if addr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddressOrEns, s)
	}
	return addr, nil
}

func lowerHex(addr common.Address) string {
	return strings.ToLower(addr.Hex())
}
