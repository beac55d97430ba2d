package web3

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/bindings"
)

// DefaultENSRegistry is the ENS registry address shared by mainnet and the public testnets
var DefaultENSRegistry = common.HexToAddress("0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e")

type ens struct {
	backend  Backend
	registry common.Address
	contract *bindings.ENSRegistry
}

func newENS(backend Backend, registry common.Address) *ens {
	if registry == (common.Address{}) {
		registry = DefaultENSRegistry
	}
	return &ens{backend: backend, registry: registry, contract: bindings.NewENSRegistry()}
}

// resolve looks up the resolver of name in the registry and asks it for the address record
func (e *ens) resolve(ctx context.Context, name string) (common.Address, error) {
	node := NameHash(name)

	data, err := e.contract.PackResolver(node)
	if err != nil {
		return common.Address{}, err
	}
	out, err := e.backend.CallContract(ctx, ethereum.CallMsg{To: &e.registry, Data: data}, nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("ENS registry call failed: %w", err)
	}
	resolver, err := e.contract.UnpackResolver(out)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddressOrEns, name)
	}
	if resolver == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: %q has no resolver", domain.ErrInvalidAddressOrEns, name)
	}

	data, err = e.contract.PackAddr(node)
	if err != nil {
		return common.Address{}, err
	}
	out, err = e.backend.CallContract(ctx, ethereum.CallMsg{To: &resolver, Data: data}, nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("ENS resolver call failed: %w", err)
	}
	addr, err := e.contract.UnpackAddr(out)
	if err != nil || addr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddressOrEns, name)
	}
	return addr, nil
}

// NameHash computes the ENS namehash of a dot separated name
func NameHash(name string) common.Hash {
	var node common.Hash
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return node
	}
	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		label := crypto.Keccak256Hash([]byte(labels[i]))
		node = crypto.Keccak256Hash(node.Bytes(), label.Bytes())
	}
	return node
}
