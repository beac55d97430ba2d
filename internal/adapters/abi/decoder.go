package abi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/samber/lo"

	"github.com/capitaldao/veto-cli/internal/domain/bindings"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// selectorLength is the size of a function selector prefix
const selectorLength = 4

// Decoder decodes DAO action calldata
type Decoder struct {
	veto     *bindings.VetoPlugin
	token    *bindings.GovernanceERC20
	multisig *bindings.Multisig
	// known are the functions FindInterface recognises
	known []*abi.ABI
	log   *slog.Logger
}

// NewDecoder creates a new action decoder
func NewDecoder(log *slog.Logger) *Decoder {
	d := &Decoder{
		veto:     bindings.NewVetoPlugin(),
		token:    bindings.NewGovernanceERC20(),
		multisig: bindings.NewMultisig(),
		log:      log.With("component", "ActionDecoder"),
	}
	d.known = []*abi.ABI{
		onlyMethods(d.veto.ABI(), "updateVotingSettings"),
		onlyMethods(d.token.ABI(), "mint"),
		onlyMethods(d.multisig.ABI(), "addAddresses", "removeAddresses", "updateMultisigSettings"),
	}
	return d
}

// DecodedCall is a human-readable view of action calldata
type DecodedCall struct {
	Method    string
	Signature string
	Selector  string
	Inputs    []DecodedInput
}

// DecodedInput represents a decoded function input
type DecodedInput struct {
	Name  string
	Type  string
	Value any
}

// UpdatePluginSettingsAction decodes the voting settings from an updateVotingSettings action
func (d *Decoder) UpdatePluginSettingsAction(data []byte) (*models.VotingSettings, error) {
	args, err := d.unpackInputs(d.veto.ABI(), "updateVotingSettings", data)
	if err != nil {
		return nil, err
	}
	raw := *abi.ConvertType(args[0], new(bindings.MajorityVotingBaseVotingSettings)).(*bindings.MajorityVotingBaseVotingSettings)
	settings, err := votingSettingsFromContract(raw)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// MintTokenAction decodes the receiver and amount from a mint action
func (d *Decoder) MintTokenAction(data []byte) (*models.MintTokenParams, error) {
	args, err := d.unpackInputs(d.token.ABI(), "mint", data)
	if err != nil {
		return nil, err
	}
	to := *abi.ConvertType(args[0], new(common.Address)).(*common.Address)
	amount := abi.ConvertType(args[1], new(big.Int)).(*big.Int)
	return &models.MintTokenParams{Address: to.Hex(), Amount: amount}, nil
}

// AddAddressesAction decodes the members of an addAddresses action
func (d *Decoder) AddAddressesAction(data []byte) ([]string, error) {
	return d.members("addAddresses", data)
}

// RemoveAddressesAction decodes the members of a removeAddresses action
func (d *Decoder) RemoveAddressesAction(data []byte) ([]string, error) {
	return d.members("removeAddresses", data)
}

// UpdateMultisigVotingSettings decodes the settings of an updateMultisigSettings action
func (d *Decoder) UpdateMultisigVotingSettings(data []byte) (*models.MultisigVotingSettings, error) {
	args, err := d.unpackInputs(d.multisig.ABI(), "updateMultisigSettings", data)
	if err != nil {
		return nil, err
	}
	raw := *abi.ConvertType(args[0], new(bindings.MultisigMultisigSettings)).(*bindings.MultisigMultisigSettings)
	return &models.MultisigVotingSettings{OnlyListed: raw.OnlyListed, MinApprovals: raw.MinApprovals}, nil
}

// FindInterface returns the known function the calldata selects, or nil when
// the selector is unknown or data is too short. It never panics.
func (d *Decoder) FindInterface(data []byte) *models.InterfaceParams {
	method := d.lookup(data)
	if method == nil {
		return nil
	}
	return &models.InterfaceParams{
		ID:           minimalSignature(method),
		FunctionName: method.RawName,
		Hash:         hexutil.Encode(data[:selectorLength]),
	}
}

// DecodeCall decodes calldata against the known functions for display.
// Unknown selectors yield Method "unknown" and no inputs.
func (d *Decoder) DecodeCall(data []byte) *DecodedCall {
	decoded := &DecodedCall{Method: "unknown"}
	if len(data) >= selectorLength {
		decoded.Selector = hexutil.Encode(data[:selectorLength])
	}
	method := d.lookup(data)
	if method == nil {
		return decoded
	}
	decoded.Method = method.RawName
	decoded.Signature = minimalSignature(method)

	values, err := method.Inputs.Unpack(data[selectorLength:])
	if err != nil {
		d.log.Debug("unable to unpack call inputs", "method", method.RawName, "err", err)
		return decoded
	}
	for i, input := range method.Inputs {
		if i < len(values) {
			decoded.Inputs = append(decoded.Inputs, DecodedInput{
				Name:  input.Name,
				Type:  input.Type.String(),
				Value: values[i],
			})
		}
	}
	return decoded
}

func (d *Decoder) lookup(data []byte) *abi.Method {
	if len(data) < selectorLength {
		return nil
	}
	for _, contract := range d.known {
		if method, err := contract.MethodById(data[:selectorLength]); err == nil {
			return method
		}
	}
	return nil
}

func (d *Decoder) members(name string, data []byte) ([]string, error) {
	args, err := d.unpackInputs(d.multisig.ABI(), name, data)
	if err != nil {
		return nil, err
	}
	members := *abi.ConvertType(args[0], new([]common.Address)).(*[]common.Address)
	return lo.Map(members, func(a common.Address, _ int) string { return a.Hex() }), nil
}

func (d *Decoder) unpackInputs(contract *abi.ABI, name string, data []byte) ([]any, error) {
	method, ok := contract.Methods[name]
	if !ok {
		return nil, fmt.Errorf("method %s not found", name)
	}
	if len(data) < selectorLength || !bytes.Equal(data[:selectorLength], method.ID) {
		return nil, fmt.Errorf("data does not encode a %s call", name)
	}
	args, err := method.Inputs.Unpack(data[selectorLength:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return args, nil
}

// onlyMethods narrows a contract ABI to the named methods
func onlyMethods(contract *abi.ABI, names ...string) *abi.ABI {
	narrowed := &abi.ABI{Methods: make(map[string]abi.Method, len(names))}
	for _, name := range names {
		if m, ok := contract.Methods[name]; ok {
			narrowed.Methods[name] = m
		}
	}
	return narrowed
}

// minimalSignature renders a method like "function mint(address,uint256)"
func minimalSignature(method *abi.Method) string {
	types := lo.Map(method.Inputs, func(arg abi.Argument, _ int) string {
		return minimalType(arg.Type)
	})
	return fmt.Sprintf("function %s(%s)", method.RawName, strings.Join(types, ","))
}

func minimalType(t abi.Type) string {
	switch t.T {
	case abi.TupleTy:
		elems := lo.Map(t.TupleElems, func(e *abi.Type, _ int) string { return minimalType(*e) })
		return "tuple(" + strings.Join(elems, ",") + ")"
	case abi.SliceTy:
		return minimalType(*t.Elem) + "[]"
	case abi.ArrayTy:
		return fmt.Sprintf("%s[%d]", minimalType(*t.Elem), t.Size)
	default:
		return t.String()
	}
}

// FormatValue formats a decoded value for human display
func FormatValue(value any) string {
	switch v := value.(type) {
	case common.Address:
		return v.Hex()
	case *big.Int:
		return v.String()
	case []byte:
		if len(v) == 0 {
			return "0x"
		}
		if len(v) <= 32 {
			return hexutil.Encode(v)
		}
		// Truncate long byte arrays
		return fmt.Sprintf("%s...(%d bytes)", hexutil.Encode(v[:16]), len(v))
	case []common.Address:
		return "[" + strings.Join(lo.Map(v, func(a common.Address, _ int) string { return a.Hex() }), ", ") + "]"
	case string:
		if len(v) > 50 {
			return fmt.Sprintf("%.50s...(%d chars)", v, len(v))
		}
		return fmt.Sprintf(`"%s"`, v)
	case bool:
		return fmt.Sprintf("%t", v)
	case [32]byte:
		return hexutil.Encode(v[:])
	default:
		// Try JSON marshaling for complex types
		if jsonBytes, err := json.Marshal(v); err == nil {
			jsonStr := string(jsonBytes)
			if len(jsonStr) > 100 {
				return fmt.Sprintf("%.100s...(%d chars)", jsonStr, len(jsonStr))
			}
			return jsonStr
		}
		return fmt.Sprintf("%v", v)
	}
}
