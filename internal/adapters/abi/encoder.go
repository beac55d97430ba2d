package abi

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/bindings"
	"github.com/capitaldao/veto-cli/internal/domain/config"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// Encoder builds DAO actions and plugin setup data
type Encoder struct {
	veto     *bindings.VetoPlugin
	token    *bindings.GovernanceERC20
	multisig *bindings.Multisig
	log      *slog.Logger
}

// NewEncoder creates a new action encoder
func NewEncoder(log *slog.Logger) *Encoder {
	return &Encoder{
		veto:     bindings.NewVetoPlugin(),
		token:    bindings.NewGovernanceERC20(),
		multisig: bindings.NewMultisig(),
		log:      log.With("component", "ActionEncoder"),
	}
}

// UpdatePluginSettingsAction encodes an updateVotingSettings call on the plugin
func (e *Encoder) UpdatePluginSettingsAction(pluginAddress string, settings models.VotingSettings) (*models.DaoAction, error) {
	to, err := parseAddress(pluginAddress)
	if err != nil {
		return nil, err
	}
	args, err := votingSettingsToContract(settings)
	if err != nil {
		return nil, err
	}
	data, err := e.veto.PackUpdateVotingSettings(args)
	if err != nil {
		return nil, fmt.Errorf("failed to encode updateVotingSettings: %w", err)
	}
	return newAction(to, data), nil
}

// MintTokenAction encodes a mint call on the governance token at minterAddress
func (e *Encoder) MintTokenAction(minterAddress string, params models.MintTokenParams) (*models.DaoAction, error) {
	to, err := parseAddress(minterAddress)
	if err != nil {
		return nil, err
	}
	receiver, err := parseAddress(params.Address)
	if err != nil {
		return nil, err
	}
	if params.Amount == nil || params.Amount.Sign() < 0 {
		return nil, fmt.Errorf("%w: mint amount must be a non-negative integer", domain.ErrInvalidAmount)
	}
	data, err := e.token.PackMint(receiver, params.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to encode mint: %w", err)
	}
	return newAction(to, data), nil
}

// PluginInstallItem encodes the setup data a veto plugin is installed with at DAO creation
func (e *Encoder) PluginInstallItem(params models.VetoPluginInstall, network *config.Network) (*models.PluginInstallItem, error) {
	if !network.IsSupported() {
		return nil, unsupportedNetwork(network)
	}
	token := common.Address{}
	if params.TokenAddress != "" {
		var err error
		if token, err = parseAddress(params.TokenAddress); err != nil {
			return nil, err
		}
	}
	settings, err := votingSettingsToContract(params.VotingSettings)
	if err != nil {
		return nil, err
	}
	data, err := vetoInstallArguments.Pack(token, vetoInstallSettings{
		VotingMode:             settings.VotingMode,
		SupportThreshold:       uint64(settings.SupportThreshold),
		MinParticipation:       uint64(settings.MinParticipation),
		MinDuration:            settings.MinDuration,
		MinProposerVotingPower: settings.MinProposerVotingPower,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode plugin install data: %w", err)
	}
	e.log.Debug("encoded veto install item", "network", network.Name, "repo", network.VetoPluginRepo)
	return &models.PluginInstallItem{ID: network.VetoPluginRepo, Data: data}, nil
}

// AddAddressesAction encodes adding members to a multisig plugin
func (e *Encoder) AddAddressesAction(params models.MembersParams) (*models.DaoAction, error) {
	to, members, err := parseMembers(params)
	if err != nil {
		return nil, err
	}
	data, err := e.multisig.PackAddAddresses(members)
	if err != nil {
		return nil, fmt.Errorf("failed to encode addAddresses: %w", err)
	}
	return newAction(to, data), nil
}

// RemoveAddressesAction encodes removing members from a multisig plugin
func (e *Encoder) RemoveAddressesAction(params models.MembersParams) (*models.DaoAction, error) {
	to, members, err := parseMembers(params)
	if err != nil {
		return nil, err
	}
	data, err := e.multisig.PackRemoveAddresses(members)
	if err != nil {
		return nil, fmt.Errorf("failed to encode removeAddresses: %w", err)
	}
	return newAction(to, data), nil
}

// UpdateMultisigVotingSettings encodes an updateMultisigSettings call
func (e *Encoder) UpdateMultisigVotingSettings(params models.UpdateMultisigSettingsParams) (*models.DaoAction, error) {
	to, err := parseAddress(params.PluginAddress)
	if err != nil {
		return nil, err
	}
	data, err := e.multisig.PackUpdateMultisigSettings(bindings.MultisigMultisigSettings{
		OnlyListed:   params.VotingSettings.OnlyListed,
		MinApprovals: params.VotingSettings.MinApprovals,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode updateMultisigSettings: %w", err)
	}
	return newAction(to, data), nil
}

// MultisigInstallItem encodes the setup data a multisig plugin is installed with
func (e *Encoder) MultisigInstallItem(params models.MultisigPluginInstall, network *config.Network) (*models.PluginInstallItem, error) {
	if !network.IsSupported() {
		return nil, unsupportedNetwork(network)
	}
	members := make([]common.Address, 0, len(params.Members))
	for _, m := range params.Members {
		addr, err := parseAddress(m)
		if err != nil {
			return nil, err
		}
		members = append(members, addr)
	}
	data, err := multisigInstallArguments.Pack(members, bindings.MultisigMultisigSettings{
		OnlyListed:   params.VotingSettings.OnlyListed,
		MinApprovals: params.VotingSettings.MinApprovals,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode multisig install data: %w", err)
	}
	return &models.PluginInstallItem{ID: network.MultisigPluginRepo, Data: data}, nil
}

// AllowFailureMap packs per-action fail-safe flags into a bitmap, bit i set when action i may fail
func AllowFailureMap(failSafe []bool) *big.Int {
	m := new(big.Int)
	for i, allowed := range failSafe {
		if allowed {
			m.SetBit(m, i, 1)
		}
	}
	return m
}

// vetoInstallSettings mirrors the settings tuple of the plugin setup contract,
// which widens the ratios to uint64.
type vetoInstallSettings struct {
	VotingMode             uint8
	SupportThreshold       uint64
	MinParticipation       uint64
	MinDuration            uint64
	MinProposerVotingPower *big.Int
}

var (
	vetoInstallArguments = abi.Arguments{
		{Name: "token", Type: mustNewType("address", nil)},
		{Name: "votingSettings", Type: mustNewType("tuple", []abi.ArgumentMarshaling{
			{Name: "votingMode", Type: "uint8"},
			{Name: "supportThreshold", Type: "uint64"},
			{Name: "minParticipation", Type: "uint64"},
			{Name: "minDuration", Type: "uint64"},
			{Name: "minProposerVotingPower", Type: "uint256"},
		})},
	}
	multisigInstallArguments = abi.Arguments{
		{Name: "members", Type: mustNewType("address[]", nil)},
		{Name: "multisigSettings", Type: mustNewType("tuple", []abi.ArgumentMarshaling{
			{Name: "onlyListed", Type: "bool"},
			{Name: "minApprovals", Type: "uint16"},
		})},
	}
)

func mustNewType(t string, components []abi.ArgumentMarshaling) abi.Type {
	typ, err := abi.NewType(t, "", components)
	if err != nil {
		panic(fmt.Sprintf("invalid abi type %s: %v", t, err))
	}
	return typ
}

func votingSettingsToContract(s models.VotingSettings) (bindings.MajorityVotingBaseVotingSettings, error) {
	support, err := domain.EncodeRatio(s.SupportThreshold, domain.RatioDigits)
	if err != nil {
		return bindings.MajorityVotingBaseVotingSettings{}, fmt.Errorf("supportThreshold: %w", err)
	}
	participation, err := domain.EncodeRatio(s.MinParticipation, domain.RatioDigits)
	if err != nil {
		return bindings.MajorityVotingBaseVotingSettings{}, fmt.Errorf("minParticipation: %w", err)
	}
	mode, err := s.VotingMode.ContractValue()
	if err != nil {
		return bindings.MajorityVotingBaseVotingSettings{}, err
	}
	power := s.MinProposerVotingPower
	if power == nil {
		power = new(big.Int)
	}
	return bindings.MajorityVotingBaseVotingSettings{
		VotingMode:             mode,
		SupportThreshold:       uint32(support),
		MinParticipation:       uint32(participation),
		MinDuration:            s.MinDuration,
		MinProposerVotingPower: power,
	}, nil
}

func votingSettingsFromContract(s bindings.MajorityVotingBaseVotingSettings) (models.VotingSettings, error) {
	mode, err := models.VotingModeFromContract(s.VotingMode)
	if err != nil {
		return models.VotingSettings{}, err
	}
	return models.VotingSettings{
		MinDuration:            s.MinDuration,
		SupportThreshold:       domain.DecodeRatioUint64(uint64(s.SupportThreshold), domain.RatioDigits),
		MinParticipation:       domain.DecodeRatioUint64(uint64(s.MinParticipation), domain.RatioDigits),
		MinProposerVotingPower: s.MinProposerVotingPower,
		VotingMode:             mode,
	}, nil
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

func parseMembers(params models.MembersParams) (common.Address, []common.Address, error) {
	to, err := parseAddress(params.PluginAddress)
	if err != nil {
		return common.Address{}, nil, err
	}
	if bad, found := lo.Find(params.Members, func(m string) bool { return !common.IsHexAddress(m) }); found {
		return common.Address{}, nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, bad)
	}
	return to, lo.Map(params.Members, func(m string, _ int) common.Address { return common.HexToAddress(m) }), nil
}

func newAction(to common.Address, data []byte) *models.DaoAction {
	return &models.DaoAction{To: to, Value: new(big.Int), Data: data}
}

func unsupportedNetwork(network *config.Network) error {
	if network == nil {
		return domain.UnsupportedNetworkError{Network: "<none>"}
	}
	return domain.UnsupportedNetworkError{Network: network.Name}
}
