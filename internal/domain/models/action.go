package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DaoAction is one contract call executed by the DAO when a proposal passes
type DaoAction struct {
	To    common.Address `json:"to" yaml:"to"`
	Value *big.Int       `json:"value" yaml:"value"`
	Data  hexutil.Bytes  `json:"data" yaml:"data"`
}

// MintTokenParams are the arguments of an ERC20 mint action
type MintTokenParams struct {
	Address string   `json:"address" yaml:"address"`
	Amount  *big.Int `json:"amount" yaml:"amount"`
}

// InterfaceParams describes a known function matched by its selector
type InterfaceParams struct {
	// ID is the minimal human readable signature, e.g. "function mint(address,uint256)"
	ID           string `json:"id" yaml:"id"`
	FunctionName string `json:"functionName" yaml:"functionName"`
	// Hash is the 0x-prefixed 4-byte selector
	Hash string `json:"hash" yaml:"hash"`
}

// PluginInstallItem is the plugin repo and encoded setup data used when creating a DAO
type PluginInstallItem struct {
	ID   common.Address `json:"id" yaml:"id"`
	Data hexutil.Bytes  `json:"data" yaml:"data"`
}

// VetoPluginInstall are the parameters a veto plugin is installed with
type VetoPluginInstall struct {
	VotingSettings VotingSettings
	// TokenAddress of an existing governance token, empty for none
	TokenAddress string
}

// MultisigVotingSettings configure a (veto) multisig plugin
type MultisigVotingSettings struct {
	OnlyListed   bool   `json:"onlyListed" yaml:"onlyListed"`
	MinApprovals uint16 `json:"minApprovals" yaml:"minApprovals"`
}

// MultisigPluginInstall are the parameters a multisig plugin is installed with
type MultisigPluginInstall struct {
	Members        []string
	VotingSettings MultisigVotingSettings
}

// MembersParams add or remove members of a multisig plugin
type MembersParams struct {
	PluginAddress string
	Members       []string
}

// UpdateMultisigSettingsParams change the settings of a multisig plugin
type UpdateMultisigSettingsParams struct {
	PluginAddress  string
	VotingSettings MultisigVotingSettings
}
