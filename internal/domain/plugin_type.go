package domain

import (
	"fmt"
	"strings"
)

// PluginType is the ENS-style repo identifier of an installed governance plugin
type PluginType string

const (
	PluginTypeCapitalDaoMumbai PluginType = "capitaldaomumbai.plugin.dao.eth"
	PluginTypeVeto             PluginType = "veto.plugin.dao.eth"
	PluginTypeVetoV2           PluginType = "veto-v2.plugin.dao.eth"
	PluginTypeTokenVoting      PluginType = "token-voting.plugin.dao.eth"
	PluginTypeVetoMultisigV1   PluginType = "veto-multisig-v1.plugin.dao.eth"
	PluginTypeVetoMultisigV2   PluginType = "veto-multisig-v2.plugin.dao.eth"
	PluginTypeMultisig         PluginType = "multisig.plugin.dao.eth"
)

// PluginFamily groups plugin types served by the same client implementation
type PluginFamily int

const (
	PluginFamilyVeto PluginFamily = iota + 1
	PluginFamilyMultisig
)

func (f PluginFamily) String() string {
	switch f {
	case PluginFamilyVeto:
		return "veto"
	case PluginFamilyMultisig:
		return "multisig"
	default:
		return fmt.Sprintf("PluginFamily(%d)", int(f))
	}
}

// ParsePluginType validates a plugin type identifier
func ParsePluginType(s string) (PluginType, error) {
	t := PluginType(strings.ToLower(strings.TrimSpace(s)))
	if _, err := t.Family(); err != nil {
		return "", err
	}
	return t, nil
}

// Family maps a plugin type onto the client family that serves it.
// Adding a plugin type requires a case here; there is no default family.
func (t PluginType) Family() (PluginFamily, error) {
	switch t {
	case PluginTypeTokenVoting, PluginTypeVeto, PluginTypeVetoV2, PluginTypeCapitalDaoMumbai:
		return PluginFamilyVeto, nil
	case PluginTypeVetoMultisigV1, PluginTypeVetoMultisigV2, PluginTypeMultisig:
		return PluginFamilyMultisig, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPluginType, string(t))
	}
}

// PluginTypes lists every known plugin type
func PluginTypes() []PluginType {
	return []PluginType{
		PluginTypeCapitalDaoMumbai,
		PluginTypeVeto,
		PluginTypeVetoV2,
		PluginTypeTokenVoting,
		PluginTypeVetoMultisigV1,
		PluginTypeVetoMultisigV2,
		PluginTypeMultisig,
	}
}
