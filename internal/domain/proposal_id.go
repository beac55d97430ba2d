package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const proposalIDSeparator = "_"

var proposalIDPattern = regexp.MustCompile(`^0x[A-Fa-f0-9]{40}_0x[A-Fa-f0-9]{1,64}$`)

// ProposalID identifies a proposal by the plugin that owns it and its index on that plugin
type ProposalID struct {
	PluginAddress common.Address
	Index         uint64
}

// EncodeProposalID returns the compact string form of a proposal id
func EncodeProposalID(pluginAddress common.Address, index uint64) string {
	return ProposalID{PluginAddress: pluginAddress, Index: index}.String()
}

// DecodeProposalID is the inverse of EncodeProposalID
func DecodeProposalID(id string) (common.Address, uint64, error) {
	p, err := ParseProposalID(id)
	if err != nil {
		return common.Address{}, 0, err
	}
	return p.PluginAddress, p.Index, nil
}

// IsProposalID reports whether s has the shape of a compact or extended proposal id
func IsProposalID(s string) bool {
	return proposalIDPattern.MatchString(s)
}

// ParseProposalID parses the compact (0xplugin_0x1) or extended (0xplugin_0x00..01) form.
// Address case and index zero padding are not kept: String yields the canonical
// lower-case unpadded form, so only canonical input prints back unchanged.
func ParseProposalID(s string) (ProposalID, error) {
	if !IsProposalID(s) {
		return ProposalID{}, fmt.Errorf("%w: %q", ErrInvalidProposalID, s)
	}
	addr, idx, _ := strings.Cut(s, proposalIDSeparator)

	hexIdx := strings.TrimLeft(strings.TrimPrefix(idx, "0x"), "0")
	if hexIdx == "" {
		hexIdx = "0"
	}
	index, err := strconv.ParseUint(hexIdx, 16, 64)
	if err != nil {
		return ProposalID{}, fmt.Errorf("%w: index out of range in %q", ErrInvalidProposalID, s)
	}

	return ProposalID{
		PluginAddress: common.HexToAddress(addr),
		Index:         index,
	}, nil
}

// String returns the compact form with a lower-case address
func (p ProposalID) String() string {
	return fmt.Sprintf("%s%s0x%x", strings.ToLower(p.PluginAddress.Hex()), proposalIDSeparator, p.Index)
}

// Extended returns the form used as entity id by the indexer, index padded to 32 bytes
func (p ProposalID) Extended() string {
	return fmt.Sprintf("%s%s0x%064x", strings.ToLower(p.PluginAddress.Hex()), proposalIDSeparator, p.Index)
}

// CompactProposalID converts an indexer (extended) id into the compact form.
// Strings that do not parse are returned unchanged.
func CompactProposalID(extended string) string {
	p, err := ParseProposalID(extended)
	if err != nil {
		return extended
	}
	return p.String()
}
