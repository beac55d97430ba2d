package abi

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/bindings"
)

// EventDecoder finds plugin events in transaction receipts
type EventDecoder struct {
	veto             *bindings.VetoPlugin
	proposalCreateID common.Hash
	log              *slog.Logger
}

// NewEventDecoder creates a new event decoder
func NewEventDecoder(log *slog.Logger) *EventDecoder {
	veto := bindings.NewVetoPlugin()
	id, err := veto.GetEventID(bindings.VetoPluginProposalCreatedEventName)
	if err != nil {
		panic(err)
	}
	return &EventDecoder{
		veto:             veto,
		proposalCreateID: id,
		log:              log.With("component", "EventDecoder"),
	}
}

// ProposalCreatedIndex returns the proposal index from the first ProposalCreated
// log emitted by plugin. ErrProposalCreationFailed when none is present.
func (d *EventDecoder) ProposalCreatedIndex(logs []*types.Log, plugin common.Address) (*big.Int, error) {
	for _, log := range logs {
		if log == nil || log.Address != plugin || len(log.Topics) < 2 {
			continue
		}
		if log.Topics[0] != d.proposalCreateID {
			continue
		}
		event, err := d.veto.UnpackProposalCreatedEvent(log)
		if err != nil {
			// Indexed proposalId is enough to identify the proposal
			d.log.Debug("could not unpack ProposalCreated data, using topic", "err", err)
			return new(big.Int).SetBytes(log.Topics[1].Bytes()), nil
		}
		d.log.Debug("found event", "event", event.String())
		return event.ProposalId, nil
	}
	return nil, fmt.Errorf("%w: no ProposalCreated event from %s in receipt", domain.ErrProposalCreationFailed, plugin.Hex())
}
