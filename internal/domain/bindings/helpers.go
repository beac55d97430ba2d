package bindings

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
)

// GetEventID returns the event signature hash for a given event name
// This is a helper method that works alongside the generated ABI bindings
func (vetoPlugin *VetoPlugin) GetEventID(eventName string) (common.Hash, error) {
	event, exists := vetoPlugin.abi.Events[eventName]
	if !exists {
		return common.Hash{}, fmt.Errorf("event %s not found", eventName)
	}
	return event.ID, nil
}

func (e *VetoPluginProposalCreated) String() string {
	return fmt.Sprintf(
		"%s: proposalId=%s creator=%s start=%d end=%d actions=%v",
		e.ContractEventName(),
		e.ProposalId.String(),
		e.Creator.String(),
		e.StartDate,
		e.EndDate,
		lo.Map(e.Actions, func(a IDAOAction, _ int) string {
			return a.To.String()
		}),
	)
}
