package commands

import (
	"context"
	"fmt"

	"freightflow/internal/core/domain/model/workflow"
)

// RequestRateUpdateCommandHandler turns a rate refresh request into a
// group notification for the pricing team assigned to the trade lane.
// Rate storage itself lives in an external tariff system; this service
// only carries the request to the right team.
type RequestRateUpdateCommandHandler struct{}

// NewRequestRateUpdateCommandHandler creates a handler for rate refresh
// requests.
func NewRequestRateUpdateCommandHandler() RequestRateUpdateCommandHandler {
	return RequestRateUpdateCommandHandler{}
}

// Handle processes the request and returns the group fan-out effect for
// the caller to enqueue.
func (h *RequestRateUpdateCommandHandler) Handle(_ context.Context, cmd RequestRateUpdateCommand) ([]workflow.Effect, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return []workflow.Effect{
		workflow.NotifyGroup(cmd.TradeLane(), "Rate Update Requested",
			fmt.Sprintf("A rate update has been requested for your trade lane. Note: %s", cmd.Note())),
	}, nil
}
