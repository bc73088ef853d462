package commands

import (
	"errors"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var ErrAddItineraryItemCommandIsNotConstructed = errors.New(
	"AddItineraryItemCommand must be created via NewAddItineraryItemCommand constructor",
)

// AddItineraryItemCommand represents adding a planned visit to a draft
// itinerary. Target and field validation happens in the item constructor.
type AddItineraryItemCommand struct { //nolint:recvcheck //using for validation
	itineraryID kernel.UUID
	seq         int
	customerID  *kernel.UUID
	leadID      *kernel.UUID
	purpose     string
	plannedDate time.Time

	guard guard.ConstructorGuard
}

// NewAddItineraryItemCommand creates a command to plan a visit.
func NewAddItineraryItemCommand(
	itineraryID kernel.UUID,
	seq int,
	customerID, leadID *kernel.UUID,
	purpose string,
	plannedDate time.Time,
) (AddItineraryItemCommand, error) {
	if err := itineraryID.Validate(); err != nil {
		return AddItineraryItemCommand{}, err
	}

	return AddItineraryItemCommand{
		itineraryID: itineraryID,
		seq:         seq,
		customerID:  customerID,
		leadID:      leadID,
		purpose:     purpose,
		plannedDate: plannedDate,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItineraryItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItineraryItemCommandIsNotConstructed)
}

// ItineraryID returns the owning itinerary identifier.
func (c AddItineraryItemCommand) ItineraryID() kernel.UUID { return c.itineraryID }

// Seq returns the item's position in the itinerary.
func (c AddItineraryItemCommand) Seq() int { return c.seq }

// Customer returns the visited customer, nil if targeting a lead.
func (c AddItineraryItemCommand) Customer() *kernel.UUID { return c.customerID }

// Lead returns the visited lead, nil if targeting a customer.
func (c AddItineraryItemCommand) Lead() *kernel.UUID { return c.leadID }

// Purpose returns the visit purpose.
func (c AddItineraryItemCommand) Purpose() string { return c.purpose }

// PlannedDate returns the planned visit date.
func (c AddItineraryItemCommand) PlannedDate() time.Time { return c.plannedDate }
