package commands

import (
	"errors"
	"time"

	"freightflow/internal/core/domain/model/itinerary"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var (
	ErrCreateItineraryCommandIsNotConstructed = errors.New(
		"CreateItineraryCommand must be created via NewCreateItineraryCommand constructor",
	)
	ErrWeekStartIsRequired = errors.New("week start is required")
)

// CreateItineraryCommand represents a salesperson drafting a weekly visit
// plan.
type CreateItineraryCommand struct { //nolint:recvcheck //using for validation
	itineraryID kernel.UUID
	ownerID     kernel.UUID
	ownerSBUID  *kernel.UUID
	itype       itinerary.Type
	weekStart   time.Time

	guard guard.ConstructorGuard
}

// NewCreateItineraryCommand creates a command to draft an itinerary.
func NewCreateItineraryCommand(
	itineraryID, ownerID kernel.UUID,
	ownerSBUID *kernel.UUID,
	itype itinerary.Type,
	weekStart time.Time,
) (CreateItineraryCommand, error) {
	if err := errors.Join(itineraryID.Validate(), ownerID.Validate()); err != nil {
		return CreateItineraryCommand{}, err
	}
	if weekStart.IsZero() {
		return CreateItineraryCommand{}, ErrWeekStartIsRequired
	}

	return CreateItineraryCommand{
		itineraryID: itineraryID,
		ownerID:     ownerID,
		ownerSBUID:  ownerSBUID,
		itype:       itype,
		weekStart:   weekStart,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateItineraryCommand) Validate() error {
	return c.guard.Validate(ErrCreateItineraryCommandIsNotConstructed)
}

// ItineraryID returns the identifier for the new itinerary.
func (c CreateItineraryCommand) ItineraryID() kernel.UUID { return c.itineraryID }

// Owner returns the owning salesperson.
func (c CreateItineraryCommand) Owner() kernel.UUID { return c.ownerID }

// OwnerSBU returns the owner's business unit, nil if unassigned.
func (c CreateItineraryCommand) OwnerSBU() *kernel.UUID { return c.ownerSBUID }

// Type returns the itinerary type.
func (c CreateItineraryCommand) Type() itinerary.Type { return c.itype }

// WeekStart returns the planned week's start date.
func (c CreateItineraryCommand) WeekStart() time.Time { return c.weekStart }
