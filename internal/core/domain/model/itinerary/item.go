package itinerary

import (
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// Item is one planned visit on an itinerary, targeting either an existing
// customer or a sales lead.
type Item struct {
	id          kernel.UUID
	seq         int
	customerID  *kernel.UUID
	leadID      *kernel.UUID
	purpose     string
	plannedDate time.Time
}

// NewItem plans a visit. Exactly one of customerID and leadID must be set.
func NewItem(seq int, customerID, leadID *kernel.UUID, purpose string, plannedDate time.Time) (Item, error) {
	if seq <= 0 {
		return Item{}, errs.NewValueIsInvalidError("seq")
	}
	if (customerID == nil) == (leadID == nil) {
		return Item{}, errs.NewValueIsInvalidError("item target: exactly one of customer and lead is required")
	}
	if purpose == "" {
		return Item{}, errs.NewValueIsRequiredError("purpose")
	}
	if plannedDate.IsZero() {
		return Item{}, errs.NewValueIsRequiredError("plannedDate")
	}

	return Item{
		id:          kernel.NewUUID(),
		seq:         seq,
		customerID:  customerID,
		leadID:      leadID,
		purpose:     purpose,
		plannedDate: plannedDate,
	}, nil
}

// RestoreItem reconstructs an item from persistence.
func RestoreItem(id kernel.UUID, seq int, customerID, leadID *kernel.UUID, purpose string, plannedDate time.Time) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}

	return Item{
		id:          id,
		seq:         seq,
		customerID:  customerID,
		leadID:      leadID,
		purpose:     purpose,
		plannedDate: plannedDate,
	}, nil
}

// ID returns the item identifier.
func (i Item) ID() kernel.UUID { return i.id }

// Seq returns the item's position in the itinerary.
func (i Item) Seq() int { return i.seq }

// Customer returns the visited customer, nil if targeting a lead.
func (i Item) Customer() *kernel.UUID { return i.customerID }

// Lead returns the visited lead, nil if targeting a customer.
func (i Item) Lead() *kernel.UUID { return i.leadID }

// Purpose returns the visit purpose.
func (i Item) Purpose() string { return i.purpose }

// PlannedDate returns the planned visit date.
func (i Item) PlannedDate() time.Time { return i.plannedDate }
