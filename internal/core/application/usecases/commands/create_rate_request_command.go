package commands

import (
	"errors"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/raterequest"
	"freightflow/internal/pkg/guard"
)

var ErrCreateRateRequestCommandIsNotConstructed = errors.New(
	"CreateRateRequestCommand must be created via NewCreateRateRequestCommand constructor",
)

// CreateRateRequestCommand represents a salesperson's request for carrier
// pricing on a lane. Domain validation (mode, type, weight, dates) happens
// in the aggregate constructor; the command checks identifiers only.
type CreateRateRequestCommand struct { //nolint:recvcheck //using for validation
	rateRequestID   kernel.UUID
	mode            raterequest.Mode
	rtype           raterequest.Type
	polID           kernel.UUID
	podID           kernel.UUID
	equipTypeID     kernel.UUID
	preferredLineID *kernel.UUID
	weight          float64
	cargoReadyDate  time.Time
	vesselRequired  bool
	salespersonID   kernel.UUID
	customerID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateRateRequestCommand creates a command to register a rate request.
func NewCreateRateRequestCommand(
	rateRequestID kernel.UUID,
	mode raterequest.Mode,
	rtype raterequest.Type,
	polID, podID, equipTypeID kernel.UUID,
	preferredLineID *kernel.UUID,
	weight float64,
	cargoReadyDate time.Time,
	vesselRequired bool,
	salespersonID kernel.UUID,
	customerID *kernel.UUID,
) (CreateRateRequestCommand, error) {
	if err := errors.Join(
		rateRequestID.Validate(),
		polID.Validate(),
		podID.Validate(),
		equipTypeID.Validate(),
		salespersonID.Validate(),
	); err != nil {
		return CreateRateRequestCommand{}, err
	}

	return CreateRateRequestCommand{
		rateRequestID:   rateRequestID,
		mode:            mode,
		rtype:           rtype,
		polID:           polID,
		podID:           podID,
		equipTypeID:     equipTypeID,
		preferredLineID: preferredLineID,
		weight:          weight,
		cargoReadyDate:  cargoReadyDate,
		vesselRequired:  vesselRequired,
		salespersonID:   salespersonID,
		customerID:      customerID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRateRequestCommandIsNotConstructed)
}

// RateRequestID returns the identifier for the new rate request.
func (c CreateRateRequestCommand) RateRequestID() kernel.UUID { return c.rateRequestID }

// Mode returns the transport mode.
func (c CreateRateRequestCommand) Mode() raterequest.Mode { return c.mode }

// Type returns the shipment type.
func (c CreateRateRequestCommand) Type() raterequest.Type { return c.rtype }

// POL returns the port of loading reference.
func (c CreateRateRequestCommand) POL() kernel.UUID { return c.polID }

// POD returns the port of discharge reference.
func (c CreateRateRequestCommand) POD() kernel.UUID { return c.podID }

// EquipType returns the equipment type reference.
func (c CreateRateRequestCommand) EquipType() kernel.UUID { return c.equipTypeID }

// PreferredLine returns the preferred carrier, nil meaning any.
func (c CreateRateRequestCommand) PreferredLine() *kernel.UUID { return c.preferredLineID }

// Weight returns the cargo weight.
func (c CreateRateRequestCommand) Weight() float64 { return c.weight }

// CargoReadyDate returns the cargo-ready date.
func (c CreateRateRequestCommand) CargoReadyDate() time.Time { return c.cargoReadyDate }

// VesselRequired reports whether responses must carry vessel details.
func (c CreateRateRequestCommand) VesselRequired() bool { return c.vesselRequired }

// Salesperson returns the owning salesperson.
func (c CreateRateRequestCommand) Salesperson() kernel.UUID { return c.salespersonID }

// Customer returns the customer reference, nil if not tied to one.
func (c CreateRateRequestCommand) Customer() *kernel.UUID { return c.customerID }
