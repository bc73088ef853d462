package commands

import (
	"errors"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var (
	ErrAddLineQuoteCommandIsNotConstructed = errors.New(
		"AddLineQuoteCommand must be created via NewAddLineQuoteCommand constructor",
	)
	ErrValidToIsRequired = errors.New("validTo is required")
)

// AddLineQuoteCommand represents a request to attach a carrier quote to a
// rate request and make it the selected one.
type AddLineQuoteCommand struct { //nolint:recvcheck //using for validation
	rateRequestID kernel.UUID
	lineID        kernel.UUID
	termsJSON     []byte
	validTo       time.Time

	guard guard.ConstructorGuard
}

// NewAddLineQuoteCommand creates a command to attach a carrier quote.
func NewAddLineQuoteCommand(rateRequestID, lineID kernel.UUID, termsJSON []byte, validTo time.Time) (AddLineQuoteCommand, error) {
	cmd := AddLineQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRateRequestID(rateRequestID),
		cmd.setLineID(lineID),
		cmd.setValidTo(validTo),
	); err != nil {
		return AddLineQuoteCommand{}, err
	}

	cmd.termsJSON = termsJSON
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLineQuoteCommand) Validate() error {
	return c.guard.Validate(ErrAddLineQuoteCommandIsNotConstructed)
}

// RateRequestID returns the owning rate request identifier.
func (c AddLineQuoteCommand) RateRequestID() kernel.UUID { return c.rateRequestID }

// LineID returns the quoting carrier identifier.
func (c AddLineQuoteCommand) LineID() kernel.UUID { return c.lineID }

// TermsJSON returns the opaque quote terms.
func (c AddLineQuoteCommand) TermsJSON() []byte { return c.termsJSON }

// ValidTo returns the quote validity date.
func (c AddLineQuoteCommand) ValidTo() time.Time { return c.validTo }

func (c *AddLineQuoteCommand) setRateRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.rateRequestID = id
	return nil
}

func (c *AddLineQuoteCommand) setLineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.lineID = id
	return nil
}

func (c *AddLineQuoteCommand) setValidTo(validTo time.Time) error {
	if validTo.IsZero() {
		return ErrValidToIsRequired
	}

	c.validTo = validTo
	return nil
}
