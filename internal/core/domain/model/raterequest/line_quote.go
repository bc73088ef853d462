package raterequest

import (
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// LineQuote is a carrier quote attached to a rate request.
//
// Invariant: for a given rate request, at most one quote is selected at any
// time. The invariant is enforced by the quote-selection use case inside a
// single store transaction serialized on the parent rate request row; the
// domain type only carries the flag.
type LineQuote struct {
	id            kernel.UUID
	rateRequestID kernel.UUID
	lineID        kernel.UUID
	termsJSON     []byte
	validTo       time.Time
	selected      bool
}

// NewLineQuote creates a quote for a rate request. New quotes are always
// created selected; persisting one unselects every sibling in the same
// transaction.
func NewLineQuote(rateRequestID, lineID kernel.UUID, termsJSON []byte, validTo time.Time) (*LineQuote, error) {
	if err := rateRequestID.Validate(); err != nil {
		return nil, err
	}
	if err := lineID.Validate(); err != nil {
		return nil, err
	}
	if validTo.IsZero() {
		return nil, errs.NewValueIsRequiredError("validTo")
	}

	return &LineQuote{
		id:            kernel.NewUUID(),
		rateRequestID: rateRequestID,
		lineID:        lineID,
		termsJSON:     termsJSON,
		validTo:       validTo,
		selected:      true,
	}, nil
}

// RestoreLineQuote reconstructs a quote from persistence.
func RestoreLineQuote(id, rateRequestID, lineID kernel.UUID, termsJSON []byte, validTo time.Time, selected bool) (*LineQuote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := rateRequestID.Validate(); err != nil {
		return nil, err
	}

	return &LineQuote{
		id:            id,
		rateRequestID: rateRequestID,
		lineID:        lineID,
		termsJSON:     termsJSON,
		validTo:       validTo,
		selected:      selected,
	}, nil
}

// ID returns the quote identifier.
func (q *LineQuote) ID() kernel.UUID { return q.id }

// RateRequest returns the owning rate request's identifier.
func (q *LineQuote) RateRequest() kernel.UUID { return q.rateRequestID }

// Line returns the quoting carrier.
func (q *LineQuote) Line() kernel.UUID { return q.lineID }

// TermsJSON returns the opaque terms payload.
func (q *LineQuote) TermsJSON() []byte { return q.termsJSON }

// ValidTo returns the quote validity date.
func (q *LineQuote) ValidTo() time.Time { return q.validTo }

// Selected reports whether this is the selected quote for its request.
func (q *LineQuote) Selected() bool { return q.selected }
