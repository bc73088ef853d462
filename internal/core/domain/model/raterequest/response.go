package raterequest

import (
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// Response is one pricing response line on a rate request. Responses are
// append-only: once created they are never edited or removed.
type Response struct {
	id          kernel.UUID
	lineNo      int
	lineID      *kernel.UUID
	equipTypeID *kernel.UUID
	vesselName  string
	eta         *time.Time
	etd         *time.Time
	fclCutoff   *time.Time
	docCutoff   *time.Time
	validTo     time.Time
	chargesJSON []byte
}

// RespondPayload carries the data for the "respond" transition.
type RespondPayload struct {
	LineNo      int
	LineID      *kernel.UUID
	EquipTypeID *kernel.UUID
	VesselName  string
	ETA         *time.Time
	ETD         *time.Time
	FclCutoff   *time.Time
	DocCutoff   *time.Time
	ValidTo     time.Time
	ChargesJSON []byte
}

func newResponse(p RespondPayload) (Response, error) {
	if p.LineNo <= 0 {
		return Response{}, errs.NewValueIsInvalidError("lineNo")
	}
	if p.ValidTo.IsZero() {
		return Response{}, errs.NewValueIsRequiredError("validTo")
	}

	return Response{
		id:          kernel.NewUUID(),
		lineNo:      p.LineNo,
		lineID:      p.LineID,
		equipTypeID: p.EquipTypeID,
		vesselName:  p.VesselName,
		eta:         p.ETA,
		etd:         p.ETD,
		fclCutoff:   p.FclCutoff,
		docCutoff:   p.DocCutoff,
		validTo:     p.ValidTo,
		chargesJSON: p.ChargesJSON,
	}, nil
}

// RestoreResponse reconstructs a response from persistence.
func RestoreResponse(
	id kernel.UUID,
	lineNo int,
	lineID, equipTypeID *kernel.UUID,
	vesselName string,
	eta, etd, fclCutoff, docCutoff *time.Time,
	validTo time.Time,
	chargesJSON []byte,
) (Response, error) {
	if err := id.Validate(); err != nil {
		return Response{}, err
	}

	return Response{
		id:          id,
		lineNo:      lineNo,
		lineID:      lineID,
		equipTypeID: equipTypeID,
		vesselName:  vesselName,
		eta:         eta,
		etd:         etd,
		fclCutoff:   fclCutoff,
		docCutoff:   docCutoff,
		validTo:     validTo,
		chargesJSON: chargesJSON,
	}, nil
}

// ID returns the response identifier.
func (r Response) ID() kernel.UUID { return r.id }

// LineNo returns the response line number.
func (r Response) LineNo() int { return r.lineNo }

// Line returns the responding carrier, nil if not tied to one.
func (r Response) Line() *kernel.UUID { return r.lineID }

// EquipType returns the quoted equipment type, nil if unchanged.
func (r Response) EquipType() *kernel.UUID { return r.equipTypeID }

// VesselName returns the vessel name; empty when not applicable.
func (r Response) VesselName() string { return r.vesselName }

// ETA returns the estimated arrival, nil when not provided.
func (r Response) ETA() *time.Time { return r.eta }

// ETD returns the estimated departure, nil when not provided.
func (r Response) ETD() *time.Time { return r.etd }

// FclCutoff returns the FCL cutoff, nil when not provided.
func (r Response) FclCutoff() *time.Time { return r.fclCutoff }

// DocCutoff returns the documentation cutoff, nil when not provided.
func (r Response) DocCutoff() *time.Time { return r.docCutoff }

// ValidTo returns the response validity date.
func (r Response) ValidTo() time.Time { return r.validTo }

// ChargesJSON returns the opaque structured money breakdown.
func (r Response) ChargesJSON() []byte { return r.chargesJSON }
