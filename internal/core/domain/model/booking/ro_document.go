package booking

import (
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// RoDocument is a release-order document attached to a booking request.
type RoDocument struct {
	id        kernel.UUID
	number    string
	fileURL   string
	createdAt time.Time
}

// NewRoDocument attaches a release order by number; fileURL may be empty
// when the scanned copy is not uploaded yet.
func NewRoDocument(number, fileURL string) (RoDocument, error) {
	if number == "" {
		return RoDocument{}, errs.NewValueIsRequiredError("number")
	}

	return RoDocument{
		id:        kernel.NewUUID(),
		number:    number,
		fileURL:   fileURL,
		createdAt: time.Now(),
	}, nil
}

// RestoreRoDocument reconstructs a release order from persistence.
func RestoreRoDocument(id kernel.UUID, number, fileURL string, createdAt time.Time) (RoDocument, error) {
	if err := id.Validate(); err != nil {
		return RoDocument{}, err
	}

	return RoDocument{id: id, number: number, fileURL: fileURL, createdAt: createdAt}, nil
}

// ID returns the document identifier.
func (d RoDocument) ID() kernel.UUID { return d.id }

// Number returns the release-order number.
func (d RoDocument) Number() string { return d.number }

// FileURL returns the uploaded file location; empty if none.
func (d RoDocument) FileURL() string { return d.fileURL }

// CreatedAt returns when the document was attached.
func (d RoDocument) CreatedAt() time.Time { return d.createdAt }
