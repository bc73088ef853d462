package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"freightflow/internal/pkg/errs"
)

// GetProcessedPercentageQueryHandler computes pricing progress for a rate
// request. The measure is binary: 100 once the request counts as answered,
// 0 otherwise. With a preferred carrier set, only a response from that
// carrier counts; without one, any response counts.
type GetProcessedPercentageQueryHandler struct {
	db *gorm.DB
}

// NewGetProcessedPercentageQueryHandler creates a handler for the
// processed-percentage query.
func NewGetProcessedPercentageQueryHandler(db *gorm.DB) GetProcessedPercentageQueryHandler {
	return GetProcessedPercentageQueryHandler{db: db}
}

// Handle executes the query.
func (h GetProcessedPercentageQueryHandler) Handle(ctx context.Context, query GetProcessedPercentageQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var preferredLineID sql.NullString
	err := h.db.WithContext(ctx).Raw(`
		SELECT preferred_line_id
		FROM rate_requests
		WHERE id = ?
	`, query.RateRequestID().String()).Row().Scan(&preferredLineID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errs.NewObjectNotFoundError("rateRequest", query.RateRequestID().String())
		}
		return 0, err
	}

	countSQL := `
		SELECT COUNT(*)
		FROM rate_request_responses
		WHERE rate_request_id = ?
	`
	args := []any{query.RateRequestID().String()}
	if preferredLineID.Valid {
		countSQL += " AND line_id = ?"
		args = append(args, preferredLineID.String)
	}

	var matching int
	if err = h.db.WithContext(ctx).Raw(countSQL, args...).Row().Scan(&matching); err != nil {
		return 0, err
	}

	if matching > 0 {
		return 100, nil
	}
	return 0, nil
}
