package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freightflow/internal/core/domain/model/kernel"
)

// GetRateRequestsQueryHandler reads the rate request worklist with direct
// SQL for read performance.
type GetRateRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetRateRequestsQueryHandler creates a handler for the worklist query.
func NewGetRateRequestsQueryHandler(db *gorm.DB) GetRateRequestsQueryHandler {
	return GetRateRequestsQueryHandler{db: db}
}

// Handle executes the worklist query, newest requests first.
func (h GetRateRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetRateRequestsQuery,
) ([]GetRateRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			r.id,
			r.ref_no,
			r.mode,
			r.type,
			r.status,
			COUNT(resp.id) AS response_count
		FROM rate_requests r
		LEFT JOIN rate_request_responses resp ON resp.rate_request_id = r.id
	`
	var args []any
	where := ""
	if query.Status() != "" {
		where = " WHERE r.status = ?"
		args = append(args, query.Status())
	}
	if query.Salesperson() != nil {
		if where == "" {
			where = " WHERE r.salesperson_id = ?"
		} else {
			where += " AND r.salesperson_id = ?"
		}
		args = append(args, query.Salesperson().String())
	}
	sql += where + `
		GROUP BY r.id, r.ref_no, r.mode, r.type, r.status
		ORDER BY r.created_at DESC
	`

	requests := make([]GetRateRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r GetRateRequestsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&r.RefNo,
			&r.Mode,
			&r.Type,
			&r.Status,
			&r.ResponseCount,
		)
		if err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		r.ID = requestID
		requests = append(requests, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
