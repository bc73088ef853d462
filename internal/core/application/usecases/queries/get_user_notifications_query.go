// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS
// architecture. Queries bypass the aggregate layer and read optimized
// models straight from the database.
package queries

import (
	"errors"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var (
	ErrGetUserNotificationsQueryIsNotConstructed = errors.New(
		"GetUserNotificationsQuery must be created via NewGetUserNotificationsQuery constructor",
	)
	ErrLimitIsInvalid = errors.New("limit must be greater than 0")
)

// GetUserNotificationsQuery retrieves a user's notifications, newest
// first.
type GetUserNotificationsQuery struct {
	userID kernel.UUID
	limit  int

	guard guard.ConstructorGuard
}

// NewGetUserNotificationsQuery creates a query for a user's notification
// feed.
func NewGetUserNotificationsQuery(userID kernel.UUID, limit int) (GetUserNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserNotificationsQuery{}, err
	}
	if limit <= 0 {
		return GetUserNotificationsQuery{}, ErrLimitIsInvalid
	}

	return GetUserNotificationsQuery{
		userID: userID,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserNotificationsQueryIsNotConstructed)
}

// UserID returns the feed owner.
func (q GetUserNotificationsQuery) UserID() kernel.UUID { return q.userID }

// Limit returns the maximum number of notifications to return.
func (q GetUserNotificationsQuery) Limit() int { return q.limit }

// GetUserNotificationsQueryResponse is one notification in the feed read
// model.
type GetUserNotificationsQueryResponse struct {
	ID        kernel.UUID
	Channel   string
	Subject   string
	Body      string
	Status    string
	ReadAt    *string
	CreatedAt string
}
