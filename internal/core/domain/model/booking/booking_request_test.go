package booking_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/domain/model/booking"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/user"
	"freightflow/internal/core/domain/model/workflow"
	"freightflow/internal/pkg/errs"
)

func newPendingBooking(t *testing.T) *booking.BookingRequest {
	t.Helper()
	b, err := booking.NewBookingRequest(
		kernel.NewUUID(), kernel.NewUUID(),
		booking.RateSourceQuote,
		kernel.NewUUID(), kernel.NewUUID(),
	)
	require.NoError(t, err)
	return b
}

func cseContext() workflow.TransitionContext {
	return workflow.TransitionContext{
		Actor: workflow.Actor{ID: kernel.NewUUID(), Role: user.RoleCSE},
	}
}

func TestNewBookingRequest(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		b := newPendingBooking(t)
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Empty(t, b.Jobs())
	})

	t.Run("rejects an unknown rate source", func(t *testing.T) {
		_, err := booking.NewBookingRequest(
			kernel.NewUUID(), kernel.NewUUID(), "SPOT",
			kernel.NewUUID(), kernel.NewUUID(),
		)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestBookingConfirm(t *testing.T) {
	t.Run("moves pending to confirmed", func(t *testing.T) {
		b := newPendingBooking(t)
		tc := cseContext()
		tc.Payload = booking.ConfirmPayload{}

		effects, err := b.ApplyTransition(booking.TransitionConfirm, tc)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		require.Len(t, effects, 1)
		assert.True(t, effects[0].UserID.IsEqual(b.RaisedBy()))
	})

	t.Run("a failing validity check blocks confirmation", func(t *testing.T) {
		b := newPendingBooking(t)
		tc := cseContext()
		tc.Payload = booking.ConfirmPayload{
			ValidityCheck: func(*booking.BookingRequest) error {
				return errors.New("quote expired 2024-05-01")
			},
		}

		_, err := b.ApplyTransition(booking.TransitionConfirm, tc)
		assert.ErrorIs(t, err, errs.ErrGuardViolation)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("override bypasses the validity check", func(t *testing.T) {
		b := newPendingBooking(t)
		tc := cseContext()
		tc.Payload = booking.ConfirmPayload{
			OverrideValidity: true,
			ValidityCheck: func(*booking.BookingRequest) error {
				return errors.New("quote expired 2024-05-01")
			},
		}

		_, err := b.ApplyTransition(booking.TransitionConfirm, tc)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("cannot confirm twice", func(t *testing.T) {
		b := newPendingBooking(t)
		tc := cseContext()
		tc.Payload = booking.ConfirmPayload{}
		_, err := b.ApplyTransition(booking.TransitionConfirm, tc)
		require.NoError(t, err)

		_, err = b.ApplyTransition(booking.TransitionConfirm, tc)
		assert.ErrorIs(t, err, errs.ErrGuardViolation)
	})
}

func TestBookingCancel(t *testing.T) {
	t.Run("records the reason", func(t *testing.T) {
		b := newPendingBooking(t)
		tc := cseContext()
		tc.Payload = booking.CancelPayload{Reason: "customer withdrew the order"}

		effects, err := b.ApplyTransition(booking.TransitionCancel, tc)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, "customer withdrew the order", b.CancelReason())
		require.Len(t, effects, 1)
		assert.Contains(t, effects[0].Body, "customer withdrew the order")
	})

	t.Run("requires a reason", func(t *testing.T) {
		b := newPendingBooking(t)
		tc := cseContext()
		tc.Payload = booking.CancelPayload{}

		_, err := b.ApplyTransition(booking.TransitionCancel, tc)
		assert.ErrorIs(t, err, errs.ErrGuardViolation)
	})

	t.Run("confirmed bookings can still be cancelled", func(t *testing.T) {
		b := newPendingBooking(t)
		tc := cseContext()
		tc.Payload = booking.ConfirmPayload{}
		_, err := b.ApplyTransition(booking.TransitionConfirm, tc)
		require.NoError(t, err)

		tc.Payload = booking.CancelPayload{Reason: "vessel rollover"}
		_, err = b.ApplyTransition(booking.TransitionCancel, tc)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		b := newPendingBooking(t)
		tc := cseContext()
		tc.Payload = booking.CancelPayload{Reason: "duplicate booking"}
		_, err := b.ApplyTransition(booking.TransitionCancel, tc)
		require.NoError(t, err)

		_, err = b.ApplyTransition(booking.TransitionCancel, tc)
		assert.ErrorIs(t, err, errs.ErrGuardViolation)
	})
}

func TestBookingJobs(t *testing.T) {
	t.Run("open and complete a job", func(t *testing.T) {
		b := newPendingBooking(t)
		job, err := booking.NewJob("JOB-2024-0042", kernel.NewUUID())
		require.NoError(t, err)
		b.OpenJob(job)

		found, err := b.Job(job.ID())
		require.NoError(t, err)
		assert.False(t, found.IsFulfilled())

		cse := kernel.NewUUID()
		completion, err := found.Complete(cse, []byte(`{"teus":2}`))
		require.NoError(t, err)
		assert.True(t, completion.CseUser().IsEqual(cse))
		assert.True(t, found.IsFulfilled())
	})

	t.Run("unknown job lookup fails", func(t *testing.T) {
		b := newPendingBooking(t)
		_, err := b.Job(kernel.NewUUID())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
