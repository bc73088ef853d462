package errs_test

import (
	"errors"
	"testing"

	"freightflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("rateRequestId", "123")

		assert.Equal(t, "rateRequestId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("rateRequestId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: rateRequestId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("cancelReason")

	assert.Equal(t, "cancelReason", err.ParamName)
	assert.Equal(t, "value is required: cancelReason", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("weight", -5, 0, 100000)

	assert.Equal(t, "weight", err.ParamName)
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is out of range: -5 is weight, min value is 0, max value is 100000", err.Error())
	assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	assert.False(t, errors.Is(err, errs.ErrValueIsInvalid))
}

func TestGuardViolationError(t *testing.T) {
	t.Run("NewGuardViolationError", func(t *testing.T) {
		err := errs.NewGuardViolationError("complete", "rate request is not in processing status")

		assert.Equal(t, "complete", err.Transition)
		assert.Equal(t,
			"guard violation: complete: rate request is not in processing status",
			err.Error())
		assert.Equal(t, errs.ErrGuardViolation, err.Unwrap())
		assert.True(t, errors.Is(err, errs.ErrGuardViolation))
	})

	t.Run("NewGuardViolationErrorWithCause", func(t *testing.T) {
		cause := errors.New("vessel name is missing")
		err := errs.NewGuardViolationErrorWithCause("respond", "vessel details are required", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"guard violation: respond: vessel details are required (cause: vessel name is missing)",
			err.Error())
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewGuardViolationError("cancel", "bad\nreason")
		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "bad reason")
	})
}

func TestStateConflictError(t *testing.T) {
	err := errs.NewStateConflictError("bookingRequest", "abc-123")

	assert.Equal(t, "bookingRequest", err.ParamName)
	assert.Equal(t, "state conflict: bookingRequest abc-123 was modified concurrently", err.Error())
	assert.Equal(t, errs.ErrStateConflict, err.Unwrap())
	assert.True(t, errors.Is(err, errs.ErrStateConflict))
}
