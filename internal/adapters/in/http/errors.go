package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"freightflow/internal/pkg/errs"
)

// errorResponse is the JSON body returned for failed requests.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps the application error taxonomy onto HTTP status codes.
// Not-found lookups become 404, lost optimistic-concurrency races 409,
// guard violations 422, validation failures 400, everything else 500.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrStateConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrGuardViolation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: message,
	})
}

// respondBindError reports a body that could not be decoded.
func respondBindError(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}
