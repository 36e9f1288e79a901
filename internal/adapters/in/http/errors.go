package http

import (
	"errors"
	"net/http"

	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

type errorKind struct {
	target error
	status int
	name   string
}

var errorKinds = []errorKind{
	{errs.ErrUnauthorized, http.StatusForbidden, "Unauthorized"},
	{errs.ErrInvalidState, http.StatusConflict, "InvalidState"},
	{errs.ErrInvalidArgument, http.StatusBadRequest, "InvalidArgument"},
	{errs.ErrAmountMismatch, http.StatusUnprocessableEntity, "AmountMismatch"},
	{errs.ErrPreconditionFailed, http.StatusPreconditionFailed, "PreconditionFailed"},
	{errs.ErrNotConfigured, http.StatusFailedDependency, "NotConfigured"},
	{errs.ErrDuplicateOrder, http.StatusConflict, "DuplicateOrder"},
	{errs.ErrObjectNotFound, http.StatusNotFound, "NotFound"},
	{errs.ErrVersionIsInvalid, http.StatusConflict, "ConcurrentUpdate"},
	{errs.ErrValueIsRequired, http.StatusBadRequest, "InvalidArgument"},
	{errs.ErrValueIsInvalid, http.StatusBadRequest, "InvalidArgument"},
	{errs.ErrValueIsOutOfRange, http.StatusBadRequest, "InvalidArgument"},
}

// statusFor maps a domain error to its HTTP status and kind name.
func statusFor(err error) (int, string) {
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return k.status, k.name
		}
	}
	return http.StatusInternalServerError, "Internal"
}

func errorResponse(c echo.Context, status int, kind, message string) error {
	return c.JSON(status, Error{Code: status, Kind: kind, Message: message})
}

// fail writes err as an Error body. Rule violations carry their reason as
// the message; unexpected errors are logged and hidden.
func (s *Server) fail(c echo.Context, err error) error {
	status, kind := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		return errorResponse(c, status, kind, "Internal error")
	}

	return errorResponse(c, status, kind, errs.Reason(err))
}
