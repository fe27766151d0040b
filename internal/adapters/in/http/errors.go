package http

import (
	"errors"
	"net/http"

	"dispatch/internal/adapters/out/snapshot"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the JSON body of every failure response.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Reason is set for order rejections.
	Reason string `json:"reason,omitempty"`
	// InvalidCodes lists the ignored tokens of a batch with no valid code.
	InvalidCodes []string `json:"invalidCodes,omitempty"`
}

// ErrorHandler writes err as an ErrorBody. Server errors are logged and their
// message is replaced with a generic one.
func (s *Server) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	body := errorBody(err)
	if body.Code >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err,
		)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(body.Code)
		return
	}
	_ = c.JSON(body.Code, body)
}

func errorBody(err error) ErrorBody {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
		return ErrorBody{Code: httpErr.Code, Message: message}
	}

	if reason, ok := order.ReasonOf(err); ok {
		body := ErrorBody{Code: http.StatusUnprocessableEntity, Message: err.Error(), Reason: string(reason)}
		var noCodes *commands.NoCodesError
		if errors.As(err, &noCodes) {
			body.InvalidCodes = noCodes.Invalid
		}
		return body
	}

	switch {
	case errors.Is(err, queries.ErrLocked):
		return ErrorBody{Code: http.StatusForbidden, Message: "locked"}
	case errors.Is(err, errs.ErrObjectNotFound):
		return ErrorBody{Code: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, snapshot.ErrNotADocument):
		return ErrorBody{Code: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrNoCouriers):
		return ErrorBody{Code: http.StatusUnprocessableEntity, Message: err.Error()}
	}

	return ErrorBody{Code: http.StatusInternalServerError, Message: "internal server error"}
}

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}
