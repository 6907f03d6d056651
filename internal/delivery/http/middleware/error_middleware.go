package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "sprout/internal/delivery/context"
	"sprout/internal/delivery/http/response"
	domainerrors "sprout/internal/domain/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
//
// Recoverable domain failures (any AppError below the 500 class) are part of
// the API contract: they go out as HTTP 200 with success:false and the
// error's user-facing message. Everything else is logged and collapsed to a
// generic 500 so no internal detail leaks.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() < http.StatusInternalServerError {
			_ = response.Fail(c, appErr.Message())

			return
		}

		logger.Error("Internal application error",
			"error", err.Error(),
			"code", appErr.ErrorCode(),
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
		)
		_ = response.ServerError(c)

		return
	}

	// Echo's own HTTPError (404, 405, body too large, ...) keeps its status.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = c.JSON(httpErr.Code, response.Body{Success: false, Message: message})

		return
	}

	// Default to internal error, log and return a generic response.
	logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)
	_ = response.ServerError(c)
}
