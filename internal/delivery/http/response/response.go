// Package response shapes the API's JSON envelope. Every body carries a
// `success` flag; recoverable failures are reported with HTTP 200 and
// success:false, and only unexpected errors surface as HTTP 500.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Body is the unified API response structure. User and Plants are typed by
// the handler layer; absent fields are omitted, but an empty plant list is
// still serialized as [] when a non-nil slice is supplied.
type Body struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    any    `json:"user,omitempty"`
	Plants  any    `json:"plants,omitempty"`
}

// OK reports a successful operation with a message only.
func OK(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Body{Success: true, Message: message})
}

// OKWithUser reports success together with the public user identity.
func OKWithUser(c echo.Context, message string, user any) error {
	return c.JSON(http.StatusOK, Body{Success: true, Message: message, User: user})
}

// OKWithPlants reports success together with the full plant list.
func OKWithPlants(c echo.Context, message string, plants any) error {
	return c.JSON(http.StatusOK, Body{Success: true, Message: message, Plants: plants})
}

// Fail reports a recoverable, user-facing failure. By contract this is an
// application-level failure, not a transport one, so the status is 200.
func Fail(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Body{Success: false, Message: message})
}

// ServerError reports an unexpected failure with a generic message. Internal
// detail never reaches the client.
func ServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, Body{Success: false, Message: "Server error"})
}
