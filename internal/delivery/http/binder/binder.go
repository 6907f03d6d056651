// Package binder provides a strict JSON request binder. Client payloads are
// free-form by habit, so unknown fields are rejected at the boundary instead
// of being silently dropped.
package binder

import (
	"encoding/json"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StrictJSON is an echo.Binder that decodes JSON bodies with
// DisallowUnknownFields. Non-JSON requests fall through to echo's default
// binder.
type StrictJSON struct {
	fallback echo.DefaultBinder
}

// New creates the strict binder.
func New() *StrictJSON {
	return &StrictJSON{}
}

// Bind implements echo.Binder.
func (b *StrictJSON) Bind(i any, c echo.Context) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return errors.New("request body is empty")
	}

	contentType := req.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		return b.fallback.Bind(i, c)
	}

	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(i); err != nil {
		return errors.Wrap(err, "failed to decode request body")
	}

	return nil
}
