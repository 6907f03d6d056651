// Package util contains small shared helpers.
package util

import (
	"time"

	"github.com/pkg/errors"
)

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
}

// ParseDate parses a client-supplied date string. Clients send either a bare
// date ("2024-01-01") or a full RFC 3339 timestamp, so both are accepted.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Errorf("unrecognized date format: %q", value)
}

// FormatDate renders a date the way the API serializes it ("2006-01-02").
// The zero time renders as an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.DateOnly)
}
