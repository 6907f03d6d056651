package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "bare date", input: "2024-01-01", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", input: "2024-03-15T08:30:00Z", want: time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)},
		{name: "rfc3339 with millis", input: "2024-03-15T08:30:00.000Z", want: time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "yesterday", "01/02/2024"} {
		_, err := ParseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-01-01", FormatDate(time.Date(2024, 1, 1, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, "", FormatDate(time.Time{}))
}
