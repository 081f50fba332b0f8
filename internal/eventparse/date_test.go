package eventparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDate(t *testing.T) {
	// testNow is Monday, January 13, 2025.
	tests := []struct {
		name   string
		input  string
		want   time.Time
		noDate bool
	}{
		{
			name:  "today",
			input: "meeting today",
			want:  time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "tomorrow",
			input: "meeting tomorrow",
			want:  time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "weekday later this week",
			input: "dinner friday",
			want:  time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "weekday matching today stays today",
			input: "checkin monday",
			want:  time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "next weekday skips today",
			input: "checkin next monday",
			want:  time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "abbreviated weekday",
			input: "lunch fri",
			want:  time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "next abbreviated weekday",
			input: "checkin next mon",
			want:  time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "slash date",
			input: "due 1/31",
			want:  time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "slash date with on",
			input: "due on 2/14",
			want:  time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "slash date with two-digit year",
			input: "due 1/31/26",
			want:  time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "month day",
			input: "review march 14",
			want:  time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "abbreviated month with year",
			input: "kickoff feb 3 2026",
			want:  time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "day month order",
			input: "review 14 march",
			want:  time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "no date expression",
			input:  "meeting at 2pm",
			noDate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, got, perr := extractDate(tt.input, testNow)
			require.Nil(t, perr)

			if tt.noDate {
				assert.Nil(t, got)
				assert.Equal(t, tt.input, rest)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestExtractDateInvalid(t *testing.T) {
	_, _, perr := extractDate("party 13/45", testNow)
	require.NotNil(t, perr)
	assert.Equal(t, CodeUnrecognizedDateTime, perr.Code)
}

func TestUpcomingWeekday(t *testing.T) {
	monday := time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), upcomingWeekday(monday, time.Monday, false))
	assert.Equal(t, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), upcomingWeekday(monday, time.Monday, true))
	assert.Equal(t, time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), upcomingWeekday(monday, time.Sunday, false))
}
