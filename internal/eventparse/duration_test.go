package eventparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractForDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"hours", "workshop for 2 hours", 2 * time.Hour},
		{"single hour", "call for 1 hr", time.Hour},
		{"minutes", "standup for 15 min", 15 * time.Minute},
		{"minutes spelled out", "standup for 90 minutes", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, got, perr := extractForDuration(tt.input)
			require.Nil(t, perr)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
			assert.NotContains(t, rest, "for")
		})
	}
}

func TestExtractForDurationAbsent(t *testing.T) {
	rest, got, perr := extractForDuration("lunch for fun")
	require.Nil(t, perr)
	assert.Nil(t, got)
	assert.Equal(t, "lunch for fun", rest)
}

// A duration amount too large to read as an int is unsupported grammar, not
// a start/end ordering problem.
func TestExtractForDurationOverflow(t *testing.T) {
	_, _, perr := extractForDuration("offsite for 99999999999999999999 hours")
	require.NotNil(t, perr)
	assert.Equal(t, CodeUnsupportedGrammar, perr.Code)
}

func TestExtractTimeRange(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantStart    timeOfDay
		wantEnd      timeOfDay
		wantInferred bool
	}{
		{
			name:         "trailing meridiem covers both",
			input:        "sync 2-3pm",
			wantStart:    timeOfDay{hour: 14},
			wantEnd:      timeOfDay{hour: 15},
			wantInferred: true,
		},
		{
			name:         "range crossing noon",
			input:        "offsite 11-1pm",
			wantStart:    timeOfDay{hour: 11},
			wantEnd:      timeOfDay{hour: 13},
			wantInferred: true,
		},
		{
			name:      "both meridiems explicit",
			input:     "conference 8am to 9pm",
			wantStart: timeOfDay{hour: 8},
			wantEnd:   timeOfDay{hour: 21},
		},
		{
			name:      "to separator with minutes",
			input:     "review 1:30pm to 2:15pm",
			wantStart: timeOfDay{hour: 13, minute: 30},
			wantEnd:   timeOfDay{hour: 14, minute: 15},
		},
		{
			name:      "24-hour with minutes on both sides",
			input:     "maintenance 22:00-23:30",
			wantStart: timeOfDay{hour: 22},
			wantEnd:   timeOfDay{hour: 23, minute: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, perr := extractTimeRange(tt.input)
			require.Nil(t, perr)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantStart, got.start)
			assert.Equal(t, tt.wantEnd, got.end)
			assert.Equal(t, tt.wantInferred, got.inferred)
		})
	}
}

// A bare "3-4" with neither meridiem nor minutes stays in the title.
func TestExtractTimeRangeLeavesBareRange(t *testing.T) {
	rest, got, perr := extractTimeRange("review chapters 3-4 tomorrow at 2pm")
	require.Nil(t, perr)
	assert.Nil(t, got)
	assert.Equal(t, "review chapters 3-4 tomorrow at 2pm", rest)
}

func TestExtractTimeRangeAmbiguous(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  Code
	}{
		{"no consistent completion", "meeting 2pm to 1", CodeAmbiguousTimeRange},
		{"reversed explicit range", "meeting 3pm to 1pm", CodeInvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, perr := extractTimeRange(tt.input)
			require.NotNil(t, perr)
			assert.Equal(t, tt.code, perr.Code)
		})
	}
}
