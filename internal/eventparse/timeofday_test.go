package eventparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTimeOfDay(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		want         timeOfDay
		wantInferred bool
		noTime       bool
	}{
		{
			name:  "explicit pm",
			input: "meeting at 2pm",
			want:  timeOfDay{hour: 14},
		},
		{
			name:  "explicit am with minutes",
			input: "standup at 9:15am",
			want:  timeOfDay{hour: 9, minute: 15},
		},
		{
			name:  "noon",
			input: "lunch 12pm",
			want:  timeOfDay{hour: 12},
		},
		{
			name:  "midnight",
			input: "launch 12am",
			want:  timeOfDay{hour: 0},
		},
		{
			name:         "bare hour reads as afternoon",
			input:        "meet at 5",
			want:         timeOfDay{hour: 17},
			wantInferred: true,
		},
		{
			name:         "bare hour reads as morning",
			input:        "jog at 8",
			want:         timeOfDay{hour: 8},
			wantInferred: true,
		},
		{
			name:         "bare noon",
			input:        "lunch at 12",
			want:         timeOfDay{hour: 12},
			wantInferred: true,
		},
		{
			name:         "colon time in business window",
			input:        "sync at 3:30",
			want:         timeOfDay{hour: 15, minute: 30},
			wantInferred: true,
		},
		{
			name:  "24-hour colon time",
			input: "release at 14:30",
			want:  timeOfDay{hour: 14, minute: 30},
		},
		{
			name:   "no clock time",
			input:  "meeting tomorrow",
			noTime: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, inferred, perr := extractTimeOfDay(tt.input)
			require.Nil(t, perr)

			if tt.noTime {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
			assert.Equal(t, tt.wantInferred, inferred)
		})
	}
}

func TestExtractTimeOfDayInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"13pm", "meeting at 13pm"},
		{"minute out of range", "meeting at 25:99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, perr := extractTimeOfDay(tt.input)
			require.NotNil(t, perr)
			assert.Equal(t, CodeUnrecognizedDateTime, perr.Code)
		})
	}
}
