package eventparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLoc  string
		wantRest string
	}{
		{
			name:     "no marker",
			input:    "lunch tomorrow at 1pm",
			wantLoc:  "",
			wantRest: "lunch tomorrow at 1pm",
		},
		{
			name:     "location runs to date keyword",
			input:    "lunch @ Cafe Gratitude tomorrow at 1pm",
			wantLoc:  "Cafe Gratitude",
			wantRest: "lunch tomorrow at 1pm",
		},
		{
			name:     "location runs to clock time",
			input:    "sync @ room 4 at 2pm",
			wantLoc:  "room 4",
			wantRest: "sync at 2pm",
		},
		{
			name:     "location at end of input",
			input:    "tomorrow at 1pm lunch @ the park",
			wantLoc:  "the park",
			wantRest: "tomorrow at 1pm lunch ",
		},
		{
			name:     "no space after at-sign",
			input:    "lunch @Joes tomorrow at 1pm",
			wantLoc:  "Joes",
			wantRest: "lunch tomorrow at 1pm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, loc := extractLocation(tt.input)
			assert.Equal(t, tt.wantLoc, loc)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}
