package eventparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "team sync", "team sync"},
		{"collapses whitespace", "team   sync  ", "team sync"},
		{"trims stranded trailing at", "lunch at", "lunch"},
		{"trims stranded leading on", "on lunch", "lunch"},
		{"trims several stranded words", "dinner with at", "dinner"},
		{"keeps interior connectives", "lunch with sam", "lunch with sam"},
		{"trims punctuation", "  standup, ", "standup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, perr := assembleTitle(tt.input)
			require.Nil(t, perr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssembleTitleEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "at on for"} {
		_, perr := assembleTitle(input)
		require.NotNil(t, perr)
		assert.Equal(t, CodeEmptyTitle, perr.Code)
	}
}
