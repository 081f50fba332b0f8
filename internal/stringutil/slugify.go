package stringutil

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a string to a filesystem-friendly slug: lowercased,
// non-alphanumeric runs collapsed to single hyphens, edges trimmed.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}

// EventFilename derives an .ics filename from an event title. Long titles
// are cut short; an unusable title falls back to "event".
func EventFilename(title string) string {
	s := Slugify(title)
	if len(s) > 48 {
		s = strings.Trim(s[:48], "-")
	}
	if s == "" {
		s = "event"
	}
	return s + ".ics"
}
