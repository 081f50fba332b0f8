package eventparse

import (
	"regexp"
	"strings"
)

var (
	locationStartRe = regexp.MustCompile(`(?:^|\s)@\s*`)
	// Words that end a location span: a date/time keyword or the start of a
	// clock time. RE2 has no lookahead, so the boundary is found separately
	// and the location is cut in front of it.
	locationEndRe = regexp.MustCompile(`(?i)\b(?:at\s+\d|\d{1,2}(?::\d{2})?\s*(?:am|pm)\b|tomorrow\b|today\b|next\s|every\s|on\s+(?:mon|tue|wed|thu|fri|sat|sun))`)
)

// extractLocation consumes an "@place" marker. The place runs to the next
// date/time keyword or end of input.
func extractLocation(text string) (string, string) {
	m := locationStartRe.FindStringIndex(text)
	if m == nil {
		return text, ""
	}

	rest := text[m[1]:]
	end := len(rest)
	if b := locationEndRe.FindStringIndex(rest); b != nil {
		end = b[0]
	}

	location := strings.TrimSpace(rest[:end])
	remaining := text[:m[0]] + " " + rest[end:]
	if location == "" {
		return remaining, ""
	}
	return remaining, location
}
