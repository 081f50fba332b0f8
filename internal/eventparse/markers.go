package eventparse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	markerRe = regexp.MustCompile(`(?i)\b(url|notes):`)
	// scheme://rest with no embedded whitespace
	urlShapeRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://\S+$`)
	// #name, #"multi word name" or #'multi word name'
	calendarRe = regexp.MustCompile(`^\s*#(?:"([^"]+)"|'([^']+)'|([\p{L}\p{N}_-]+))\s*`)
)

// markerFields holds the text captured by `url:` and `notes:` markers.
type markerFields struct {
	URL   string
	Notes string
}

// splitMarkers removes marker-introduced fields from the input. A field runs
// from its marker to the next marker or end of input, whichever comes first;
// when a marker repeats, the first occurrence wins. Text before the first
// marker is returned as the body.
func splitMarkers(text string) (string, markerFields, *Error) {
	var f markerFields

	locs := markerRe.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return text, f, nil
	}

	body := text[:locs[0][0]]

	for i, m := range locs {
		name := strings.ToLower(text[m[2]:m[3]])
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		value := strings.TrimSpace(text[m[1]:end])

		switch name {
		case "url":
			if f.URL != "" {
				continue
			}
			if !urlShapeRe.MatchString(value) {
				return "", f, newError(CodeInvalidURL, "url: value "+strconv.Quote(value)+" has no scheme")
			}
			f.URL = value
		case "notes":
			if f.Notes != "" {
				continue
			}
			f.Notes = value
		}
	}

	return body, f, nil
}

// extractCalendar consumes a leading "#name" calendar selector. The name
// keeps the casing the user typed; a "#" anywhere else in the input is
// literal text.
func extractCalendar(text string) (string, string) {
	m := calendarRe.FindStringSubmatchIndex(text)
	if m == nil {
		return text, ""
	}
	var name string
	for i := 1; i <= 3; i++ {
		if m[2*i] != -1 {
			name = text[m[2*i] : m[2*i+1]]
			break
		}
	}
	return text[m[1]:], name
}
