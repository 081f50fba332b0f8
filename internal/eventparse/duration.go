package eventparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	forDurationRe = regexp.MustCompile(`(?i)\bfor\s+(\d+)\s*(hours?|hrs?|min(?:ute)?s?)\b`)
	timeRangeRe   = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s*(?:-|to)\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
)

// clockRange is a start/end pair of clock times extracted from a time-range
// phrase, not yet anchored to a date.
type clockRange struct {
	start    timeOfDay
	end      timeOfDay
	inferred bool
}

// extractForDuration consumes a "for N hours" / "for N minutes" phrase.
func extractForDuration(text string) (string, *time.Duration, *Error) {
	m := forDurationRe.FindStringSubmatchIndex(text)
	if m == nil {
		return text, nil, nil
	}

	n, err := strconv.Atoi(text[m[2]:m[3]])
	if err != nil {
		return "", nil, newError(CodeUnsupportedGrammar, "duration amount "+text[m[2]:m[3]]+" is out of range")
	}

	unit := time.Minute
	if text[m[4]] == 'h' || text[m[4]] == 'H' {
		unit = time.Hour
	}
	d := time.Duration(n) * unit

	return text[:m[0]] + " " + text[m[1]:], &d, nil
}

// extractTimeRange consumes a "2-3pm" / "2pm to 3:30pm" / "14:00-15:00"
// phrase and returns both clock times. A bare "3-4" with no meridiem and no
// minutes is left alone: it is far more likely to be part of the title than
// a time range.
func extractTimeRange(text string) (string, *clockRange, *Error) {
	m := timeRangeRe.FindStringSubmatchIndex(text)
	if m == nil {
		return text, nil, nil
	}

	group := func(i int) string {
		if m[2*i] == -1 {
			return ""
		}
		return text[m[2*i]:m[2*i+1]]
	}

	startHour, _ := strconv.Atoi(group(1))
	endHour, _ := strconv.Atoi(group(4))
	startMin := 0
	endMin := 0
	if g := group(2); g != "" {
		startMin, _ = strconv.Atoi(g)
	}
	if g := group(5); g != "" {
		endMin, _ = strconv.Atoi(g)
	}
	startMer := strings.ToLower(group(3))
	endMer := strings.ToLower(group(6))

	if startMer == "" && endMer == "" {
		// Unambiguous only as a 24-hour range with explicit minutes on
		// both sides ("14:00-15:30").
		if group(2) == "" || group(5) == "" {
			return text, nil, nil
		}
		if startHour > 23 || endHour > 23 || startMin > 59 || endMin > 59 {
			return "", nil, newError(CodeAmbiguousTimeRange, "clock values out of range in "+text[m[0]:m[1]])
		}
		cr := &clockRange{
			start: timeOfDay{hour: startHour, minute: startMin},
			end:   timeOfDay{hour: endHour, minute: endMin},
		}
		return spliceOut(text, m[0], m[1]), cr, nil
	}

	cr, perr := resolveRangeMeridiem(startHour, startMin, startMer, endHour, endMin, endMer, text[m[0]:m[1]])
	if perr != nil {
		return "", nil, perr
	}
	return spliceOut(text, m[0], m[1]), cr, nil
}

// resolveRangeMeridiem completes a half-specified am/pm pair. A missing
// meridiem is chosen so the range is positive and at most 12 hours; when no
// single choice satisfies that, the range is ambiguous.
func resolveRangeMeridiem(sh, sm int, smer string, eh, em int, emer string, phrase string) (*clockRange, *Error) {
	if smer != "" && (sh < 1 || sh > 12) {
		return nil, newError(CodeAmbiguousTimeRange, fmt.Sprintf("hour %d does not fit a 12-hour clock in %q", sh, phrase))
	}
	if emer != "" && (eh < 1 || eh > 12) {
		return nil, newError(CodeAmbiguousTimeRange, fmt.Sprintf("hour %d does not fit a 12-hour clock in %q", eh, phrase))
	}
	if sm > 59 || em > 59 {
		return nil, newError(CodeAmbiguousTimeRange, "minutes out of range in "+phrase)
	}

	// Both meridiems spelled out: nothing to infer, any positive range is
	// accepted (the 12-hour cap only applies to guessed meridiems).
	if smer != "" && emer != "" {
		s24, e24 := to24Hour(sh, smer), to24Hour(eh, emer)
		if e24*60+em <= s24*60+sm {
			return nil, newError(CodeInvalidTimeRange, "end is not after start in "+phrase)
		}
		return &clockRange{
			start: timeOfDay{hour: s24, minute: sm},
			end:   timeOfDay{hour: e24, minute: em},
		}, nil
	}

	candidates := func(hour int, mer string) []int {
		if mer != "" {
			return []int{to24Hour(hour, mer)}
		}
		if hour > 12 {
			return []int{hour} // already 24-hour
		}
		return []int{to24Hour(hour, "am"), to24Hour(hour, "pm")}
	}

	type pick struct{ s, e int }
	var valid []pick
	for _, s24 := range candidates(sh, smer) {
		for _, e24 := range candidates(eh, emer) {
			startMins := s24*60 + sm
			endMins := e24*60 + em
			if endMins > startMins && endMins-startMins <= 12*60 {
				valid = append(valid, pick{s24, e24})
			}
		}
	}

	if len(valid) != 1 {
		return nil, newError(CodeAmbiguousTimeRange, "cannot pick am/pm for "+phrase)
	}

	return &clockRange{
		start:    timeOfDay{hour: valid[0].s, minute: sm},
		end:      timeOfDay{hour: valid[0].e, minute: em},
		inferred: smer == "" || emer == "",
	}, nil
}

func to24Hour(hour int, meridiem string) int {
	if meridiem == "pm" {
		if hour != 12 {
			return hour + 12
		}
		return 12
	}
	if hour == 12 {
		return 0
	}
	return hour
}

func spliceOut(text string, from, to int) string {
	return text[:from] + " " + text[to:]
}
