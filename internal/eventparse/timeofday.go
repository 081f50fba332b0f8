package eventparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	clockMeridiemRe = regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	clockColonRe    = regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2}):(\d{2})\b`)
	atBareHourRe    = regexp.MustCompile(`(?i)\bat\s+(\d{1,2})\b`)
)

// timeOfDay is a 24-hour clock time without a date.
type timeOfDay struct {
	hour   int
	minute int
}

// extractTimeOfDay consumes a clock-time phrase, together with a leading
// "at". Times without am/pm fall back to the 7am-7pm business-hours
// heuristic; inferred reports when that guess was made.
func extractTimeOfDay(text string) (remaining string, tod *timeOfDay, inferred bool, err *Error) {
	if m := clockMeridiemRe.FindStringSubmatchIndex(text); m != nil {
		hour, _ := strconv.Atoi(text[m[2]:m[3]])
		minute := 0
		if m[4] != -1 {
			minute, _ = strconv.Atoi(text[m[4]:m[5]])
		}
		meridiem := strings.ToLower(text[m[6]:m[7]])

		if hour < 1 || hour > 12 {
			return "", nil, false, newError(CodeUnrecognizedDateTime,
				fmt.Sprintf("hour %d does not fit a 12-hour clock", hour))
		}
		if minute > 59 {
			return "", nil, false, newError(CodeUnrecognizedDateTime,
				fmt.Sprintf("minute %d is out of range", minute))
		}

		return spliceOut(text, m[0], m[1]), &timeOfDay{hour: to24Hour(hour, meridiem), minute: minute}, false, nil
	}

	if m := clockColonRe.FindStringSubmatchIndex(text); m != nil {
		hour, _ := strconv.Atoi(text[m[2]:m[3]])
		minute, _ := strconv.Atoi(text[m[4]:m[5]])

		if hour > 23 || minute > 59 {
			return "", nil, false, newError(CodeUnrecognizedDateTime,
				fmt.Sprintf("%02d:%02d is not a valid clock time", hour, minute))
		}

		h24, guessed := inferMeridiem(hour)
		return spliceOut(text, m[0], m[1]), &timeOfDay{hour: h24, minute: minute}, guessed, nil
	}

	if m := atBareHourRe.FindStringSubmatchIndex(text); m != nil {
		hour, _ := strconv.Atoi(text[m[2]:m[3]])
		if hour > 23 {
			return "", nil, false, newError(CodeUnrecognizedDateTime,
				fmt.Sprintf("hour %d is out of range", hour))
		}

		h24, guessed := inferMeridiem(hour)
		return spliceOut(text, m[0], m[1]), &timeOfDay{hour: h24}, guessed, nil
	}

	return text, nil, false, nil
}

// inferMeridiem maps a bare 12-hour value into the 7am-7pm business window:
// 7-11 read as morning, 1-6 and 12 as afternoon. Values of 0 or 13+ are
// already unambiguous 24-hour times.
func inferMeridiem(hour int) (h24 int, inferred bool) {
	switch {
	case hour >= 7 && hour <= 11:
		return hour, true
	case hour >= 1 && hour <= 6:
		return hour + 12, true
	case hour == 12:
		return 12, true
	default:
		return hour, false
	}
}
