package eventparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

const weekdayAlt = `(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tue|wed|thu|fri|sat|sun)`

var (
	everyRe = regexp.MustCompile(`(?i)\bevery\s+(day|week|month|year|` + weekdayAlt + `)` +
		`((?:\s+and\s+` + weekdayAlt + `)*)` +
		`(?:\s+until\s+(\d{1,2}/\d{1,2}(?:/\d{2,4})?))?\b`)
	bareFreqRe = regexp.MustCompile(`(?i)\b(daily|weekly|monthly|yearly|annually)\b`)
	andDayRe   = regexp.MustCompile(`(?i)\b` + weekdayAlt + `\b`)
)

var rruleWeekdays = map[string]rrule.Weekday{
	"monday": rrule.MO, "mon": rrule.MO,
	"tuesday": rrule.TU, "tue": rrule.TU,
	"wednesday": rrule.WE, "wed": rrule.WE,
	"thursday": rrule.TH, "thu": rrule.TH,
	"friday": rrule.FR, "fri": rrule.FR,
	"saturday": rrule.SA, "sat": rrule.SA,
	"sunday": rrule.SU, "sun": rrule.SU,
}

// recurrence is the parsed form of an "every ..." phrase. The RRULE itself
// is built later, once the start instant is known.
type recurrence struct {
	freq      rrule.Frequency
	byWeekday []rrule.Weekday
	until     *time.Time
}

// rule builds the RRULE anchored at the event start.
func (r *recurrence) rule(start time.Time) (*rrule.RRule, error) {
	opt := rrule.ROption{
		Freq:      r.freq,
		Byweekday: r.byWeekday,
		Dtstart:   start,
	}
	if r.until != nil {
		opt.Until = *r.until
	}
	return rrule.NewRRule(opt)
}

// extractRecurrence consumes an "every ..." phrase (or a bare
// daily/weekly/monthly/yearly keyword) and returns the parsed rule parts.
func extractRecurrence(text string, now time.Time) (string, *recurrence, *Error) {
	if m := everyRe.FindStringSubmatchIndex(text); m != nil {
		group := func(i int) string {
			if m[2*i] == -1 {
				return ""
			}
			return text[m[2*i]:m[2*i+1]]
		}

		rec := &recurrence{}
		head := strings.ToLower(group(1))
		switch head {
		case "day":
			rec.freq = rrule.DAILY
		case "week":
			rec.freq = rrule.WEEKLY
		case "month":
			rec.freq = rrule.MONTHLY
		case "year":
			rec.freq = rrule.YEARLY
		default:
			rec.freq = rrule.WEEKLY
			rec.byWeekday = append(rec.byWeekday, rruleWeekdays[head])
		}

		// "and wednesday and friday" ...
		if tail := group(2); tail != "" {
			for _, d := range andDayRe.FindAllString(strings.ToLower(tail), -1) {
				rec.byWeekday = append(rec.byWeekday, rruleWeekdays[d])
			}
		}

		if u := group(3); u != "" {
			until, perr := parseUntilDate(u, now)
			if perr != nil {
				return "", nil, perr
			}
			rec.until = &until
		}

		return spliceOut(text, m[0], m[1]), rec, nil
	}

	if m := bareFreqRe.FindStringSubmatchIndex(text); m != nil {
		rec := &recurrence{}
		switch strings.ToLower(text[m[2]:m[3]]) {
		case "daily":
			rec.freq = rrule.DAILY
		case "weekly":
			rec.freq = rrule.WEEKLY
		case "monthly":
			rec.freq = rrule.MONTHLY
		default:
			rec.freq = rrule.YEARLY
		}
		return spliceOut(text, m[0], m[1]), rec, nil
	}

	return text, nil, nil
}

// rruleToWeekday converts rrule's Monday-first weekday numbering to the
// standard library's Sunday-first one.
func rruleToWeekday(wd rrule.Weekday) time.Weekday {
	return time.Weekday((wd.Day() + 1) % 7)
}

// parseUntilDate parses the "until m/d[/yy]" bound. A yearless date that has
// already passed rolls over to next year. The bound covers the whole day.
func parseUntilDate(s string, now time.Time) (time.Time, *Error) {
	parts := strings.Split(s, "/")

	month, _ := strconv.Atoi(parts[0])
	day, _ := strconv.Atoi(parts[1])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, newError(CodeUnsupportedGrammar, "until date "+s+" is not a valid m/d date")
	}

	year := now.Year()
	if len(parts) == 3 {
		y, _ := strconv.Atoi(parts[2])
		if y < 100 {
			y += 2000
		}
		year = y
	}

	until := time.Date(year, time.Month(month), day, 23, 59, 59, 0, now.Location())
	if len(parts) == 2 && until.Before(now) {
		until = until.AddDate(1, 0, 0)
	}
	return until, nil
}
