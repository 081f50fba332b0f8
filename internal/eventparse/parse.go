// Package eventparse turns one line of free-form text describing a calendar
// event into a validated event record. Parsing is a pure function of the
// input text, the caller's clock and timezone, and the configured default
// calendar; there is no I/O and no state shared between calls.
package eventparse

import (
	"regexp"
	"time"

	"github.com/ariestwn/quickcal/internal/event"
)

var (
	nowKeywordRe = regexp.MustCompile(`(?i)\bnow\b`)
	// Phrasings that cannot be resolved reliably. Recognized and rejected
	// explicitly so the user gets a clear message instead of a silently
	// wrong event.
	relativeInRe = regexp.MustCompile(`(?i)\bin\s+\d+\s*(?:min(?:ute)?s?|hours?|days?|weeks?)\b`)
	dateRangeRe  = regexp.MustCompile(`(?i)\bfrom\s+(?:[a-z]+\s+\d{1,2}|\d{1,2}/\d{1,2}(?:/\d{2,4})?)\s*(?:-|to)\s*(?:[a-z]+\s+\d{1,2}|\d{1,2}/\d{1,2}(?:/\d{2,4})?)\b`)
)

// defaultDuration applies when the input fixes a start but no end.
const defaultDuration = time.Hour

// Parse parses text into an event record. now anchors relative expressions
// ("tomorrow", "next monday"), loc is the timezone events resolve in (now's
// location when nil), and defaultCalendar is used when the input carries no
// "#calendar" tag. Failures are *Error values; no partial event is ever
// returned.
func Parse(text string, now time.Time, loc *time.Location, defaultCalendar string) (event.Event, error) {
	if loc == nil {
		loc = now.Location()
	}
	now = now.In(loc)

	working, calendar := extractCalendar(text)

	working, fields, perr := splitMarkers(working)
	if perr != nil {
		return event.Event{}, perr
	}

	working, location := extractLocation(working)

	working, alerts, perr := extractAlerts(working)
	if perr != nil {
		return event.Event{}, perr
	}

	working, duration, perr := extractForDuration(working)
	if perr != nil {
		return event.Event{}, perr
	}

	working, timeRange, perr := extractTimeRange(working)
	if perr != nil {
		return event.Event{}, perr
	}

	working, rec, perr := extractRecurrence(working, now)
	if perr != nil {
		return event.Event{}, perr
	}

	if m := relativeInRe.FindString(working); m != "" {
		return event.Event{}, newError(CodeUnsupportedGrammar, `"`+m+`" is not supported; name a time instead`)
	}
	if m := dateRangeRe.FindString(working); m != "" {
		return event.Event{}, newError(CodeUnsupportedGrammar, `multi-day range "`+m+`" is not supported`)
	}

	working, start, end, inferred, perr := resolveStartEnd(working, now, duration, timeRange, rec)
	if perr != nil {
		return event.Event{}, perr
	}

	title, perr := assembleTitle(working)
	if perr != nil {
		return event.Event{}, perr
	}

	if calendar == "" {
		calendar = defaultCalendar
	}

	ev := event.Event{
		Title:        title,
		Calendar:     calendar,
		Start:        start,
		End:          end,
		Location:     location,
		Notes:        fields.Notes,
		URL:          fields.URL,
		Alerts:       alerts,
		TimeInferred: inferred,
	}

	if rec != nil {
		rule, err := rec.rule(start)
		if err != nil {
			return event.Event{}, newError(CodeUnsupportedGrammar, "recurrence: "+err.Error())
		}
		ev.Recurrence = rule
	}

	if !ev.End.After(ev.Start) {
		return event.Event{}, newError(CodeInvalidTimeRange,
			"end "+ev.End.Format("15:04")+" is not after start "+ev.Start.Format("15:04"))
	}

	return ev, nil
}

// resolveStartEnd combines the date, clock time, duration and time-range
// fragments into absolute start and end instants. Resolution order: the
// literal "now", then an explicit date plus clock time, with missing dates
// defaulting to today (or to the recurrence weekday when one was given).
func resolveStartEnd(text string, now time.Time, duration *time.Duration, timeRange *clockRange, rec *recurrence) (string, time.Time, time.Time, bool, *Error) {
	dur := defaultDuration
	if duration != nil {
		dur = *duration
	}

	if m := nowKeywordRe.FindStringIndex(text); m != nil {
		start := now.Truncate(time.Minute)
		return spliceOut(text, m[0], m[1]), start, start.Add(dur), false, nil
	}

	text, date, perr := extractDate(text, now)
	if perr != nil {
		return "", time.Time{}, time.Time{}, false, perr
	}

	day := anchorDay(date, now, rec)

	if timeRange != nil {
		start := day.Add(time.Duration(timeRange.start.hour)*time.Hour + time.Duration(timeRange.start.minute)*time.Minute)
		end := day.Add(time.Duration(timeRange.end.hour)*time.Hour + time.Duration(timeRange.end.minute)*time.Minute)
		return text, start, end, timeRange.inferred, nil
	}

	text, tod, inferred, perr := extractTimeOfDay(text)
	if perr != nil {
		return "", time.Time{}, time.Time{}, false, perr
	}
	if tod == nil {
		return "", time.Time{}, time.Time{}, false, newError(CodeUnrecognizedDateTime, "no time of day found")
	}

	start := day.Add(time.Duration(tod.hour)*time.Hour + time.Duration(tod.minute)*time.Minute)
	return text, start, start.Add(dur), inferred, nil
}

// anchorDay picks the day an event lands on when no explicit date was given:
// the next matching recurrence weekday, if any, otherwise today.
func anchorDay(date *time.Time, now time.Time, rec *recurrence) time.Time {
	if date != nil {
		return *date
	}
	if rec != nil && len(rec.byWeekday) > 0 {
		best := time.Time{}
		for _, wd := range rec.byWeekday {
			d := upcomingWeekday(now, rruleToWeekday(wd), false)
			if best.IsZero() || d.Before(best) {
				best = d
			}
		}
		return best
	}
	return truncateToDay(now)
}
