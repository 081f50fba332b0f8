package event

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatStart renders the event start relative to now:
// "Today at 2:00 PM", "Tomorrow at 9:30 AM", "Monday, January 20 at 2:00 PM".
func FormatStart(e Event, now time.Time) string {
	clock := e.Start.Format("3:04 PM")

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(e.Start.Year(), e.Start.Month(), e.Start.Day(), 0, 0, 0, 0, e.Start.Location())

	switch {
	case day.Equal(today):
		return "Today at " + clock
	case day.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow at " + clock
	default:
		return e.Start.Format("Monday, January 2") + " at " + clock
	}
}

// FormatAlerts renders alert lead times as "15m, 1h".
func FormatAlerts(alerts []time.Duration) string {
	parts := make([]string, len(alerts))
	for i, a := range alerts {
		parts[i] = formatLead(a)
	}
	return strings.Join(parts, ", ")
}

func formatLead(d time.Duration) string {
	mins := int(d.Minutes())
	if mins >= 60 && mins%60 == 0 {
		return fmt.Sprintf("%dh", mins/60)
	}
	return fmt.Sprintf("%dm", mins)
}

// FormatRecurrence returns a human-readable description of the event's
// recurrence rule, or "" for one-off events.
func FormatRecurrence(e Event) string {
	if e.Recurrence == nil {
		return ""
	}
	return describeRRule(e.Recurrence.OrigOptions.RRuleString())
}

// describeRRule turns an RRULE value ("FREQ=WEEKLY;BYDAY=MO,WE") into
// a phrase ("every Monday, Wednesday").
func describeRRule(s string) string {
	parts := make(map[string]string)
	for _, seg := range strings.Split(strings.ToUpper(s), ";") {
		kv := strings.SplitN(seg, "=", 2)
		if len(kv) == 2 {
			parts[kv[0]] = kv[1]
		}
	}

	freq := parts["FREQ"]
	byday := parts["BYDAY"]

	var out string
	switch {
	case freq == "WEEKLY" && byday != "":
		days := strings.Split(byday, ",")
		names := make([]string, len(days))
		for i, d := range days {
			names[i] = dayAbbrevToName(d)
		}
		out = "every " + strings.Join(names, ", ")
	case freq == "DAILY":
		out = "every day"
	case freq == "WEEKLY":
		out = "every week"
	case freq == "MONTHLY":
		out = "every month"
	case freq == "YEARLY":
		out = "every year"
	default:
		return s
	}

	if until, ok := parts["UNTIL"]; ok {
		if t, err := parseUntilStamp(until); err == nil {
			out += " until " + t.Format("Jan 2 2006")
		}
	}
	return out
}

func dayAbbrevToName(abbrev string) string {
	switch abbrev {
	case "MO":
		return "Monday"
	case "TU":
		return "Tuesday"
	case "WE":
		return "Wednesday"
	case "TH":
		return "Thursday"
	case "FR":
		return "Friday"
	case "SA":
		return "Saturday"
	case "SU":
		return "Sunday"
	}
	return abbrev
}

func parseUntilStamp(s string) (time.Time, error) {
	if len(s) >= 8 {
		if _, err := strconv.Atoi(s[:8]); err == nil {
			return time.Parse("20060102", s[:8])
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized UNTIL stamp %q", s)
}
