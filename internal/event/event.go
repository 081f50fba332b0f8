package event

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// Event is the result of parsing a natural language event description.
// All fields are resolved: Calendar is never the empty string and Start/End
// are absolute instants in the caller's timezone.
type Event struct {
	Title    string
	Calendar string
	Start    time.Time
	End      time.Time

	Location string
	Notes    string
	URL      string

	// Alerts holds lead times before Start, in the order they appeared
	// in the input. Empty when no alert phrase was given.
	Alerts []time.Duration

	// Recurrence is nil for one-off events.
	Recurrence *rrule.RRule

	// TimeInferred is true when the clock time carried no am/pm and the
	// business-hours heuristic picked one. Callers should surface the
	// resolved time to the user rather than trust it silently.
	TimeInferred bool
}

// Duration returns the event length.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Validate re-checks the invariants the parser establishes by construction.
func (e Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("event title is empty")
	}
	if e.Calendar == "" {
		return fmt.Errorf("event has no calendar")
	}
	if !e.End.After(e.Start) {
		return fmt.Errorf("event end %s is not after start %s",
			e.End.Format(time.RFC3339), e.Start.Format(time.RFC3339))
	}
	seen := make(map[time.Duration]bool, len(e.Alerts))
	for _, a := range e.Alerts {
		if a < 0 {
			return fmt.Errorf("negative alert lead time %s", a)
		}
		if seen[a] {
			return fmt.Errorf("duplicate alert lead time %s", a)
		}
		seen[a] = true
	}
	return nil
}

// Canonical returns a one-line form of the event that parses back to an
// event with the same title, calendar, start and end:
//
//	#Work Team sync 1/14/2025 2:00pm for 1 hour
func (e Event) Canonical() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%s %s %d/%d/%d %s for %s",
		e.Calendar,
		e.Title,
		int(e.Start.Month()), e.Start.Day(), e.Start.Year(),
		strings.ToLower(e.Start.Format("3:04pm")),
		durationWords(e.Duration()),
	)
	return b.String()
}

// durationWords renders a duration in the grammar the parser accepts:
// "2 hours", "1 hour", "90 minutes".
func durationWords(d time.Duration) string {
	mins := int(d.Minutes())
	if mins%60 == 0 {
		hours := mins / 60
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	if mins == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", mins)
}
