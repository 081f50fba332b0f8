package eventparse

import (
	"regexp"
	"sort"
	"strconv"
	"time"
)

// Alert phrase patterns. Fixed-lead phrases come before numeric ones so that
// "half an hour alert" is not half-matched by the "an hour" form.
var alertPatterns = []struct {
	re   *regexp.Regexp
	unit time.Duration // 0 means the pattern carries a fixed lead
	lead time.Duration
}{
	{re: regexp.MustCompile(`(?i)\b(?:with\s+)?half\s+an?\s+hour\s+(?:alert|reminder|before)\b`), lead: 30 * time.Minute},
	{re: regexp.MustCompile(`(?i)\b(?:with\s+)?an?\s+hour\s+(?:alert|reminder|before)\b`), lead: time.Hour},
	{re: regexp.MustCompile(`(?i)\b(?:with\s+)?(\d+)\s*min(?:ute)?s?\s*(?:alert|reminder)\b`), unit: time.Minute},
	{re: regexp.MustCompile(`(?i)\b(?:with\s+)?(\d+)\s*(?:hours?|hrs?)\s*(?:alert|reminder|before)\b`), unit: time.Hour},
	{re: regexp.MustCompile(`(?i)\b(?:alert|remind(?:er)?)(?:\s+me)?\s+(\d+)\s*min(?:ute)?s?\s+before\b`), unit: time.Minute},
	{re: regexp.MustCompile(`(?i)\b(?:alert|remind(?:er)?)(?:\s+me)?\s+(\d+)\s*(?:hours?|hrs?)\s+before\b`), unit: time.Hour},
}

// extractAlerts consumes every alert/reminder phrase and returns the lead
// times in the order they appeared, deduplicated.
func extractAlerts(text string) (string, []time.Duration, *Error) {
	type hit struct {
		pos  int
		lead time.Duration
	}
	var hits []hit

	for _, p := range alertPatterns {
		for {
			m := p.re.FindStringSubmatchIndex(text)
			if m == nil {
				break
			}

			lead := p.lead
			if p.unit != 0 {
				n, err := strconv.Atoi(text[m[2]:m[3]])
				if err != nil {
					return "", nil, newError(CodeInvalidAlert, "alert amount "+text[m[2]:m[3]]+" is out of range")
				}
				lead = time.Duration(n) * p.unit
			}

			hits = append(hits, hit{pos: m[0], lead: lead})
			text = text[:m[0]] + " " + text[m[1]:]
		}
	}

	if len(hits) == 0 {
		return text, nil, nil
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	seen := make(map[time.Duration]bool, len(hits))
	alerts := make([]time.Duration, 0, len(hits))
	for _, h := range hits {
		if seen[h.lead] {
			continue
		}
		seen[h.lead] = true
		alerts = append(alerts, h.lead)
	}

	return text, alerts, nil
}
