package eventparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const monthAlt = `(?:january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec)`

var (
	todayRe    = regexp.MustCompile(`(?i)\b(today|tomorrow)\b`)
	weekdayRe  = regexp.MustCompile(`(?i)\b(?:(next)\s+)?(` + weekdayAlt + `)\b`)
	slashRe    = regexp.MustCompile(`(?i)\b(?:on\s+)?(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)
	monthDayRe = regexp.MustCompile(`(?i)\b(?:on\s+)?(` + monthAlt + `)\s+(\d{1,2})(?:\s+(\d{4}))?\b`)
	dayMonthRe = regexp.MustCompile(`(?i)\b(?:on\s+)?(\d{1,2})\s+(` + monthAlt + `)(?:\s+(\d{4}))?\b`)
)

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// extractDate consumes a date expression and returns the resolved day at
// midnight in now's location. Returns nil when no date expression is found.
func extractDate(text string, now time.Time) (string, *time.Time, *Error) {
	if m := todayRe.FindStringSubmatchIndex(text); m != nil {
		d := truncateToDay(now)
		if strings.EqualFold(text[m[2]:m[3]], "tomorrow") {
			d = d.AddDate(0, 0, 1)
		}
		return spliceOut(text, m[0], m[1]), &d, nil
	}

	if m := weekdayRe.FindStringSubmatchIndex(text); m != nil {
		wd := weekdayNames[strings.ToLower(text[m[4]:m[5]])]
		// A bare weekday that matches today's weekday resolves to today;
		// "next <weekday>" is always strictly in the future.
		strict := m[2] != -1
		d := upcomingWeekday(now, wd, strict)
		return spliceOut(text, m[0], m[1]), &d, nil
	}

	if m := slashRe.FindStringSubmatchIndex(text); m != nil {
		month, _ := strconv.Atoi(text[m[2]:m[3]])
		day, _ := strconv.Atoi(text[m[4]:m[5]])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return "", nil, newError(CodeUnrecognizedDateTime,
				fmt.Sprintf("%d/%d is not a valid m/d date", month, day))
		}

		year := now.Year()
		if m[6] != -1 {
			y, _ := strconv.Atoi(text[m[6]:m[7]])
			if y < 100 {
				y += 2000
			}
			year = y
		}

		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
		return spliceOut(text, m[0], m[1]), &d, nil
	}

	if m := monthDayRe.FindStringSubmatchIndex(text); m != nil {
		month := monthNames[strings.ToLower(text[m[2]:m[3]])]
		day, _ := strconv.Atoi(text[m[4]:m[5]])
		return spliceMonthDay(text, m, month, day, m[6], m[7], now)
	}

	if m := dayMonthRe.FindStringSubmatchIndex(text); m != nil {
		day, _ := strconv.Atoi(text[m[2]:m[3]])
		month := monthNames[strings.ToLower(text[m[4]:m[5]])]
		return spliceMonthDay(text, m, month, day, m[6], m[7], now)
	}

	return text, nil, nil
}

func spliceMonthDay(text string, m []int, month time.Month, day int, yearFrom, yearTo int, now time.Time) (string, *time.Time, *Error) {
	if day < 1 || day > 31 {
		return "", nil, newError(CodeUnrecognizedDateTime,
			fmt.Sprintf("day %d is out of range for %s", day, month))
	}

	year := now.Year()
	if yearFrom != -1 {
		year, _ = strconv.Atoi(text[yearFrom:yearTo])
	}

	d := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	return spliceOut(text, m[0], m[1]), &d, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// upcomingWeekday returns the next occurrence of wd on or after today.
// With strict set, today never qualifies.
func upcomingWeekday(now time.Time, wd time.Weekday, strict bool) time.Time {
	today := truncateToDay(now)
	daysAhead := (int(wd) - int(today.Weekday()) + 7) % 7
	if daysAhead == 0 && strict {
		daysAhead = 7
	}
	return today.AddDate(0, 0, daysAhead)
}
