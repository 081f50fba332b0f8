package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"
)

func TestFormatStart(t *testing.T) {
	now := time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  string
	}{
		{
			name:  "today",
			start: time.Date(2025, 1, 13, 14, 0, 0, 0, time.UTC),
			want:  "Today at 2:00 PM",
		},
		{
			name:  "tomorrow",
			start: time.Date(2025, 1, 14, 9, 30, 0, 0, time.UTC),
			want:  "Tomorrow at 9:30 AM",
		},
		{
			name:  "further out",
			start: time.Date(2025, 1, 20, 14, 0, 0, 0, time.UTC),
			want:  "Monday, January 20 at 2:00 PM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := sample()
			ev.Start = tt.start
			ev.End = tt.start.Add(time.Hour)
			assert.Equal(t, tt.want, FormatStart(ev, now))
		})
	}
}

func TestFormatAlerts(t *testing.T) {
	assert.Equal(t, "", FormatAlerts(nil))
	assert.Equal(t, "15m", FormatAlerts([]time.Duration{15 * time.Minute}))
	assert.Equal(t, "1h, 15m", FormatAlerts([]time.Duration{time.Hour, 15 * time.Minute}))
	assert.Equal(t, "90m", FormatAlerts([]time.Duration{90 * time.Minute}))
	assert.Equal(t, "2h", FormatAlerts([]time.Duration{2 * time.Hour}))
}

func TestFormatRecurrence(t *testing.T) {
	assert.Equal(t, "", FormatRecurrence(sample()))

	start := time.Date(2025, 1, 13, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		opt  rrule.ROption
		want string
	}{
		{
			name: "weekly with days",
			opt:  rrule.ROption{Freq: rrule.WEEKLY, Byweekday: []rrule.Weekday{rrule.MO, rrule.WE}, Dtstart: start},
			want: "every Monday, Wednesday",
		},
		{
			name: "daily",
			opt:  rrule.ROption{Freq: rrule.DAILY, Dtstart: start},
			want: "every day",
		},
		{
			name: "monthly",
			opt:  rrule.ROption{Freq: rrule.MONTHLY, Dtstart: start},
			want: "every month",
		},
		{
			name: "weekly with until",
			opt: rrule.ROption{
				Freq:      rrule.WEEKLY,
				Byweekday: []rrule.Weekday{rrule.TU},
				Dtstart:   start,
				Until:     time.Date(2025, 3, 14, 23, 59, 59, 0, time.UTC),
			},
			want: "every Tuesday until Mar 14 2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := rrule.NewRRule(tt.opt)
			require.NoError(t, err)

			ev := sample()
			ev.Recurrence = rule
			assert.Equal(t, tt.want, FormatRecurrence(ev))
		})
	}
}
