// Package ics serializes parsed events as iCalendar files, the calendar
// backend the shell hands events to. Any calendar app that imports .ics
// (Calendar.app, Google Calendar, Outlook) can consume the output.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/ariestwn/quickcal/internal/event"
)

const productID = "-//quickcal//event parser//EN"

// Write renders a single event as a VCALENDAR document. stamp becomes the
// DTSTAMP/UID timestamp so output is reproducible in tests.
func Write(ev event.Event, stamp time.Time) ([]byte, error) {
	if err := ev.Validate(); err != nil {
		return nil, err
	}

	cal := ical.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ical.MethodPublish)

	uid := fmt.Sprintf("%d-quickcal", stamp.UTC().Unix())
	ve := cal.AddEvent(uid)
	ve.SetDtStampTime(stamp.UTC())
	ve.SetSummary(ev.Title)
	ve.SetStartAt(ev.Start)
	ve.SetEndAt(ev.End)

	if ev.Location != "" {
		ve.SetLocation(ev.Location)
	}
	if ev.Notes != "" {
		ve.SetDescription(ev.Notes)
	}
	if ev.URL != "" {
		ve.SetURL(ev.URL)
	}
	if ev.Recurrence != nil {
		ve.AddRrule(ev.Recurrence.OrigOptions.RRuleString())
	}

	for _, lead := range ev.Alerts {
		alarm := ve.AddAlarm()
		alarm.SetAction(ical.ActionDisplay)
		alarm.SetTrigger(fmt.Sprintf("-PT%dM", int(lead.Minutes())))
		alarm.SetProperty(ical.ComponentPropertyDescription, ev.Title)
	}

	return []byte(cal.Serialize()), nil
}
