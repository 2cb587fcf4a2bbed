// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package praytime

import (
	"fmt"
	"strings"
	"time"
)

// Event identifies one of the times of day calculated by this package.
type Event int

const (
	EventFajr Event = iota
	EventSunrise
	EventDhuhr
	EventAsr
	EventSunset
	EventMaghrib
	EventIsha
	EventMidnight
)

var eventNames = [...]string{
	"Fajr", "Sunrise", "Dhuhr", "Asr", "Sunset", "Maghrib", "Isha", "Midnight",
}

// String implements fmt.Stringer.
func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return fmt.Sprintf("Event(%d)", int(e))
	}
	return eventNames[e]
}

// Events returns every event in chronological order, which is also the
// order in which Times lists them.
func Events() []Event {
	return []Event{
		EventFajr, EventSunrise, EventDhuhr, EventAsr,
		EventSunset, EventMaghrib, EventIsha, EventMidnight,
	}
}

// Times contains the times calculated for a single date and place. All
// of the values carry the timezone of the place they were calculated
// for. Midnight, the midpoint between sunset and the following day's
// Fajr, generally falls on the following calendar date.
type Times struct {
	Fajr     time.Time
	Sunrise  time.Time
	Dhuhr    time.Time
	Asr      time.Time
	Sunset   time.Time
	Maghrib  time.Time
	Isha     time.Time
	Midnight time.Time
}

// Time returns the time of the specified event, or the zero time for
// an unknown event.
func (t Times) Time(event Event) time.Time {
	switch event {
	case EventFajr:
		return t.Fajr
	case EventSunrise:
		return t.Sunrise
	case EventDhuhr:
		return t.Dhuhr
	case EventAsr:
		return t.Asr
	case EventSunset:
		return t.Sunset
	case EventMaghrib:
		return t.Maghrib
	case EventIsha:
		return t.Isha
	case EventMidnight:
		return t.Midnight
	}
	return time.Time{}
}

// Format returns the time of every event rendered with the specified
// layout (in time.Layout terms), keyed by the event's name. An empty
// layout defaults to "15:04".
func (t Times) Format(layout string) map[string]string {
	if layout == "" {
		layout = "15:04"
	}
	formatted := make(map[string]string, len(eventNames))
	for _, event := range Events() {
		formatted[event.String()] = t.Time(event).Format(layout)
	}
	return formatted
}

// String implements fmt.Stringer.
func (t Times) String() string {
	var sb strings.Builder
	sb.WriteString("Prayer Times:")
	for _, event := range Events() {
		fmt.Fprintf(&sb, "\n%-9s %s", event.String()+":", t.Time(event).Format("15:04"))
	}
	return sb.String()
}
