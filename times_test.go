// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package praytime_test

import (
	"testing"
	"time"

	"cloudeng.io/praytime"
)

func exampleTimes() praytime.Times {
	loc := time.FixedZone("+0330", 12600)
	at := func(h, m, s int) time.Time {
		return time.Date(2026, 1, 2, h, m, s, 0, loc)
	}
	return praytime.Times{
		Fajr:     at(5, 44, 42),
		Sunrise:  at(7, 14, 21),
		Dhuhr:    at(12, 8, 15),
		Asr:      at(14, 44, 7),
		Sunset:   at(17, 2, 9),
		Maghrib:  at(17, 23, 9),
		Isha:     at(18, 12, 44),
		Midnight: at(23, 23, 31),
	}
}

func TestEventString(t *testing.T) {
	for _, tc := range []struct {
		event praytime.Event
		name  string
	}{
		{praytime.EventFajr, "Fajr"},
		{praytime.EventSunrise, "Sunrise"},
		{praytime.EventDhuhr, "Dhuhr"},
		{praytime.EventAsr, "Asr"},
		{praytime.EventSunset, "Sunset"},
		{praytime.EventMaghrib, "Maghrib"},
		{praytime.EventIsha, "Isha"},
		{praytime.EventMidnight, "Midnight"},
		{praytime.Event(-1), "Event(-1)"},
		{praytime.Event(8), "Event(8)"},
	} {
		if got, want := tc.event.String(), tc.name; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestEvents(t *testing.T) {
	events := praytime.Events()
	if got, want := len(events), 8; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := events[0], praytime.EventFajr; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := events[7], praytime.EventMidnight; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for i := 1; i < len(events); i++ {
		if events[i-1] >= events[i] {
			t.Errorf("events out of order: %v, %v", events[i-1], events[i])
		}
	}
}

func TestTimesTime(t *testing.T) {
	times := exampleTimes()
	for _, tc := range []struct {
		event praytime.Event
		want  time.Time
	}{
		{praytime.EventFajr, times.Fajr},
		{praytime.EventSunrise, times.Sunrise},
		{praytime.EventDhuhr, times.Dhuhr},
		{praytime.EventAsr, times.Asr},
		{praytime.EventSunset, times.Sunset},
		{praytime.EventMaghrib, times.Maghrib},
		{praytime.EventIsha, times.Isha},
		{praytime.EventMidnight, times.Midnight},
	} {
		if got, want := times.Time(tc.event), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.event, got, want)
		}
	}
	if got, want := times.Time(praytime.Event(99)), (time.Time{}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTimesFormat(t *testing.T) {
	times := exampleTimes()
	formatted := times.Format("")
	if got, want := len(formatted), 8; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := formatted["Fajr"], "05:44"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := formatted["Midnight"], "23:23"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	formatted = times.Format("15:04:05")
	if got, want := formatted["Asr"], "14:44:07"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	formatted = times.Format(time.Kitchen)
	if got, want := formatted["Sunset"], "5:02PM"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTimesString(t *testing.T) {
	want := `Prayer Times:
Fajr:     05:44
Sunrise:  07:14
Dhuhr:    12:08
Asr:      14:44
Sunset:   17:02
Maghrib:  17:23
Isha:     18:12
Midnight: 23:23`
	if got := exampleTimes().String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
