// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package praytime

import (
	"cloudeng.io/datetime"
)

// The types below implement datetime.DynamicTimeOfDay for each event,
// so that individual prayer times can be used anywhere the datetime
// package schedules dynamic times of day. A nil Calc is equivalent to
// Default(). Evaluate returns the zero TimeOfDay for places whose
// times cannot be calculated.

func evaluate(c *Calculator, event Event, cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	if c == nil {
		c = Default()
	}
	times, err := c.Calculate(cd, place)
	if err != nil {
		return datetime.NewTimeOfDay(0, 0, 0)
	}
	return datetime.TimeOfDayFromTime(times.Time(event))
}

// Fajr implements datetime.DynamicTimeOfDay for the morning prayer.
type Fajr struct{ Calc *Calculator }

func (f Fajr) Name() string {
	return "Fajr"
}

func (f Fajr) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return evaluate(f.Calc, EventFajr, cd, place)
}

// Sunrise implements datetime.DynamicTimeOfDay for sunrise.
type Sunrise struct{ Calc *Calculator }

func (s Sunrise) Name() string {
	return "Sunrise"
}

func (s Sunrise) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return evaluate(s.Calc, EventSunrise, cd, place)
}

// Dhuhr implements datetime.DynamicTimeOfDay for the noon prayer.
type Dhuhr struct{ Calc *Calculator }

func (d Dhuhr) Name() string {
	return "Dhuhr"
}

func (d Dhuhr) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return evaluate(d.Calc, EventDhuhr, cd, place)
}

// Asr implements datetime.DynamicTimeOfDay for the afternoon prayer.
type Asr struct{ Calc *Calculator }

func (a Asr) Name() string {
	return "Asr"
}

func (a Asr) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return evaluate(a.Calc, EventAsr, cd, place)
}

// Sunset implements datetime.DynamicTimeOfDay for sunset.
type Sunset struct{ Calc *Calculator }

func (s Sunset) Name() string {
	return "Sunset"
}

func (s Sunset) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return evaluate(s.Calc, EventSunset, cd, place)
}

// Maghrib implements datetime.DynamicTimeOfDay for the evening prayer.
type Maghrib struct{ Calc *Calculator }

func (m Maghrib) Name() string {
	return "Maghrib"
}

func (m Maghrib) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return evaluate(m.Calc, EventMaghrib, cd, place)
}

// Isha implements datetime.DynamicTimeOfDay for the night prayer.
type Isha struct{ Calc *Calculator }

func (i Isha) Name() string {
	return "Isha"
}

func (i Isha) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return evaluate(i.Calc, EventIsha, cd, place)
}

// Midnight implements datetime.DynamicTimeOfDay for the Islamic
// midnight, the midpoint between sunset and the following day's Fajr.
// Note that the returned time of day generally belongs to the calendar
// date following the one supplied.
type Midnight struct{ Calc *Calculator }

func (m Midnight) Name() string {
	return "Midnight"
}

func (m Midnight) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return evaluate(m.Calc, EventMidnight, cd, place)
}
