// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"math"

	"cloudeng.io/datetime"
	"github.com/mooncaker816/learnmeeus/v3/julian"
)

// JulianDay returns the julian day for midnight at the start of the
// specified Gregorian calendar date, ie. the returned value always has
// a fractional part of 0.5. Adding n to the result yields the julian
// day n calendar days later.
func JulianDay(date datetime.CalendarDate) float64 {
	year, month := date.Year(), int(date.Month())
	if month <= 2 {
		year--
		month += 12
	}
	a := year / 100
	b := 2 - a + a/4
	return math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		float64(date.Day()) + float64(b) - 1524.5
}

// CalendarDateFromJD returns the Gregorian calendar date containing
// the specified julian day.
func CalendarDateFromJD(jd float64) datetime.CalendarDate {
	y, m, d := julian.JDToCalendar(jd)
	return datetime.NewCalendarDate(y, datetime.Month(m), int(d))
}
