// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package praytime calculates Islamic prayer and solar times (Fajr,
// Sunrise, Dhuhr, Asr, Sunset, Maghrib, Isha and the Islamic midnight)
// for an arbitrary date, geographic position and timezone.
//
// The calculation follows the usual solar geometry. For the requested
// date a low precision ephemeris yields the solar declination and the
// equation of time, from which the apparent solar noon at the
// requested longitude is derived. Each remaining time of day is the
// noon offset by the hour angle at which the sun reaches the altitude
// that defines the event, converted to local civil time using the UTC
// offset in effect at the start of the day. Two events are derived
// rather than solved for: Maghrib is a fixed duration after sunset, as
// practised in Iran, and the Islamic midnight is the midpoint between
// sunset and the following day's Fajr.
//
// The defaults in DefaultParameters follow the convention of the
// Institute of Geophysics of the University of Tehran: morning
// twilight at 17.7 degrees below the horizon, evening twilight at 14,
// the Shafii shadow ratio for Asr and Maghrib 21 minutes after sunset.
// All of them can be overridden:
//
//	calc, err := praytime.New(praytime.Parameters{
//		FajrAngle:       18,
//		IshaAngle:       15,
//		RiseSetAltitude: -0.833,
//		AsrShadowRatio:  2, // Hanafi
//		MaghribOffset:   20 * time.Minute,
//	})
//
// Times are calculated for a datetime.Place, pairing coordinates with
// a timezone:
//
//	place := datetime.Place{
//		TimeLocation: loc,
//		Latitude:     35.6892,
//		Longitude:    51.3890,
//	}
//	times, err := calc.Calculate(datetime.NewCalendarDate(2026, 1, 2), place)
//
// The returned times carry the place's timezone. Inside the polar
// circles the underlying hour angles saturate rather than fail: on
// days when the sun never reaches an altitude the associated events
// collapse onto solar noon, or spread a full half rotation away from
// it. Every time remains well defined on such days, but the usual
// ordering between events need not hold.
//
// The Fajr, Sunrise, Dhuhr, Asr, Sunset, Maghrib, Isha and Midnight
// types implement datetime.DynamicTimeOfDay so that individual prayer
// times can be used anywhere the datetime package schedules dynamic
// times of day.
package praytime
