// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astronomy provides the solar calculations required to turn a
// calendar date and a position on the earth into the times of day at
// which the sun reaches a given altitude: a low precision solar
// ephemeris, hour angle solutions and sunrise/sunset calculations.
package astronomy

import (
	"math"

	"github.com/soniakeys/unit"
)

// j2000 is the julian day of the standard J2000.0 epoch.
const j2000 = 2451545.0

// SolarPosition returns the declination of the sun and the equation of
// time for the specified julian day. The calculation uses the low
// precision ephemeris published in the Astronomical Almanac, which is
// good to well under a minute of time for dates within a few decades
// of J2000.0.
func SolarPosition(jd float64) (declination unit.Angle, eqOfTime unit.Time) {
	d := jd - j2000
	g := radians(357.529 + 0.98560028*d) // mean anomaly
	q := 280.459 + 0.98564736*d          // mean longitude, degrees
	// Apparent ecliptic longitude, corrected for the equation of
	// the center.
	l := radians(normDeg(q + 1.915*math.Sin(g) + 0.020*math.Sin(2*g)))
	e := radians(23.439 - 0.00000036*d) // mean obliquity of the ecliptic

	ra := degrees(math.Atan2(math.Cos(e)*math.Sin(l), math.Cos(l)))
	if ra < 0 {
		ra += 360
	}
	declination = unit.Angle(math.Asin(math.Sin(e) * math.Sin(l)))

	// The equation of time is the difference between the sun's mean
	// longitude and its right ascension, wrapped to +/- 180 degrees
	// so that it stays continuous across the year boundary, at 4
	// minutes of time per degree.
	delta := normDeg(q) - ra
	if delta > 180 {
		delta -= 360
	}
	if delta < -180 {
		delta += 360
	}
	eqOfTime = unit.TimeFromMin(4 * delta)
	return
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// normDeg normalizes an angle in degrees to the range [0, 360).
func normDeg(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}
