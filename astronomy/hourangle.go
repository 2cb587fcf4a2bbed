// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"math"

	"github.com/soniakeys/unit"
)

// TransitHourAngle returns the hour angle at which the centre of the
// sun reaches the specified geometric altitude for an observer at the
// specified latitude, given the solar declination for the date in
// question. Altitudes below the horizon are negative.
//
// The result is clamped to [0, pi]. When the sun never rises to the
// altitude the result saturates at 0 and when it never descends to it
// the result saturates at pi; use Saturated to detect the degenerate
// geometries that arise inside the polar circles.
func TransitHourAngle(altitude, latitude, declination unit.Angle) unit.HourAngle {
	cosHA := (math.Sin(altitude.Rad()) - math.Sin(latitude.Rad())*math.Sin(declination.Rad())) /
		(math.Cos(latitude.Rad()) * math.Cos(declination.Rad()))
	return unit.HourAngle(math.Acos(clamp(cosHA)))
}

// AsrHourAngle returns the hour angle at which the shadow of an object
// exceeds its noon shadow by shadowRatio times the object's height.
// A ratio of 1 corresponds to the Shafii school of the asr prayer, 2
// to the Hanafi school. The result saturates exactly as for
// TransitHourAngle.
func AsrHourAngle(shadowRatio float64, latitude, declination unit.Angle) unit.HourAngle {
	// |latitude - declination| is the zenith angle of the sun at noon.
	noonZenith := math.Abs(latitude.Rad() - declination.Rad())
	altitude := unit.Angle(math.Atan(1 / (shadowRatio + math.Tan(noonZenith))))
	return TransitHourAngle(altitude, latitude, declination)
}

// Saturated reports whether the hour angle was clamped at one of its
// extremes, ie. whether the sun fails to cross the requested altitude
// on the date in question.
func Saturated(ha unit.HourAngle) bool {
	return ha.Rad() == 0 || ha.Rad() == math.Pi
}

func clamp(cosine float64) float64 {
	return math.Max(-1, math.Min(1, cosine))
}
