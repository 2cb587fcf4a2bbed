// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"time"

	"cloudeng.io/datetime"
	"github.com/nathan-osman/go-sunrise"
)

// SunRiseAndSet returns the times of sunrise and sunset for the
// specified date and place, in the place's timezone.
func SunRiseAndSet(date datetime.CalendarDate, place datetime.Place) (rise, set time.Time) {
	rise, set = sunrise.SunriseSunset(
		place.Latitude, place.Longitude,
		date.Year(), time.Month(date.Month()), date.Day())
	return rise.In(place.TimeLocation), set.In(place.TimeLocation)
}

// ApparentSolarNoon returns the time at which the sun crosses the
// meridian of the specified place, calculated as the midpoint of
// sunrise and sunset.
func ApparentSolarNoon(date datetime.CalendarDate, place datetime.Place) time.Time {
	rise, set := SunRiseAndSet(date, place)
	return rise.Add(set.Sub(rise) / 2)
}
