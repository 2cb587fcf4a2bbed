// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package praytime

import (
	"fmt"
	"math"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/praytime/astronomy"
	"github.com/soniakeys/unit"
)

// Calculator calculates prayer times using a fixed set of parameters.
// Calculators are immutable and safe for concurrent use.
type Calculator struct {
	params Parameters
}

// New returns a Calculator using the supplied parameters, which are
// validated first.
func New(p Parameters) (*Calculator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{params: p}, nil
}

var defaultCalculator = &Calculator{params: DefaultParameters()}

// Default returns a shared Calculator using DefaultParameters.
func Default() *Calculator {
	return defaultCalculator
}

// Parameters returns the parameters the calculator was created with.
func (c *Calculator) Parameters() Parameters {
	return c.params
}

// Calculate returns the times for the specified date at the specified
// place. The returned times are in place.TimeLocation with every event
// anchored to the UTC offset in effect at the start of the date, so
// Midnight, and at extreme latitudes or longitudes far from the
// timezone's meridian other events too, may fall outside the date
// itself.
func (c *Calculator) Calculate(date datetime.CalendarDate, place datetime.Place) (Times, error) {
	if err := validatePlace(place); err != nil {
		return Times{}, err
	}
	loc := place.TimeLocation
	startOfDay := time.Date(date.Year(), time.Month(date.Month()), date.Day(), 0, 0, 0, 0, loc)
	_, offsetSeconds := startOfDay.Zone()
	offsetMinutes := float64(offsetSeconds / 60)

	latitude := unit.AngleFromDeg(place.Latitude)
	jd := astronomy.JulianDay(date)
	noon, decl := solarDay(jd, place.Longitude)

	riseSetHA := astronomy.TransitHourAngle(unit.AngleFromDeg(c.params.RiseSetAltitude), latitude, decl)
	fajrHA := astronomy.TransitHourAngle(unit.AngleFromDeg(-c.params.FajrAngle), latitude, decl)
	ishaHA := astronomy.TransitHourAngle(unit.AngleFromDeg(-c.params.IshaAngle), latitude, decl)
	asrHA := astronomy.AsrHourAngle(c.params.AsrShadowRatio, latitude, decl)

	local := func(d datetime.CalendarDate, utcMinutes float64) time.Time {
		return localTime(d, utcMinutes+offsetMinutes, loc)
	}

	sunset := local(date, noon+riseSetHA.Min())
	times := Times{
		Fajr:    local(date, noon-fajrHA.Min()),
		Sunrise: local(date, noon-riseSetHA.Min()),
		Dhuhr:   local(date, noon),
		Asr:     local(date, noon+asrHA.Min()),
		Sunset:  sunset,
		Maghrib: sunset.Add(c.params.MaghribOffset),
		Isha:    local(date, noon+ishaHA.Min()),
	}

	// The Islamic midnight bisects the night, ie. the interval from
	// sunset to the following day's Fajr, which needs the ephemeris
	// for the following day.
	nextNoon, nextDecl := solarDay(jd+1, place.Longitude)
	nextFajrHA := astronomy.TransitHourAngle(unit.AngleFromDeg(-c.params.FajrAngle), latitude, nextDecl)
	nextFajr := local(astronomy.CalendarDateFromJD(jd+1), nextNoon-nextFajrHA.Min())
	times.Midnight = sunset.Add(nextFajr.Sub(sunset) / 2)
	return times, nil
}

// solarDay returns the apparent solar noon, in minutes since UTC
// midnight, and the solar declination for the specified julian day
// and longitude.
func solarDay(jd, longitude float64) (noon float64, declination unit.Angle) {
	decl, eqOfTime := astronomy.SolarPosition(jd)
	return 720 - 4*longitude - eqOfTime.Min(), decl
}

// localTime converts minutes since UTC midnight, already adjusted by
// the timezone offset, to a clock time on the specified date, rounded
// to the nearest second. Values outside [0, 1440) roll over into the
// neighbouring dates.
func localTime(date datetime.CalendarDate, minutes float64, loc *time.Location) time.Time {
	seconds := int(minutes*60 + 0.5)
	return time.Date(date.Year(), time.Month(date.Month()), date.Day(), 0, 0, seconds, 0, loc)
}

func validatePlace(place datetime.Place) error {
	if place.TimeLocation == nil {
		return fmt.Errorf("%w: place has no time location", ErrConfiguration)
	}
	if math.IsNaN(place.Latitude) || place.Latitude < -90 || place.Latitude > 90 {
		return fmt.Errorf("%w: latitude must be in -90..90: %v", ErrConfiguration, place.Latitude)
	}
	if math.IsNaN(place.Longitude) || place.Longitude < -180 || place.Longitude > 180 {
		return fmt.Errorf("%w: longitude must be in -180..180: %v", ErrConfiguration, place.Longitude)
	}
	return nil
}
