// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"time"

	"cloudeng.io/praytime/astronomy"
	"cloudeng.io/praytime/iran"
)

type sunFlags struct {
	CommonFlags
}

// sunTimes implements the sun command, an independent cross check of
// the solar events underlying the prayer time calculation.
func sunTimes(_ context.Context, values any, args []string) error {
	fl := values.(*sunFlags)
	if err := fl.validate(); err != nil {
		return err
	}
	city := iran.Tehran
	if len(args) > 0 {
		var err error
		if city, err = iran.ParseCity(args[0]); err != nil {
			return err
		}
	}
	pl, err := city.Place()
	if err != nil {
		return err
	}
	date, err := calendarDate(fl.Date, pl.TimeLocation)
	if err != nil {
		return err
	}
	rise, set := astronomy.SunRiseAndSet(date, pl)
	noon := astronomy.ApparentSolarNoon(date, pl)
	layout := fl.Layout
	if len(layout) == 0 {
		layout = "15:04:05"
	}
	report := sunReport{
		City:      city.String(),
		Date:      isoDate(date),
		Timezone:  pl.TimeLocation.String(),
		Latitude:  pl.Latitude,
		Longitude: pl.Longitude,
		Sunrise:   rise.Format(layout),
		SolarNoon: noon.Format(layout),
		Sunset:    set.Format(layout),
		DayLength: set.Sub(rise).Round(time.Second).String(),
	}
	return render(os.Stdout, fl.Format, report)
}
