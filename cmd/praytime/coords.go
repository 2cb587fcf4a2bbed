// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/praytime"
)

type coordsFlags struct {
	CommonFlags
	Latitude  float64 `subcmd:"latitude,35.6892,latitude of the place in degrees north"`
	Longitude float64 `subcmd:"longitude,51.3890,longitude of the place in degrees east"`
	Timezone  string  `subcmd:"timezone,Asia/Tehran,IANA timezone of the place"`
}

// coordsTimes implements the coords command.
func coordsTimes(ctx context.Context, values any, _ []string) error {
	fl := values.(*coordsFlags)
	if err := fl.validate(); err != nil {
		return err
	}
	ctx, done, err := loggingContext(ctx, &fl.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	calc, err := fl.calculator()
	if err != nil {
		return err
	}
	loc, err := time.LoadLocation(fl.Timezone)
	if err != nil {
		return fmt.Errorf("%w: %v", praytime.ErrConfiguration, err)
	}
	pl := datetime.Place{
		TimeLocation: loc,
		Latitude:     fl.Latitude,
		Longitude:    fl.Longitude,
	}
	date, err := calendarDate(fl.Date, loc)
	if err != nil {
		return err
	}
	logSaturation(ctx, calc.Parameters(), date, pl)
	times, err := calc.Calculate(date, pl)
	if err != nil {
		return err
	}
	return render(os.Stdout, fl.Format, newTimesReport(date, pl, times, fl.Layout))
}
