// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command praytime calculates Islamic prayer times (Fajr, Sunrise,
// Dhuhr, Asr, Sunset, Maghrib, Isha and the Islamic midnight) for the
// major Iranian cities or for arbitrary coordinates.
package main

import (
	"context"
	"fmt"
	"time"

	// The time commands must work on systems without a timezone
	// database.
	_ "time/tzdata"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/datetime"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/praytime"
	"cloudeng.io/praytime/astronomy"
	"github.com/soniakeys/unit"
)

var cmdSet *subcmd.CommandSet

// CommonFlags are shared by every subcommand.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Date   string `subcmd:"date,,'date to calculate for in YYYY-MM-DD form, defaulting to today at the place'"`
	Config string `subcmd:"config,,yaml file overriding the default calculation parameters"`
	Asr    string `subcmd:"asr,shafii,'asr shadow convention: shafii or hanafi'"`
	Format string `subcmd:"format,text,'output format: text, json or yaml'"`
	Layout string `subcmd:"layout,15:04:05,go time layout used to render each time of day"`
}

func init() {
	citiesCmd := subcmd.NewCommand("cities",
		subcmd.MustRegisterFlagStruct(&citiesFlags{}, nil, nil),
		listCities, subcmd.WithoutArguments())
	citiesCmd.Document("list the supported Iranian cities, optionally with their prayer times")

	cityCmd := subcmd.NewCommand("city",
		subcmd.MustRegisterFlagStruct(&cityFlags{}, nil, nil),
		cityTimes, subcmd.AtLeastNArguments(1))
	cityCmd.Document("calculate prayer times for the named Iranian cities", "<city>...")

	coordsCmd := subcmd.NewCommand("coords",
		subcmd.MustRegisterFlagStruct(&coordsFlags{}, nil, nil),
		coordsTimes, subcmd.WithoutArguments())
	coordsCmd.Document("calculate prayer times for an arbitrary position and timezone")

	sunCmd := subcmd.NewCommand("sun",
		subcmd.MustRegisterFlagStruct(&sunFlags{}, nil, nil),
		sunTimes, subcmd.OptionalSingleArgument())
	sunCmd.Document("show sunrise, solar noon and sunset for one of the supported cities", "[city]")

	cmdSet = subcmd.NewCommandSet(citiesCmd, cityCmd, coordsCmd, sunCmd)
	cmdSet.Document("calculate Islamic prayer times for the major Iranian cities or for arbitrary coordinates")
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

// validate checks the flag values that take one of a fixed set of
// values, reporting every offending flag.
func (cl *CommonFlags) validate() error {
	var errs errors.M
	errs.Append(flags.OneOf(cl.Asr).Validate("shafii", "hanafi"))
	errs.Append(flags.OneOf(cl.Format).Validate("text", "json", "yaml"))
	return errs.Err()
}

// calculator returns a calculator for the default parameters overlaid
// with the config file, if one is specified, and then the asr flag.
func (cl *CommonFlags) calculator() (*praytime.Calculator, error) {
	cfg := praytime.DefaultParameters().Config()
	if len(cl.Config) > 0 {
		if err := cmdutil.ParseYAMLConfigFile(cl.Config, &cfg); err != nil {
			return nil, err
		}
	}
	if cl.Asr == "hanafi" {
		cfg.AsrShadowRatio = 2
	}
	return praytime.New(cfg.Parameters())
}

// loggingContext attaches the logger configured by the logging flags
// to the context. The returned function closes the log file, if any.
func loggingContext(ctx context.Context, cl *CommonFlags) (context.Context, func(), error) {
	logger, err := cl.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.Context(ctx, logger.Logger), func() { _ = logger.Close() }, nil
}

// calendarDate interprets the date flag in the given timezone,
// defaulting to the current date there.
func calendarDate(date string, loc *time.Location) (datetime.CalendarDate, error) {
	var none datetime.CalendarDate
	if len(date) == 0 {
		now := time.Now().In(loc)
		return datetime.NewCalendarDate(now.Year(), datetime.Month(now.Month()), now.Day()), nil
	}
	when, err := time.ParseInLocation(time.DateOnly, date, loc)
	if err != nil {
		return none, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return datetime.NewCalendarDate(when.Year(), datetime.Month(when.Month()), when.Day()), nil
}

// logSaturation notes the events whose altitude the sun never crosses
// on the date at the place, as happens inside the polar circles. The
// calculation saturates rather than failing for such events.
func logSaturation(ctx context.Context, params praytime.Parameters, date datetime.CalendarDate, pl datetime.Place) {
	latitude := unit.AngleFromDeg(pl.Latitude)
	declination, _ := astronomy.SolarPosition(astronomy.JulianDay(date))
	saturated := func(event praytime.Event, ha unit.HourAngle) {
		if !astronomy.Saturated(ha) {
			return
		}
		ctxlog.Logger(ctx).Info("sun never crosses the altitude for the event",
			"event", event.String(), "date", date.String(), "latitude", pl.Latitude)
	}
	saturated(praytime.EventFajr, astronomy.TransitHourAngle(unit.AngleFromDeg(-params.FajrAngle), latitude, declination))
	saturated(praytime.EventSunrise, astronomy.TransitHourAngle(unit.AngleFromDeg(params.RiseSetAltitude), latitude, declination))
	saturated(praytime.EventAsr, astronomy.AsrHourAngle(params.AsrShadowRatio, latitude, declination))
	saturated(praytime.EventIsha, astronomy.TransitHourAngle(unit.AngleFromDeg(-params.IshaAngle), latitude, declination))
}
