// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"cloudeng.io/errors"
	"cloudeng.io/praytime/iran"
)

type cityFlags struct {
	CommonFlags
}

// cityTimes implements the city command. Each argument names one of
// the supported Iranian cities; a bad name does not prevent the
// remaining cities from being reported.
func cityTimes(ctx context.Context, values any, args []string) error {
	fl := values.(*cityFlags)
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
	var reports timesReports
	var errs errors.M
	for _, arg := range args {
		city, err := iran.ParseCity(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		report, err := cityReport(ctx, city, fl.Date, calc, fl.Layout)
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", city, err))
			continue
		}
		reports = append(reports, report)
	}
	if len(reports) > 0 {
		errs.Append(render(os.Stdout, fl.Format, reports))
	}
	return errs.Err()
}
