// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"cloudeng.io/praytime/iran"
	"cloudeng.io/sync/errgroup"
)

type citiesFlags struct {
	CommonFlags
	Times       bool `subcmd:"times,false,calculate the prayer times for every city"`
	Concurrency int  `subcmd:"concurrency,4,number of cities to calculate concurrently"`
}

// listCities implements the cities command. Without the times flag it
// lists the supported cities and their positions, with it the prayer
// times for every city are calculated concurrently.
func listCities(ctx context.Context, values any, _ []string) error {
	fl := values.(*citiesFlags)
	if err := fl.validate(); err != nil {
		return err
	}
	if !fl.Times {
		return render(os.Stdout, fl.Format, newCityList())
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
	cities := iran.Cities()
	reports := make(timesReports, len(cities))
	g := &errgroup.T{}
	g = errgroup.WithConcurrency(g, fl.Concurrency)
	for i, city := range cities {
		g.Go(func() error {
			report, err := cityReport(ctx, city, fl.Date, calc, fl.Layout)
			if err != nil {
				return fmt.Errorf("%v: %w", city, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return render(os.Stdout, fl.Format, reports)
}
