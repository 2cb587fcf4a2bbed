// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"cloudeng.io/datetime"
	"cloudeng.io/praytime"
	"cloudeng.io/praytime/iran"
	"github.com/go-universal/jalaali"
	"gopkg.in/yaml.v3"
)

// renderable is implemented by every report produced by the
// subcommands; json and yaml renderings are derived from the field
// tags.
type renderable interface {
	writeText(w io.Writer)
}

func render(w io.Writer, format string, report renderable) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	report.writeText(w)
	return nil
}

// timesReport is the output of the city, coords and cities commands.
type timesReport struct {
	City        string  `json:"city,omitempty" yaml:"city,omitempty"`
	PersianName string  `json:"persian_name,omitempty" yaml:"persian_name,omitempty"`
	Date        string  `json:"date" yaml:"date"`
	JalaliDate  string  `json:"jalali_date,omitempty" yaml:"jalali_date,omitempty"`
	Timezone    string  `json:"timezone" yaml:"timezone"`
	Latitude    float64 `json:"latitude" yaml:"latitude"`
	Longitude   float64 `json:"longitude" yaml:"longitude"`
	Fajr        string  `json:"fajr" yaml:"fajr"`
	Sunrise     string  `json:"sunrise" yaml:"sunrise"`
	Dhuhr       string  `json:"dhuhr" yaml:"dhuhr"`
	Asr         string  `json:"asr" yaml:"asr"`
	Sunset      string  `json:"sunset" yaml:"sunset"`
	Maghrib     string  `json:"maghrib" yaml:"maghrib"`
	Isha        string  `json:"isha" yaml:"isha"`
	Midnight    string  `json:"midnight" yaml:"midnight"`
}

func isoDate(date datetime.CalendarDate) string {
	return fmt.Sprintf("%04d-%02d-%02d", date.Year(), date.Month(), date.Day())
}

func newTimesReport(date datetime.CalendarDate, pl datetime.Place, times praytime.Times, layout string) timesReport {
	if len(layout) == 0 {
		layout = "15:04:05"
	}
	return timesReport{
		Date:      isoDate(date),
		Timezone:  pl.TimeLocation.String(),
		Latitude:  pl.Latitude,
		Longitude: pl.Longitude,
		Fajr:      times.Fajr.Format(layout),
		Sunrise:   times.Sunrise.Format(layout),
		Dhuhr:     times.Dhuhr.Format(layout),
		Asr:       times.Asr.Format(layout),
		Sunset:    times.Sunset.Format(layout),
		Maghrib:   times.Maghrib.Format(layout),
		Isha:      times.Isha.Format(layout),
		Midnight:  times.Midnight.Format(layout),
	}
}

// cityReport calculates the prayer times for the city and packages
// them for rendering, annotated with the Jalali date as customary in
// Iran.
func cityReport(ctx context.Context, city iran.City, date string, calc *praytime.Calculator, layout string) (timesReport, error) {
	pl, err := city.Place()
	if err != nil {
		return timesReport{}, err
	}
	cd, err := calendarDate(date, pl.TimeLocation)
	if err != nil {
		return timesReport{}, err
	}
	if calc == nil {
		calc = praytime.Default()
	}
	logSaturation(ctx, calc.Parameters(), cd, pl)
	times, err := calc.Calculate(cd, pl)
	if err != nil {
		return timesReport{}, err
	}
	report := newTimesReport(cd, pl, times, layout)
	report.City = city.String()
	report.PersianName = city.PersianName()
	noon := cd.Time(datetime.NewTimeOfDay(12, 0, 0), pl.TimeLocation)
	report.JalaliDate = jalaali.New(noon).Format("2006/01/02")
	return report, nil
}

func (r timesReport) writeText(w io.Writer) {
	if len(r.City) > 0 {
		fmt.Fprintf(w, "%s (%s)\n", r.City, r.PersianName)
	}
	fmt.Fprintf(w, "Date:     %s", r.Date)
	if len(r.JalaliDate) > 0 {
		fmt.Fprintf(w, " (%s)", r.JalaliDate)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Place:    %v, %v, %s\n", r.Latitude, r.Longitude, r.Timezone)
	for _, field := range []struct {
		name, value string
	}{
		{"Fajr", r.Fajr}, {"Sunrise", r.Sunrise}, {"Dhuhr", r.Dhuhr},
		{"Asr", r.Asr}, {"Sunset", r.Sunset}, {"Maghrib", r.Maghrib},
		{"Isha", r.Isha}, {"Midnight", r.Midnight},
	} {
		fmt.Fprintf(w, "%-9s %s\n", field.name+":", field.value)
	}
}

// timesReports renders multiple cities as a single document.
type timesReports []timesReport

func (rs timesReports) writeText(w io.Writer) {
	for i, r := range rs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		r.writeText(w)
	}
}

// cityList is the output of the cities command.
type cityList struct {
	Cities []cityEntry `json:"cities" yaml:"cities"`
}

type cityEntry struct {
	Name        string  `json:"name" yaml:"name"`
	PersianName string  `json:"persian_name" yaml:"persian_name"`
	Latitude    float64 `json:"latitude" yaml:"latitude"`
	Longitude   float64 `json:"longitude" yaml:"longitude"`
	Timezone    string  `json:"timezone" yaml:"timezone"`
}

func newCityList() cityList {
	var list cityList
	for _, city := range iran.Cities() {
		list.Cities = append(list.Cities, cityEntry{
			Name:        city.String(),
			PersianName: city.PersianName(),
			Latitude:    city.Latitude(),
			Longitude:   city.Longitude(),
			Timezone:    city.TimeZone(),
		})
	}
	return list
}

func (l cityList) writeText(w io.Writer) {
	for _, city := range l.Cities {
		fmt.Fprintf(w, "%-12s %9.4f %9.4f  %s  %s\n",
			city.Name, city.Latitude, city.Longitude, city.Timezone, city.PersianName)
	}
}

// sunReport is the output of the sun command.
type sunReport struct {
	City      string  `json:"city" yaml:"city"`
	Date      string  `json:"date" yaml:"date"`
	Timezone  string  `json:"timezone" yaml:"timezone"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Sunrise   string  `json:"sunrise" yaml:"sunrise"`
	SolarNoon string  `json:"solar_noon" yaml:"solar_noon"`
	Sunset    string  `json:"sunset" yaml:"sunset"`
	DayLength string  `json:"day_length" yaml:"day_length"`
}

func (r sunReport) writeText(w io.Writer) {
	fmt.Fprintf(w, "%s, %s (%v, %v, %s)\n", r.City, r.Date, r.Latitude, r.Longitude, r.Timezone)
	fmt.Fprintf(w, "Sunrise:    %s\n", r.Sunrise)
	fmt.Fprintf(w, "Solar noon: %s\n", r.SolarNoon)
	fmt.Fprintf(w, "Sunset:     %s\n", r.Sunset)
	fmt.Fprintf(w, "Day length: %s\n", r.DayLength)
}
