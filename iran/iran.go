// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package iran provides the coordinates and timezone of the major
// Iranian cities as a fixed lookup table for use with
// cloudeng.io/praytime.
package iran

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/praytime"
)

// City identifies one of the supported Iranian cities.
type City int

const (
	Tehran City = iota
	Tabriz
	Mashhad
	Isfahan
	Shiraz
	Qom
	Ahvaz
	Kermanshah
	Rasht
	Yazd
)

type cityInfo struct {
	name        string
	persianName string
	latitude    float64
	longitude   float64
	timeZone    string
}

// Iran spans two geographic timezones but uses a single civil one.
var cities = [...]cityInfo{
	Tehran:     {"Tehran", "تهران", 35.6892, 51.3890, "Asia/Tehran"},
	Tabriz:     {"Tabriz", "تبریز", 38.0800, 46.2919, "Asia/Tehran"},
	Mashhad:    {"Mashhad", "مشهد", 36.3264, 59.5433, "Asia/Tehran"},
	Isfahan:    {"Isfahan", "اصفهان", 32.6525, 51.6746, "Asia/Tehran"},
	Shiraz:     {"Shiraz", "شیراز", 29.5918, 52.5837, "Asia/Tehran"},
	Qom:        {"Qom", "قم", 34.6401, 50.8764, "Asia/Tehran"},
	Ahvaz:      {"Ahvaz", "اهواز", 31.3203, 48.6692, "Asia/Tehran"},
	Kermanshah: {"Kermanshah", "کرمانشاه", 34.3142, 47.0650, "Asia/Tehran"},
	Rasht:      {"Rasht", "رشت", 37.2808, 49.5831, "Asia/Tehran"},
	Yazd:       {"Yazd", "یزد", 31.8974, 54.3569, "Asia/Tehran"},
}

// Cities returns every supported city.
func Cities() []City {
	all := make([]City, len(cities))
	for i := range cities {
		all[i] = City(i)
	}
	return all
}

// ParseCity returns the city with the specified English name. The
// comparison is case insensitive. The error returned for an unknown
// name wraps praytime.ErrConfiguration.
func ParseCity(name string) (City, error) {
	for i, info := range cities {
		if strings.EqualFold(info.name, name) {
			return City(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown city: %q", praytime.ErrConfiguration, name)
}

// String returns the English name of the city.
func (c City) String() string {
	if c < 0 || int(c) >= len(cities) {
		return fmt.Sprintf("City(%d)", int(c))
	}
	return cities[c].name
}

// PersianName returns the name of the city in Persian script.
func (c City) PersianName() string {
	return cities[c].persianName
}

// Latitude returns the latitude of the city in degrees, north
// positive.
func (c City) Latitude() float64 {
	return cities[c].latitude
}

// Longitude returns the longitude of the city in degrees, east
// positive.
func (c City) Longitude() float64 {
	return cities[c].longitude
}

// TimeZone returns the IANA timezone identifier for the city.
func (c City) TimeZone() string {
	return cities[c].timeZone
}

// Place returns the coordinates and timezone of the city as a
// datetime.Place. A failure to load the timezone, possible on systems
// without a timezone database unless time/tzdata is imported, is
// reported as a praytime.ErrConfiguration.
func (c City) Place() (datetime.Place, error) {
	loc, err := time.LoadLocation(c.TimeZone())
	if err != nil {
		return datetime.Place{}, fmt.Errorf("%w: %v: %v", praytime.ErrConfiguration, c.TimeZone(), err)
	}
	return datetime.Place{
		TimeLocation: loc,
		Latitude:     c.Latitude(),
		Longitude:    c.Longitude(),
	}, nil
}

// Today returns the current date in the city's timezone.
func (c City) Today() (datetime.CalendarDate, error) {
	var none datetime.CalendarDate
	loc, err := time.LoadLocation(c.TimeZone())
	if err != nil {
		return none, fmt.Errorf("%w: %v: %v", praytime.ErrConfiguration, c.TimeZone(), err)
	}
	now := time.Now().In(loc)
	return datetime.NewCalendarDate(now.Year(), datetime.Month(now.Month()), now.Day()), nil
}

// Times returns the prayer times for the city on the specified date.
// A nil calculator is equivalent to praytime.Default().
func (c City) Times(date datetime.CalendarDate, calc *praytime.Calculator) (praytime.Times, error) {
	place, err := c.Place()
	if err != nil {
		return praytime.Times{}, err
	}
	if calc == nil {
		calc = praytime.Default()
	}
	return calc.Calculate(date, place)
}
