// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package praytime_test

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/praytime"
)

func TestDefaultParameters(t *testing.T) {
	p := praytime.DefaultParameters()
	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}
	if got, want := p.FajrAngle, 17.7; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.IshaAngle, 14.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.RiseSetAltitude, -0.833; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.AsrShadowRatio, 1.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.MaghribOffset, 21*time.Minute; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestValidate(t *testing.T) {
	modified := func(f func(*praytime.Parameters)) praytime.Parameters {
		p := praytime.DefaultParameters()
		f(&p)
		return p
	}
	for _, tc := range []struct {
		name   string
		params praytime.Parameters
	}{
		{"zero value", praytime.Parameters{}},
		{"fajr angle zero", modified(func(p *praytime.Parameters) { p.FajrAngle = 0 })},
		{"fajr angle at limit", modified(func(p *praytime.Parameters) { p.FajrAngle = 90 })},
		{"fajr angle nan", modified(func(p *praytime.Parameters) { p.FajrAngle = math.NaN() })},
		{"isha angle negative", modified(func(p *praytime.Parameters) { p.IshaAngle = -5 })},
		{"rise set above horizon", modified(func(p *praytime.Parameters) { p.RiseSetAltitude = 0.833 })},
		{"rise set at nadir", modified(func(p *praytime.Parameters) { p.RiseSetAltitude = -90 })},
		{"asr ratio zero", modified(func(p *praytime.Parameters) { p.AsrShadowRatio = 0 })},
		{"asr ratio negative", modified(func(p *praytime.Parameters) { p.AsrShadowRatio = -1 })},
		{"asr ratio infinite", modified(func(p *praytime.Parameters) { p.AsrShadowRatio = math.Inf(1) })},
		{"maghrib negative", modified(func(p *praytime.Parameters) { p.MaghribOffset = -time.Minute })},
		{"maghrib a full day", modified(func(p *praytime.Parameters) { p.MaghribOffset = 24 * time.Hour })},
	} {
		err := tc.params.Validate()
		if err == nil {
			t.Errorf("%v: expected an error", tc.name)
			continue
		}
		if !errors.Is(err, praytime.ErrConfiguration) {
			t.Errorf("%v: unexpected error: %v", tc.name, err)
		}
	}
	for _, tc := range []struct {
		name   string
		params praytime.Parameters
	}{
		{"defaults", praytime.DefaultParameters()},
		{"hanafi", hanafi()},
		{"custom", custom()},
		{"zero maghrib offset", modified(func(p *praytime.Parameters) { p.MaghribOffset = 0 })},
	} {
		if err := tc.params.Validate(); err != nil {
			t.Errorf("%v: %v", tc.name, err)
		}
	}
}

func TestValidateAggregates(t *testing.T) {
	// Every violation must be reported, not just the first.
	p := praytime.Parameters{
		FajrAngle:       -1,
		IshaAngle:       90,
		RiseSetAltitude: 1,
		AsrShadowRatio:  0,
		MaghribOffset:   -time.Minute,
	}
	err := p.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, praytime.ErrConfiguration) {
		t.Errorf("unexpected error: %v", err)
	}
	for _, field := range []string{
		"fajr_angle", "isha_angle", "rise_set_altitude", "asr_shadow_ratio", "maghrib_offset",
	} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("%v not reported in %q", field, err.Error())
		}
	}
}

func TestParametersConfig(t *testing.T) {
	for _, p := range []praytime.Parameters{
		praytime.DefaultParameters(), hanafi(), custom(),
	} {
		if got, want := p.Config().Parameters(), p; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestParametersConfigYAML(t *testing.T) {
	// A config file overrides only the fields it names when parsed
	// over the config form of the defaults.
	cfg := praytime.DefaultParameters().Config()
	spec := `isha_angle: 15
maghrib_offset_minutes: 25
`
	if err := cmdutil.ParseYAMLConfigString(spec, &cfg); err != nil {
		t.Fatal(err)
	}
	want := praytime.DefaultParameters()
	want.IshaAngle = 15
	want.MaghribOffset = 25 * time.Minute
	if got := cfg.Parameters(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := cfg.Parameters().Validate(); err != nil {
		t.Fatal(err)
	}

	cfg = praytime.DefaultParameters().Config()
	if err := cmdutil.ParseYAMLConfigString("fajr_angle: [\n", &cfg); err == nil {
		t.Errorf("expected an error")
	}
}
