// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package praytime

import (
	"fmt"
	"math"
	"time"

	"cloudeng.io/errors"
)

// ErrConfiguration is returned, generally wrapped with detail, for any
// configuration related failure: calculation parameters that are out
// of range, an unknown city, a place without a timezone and the like.
var ErrConfiguration = errors.New("invalid configuration")

// Parameters control the solar geometry used to calculate prayer
// times. The zero value is not usable, start from DefaultParameters.
type Parameters struct {
	// FajrAngle is the angle of the sun below the horizon, in
	// degrees, that marks the morning twilight.
	FajrAngle float64
	// IshaAngle is the angle of the sun below the horizon, in
	// degrees, that marks the evening twilight.
	IshaAngle float64
	// RiseSetAltitude is the geometric altitude of the centre of the
	// solar disc, in degrees, that defines sunrise and sunset. The
	// customary value of -0.833 accounts for atmospheric refraction
	// and the radius of the disc.
	RiseSetAltitude float64
	// AsrShadowRatio is the ratio of the growth of an object's shadow
	// beyond its noon length to the object's height at the time of
	// Asr: 1 for the Shafii school, 2 for the Hanafi school.
	AsrShadowRatio float64
	// MaghribOffset is the fixed duration after sunset at which
	// Maghrib is observed.
	MaghribOffset time.Duration
}

// DefaultParameters returns the parameters conventionally used in
// Iran: the twilight angles of the Institute of Geophysics of the
// University of Tehran, the Shafii shadow ratio and Maghrib 21
// minutes after sunset.
func DefaultParameters() Parameters {
	return Parameters{
		FajrAngle:       17.7,
		IshaAngle:       14.0,
		RiseSetAltitude: -0.833,
		AsrShadowRatio:  1,
		MaghribOffset:   21 * time.Minute,
	}
}

// Validate returns an error describing every problem with the
// parameters rather than just the first one encountered. All errors
// wrap ErrConfiguration.
func (p Parameters) Validate() error {
	var errs errors.M
	inRange := func(field string, v, lo, hi float64) {
		if math.IsNaN(v) || v <= lo || v >= hi {
			errs.Append(fmt.Errorf("%w: %v must be greater than %v and less than %v: %v", ErrConfiguration, field, lo, hi, v))
		}
	}
	inRange("fajr_angle", p.FajrAngle, 0, 90)
	inRange("isha_angle", p.IshaAngle, 0, 90)
	inRange("rise_set_altitude", p.RiseSetAltitude, -90, 0)
	if math.IsNaN(p.AsrShadowRatio) || math.IsInf(p.AsrShadowRatio, 0) || p.AsrShadowRatio <= 0 {
		errs.Append(fmt.Errorf("%w: asr_shadow_ratio must be a positive finite ratio: %v", ErrConfiguration, p.AsrShadowRatio))
	}
	if p.MaghribOffset < 0 || p.MaghribOffset >= 24*time.Hour {
		errs.Append(fmt.Errorf("%w: maghrib_offset must be non-negative and less than a day: %v", ErrConfiguration, p.MaghribOffset))
	}
	return errs.Err()
}

// Config returns the parameters in their YAML configuration form.
func (p Parameters) Config() ParametersConfig {
	return ParametersConfig{
		FajrAngle:            p.FajrAngle,
		IshaAngle:            p.IshaAngle,
		RiseSetAltitude:      p.RiseSetAltitude,
		AsrShadowRatio:       p.AsrShadowRatio,
		MaghribOffsetMinutes: int(p.MaghribOffset / time.Minute),
	}
}

// ParametersConfig is the YAML form of Parameters used in
// configuration files, with angles in degrees and the maghrib offset
// in whole minutes. Unmarshalling a file into the config form of
// DefaultParameters overrides only the fields the file names.
type ParametersConfig struct {
	FajrAngle            float64 `yaml:"fajr_angle" cmd:"degrees below the horizon for morning twilight"`
	IshaAngle            float64 `yaml:"isha_angle" cmd:"degrees below the horizon for evening twilight"`
	RiseSetAltitude      float64 `yaml:"rise_set_altitude" cmd:"solar altitude in degrees defining sunrise/sunset"`
	AsrShadowRatio       float64 `yaml:"asr_shadow_ratio" cmd:"shadow growth to height ratio at asr, 1 shafii, 2 hanafi"`
	MaghribOffsetMinutes int     `yaml:"maghrib_offset_minutes" cmd:"minutes after sunset at which maghrib is observed"`
}

// Parameters returns the parameters represented by the configuration.
func (c ParametersConfig) Parameters() Parameters {
	return Parameters{
		FajrAngle:       c.FajrAngle,
		IshaAngle:       c.IshaAngle,
		RiseSetAltitude: c.RiseSetAltitude,
		AsrShadowRatio:  c.AsrShadowRatio,
		MaghribOffset:   time.Duration(c.MaghribOffsetMinutes) * time.Minute,
	}
}
