// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the tunable parameters of the terrain pipeline.
package config

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Bounds is the rectangle over which boundary points and the interior
// scatter are generated.
type Bounds struct {
	Left   float64 // x of top-left corner
	Top    float64 // y of top-left corner
	Width  float64
	Height float64
}

// Params holds every design-time-tunable parameter of the terrain pipeline
// (spec §4.E). None of these are discovered at runtime; they are supplied
// once by the embedding shell.
type Params struct {
	Bounds          Bounds  // map extent
	Spacing         float64 // h: boundary-point and scatter spacing
	Seed            int64   // noise and interior-scatter seed
	WindAngleRad    float64 // wind direction, radians
	NoisyCoastlines float64 // coastline jitter term added to DesiredElevation
	Raininess       float64 // scales rainfall production
	Evaporation     float64 // evaporation rate over water
	RainShadow      float64 // fraction of orographic excess re-emitted as rain
	Flow            float64 // flow-accumulation scale
	Island          float64 // island-mask strength
}

// Default returns the parameter set used throughout this repo's tests and
// deterministic scenarios (spec §4.E, §8 S4).
func Default() Params {
	return Params{
		Bounds:          Bounds{Left: 0, Top: 0, Width: 1000, Height: 1000},
		Spacing:         50,
		Seed:            287,
		WindAngleRad:    0,
		NoisyCoastlines: 0.01,
		Raininess:       0.9,
		Evaporation:     0.5,
		RainShadow:      0.5,
		Flow:            0.2,
		Island:          0.5,
	}
}

// Validate panics on malformed parameters; out-of-range configuration is a
// programming error, not a recoverable one (spec §7).
func (p Params) Validate() {
	if p.Bounds.Width <= 0 || p.Bounds.Height <= 0 {
		chk.Panic("bounds must have positive width and height: %#v", p.Bounds)
	}
	if p.Spacing <= 0 {
		chk.Panic("spacing must be positive: %v", p.Spacing)
	}
}

// ReadFile loads Params from a JSON file, the way gofem/inp.Sim loads a
// .sim file. Fields absent from the file decode as the zero value, not
// Default()'s value; callers who want defaults plus overrides should
// unmarshal onto a Default() value themselves rather than call ReadFile.
func ReadFile(fn string) (p Params, err error) {
	buf, err := io.ReadFile(fn)
	if err != nil {
		return p, chk.Err("cannot read config file %q: %v", fn, err)
	}
	if err = json.Unmarshal(buf, &p); err != nil {
		return p, chk.Err("cannot parse config file %q: %v", fn, err)
	}
	return p, nil
}
