// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package terrain implements the procedural-terrain pipeline (spec §4.E):
// triangle elevations from fractal noise plus an island mask, region
// elevations by averaging, a wind-ordered moisture sweep, a priority-flood
// downslope assignment, and a reverse-order flow accumulation producing
// river widths.
//
// The pipeline is a pure function of mesh + seed + parameters (spec §4.E
// "side-effects: none"); Map holds the mutable per-element arrays the
// stages write into, but nothing outside Map is touched.
package terrain

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goterra/config"
	"github.com/cpmech/goterra/mesh"
	"github.com/cpmech/goterra/noise"
)

// sDownslopeUnset and sDownslopeSink are the two sentinels s_downslope_t
// can hold before/after the priority flood: -999 means "not yet visited",
// -1 means "this triangle is a local minimum with no lower solid neighbor"
// (spec §4.E part 5, §8 property 10).
const (
	sDownslopeUnset = -999
	sDownslopeSink  = -1
)

// Map holds the terrain state arrays, indexed by the subscript suffix
// named in spec §4.E.
type Map struct {
	Mesh   *mesh.Mesh
	Params config.Params
	noise  noise.Source

	ElevationT  []float64
	ElevationR  []float64
	HumidityR   []float64
	MoistureT   []float64
	RainfallR   []float64
	SDownslopeT []int
	TOrder      []int
	FlowT       []float64
	FlowS       []float64

	windOrder    []int
	windPriority []float64
}

// New allocates a Map over m using the given noise source; Run populates
// every state array.
func New(m *mesh.Mesh, p config.Params, src noise.Source) *Map {
	return &Map{
		Mesh:   m,
		Params: p,
		noise:  src,
	}
}

// Run executes the full deterministic pipeline (spec §4.E) in order. Each
// stage is load-bearing on the order of the stage before it; this method is
// the only supported entry point.
func (tm *Map) Run(verbose bool) {
	if verbose {
		io.Pfcyan("terrain: computing triangle elevation\n")
	}
	tm.computeTriangleElevation()

	if verbose {
		io.Pfcyan("terrain: computing region elevation\n")
	}
	tm.computeRegionElevation()

	if verbose {
		io.Pfcyan("terrain: computing wind order\n")
	}
	tm.computeWindOrder()

	if verbose {
		io.Pfcyan("terrain: sweeping rainfall\n")
	}
	tm.computeRainfall()

	if verbose {
		io.Pfcyan("terrain: flooding downslope assignment\n")
	}
	tm.computeDownslope()

	if verbose {
		io.Pfcyan("terrain: computing moisture\n")
	}
	tm.computeMoisture()

	if verbose {
		io.Pfcyan("terrain: accumulating flow\n")
	}
	tm.computeFlow()
}

// Stats is a read-only diagnostic summary (SPEC_FULL §4.E), of the same
// shape as gofem/out's result-summary structures; Non-goals still exclude
// persistence and UI, so this is just a value return.
type Stats struct {
	MinElevation, MaxElevation, MeanElevation float64
	TotalFlow                                 float64
}

// Stats summarizes ElevationR and FlowS over solid regions/sides.
func (tm *Map) Stats() Stats {
	var s Stats
	if len(tm.ElevationR) == 0 {
		return s
	}
	s.MinElevation = tm.ElevationR[0]
	s.MaxElevation = tm.ElevationR[0]
	sum := 0.0
	for _, e := range tm.ElevationR {
		if e < s.MinElevation {
			s.MinElevation = e
		}
		if e > s.MaxElevation {
			s.MaxElevation = e
		}
		sum += e
	}
	s.MeanElevation = sum / float64(len(tm.ElevationR))
	for _, f := range tm.FlowS {
		s.TotalFlow += f
	}
	return s
}
