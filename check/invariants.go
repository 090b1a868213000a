// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package check implements the structural-invariant checker (spec §4.F):
// property assertions over a closed dual mesh, plus a pre-closure sanity
// check on the raw triangulator output. Grounded on gofem/shp's
// CheckShape/CheckShapeFace convention and gofem/tests's Results
// aggregation struct, using gosl/chk for the error register.
package check

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goterra/boundary"
	"github.com/cpmech/goterra/mesh"
)

// maxCirculationSteps bounds the region-circulation walk (spec §8 property
// 5 / §4.F): any region other than the ghost region must close within this
// many steps, or the mesh is malformed.
const maxCirculationSteps = 100

// Report aggregates the checker's advisory findings (spec §4.F, §7):
// degenerate geometry is reported, not fatal.
type Report struct {
	SkinnyTriangles int // count of triangles with an interior angle < 30deg
	NumTriangles    int
}

// PreClosure checks the raw triangulator output before ghost closure: the
// involution halfedges[halfedges[s]] = s must hold wherever halfedges[s] is
// defined (spec §4.F, §8 scenarios S2/S3), and reports a skinny-triangle
// histogram (advisory, not fatal per spec §7).
func PreClosure(points []boundary.Point, triangles, halfedges []int) (Report, error) {
	var report Report
	if len(triangles)%3 != 0 {
		return report, chk.Err("check: triangles length %d is not a multiple of 3", len(triangles))
	}
	for s, o := range halfedges {
		if o == -1 {
			continue
		}
		if o < 0 || o >= len(halfedges) {
			return report, chk.Err("check: halfedges[%d]=%d out of range", s, o)
		}
		if halfedges[o] != s {
			return report, chk.Err("check: involution broken at side %d: halfedges[%d]=%d but halfedges[%d]=%d", s, s, o, o, halfedges[o])
		}
	}

	report.NumTriangles = len(triangles) / 3
	for t := 0; t < report.NumTriangles; t++ {
		a := points[triangles[3*t]]
		b := points[triangles[3*t+1]]
		c := points[triangles[3*t+2]]
		if minInteriorAngleDeg(a, b, c) < 30 {
			report.SkinnyTriangles++
		}
	}
	return report, nil
}

func minInteriorAngleDeg(a, b, c boundary.Point) float64 {
	angle := func(p, q, r boundary.Point) float64 {
		v1x, v1y := q.X-p.X, q.Y-p.Y
		v2x, v2y := r.X-p.X, r.Y-p.Y
		dot := v1x*v2x + v1y*v2y
		len1 := math.Hypot(v1x, v1y)
		len2 := math.Hypot(v2x, v2y)
		if len1 == 0 || len2 == 0 {
			return 0
		}
		cos := dot / (len1 * len2)
		cos = math.Max(-1, math.Min(1, cos))
		return math.Acos(cos) * 180 / math.Pi
	}
	angles := []float64{angle(a, b, c), angle(b, c, a), angle(c, a, b)}
	min := angles[0]
	for _, v := range angles[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Verify asserts the five invariant classes of spec §4.F / §8 over a
// ghost-closed mesh, returning an error with enough context (side/region
// ids) to debug a failure (spec §7). Invalid triangulator output surfacing
// here is fatal at the caller's discretion; this function itself never
// panics, it only reports.
func Verify(m *mesh.Mesh) error {
	for s := 0; s < m.NumSides(); s++ {
		o := m.SOpposite(s)
		if o < 0 {
			return chk.Err("check: side %d has no opposite (ghost closure incomplete)", s)
		}
		if m.SOpposite(o) != s {
			return chk.Err("check: involution broken: s_opposite(s_opposite(%d))=%d want %d", s, m.SOpposite(o), s)
		}
		if m.RBegin(s) != m.REnd(o) {
			return chk.Err("check: side %d: r_begin=%d but r_end(opposite %d)=%d", s, m.RBegin(s), o, m.REnd(o))
		}
		if m.TInner(s) != m.TOuter(o) {
			return chk.Err("check: side %d: t_inner=%d but t_outer(opposite %d)=%d", s, m.TInner(s), o, m.TOuter(o))
		}
		if m.RBegin(mesh.SNext(s)) != m.RBegin(o) {
			return chk.Err("check: side %d: r_begin(s_next)=%d but r_begin(opposite)=%d", s, m.RBegin(mesh.SNext(s)), m.RBegin(o))
		}
	}

	var sBuf []int
	for r := 0; r < m.NumRegions(); r++ {
		if m.IsGhostR(r) {
			continue
		}
		sBuf = m.SAroundR(r, sBuf)
		if len(sBuf) > maxCirculationSteps {
			return chk.Err("check: region %d circulation exceeded %d steps (walk trace starts at side %d)", r, maxCirculationSteps, sBuf[0])
		}
		for _, s := range sBuf {
			if m.RBegin(s) != r {
				return chk.Err("check: region %d: s_around_r contains side %d whose r_begin=%d", r, s, m.RBegin(s))
			}
		}
	}

	var sides [3]int
	for t := 0; t < m.NumTriangles(); t++ {
		m.SAroundT(t, &sides)
		for _, s := range sides {
			if m.TInner(s) != t {
				return chk.Err("check: triangle %d: side %d has t_inner=%d", t, s, m.TInner(s))
			}
		}
	}

	return nil
}
