// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package boundary generates the interior and exterior boundary point sets
// fed to the Delaunay triangulator so that it produces a rectangular map
// with well-shaped edge triangles (spec §4.A).
package boundary

import (
	"math"

	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/goterra/config"
)

const (
	curvature = 1.0   // outward bulge amplitude, fixed per spec
	epsilon   = 1e-4  // inset from the edge
)

// Point is a bare 2-D coordinate; kept distinct from gosl/gm.Point so this
// package has no hard dependency on gm's richer (and heavier) Point type.
type Point struct{ X, Y float64 }

// InteriorPoints returns points just inside each edge of bounds, inset by
// epsilon + curvature*4*(t-0.5)^2 where t in [0,1] runs along the edge.
// The returned slice is the prefix that MUST be handed to the triangulator
// first (spec §4.A contract) so that Is_Boundary_R is meaningful.
func InteriorPoints(b config.Bounds, h float64) []Point {
	var pts []Point

	nTop := numAlong(b.Width, h)
	for i := 0; i < nTop; i++ {
		t := float64(i) / float64(nTop-1)
		inset := epsilon + curvature*4*(t-0.5)*(t-0.5)
		x := b.Left + t*b.Width
		pts = append(pts, Point{x, b.Top + inset})
	}

	nRight := numAlong(b.Height, h)
	for i := 0; i < nRight; i++ {
		t := float64(i) / float64(nRight-1)
		inset := epsilon + curvature*4*(t-0.5)*(t-0.5)
		y := b.Top + t*b.Height
		pts = append(pts, Point{b.Left + b.Width - inset, y})
	}

	nBottom := numAlong(b.Width, h)
	for i := 0; i < nBottom; i++ {
		t := float64(i) / float64(nBottom-1)
		inset := epsilon + curvature*4*(t-0.5)*(t-0.5)
		x := b.Left + b.Width - t*b.Width
		pts = append(pts, Point{x, b.Top + b.Height - inset})
	}

	nLeft := numAlong(b.Height, h)
	for i := 0; i < nLeft; i++ {
		t := float64(i) / float64(nLeft-1)
		inset := epsilon + curvature*4*(t-0.5)*(t-0.5)
		y := b.Top + b.Height - t*b.Height
		pts = append(pts, Point{b.Left + inset, y})
	}

	return pts
}

// numAlong returns ceil((span - 2*curvature)/h), at least 2 so that the
// per-edge interpolation parameter t is always well defined.
func numAlong(span, h float64) int {
	n := int(math.Ceil((span - 2*curvature) / h))
	if n < 2 {
		n = 2
	}
	return n
}

// ExteriorPoints returns points outside each edge, offset by h/sqrt(2), the
// first sample offset by h/2 along the edge, plus the four corners. These
// let primal polygons at the map edge be closed by real triangles instead
// of ghost triangles.
func ExteriorPoints(b config.Bounds, h float64) []Point {
	off := h / math.Sqrt2
	var pts []Point

	along := func(edge func(s float64) Point, length float64) {
		s := h / 2
		for s < length {
			pts = append(pts, edge(s))
			s += h
		}
	}

	along(func(s float64) Point { return Point{b.Left + s, b.Top - off} }, b.Width)
	along(func(s float64) Point { return Point{b.Left + b.Width + off, b.Top + s} }, b.Height)
	along(func(s float64) Point { return Point{b.Left + b.Width - s, b.Top + b.Height + off} }, b.Width)
	along(func(s float64) Point { return Point{b.Left - off, b.Top + b.Height - s} }, b.Height)

	pts = append(pts,
		Point{b.Left - off, b.Top - off},
		Point{b.Left + b.Width + off, b.Top - off},
		Point{b.Left + b.Width + off, b.Top + b.Height + off},
		Point{b.Left - off, b.Top + b.Height + off},
	)

	return pts
}

// ScatterInterior jitters a regular grid of spacing h over bounds, inset by
// one half-spacing, using gosl/rnd (seeded via rnd.Init) for the jitter.
// This is the default interior point source; the original's Poisson-disc
// sampler and any other embedding-shell-supplied scatterer may be used in
// its place, since component A only guarantees the boundary prefix, not the
// interior tail.
func ScatterInterior(b config.Bounds, h float64, seed int64) []Point {
	rnd.Init(int(seed))
	var pts []Point
	jitter := h * 0.4
	for y := b.Top + h/2; y < b.Top+b.Height; y += h {
		for x := b.Left + h/2; x < b.Left+b.Width; x += h {
			dx := rnd.Float64(-jitter, jitter)
			dy := rnd.Float64(-jitter, jitter)
			pts = append(pts, Point{x + dx, y + dy})
		}
	}
	return pts
}

// GeneratePoints composes the interior boundary prefix, a default interior
// scatter, and the exterior boundary, returning the full point set handed
// to the triangulator along with NumBoundaryPoints (spec §4.A).
func GeneratePoints(p config.Params) (points []Point, numBoundary int) {
	interior := InteriorPoints(p.Bounds, p.Spacing)
	numBoundary = len(interior)
	scatter := ScatterInterior(p.Bounds, p.Spacing, p.Seed)
	exterior := ExteriorPoints(p.Bounds, p.Spacing)

	points = make([]Point, 0, len(interior)+len(scatter)+len(exterior))
	points = append(points, interior...)
	points = append(points, scatter...)
	points = append(points, exterior...)
	return points, numBoundary
}
