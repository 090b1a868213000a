// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package noise supplies the noise contract of spec §6: a function
// noise2d(x, y) -> roughly [-1, 1], plus the fractal-octave-sum and
// island-mask shaping that turns it into DesiredElevation (spec §4.E).
//
// The default Source wraps github.com/ojrac/opensimplex-go, the spec's
// "integer-scaled simplex noise" collaborator. LatticeSource is a pure-Go
// fallback with no external dependency, grounded on
// missinglink-simplefeatures/generate/perlin.go's grid-gradient technique,
// kept for embedders who would rather not pull in the simplex library.
package noise

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/cpmech/gosl/la"
)

// Source is the noise contract (spec §6): roughly [-1, 1] for any (x, y).
type Source interface {
	Noise2D(x, y float64) float64
}

// openSimplexSource adapts opensimplex-go's normalized noise, whose Eval2
// returns [0, 1], to the Source interface by rescaling it in Noise2D.
type openSimplexSource struct {
	g opensimplex.Noise
}

// NewSource returns the default noise source, explicitly seeded (spec §9:
// "prefer an explicitly-seeded noise value threaded through the terrain map
// so that two maps with different seeds cannot interfere", rather than the
// reference's process-wide global seed).
func NewSource(seed int64) Source {
	return openSimplexSource{g: opensimplex.NewNormalized(seed)}
}

func (s openSimplexSource) Noise2D(x, y float64) float64 {
	// NewNormalized returns [0,1]; rescale to roughly [-1,1] to match the
	// noise contract.
	return 2*s.g.Eval2(x, y) - 1
}

// LatticeSource is a pure-Go gradient-grid ("Perlin") noise source with no
// external dependency, following
// missinglink-simplefeatures/generate/perlin.go: a grid of random unit
// gradients, sampled by bilinear interpolation of the four corner dot
// products surrounding the query point.
type LatticeSource struct {
	gradients [][]la.Vector
	minX, minY int
}

// NewLatticeSource builds a LatticeSource whose grid covers at least
// [-span, span] in both axes, seeded by seed.
func NewLatticeSource(seed int64, span int) *LatticeSource {
	rnd := newSplitMix64(uint64(seed))
	size := 2*span + 3
	grid := make([][]la.Vector, size)
	for i := range grid {
		grid[i] = make([]la.Vector, size)
		for j := range grid[i] {
			angle := rnd.float64() * 2 * math.Pi
			grid[i][j] = la.Vector{math.Cos(angle), math.Sin(angle)}
		}
	}
	return &LatticeSource{gradients: grid, minX: -span - 1, minY: -span - 1}
}

func (p *LatticeSource) Noise2D(x, y float64) float64 {
	x0 := int(math.Floor(x)) - p.minX
	y0 := int(math.Floor(y)) - p.minY
	x1, y1 := x0+1, y0+1

	dot := func(gx, gy int, px, py float64) float64 {
		gx = clampIndex(gx, len(p.gradients))
		gy = clampIndex(gy, len(p.gradients[0]))
		g := p.gradients[gx][gy]
		dx := px - float64(gx+p.minX)
		dy := py - float64(gy+p.minY)
		return dx*g[0] + dy*g[1]
	}

	n0 := dot(x0, y0, x, y)
	n1 := dot(x1, y0, x, y)
	n2 := dot(x0, y1, x, y)
	n3 := dot(x1, y1, x, y)

	sx := x - math.Floor(x)
	sy := y - math.Floor(y)
	lerp := func(a, b, w float64) float64 { return (1-w)*a + w*b }
	return lerp(lerp(n0, n1, sx), lerp(n2, n3, sx), sy)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// splitMix64 is a tiny deterministic PRNG used only to seed LatticeSource's
// gradient grid without depending on math/rand's global state.
type splitMix64 struct{ state uint64 }

func newSplitMix64(seed uint64) *splitMix64 { return &splitMix64{state: seed} }

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func (s *splitMix64) float64() float64 {
	return float64(s.next()>>11) / float64(1<<53)
}

const octaves = 5

// Fractal sums octaves octaves of src at (nx*2^i, ny*2^i) with amplitude
// (0.5)^i, normalized by the sum of amplitudes (spec §4.E).
func Fractal(src Source, nx, ny float64) float64 {
	sum := 0.0
	amplitude := 1.0
	totalAmplitude := 0.0
	scale := 1.0
	for i := 0; i < octaves; i++ {
		sum += amplitude * src.Noise2D(nx*scale, ny*scale)
		totalAmplitude += amplitude
		amplitude *= 0.5
		scale *= 2
	}
	return sum / totalAmplitude
}

// DesiredElevation is spec §4.E's per-point elevation function: a
// 5-octave fractal sum shaped by an island mask, then (above water) mixed
// with a secondary 2-scale noise sample to carve ridges.
func DesiredElevation(src Source, nx, ny, island float64) float64 {
	e := Fractal(src, nx, ny)

	d := math.Abs(nx)
	if math.Abs(ny) > d {
		d = math.Abs(ny)
	}
	e = 0.5 * (e + island*(0.75-2*d*d))
	e = clamp(e, -1, 1)

	if e > 0 {
		m := src.Noise2D(nx*2, ny*2)
		ridge := math.Min(1, 5*e) * (1 - math.Abs(m)/0.5)
		e = math.Max(e, math.Min(3*e, ridge))
	}

	return clamp(e, -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
