// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render implements the rendering contract of spec §6: three
// operations consumed by an external drawing surface. The core produces
// flat coordinate arrays by iterating solid sides/regions/triangles; the
// surface itself is opaque (Non-goal: no UI is specified here).
//
// Surface is backed by gosl/plt, grounded on gofem/out/plotting.go's
// Fmt/Plot/Save idiom.
package render

import (
	"github.com/cpmech/gosl/plt"

	"github.com/cpmech/goterra/mesh"
)

// Surface is the rendering contract: draw_point, draw_line_segment, and
// draw_polygon (spec §6).
type Surface interface {
	DrawPoint(color string, radius float64, x, y float64)
	DrawLineSegment(color string, width float64, x1, y1, x2, y2 float64)
	DrawPolygon(color string, flatXY []float64)
}

// PltSurface renders via gosl/plt, the same library gofem/out uses to emit
// a matplotlib script.
type PltSurface struct{}

func (PltSurface) DrawPoint(color string, radius, x, y float64) {
	fm := plt.Fmt{C: color, M: "o", Ms: int(radius)}
	plt.Plot([]float64{x}, []float64{y}, fm.GetArgs(""))
}

func (PltSurface) DrawLineSegment(color string, width, x1, y1, x2, y2 float64) {
	fm := plt.Fmt{C: color, Lw: width}
	plt.Plot([]float64{x1, x2}, []float64{y1, y2}, fm.GetArgs(""))
}

func (PltSurface) DrawPolygon(color string, flatXY []float64) {
	n := len(flatXY) / 2
	x := make([]float64, n+1)
	y := make([]float64, n+1)
	for i := 0; i < n; i++ {
		x[i] = flatXY[2*i]
		y[i] = flatXY[2*i+1]
	}
	x[n], y[n] = x[0], y[0]
	fm := plt.Fmt{C: color}
	plt.Plot(x, y, fm.GetArgs(""))
}

// Save writes the accumulated gosl/plt script to a PNG at dirout/fn,
// mirroring gofem/out/plotting.go's Plot+SaveD sequence.
func (PltSurface) Save(dirout, fn string) {
	plt.SaveD(dirout, fn)
}

// DrawMesh iterates solid sides, regions, and triangles, emitting the flat
// coordinate draws spec §6 describes: one line segment per undirected solid
// edge (a side and its opposite are drawn once), one polygon per solid
// region (its dual face), and one point per solid triangle center.
func DrawMesh(m *mesh.Mesh, s Surface, edgeColor, regionColor, triColor string) {
	for side := 0; side < m.NumSolidSides(); side++ {
		o := m.SOpposite(side)
		if o < side {
			continue // draw each undirected edge once
		}
		a := m.RBegin(side)
		b := m.REnd(side)
		s.DrawLineSegment(edgeColor, 1, m.XOfR(a), m.YOfR(a), m.XOfR(b), m.YOfR(b))
	}

	var tBuf []int
	for r := 0; r < m.NumSolidRegions(); r++ {
		tBuf = m.TAroundR(r, tBuf)
		flat := make([]float64, 0, 2*len(tBuf))
		for _, t := range tBuf {
			flat = append(flat, m.XOfT(t), m.YOfT(t))
		}
		s.DrawPolygon(regionColor, flat)
	}

	for t := 0; t < m.NumSolidTriangles(); t++ {
		s.DrawPoint(triColor, 1, m.XOfT(t), m.YOfT(t))
	}
}
