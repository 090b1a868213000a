// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/cpmech/goterra/boundary"
	"github.com/cpmech/goterra/ghost"
	"github.com/cpmech/goterra/mesh"
)

// recordingSurface is a fake Surface (SPEC_FULL §8 scenario S7) that just
// counts calls, so tests don't need a real plotting backend.
type recordingSurface struct {
	points, lines, polygons int
}

func (r *recordingSurface) DrawPoint(color string, radius, x, y float64) { r.points++ }
func (r *recordingSurface) DrawLineSegment(color string, width, x1, y1, x2, y2 float64) {
	r.lines++
}
func (r *recordingSurface) DrawPolygon(color string, flatXY []float64) { r.polygons++ }

func squareMesh(tst *testing.T) *mesh.Mesh {
	points := []boundary.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	triangles := []int{0, 1, 2, 0, 2, 3}
	halfedges := []int{-1, -1, 3, 2, -1, -1}
	closed, err := ghost.Close(points, triangles, halfedges)
	if err != nil {
		tst.Fatalf("ghost.Close failed: %v", err)
	}
	return mesh.New(closed, 4)
}

func TestDrawMeshCallCounts(tst *testing.T) {
	m := squareMesh(tst)
	rec := &recordingSurface{}
	DrawMesh(m, rec, "k", "g", "r")

	if rec.polygons != m.NumSolidRegions() {
		tst.Fatalf("polygons drawn=%d want NumSolidRegions=%d", rec.polygons, m.NumSolidRegions())
	}
	if rec.points != m.NumSolidTriangles() {
		tst.Fatalf("points drawn=%d want NumSolidTriangles=%d", rec.points, m.NumSolidTriangles())
	}
	if rec.lines == 0 {
		tst.Fatal("expected at least one line segment drawn")
	}
}
