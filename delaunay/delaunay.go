// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package delaunay is a thin contract over an external Delaunay
// triangulator (spec §4.B): it is not the hard problem this repo solves,
// only the adapter that massages a third-party triangulator's output into
// the triangles[]/halfedges[] convention the dual mesh assumes.
package delaunay

import (
	fogleman "github.com/fogleman/delaunay"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goterra/boundary"
)

// Result is the triangulator contract output (spec §6): triangles has
// length 3T and gives, for each side s, the region at which s begins;
// halfedges has length 3T and gives, for each side, its opposite side id,
// or -1 if unpaired (hull edge).
type Result struct {
	Triangles []int
	Halfedges []int
}

// Triangulate runs the external Delaunay triangulator over points and
// returns its output in the side-id convention of spec §3. Fewer than 3
// points, or fully collinear input, is a recoverable error (the caller
// chose a degenerate point set, not a programming mistake).
func Triangulate(points []boundary.Point) (Result, error) {
	if len(points) < 3 {
		return Result{}, chk.Err("delaunay: need at least 3 points, got %d", len(points))
	}

	pts := make([]fogleman.Point, len(points))
	for i, p := range points {
		pts[i] = fogleman.Point{X: p.X, Y: p.Y}
	}

	tri, err := fogleman.Triangulate(pts)
	if err != nil {
		return Result{}, chk.Err("delaunay: triangulation failed: %v", err)
	}

	// fogleman/delaunay's Triangles are region ids in exactly the side-id
	// convention of spec §3 (t_of(s) = s/3); Halfedges is already the
	// opposite-side array with -1 for hull edges.
	triangles := make([]int, len(tri.Triangles))
	copy(triangles, tri.Triangles)
	halfedges := make([]int, len(tri.Halfedges))
	copy(halfedges, tri.Halfedges)

	return Result{Triangles: triangles, Halfedges: halfedges}, nil
}
