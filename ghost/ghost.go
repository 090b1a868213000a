// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ghost closes an open Delaunay triangulation by appending a
// synthetic ghost region and one ghost triangle per hull edge, so that
// every half-edge has a well-defined opposite (spec §4.C).
package ghost

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goterra/boundary"
)

// Closed holds the ghost-closed arrays: every half-edge now has a
// nonnegative opposite, and GhostRegion is the single synthetic region
// appended at the end of Points.
type Closed struct {
	Points      []boundary.Point
	Triangles   []int
	Halfedges   []int
	GhostRegion int
	NumSolid    int // NumSolidSides, i.e. len(triangles) before closure
}

// side-to-triangle algebra, duplicated from mesh.SNext so that this
// package has no import-cycle dependency on mesh.
func sNext(s int) int {
	if s%3 != 2 {
		return s + 1
	}
	return s - 2
}

// Close appends ghost structure to the triangulator output. It takes no
// boundary-prefix count: which points form the boundary prefix does not
// affect ghost closure.
func Close(points []boundary.Point, triangles, halfedges []int) (*Closed, error) {
	numSolidSides := len(triangles)
	if numSolidSides%3 != 0 {
		return nil, chk.Err("ghost: triangles length %d is not a multiple of 3", numSolidSides)
	}
	if len(halfedges) != numSolidSides {
		return nil, chk.Err("ghost: halfedges length %d does not match triangles length %d", len(halfedges), numSolidSides)
	}

	rBegin := func(s int) int { return triangles[s] }
	rEnd := func(s int) int { return triangles[sNext(s)] }

	// 1. scan unpaired sides, keyed by their starting region.
	unpaired := make(map[int]int)
	sFirst := -1
	k := 0
	for s := 0; s < numSolidSides; s++ {
		if halfedges[s] == -1 {
			unpaired[rBegin(s)] = s
			if sFirst == -1 {
				sFirst = s
			}
			k++
		}
	}
	if k == 0 {
		// already closed (or a single interior triangle with no hull) -
		// nothing to do.
		return &Closed{
			Points:      points,
			Triangles:   append([]int(nil), triangles...),
			Halfedges:   append([]int(nil), halfedges...),
			GhostRegion: len(points),
			NumSolid:    numSolidSides,
		}, nil
	}

	// 2. append ghost region (undefined position).
	rGhost := len(points)
	newPoints := make([]boundary.Point, len(points)+1)
	copy(newPoints, points)
	newPoints[rGhost] = boundary.Point{X: nan(), Y: nan()}

	// 3. allocate new arrays, copying the solid prefix.
	newTriangles := make([]int, numSolidSides+3*k)
	newHalfedges := make([]int, numSolidSides+3*k)
	copy(newTriangles, triangles)
	copy(newHalfedges, halfedges)

	// 4. walk the unpaired sides around the hull, stitching ghost
	// triangles as we go.
	current := sFirst
	for i := 0; i < k; i++ {
		sGhost := numSolidSides + 3*i

		newTriangles[sGhost] = rEnd(current)
		newTriangles[sGhost+1] = rBegin(current)
		newTriangles[sGhost+2] = rGhost

		newHalfedges[current] = sGhost
		newHalfedges[sGhost] = current

		next := (i + 1) % k
		kPrime := numSolidSides + 3*next + 1
		newHalfedges[sGhost+2] = kPrime
		newHalfedges[kPrime] = sGhost + 2

		if i+1 < k {
			nextSide, ok := unpaired[rEnd(current)]
			if !ok {
				return nil, chk.Err("ghost: hull walk broke after %d/%d steps at region %d; triangulator output is not a single closed hull", i+1, k, rEnd(current))
			}
			if nextSide == sFirst {
				return nil, chk.Err("ghost: hull walk closed after %d/%d steps; triangulator output is not a single closed hull", i+1, k)
			}
			current = nextSide
		}
	}
	if last, ok := unpaired[rEnd(current)]; !ok || last != sFirst {
		return nil, chk.Err("ghost: hull walk did not close after %d steps; triangulator output is not a single closed hull", k)
	}

	return &Closed{
		Points:      newPoints,
		Triangles:   newTriangles,
		Halfedges:   newHalfedges,
		GhostRegion: rGhost,
		NumSolid:    numSolidSides,
	}, nil
}

func nan() float64 {
	var zero float64
	return zero / zero
}
