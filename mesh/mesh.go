// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh is the dual-mesh topology at the heart of this repo: a
// half-edge data structure that simultaneously exposes a triangle mesh
// (vertices at input points, faces at Delaunay triangles) and its dual
// polygon mesh (vertices at triangle centers, faces around input points),
// closed by the ghost structure so every half-edge has an opposite
// (spec §3, §4.D).
//
// Regions, sides, and triangles are dense integer ids into flat arrays
// owned by a single Mesh value; there are no owning objects pointing at
// each other (spec §9).
package mesh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/goterra/boundary"
	"github.com/cpmech/goterra/ghost"
)

// Point is a 2-D coordinate, the same shape as boundary.Point. mesh keeps
// its own copy rather than importing boundary's so that mesh's public API
// never leans on a sibling package's value type.
type Point struct{ X, Y float64 }

// sOfRUnset is the sentinel for "no representative side yet" in _s_of_r.
// The teacher's source uses 0 for this, which is ambiguous with region 0
// being a legitimate entry id; spec §9 flags this as an open question and
// permits fixing it. This implementation fixes it with an explicit -1.
const sOfRUnset = -1

// Mesh owns the closed half-edge arrays and the derived per-element
// positions. Built once via New, then immutable for the life of the value
// (spec §3 lifecycle).
type Mesh struct {
	vertexR []Point // region positions, length NumRegions; ghost entry is NaN
	triangles []int // triangles[s] = region at which side s begins
	halfedges []int // halfedges[s] = opposite side, always >= 0 after closure

	ghostRegion   int
	numSolidSides int
	numBoundary   int

	vertexT []Point // derived: one center per triangle
	sOfR    []int   // derived: representative entry side per region
}

// New builds a Mesh from a ghost-closed triangulation and runs Update to
// compute centers and circulator entry points. numBoundary is the
// NumBoundaryRegions count supplied by component A (spec §3).
func New(closed *ghost.Closed, numBoundary int) *Mesh {
	if len(closed.Triangles)%3 != 0 {
		chk.Panic("mesh: NumSides=%d is not a multiple of 3", len(closed.Triangles))
	}
	m := &Mesh{
		vertexR:       make([]Point, len(closed.Points)),
		triangles:     append([]int(nil), closed.Triangles...),
		halfedges:     append([]int(nil), closed.Halfedges...),
		ghostRegion:   closed.GhostRegion,
		numSolidSides: closed.NumSolid,
		numBoundary:   numBoundary,
	}
	for i, p := range closed.Points {
		m.vertexR[i] = Point{X: p.X, Y: p.Y}
	}
	m.Update()
	return m
}

// Update (re)computes the derived arrays: triangle centers (vertexT) and
// the region circulator entry points (sOfR). Called once by New; exposed
// so a caller constructing the Mesh by hand (e.g. in tests) can call it
// after assigning the raw arrays directly.
func (m *Mesh) Update() {
	numTriangles := len(m.triangles) / 3
	m.vertexT = make([]Point, numTriangles)
	for t := 0; t < numTriangles; t++ {
		s := 3 * t
		if s < m.numSolidSides {
			a := m.vertexR[m.triangles[s]]
			b := m.vertexR[m.triangles[s+1]]
			c := m.vertexR[m.triangles[s+2]]
			m.vertexT[t] = Point{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}
			continue
		}
		a := m.vertexR[m.triangles[s]]
		b := m.vertexR[m.triangles[s+1]]
		mid := Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
		d := la.Vector{b.X - a.X, b.Y - a.Y}
		perp := la.Vector{d[1], -d[0]}
		n := normalize(perp)
		const ghostOffset = 10.0
		m.vertexT[t] = Point{X: mid.X + ghostOffset*n[0], Y: mid.Y + ghostOffset*n[1]}
	}

	m.sOfR = make([]int, len(m.vertexR))
	for i := range m.sOfR {
		m.sOfR[i] = sOfRUnset
	}
	for s := 0; s < len(m.triangles); s++ {
		r := m.triangles[SNext(s)]
		if m.sOfR[r] == sOfRUnset || m.halfedges[s] == -1 {
			m.sOfR[r] = s
		}
	}
}

func normalize(v la.Vector) la.Vector {
	length := la.VecNorm(v)
	if length == 0 {
		return v
	}
	return la.Vector{v[0] / length, v[1] / length}
}

// NumRegions returns the number of regions, including the ghost region.
func (m *Mesh) NumRegions() int { return len(m.vertexR) }

// NumSides returns the number of sides, including ghost sides.
func (m *Mesh) NumSides() int { return len(m.triangles) }

// NumTriangles returns the number of triangles, including ghost triangles.
func (m *Mesh) NumTriangles() int { return len(m.triangles) / 3 }

// NumSolidSides returns the number of sides produced by the triangulator,
// before ghost closure appended any.
func (m *Mesh) NumSolidSides() int { return m.numSolidSides }

// NumSolidTriangles returns the number of triangles produced by the
// triangulator.
func (m *Mesh) NumSolidTriangles() int { return m.numSolidSides / 3 }

// NumSolidRegions returns NumRegions-1, i.e. every region except the ghost.
// Precondition: the mesh has been through ghost closure (spec §9); calling
// this on a mesh with no ghost region appended reports one less than the
// real region count, which is documented here rather than guarded against,
// matching the teacher's behavior.
func (m *Mesh) NumSolidRegions() int { return len(m.vertexR) - 1 }

// NumBoundaryRegions returns the count of regions in the caller-declared
// boundary prefix (spec §3).
func (m *Mesh) NumBoundaryRegions() int { return m.numBoundary }

// GhostRegion returns the id of the single synthetic ghost region.
func (m *Mesh) GhostRegion() int { return m.ghostRegion }

// Envelope returns the axis-aligned bounding box over every solid region's
// position, used by the render package to pick a default plot scale
// (SPEC_FULL §4.D).
func (m *Mesh) Envelope() (minX, minY, maxX, maxY float64) {
	first := true
	for r := 0; r < m.NumSolidRegions(); r++ {
		p := m.vertexR[r]
		if first {
			minX, maxX = p.X, p.X
			minY, maxY = p.Y, p.Y
			first = false
			continue
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}
