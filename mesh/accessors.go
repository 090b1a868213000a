// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/gosl/chk"

// TOf returns the triangle a side belongs to: t_of(s) = floor(s/3).
// Pure index algebra (spec §3); does not touch Mesh state.
func TOf(s int) int { return s / 3 }

// SNext returns the next side within the same triangle, in winding order.
func SNext(s int) int {
	if s%3 != 2 {
		return s + 1
	}
	return s - 2
}

// SPrev returns the previous side within the same triangle.
func SPrev(s int) int {
	if s%3 != 0 {
		return s - 1
	}
	return s + 2
}

func (m *Mesh) checkSide(s int) {
	if s < 0 || s >= len(m.triangles) {
		chk.Panic("mesh: side id %d out of range [0,%d)", s, len(m.triangles))
	}
}

func (m *Mesh) checkRegion(r int) {
	if r < 0 || r >= len(m.vertexR) {
		chk.Panic("mesh: region id %d out of range [0,%d)", r, len(m.vertexR))
	}
}

func (m *Mesh) checkTriangle(t int) {
	if t < 0 || t >= m.NumTriangles() {
		chk.Panic("mesh: triangle id %d out of range [0,%d)", t, m.NumTriangles())
	}
}

// RBegin returns the region at which side s begins.
func (m *Mesh) RBegin(s int) int {
	m.checkSide(s)
	return m.triangles[s]
}

// REnd returns the region at which side s ends.
func (m *Mesh) REnd(s int) int {
	m.checkSide(s)
	return m.triangles[SNext(s)]
}

// TInner returns the triangle side s belongs to.
func (m *Mesh) TInner(s int) int {
	m.checkSide(s)
	return TOf(s)
}

// TOuter returns the triangle on the other side of s.
func (m *Mesh) TOuter(s int) int {
	m.checkSide(s)
	return TOf(m.halfedges[s])
}

// SOpposite returns the opposite side of s. After ghost closure this is
// always >= 0 and satisfies SOpposite(SOpposite(s)) == s.
func (m *Mesh) SOpposite(s int) int {
	m.checkSide(s)
	return m.halfedges[s]
}

// IsGhostS reports whether s is a ghost side (introduced by ghost closure).
func (m *Mesh) IsGhostS(s int) bool {
	m.checkSide(s)
	return s >= m.numSolidSides
}

// IsGhostT reports whether t is a ghost triangle.
func (m *Mesh) IsGhostT(t int) bool {
	m.checkTriangle(t)
	return 3*t >= m.numSolidSides
}

// IsGhostR reports whether r is the ghost region.
func (m *Mesh) IsGhostR(r int) bool {
	m.checkRegion(r)
	return r == m.ghostRegion
}

// IsBoundaryS reports whether s is the "original" ghost side representing
// an actual hull edge, as opposed to one of the two sides a ghost triangle
// shares with its neighboring ghost triangles.
func (m *Mesh) IsBoundaryS(s int) bool {
	m.checkSide(s)
	return m.IsGhostS(s) && s%3 == 0
}

// IsBoundaryR reports whether r falls in the caller-declared boundary
// prefix (spec §3).
func (m *Mesh) IsBoundaryR(r int) bool {
	m.checkRegion(r)
	return r < m.numBoundary
}

// XOfR, YOfR return region r's position. Callers must guard with IsGhostR
// before using these for numeric work: the ghost region's position is NaN
// (spec §9).
func (m *Mesh) XOfR(r int) float64 {
	m.checkRegion(r)
	return m.vertexR[r].X
}

func (m *Mesh) YOfR(r int) float64 {
	m.checkRegion(r)
	return m.vertexR[r].Y
}

// XOfT, YOfT return triangle t's center: the centroid for solid triangles,
// the synthesized outward offset for ghost triangles (spec §4.D).
func (m *Mesh) XOfT(t int) float64 {
	m.checkTriangle(t)
	return m.vertexT[t].X
}

func (m *Mesh) YOfT(t int) float64 {
	m.checkTriangle(t)
	return m.vertexT[t].Y
}
