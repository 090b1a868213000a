// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// Triangle circulators are O(1) and always yield exactly 3 ids; the caller
// supplies a length-3 buffer so no allocation happens in the steady state
// (spec §5, §9).

// SAroundT fills buf (len 3) with the three sides of triangle t.
func (m *Mesh) SAroundT(t int, buf *[3]int) {
	m.checkTriangle(t)
	s := 3 * t
	buf[0], buf[1], buf[2] = s, s+1, s+2
}

// RAroundT fills buf (len 3) with the three regions at triangle t's
// vertices.
func (m *Mesh) RAroundT(t int, buf *[3]int) {
	var sides [3]int
	m.SAroundT(t, &sides)
	for i, s := range sides {
		buf[i] = m.triangles[s]
	}
}

// TAroundT fills buf (len 3) with the three triangles across from t's
// sides.
func (m *Mesh) TAroundT(t int, buf *[3]int) {
	var sides [3]int
	m.SAroundT(t, &sides)
	for i, s := range sides {
		buf[i] = m.TOuter(s)
	}
}

// region circulators all share one walk driven by sOfR[r] (spec §4.D):
//
//	s0 <- sOfR[r]; incoming <- s0
//	repeat:
//	  emit f(incoming)
//	  outgoing <- SNext(incoming)
//	  incoming <- halfedges[outgoing]
//	until incoming == -1 or incoming == s0
//
// walkR drives the shared loop, appending f(incoming) to buf each step.
// The -1 guard is a legacy path for pre-ghost-closure meshes (spec §4.D);
// after closure the walk terminates only by returning to s0. A closed mesh
// always terminates because every halfedge is >= 0 and the region's
// incident sides form a single cycle (spec invariant 5).
func (m *Mesh) walkR(r int, buf []int, f func(incoming int) int) []int {
	m.checkRegion(r)
	buf = buf[:0]
	s0 := m.sOfR[r]
	if s0 == sOfRUnset {
		return buf
	}
	incoming := s0
	for {
		buf = append(buf, f(incoming))
		outgoing := SNext(incoming)
		incoming = m.halfedges[outgoing]
		if incoming == -1 || incoming == s0 {
			break
		}
	}
	return buf
}

// SAroundR appends, to buf, the outgoing-context side starting at r for
// each side incident to region r. buf is cleared first; its backing array
// is reused (allocation-free once it has grown to the region's degree).
func (m *Mesh) SAroundR(r int, buf []int) []int {
	return m.walkR(r, buf, func(incoming int) int { return m.halfedges[incoming] })
}

// RAroundR appends, to buf, the neighboring regions of r in circulation
// order.
func (m *Mesh) RAroundR(r int, buf []int) []int {
	return m.walkR(r, buf, func(incoming int) int { return m.RBegin(incoming) })
}

// TAroundR appends, to buf, the triangles incident to region r in
// circulation order.
func (m *Mesh) TAroundR(r int, buf []int) []int {
	return m.walkR(r, buf, func(incoming int) int { return TOf(incoming) })
}
