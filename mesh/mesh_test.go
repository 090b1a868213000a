// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/goterra/boundary"
	"github.com/cpmech/goterra/ghost"
)

func squareMesh(tst *testing.T) *Mesh {
	points := []boundary.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	triangles := []int{0, 1, 2, 0, 2, 3}
	halfedges := []int{-1, -1, 3, 2, -1, -1}
	closed, err := ghost.Close(points, triangles, halfedges)
	if err != nil {
		tst.Fatalf("ghost.Close failed: %v", err)
	}
	return New(closed, 4)
}

func TestSideAlgebra(tst *testing.T) {
	cases := []struct{ s, next, prev int }{
		{0, 1, 2}, {1, 2, 0}, {2, 0, 1},
		{3, 4, 5}, {4, 5, 3}, {5, 3, 4},
	}
	for _, c := range cases {
		if got := SNext(c.s); got != c.next {
			tst.Errorf("SNext(%d)=%d want %d", c.s, got, c.next)
		}
		if got := SPrev(c.s); got != c.prev {
			tst.Errorf("SPrev(%d)=%d want %d", c.s, got, c.prev)
		}
		if got := TOf(c.s); got != c.s/3 {
			tst.Errorf("TOf(%d)=%d want %d", c.s, got, c.s/3)
		}
	}
}

func TestOppositeInvolutionAndRelations(tst *testing.T) {
	m := squareMesh(tst)
	for s := 0; s < m.NumSides(); s++ {
		o := m.SOpposite(s)
		if m.SOpposite(o) != s {
			tst.Fatalf("s_opposite(s_opposite(%d)) != %d", s, s)
		}
		if m.RBegin(s) != m.REnd(o) {
			tst.Fatalf("r_begin(%d) != r_end(opposite) ", s)
		}
		if m.TInner(s) != m.TOuter(o) {
			tst.Fatalf("t_inner(%d) != t_outer(opposite)", s)
		}
		if m.RBegin(SNext(s)) != m.RBegin(o) {
			tst.Fatalf("r_begin(s_next(%d)) != r_begin(opposite)", s)
		}
	}
}

func TestTriangleCirculatorStaysWithinTriangle(tst *testing.T) {
	m := squareMesh(tst)
	var sides [3]int
	for t := 0; t < m.NumTriangles(); t++ {
		m.SAroundT(t, &sides)
		for _, s := range sides {
			if m.TInner(s) != t {
				tst.Fatalf("triangle %d: side %d has TInner=%d", t, s, m.TInner(s))
			}
		}
	}
}

func TestRegionCirculatorClosureAndAgreement(tst *testing.T) {
	m := squareMesh(tst)
	var sBuf, rBuf, tBuf []int
	for r := 0; r < m.NumSolidRegions(); r++ {
		sBuf = m.SAroundR(r, sBuf)
		rBuf = m.RAroundR(r, rBuf)
		tBuf = m.TAroundR(r, tBuf)
		if len(sBuf) != len(rBuf) || len(rBuf) != len(tBuf) {
			tst.Fatalf("region %d: circulator lengths disagree s=%d r=%d t=%d", r, len(sBuf), len(rBuf), len(tBuf))
		}
		// s_around_r[i] is the opposite of the i-th incoming side, so it lies
		// in the triangle the walk visited one step earlier.
		n := len(tBuf)
		for i, s := range sBuf {
			if m.RBegin(s) != r {
				tst.Fatalf("region %d: s_around_r[%d]=%d has r_begin=%d", r, i, s, m.RBegin(s))
			}
			if TOf(s) != tBuf[(i+n-1)%n] {
				tst.Fatalf("region %d: t_of(s_around_r[%d]) != t_around_r[%d]", r, i, (i+n-1)%n)
			}
		}
	}
}

func TestGhostClosureLeavesNoUnpaired(tst *testing.T) {
	m := squareMesh(tst)
	for s := 0; s < m.NumSides(); s++ {
		if m.SOpposite(s) < 0 {
			tst.Fatalf("side %d unpaired after ghost closure", s)
		}
	}
}
