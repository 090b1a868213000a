// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"testing"

	"github.com/cpmech/goterra/boundary"
	"github.com/cpmech/goterra/ghost"
	"github.com/cpmech/goterra/mesh"
)

func squareMesh(tst *testing.T) (*mesh.Mesh, []boundary.Point, []int, []int) {
	points := []boundary.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	triangles := []int{0, 1, 2, 0, 2, 3}
	halfedges := []int{-1, -1, 3, 2, -1, -1}
	closed, err := ghost.Close(points, triangles, halfedges)
	if err != nil {
		tst.Fatalf("ghost.Close failed: %v", err)
	}
	return mesh.New(closed, 4), points, triangles, halfedges
}

func TestPreClosureInvolution(tst *testing.T) {
	_, points, triangles, halfedges := squareMesh(tst)
	report, err := PreClosure(points, triangles, halfedges)
	if err != nil {
		tst.Fatalf("PreClosure failed: %v", err)
	}
	if report.NumTriangles != 2 {
		tst.Fatalf("NumTriangles=%d want 2", report.NumTriangles)
	}
}

func TestPreClosureDetectsBrokenInvolution(tst *testing.T) {
	points := []boundary.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	triangles := []int{0, 1, 2, 0, 2, 3}
	halfedges := []int{-1, -1, 3, 4, -1, -1} // 2->3 broken: halfedges[3]=4 but halfedges[4]=-1
	if _, err := PreClosure(points, triangles, halfedges); err == nil {
		tst.Fatal("expected PreClosure to detect the broken involution")
	}
}

func TestVerifyPassesOnClosedMesh(tst *testing.T) {
	m, _, _, _ := squareMesh(tst)
	if err := Verify(m); err != nil {
		tst.Fatalf("Verify failed on a correctly closed mesh: %v", err)
	}
}

// TestCirculatorAgreement is spec §8 scenario S5: for every non-ghost
// region, the three circulators agree in length and in the multiset of
// triangles visited.
func TestCirculatorAgreement(tst *testing.T) {
	m, _, _, _ := squareMesh(tst)
	var sBuf, rBuf, tBuf []int
	for r := 0; r < m.NumSolidRegions(); r++ {
		sBuf = m.SAroundR(r, sBuf)
		rBuf = m.RAroundR(r, rBuf)
		tBuf = m.TAroundR(r, tBuf)
		if len(sBuf) != len(rBuf) || len(rBuf) != len(tBuf) {
			tst.Fatalf("region %d: circulator length mismatch", r)
		}
		seen := make(map[int]int)
		for _, s := range sBuf {
			seen[mesh.TOf(s)]++
		}
		for _, t := range tBuf {
			seen[t]--
		}
		for t, count := range seen {
			if count != 0 {
				tst.Fatalf("region %d: t_of(s_around_r) and t_around_r multisets disagree at triangle %d", r, t)
			}
		}
	}
}
