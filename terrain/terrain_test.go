// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package terrain

import (
	"testing"

	"github.com/cpmech/goterra/boundary"
	"github.com/cpmech/goterra/config"
	"github.com/cpmech/goterra/delaunay"
	"github.com/cpmech/goterra/ghost"
	"github.com/cpmech/goterra/mesh"
	"github.com/cpmech/goterra/noise"
)

// buildMesh runs the full boundary -> delaunay -> ghost -> mesh pipeline
// (spec §2 data flow) for a small deterministic fixture, used throughout
// this package's tests.
func buildMesh(tst *testing.T, p config.Params) *mesh.Mesh {
	tst.Helper()
	points, numBoundary := boundary.GeneratePoints(p)
	result, err := delaunay.Triangulate(points)
	if err != nil {
		tst.Fatalf("Triangulate failed: %v", err)
	}
	closed, err := ghost.Close(points, result.Triangles, result.Halfedges)
	if err != nil {
		tst.Fatalf("ghost.Close failed: %v", err)
	}
	return mesh.New(closed, numBoundary)
}

func smallParams() config.Params {
	p := config.Default()
	p.Bounds = config.Bounds{Left: 0, Top: 0, Width: 1000, Height: 1000}
	p.Spacing = 100
	p.Seed = 287
	return p
}

func TestDownslopeTotality(tst *testing.T) {
	p := smallParams()
	m := buildMesh(tst, p)
	tm := New(m, p, noise.NewLatticeSource(p.Seed, 4))
	tm.Run(false)

	for t := 0; t < m.NumSolidTriangles(); t++ {
		if tm.SDownslopeT[t] == sDownslopeUnset {
			tst.Fatalf("triangle %d left unassigned after the flood", t)
		}
	}
}

func TestPipelineDeterministic(tst *testing.T) {
	p := smallParams()
	m1 := buildMesh(tst, p)
	m2 := buildMesh(tst, p)

	tm1 := New(m1, p, noise.NewLatticeSource(p.Seed, 4))
	tm1.Run(false)
	tm2 := New(m2, p, noise.NewLatticeSource(p.Seed, 4))
	tm2.Run(false)

	if len(tm1.ElevationR) != len(tm2.ElevationR) {
		tst.Fatalf("region counts differ: %d vs %d", len(tm1.ElevationR), len(tm2.ElevationR))
	}
	for r := range tm1.ElevationR {
		if tm1.ElevationR[r] != tm2.ElevationR[r] {
			tst.Fatalf("region %d elevation differs across identical runs: %v vs %v", r, tm1.ElevationR[r], tm2.ElevationR[r])
		}
		if tm1.RainfallR[r] != tm2.RainfallR[r] {
			tst.Fatalf("region %d rainfall differs across identical runs", r)
		}
	}
	for s := range tm1.FlowS {
		if tm1.FlowS[s] != tm2.FlowS[s] {
			tst.Fatalf("side %d flow differs across identical runs", s)
		}
	}
}

func TestFlowConservationAlongADownslopeChain(tst *testing.T) {
	p := smallParams()
	m := buildMesh(tst, p)
	tm := New(m, p, noise.NewLatticeSource(p.Seed, 4))
	tm.Run(false)

	for t := 0; t < m.NumSolidTriangles(); t++ {
		s := tm.SDownslopeT[t]
		if s == sDownslopeSink {
			continue
		}
		downstream := m.TOuter(s)
		if tm.FlowT[downstream] < tm.FlowT[t]-1e-9 {
			tst.Fatalf("triangle %d's flow %v exceeds downstream %d's flow %v", t, tm.FlowT[t], downstream, tm.FlowT[downstream])
		}
	}
}
