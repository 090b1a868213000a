// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package terrain

import (
	"github.com/cpmech/goterra/noise"
)

// computeTriangleElevation samples DesiredElevation at each solid
// triangle's center, adds the NoisyCoastlines term, and clamps to [-1, 1]
// (spec §4.E step 2).
func (tm *Map) computeTriangleElevation() {
	n := tm.Mesh.NumSolidTriangles()
	tm.ElevationT = make([]float64, tm.Mesh.NumTriangles())
	for t := 0; t < n; t++ {
		x := tm.Mesh.XOfT(t) / 1000
		y := tm.Mesh.YOfT(t) / 1000
		e := noise.DesiredElevation(tm.noise, x, y, tm.Params.Island)
		e += tm.Params.NoisyCoastlines * (1 - e*e*e*e)
		tm.ElevationT[t] = clamp(e, -1, 1)
	}
}

// computeRegionElevation averages ElevationT over the solid triangles
// incident to each solid region; if any incident triangle is under water
// and the average is not, the region is forced to -0.001 so no spurious
// land pixel sticks out of water (spec §4.E step 3).
func (tm *Map) computeRegionElevation() {
	n := tm.Mesh.NumSolidRegions()
	tm.ElevationR = make([]float64, n)
	var tBuf []int
	for r := 0; r < n; r++ {
		tBuf = tm.Mesh.TAroundR(r, tBuf)
		sum := 0.0
		count := 0
		anyUnderwater := false
		for _, t := range tBuf {
			if tm.Mesh.IsGhostT(t) {
				continue
			}
			e := tm.ElevationT[t]
			sum += e
			count++
			if e < 0 {
				anyUnderwater = true
			}
		}
		avg := 0.0
		if count > 0 {
			avg = sum / float64(count)
		}
		if anyUnderwater && avg >= 0 {
			avg = -0.001
		}
		tm.ElevationR[r] = avg
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// computeMoisture sets MoistureT[t] to the mean of RainfallR over the
// three regions at t (spec §4.E step 6).
func (tm *Map) computeMoisture() {
	n := tm.Mesh.NumSolidTriangles()
	tm.MoistureT = make([]float64, tm.Mesh.NumTriangles())
	var rBuf [3]int
	for t := 0; t < n; t++ {
		tm.Mesh.RAroundT(t, &rBuf)
		sum := 0.0
		for _, r := range rBuf {
			if tm.Mesh.IsGhostR(r) {
				continue
			}
			sum += tm.RainfallR[r]
		}
		tm.MoistureT[t] = sum / 3
	}
}
