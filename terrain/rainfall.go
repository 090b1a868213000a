// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package terrain

import (
	"math"
	"sort"
)

// computeWindOrder computes wind_priority for every solid region and
// produces wind_order, a stable ascending-priority permutation (spec §4.E
// step 1). Ties break on id because sort.SliceStable preserves the
// original (ascending-id) relative order of equal-priority elements.
func (tm *Map) computeWindOrder() {
	n := tm.Mesh.NumSolidRegions()
	tm.windPriority = make([]float64, n)
	tm.windOrder = make([]int, n)

	cos := math.Cos(tm.Params.WindAngleRad)
	sin := math.Sin(tm.Params.WindAngleRad)
	for r := 0; r < n; r++ {
		tm.windPriority[r] = tm.Mesh.XOfR(r)*cos + tm.Mesh.YOfR(r)*sin
		tm.windOrder[r] = r
	}
	sort.SliceStable(tm.windOrder, func(i, j int) bool {
		return tm.windPriority[tm.windOrder[i]] < tm.windPriority[tm.windOrder[j]]
	})
}

// computeRainfall sweeps regions in wind_order, averaging humidity over
// upwind neighbors (those with strictly smaller wind_priority, hence
// already visited), applying the boundary/oceanic-source, evaporation, and
// orographic-lift rules of spec §4.E step 4.
func (tm *Map) computeRainfall() {
	n := tm.Mesh.NumSolidRegions()
	tm.HumidityR = make([]float64, n)
	tm.RainfallR = make([]float64, n)

	var rBuf []int
	for _, r := range tm.windOrder {
		rBuf = tm.Mesh.RAroundR(r, rBuf)

		sum := 0.0
		count := 0
		for _, nb := range rBuf {
			if tm.Mesh.IsGhostR(nb) {
				continue
			}
			if tm.windPriority[nb] < tm.windPriority[r] {
				sum += tm.HumidityR[nb]
				count++
			}
		}
		humidity := 0.0
		if count > 0 {
			humidity = sum / float64(count)
		}

		if tm.Mesh.IsBoundaryR(r) {
			humidity = 1.0
		}

		rainfall := tm.Params.Raininess * humidity

		elevation := tm.ElevationR[r]
		if elevation < 0 {
			humidity += tm.Params.Evaporation * math.Abs(elevation)
		}

		threshold := 1 - elevation
		if humidity > threshold {
			excess := humidity - threshold
			rainfall += tm.Params.Raininess * tm.Params.RainShadow * excess
			humidity -= excess
		}

		tm.HumidityR[r] = humidity
		tm.RainfallR[r] = rainfall
	}
}
