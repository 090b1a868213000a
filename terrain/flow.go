// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package terrain

// computeFlow walks TOrder in reverse, accumulating each tributary's flow
// into its downstream neighbor and into the downslope side itself, and
// lake-filling any downstream land triangle that is (still) higher than
// its land tributary (spec §4.E step 7).
func (tm *Map) computeFlow() {
	n := tm.Mesh.NumSolidTriangles()
	tm.FlowT = make([]float64, tm.Mesh.NumTriangles())
	tm.FlowS = make([]float64, tm.Mesh.NumSides())

	for t := 0; t < n; t++ {
		if tm.ElevationT[t] < 0 {
			continue
		}
		m := tm.MoistureT[t]
		tm.FlowT[t] = tm.Params.Flow * m * m
	}

	for i := len(tm.TOrder) - 1; i >= 0; i-- {
		tributary := tm.TOrder[i]
		s := tm.SDownslopeT[tributary]
		if s == sDownslopeSink {
			continue
		}
		downstream := tm.Mesh.TOuter(s)

		tm.FlowT[downstream] += tm.FlowT[tributary]
		tm.FlowS[s] += tm.FlowT[tributary]

		tributaryIsLand := tm.ElevationT[tributary] >= 0
		downstreamIsLand := tm.ElevationT[downstream] >= 0
		if tributaryIsLand && downstreamIsLand && tm.ElevationT[downstream] > tm.ElevationT[tributary] {
			tm.ElevationT[downstream] = tm.ElevationT[tributary]
		}
	}
}
