// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package terrain

import "container/heap"

// triItem is one entry in the priority-flood min-heap, ordered by
// elevation with id as a deterministic tie-break (spec §9).
type triItem struct {
	t         int
	elevation float64
}

// triHeap implements heap.Interface for a min-heap of triItem, ordered by
// elevation ascending, ties broken by triangle id.
type triHeap []triItem

func (h triHeap) Len() int { return len(h) }

func (h triHeap) Less(i, j int) bool {
	if h[i].elevation != h[j].elevation {
		return h[i].elevation < h[j].elevation
	}
	return h[i].t < h[j].t
}

func (h triHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *triHeap) Push(x interface{}) { *h = append(*h, x.(triItem)) }

func (h *triHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// computeDownslope runs the priority flood of spec §4.E step 5: seed every
// triangle under -0.1 elevation, pointed at its lowest neighbor (or a sink
// if none is lower), then repeatedly relax the lowest-elevation unvisited
// triangle in the queue onto its unassigned uphill neighbors.
func (tm *Map) computeDownslope() {
	n := tm.Mesh.NumSolidTriangles()
	tm.SDownslopeT = make([]int, tm.Mesh.NumTriangles())
	for t := range tm.SDownslopeT {
		tm.SDownslopeT[t] = sDownslopeUnset
	}
	tm.TOrder = tm.TOrder[:0]

	pq := &triHeap{}
	heap.Init(pq)

	var sides [3]int
	for t := 0; t < n; t++ {
		if tm.ElevationT[t] >= -0.1 {
			continue
		}
		tm.Mesh.SAroundT(t, &sides)
		lowestSide := sDownslopeSink
		lowestElevation := tm.ElevationT[t]
		for _, s := range sides {
			nb := tm.Mesh.TOuter(s)
			if tm.Mesh.IsGhostT(nb) {
				continue
			}
			if tm.ElevationT[nb] < lowestElevation {
				lowestElevation = tm.ElevationT[nb]
				lowestSide = s
			}
		}
		tm.SDownslopeT[t] = lowestSide
		tm.TOrder = append(tm.TOrder, t)
		heap.Push(pq, triItem{t: t, elevation: tm.ElevationT[t]})
	}

	for pq.Len() > 0 {
		current := heap.Pop(pq).(triItem).t
		tm.Mesh.SAroundT(current, &sides)
		for _, s := range sides {
			neighbor := tm.Mesh.TOuter(s)
			if tm.Mesh.IsGhostT(neighbor) {
				continue
			}
			if tm.SDownslopeT[neighbor] != sDownslopeUnset {
				continue
			}
			tm.SDownslopeT[neighbor] = tm.Mesh.SOpposite(s)
			tm.TOrder = append(tm.TOrder, neighbor)
			heap.Push(pq, triItem{t: neighbor, elevation: tm.ElevationT[neighbor]})
		}
	}
}
