// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scan implements the pruned-scan fallbacks the hybrid algorithm
// uses below its cutoff, and which are also useful standalone for small
// inputs where the overhead of a recursive segment tree isn't worth it.
//
// All three scans require their input boxset.Set values sorted by axis-0
// low boundary (boxset.Set.Sort); intersecting a set with itself avoids
// double-reporting a pair by comparing identifiers with cmp.Ordered when
// the two boxes tie on axis 0 (OneWay) or on axis maxDimCheck
// (SimulatedOneWay).
package scan

import (
	"cmp"

	"github.com/zomorodian/boxisect/box"
	"github.com/zomorodian/boxisect/boxset"
	"github.com/zomorodian/boxisect/sink"
)

// OneWay reports intersections between intervals and points by scanning
// axis 0, treating points as points: a pair is reported only when the
// axis-0 low boundary of a box in points falls inside the axis-0
// projection of a box in intervals, and every axis in [1, maxDimCheck]
// also intersects. Use this when intervals and points are the same set
// (or represent every box exactly once as both an interval and a point)
// to avoid the asymmetric double counting TwoWay exists to prevent.
func OneWay[T cmp.Ordered, ID cmp.Ordered](intervals, points *boxset.Set[T, ID], maxDimCheck int, s sink.Sink[ID]) {
	pLen := points.Len()
	pMinIdx := 0

	for iIdx := 0; iIdx < intervals.Len(); iIdx++ {
		iBox, iID := intervals.Get(iIdx)
		iMin := iBox.Lo(0)
		iMax := iBox.Hi(0)

		for pMinIdx < pLen {
			pBox, _ := points.Get(pMinIdx)
			if pBox.Lo(0) >= iMin {
				break
			}
			pMinIdx++
		}
		if pMinIdx == pLen {
			return
		}

	points:
		for pIdx := pMinIdx; pIdx < pLen; pIdx++ {
			pBox, pID := points.Get(pIdx)
			pMin := pBox.Lo(0)
			if pMin >= iMax {
				break points
			}
			if pID == iID {
				continue points
			}
			for dim := 1; dim <= maxDimCheck; dim++ {
				if !box.IntersectsIn[T](pBox, dim, iBox.Lo(dim), iBox.Hi(dim)) {
					continue points
				}
			}
			if pMin == iMin && pID > iID {
				continue points
			}
			s.Push(iIdx, pIdx, iID, pID)
		}
	}
}

// TwoWay reports intersections between a and b by scanning axis 0,
// treating each of a and b as both intervals and points in turn, as if
// OneWay were called with their roles switched. Use this when a and b are
// distinct sets.
func TwoWay[T cmp.Ordered, ID cmp.Ordered](a, b *boxset.Set[T, ID], maxDimCheck int, s sink.Sink[ID]) {
	twoWay(a, b, maxDimCheck, false, s)
}

// SimulatedOneWay reports intersections the way OneWay would for axis
// maxDimCheck, but by scanning axis 0 (where the input is actually
// sorted) and simulating the stricter axis-maxDimCheck containment check
// and tie-break that OneWay applies there. It is what the hybrid
// algorithm falls back to below its size cutoff, since its input is
// always sorted on axis 0 regardless of which axis it is currently
// recursing on.
func SimulatedOneWay[T cmp.Ordered, ID cmp.Ordered](intervals, points *boxset.Set[T, ID], maxDimCheck int, s sink.Sink[ID]) {
	twoWay(intervals, points, maxDimCheck, true, s)
}

func twoWay[T cmp.Ordered, ID cmp.Ordered](intervals, points *boxset.Set[T, ID], maxDimCheck int, simulateOneWay bool, s sink.Sink[ID]) {
	iMinIdx, pMinIdx := 0, 0
	iLen, pLen := intervals.Len(), points.Len()

	// dimRangeUpper is the exclusive upper bound of axes checked for plain
	// intersection. A simulated one-way scan applies a stricter
	// containment check to axis maxDimCheck itself instead, so it's
	// excluded from the plain loop.
	dimRangeUpper := maxDimCheck + 1
	if simulateOneWay {
		dimRangeUpper = maxDimCheck
	}

	for iMinIdx < iLen && pMinIdx < pLen {
		iMinBox, iMinID := intervals.Get(iMinIdx)
		pMinBox, pMinID := points.Get(pMinIdx)

		if iMinBox.Lo(0) < pMinBox.Lo(0) {
		points:
			for pIdx := pMinIdx; pIdx < pLen; pIdx++ {
				pBox, pID := points.Get(pIdx)
				if pBox.Lo(0) >= iMinBox.Hi(0) {
					break points
				}
				if pID == iMinID {
					continue points
				}
				for dim := 1; dim < dimRangeUpper; dim++ {
					if !box.IntersectsIn[T](pBox, dim, iMinBox.Lo(dim), iMinBox.Hi(dim)) {
						continue points
					}
				}
				if simulateOneWay {
					if !box.ContainsIn[T](iMinBox, maxDimCheck, pBox.Lo(maxDimCheck)) ||
						(iMinBox.Lo(maxDimCheck) == pBox.Lo(maxDimCheck) && iMinID > pID) {
						continue points
					}
				}
				s.Push(iMinIdx, pIdx, iMinID, pID)
			}
			iMinIdx++
		} else {
			// pMinBox.Lo(0) <= iMinBox.Lo(0): switch the roles of intervals
			// and points for this step.
		intervals:
			for iIdx := iMinIdx; iIdx < iLen; iIdx++ {
				iBox, iID := intervals.Get(iIdx)
				if iBox.Lo(0) >= pMinBox.Hi(0) {
					break intervals
				}
				if iID == pMinID {
					continue intervals
				}
				for dim := 1; dim < dimRangeUpper; dim++ {
					if !box.IntersectsIn[T](iBox, dim, pMinBox.Lo(dim), pMinBox.Hi(dim)) {
						continue intervals
					}
				}
				if simulateOneWay {
					if !box.ContainsIn[T](iBox, maxDimCheck, pMinBox.Lo(maxDimCheck)) ||
						(iBox.Lo(maxDimCheck) == pMinBox.Lo(maxDimCheck) && iID > pMinID) {
						continue intervals
					}
				}
				s.Push(iIdx, pMinIdx, iID, pMinID)
			}
			pMinIdx++
		}
	}
}
