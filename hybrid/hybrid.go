// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package hybrid implements Zomorodian and Edelsbrunner's hybrid
// algorithm for box intersection: a streamed segment tree that recurses
// one dimension at a time, falling back to a pruned scan once a single
// dimension remains to check or once either input shrinks below a size
// cutoff. See "Fast software for box intersections"
// (https://dl.acm.org/doi/10.1145/336154.336192); this implementation
// follows the streamed-segment-tree construction used by CGAL's
// Box_intersection_d.
package hybrid

import (
	"cmp"
	"math"

	"github.com/zomorodian/boxisect/box"
	"github.com/zomorodian/boxisect/boxset"
	"github.com/zomorodian/boxisect/internal/assert"
	"github.com/zomorodian/boxisect/log"
	"github.com/zomorodian/boxisect/rng"
	"github.com/zomorodian/boxisect/scan"
	"github.com/zomorodian/boxisect/sink"
)

// floatOrdered restricts Run's bound type to the floating-point types
// box.Inf supports, since every recursive call below the root needs a
// (-Inf, +Inf) segment for the next dimension down.
type floatOrdered interface {
	~float32 | ~float64
}

// Run reports every box in intervals that intersects a box in points,
// restricted to the half-open segment [lo, hi) on axis dim and below.
// Both sets must already be sorted on axis 0 (boxset.Set.Sort). Callers
// normally invoke Run once with dim set to the highest axis index and
// [lo, hi) spanning the whole of that axis (box.Inf's bounds), letting the
// recursion fan out into lower dimensions on its own.
//
// cutoff controls the second hybridization step: once either intervals or
// points drops below cutoff boxes, Run falls back to a pruned scan rather
// than continuing to recurse. A cutoff around 1000 performs well up to
// roughly 100,000 boxes; smaller inputs can use a much smaller cutoff.
func Run[T floatOrdered, ID cmp.Ordered](intervals, points *boxset.Set[T, ID], lo, hi T, dim, cutoff int, s sink.Sink[ID], r rng.Source) {
	// Step 1: empty input, or an empty segment, contributes nothing.
	if intervals.Empty() || points.Empty() || hi <= lo {
		return
	}

	// Step 2: first hybridization method — once dimension 0 is the only
	// one left to check, a plain scan suffices.
	if dim == 0 {
		scan.OneWay[T, ID](intervals, points, 0, s)
		return
	}

	// Step 3: second hybridization method — below the cutoff, a simulated
	// one-way scan (still sorted on axis 0) is cheaper than recursing.
	if intervals.Len() < cutoff || points.Len() < cutoff {
		scan.SimulatedOneWay[T, ID](intervals, points, dim, s)
		return
	}

	log.Debug.Printf("hybrid: dim=%d [%v,%v) intervals=%d points=%d", dim, lo, hi, intervals.Len(), points.Len())

	// Step 4: intervalsM holds the intervals that span [lo, hi) entirely —
	// [lo, hi) is one of their canonical segments, so they belong at this
	// node of the segment tree rather than further down it. intervalsLR
	// holds the rest.
	intervalsM, intervalsLR := intervals.Partition(func(b box.ND[T], _ ID) bool {
		return b.Lo(dim) < lo && b.Hi(dim) > hi
	})

	ninfty, infty := T(math.Inf(-1)), T(math.Inf(1))

	// Step 4 (cont.): stream two segment trees in the next dimension down
	// for the intervals stored at this node, so every box in intervalsM is
	// checked both as an interval and as a point.
	Run[T, ID](intervalsM, points, ninfty, infty, dim-1, cutoff, s, r)
	Run[T, ID](points, intervalsM, ninfty, infty, dim-1, cutoff, s, r)

	// Step 5: split [lo, hi) into [lo, mi) and [mi, hi) by an approximate
	// median of the points' low boundaries on this axis.
	mi := points.ApproxMedian(dim, r)
	assert.Truef(lo <= mi && mi <= hi, "hybrid: median %v outside segment [%v, %v)", mi, lo, hi)

	if mi == hi || mi == lo {
		// The sample failed to split the segment; scanning is no worse
		// than recursing into a degenerate subtree.
		scan.SimulatedOneWay[T, ID](intervalsLR, points, dim, s)
		return
	}

	pointsL, pointsR := points.Partition(func(b box.ND[T], _ ID) bool {
		return b.Lo(dim) < mi
	})

	intervalsL := boxset.New[T, ID](intervalsLR.Len())
	intervalsR := boxset.New[T, ID](intervalsLR.Len())
	for i := 0; i < intervalsLR.Len(); i++ {
		b, id := intervalsLR.Get(i)
		if b.Lo(dim) < mi {
			intervalsL.Push(id, b)
		}
		if b.Hi(dim) > mi {
			intervalsR.Push(id, b)
		}
	}

	// Step 6: left subtree.
	Run[T, ID](intervalsL, pointsL, lo, mi, dim, cutoff, s, r)
	// Step 7: right subtree.
	Run[T, ID](intervalsR, pointsR, mi, hi, dim, cutoff, s, r)
}
