// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package boxisect finds every intersecting pair of axis-aligned boxes
// between two sets, using Zomorodian and Edelsbrunner's hybrid streamed
// segment tree algorithm (IntersectZE), a pruned scan
// (IntersectScan), or brute force (IntersectBruteForce), depending on how
// many boxes are involved. See the hybrid, scan, box, and boxset packages
// for the pieces this assembles.
package boxisect

import (
	"cmp"
	"math"

	"github.com/zomorodian/boxisect/box"
	"github.com/zomorodian/boxisect/boxset"
	"github.com/zomorodian/boxisect/hybrid"
	"github.com/zomorodian/boxisect/rng"
	"github.com/zomorodian/boxisect/scan"
	"github.com/zomorodian/boxisect/sink"
)

// DefaultCutoff is the cutoff IntersectZE uses: it gives reasonable
// performance for up to around 100,000 boxes. Larger inputs, or inputs
// with unusually high intersection density, may benefit from a smaller
// cutoff via IntersectZECustom.
const DefaultCutoff = 1000

type floatOrdered interface {
	~float32 | ~float64
}

// dim returns the dimensionality shared by a and b, derived from either
// set's first box. If both are empty there is nothing to intersect, so
// callers never reach the point of needing dim.
func dim[T cmp.Ordered, ID comparable](a, b *boxset.Set[T, ID]) int {
	if !a.Empty() {
		bx, _ := a.Get(0)
		return bx.Dim()
	}
	bx, _ := b.Get(0)
	return bx.Dim()
}

// IntersectZE finds every intersecting pair of boxes between a and b
// using the hybrid algorithm with DefaultCutoff, reporting identifiers to
// s. a and b must be sorted (boxset.Set.Sort) before calling, and may be
// the same set.
func IntersectZE[T floatOrdered, ID cmp.Ordered](a, b *boxset.Set[T, ID], s sink.Sink[ID], r rng.Source) {
	IntersectZECustom(a, b, DefaultCutoff, s, r)
}

// IntersectZECustom is IntersectZE with a caller-supplied cutoff.
func IntersectZECustom[T floatOrdered, ID cmp.Ordered](a, b *boxset.Set[T, ID], cutoff int, s sink.Sink[ID], r rng.Source) {
	if a.Empty() && b.Empty() {
		return
	}
	d := dim(a, b)
	lo, hi := T(math.Inf(-1)), T(math.Inf(1))
	if a == b {
		// One set is enough to have every box represented as both an
		// interval and a point.
		hybrid.Run[T, ID](a, a, lo, hi, d-1, cutoff, s, r)
		return
	}
	// Two sets are needed so that every box is represented as both an
	// interval and a point.
	hybrid.Run[T, ID](a, b, lo, hi, d-1, cutoff, s, r)
	hybrid.Run[T, ID](b, a, lo, hi, d-1, cutoff, s, r)
}

// IntersectScan finds every intersecting pair of boxes between a and b
// using a pruned scan, without building a segment tree. It performs
// reasonably up to around 1,000 boxes. a and b must be sorted
// (boxset.Set.Sort) before calling, and may be the same set.
func IntersectScan[T cmp.Ordered, ID cmp.Ordered](a, b *boxset.Set[T, ID], s sink.Sink[ID]) {
	if a.Empty() && b.Empty() {
		return
	}
	d := dim(a, b)
	if a == b {
		scan.OneWay[T, ID](a, b, d-1, s)
		return
	}
	scan.TwoWay[T, ID](a, b, d-1, s)
}

// IntersectBruteForce finds every intersecting pair of boxes between a
// and b by checking every box in a against every box in b, in O(len(a) *
// len(b)). It performs well for around 100 boxes. a and b may be the same
// set, in which case only ordered pairs (i, j) with i < j are checked, to
// avoid reporting both (id1, id2) and (id2, id1) for the same
// intersection.
func IntersectBruteForce[T cmp.Ordered, ID comparable](a, b *boxset.Set[T, ID], s sink.Sink[ID]) {
	if a == b {
		for i := 0; i < a.Len(); i++ {
			bi, idi := a.Get(i)
			for j := i + 1; j < a.Len(); j++ {
				bj, idj := a.Get(j)
				if box.Intersects[T](bi, bj) {
					s.Push(i, j, idi, idj)
				}
			}
		}
		return
	}
	for i := 0; i < a.Len(); i++ {
		bi, idi := a.Get(i)
		for j := 0; j < b.Len(); j++ {
			bj, idj := b.Get(j)
			if box.Intersects[T](bi, bj) {
				s.Push(i, j, idi, idj)
			}
		}
	}
}
