// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package box defines the axis-aligned box contract shared by the rest of
// this module: a fixed-dimension product of half-open intervals [lo, hi),
// along with the containment and intersection predicates the intersection
// algorithms are built on.
package box

import "cmp"

// A Box is a Dim-dimensional axis-aligned box: the cartesian product of Dim
// half-open intervals [Lo(k), Hi(k)), k in [0, Dim). Implementations need
// only be comparable in the sense of cmp.Ordered on their bound type T;
// Box itself does not require T to support infinities.
type Box[T cmp.Ordered] interface {
	// Dim returns the number of axes this box has. Dim is assumed constant
	// for all boxes compared against one another.
	Dim() int
	// Lo returns the low (inclusive) boundary of this box on axis k.
	Lo(k int) T
	// Hi returns the high (exclusive) boundary of this box on axis k.
	Hi(k int) T
}

// ContainsIn reports whether b's projection onto axis k contains point,
// i.e. whether b.Lo(k) <= point < b.Hi(k).
func ContainsIn[T cmp.Ordered](b Box[T], k int, point T) bool {
	return b.Lo(k) <= point && point < b.Hi(k)
}

// IntersectsIn reports whether b's projection onto axis k intersects the
// half-open interval [lo, hi).
func IntersectsIn[T cmp.Ordered](b Box[T], k int, lo, hi T) bool {
	return b.Lo(k) < hi && lo < b.Hi(k)
}

// Intersects reports whether a and b intersect: whether every axis
// projection of a intersects the corresponding axis projection of b. a and
// b must have the same Dim.
func Intersects[T cmp.Ordered](a, b Box[T]) bool {
	for k := 0; k < a.Dim(); k++ {
		if !IntersectsIn(a, k, b.Lo(k), b.Hi(k)) {
			return false
		}
	}
	return true
}
