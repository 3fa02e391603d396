// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package box

import (
	"cmp"
	"fmt"
	"math"
)

// ND is a concrete, slice-backed N-dimensional Box. Its two slices must
// have equal, nonzero length, and lo[k] <= hi[k] must hold on every axis.
// New panics if the lengths differ; a zero length or lo[k] > hi[k] is not
// checked.
type ND[T cmp.Ordered] struct {
	lo, hi []T
}

// New constructs an ND box from parallel low and high boundary slices,
// indexed by axis. New copies neither slice's backing array; callers must
// not mutate lo or hi afterward.
func New[T cmp.Ordered](lo, hi []T) ND[T] {
	if len(lo) != len(hi) {
		panic(fmt.Sprintf("box: mismatched dimension: len(lo)=%d, len(hi)=%d", len(lo), len(hi)))
	}
	return ND[T]{lo: lo, hi: hi}
}

// Dim implements Box.
func (b ND[T]) Dim() int { return len(b.lo) }

// Lo implements Box.
func (b ND[T]) Lo(k int) T { return b.lo[k] }

// Hi implements Box.
func (b ND[T]) Hi(k int) T { return b.hi[k] }

// Bounds returns copies of b's low and high boundary slices, indexed by
// axis. It exists so callers outside this package (notably boxset's gob
// support) can round-trip a box without depending on its internal layout.
func (b ND[T]) Bounds() (lo, hi []T) {
	lo = make([]T, len(b.lo))
	hi = make([]T, len(b.hi))
	copy(lo, b.lo)
	copy(hi, b.hi)
	return lo, hi
}

// floatOrdered restricts a type parameter to the floating-point types that
// carry signed infinities, mirroring the original implementation's
// HasInfinity trait (implemented there only for f32 and f64). Only the
// entry points that need a root segment spanning the whole axis require
// this narrower constraint; the rest of this module's generic surface uses
// the broader cmp.Ordered.
type floatOrdered interface {
	~float32 | ~float64
}

// Inf returns an ND box whose bounds span (-Inf, +Inf) on every one of the
// given number of axes: the same (-Inf, +Inf) bounds that hybrid.Run's
// callers pass as the root segment, which contains every input box
// regardless of its actual bounds.
func Inf[T floatOrdered](dim int) ND[T] {
	lo := make([]T, dim)
	hi := make([]T, dim)
	for k := range lo {
		lo[k] = T(math.Inf(-1))
		hi[k] = T(math.Inf(1))
	}
	return ND[T]{lo: lo, hi: hi}
}
