// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package boxset holds a collection of boxes with attached identifiers,
// and the handful of operations the intersection algorithms need to
// consume it: sorting by axis-0 low boundary, filtering and partitioning
// while preserving any existing sort, linear lookup by identifier, and the
// approximate-median sampler over a chosen axis.
package boxset

import (
	"cmp"
	"fmt"
	"math"
	"sort"

	"github.com/zomorodian/boxisect/box"
	"github.com/zomorodian/boxisect/internal/assert"
	"github.com/zomorodian/boxisect/internal/errs"
	"github.com/zomorodian/boxisect/median"
	"github.com/zomorodian/boxisect/rng"
)

// entry pairs a box with its caller-supplied identifier.
type entry[T cmp.Ordered, ID comparable] struct {
	Box box.ND[T]
	ID  ID
}

// Set is a collection of boxes identified by ID. The zero Set is empty and
// ready to use.
type Set[T cmp.Ordered, ID comparable] struct {
	entries []entry[T, ID]

	checkDims bool
	dim       int
}

// New returns an empty Set with the given initial capacity.
func New[T cmp.Ordered, ID comparable](capacity int) *Set[T, ID] {
	return &Set[T, ID]{entries: make([]entry[T, ID], 0, capacity)}
}

// NewWithDims returns an empty Set with the given initial capacity, like
// New, except that every box pushed with PushErr afterward is checked
// against the dimension of the first box pushed to the set. Use this
// constructor when boxes arrive from a source (user input, a file) that
// might not already guarantee a consistent Box.Dim() across entries;
// Push itself never checks this, since the hybrid algorithm's internal
// recursion always derives child sets from an already-consistent parent.
func NewWithDims[T cmp.Ordered, ID comparable](capacity int) *Set[T, ID] {
	return &Set[T, ID]{entries: make([]entry[T, ID], 0, capacity), checkDims: true, dim: -1}
}

// Push adds a box to the set under the given identifier. id must be unique
// within the set for Find and the intersection algorithms' tie-breaking to
// behave sensibly.
func (s *Set[T, ID]) Push(id ID, b box.ND[T]) {
	s.entries = append(s.entries, entry[T, ID]{Box: b, ID: id})
}

// PushErr is Push for a Set constructed with NewWithDims: it reports an
// *errs.Error with Kind Invalid if b's dimension disagrees with the
// dimension of whichever box was pushed first, and otherwise behaves
// exactly like Push. Calling PushErr on a Set constructed with New is
// equivalent to calling Push; no dimension is ever recorded or checked.
func (s *Set[T, ID]) PushErr(id ID, b box.ND[T]) error {
	if s.checkDims {
		if s.dim == -1 {
			s.dim = b.Dim()
		} else if b.Dim() != s.dim {
			return errs.E(errs.Invalid, fmt.Sprintf("boxset: box has dim %d, set has dim %d", b.Dim(), s.dim))
		}
	}
	s.Push(id, b)
	return nil
}

// Clear removes all boxes from the set, retaining its backing array.
func (s *Set[T, ID]) Clear() {
	s.entries = s.entries[:0]
}

// Len returns the number of boxes in the set.
func (s *Set[T, ID]) Len() int {
	return len(s.entries)
}

// Empty reports whether the set has no boxes.
func (s *Set[T, ID]) Empty() bool {
	return s.Len() == 0
}

// Get returns the box and identifier at position idx.
func (s *Set[T, ID]) Get(idx int) (box.ND[T], ID) {
	e := s.entries[idx]
	return e.Box, e.ID
}

// Sort orders the boxes in the set by their low boundary on axis 0. The
// recursive algorithms require their input pre-sorted this way.
func (s *Set[T, ID]) Sort() {
	sort.Slice(s.entries, func(i, j int) bool {
		return s.entries[i].Box.Lo(0) < s.entries[j].Box.Lo(0)
	})
}

// Find performs a linear search for the box with the given identifier,
// returning ok=false if none is found.
func (s *Set[T, ID]) Find(id ID) (b box.ND[T], ok bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e.Box, true
		}
	}
	return box.ND[T]{}, false
}

// FindErr is Find for callers who would rather handle a missing
// identifier as an error than a bool: it returns an *errs.Error with Kind
// NotExist, matched by errs.Is(errs.NotExist, err), when id is absent.
func (s *Set[T, ID]) FindErr(id ID) (box.ND[T], error) {
	b, ok := s.Find(id)
	if !ok {
		return box.ND[T]{}, errs.E(errs.NotExist, fmt.Sprintf("boxset: id %v not found", id))
	}
	return b, nil
}

// Filter returns a new Set containing only the entries for which pred
// returns true. If s is sorted by axis 0, the result remains sorted.
func (s *Set[T, ID]) Filter(pred func(b box.ND[T], id ID) bool) *Set[T, ID] {
	out := &Set[T, ID]{entries: make([]entry[T, ID], 0, len(s.entries))}
	for _, e := range s.entries {
		if pred(e.Box, e.ID) {
			out.entries = append(out.entries, e)
		}
	}
	return out
}

// Partition splits the set into two: entries for which pred returns true,
// and entries for which it returns false. If s is sorted by axis 0, both
// results remain sorted.
func (s *Set[T, ID]) Partition(pred func(b box.ND[T], id ID) bool) (yes, no *Set[T, ID]) {
	yes = &Set[T, ID]{entries: make([]entry[T, ID], 0, len(s.entries))}
	no = &Set[T, ID]{entries: make([]entry[T, ID], 0, len(s.entries))}
	for _, e := range s.entries {
		if pred(e.Box, e.ID) {
			yes.entries = append(yes.entries, e)
		} else {
			no.entries = append(no.entries, e)
		}
	}
	return yes, no
}

// ApproxMedian returns an approximate median of the low boundaries on the
// given axis, via median.Approx over a logarithmic-depth sample of random
// draws. The sample depth follows the formula used by CGAL's segment tree
// implementation: levels = max(1, floor(0.91 * ln(n/137 + 1))), which
// keeps the number of draws (3^levels) small even for very large sets.
func (s *Set[T, ID]) ApproxMedian(axis int, r rng.Source) T {
	assert.True(!s.Empty(), "boxset: ApproxMedian called on an empty set")

	points := make([]T, len(s.entries))
	for i, e := range s.entries {
		points[i] = e.Box.Lo(axis)
	}

	levels := approxMedianLevels(len(points))
	cap3 := pow3(levels)
	randomIndices := make([]int, 0, cap3)
	for i := 0; i < cap3; i++ {
		randomIndices = append(randomIndices, r.IntN(len(points)))
	}
	return median.Approx(points, levels, &randomIndices)
}

func approxMedianLevels(n int) int {
	levels := int(math.Floor(0.91 * math.Log(float64(n)/137.0+1.0)))
	if levels == 0 {
		levels = 1
	}
	return levels
}

func pow3(levels int) int {
	v := 1
	for i := 0; i < levels; i++ {
		v *= 3
	}
	return v
}
