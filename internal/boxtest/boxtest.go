// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package boxtest provides shared test fixtures for this module's
// intersection algorithms: a random 3-dimensional box generator and a
// brute-force reference implementation to validate the faster algorithms
// against, along with an order-insensitive comparison for their pair
// output. It is a test-only package, imported solely from _test.go files.
package boxtest

import (
	"math"
	"math/rand"

	"github.com/zomorodian/boxisect/box"
	"github.com/zomorodian/boxisect/boxset"
)

// RandomBoxes returns n random 3-dimensional boxes, identified by
// consecutive integers starting at start, deterministically generated
// from seed. Box sizes scale with n roughly as n^(2/3), the same
// heuristic the reference fixture generator uses to keep intersection
// density roughly constant as n grows.
func RandomBoxes(n, start int, seed int64) *boxset.Set[float32, int] {
	r := rand.New(rand.NewSource(seed))
	set := boxset.New[float32, int](n)

	lenMax := int(math.Floor(math.Pow(float64(n), 2.0/3.0)))
	if lenMax < 1 {
		lenMax = 1
	}
	loMax := n - lenMax
	if loMax < 2 {
		loMax = 2
	}

	for i := start; i < start+n; i++ {
		lo := make([]float32, 3)
		hi := make([]float32, 3)
		for d := 0; d < 3; d++ {
			l := 1 + r.Intn(loMax-1)
			h := l + 1 + r.Intn(lenMax)
			lo[d] = float32(l)
			hi[d] = float32(h)
		}
		set.Push(i, box.New(lo, hi))
	}
	return set
}

// BruteForce finds every intersecting pair between a and b by checking
// every box in a against every box in b, in O(len(a) * len(b)). When a
// and b are the same set (by pointer identity), only ordered pairs (i, j)
// with i < j are checked, to avoid reporting both (id1, id2) and (id2,
// id1) for the same intersection.
func BruteForce[T float32 | float64, ID comparable](a, b *boxset.Set[T, ID]) []Pair[ID] {
	var out []Pair[ID]
	if a == b {
		for i := 0; i < a.Len(); i++ {
			bi, idi := a.Get(i)
			for j := i + 1; j < a.Len(); j++ {
				bj, idj := a.Get(j)
				if box.Intersects[T](bi, bj) {
					out = append(out, Pair[ID]{idi, idj})
				}
			}
		}
		return out
	}
	for i := 0; i < a.Len(); i++ {
		bi, idi := a.Get(i)
		for j := 0; j < b.Len(); j++ {
			bj, idj := b.Get(j)
			if box.Intersects[T](bi, bj) {
				out = append(out, Pair[ID]{idi, idj})
			}
		}
	}
	return out
}

// Pair is an ordered pair of identifiers.
type Pair[ID comparable] struct {
	A, B ID
}

// Same reports whether a and b contain the same multiset of pairs, up to
// swapping each pair's two elements — the algorithms under test and the
// brute-force reference don't always agree on which element of a pair
// comes first.
func Same[ID comparable](a, b []Pair[ID]) bool {
	if len(a) != len(b) {
		return false
	}
	remaining := make([]Pair[ID], len(b))
	copy(remaining, b)
	for _, p := range a {
		found := -1
		for i, q := range remaining {
			if q == p || q == (Pair[ID]{p.B, p.A}) {
				found = i
				break
			}
		}
		if found < 0 {
			return false
		}
		remaining[found] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}
	return true
}
