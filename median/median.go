// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package median provides the approximate median-of-medians sampler the
// hybrid algorithm uses to pick a splitting value without sorting its
// input. Rather than a true median, it samples a small, logarithmic-depth
// tree of median-of-three calls over randomly drawn elements, which is
// sufficient to keep the recursive segment-tree build balanced in
// expectation.
package median

import "cmp"

// OfThree returns the median of a, b, and c under cmp.Ordered's natural
// order.
func OfThree[T cmp.Ordered](a, b, c T) T {
	if a > b {
		if b > c {
			return b
		}
		if a > c {
			return c
		}
		return a
	}
	if b < c {
		return b
	}
	if a > c {
		return a
	}
	return c
}

// Approx computes an approximate median of items by recursively taking
// OfThree of three sub-medians, levels deep. At the base case (levels==0)
// it pops one index off the back of randomIndices and returns items at
// that index. The caller must supply enough random indices to exhaust
// every leaf of the depth-levels ternary recursion, i.e. at least
// 3^levels entries; Approx consumes exactly that many.
func Approx[T cmp.Ordered](items []T, levels int, randomIndices *[]int) T {
	if levels == 0 {
		idx := pop(randomIndices)
		return items[idx]
	}
	a := Approx(items, levels-1, randomIndices)
	b := Approx(items, levels-1, randomIndices)
	c := Approx(items, levels-1, randomIndices)
	return OfThree(a, b, c)
}

func pop(s *[]int) int {
	n := len(*s)
	v := (*s)[n-1]
	*s = (*s)[:n-1]
	return v
}
