// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package median_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zomorodian/boxisect/median"
)

func TestOfThree(t *testing.T) {
	cases := []struct{ a, b, c, want int }{
		{1, 2, 3, 2},
		{3, 2, 1, 2},
		{2, 1, 3, 2},
		{2, 3, 1, 2},
		{5, 5, 5, 5},
		{1, 1, 2, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, median.OfThree(c.a, c.b, c.c))
	}
}

func TestApproxBaseCase(t *testing.T) {
	items := []int{10, 20, 30, 40}
	indices := []int{2}
	assert.Equal(t, 30, median.Approx(items, 0, &indices))
	assert.Empty(t, indices)
}

func TestApproxConsumesExactly3ToTheLevels(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	const levels = 2
	indices := make([]int, 9) // 3^2
	for i := range indices {
		indices[i] = i % len(items)
	}
	got := median.Approx(items, levels, &indices)
	assert.Empty(t, indices)
	assert.GreaterOrEqual(t, got, 1)
	assert.LessOrEqual(t, got, 5)
}
