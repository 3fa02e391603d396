// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zomorodian/boxisect/boxset"
	"github.com/zomorodian/boxisect/internal/boxtest"
	"github.com/zomorodian/boxisect/scan"
	"github.com/zomorodian/boxisect/sink"
)

func testData(t *testing.T) (a, b *boxset.Set[float32, int], selfPairs, crossPairs []boxtest.Pair[int]) {
	t.Helper()
	boxes := boxtest.RandomBoxes(150, 0, 12345)
	boxes2 := boxtest.RandomBoxes(150, boxes.Len(), 54321)

	self := boxtest.BruteForce[float32](boxes, boxes)
	cross := boxtest.BruteForce[float32](boxes, boxes2)
	require.NotEmpty(t, self)
	require.NotEmpty(t, cross)

	boxes.Sort()
	boxes2.Sort()
	return boxes, boxes2, self, cross
}

func TestOneWayScan(t *testing.T) {
	boxes, _, selfPairs, _ := testData(t)

	var out sink.Ident[int]
	scan.OneWay[float32, int](boxes, boxes, 2, &out)

	assert.True(t, boxtest.Same(selfPairs, identToPairs(out.Pairs)))
}

func TestSimulatedOneWayScan(t *testing.T) {
	boxes, _, selfPairs, _ := testData(t)

	var out sink.Ident[int]
	scan.SimulatedOneWay[float32, int](boxes, boxes, 2, &out)

	assert.True(t, boxtest.Same(selfPairs, identToPairs(out.Pairs)))
}

func TestTwoWayScan(t *testing.T) {
	boxes, boxes2, _, crossPairs := testData(t)

	var out sink.Ident[int]
	scan.TwoWay[float32, int](boxes, boxes2, 2, &out)

	assert.True(t, boxtest.Same(crossPairs, identToPairs(out.Pairs)))
}

func identToPairs(pairs []sink.Pair[int]) []boxtest.Pair[int] {
	out := make([]boxtest.Pair[int], len(pairs))
	for i, p := range pairs {
		out[i] = boxtest.Pair[int]{A: p.A, B: p.B}
	}
	return out
}
