// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package boxset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zomorodian/boxisect/box"
	"github.com/zomorodian/boxisect/boxset"
	"github.com/zomorodian/boxisect/internal/errs"
	"github.com/zomorodian/boxisect/rng"
)

func mkSet(t *testing.T) *boxset.Set[float64, int] {
	t.Helper()
	s := boxset.New[float64, int](4)
	s.Push(0, box.New([]float64{3, 0}, []float64{4, 1}))
	s.Push(1, box.New([]float64{1, 0}, []float64{2, 1}))
	s.Push(2, box.New([]float64{2, 0}, []float64{3, 1}))
	return s
}

func TestPushLenEmpty(t *testing.T) {
	s := boxset.New[float64, int](0)
	assert.True(t, s.Empty())
	s.Push(0, box.New([]float64{0}, []float64{1}))
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Empty())
	s.Clear()
	assert.True(t, s.Empty())
}

func TestSort(t *testing.T) {
	s := mkSet(t)
	s.Sort()
	for i := 0; i < s.Len()-1; i++ {
		a, _ := s.Get(i)
		b, _ := s.Get(i + 1)
		assert.LessOrEqual(t, a.Lo(0), b.Lo(0))
	}
	_, id := s.Get(0)
	assert.Equal(t, 1, id)
}

func TestFind(t *testing.T) {
	s := mkSet(t)
	b, ok := s.Find(2)
	require.True(t, ok)
	assert.Equal(t, float64(2), b.Lo(0))

	_, ok = s.Find(99)
	assert.False(t, ok)
}

func TestFilterPreservesOrder(t *testing.T) {
	s := mkSet(t)
	s.Sort()
	evens := s.Filter(func(b box.ND[float64], id int) bool { return id%2 == 0 })
	assert.Equal(t, 2, evens.Len())
	for i := 0; i < evens.Len()-1; i++ {
		a, _ := evens.Get(i)
		b, _ := evens.Get(i + 1)
		assert.LessOrEqual(t, a.Lo(0), b.Lo(0))
	}
}

func TestPartition(t *testing.T) {
	s := mkSet(t)
	yes, no := s.Partition(func(b box.ND[float64], id int) bool { return id == 1 })
	assert.Equal(t, 1, yes.Len())
	assert.Equal(t, 2, no.Len())
}

func TestApproxMedianWithinRange(t *testing.T) {
	s := boxset.New[float64, int](200)
	for i := 0; i < 200; i++ {
		s.Push(i, box.New([]float64{float64(i)}, []float64{float64(i) + 1}))
	}
	r := rng.New(1)
	for i := 0; i < 20; i++ {
		m := s.ApproxMedian(0, r)
		assert.GreaterOrEqual(t, m, float64(0))
		assert.Less(t, m, float64(200))
	}
}

func TestFindErr(t *testing.T) {
	s := mkSet(t)
	b, err := s.FindErr(2)
	require.NoError(t, err)
	assert.Equal(t, float64(2), b.Lo(0))

	_, err = s.FindErr(99)
	require.Error(t, err)
	assert.True(t, errs.Is(errs.NotExist, err))
}

func TestPushErrDimMismatch(t *testing.T) {
	s := boxset.NewWithDims[float64, int](2)
	require.NoError(t, s.PushErr(0, box.New([]float64{0, 0}, []float64{1, 1})))
	err := s.PushErr(1, box.New([]float64{0}, []float64{1}))
	require.Error(t, err)
	assert.True(t, errs.Is(errs.Invalid, err))
	// The mismatched box is not added to the set.
	assert.Equal(t, 1, s.Len())
}

func TestPushErrWithoutDims(t *testing.T) {
	s := boxset.New[float64, int](2)
	require.NoError(t, s.PushErr(0, box.New([]float64{0, 0}, []float64{1, 1})))
	require.NoError(t, s.PushErr(1, box.New([]float64{0}, []float64{1})))
	assert.Equal(t, 2, s.Len())
}

func TestGobRoundTrip(t *testing.T) {
	s := mkSet(t)
	s.Sort()
	data, err := s.MarshalBinary()
	require.NoError(t, err)

	var s2 boxset.Set[float64, int]
	require.NoError(t, s2.UnmarshalBinary(data))
	require.Equal(t, s.Len(), s2.Len())
	for i := 0; i < s.Len(); i++ {
		wantBox, wantID := s.Get(i)
		gotBox, gotID := s2.Get(i)
		assert.Equal(t, wantID, gotID)
		assert.Equal(t, wantBox.Lo(0), gotBox.Lo(0))
		assert.Equal(t, wantBox.Hi(0), gotBox.Hi(0))
	}
}
