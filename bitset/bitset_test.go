// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zomorodian/boxisect/bitset"
)

func TestSetClearTest(t *testing.T) {
	data := bitset.NewClearBits(200)
	assert.False(t, bitset.Test(data, 130))
	bitset.Set(data, 130)
	assert.True(t, bitset.Test(data, 130))
	assert.False(t, bitset.Test(data, 129))
	assert.False(t, bitset.Test(data, 131))
	bitset.Clear(data, 130)
	assert.False(t, bitset.Test(data, 130))
}

func TestNewClearBitsSizing(t *testing.T) {
	// 65 bits needs two 64-bit words.
	data := bitset.NewClearBits(65)
	assert.Len(t, data, 2)
	for i := 0; i < 65; i++ {
		assert.Falsef(t, bitset.Test(data, i), "bit %d", i)
	}
}

func TestSetIsIdempotent(t *testing.T) {
	data := bitset.NewClearBits(64)
	bitset.Set(data, 5)
	bitset.Set(data, 5)
	assert.True(t, bitset.Test(data, 5))
	bitset.Clear(data, 5)
	assert.False(t, bitset.Test(data, 5))
}
