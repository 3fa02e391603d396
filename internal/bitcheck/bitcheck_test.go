// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package bitcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zomorodian/boxisect/internal/bitcheck"
)

func TestDuplicateDetectsEitherOrder(t *testing.T) {
	a := bitcheck.NewPairAuditor(10)
	assert.False(t, a.Duplicate(2, 5))
	assert.True(t, a.Duplicate(5, 2))
	assert.True(t, a.Duplicate(2, 5))
}

func TestDuplicateIsPerPair(t *testing.T) {
	a := bitcheck.NewPairAuditor(10)
	assert.False(t, a.Duplicate(1, 2))
	assert.False(t, a.Duplicate(1, 3))
	assert.False(t, a.Duplicate(2, 3))
	assert.True(t, a.Duplicate(1, 2))
}
