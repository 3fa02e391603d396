// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package rng defines the minimal random number source the approximate
// median sampler needs, and an adapter onto the standard library's
// math/rand so callers can plug in a seeded generator for reproducible
// runs (as tests do) or the default global source otherwise.
package rng

import "math/rand"

// Source produces uniformly distributed random integers in [0, n). It is
// the Go analogue of a Rng trait restricted to the one primitive the
// median sampler needs.
type Source interface {
	IntN(n int) int
}

// FromMathRand adapts a *math/rand.Rand into a Source.
type FromMathRand struct {
	R *rand.Rand
}

// IntN implements Source.
func (f FromMathRand) IntN(n int) int {
	return f.R.Intn(n)
}

// New returns a Source seeded deterministically with seed, suitable for
// reproducible tests and benchmarks.
func New(seed int64) Source {
	return FromMathRand{R: rand.New(rand.NewSource(seed))}
}
