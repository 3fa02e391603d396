// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package bitcheck audits a stream of reported intersecting pairs for
// duplicates in better than the quadratic time a nested-loop scan over
// the output would take. It is a thin, domain-specific wrapper around
// bitset: a dense n-by-n bit matrix, one bit per unordered pair of a
// known, small identifier space, intended for use in tests that assert
// this module's tie-breaking rule does its job.
package bitcheck

import "github.com/zomorodian/boxisect/bitset"

// PairAuditor tracks which unordered pairs, out of a dense identifier
// space [0, n), have been seen so far.
type PairAuditor struct {
	n    int
	seen []uintptr
}

// NewPairAuditor returns an auditor over identifiers [0, n).
func NewPairAuditor(n int) *PairAuditor {
	return &PairAuditor{n: n, seen: bitset.NewClearBits(n * n)}
}

// Duplicate reports whether the unordered pair {i, j} has already been
// recorded, and records it either way. i and j must each be in [0, n) and
// distinct.
func (p *PairAuditor) Duplicate(i, j int) bool {
	if i > j {
		i, j = j, i
	}
	idx := i*p.n + j
	if bitset.Test(p.seen, idx) {
		return true
	}
	bitset.Set(p.seen, idx)
	return false
}
