// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package sink defines how the scanning and hybrid algorithms report an
// intersecting pair they find. Rather than a single output shape baked
// into the algorithms (or a closed, tagged union of shapes), callers
// supply any type implementing Sink; this package provides the three
// concrete shapes most callers need.
//
// Every reported pair names its interval-side member first and its
// point-side member second, in both Pos and ID form — one fixed
// convention, applied uniformly by every algorithm in this module.
package sink

// Sink receives one intersecting pair at a time. posA and posB are the
// pair's positions within the boxset.Set instances passed to the
// algorithm that found them (interval-side, then point-side); idA and idB
// are the corresponding caller-supplied identifiers. Positions are only
// meaningful relative to the scan call that produced them: the hybrid
// algorithm runs its scans over newly partitioned child sets, so the
// positions it reports index into those child sets, not into the sets the
// caller passed in.
type Sink[ID any] interface {
	Push(posA, posB int, idA, idB ID)
}

// Pair is an ordered pair of identifiers, interval-side first.
type Pair[ID any] struct {
	A, B ID
}

// Ident accumulates intersecting pairs by identifier only. It is the
// shape intersect_ze-equivalent callers want: positions are discarded.
type Ident[ID any] struct {
	Pairs []Pair[ID]
}

// Push implements Sink.
func (s *Ident[ID]) Push(posA, posB int, idA, idB ID) {
	s.Pairs = append(s.Pairs, Pair[ID]{A: idA, B: idB})
}

// Pos is an ordered pair of positions, interval-side first.
type Pos struct {
	A, B int
}

// Position accumulates intersecting pairs by position only, useful when a
// caller wants to index directly into the boxset.Set it scanned without
// an identifier lookup.
type Position[ID any] struct {
	Pairs []Pos
}

// Push implements Sink.
func (s *Position[ID]) Push(posA, posB int, idA, idB ID) {
	s.Pairs = append(s.Pairs, Pos{A: posA, B: posB})
}

// Both accumulates both the positional and identifier form of every
// intersecting pair.
type Both[ID any] struct {
	Positions []Pos
	Idents    []Pair[ID]
}

// Push implements Sink.
func (s *Both[ID]) Push(posA, posB int, idA, idB ID) {
	s.Positions = append(s.Positions, Pos{A: posA, B: posB})
	s.Idents = append(s.Idents, Pair[ID]{A: idA, B: idB})
}
