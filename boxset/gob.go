// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package boxset

import (
	"bytes"
	"cmp"
	"encoding/gob"

	"github.com/zomorodian/boxisect/box"
	"github.com/zomorodian/boxisect/internal/errs"
)

// gobEntry is the wire representation of one entry[T, ID]. Box.ND's lo/hi
// slices are exported here for gob to see; ND itself keeps them
// unexported so ordinary callers cannot mutate a box out from under its
// set.
type gobEntry[T cmp.Ordered, ID comparable] struct {
	Lo, Hi []T
	ID     ID
}

// MarshalBinary encodes the set for gob, in axis-0-sorted order if the set
// has been sorted. Persisting a Set this way lets a caller rebuild the
// same tree structure on reload without re-deriving it from an external
// source.
func (s *Set[T, ID]) MarshalBinary() ([]byte, error) {
	ges := make([]gobEntry[T, ID], len(s.entries))
	for i, e := range s.entries {
		lo, hi := e.Box.Bounds()
		ges[i] = gobEntry[T, ID]{Lo: lo, Hi: hi, ID: e.ID}
	}
	var b bytes.Buffer
	if err := gob.NewEncoder(&b).Encode(ges); err != nil {
		return nil, errs.E(errs.Invalid, "boxset: encoding set", err)
	}
	return b.Bytes(), nil
}

// UnmarshalBinary decodes a set encoded by MarshalBinary, replacing s's
// contents.
func (s *Set[T, ID]) UnmarshalBinary(data []byte) error {
	var ges []gobEntry[T, ID]
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&ges); err != nil {
		return errs.E(errs.Invalid, "boxset: decoding set", err)
	}
	entries := make([]entry[T, ID], len(ges))
	for i, ge := range ges {
		entries[i] = entry[T, ID]{Box: box.New(ge.Lo, ge.Hi), ID: ge.ID}
	}
	s.entries = entries
	return nil
}
