// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package errs_test

import (
	"bytes"
	"encoding/gob"
	goerrors "errors"
	"testing"

	fuzz "github.com/google/gofuzz"

	"github.com/zomorodian/boxisect/internal/errs"
)

func TestError(t *testing.T) {
	e1 := errs.E(errs.NotExist, "looking up identifier", goerrors.New("no such id"))
	if got, want := e1.Error(), "looking up identifier: does not exist: no such id"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !errs.Is(errs.NotExist, e1) {
		t.Errorf("error %v should be NotExist", e1)
	}
}

func TestErrorChaining(t *testing.T) {
	err := errs.E("box has lo > hi on axis 1", errs.Invalid)
	err = errs.E(errs.Fatal, "cannot build set", err)
	want := "cannot build set: invalid argument (fatal):\n\tbox has lo > hi on axis 1"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGobEncoding(t *testing.T) {
	err := errs.E("axis mismatch", errs.Invalid)
	err = errs.E(errs.Fatal, "cannot compare", err)

	var b bytes.Buffer
	if err := gob.NewEncoder(&b).Encode(errs.Recover(err)); err != nil {
		t.Fatal(err)
	}
	e2 := new(errs.Error)
	if err := gob.NewDecoder(&b).Decode(e2); err != nil {
		t.Fatal(err)
	}
	if !errs.Match(err, e2) {
		t.Errorf("error %v does not match %v", err, e2)
	}
}

func TestGobEncodingFuzz(t *testing.T) {
	fz := fuzz.New().NilChance(0).Funcs(
		func(e *errs.Error, c fuzz.Continue) {
			c.Fuzz(&e.Kind)
			c.Fuzz(&e.Severity)
			c.Fuzz(&e.Message)
			if c.Float32() < 0.8 {
				var e2 errs.Error
				c.Fuzz(&e2)
				e.Err = &e2
			}
		},
	)

	const N = 1000
	for i := 0; i < N; i++ {
		var err errs.Error
		fz.Fuzz(&err)
		var b bytes.Buffer
		if err := gob.NewEncoder(&b).Encode(errs.Recover(&err)); err != nil {
			t.Fatal(err)
		}
		e2 := new(errs.Error)
		if err := gob.NewDecoder(&b).Decode(e2); err != nil {
			t.Fatal(err)
		}
		if !errs.Match(&err, e2) {
			t.Errorf("error %v does not match %v", &err, e2)
		}
	}
}

func TestMessage(t *testing.T) {
	for _, c := range []struct {
		err     error
		message string
	}{
		{errs.E("hello"), "hello"},
		{errs.E("hello", "world"), "hello world"},
	} {
		if got, want := c.err.Error(), c.message; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestRecoverWrapsPlainError(t *testing.T) {
	plain := goerrors.New("boom")
	e := errs.Recover(plain)
	if e.Kind != errs.Other {
		t.Errorf("got kind %v, want Other", e.Kind)
	}
	if got, want := e.Error(), "boom"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
