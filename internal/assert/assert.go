// Copyright 2020 The Boxisect Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package assert provides a handful of functions to express fatal
// assertions about preconditions and invariants internal to this module
// (a non-empty set for ApproxMedian, a median within its segment).
// Unlike github.com/grailbio/base/must, every function here is additionally
// gated on Enabled: with Enabled false (the default), a violated assertion
// degrades to unspecified output instead of a panic, so release builds never
// depend on these checks for correctness. Tests that want to catch
// precondition violations set Enabled to true for their duration.
package assert

import (
	"fmt"

	"github.com/zomorodian/boxisect/log"
)

// Enabled gates every function in this package. It defaults to false.
var Enabled = false

// Func is the function called to report an error and interrupt execution
// when an assertion fails while Enabled is true. Func is typically set to
// log.Panic or log.Fatal. It should be set before any potential calls to
// functions in the assert package.
var Func func(...interface{}) = log.Panic

// Nil asserts that v is nil; v is typically a value of type error. If
// Enabled is true and v is not nil, Nil formats a message in the manner of
// fmt.Sprint and calls Func, suffixed with the fmt.Sprint-formatted value
// of v.
func Nil(v interface{}, args ...interface{}) {
	if !Enabled || v == nil {
		return
	}
	if len(args) == 0 {
		Func(v)
		return
	}
	Func(fmt.Sprint(args...), ": ", v)
}

// Nilf is Nil with a fmt.Sprintf-formatted message.
func Nilf(v interface{}, format string, args ...interface{}) {
	if !Enabled || v == nil {
		return
	}
	Func(fmt.Sprintf(format, args...), ": ", v)
}

// True is a no-op if Enabled is false or b is true. Otherwise it formats a
// message in the manner of fmt.Sprint and calls Func.
func True(b bool, v ...interface{}) {
	if !Enabled || b {
		return
	}
	if len(v) == 0 {
		Func("assert: assertion failed")
		return
	}
	Func(v...)
}

// Truef is True with a fmt.Sprintf-formatted message.
func Truef(x bool, format string, v ...interface{}) {
	if !Enabled || x {
		return
	}
	Func(fmt.Sprintf(format, v...))
}

// Never asserts that it is never reached while Enabled is true.
func Never(v ...interface{}) {
	if !Enabled {
		return
	}
	Func(v...)
}

// Neverf is Never with a fmt.Sprintf-formatted message.
func Neverf(format string, v ...interface{}) {
	if !Enabled {
		return
	}
	Func(fmt.Sprintf(format, v...))
}
