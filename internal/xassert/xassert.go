// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package xassert is a condensed port of the fluent assertion surface used
// throughout the teacher repository's tests (assert.For(ctx, name).That(x)).
// It trims the original's output-styling and deep-compare registry down to
// the handful of assertions this repository's tests actually need, kept
// behind the same call shape so the _test.go files read the same way.
package xassert

import (
	"fmt"
	"reflect"
)

// Output matches the subset of *testing.T used to report a failed
// assertion.
type Output interface {
	Helper()
	Fatalf(format string, args ...interface{})
}

// Assertion is the start of a fluent assertion chain, constructed with For.
type Assertion struct {
	out  Output
	name string
}

// For returns an Assertion reporting failures against out (ordinarily a
// *testing.T), labelled with name for the failure message.
func For(out Output, name string) Assertion {
	return Assertion{out: out, name: name}
}

// That returns an OnValue wrapping the given value for generic comparisons.
func (a Assertion) That(value interface{}) OnValue {
	return OnValue{a: a, value: value}
}

// ThatError returns an OnValue specialized for error values.
func (a Assertion) ThatError(err error) OnValue {
	return OnValue{a: a, value: err}
}

// OnValue carries a value through the fluent chain to a terminal assertion.
type OnValue struct {
	a     Assertion
	value interface{}
}

// Equals asserts that the wrapped value deep-equals expect.
func (o OnValue) Equals(expect interface{}) bool {
	o.a.out.Helper()
	if reflect.DeepEqual(o.value, expect) {
		return true
	}
	o.a.out.Fatalf("%s: got %s, want %s", o.a.name, render(o.value), render(expect))
	return false
}

// NotEquals asserts that the wrapped value does not deep-equal test.
func (o OnValue) NotEquals(test interface{}) bool {
	o.a.out.Helper()
	if !reflect.DeepEqual(o.value, test) {
		return true
	}
	o.a.out.Fatalf("%s: got %s, wanted anything but that", o.a.name, render(o.value))
	return false
}

// IsNil asserts that the wrapped value is nil (or a nil-valued interface).
func (o OnValue) IsNil() bool {
	o.a.out.Helper()
	if isNil(o.value) {
		return true
	}
	o.a.out.Fatalf("%s: got %s, want nil", o.a.name, render(o.value))
	return false
}

// IsTrue asserts that the wrapped value is the boolean true.
func (o OnValue) IsTrue() bool {
	o.a.out.Helper()
	if b, ok := o.value.(bool); ok && b {
		return true
	}
	o.a.out.Fatalf("%s: got %s, want true", o.a.name, render(o.value))
	return false
}

// IsFalse asserts that the wrapped value is the boolean false.
func (o OnValue) IsFalse() bool {
	o.a.out.Helper()
	if b, ok := o.value.(bool); ok && !b {
		return true
	}
	o.a.out.Fatalf("%s: got %s, want false", o.a.name, render(o.value))
	return false
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Ptr, reflect.Interface, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

func render(value interface{}) string {
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%#v", value)
}
