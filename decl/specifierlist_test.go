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

package decl_test

import (
	"testing"

	"github.com/cc6809/compiler/decl"
	"github.com/cc6809/compiler/diag"
	"github.com/cc6809/compiler/internal/xassert"
)

func TestSpecifierListEnumeratorListLifecycle(t *testing.T) {
	m, _, _ := newFixture()
	sl := decl.NewSpecifierList(m.Word(true))
	xassert.For(t, "starts without an enumerator list").That(sl.HasEnumeratorList()).Equals(false)

	members := []decl.Enumerator{{Name: "RED", Value: 0}, {Name: "GREEN", Value: 1}}
	sl.SetEnumeratorList(members)
	xassert.For(t, "has the enumerator list now").That(sl.HasEnumeratorList()).Equals(true)

	detached := sl.DetachEnumeratorList()
	xassert.For(t, "detach returns the members").That(detached).Equals(members)
	xassert.For(t, "list is gone after detaching").That(sl.HasEnumeratorList()).Equals(false)
}

func TestAddTypeSpecifierCombinesSignednessAndWidth(t *testing.T) {
	m, _, sink := newFixture()

	// `unsigned int`
	sl := &decl.SpecifierList{}
	xassert.For(t, "unsigned accepted").That(sl.AddTypeSpecifier(m.Word(false), m, "t.c", 1, sink)).Equals(true)
	xassert.For(t, "int accepted after unsigned").That(sl.AddTypeSpecifier(m.Word(true), m, "t.c", 1, sink)).Equals(true)
	xassert.For(t, "combines to unsigned word").That(sl.TypeDesc()).Equals(m.Word(false))

	// `unsigned char`
	sl = &decl.SpecifierList{}
	sl.AddTypeSpecifier(m.Word(false), m, "t.c", 2, sink)
	sl.AddTypeSpecifier(m.Byte(true), m, "t.c", 2, sink)
	xassert.For(t, "combines to unsigned byte").That(sl.TypeDesc()).Equals(m.Byte(false))

	// `long unsigned`
	sl = &decl.SpecifierList{}
	sl.AddTypeSpecifier(m.Long(true), m, "t.c", 3, sink)
	sl.AddTypeSpecifier(m.Word(false), m, "t.c", 3, sink)
	xassert.For(t, "combines to unsigned long").That(sl.TypeDesc()).Equals(m.Long(false))

	xassert.For(t, "no diagnostics for valid combinations").That(len(sink.Diagnostics())).Equals(0)
}

func TestAddTypeSpecifierRejectsSecondBaseType(t *testing.T) {
	m, _, sink := newFixture()
	sl := &decl.SpecifierList{}
	sl.AddTypeSpecifier(m.Byte(true), m, "t.c", 1, sink)
	xassert.For(t, "char char rejected").That(sl.AddTypeSpecifier(m.Byte(true), m, "t.c", 1, sink)).Equals(false)
	xassert.For(t, "diagnostic kind").That(sink.Diagnostics()[0].Kind).Equals(diag.DuplicateBaseType)
}

func TestSpecifierListFlags(t *testing.T) {
	m, _, _ := newFixture()
	sl := decl.NewSpecifierList(m.Void())
	sl.Interrupt = true
	sl.FirstParamInRegister = true

	xassert.For(t, "reports interrupt service function").That(sl.IsInterruptServiceFunction()).Equals(true)
	xassert.For(t, "reports first param in register").That(sl.IsFunctionReceivingFirstParamInRegister()).Equals(true)
	xassert.For(t, "type desc is the base type").That(sl.TypeDesc()).Equals(m.Void())
}
