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

// Package decl implements the declarator machinery that sits on top of
// package types: the list of declaration specifiers a declaration starts
// with (`static const unsigned long`), the per-identifier Declarator that
// follows it (`*argv[3]`), the finished Declaration, and the two-phase
// Finisher that resolves declarations whose array sizes depend on
// enumerators not yet known during parsing.
package decl

import (
	"github.com/cc6809/compiler/diag"
	"github.com/cc6809/compiler/types"
)

// Enumerator is one named, valued member of an enum specifier.
type Enumerator struct {
	Name  string
	Value int32
}

// SpecifierList holds everything a declaration's specifier sequence
// contributes before any declarator (`*`, `[]`, `()`) is applied: the
// base type, the storage-class/linkage flags, and (for an inline enum
// definition) its enumerator list.
type SpecifierList struct {
	Base *types.Desc

	Static  bool
	Extern  bool
	Typedef bool

	// Interrupt and FirstParamInRegister describe a function's calling
	// convention; they are only meaningful on a declaration whose
	// declarator turns out to be a function or function pointer.
	Interrupt            bool
	FirstParamInRegister bool

	// EnumTypeName names the enum type this specifier list declares or
	// refers to, empty if none.
	EnumTypeName string

	enumerators []Enumerator
}

// NewSpecifierList returns a specifier list for the given base type.
func NewSpecifierList(base *types.Desc) *SpecifierList {
	return &SpecifierList{Base: base}
}

// AddTypeSpecifier accumulates one more type specifier into the base
// type, the way the parser hands them over one keyword at a time. The
// valid two-specifier combinations are the ones where at least one side
// is a plain `int`-width specifier (`unsigned`, `signed`, `int`), which
// merely adjusts the signedness or width of the other: `unsigned int`,
// `unsigned char`, `long unsigned`. Any other second base type
// (`char char`, `long char`) is a semantic error.
func (sl *SpecifierList) AddTypeSpecifier(td *types.Desc, m *types.Manager, srcFilename string, line int, sink *diag.Sink) bool {
	if sl.Base == nil {
		sl.Base = td
		return true
	}
	if sl.Base.IsIntegral() && td.IsIntegral() &&
		(sl.Base.Kind == types.Word || td.Kind == types.Word) {
		kind := sl.Base.Kind
		if kind == types.Word {
			kind = td.Kind
		}
		signed := sl.Base.Signed && td.Signed
		switch kind {
		case types.Byte:
			sl.Base = m.Byte(signed)
		case types.Long:
			sl.Base = m.Long(signed)
		default:
			sl.Base = m.Word(signed)
		}
		return true
	}
	sink.Errorf(diag.DuplicateBaseType, srcFilename, line,
		"combining type specifiers %s and %s", diag.Quote(sl.Base.String()), diag.Quote(td.String()))
	return false
}

// SetEnumeratorList attaches an inline enum definition's members.
func (sl *SpecifierList) SetEnumeratorList(enumerators []Enumerator) {
	sl.enumerators = enumerators
}

// HasEnumeratorList reports whether this specifier list carries an
// inline enum definition (as opposed to merely naming an enum type).
func (sl *SpecifierList) HasEnumeratorList() bool {
	return len(sl.enumerators) > 0
}

// DetachEnumeratorList removes and returns the enumerator list, the way
// the original detaches ownership before discarding a list that turned
// out to be unusable (e.g. named inside a formal parameter).
func (sl *SpecifierList) DetachEnumeratorList() []Enumerator {
	e := sl.enumerators
	sl.enumerators = nil
	return e
}

// TypeDesc returns the base type this specifier list resolves to.
func (sl *SpecifierList) TypeDesc() *types.Desc { return sl.Base }

// IsInterruptServiceFunction reports the `interrupt` storage-class
// specifier.
func (sl *SpecifierList) IsInterruptServiceFunction() bool { return sl.Interrupt }

// IsFunctionReceivingFirstParamInRegister reports whether this
// declaration's calling convention passes its first parameter in a
// register rather than on the stack.
func (sl *SpecifierList) IsFunctionReceivingFirstParamInRegister() bool {
	return sl.FirstParamInRegister
}
