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

package types

import "strings"

// FormalParameter is one entry of a FormalParamList: an owned type, an
// optional name, and (for an array-of-T parameter, which decays to
// pointer-to-T) the array dimensions it was declared with before decay.
type FormalParameter struct {
	Type      *Desc
	Name      string
	ArrayDims []uint16
	EnumTag   string
}

func (p *FormalParameter) String() string {
	if p.Name == "" {
		return p.Type.String()
	}
	return p.Type.String() + " " + p.Name
}

// FormalParamList is an ordered sequence of FormalParameter plus a trailing
// ellipsis flag. A list with exactly one VOID-typed, unnamed parameter is
// the empty-parameter sentinel `f(void)`, distinct from a list with zero
// parameters (which means "unspecified" in this C dialect).
type FormalParamList struct {
	Params   []*FormalParameter
	ellipsis bool
}

// NewFormalParamList returns an empty parameter list.
func NewFormalParamList() *FormalParamList {
	return &FormalParamList{}
}

// Add appends a parameter to the end of the list.
func (l *FormalParamList) Add(p *FormalParameter) {
	l.Params = append(l.Params, p)
}

// Size returns the number of parameters in the list ignoring the ellipsis.
func (l *FormalParamList) Size() int {
	return len(l.Params)
}

// EndWithEllipsis marks the list as accepting a trailing variadic tail.
func (l *FormalParamList) EndWithEllipsis() {
	l.ellipsis = true
}

// EndsWithEllipsis reports whether the list was marked variadic.
func (l *FormalParamList) EndsWithEllipsis() bool {
	return l.ellipsis
}

// HasSingleVoidParam reports whether this list is the `f(void)`
// empty-parameter sentinel: exactly one parameter, of VOID type. The
// parameter's name is not examined.
func (l *FormalParamList) HasSingleVoidParam() bool {
	return len(l.Params) == 1 && l.Params[0].Type != nil && l.Params[0].Type.Kind == Void
}

// IsAcceptableNumberOfArguments reports whether a call site supplying
// numArguments arguments is compatible with this parameter list: an exact
// match unless the list ends with an ellipsis, in which case numArguments
// must be at least Size(). Callers must special-case HasSingleVoidParam
// (interpreted as zero parameters) before calling this.
func (l *FormalParamList) IsAcceptableNumberOfArguments(numArguments int) bool {
	if l.ellipsis {
		return numArguments >= len(l.Params)
	}
	return numArguments == len(l.Params)
}

func (l *FormalParamList) String() string {
	parts := make([]string, len(l.Params))
	for i, p := range l.Params {
		parts[i] = p.String()
	}
	if l.ellipsis {
		parts = append(parts, "...")
	}
	return strings.Join(parts, ", ")
}

// structurallyEqual compares two parameter lists the way the TypeManager
// compares two function-pointer types: same length, same per-parameter
// interned type, same ellipsis flag. Parameter names do not participate in
// type identity.
func (l *FormalParamList) structurallyEqual(o *FormalParamList) bool {
	if l == o {
		return true
	}
	if l == nil || o == nil {
		return false
	}
	if l.ellipsis != o.ellipsis || len(l.Params) != len(o.Params) {
		return false
	}
	for i := range l.Params {
		if l.Params[i].Type != o.Params[i].Type {
			return false
		}
	}
	return true
}
