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

package decl

import (
	"github.com/cc6809/compiler/diag"
	"github.com/cc6809/compiler/eval"
	"github.com/cc6809/compiler/tree"
	"github.com/cc6809/compiler/types"
)

// Declaration is a fully-named variable or function declaration,
// produced by Declarator.DeclareVariable. Its array-size expressions may
// still be unresolved at construction time (an enum constant they depend
// on might not be known until later in the same translation unit); that
// resolution is Finisher's job.
type Declaration struct {
	Name           string
	Type           *types.Desc
	ArraySizeExprs []tree.Tree
	IsStatic       bool
	IsExtern       bool
	InitExpr       tree.Tree
	SrcFilename    string
	Line           int

	// ResolvedType is Type, or (for an array declaration) the final
	// array-of-Type descriptor once Finish has run.
	ResolvedType *types.Desc

	// Dims holds the constant-folded array dimensions once Finish has
	// run; empty iff this is not an array declaration.
	Dims []uint16
}

// IsArray reports whether this declaration carries array-size
// expressions.
func (d *Declaration) IsArray() bool { return len(d.ArraySizeExprs) > 0 }

// SetInitExpr attaches the declaration's initializer. One-shot: a second
// call is a parser bug.
func (d *Declaration) SetInitExpr(init tree.Tree) {
	if d.InitExpr != nil {
		panic("decl: initializer already set")
	}
	d.InitExpr = init
}

// SetLineNo re-points this declaration's source position, used when a
// declaration is re-visited at a different line than the one it was first
// constructed from (e.g. the finisher reporting against the declarator's
// own line).
func (d *Declaration) SetLineNo(filename string, line int) {
	d.SrcFilename = filename
	d.Line = line
}

// Finish resolves ResolvedType from Type and ArraySizeExprs, folding any
// array dimensions now that every enumerator in the translation unit is
// known. Non-array declarations resolve trivially. It is safe to call
// more than once; later calls are no-ops.
func (d *Declaration) Finish(m *types.Manager, ce *eval.ConstantEvaluator, sink *diag.Sink) bool {
	if d.ResolvedType != nil {
		return true
	}
	if !d.IsArray() {
		d.ResolvedType = d.Type
		return true
	}

	helper := New(d.Name, d.SrcFilename, d.Line, sink)
	helper.ArraySizeExprs = d.ArraySizeExprs
	helper.InitExpr = d.InitExpr
	helper.Kind = Array

	dims, ok := helper.ComputeArrayDimensions(false, m, ce)
	if !ok {
		return false
	}
	arr := m.GetArrayOf(d.Type, len(dims))
	arr.AppendDimensions(dims)
	d.Dims = dims
	d.ResolvedType = m.Intern(arr)
	return true
}
