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

package eval_test

import (
	"testing"

	"github.com/cc6809/compiler/diag"
	"github.com/cc6809/compiler/eval"
	"github.com/cc6809/compiler/internal/xassert"
	"github.com/cc6809/compiler/tree"
	"github.com/cc6809/compiler/types"
)

func TestFoldConstantBinaryExpr(t *testing.T) {
	m := types.NewManager()
	lit := func(v int32) *tree.IntLiteral { return &tree.IntLiteral{Value: v, Type: m.Long(true)} }

	expr := &tree.BinaryExpr{Op: tree.Div, Left: lit(-4000000), Right: lit(70000), Type: m.Long(true)}
	ce := eval.NewConstantEvaluator(diag.NewSink())
	v, ok := ce.Fold(expr)
	xassert.For(t, "constant fold succeeds").That(ok).Equals(true)
	xassert.For(t, "division result").That(v.Signed64()).Equals(int64(-57))
}

func TestFoldConstantDivisionByZeroWarns(t *testing.T) {
	m := types.NewManager()
	lit := func(v int32) *tree.IntLiteral { return &tree.IntLiteral{Value: v, Type: m.Long(false)} }
	expr := &tree.BinaryExpr{Op: tree.Div, Left: lit(70000), Right: lit(0), Type: m.Long(false)}
	sink := diag.NewSink()
	ce := eval.NewConstantEvaluator(sink)
	v, ok := ce.Fold(expr)
	xassert.For(t, "div by zero still folds").That(ok).Equals(true)
	xassert.For(t, "all-ones result").That(v.Unsigned64()).Equals(int64(0xFFFFFFFF))
	xassert.For(t, "warning recorded").That(len(sink.Diagnostics())).Equals(1)
}

func TestFoldConstantRejectsNonConstantIdentifier(t *testing.T) {
	m := types.NewManager()
	id := &tree.Identifier{Name: "x", Type: m.Word(true)}
	ce := eval.NewConstantEvaluator(nil)
	_, ok := ce.Fold(id)
	xassert.For(t, "plain variable is not constant").That(ok).Equals(false)
}

func TestFoldConstantEnumeratorIdentifier(t *testing.T) {
	m := types.NewManager()
	val := int32(7)
	id := &tree.Identifier{Name: "SEVEN", Type: m.Word(true), EnumValue: &val}
	ce := eval.NewConstantEvaluator(nil)
	v, ok := ce.Fold(id)
	xassert.For(t, "enumerator folds").That(ok).Equals(true)
	xassert.For(t, "enumerator value").That(v.Signed64()).Equals(int64(7))
}
