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
	"github.com/cc6809/compiler/internal/xassert"
	"github.com/cc6809/compiler/tree"
	"github.com/cc6809/compiler/types"
)

func TestDeclarationFinishTrivialForNonArray(t *testing.T) {
	m, ce, sink := newFixture()
	d := decl.New("x", "t.c", 1, sink)
	declaration, ok := d.DeclareVariable(m.Word(true), false, false)
	xassert.For(t, "declare ok").That(ok).Equals(true)

	xassert.For(t, "finish ok").That(declaration.Finish(m, ce, sink)).Equals(true)
	xassert.For(t, "resolved type is the plain type").That(declaration.ResolvedType).Equals(m.Word(true))
}

func TestDeclarationFinishIsIdempotent(t *testing.T) {
	m, ce, sink := newFixture()
	d := decl.New("arr", "t.c", 1, sink)
	d.AddArraySizeExpr(&tree.IntLiteral{Value: 5, Type: m.Word(true)})
	declaration, ok := d.DeclareVariable(m.Byte(true), false, false)
	xassert.For(t, "declare ok").That(ok).Equals(true)

	xassert.For(t, "first finish ok").That(declaration.Finish(m, ce, sink)).Equals(true)
	first := declaration.ResolvedType

	// A second Finish call must be a no-op: it must not re-fold the
	// array-size expressions or otherwise change ResolvedType.
	xassert.For(t, "second finish ok").That(declaration.Finish(m, ce, sink)).Equals(true)
	xassert.For(t, "resolved type unchanged").That(declaration.ResolvedType).Equals(first)
	xassert.For(t, "no diagnostics from redundant finish").That(len(sink.Diagnostics())).Equals(0)
}

func TestDeclarationFinishFailsOnInvalidSizeExpr(t *testing.T) {
	m, ce, sink := newFixture()
	d := decl.New("bad", "t.c", 1, sink)
	notConstant := &tree.Identifier{Name: "n", Type: m.Word(true)}
	d.AddArraySizeExpr(notConstant)
	declaration, ok := d.DeclareVariable(m.Byte(true), false, false)
	xassert.For(t, "declare ok").That(ok).Equals(true)

	xassert.For(t, "finish fails").That(declaration.Finish(m, ce, sink)).Equals(false)
	xassert.For(t, "resolved type left unset").That(declaration.ResolvedType).IsNil()
}

func TestFinisherContinuesPastFailingDeclaration(t *testing.T) {
	m, ce, sink := newFixture()
	finisher := decl.NewFinisher(m, ce, sink)

	bad := decl.New("bad", "t.c", 1, sink)
	bad.AddArraySizeExpr(&tree.Identifier{Name: "n", Type: m.Word(true)})
	badDecl, _ := bad.DeclareVariable(m.Byte(true), false, false)

	good := decl.New("good", "t.c", 2, sink)
	good.AddArraySizeExpr(&tree.IntLiteral{Value: 2, Type: m.Word(true)})
	goodDecl, _ := good.DeclareVariable(m.Byte(true), false, false)

	finisher.Register(badDecl)
	finisher.Register(goodDecl)

	xassert.For(t, "overall result reflects the failure").That(finisher.FinishAll()).Equals(false)
	xassert.For(t, "the good declaration still resolved").That(goodDecl.ResolvedType.Kind).Equals(types.Array)
	xassert.For(t, "the bad declaration left unresolved").That(badDecl.ResolvedType).IsNil()
	xassert.For(t, "both declarations remain pending").That(len(finisher.Pending())).Equals(2)
}
