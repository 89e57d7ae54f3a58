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

	"github.com/cc6809/compiler/eval"
	"github.com/cc6809/compiler/internal/xassert"
	"github.com/cc6809/compiler/tree"
	"github.com/cc6809/compiler/types"
)

func TestSetExpressionTypesPromotesToWiderOperand(t *testing.T) {
	m := types.NewManager()
	expr := &tree.BinaryExpr{
		Op:   tree.Add,
		Left: &tree.Identifier{Name: "w", Type: m.Word(true)},
		Right: &tree.UnaryExpr{
			Op:      tree.Negate,
			SubExpr: &tree.Identifier{Name: "l", Type: m.Long(true)},
		},
	}
	eval.SetExpressionTypes(expr, m)
	xassert.For(t, "unary inherits operand type").That(expr.Right.TypeDesc()).Equals(m.Long(true))
	xassert.For(t, "binary promotes to wider long").That(expr.Type).Equals(m.Long(true))
}

func TestSetExpressionTypesUnsignedWinsAtEqualWidth(t *testing.T) {
	m := types.NewManager()
	expr := &tree.BinaryExpr{
		Op:    tree.Add,
		Left:  &tree.Identifier{Name: "a", Type: m.Word(true)},
		Right: &tree.Identifier{Name: "b", Type: m.Word(false)},
	}
	eval.SetExpressionTypes(expr, m)
	xassert.For(t, "equal width mixed signedness goes unsigned").That(expr.Type).Equals(m.Word(false))
}
