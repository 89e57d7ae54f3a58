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

package eval

import (
	"github.com/cc6809/compiler/tree"
	"github.com/cc6809/compiler/types"
)

// SetExpressionTypes walks root bottom-up, filling in the Type field of
// every UnaryExpr/BinaryExpr node whose Type was left nil by the parser,
// applying the dialect's usual-arithmetic-conversions rule (the same
// promotion promote() uses for constant folding: widen to the larger
// operand width, and to unsigned when both operands are the same width
// but one is unsigned). CastExpr and leaf nodes already carry their own
// type and are left untouched. It is a post-order pass: a BinaryExpr's
// own children are resolved before the promoted type is computed for it.
func SetExpressionTypes(root tree.Tree, m *types.Manager) {
	root.Iterate(tree.FuncFunctor{
		CloseFunc: func(t tree.Tree) bool {
			switch n := t.(type) {
			case *tree.UnaryExpr:
				if n.Type == nil {
					n.Type = unaryResultType(n, m)
				}
			case *tree.BinaryExpr:
				if n.Type == nil {
					n.Type = binaryResultType(n, m)
				}
			}
			return true
		},
	})
}

func unaryResultType(n *tree.UnaryExpr, m *types.Manager) *types.Desc {
	switch n.Op {
	case tree.AddressOf:
		return m.GetPointerTo(n.SubExpr.TypeDesc(), nil)
	case tree.Deref:
		return n.SubExpr.TypeDesc().PointedTypeDesc()
	default:
		return n.SubExpr.TypeDesc()
	}
}

func binaryResultType(n *tree.BinaryExpr, m *types.Manager) *types.Desc {
	if n.Op == tree.Assign {
		return n.Left.TypeDesc()
	}
	lt, rt := n.Left.TypeDesc(), n.Right.TypeDesc()
	if lt == nil {
		return rt
	}
	if rt == nil {
		return lt
	}
	if lt.IsPtrOrArray() {
		return lt
	}
	if rt.IsPtrOrArray() {
		return rt
	}
	width := lt.Width
	if rt.Width > width {
		width = rt.Width
	}
	signed := lt.Signed
	switch {
	case lt.Width == rt.Width:
		signed = lt.Signed && rt.Signed
	case rt.Width > lt.Width:
		signed = rt.Signed
	}
	switch width {
	case 1:
		return m.Byte(signed)
	case 4:
		return m.Long(signed)
	default:
		return m.Word(signed)
	}
}
