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
	"github.com/cc6809/compiler/diag"
	"github.com/cc6809/compiler/tree"
	"github.com/cc6809/compiler/types"
)

// ConstantEvaluator folds a Tree to a compile-time Value, if it is one.
// It is used wherever the language requires a constant: array dimensions,
// bit-field widths, enumerator values, case labels and initializers of
// static-storage variables. Unlike Tree.FoldConstant (a cheap int32
// approximation used only to decide whether to suppress an expression
// from code emission), ConstantEvaluator reproduces the target's exact
// per-width wraparound, shift and division-by-zero arithmetic.
type ConstantEvaluator struct {
	sink *diag.Sink
}

// NewConstantEvaluator returns an evaluator that reports division and
// modulo by zero as warnings through sink. Overflow wraps silently. sink
// may be nil to evaluate silently.
func NewConstantEvaluator(sink *diag.Sink) *ConstantEvaluator {
	return &ConstantEvaluator{sink: sink}
}

// Fold attempts to reduce t to a constant Value. ok is false if t is not
// a compile-time constant expression (e.g. it names a non-enumerator
// variable, dereferences a pointer, or calls a function).
func (ce *ConstantEvaluator) Fold(t tree.Tree) (Value, bool) {
	switch n := t.(type) {
	case *tree.IntLiteral:
		return FromDesc(int64(n.Value), widthOrWord(n.Type)), true

	case *tree.Identifier:
		if n.EnumValue == nil {
			return Value{}, false
		}
		return FromDesc(int64(*n.EnumValue), widthOrWord(n.Type)), true

	case *tree.CastExpr:
		v, ok := ce.Fold(n.SubExpr)
		if !ok {
			return Value{}, false
		}
		return FromDesc(v.Int64(), widthOrWord(n.Type)), true

	case *tree.UnaryExpr:
		v, ok := ce.Fold(n.SubExpr)
		if !ok {
			return Value{}, false
		}
		switch n.Op {
		case tree.Negate:
			return Neg(v), true
		case tree.BitwiseNot:
			return BitwiseNot(v), true
		case tree.LogicalNot:
			return LogicalNot(v), true
		default:
			return Value{}, false // AddressOf, Deref: never constant
		}

	case *tree.BinaryExpr:
		if n.Op == tree.Assign {
			return Value{}, false
		}
		l, ok := ce.Fold(n.Left)
		if !ok {
			return Value{}, false
		}
		r, ok := ce.Fold(n.Right)
		if !ok {
			return Value{}, false
		}
		switch n.Op {
		case tree.Add:
			return Add(l, r), true
		case tree.Sub:
			return Sub(l, r), true
		case tree.Mul:
			return Mul(l, r), true
		case tree.Div:
			if ce.sink != nil && r.Bits == 0 {
				ce.sink.Warnf(diag.DivisionByZero, "", 0, "division by zero in constant expression")
			}
			return Div(l, r), true
		case tree.Mod:
			if ce.sink != nil && r.Bits == 0 {
				ce.sink.Warnf(diag.DivisionByZero, "", 0, "modulo by zero in constant expression")
			}
			return Mod(l, r), true
		case tree.ShiftL:
			return ShiftLeft(l, uint32(r.Int64())), true
		case tree.ShiftR:
			return ShiftRight(l, uint32(r.Int64())), true
		case tree.BitOr:
			return Or(l, r), true
		case tree.BitAnd:
			return And(l, r), true
		case tree.BitXor:
			return Xor(l, r), true
		default:
			return Value{}, false
		}

	default:
		return Value{}, false
	}
}

// EvaluateConstantExpr is the narrow API most callers want: fold t and
// return the low 16 bits of the result. The full-width Value is only
// needed when the contextual type is LONG (e.g. a long-typed enumerator
// or static initializer), in which case callers use Fold directly.
func (ce *ConstantEvaluator) EvaluateConstantExpr(t tree.Tree) (uint16, bool) {
	v, ok := ce.Fold(t)
	if !ok {
		return 0, false
	}
	return uint16(v.Bits), true
}

func widthOrWord(td *types.Desc) *types.Desc {
	if td == nil {
		return &types.Desc{Kind: types.Word, Signed: true, Width: 2}
	}
	return td
}
