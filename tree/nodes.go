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

package tree

import "github.com/cc6809/compiler/types"

// IntLiteral is a compile-time integer constant, e.g. `42` or (after
// folding) the replacement for a constant-valued subtree.
type IntLiteral struct {
	Value int32
	Type  *types.Desc
}

// TypeDesc implements Tree.
func (n *IntLiteral) TypeDesc() *types.Desc { return n.Type }

// IsLValue implements Tree: a literal is never addressable.
func (n *IntLiteral) IsLValue() bool { return false }

// FoldConstant implements Tree: a literal is trivially its own fold.
func (n *IntLiteral) FoldConstant() (int32, bool) { return n.Value, true }

// Iterate implements Tree for a childless node.
func (n *IntLiteral) Iterate(f Functor) bool { return f.Open(n) && f.Close(n) }

// ReplaceChild implements Tree; a literal has no children to replace.
func (n *IntLiteral) ReplaceChild(existingChild, newChild Tree) {
	panic("tree: IntLiteral has no children")
}

// EmitCode implements Tree, loading the literal value.
func (n *IntLiteral) EmitCode(out *Assembly, lValue bool) bool {
	if lValue {
		return false
	}
	out.Emit("ldd #%d", n.Value)
	return true
}

// Identifier refers to a named variable, parameter or enumerator.
type Identifier struct {
	Name string
	Type *types.Desc

	// EnumValue is set when this identifier names an enumeration
	// constant, making it compile-time foldable like a literal.
	EnumValue *int32
}

// TypeDesc implements Tree.
func (n *Identifier) TypeDesc() *types.Desc { return n.Type }

// IsLValue implements Tree: a plain variable reference is addressable; an
// enumerator is not (it has no storage).
func (n *Identifier) IsLValue() bool { return n.EnumValue == nil }

// FoldConstant implements Tree.
func (n *Identifier) FoldConstant() (int32, bool) {
	if n.EnumValue == nil {
		return 0, false
	}
	return *n.EnumValue, true
}

// Iterate implements Tree for a childless node.
func (n *Identifier) Iterate(f Functor) bool { return f.Open(n) && f.Close(n) }

// ReplaceChild implements Tree; an identifier has no children to replace.
func (n *Identifier) ReplaceChild(existingChild, newChild Tree) {
	panic("tree: Identifier has no children")
}

// EmitCode implements Tree.
func (n *Identifier) EmitCode(out *Assembly, lValue bool) bool {
	if lValue {
		out.Emit("leax %s,pcr", n.Name)
	} else {
		out.Emit("ldd %s", n.Name)
	}
	return true
}

// CastExpr changes the static type under which SubExpr is seen, without
// itself emitting any runtime conversion beyond what the target type
// requires.
type CastExpr struct {
	Type    *types.Desc
	SubExpr Tree
}

// TypeDesc implements Tree.
func (n *CastExpr) TypeDesc() *types.Desc { return n.Type }

// IsLValue implements Tree: a cast result is always an r-value.
func (n *CastExpr) IsLValue() bool { return false }

// FoldConstant implements Tree by folding the sub-expression; the cast
// itself only changes the type tag, not the bit pattern of interest here.
func (n *CastExpr) FoldConstant() (int32, bool) { return n.SubExpr.FoldConstant() }

// Iterate implements Tree.
func (n *CastExpr) Iterate(f Functor) bool {
	if !f.Open(n) {
		return false
	}
	if !n.SubExpr.Iterate(f) {
		return false
	}
	return f.Close(n)
}

// ReplaceChild implements Tree.
func (n *CastExpr) ReplaceChild(existingChild, newChild Tree) {
	if n.SubExpr != existingChild {
		panic("tree: child not found")
	}
	n.SubExpr = newChild
}

// EmitCode implements Tree.
func (n *CastExpr) EmitCode(out *Assembly, lValue bool) bool {
	return n.SubExpr.EmitCode(out, lValue)
}

// UnaryOp names the operators a UnaryExpr can apply.
type UnaryOp string

const (
	Negate     UnaryOp = "-"
	LogicalNot UnaryOp = "!"
	BitwiseNot UnaryOp = "~"
	AddressOf  UnaryOp = "&"
	Deref      UnaryOp = "*"
)

// UnaryExpr applies a prefix operator to a single operand.
type UnaryExpr struct {
	Op      UnaryOp
	SubExpr Tree
	Type    *types.Desc
}

// TypeDesc implements Tree.
func (n *UnaryExpr) TypeDesc() *types.Desc { return n.Type }

// IsLValue implements Tree: only a dereference yields an addressable
// result.
func (n *UnaryExpr) IsLValue() bool { return n.Op == Deref }

// FoldConstant implements Tree for the arithmetic/bitwise unary operators.
// AddressOf and Deref are never compile-time constant.
func (n *UnaryExpr) FoldConstant() (int32, bool) {
	v, ok := n.SubExpr.FoldConstant()
	if !ok {
		return 0, false
	}
	switch n.Op {
	case Negate:
		return -v, true
	case BitwiseNot:
		return ^v, true
	case LogicalNot:
		if v == 0 {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// Iterate implements Tree.
func (n *UnaryExpr) Iterate(f Functor) bool {
	if !f.Open(n) {
		return false
	}
	if !n.SubExpr.Iterate(f) {
		return false
	}
	return f.Close(n)
}

// ReplaceChild implements Tree.
func (n *UnaryExpr) ReplaceChild(existingChild, newChild Tree) {
	if n.SubExpr != existingChild {
		panic("tree: child not found")
	}
	n.SubExpr = newChild
}

// EmitCode implements Tree.
func (n *UnaryExpr) EmitCode(out *Assembly, lValue bool) bool {
	if lValue && n.Op != Deref {
		return false
	}
	if !n.SubExpr.EmitCode(out, n.Op == AddressOf) {
		return false
	}
	out.Comment("apply unary %s", n.Op)
	return true
}

// BinaryOp names the operators a BinaryExpr can apply.
type BinaryOp string

const (
	Add      BinaryOp = "+"
	Sub      BinaryOp = "-"
	Mul      BinaryOp = "*"
	Div      BinaryOp = "/"
	Mod      BinaryOp = "%"
	ShiftL   BinaryOp = "<<"
	ShiftR   BinaryOp = ">>"
	BitOr    BinaryOp = "|"
	BitAnd   BinaryOp = "&"
	BitXor   BinaryOp = "^"
	Assign   BinaryOp = "="
)

// BinaryExpr applies an infix operator to two operands.
type BinaryExpr struct {
	Op          BinaryOp
	Left, Right Tree
	Type        *types.Desc
}

// TypeDesc implements Tree.
func (n *BinaryExpr) TypeDesc() *types.Desc { return n.Type }

// IsLValue implements Tree: an assignment's value is the (addressable)
// destination; every other binary operator yields an r-value.
func (n *BinaryExpr) IsLValue() bool { return n.Op == Assign }

// FoldConstant implements Tree. Assignment is never constant. The
// remaining operators are folded with plain Go int32 arithmetic: this is
// the fast "is this statically known" query used by the comma-expression
// suppression rule, not the width-exact evaluator (see package eval for
// that).
func (n *BinaryExpr) FoldConstant() (int32, bool) {
	if n.Op == Assign {
		return 0, false
	}
	l, ok := n.Left.FoldConstant()
	if !ok {
		return 0, false
	}
	r, ok := n.Right.FoldConstant()
	if !ok {
		return 0, false
	}
	switch n.Op {
	case Add:
		return l + r, true
	case Sub:
		return l - r, true
	case Mul:
		return l * r, true
	case Div:
		if r == 0 {
			return 0, false
		}
		return l / r, true
	case Mod:
		if r == 0 {
			return 0, false
		}
		return l % r, true
	case ShiftL:
		return l << uint32(r), true
	case ShiftR:
		return l >> uint32(r), true
	case BitOr:
		return l | r, true
	case BitAnd:
		return l & r, true
	case BitXor:
		return l ^ r, true
	default:
		return 0, false
	}
}

// Iterate implements Tree.
func (n *BinaryExpr) Iterate(f Functor) bool {
	if !f.Open(n) {
		return false
	}
	if !n.Left.Iterate(f) {
		return false
	}
	if !n.Right.Iterate(f) {
		return false
	}
	return f.Close(n)
}

// ReplaceChild implements Tree.
func (n *BinaryExpr) ReplaceChild(existingChild, newChild Tree) {
	switch existingChild {
	case n.Left:
		n.Left = newChild
	case n.Right:
		n.Right = newChild
	default:
		panic("tree: child not found")
	}
}

// EmitCode implements Tree.
func (n *BinaryExpr) EmitCode(out *Assembly, lValue bool) bool {
	if n.Op == Assign {
		if !n.Right.EmitCode(out, false) {
			return false
		}
		if !n.Left.EmitCode(out, true) {
			return false
		}
		out.Comment("store into destination")
		return true
	}
	if lValue {
		return false
	}
	if !n.Left.EmitCode(out, false) {
		return false
	}
	out.Comment("push left operand")
	if !n.Right.EmitCode(out, false) {
		return false
	}
	out.Emit("; apply %s", n.Op)
	return true
}
