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

import (
	"strings"

	"github.com/cc6809/compiler/types"
)

// Sequence is an ordered, N-ary container of Tree children. It underlies
// both a plain expression-statement sequence and, when built through
// NewCommaExpr, the comma operator: the two share every behavior except
// the comma-specific last-child l-value rule and the way IsLValue
// delegates to the last child, so rather than a separate CommaExpr type
// shadowing most of Sequence's methods, the comma behavior is a
// constructor-selected mode (comma bool below) the way a single
// interned Desc selects its behavior by Kind.
type Sequence struct {
	children []Tree
	comma    bool

	// scope is non-nil when this sequence is the body of a compound
	// statement that declares locals; emission then brackets the children
	// in a push/pop of that scope.
	scope *Scope
}

// NewSequence returns an empty plain sequence (not a comma expression).
func NewSequence() *Sequence {
	return &Sequence{}
}

// NewCommaExpr returns a two-child comma expression, subExpr0 evaluated
// before subExpr1, with subExpr1's value (or address) the value of the
// whole expression.
func NewCommaExpr(subExpr0, subExpr1 Tree) *Sequence {
	if subExpr0 == nil || subExpr1 == nil {
		panic("tree: comma expression requires two non-nil sub-expressions")
	}
	s := &Sequence{comma: true}
	s.Add(subExpr0)
	s.Add(subExpr1)
	return s
}

// IsCommaExpr reports whether s was built with NewCommaExpr.
func (s *Sequence) IsCommaExpr() bool { return s.comma }

// Add appends a child. A nil child is permitted, mirroring the original's
// "tree: Allowed to be null" contract for placeholder slots.
func (s *Sequence) Add(t Tree) {
	s.children = append(s.children, t)
}

// Size returns the number of direct children.
func (s *Sequence) Size() int { return len(s.children) }

// Children returns the direct children in order. The returned slice
// aliases s's storage; callers must not mutate it other than through Add,
// ReplaceChild and Clear.
func (s *Sequence) Children() []Tree { return s.children }

// ChildrenReversed returns a fresh slice of the direct children in
// reverse order, for the callers that walk a sequence back-to-front.
func (s *Sequence) ChildrenReversed() []Tree {
	reversed := make([]Tree, len(s.children))
	for i, child := range s.children {
		reversed[len(s.children)-1-i] = child
	}
	return reversed
}

// SetScope attaches the lexical scope this sequence's emission must
// bracket. Nil (the default) means the sequence declares no locals.
func (s *Sequence) SetScope(sc *Scope) { s.scope = sc }

// Scope returns the scope attached by SetScope, or nil.
func (s *Sequence) Scope() *Scope { return s.scope }

// Clear empties the sequence without touching the children themselves,
// mirroring the original's use of clear() to detach a temporary
// TreeSequence's contents (e.g. a parsed subscript list) into their final
// home without destroying them.
func (s *Sequence) Clear() { s.children = nil }

// TypeDesc reports the type of the last child (a sequence's value, where
// it has one, is its last expression's value), or nil if empty.
func (s *Sequence) TypeDesc() *types.Desc {
	if len(s.children) == 0 {
		return nil
	}
	return s.children[len(s.children)-1].TypeDesc()
}

// IsLValue reports false for a plain sequence. A comma expression is an
// l-value iff its last sub-expression is.
func (s *Sequence) IsLValue() bool {
	if !s.comma || len(s.children) == 0 {
		return false
	}
	return s.children[len(s.children)-1].IsLValue()
}

// FoldConstant never folds: a sequence or comma expression is never a
// compile-time constant in this dialect.
func (s *Sequence) FoldConstant() (int32, bool) { return 0, false }

// Iterate visits f.Open(s), then each child in order, then f.Close(s),
// aborting immediately if any hook or child visit returns false.
func (s *Sequence) Iterate(f Functor) bool {
	if !f.Open(s) {
		return false
	}
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if !child.Iterate(f) {
			return false
		}
	}
	return f.Close(s)
}

// ReplaceChild swaps the first direct child equal to existingChild for
// newChild. It panics if existingChild is not found, mirroring the
// original's `assert(!"child not found")`.
func (s *Sequence) ReplaceChild(existingChild, newChild Tree) {
	for i, child := range s.children {
		if child == existingChild {
			s.children[i] = newChild
			return
		}
	}
	panic("tree: child not found")
}

// EmitCode walks the children in order, suppressing any child that is
// either a cast of an identifier or a cast of a constant-foldable
// expression (the whole point of such a cast is to change the static
// type seen by the surrounding expression; it produces no runtime
// effect of its own). Every other child is emitted as an r-value, except:
//   - an aggregate-typed child (CLASS, LONG or REAL; this dialect folds
//     LONG and REAL into the interned Desc model alongside CLASS, unlike
//     the original which checks CLASS_TYPE alone) is always emitted as an
//     l-value, because its value does not fit in a register pair;
//   - the last child of a comma expression is emitted as an l-value iff
//     the caller wanted an l-value (this is what makes `(a = 1, b = 2) = 3`
//     store 3 into b).
//
// The whole emission is bracketed in a push/pop of this sequence's scope
// (if one was attached), and a failing child breaks out of the loop
// rather than returning so the scope is popped on that path too.
func (s *Sequence) EmitCode(out *Assembly, lValue bool) bool {
	if s.scope != nil {
		out.PushScope(s.scope)
	}

	success := true
	for i, child := range s.children {
		if child == nil {
			continue
		}
		if cast, ok := child.(*CastExpr); ok {
			if _, ok := cast.SubExpr.(*Identifier); ok {
				continue
			}
			if _, ok := cast.SubExpr.FoldConstant(); ok {
				continue
			}
		}

		emitAsLValue := false
		if td := child.TypeDesc(); td != nil && isAggregate(td) {
			emitAsLValue = true
		} else if lValue && s.comma && i == len(s.children)-1 {
			emitAsLValue = true
		}

		if !child.EmitCode(out, emitAsLValue) {
			success = false
			break // go pop the scope before returning
		}
	}

	if s.scope != nil {
		out.PopScope()
	}
	return success
}

func isAggregate(td *types.Desc) bool {
	switch td.Kind {
	case types.Class, types.Long, types.Real:
		return true
	default:
		return false
	}
}

// String renders the sequence as a comma-joined list of its children's
// types, matching the original's toString() (used only for diagnostics).
func (s *Sequence) String() string {
	parts := make([]string, len(s.children))
	for i, child := range s.children {
		if child == nil || child.TypeDesc() == nil {
			parts[i] = "?"
			continue
		}
		parts[i] = child.TypeDesc().String()
	}
	return strings.Join(parts, ", ")
}
