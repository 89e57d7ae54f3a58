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

// StringLiteral is a quoted string constant. Its array-initializer length
// is its byte length plus the implicit terminating NUL, which is what
// lets `char s[] = "abc"` infer a dimension of 4 without an explicit
// size expression.
type StringLiteral struct {
	Value string
	Type  *types.Desc
}

// TypeDesc implements Tree.
func (n *StringLiteral) TypeDesc() *types.Desc { return n.Type }

// IsLValue implements Tree: a string literal denotes a location (it has
// static storage), matching the original dialect's treatment of string
// constants as decaying array l-values.
func (n *StringLiteral) IsLValue() bool { return true }

// FoldConstant implements Tree: a string is never an integer constant.
func (n *StringLiteral) FoldConstant() (int32, bool) { return 0, false }

// Iterate implements Tree for a childless node.
func (n *StringLiteral) Iterate(f Functor) bool { return f.Open(n) && f.Close(n) }

// ReplaceChild implements Tree; a string literal has no children.
func (n *StringLiteral) ReplaceChild(existingChild, newChild Tree) {
	panic("tree: StringLiteral has no children")
}

// EmitCode implements Tree.
func (n *StringLiteral) EmitCode(out *Assembly, lValue bool) bool {
	out.Emit("fcc %q", n.Value)
	return true
}

// Length returns the number of elements a char array initialized from
// this literal needs, including the implicit terminating NUL.
func (n *StringLiteral) Length() int { return len(n.Value) + 1 }
