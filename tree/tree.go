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

// Package tree implements the N-ary expression tree container shared by
// every expression node: the open/close Functor traversal protocol, the
// ordered TreeSequence, and the comma-expression emission rule built on
// top of it.
package tree

import "github.com/cc6809/compiler/types"

// Tree is the minimal contract every expression and statement node
// satisfies: it can be walked by a Functor, it can have a direct child
// replaced in place (used by constant folding to swap an expression for
// its folded literal), it knows whether it denotes an addressable
// location, it knows its own type, it can emit itself, and it can try to
// fold itself down to a compile-time constant.
type Tree interface {
	// Iterate walks this node and its children, calling f.Open before
	// descending and f.Close after. It returns false as soon as either
	// hook returns false, aborting the remainder of the walk.
	Iterate(f Functor) bool

	// ReplaceChild replaces the first direct child equal to existingChild
	// with newChild. It panics if existingChild is not a direct child:
	// callers are expected to know the shape of the tree they are
	// rewriting.
	ReplaceChild(existingChild, newChild Tree)

	// IsLValue reports whether this node denotes an addressable location.
	IsLValue() bool

	// TypeDesc returns the node's type. Nil until the type-assignment
	// pass (see eval.SetExpressionTypes) has visited this node.
	TypeDesc() *types.Desc

	// EmitCode writes this node's code to out. asLValue requests that the
	// node emit its address rather than its value, where that is
	// meaningful. It returns false (without emitting further output) on
	// the first unrecoverable error.
	EmitCode(out *Assembly, asLValue bool) bool

	// FoldConstant attempts to evaluate this node at compile time. ok is
	// false if the node is not a compile-time constant.
	FoldConstant() (value int32, ok bool)
}

// Functor is the open/close visitor protocol used by Iterate. Either hook
// returning false aborts the remainder of the traversal immediately,
// including any sibling subtrees not yet visited.
type Functor interface {
	// Open is called before a node's children are visited.
	Open(t Tree) bool
	// Close is called after a node's children have been visited.
	Close(t Tree) bool
}

// FuncFunctor adapts a pair of functions to the Functor interface for
// callers that only need one of the two hooks.
type FuncFunctor struct {
	OpenFunc  func(t Tree) bool
	CloseFunc func(t Tree) bool
}

// Open implements Functor.
func (f FuncFunctor) Open(t Tree) bool {
	if f.OpenFunc == nil {
		return true
	}
	return f.OpenFunc(t)
}

// Close implements Functor.
func (f FuncFunctor) Close(t Tree) bool {
	if f.CloseFunc == nil {
		return true
	}
	return f.CloseFunc(t)
}
