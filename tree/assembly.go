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

import "fmt"

// Assembly accumulates the 6809 instruction lines a Tree emits. It stands
// in for the original's ASMText: a condensed sink good enough to observe
// which nodes actually emit code (the property the comma-expression
// suppression rule is tested against), without reimplementing the
// back-end's register-allocation and peephole machinery, which sits
// outside this subsystem.
type Assembly struct {
	Lines []string

	scopes []*Scope
}

// Emit appends one formatted instruction line.
func (a *Assembly) Emit(format string, args ...interface{}) {
	a.Lines = append(a.Lines, fmt.Sprintf(format, args...))
}

// Comment appends a comment-only line, mirroring the original's habit of
// annotating emitted blocks with the source construct that produced them.
func (a *Assembly) Comment(format string, args ...interface{}) {
	a.Emit("; "+format, args...)
}

// PushScope enters sc for the duration of an emission. Every PushScope is
// balanced by a PopScope on every exit path, aborted emissions included.
func (a *Assembly) PushScope(sc *Scope) {
	a.scopes = append(a.scopes, sc)
}

// PopScope leaves the innermost scope, releasing its locals.
func (a *Assembly) PopScope() {
	if len(a.scopes) == 0 {
		panic("tree: scope stack underflow")
	}
	a.scopes = a.scopes[:len(a.scopes)-1]
}

// ScopeDepth returns the number of scopes currently entered.
func (a *Assembly) ScopeDepth() int { return len(a.scopes) }
