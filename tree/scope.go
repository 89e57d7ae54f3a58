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

// Scope is the lexical scope a compound statement introduces. The emitter
// keeps a stack of them (see Assembly) so that locals declared inside a
// sequence are released on every exit path, including an aborted emission.
type Scope struct {
	Parent *Scope

	// LocalNames lists the variables declared directly in this scope, in
	// declaration order.
	LocalNames []string
}

// NewScope returns a scope nested in parent (nil for the outermost one).
func NewScope(parent *Scope) *Scope {
	return &Scope{Parent: parent}
}

// DeclareLocal records a variable declared directly in this scope.
func (sc *Scope) DeclareLocal(name string) {
	sc.LocalNames = append(sc.LocalNames, name)
}
