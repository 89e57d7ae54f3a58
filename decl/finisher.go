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

package decl

import (
	"github.com/cc6809/compiler/diag"
	"github.com/cc6809/compiler/eval"
	"github.com/cc6809/compiler/types"
)

// Finisher is the two-phase driver glue between parsing and semantic
// checking. During parsing, every Declaration whose array size might
// depend on an enumerator is registered here instead of being resolved
// immediately, because enum bodies are not guaranteed to be fully
// processed yet at the point a declaration is parsed. Once the whole
// translation unit has been parsed (and every enum is therefore fully
// known), FinishAll resolves them all in one pass.
type Finisher struct {
	manager   *types.Manager
	evaluator *eval.ConstantEvaluator
	sink      *diag.Sink
	pending   []*Declaration
}

// NewFinisher returns a Finisher sharing m's type interner, ce's
// constant evaluator and sink's diagnostic stream with the rest of the
// compiler.
func NewFinisher(m *types.Manager, ce *eval.ConstantEvaluator, sink *diag.Sink) *Finisher {
	return &Finisher{manager: m, evaluator: ce, sink: sink}
}

// Register queues decl for resolution by a later FinishAll call.
func (f *Finisher) Register(decl *Declaration) {
	f.pending = append(f.pending, decl)
}

// FinishAll resolves every registered declaration's ResolvedType. It
// keeps going after a failed declaration (pushing its diagnostic to the
// shared sink) so that a single bad declaration does not hide every
// other error in the same translation unit; it reports overall success
// only if every declaration resolved cleanly.
func (f *Finisher) FinishAll() bool {
	ok := true
	for _, decl := range f.pending {
		if !decl.Finish(f.manager, f.evaluator, f.sink) {
			ok = false
		}
	}
	return ok
}

// Pending returns the declarations still queued (resolved or not),
// mainly for tests.
func (f *Finisher) Pending() []*Declaration {
	return f.pending
}
