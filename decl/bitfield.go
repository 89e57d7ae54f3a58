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

// BitFieldWidthKind tags a BitFieldWidth the way the original overloads
// the bitFieldWidth int field with the sentinels NOT_BIT_FIELD (-1),
// INVALID_WIDTH_EXPR (-2) and NEGATIVE_WIDTH_EXPR (-3) alongside the
// genuine widths 0..32. Spelling the sentinels out as their own tag
// avoids a reader ever mistaking one for a width.
type BitFieldWidthKind int

const (
	// NotBitField means this declarator carries no `: width` suffix.
	NotBitField BitFieldWidthKind = iota
	// InvalidWidthExpr means the width expression did not fold to a
	// compile-time constant.
	InvalidWidthExpr
	// NegativeWidthExpr means the width expression folded to a negative
	// signed value.
	NegativeWidthExpr
	// FixedWidth means Width holds a concrete (possibly invalid, e.g.
	// zero or oversized) bit count.
	FixedWidth
)

// BitFieldWidth is the resolved state of a declarator's `: width`
// suffix.
type BitFieldWidth struct {
	Kind  BitFieldWidthKind
	Width uint16 // meaningful only when Kind == FixedWidth
}
