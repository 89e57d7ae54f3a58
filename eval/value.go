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

// Package eval implements the constant-expression evaluator: exact
// 8/16/32-bit signed and unsigned integer arithmetic with the dialect's
// defined (non-trapping) overflow, shift and division-by-zero behavior,
// plus the pass that assigns a TypeDesc to every expression node.
package eval

import "github.com/cc6809/compiler/types"

// Value is an integer with a fixed bit width and a signedness tag. All
// arithmetic on a Value is performed modulo 2^Width*8 with the dialect's
// own div/mod-by-zero and shift rules: there is no Go-level overflow
// panic or trap anywhere in this package, matching the target machine's
// own wraparound arithmetic.
type Value struct {
	Width  int // 1, 2 or 4 bytes
	Signed bool
	Bits   uint32 // raw bit pattern, already masked to Width bytes
}

func mask(width int) uint32 {
	switch width {
	case 1:
		return 0xFF
	case 2:
		return 0xFFFF
	default:
		return 0xFFFFFFFF
	}
}

func signBit(width int) uint32 {
	switch width {
	case 1:
		return 0x80
	case 2:
		return 0x8000
	default:
		return 0x80000000
	}
}

// New builds a Value from a raw (possibly negative) int64, truncating to
// width bytes.
func New(raw int64, width int, signed bool) Value {
	return Value{Width: width, Signed: signed, Bits: uint32(raw) & mask(width)}
}

// FromDesc builds a Value of raw at the width/signedness of td.
func FromDesc(raw int64, td *types.Desc) Value {
	width := td.Width
	if width == 0 {
		width = 2
	}
	return New(raw, width, td.Signed)
}

// Signed64 interprets Bits according to Signed, sign-extended to int64.
func (v Value) Signed64() int64 {
	if !v.Signed || v.Bits&signBit(v.Width) == 0 {
		return int64(v.Bits)
	}
	// Sign-extend: the bits above Width*8 are all 1s above the sign bit.
	return int64(v.Bits) - int64(mask(v.Width)) - 1
}

// Unsigned64 interprets Bits as unsigned.
func (v Value) Unsigned64() int64 { return int64(v.Bits) }

// Int64 returns the value's mathematical reading, per its own Signed tag.
func (v Value) Int64() int64 {
	if v.Signed {
		return v.Signed64()
	}
	return v.Unsigned64()
}

func (v Value) masked(bits uint32) Value {
	v.Bits = bits & mask(v.Width)
	return v
}

// promote implements the dialect's usual-arithmetic-conversions rule: the
// operation is carried out at the wider of the two operand widths; if the
// widths are equal, the result is unsigned if either operand is.
func promote(a, b Value) (width int, signed bool) {
	width = a.Width
	if b.Width > width {
		width = b.Width
	}
	switch {
	case a.Width == b.Width:
		signed = a.Signed && b.Signed
	case a.Width > b.Width:
		signed = a.Signed
	default:
		signed = b.Signed
	}
	return width, signed
}

func widen(v Value, width int, signed bool) Value {
	raw := v.Int64()
	return New(raw, width, signed)
}

// Add returns a+b, wrapped to the promoted width.
func Add(a, b Value) Value {
	w, s := promote(a, b)
	x, y := widen(a, w, s), widen(b, w, s)
	return New(x.Int64()+y.Int64(), w, s)
}

// Sub returns a-b, wrapped to the promoted width.
func Sub(a, b Value) Value {
	w, s := promote(a, b)
	x, y := widen(a, w, s), widen(b, w, s)
	return New(x.Int64()-y.Int64(), w, s)
}

// Mul returns a*b, wrapped to the promoted width.
func Mul(a, b Value) Value {
	w, s := promote(a, b)
	x, y := widen(a, w, s), widen(b, w, s)
	return New(x.Int64()*y.Int64(), w, s)
}

// Div returns a/b truncated toward zero. Division by zero does not trap:
// an unsigned division yields the all-ones bit pattern at the promoted
// width. A signed division is carried out on the operand magnitudes and
// the quotient negated when exactly one operand is negative, the same way
// the emitted runtime routine works; dividing a negative value by zero
// therefore yields the all-ones pattern negated, i.e. 1.
func Div(a, b Value) Value {
	w, s := promote(a, b)
	x, y := widen(a, w, s), widen(b, w, s)
	if !s {
		if y.Bits == 0 {
			return Value{Width: w, Signed: s, Bits: mask(w)}
		}
		return New(int64(x.Bits)/int64(y.Bits), w, s)
	}
	xv, yv := x.Signed64(), y.Signed64()
	var quotient uint32
	if yv == 0 {
		quotient = mask(w)
	} else {
		quotient = uint32(abs64(xv) / abs64(yv))
	}
	if (xv < 0) != (yv < 0) {
		quotient = -quotient
	}
	return Value{Width: w, Signed: s, Bits: quotient & mask(w)}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Mod returns a%b with the sign of the dividend (C truncating-division
// semantics). Modulo by zero does not trap: the result is the dividend,
// unchanged, at the promoted width.
func Mod(a, b Value) Value {
	w, s := promote(a, b)
	x, y := widen(a, w, s), widen(b, w, s)
	if y.Bits == 0 {
		return x
	}
	return New(x.Int64()%y.Int64(), w, s)
}

// ShiftLeft returns a<<n. The shift amount is taken modulo nothing (a
// shift of Width*8 or more yields zero, matching the target's 8-bit shift
// instructions applied bit-by-bit rather than a single barrel shift).
func ShiftLeft(a Value, n uint32) Value {
	if n >= uint32(a.Width)*8 {
		return a.masked(0)
	}
	return a.masked(a.Bits << n)
}

// ShiftRight returns a>>n: arithmetic (sign-extending) if a is signed,
// logical otherwise.
func ShiftRight(a Value, n uint32) Value {
	width := uint32(a.Width) * 8
	if a.Signed {
		if n >= width {
			if a.Bits&signBit(a.Width) != 0 {
				return a.masked(mask(a.Width))
			}
			return a.masked(0)
		}
		return a.masked(uint32(a.Signed64() >> n))
	}
	if n >= width {
		return a.masked(0)
	}
	return a.masked(a.Bits >> n)
}

// Neg returns -a, wrapped to a's own width.
func Neg(a Value) Value { return New(-a.Int64(), a.Width, a.Signed) }

// BitwiseNot returns ^a, wrapped to a's own width.
func BitwiseNot(a Value) Value { return a.masked(^a.Bits) }

// LogicalNot returns 1 if a is zero, else 0, as a signed word (the
// dialect's `!` always produces an `int`-width result).
func LogicalNot(a Value) Value {
	if a.Bits == 0 {
		return Value{Width: 2, Signed: true, Bits: 1}
	}
	return Value{Width: 2, Signed: true, Bits: 0}
}

// Or returns a|b, wrapped to the promoted width.
func Or(a, b Value) Value {
	w, s := promote(a, b)
	x, y := widen(a, w, s), widen(b, w, s)
	return x.masked(x.Bits | y.Bits)
}

// And returns a&b, wrapped to the promoted width.
func And(a, b Value) Value {
	w, s := promote(a, b)
	x, y := widen(a, w, s), widen(b, w, s)
	return x.masked(x.Bits & y.Bits)
}

// Xor returns a^b, wrapped to the promoted width.
func Xor(a, b Value) Value {
	w, s := promote(a, b)
	x, y := widen(a, w, s), widen(b, w, s)
	return x.masked(x.Bits ^ y.Bits)
}
