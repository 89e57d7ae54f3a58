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

package eval_test

import (
	"testing"

	"github.com/cc6809/compiler/eval"
	"github.com/cc6809/compiler/internal/xassert"
)

func ulong(n int64) eval.Value { return eval.New(n, 4, false) }
func slong(n int64) eval.Value { return eval.New(n, 4, true) }

// TestUnsignedLongArithmetic reproduces unsignedLongBinaryOperators() from
// the original test program almost assertion-for-assertion.
func TestUnsignedLongArithmetic(t *testing.T) {
	ul0 := ulong(1234567)
	ul1 := ulong(445566)

	xassert.For(t, "ul0+ul1").That(eval.Add(ul0, ul1).Unsigned64()).Equals(int64(1680133))
	xassert.For(t, "ul0-ul1").That(eval.Sub(ul0, ul1).Unsigned64()).Equals(int64(789001))
	xassert.For(t, "ul0*ul1").That(eval.Mul(ul0, ul1).Unsigned64()).Equals(int64(325266034))

	xassert.For(t, "0xFFFFFFFF*0xFFFFFFFF").That(eval.Mul(ulong(0xFFFFFFFF), ulong(0xFFFFFFFF)).Unsigned64()).Equals(int64(1))
	xassert.For(t, "0xFF000000*0xFF000000").That(eval.Mul(ulong(0xFF000000), ulong(0xFF000000)).Unsigned64()).Equals(int64(0))

	xassert.For(t, "4e9/70000").That(eval.Div(ulong(4000000000), ulong(70000)).Unsigned64()).Equals(int64(57142))
	xassert.For(t, "0/7000").That(eval.Div(ulong(0), ulong(7000)).Unsigned64()).Equals(int64(0))
	xassert.For(t, "70000/0 div-by-zero").That(eval.Div(ulong(70000), ulong(0)).Unsigned64()).Equals(int64(0xFFFFFFFF))
	xassert.For(t, "7000/0 div-by-zero").That(eval.Div(ulong(7000), ulong(0)).Unsigned64()).Equals(int64(0xFFFFFFFF))

	xassert.For(t, "123%10").That(eval.Mod(ulong(123), ulong(10)).Unsigned64()).Equals(int64(3))
	xassert.For(t, "70000%0 mod-by-zero").That(eval.Mod(ulong(70000), ulong(0)).Unsigned64()).Equals(int64(70000))
	xassert.For(t, "0%70000").That(eval.Mod(ulong(0), ulong(70000)).Unsigned64()).Equals(int64(0))
}

// TestSignedLongArithmetic reproduces key assertions from
// signedLongBinaryOperators(), including C's truncating division and the
// "remainder takes the sign of the dividend" rule.
func TestSignedLongArithmetic(t *testing.T) {
	xassert.For(t, "-4000000/-70000").That(eval.Div(slong(-4000000), slong(-70000)).Signed64()).Equals(int64(57))
	xassert.For(t, "-4000000/70000").That(eval.Div(slong(-4000000), slong(70000)).Signed64()).Equals(int64(-57))
	xassert.For(t, "4000000/-70000").That(eval.Div(slong(4000000), slong(-70000)).Signed64()).Equals(int64(-57))
	xassert.For(t, "4000000/70000").That(eval.Div(slong(4000000), slong(70000)).Signed64()).Equals(int64(57))
	xassert.For(t, "7000/0 div-by-zero yields all-ones").That(eval.Div(slong(7000), slong(0)).Unsigned64()).Equals(int64(0xFFFFFFFF))

	xassert.For(t, "-4000000%-70000").That(eval.Mod(slong(-4000000), slong(-70000)).Signed64()).Equals(int64(-10000))
	xassert.For(t, "-4000000%70000").That(eval.Mod(slong(-4000000), slong(70000)).Signed64()).Equals(int64(-10000))
	xassert.For(t, "4000000%-70000").That(eval.Mod(slong(4000000), slong(-70000)).Signed64()).Equals(int64(10000))
	xassert.For(t, "4000000%70000").That(eval.Mod(slong(4000000), slong(70000)).Signed64()).Equals(int64(10000))
	xassert.For(t, "7000%0 mod-by-zero yields dividend").That(eval.Mod(slong(7000), slong(0)).Signed64()).Equals(int64(7000))

	// A signed division is carried out on magnitudes and sign-corrected,
	// so dividing a negative value by zero yields 0xFFFFFFFF negated.
	xassert.For(t, "negative/0 div-by-zero yields 1").That(eval.Div(slong(-1234567), slong(0)).Signed64()).Equals(int64(1))
	xassert.For(t, "negative%0 mod-by-zero yields dividend").That(eval.Mod(slong(-1234567), slong(0)).Signed64()).Equals(int64(-1234567))

	xassert.For(t, "-100*1000").That(eval.Mul(slong(-100), slong(1000)).Signed64()).Equals(int64(-100000))
	xassert.For(t, "100*-1000").That(eval.Mul(slong(100), slong(-1000)).Signed64()).Equals(int64(-100000))
}

// TestMixedWidthPromotion reproduces the mixed-operand assertions of the
// original test program: a narrower operand widens preserving its own
// signedness, and the operation is unsigned only when an operand is
// already an unsigned long.
func TestMixedWidthPromotion(t *testing.T) {
	uword := func(n int64) eval.Value { return eval.New(n, 2, false) }
	sword := func(n int64) eval.Value { return eval.New(n, 2, true) }

	xassert.For(t, "slong/uword divides signed").That(eval.Div(slong(-1234567), uword(1844)).Signed64()).Equals(int64(-669))
	xassert.For(t, "slong%uword keeps dividend sign").That(eval.Mod(slong(-1234567), uword(1844)).Signed64()).Equals(int64(-931))
	xassert.For(t, "sword/ulong divides unsigned").That(eval.Div(sword(-9999), ulong(9)).Unsigned64()).Equals(int64(477217477))
	xassert.For(t, "sword%ulong").That(eval.Mod(sword(-9999), ulong(9)).Unsigned64()).Equals(int64(4))
	xassert.For(t, "(short)60000/slong(1000)").That(eval.Div(eval.New(60000, 2, true), slong(1000)).Signed64()).Equals(int64(-5))
	xassert.For(t, "slong(-1)%sword(-1)").That(eval.Mod(slong(-1), sword(-1)).Signed64()).Equals(int64(0))
	xassert.For(t, "negative slong/uword zero divisor").That(eval.Div(slong(-1234567), uword(0)).Signed64()).Equals(int64(1))
}

func TestShifts(t *testing.T) {
	xassert.For(t, "unsigned 1<<31").That(eval.ShiftLeft(ulong(1), 31).Unsigned64()).Equals(int64(0x80000000))
	xassert.For(t, "unsigned 0x80000000>>31").That(eval.ShiftRight(ulong(0x80000000), 31).Unsigned64()).Equals(int64(1))
	xassert.For(t, "unsigned full-width shift yields zero").That(eval.ShiftLeft(ulong(0x10000000), 32).Unsigned64()).Equals(int64(0))

	signedMin := slong(-0x80000000) // 0x80000000 as signed long
	xassert.For(t, "signed 0x80000000>>1 sign extends").That(eval.ShiftRight(signedMin, 1).Bits).Equals(uint32(0xC0000000))
	xassert.For(t, "signed 0x80000000>>31 yields all-ones").That(eval.ShiftRight(signedMin, 31).Unsigned64()).Equals(int64(0xFFFFFFFF))
}

func TestByteAndWordWraparound(t *testing.T) {
	b := eval.New(250, 1, false)
	xassert.For(t, "(byte)250 widened to ulong").That(eval.New(b.Int64(), 4, false).Unsigned64()).Equals(int64(250))

	signedByteMinusOne := eval.New(-1, 1, true)
	xassert.For(t, "(signed char)-1 widened to unsigned long sign-extends").
		That(eval.New(signedByteMinusOne.Int64(), 4, false).Unsigned64()).Equals(int64(4294967295))

	shortSixty := eval.New(60000, 2, true) // overflow wraps to negative per two's complement
	xassert.For(t, "(short)60000 is negative").That(shortSixty.Signed64()).Equals(int64(-5536))
}
