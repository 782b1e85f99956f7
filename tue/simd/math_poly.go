// Copyright 2026 go-tue Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simd

import stdmath "math"

// Vectorized transcendental functions used by the hardware backends. They are
// written only in terms of Float32x4 primitives (arithmetic, bit operations,
// int32 conversion, compare and select), so one implementation serves SSE
// and NEON. The coefficients are the Cephes single-precision ones.

var (
	poly32_zero   = Zero()
	poly32_half   = Broadcast(0.5)
	poly32_one    = Broadcast(1)
	poly32_two    = Broadcast(2)
	poly32_inf    = Broadcast(float32(stdmath.Inf(1)))
	poly32_negInf = Broadcast(float32(stdmath.Inf(-1)))
	poly32_nan    = Broadcast(float32(stdmath.NaN()))

	// Adding then subtracting 1.5*2^23 rounds to the nearest integer for
	// |x| < 2^22.
	poly32_round = Broadcast(12582912)

	poly32_intOne = FromBits(1)
	poly32_intTwo = FromBits(2)
)

// sin/cos: reduction modulo π/2 with a three-part Cody-Waite split.
var (
	trig32_2overPi = Broadcast(0.63661977236758134308)
	trig32_dp1     = Broadcast(1.5703125)
	trig32_dp2     = Broadcast(4.837512969970703125e-4)
	trig32_dp3     = Broadcast(7.54978995489188216e-8)

	trig32_s1 = Broadcast(-1.6666654611e-1)
	trig32_s2 = Broadcast(8.3321608736e-3)
	trig32_s3 = Broadcast(-1.9515295891e-4)

	trig32_c1 = Broadcast(4.166664568298827e-2)
	trig32_c2 = Broadcast(-1.388731625493765e-3)
	trig32_c3 = Broadcast(2.443315711809948e-5)

	// Largest |x| the reduction keeps within tolerance.
	trig32_maxArg = Broadcast(1e4)
)

// exp: x = k*ln2 + r, e**x = 2**k * e**r.
var (
	exp32_hi    = Broadcast(88.8)
	exp32_lo    = Broadcast(-104)
	exp32_log2e = Broadcast(1.44269504088896341)
	exp32_c1    = Broadcast(0.693359375)
	exp32_c2    = Broadcast(-2.12194440e-4)

	exp32_p0 = Broadcast(1.9875691500e-4)
	exp32_p1 = Broadcast(1.3981999507e-3)
	exp32_p2 = Broadcast(8.3334519073e-3)
	exp32_p3 = Broadcast(4.1665795894e-2)
	exp32_p4 = Broadcast(1.6666665459e-1)
	exp32_p5 = Broadcast(5.0000001201e-1)

	exp32_bias  = Broadcast(127)
	exp32_shift = Broadcast(1 << 23)
)

// log: x = m * 2**e with m in [sqrt(1/2), sqrt(2)).
var (
	log32_minNormal = Broadcast(0x1p-126)
	log32_scale     = Broadcast(1 << 23)
	log32_scaleExp  = Broadcast(23)
	log32_expMask   = FromBits(0x7f800000)
	log32_mantMask  = FromBits(0x007fffff)
	log32_half      = FromBits(0x3f000000)
	log32_invShift  = Broadcast(1.0 / (1 << 23))
	log32_bias      = Broadcast(126)
	log32_sqrtHalf  = Broadcast(0.707106781186547524)

	log32_q1 = Broadcast(-2.12194440e-4)
	log32_q2 = Broadcast(0.693359375)

	log32_p = [...]Float32x4{
		Broadcast(7.0376836292e-2),
		Broadcast(-1.1514610310e-1),
		Broadcast(1.1676998740e-1),
		Broadcast(-1.2420140846e-1),
		Broadcast(1.4249322787e-1),
		Broadcast(-1.6668057665e-1),
		Broadcast(2.0000714765e-1),
		Broadcast(-2.4999993993e-1),
		Broadcast(3.3333331174e-1),
	}
)

// roundPoly rounds every lane to the nearest integer, ties to even.
func roundPoly(x Float32x4) Float32x4 {
	return x.Add(poly32_round).Sub(poly32_round)
}

// sinCosPoly computes sine and cosine with one range reduction.
// Accuracy holds for |x| <= trig32_maxArg; beyond that the reduction loses
// bits and vSinCos falls back to the reference.
//
// Special cases are:
//
//	SinCos(±0) = ±0, 1
//	SinCos(±Inf) = NaN, NaN
//	SinCos(NaN) = NaN, NaN
func sinCosPoly(x Float32x4) (sin, cos Float32x4) {
	k := roundPoly(x.Mul(trig32_2overPi))

	r := x.Sub(k.Mul(trig32_dp1))
	r = r.Sub(k.Mul(trig32_dp2))
	r = r.Sub(k.Mul(trig32_dp3))
	z := r.Mul(r)

	// sin(r) = r + r*z*(s1 + z*(s2 + z*s3))
	sp := trig32_s3.Mul(z).Add(trig32_s2)
	sp = sp.Mul(z).Add(trig32_s1)
	sp = sp.Mul(z).Mul(r).Add(r)

	// cos(r) = 1 - z/2 + z*z*(c1 + z*(c2 + z*c3))
	cp := trig32_c3.Mul(z).Add(trig32_c2)
	cp = cp.Mul(z).Add(trig32_c1)
	cp = cp.Mul(z).Mul(z)
	cp = cp.Sub(z.Mul(poly32_half)).Add(poly32_one)

	// Quadrant k mod 4: bit 0 swaps the polynomials, bit 1 negates sin,
	// bit 0 xor bit 1 negates cos.
	kBits := k.ConvertToInt32Bits()
	swap := kBits.And(poly32_intOne).ConvertFromInt32Bits().Equal(poly32_one)
	high := kBits.And(poly32_intTwo).ConvertFromInt32Bits().Equal(poly32_two)

	sin = Select(swap, cp, sp)
	cos = Select(swap, sp, cp)
	sin = Select(high, sin.Neg(), sin)
	cos = Select(swap.Xor(high), cos.Neg(), cos)
	return sin, cos
}

// expPoly computes e**x.
//
// Special cases are:
//
//	Exp(+Inf) = +Inf
//	Exp(-Inf) = 0
//	Exp(NaN) = NaN
//
// Very large values overflow to +Inf and very small ones underflow to 0.
func expPoly(x Float32x4) Float32x4 {
	nan := x.NotEqual(x)
	xc := x.Max(exp32_lo).Min(exp32_hi)

	k := roundPoly(xc.Mul(exp32_log2e))
	r := xc.Sub(k.Mul(exp32_c1))
	r = r.Sub(k.Mul(exp32_c2))
	z := r.Mul(r)

	p := exp32_p0.Mul(r).Add(exp32_p1)
	p = p.Mul(r).Add(exp32_p2)
	p = p.Mul(r).Add(exp32_p3)
	p = p.Mul(r).Add(exp32_p4)
	p = p.Mul(r).Add(exp32_p5)
	p = p.Mul(z).Add(r).Add(poly32_one)

	// 2**k is applied as two factors so each biased exponent stays normal
	// for k down to -150.
	k1 := roundPoly(k.Mul(poly32_half))
	k2 := k.Sub(k1)
	s1 := k1.Add(exp32_bias).Mul(exp32_shift).ConvertToInt32Bits()
	s2 := k2.Add(exp32_bias).Mul(exp32_shift).ConvertToInt32Bits()

	return Select(nan, x, p.Mul(s1).Mul(s2))
}

// logPoly computes the natural logarithm.
//
// Special cases are:
//
//	Log(+Inf) = +Inf
//	Log(0) = -Inf
//	Log(x < 0) = NaN
//	Log(NaN) = NaN
func logPoly(x Float32x4) Float32x4 {
	zero := x.Equal(poly32_zero)
	neg := x.Less(poly32_zero)
	inf := x.Equal(poly32_inf)
	nan := x.NotEqual(x)

	sub := x.Less(log32_minNormal).And(x.Greater(poly32_zero))
	xs := Select(sub, x.Mul(log32_scale), x)

	e := xs.And(log32_expMask).ConvertFromInt32Bits().Mul(log32_invShift).Sub(log32_bias)
	e = Select(sub, e.Sub(log32_scaleExp), e)
	m := xs.And(log32_mantMask).Or(log32_half)

	small := m.Less(log32_sqrtHalf)
	e = Select(small, e.Sub(poly32_one), e)
	m = Select(small, m.Add(m), m).Sub(poly32_one)

	z := m.Mul(m)
	y := log32_p[0]
	for _, c := range log32_p[1:] {
		y = y.Mul(m).Add(c)
	}
	y = y.Mul(m).Mul(z)
	y = y.Add(e.Mul(log32_q1))
	y = y.Sub(z.Mul(poly32_half))
	r := m.Add(y).Add(e.Mul(log32_q2))

	r = Select(zero, poly32_negInf, r)
	r = Select(neg, poly32_nan, r)
	r = Select(inf, poly32_inf, r)
	return Select(nan, x, r)
}

// powPoly computes x**y as exp(y*log(x)), with pow(x, 0) = 1.
func powPoly(x, y Float32x4) Float32x4 {
	r := expPoly(y.Mul(logPoly(x)))
	return Select(y.Equal(poly32_zero), poly32_one, r)
}
