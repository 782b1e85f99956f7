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

//go:build (amd64 || arm64) && !noasm

package simd

// Operations shared by the SSE and NEON backends. Each architecture file
// supplies the single-instruction primitives, the reciprocal estimates and
// recipSteps, the number of Newton-Raphson steps its estimates need.

// Lanes outside the range the estimate instructions handle are scaled by a
// power of two first and the refined result is scaled back.
var (
	recip32_minNormal = Broadcast(0x1p-126)
	recip32_maxInput  = Broadcast(0x1p125)
	recip32_up        = Broadcast(0x1p24)
	recip32_down      = Broadcast(0x1p-24)
	rsqrt32_down      = Broadcast(0x1p12)
	rsqrt32_half      = Broadcast(1.5)
)

// exactEstimate reports the lanes whose estimate is ±0 or ±Inf. The
// estimate is already the IEEE result there and a Newton step would turn
// it into NaN.
func exactEstimate(e Float32x4) Mask32x4 {
	return e.Equal(poly32_zero).Or(e.Abs().Equal(poly32_inf))
}

func vRecip(a [4]float32) [4]float32 {
	x := Float32x4{a}
	ax := x.Abs()
	tiny := ax.Less(recip32_minNormal).And(x.NotEqual(poly32_zero))
	huge := ax.Greater(recip32_maxInput).And(ax.NotEqual(poly32_inf))
	xs := Select(tiny, x.Mul(recip32_up), Select(huge, x.Mul(recip32_down), x))

	e := Float32x4{recipEstimate(xs.v)}
	r := e
	for range recipSteps {
		// r = r * (2 - x*r)
		r = r.Mul(poly32_two.Sub(xs.Mul(r)))
	}
	r = Select(exactEstimate(e), e, r)
	return Select(tiny, r.Mul(recip32_up), Select(huge, r.Mul(recip32_down), r)).v
}

func vRsqrt(a [4]float32) [4]float32 {
	x := Float32x4{a}
	tiny := x.Abs().Less(recip32_minNormal).And(x.NotEqual(poly32_zero))
	xs := Select(tiny, x.Mul(recip32_up), x)

	e := Float32x4{rsqrtEstimate(xs.v)}
	r := e
	halfX := xs.Mul(poly32_half)
	for range recipSteps {
		// r = r * (1.5 - 0.5*x*r*r)
		r = r.Mul(rsqrt32_half.Sub(halfX.Mul(r).Mul(r)))
	}
	r = Select(exactEstimate(e), e, r)
	return Select(tiny, r.Mul(rsqrt32_down), r).v
}

// vSinCos uses the polynomial for |x| <= trig32_maxArg and the float64
// reference for the remaining lanes.
func vSinCos(a [4]float32) (sin, cos [4]float32) {
	x := Float32x4{a}
	s, c := sinCosPoly(x)
	if big := x.Abs().Greater(trig32_maxArg); big.AnyTrue() {
		rs, rc := sinCosGeneric(a)
		s = Select(big, Float32x4{rs}, s)
		c = Select(big, Float32x4{rc}, c)
	}
	return s.v, c.v
}

func vExp(a [4]float32) [4]float32 {
	return expPoly(Float32x4{a}).v
}

func vLog(a [4]float32) [4]float32 {
	return logPoly(Float32x4{a}).v
}

func vPow(a, b [4]float32) [4]float32 {
	return powPoly(Float32x4{a}, Float32x4{b}).v
}
