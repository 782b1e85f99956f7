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

// Package simd provides Float32x4, a value type of four float32 lanes that
// maps onto one 128-bit register.
//
// The backend is chosen when the package is compiled:
//
//	amd64          SSE (float32x4_amd64.s)
//	arm64          NEON (float32x4_arm64.s)
//	anything else  portable Go, one lane at a time
//
// Building with -tags noasm selects the portable backend on every
// architecture. All backends agree lane for lane with the reference
// implementations in float32x4_generic.go, exactly for arithmetic,
// comparisons and bit operations, and within a documented tolerance for
// Recip, Rsqrt and the transcendental functions.
package simd

import (
	"fmt"
	"math"
)

// Float32x4 holds four float32 lanes. The zero value has every lane 0.
// It is a plain 16-byte value; copying it copies the lanes.
type Float32x4 struct {
	v [4]float32
}

// New returns the vector (a, b, c, d), a in lane 0.
func New(a, b, c, d float32) Float32x4 {
	return Float32x4{[4]float32{a, b, c, d}}
}

// Broadcast returns a vector with every lane set to s.
func Broadcast(s float32) Float32x4 {
	return Float32x4{[4]float32{s, s, s, s}}
}

// Zero returns a vector with every lane 0.
func Zero() Float32x4 {
	return Float32x4{}
}

// FromArray returns the vector holding a.
func FromArray(a [4]float32) Float32x4 {
	return Float32x4{a}
}

// FromBits returns a vector whose every lane has the bit pattern bits.
func FromBits(bits uint32) Float32x4 {
	return Broadcast(math.Float32frombits(bits))
}

// Load reads four lanes from s. It panics if len(s) < 4.
func Load(s []float32) Float32x4 {
	return Float32x4{[4]float32(s)}
}

// Store writes the four lanes to s. It panics if len(s) < 4.
func (x Float32x4) Store(s []float32) {
	_ = s[3]
	copy(s, x.v[:])
}

// Array returns the lanes as an array.
func (x Float32x4) Array() [4]float32 {
	return x.v
}

// Get returns lane i.
func (x Float32x4) Get(i int) float32 {
	return x.v[i]
}

// Set replaces lane i with s.
func (x *Float32x4) Set(i int, s float32) {
	x.v[i] = s
}

// String formats the lanes like a [4]float32.
func (x Float32x4) String() string {
	return fmt.Sprint(x.v)
}

// Add returns x + y.
func (x Float32x4) Add(y Float32x4) Float32x4 {
	return Float32x4{vAdd(x.v, y.v)}
}

// Sub returns x - y.
func (x Float32x4) Sub(y Float32x4) Float32x4 {
	return Float32x4{vSub(x.v, y.v)}
}

// Mul returns x * y.
func (x Float32x4) Mul(y Float32x4) Float32x4 {
	return Float32x4{vMul(x.v, y.v)}
}

// Div returns x / y. Division by zero follows IEEE-754.
func (x Float32x4) Div(y Float32x4) Float32x4 {
	return Float32x4{vDiv(x.v, y.v)}
}

// Neg returns -x by flipping the sign bit of every lane.
func (x Float32x4) Neg() Float32x4 {
	return Float32x4{vNeg(x.v)}
}

// Min returns x < y ? x : y per lane. When either lane is NaN, or both are
// zeros of any sign, the lane of y is returned.
func (x Float32x4) Min(y Float32x4) Float32x4 {
	return Float32x4{vMin(x.v, y.v)}
}

// Max returns x > y ? x : y per lane, with the same NaN and zero rules as Min.
func (x Float32x4) Max(y Float32x4) Float32x4 {
	return Float32x4{vMax(x.v, y.v)}
}

// Abs clears the sign bit of every lane.
func (x Float32x4) Abs() Float32x4 {
	return Float32x4{vAbs(x.v)}
}

// Sqrt returns the correctly rounded square root of every lane.
func (x Float32x4) Sqrt() Float32x4 {
	return Float32x4{vSqrt(x.v)}
}

// Recip returns 1/x.
//
// Hardware backends refine the instruction estimate with Newton-Raphson; the
// relative error is at most 2^-20 for finite nonzero lanes with a normal
// result, subnormal inputs included. Subnormal results carry one extra
// rounding. Zero, infinite and NaN lanes give the IEEE result.
func (x Float32x4) Recip() Float32x4 {
	return Float32x4{vRecip(x.v)}
}

// Rsqrt returns 1/sqrt(x), with the same accuracy contract as Recip.
func (x Float32x4) Rsqrt() Float32x4 {
	return Float32x4{vRsqrt(x.v)}
}

// And returns the bitwise AND of the lane bit patterns.
func (x Float32x4) And(y Float32x4) Float32x4 {
	return Float32x4{vAnd(x.v, y.v)}
}

// Or returns the bitwise OR of the lane bit patterns.
func (x Float32x4) Or(y Float32x4) Float32x4 {
	return Float32x4{vOr(x.v, y.v)}
}

// Xor returns the bitwise XOR of the lane bit patterns.
func (x Float32x4) Xor(y Float32x4) Float32x4 {
	return Float32x4{vXor(x.v, y.v)}
}

// AndNot returns x &^ y on the lane bit patterns.
func (x Float32x4) AndNot(y Float32x4) Float32x4 {
	return Float32x4{vAndNot(x.v, y.v)}
}

// ConvertToInt32Bits truncates every lane toward zero to an int32 and returns
// the integers as lane bit patterns. Lanes outside the int32 range, and NaN
// lanes, produce a backend-specific value.
func (x Float32x4) ConvertToInt32Bits() Float32x4 {
	return Float32x4{vToInt32(x.v)}
}

// ConvertFromInt32Bits reads every lane bit pattern as an int32 and converts
// it to the nearest float32.
func (x Float32x4) ConvertFromInt32Bits() Float32x4 {
	return Float32x4{vFromInt32(x.v)}
}

// Equal returns the lanes where x == y.
func (x Float32x4) Equal(y Float32x4) Mask32x4 {
	return Mask32x4{vEq(x.v, y.v)}
}

// NotEqual returns the lanes where x != y, NaN lanes included.
func (x Float32x4) NotEqual(y Float32x4) Mask32x4 {
	return Mask32x4{vNe(x.v, y.v)}
}

// Less returns the lanes where x < y.
func (x Float32x4) Less(y Float32x4) Mask32x4 {
	return Mask32x4{vLt(x.v, y.v)}
}

// LessEqual returns the lanes where x <= y.
func (x Float32x4) LessEqual(y Float32x4) Mask32x4 {
	return Mask32x4{vLe(x.v, y.v)}
}

// Greater returns the lanes where x > y.
func (x Float32x4) Greater(y Float32x4) Mask32x4 {
	return Mask32x4{vLt(y.v, x.v)}
}

// GreaterEqual returns the lanes where x >= y.
func (x Float32x4) GreaterEqual(y Float32x4) Mask32x4 {
	return Mask32x4{vLe(y.v, x.v)}
}

// Select returns the lanes of a where m is set and the lanes of b elsewhere.
func Select(m Mask32x4, a, b Float32x4) Float32x4 {
	return Float32x4{vSelect(m.m, a.v, b.v)}
}

// Sin returns the sine of every lane.
func (x Float32x4) Sin() Float32x4 {
	s, _ := vSinCos(x.v)
	return Float32x4{s}
}

// Cos returns the cosine of every lane.
func (x Float32x4) Cos() Float32x4 {
	_, c := vSinCos(x.v)
	return Float32x4{c}
}

// SinCos returns the sine and cosine of every lane from one range reduction.
func (x Float32x4) SinCos() (sin, cos Float32x4) {
	s, c := vSinCos(x.v)
	return Float32x4{s}, Float32x4{c}
}

// Exp returns e**x for every lane.
func (x Float32x4) Exp() Float32x4 {
	return Float32x4{vExp(x.v)}
}

// Log returns the natural logarithm of every lane.
//
// Special cases are:
//
//	Log(+Inf) = +Inf
//	Log(0) = -Inf
//	Log(x < 0) = NaN
//	Log(NaN) = NaN
func (x Float32x4) Log() Float32x4 {
	return Float32x4{vLog(x.v)}
}

// Pow returns x**y computed as Exp(y*Log(x)), so negative bases give NaN.
// Lanes where y is 0 return 1, NaN bases included.
func (x Float32x4) Pow(y Float32x4) Float32x4 {
	return Float32x4{vPow(x.v, y.v)}
}

// ReduceSum returns ((x0 + x1) + x2) + x3.
func (x Float32x4) ReduceSum() float32 {
	return x.v[0] + x.v[1] + x.v[2] + x.v[3]
}

// Identical reports whether every lane of x equals the matching lane of y.
func (x Float32x4) Identical(y Float32x4) bool {
	return x.Equal(y).AllTrue()
}
