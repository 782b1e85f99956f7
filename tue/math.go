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

package tue

// Scalar math. These are the elementwise operations the vector methods are
// built from, exposed for code that is generic over Scalar or Real and so
// cannot use Go's operators directly.
//
// The transcendental functions accept integers too: they evaluate in
// float64 and convert back to T, so Sqrt(10) is 3. Promote converts an
// integer to float64 first for the untruncated result.

// Sin returns the sine of x.
func Sin[T Scalar](x T) T { return mathOf[T]().sin(x) }

// Cos returns the cosine of x.
func Cos[T Scalar](x T) T { return mathOf[T]().cos(x) }

// SinCos stores the sine and cosine of x in sin and cos.
func SinCos[T Scalar](x T, sin, cos *T) {
	*sin, *cos = mathOf[T]().sincos(x)
}

// Exp returns e**x.
func Exp[T Scalar](x T) T { return mathOf[T]().exp(x) }

// Log returns the natural logarithm of x.
func Log[T Scalar](x T) T { return mathOf[T]().log(x) }

// Pow returns x**y.
//
// For float32 and float64 this is the math package's Pow. For
// simd.Float32x4 it is exp(y*log(x)) per lane, which is NaN for every
// negative base.
func Pow[T Scalar](x, y T) T { return mathOf[T]().pow(x, y) }

// Sqrt returns the square root of x.
func Sqrt[T Scalar](x T) T { return mathOf[T]().sqrt(x) }

// Recip returns 1/x. For simd.Float32x4 see the accuracy note on
// simd.Float32x4.Recip.
func Recip[T Scalar](x T) T { return mathOf[T]().recip(x) }

// Rsqrt returns 1/Sqrt(x).
func Rsqrt[T Scalar](x T) T { return mathOf[T]().rsqrt(x) }

// Min returns a < b ? a : b. For floats, a NaN in either argument or two
// zeros return b.
func Min[T Scalar](a, b T) T { return arithOf[T]().min(a, b) }

// Max returns a > b ? a : b, with the same rules as Min.
func Max[T Scalar](a, b T) T { return arithOf[T]().max(a, b) }

// Abs returns the absolute value of x. Float types clear the sign bit;
// integer types negate, so Abs of the most negative value is itself.
func Abs[T Scalar](x T) T { return arithOf[T]().abs(x) }

// Length2 returns x*x, the squared length of a one-component vector.
func Length2[T Scalar](x T) T { return arithOf[T]().mul(x, x) }

// Add returns a + b.
func Add[T Scalar](a, b T) T { return arithOf[T]().add(a, b) }

// Sub returns a - b.
func Sub[T Scalar](a, b T) T { return arithOf[T]().sub(a, b) }

// Mul returns a * b.
func Mul[T Scalar](a, b T) T { return arithOf[T]().mul(a, b) }

// Div returns a / b.
func Div[T Scalar](a, b T) T { return arithOf[T]().div(a, b) }

// Neg returns -a.
func Neg[T Scalar](a T) T { return arithOf[T]().neg(a) }

// Const converts the constant f to T: a native conversion for numbers and
// a broadcast for simd.Float32x4.
func Const[T Scalar](f float64) T { return arithOf[T]().fromFloat(f) }

// Promote converts an integer to float64, the type the usual arithmetic
// conversions give math on integers.
func Promote[T Integers](x T) float64 { return float64(x) }
