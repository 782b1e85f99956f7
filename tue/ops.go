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

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/tuemath/go-tue/tue/simd"
)

// This file holds one function table per component type. Vector and matrix
// methods look the table up once per call and apply its entries component by
// component, so no method special-cases T.

// arith holds the operations every component type supports.
type arith[T any] struct {
	zero, one T
	fromFloat func(float64) T

	add, sub, mul, div func(a, b T) T
	min, max           func(a, b T) T
	neg, abs, inc, dec func(a T) T
	eq                 func(a, b T) bool

	math *realMath[T]
}

// realMath holds the transcendental operations. Integer tables evaluate in
// float64 and convert the result back to T with Go's conversion rules, so
// integer math stays integer; Promote2 and friends give the float64 result.
type realMath[T any] struct {
	sin, cos, exp, log, sqrt, recip, rsqrt func(a T) T
	sincos                                 func(a T) (T, T)
	pow                                    func(a, b T) T
	// ifZero returns a where x == 0 and b elsewhere, per lane for
	// simd.Float32x4.
	ifZero func(x, a, b T) T
}

func numberIfZero[T Number](x, a, b T) T {
	if x == 0 {
		return a
	}
	return b
}

func newNumberArith[T Number](abs func(T) T, m *realMath[T]) *arith[T] {
	return &arith[T]{
		zero:      0,
		one:       1,
		fromFloat: func(f float64) T { return T(f) },
		add:       func(a, b T) T { return a + b },
		sub:       func(a, b T) T { return a - b },
		mul:       func(a, b T) T { return a * b },
		div:       func(a, b T) T { return a / b },
		min: func(a, b T) T {
			if a < b {
				return a
			}
			return b
		},
		max: func(a, b T) T {
			if a > b {
				return a
			}
			return b
		},
		neg:  func(a T) T { return -a },
		abs:  abs,
		inc:  func(a T) T { return a + 1 },
		dec:  func(a T) T { return a - 1 },
		eq:   func(a, b T) bool { return a == b },
		math: m,
	}
}

// intAbs wraps for the most negative value, like the two's-complement
// negation it is.
func intAbs[T Integers](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// intFunc lifts a float64 function to T. Results outside the range of T,
// NaN and infinities included, convert as Go specifies for such values.
func intFunc[T Integers](f func(float64) float64) func(T) T {
	return func(a T) T { return T(f(float64(a))) }
}

func newIntMath[T Integers]() *realMath[T] {
	return &realMath[T]{
		sin:   intFunc[T](math.Sin),
		cos:   intFunc[T](math.Cos),
		exp:   intFunc[T](math.Exp),
		log:   intFunc[T](math.Log),
		sqrt:  intFunc[T](math.Sqrt),
		recip: intFunc[T](func(a float64) float64 { return 1 / a }),
		rsqrt: intFunc[T](func(a float64) float64 { return 1 / math.Sqrt(a) }),
		sincos: func(a T) (T, T) {
			s, c := math.Sincos(float64(a))
			return T(s), T(c)
		},
		pow: func(a, b T) T {
			return T(math.Pow(float64(a), float64(b)))
		},
		ifZero: numberIfZero[T],
	}
}

func newIntArith[T Integers]() *arith[T] {
	return newNumberArith(intAbs[T], newIntMath[T]())
}

var float32Math = &realMath[float32]{
	sin:    math32.Sin,
	cos:    math32.Cos,
	exp:    math32.Exp,
	log:    math32.Log,
	sqrt:   math32.Sqrt,
	recip:  func(a float32) float32 { return 1 / a },
	rsqrt:  func(a float32) float32 { return 1 / math32.Sqrt(a) },
	sincos: math32.Sincos,
	pow:    math32.Pow,
	ifZero: numberIfZero[float32],
}

var float64Math = &realMath[float64]{
	sin:    math.Sin,
	cos:    math.Cos,
	exp:    math.Exp,
	log:    math.Log,
	sqrt:   math.Sqrt,
	recip:  func(a float64) float64 { return 1 / a },
	rsqrt:  func(a float64) float64 { return 1 / math.Sqrt(a) },
	sincos: math.Sincos,
	pow:    math.Pow,
	ifZero: numberIfZero[float64],
}

var float32x4Math = &realMath[simd.Float32x4]{
	sin:    simd.Float32x4.Sin,
	cos:    simd.Float32x4.Cos,
	exp:    simd.Float32x4.Exp,
	log:    simd.Float32x4.Log,
	sqrt:   simd.Float32x4.Sqrt,
	recip:  simd.Float32x4.Recip,
	rsqrt:  simd.Float32x4.Rsqrt,
	sincos: simd.Float32x4.SinCos,
	pow:    simd.Float32x4.Pow,
	ifZero: func(x, a, b simd.Float32x4) simd.Float32x4 {
		return simd.Select(x.Equal(simd.Zero()), a, b)
	},
}

var (
	intArith     = newIntArith[int]()
	int8Arith    = newIntArith[int8]()
	int16Arith   = newIntArith[int16]()
	int32Arith   = newIntArith[int32]()
	int64Arith   = newIntArith[int64]()
	uintArith    = newIntArith[uint]()
	uint8Arith   = newIntArith[uint8]()
	uint16Arith  = newIntArith[uint16]()
	uint32Arith  = newIntArith[uint32]()
	uint64Arith  = newIntArith[uint64]()
	uintptrArith = newIntArith[uintptr]()
	float32Arith = newNumberArith(math32.Abs, float32Math)
	float64Arith = newNumberArith(math.Abs, float64Math)

	float32x4One   = simd.Broadcast(1)
	float32x4Arith = &arith[simd.Float32x4]{
		zero:      simd.Zero(),
		one:       float32x4One,
		fromFloat: func(f float64) simd.Float32x4 { return simd.Broadcast(float32(f)) },
		add:       simd.Float32x4.Add,
		sub:       simd.Float32x4.Sub,
		mul:       simd.Float32x4.Mul,
		div:       simd.Float32x4.Div,
		min:       simd.Float32x4.Min,
		max:       simd.Float32x4.Max,
		neg:       simd.Float32x4.Neg,
		abs:       simd.Float32x4.Abs,
		inc:       func(a simd.Float32x4) simd.Float32x4 { return a.Add(float32x4One) },
		dec:       func(a simd.Float32x4) simd.Float32x4 { return a.Sub(float32x4One) },
		eq:        simd.Float32x4.Identical,
		math:      float32x4Math,
	}
)

// arithOf returns the table for T.
func arithOf[T Scalar]() *arith[T] {
	var zero T
	var a any
	switch any(zero).(type) {
	case int:
		a = intArith
	case int8:
		a = int8Arith
	case int16:
		a = int16Arith
	case int32:
		a = int32Arith
	case int64:
		a = int64Arith
	case uint:
		a = uintArith
	case uint8:
		a = uint8Arith
	case uint16:
		a = uint16Arith
	case uint32:
		a = uint32Arith
	case uint64:
		a = uint64Arith
	case uintptr:
		a = uintptrArith
	case float32:
		a = float32Arith
	case float64:
		a = float64Arith
	case simd.Float32x4:
		a = float32x4Arith
	}
	return a.(*arith[T])
}

// mathOf returns the transcendental table for T.
func mathOf[T Scalar]() *realMath[T] {
	return arithOf[T]().math
}
