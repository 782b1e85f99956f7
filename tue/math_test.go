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
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/tuemath/go-tue/tue/simd"
)

func TestScalarMathFloat32(t *testing.T) {
	x := float32(0.75)
	assert.Equal(t, math32.Sin(x), Sin(x))
	assert.Equal(t, math32.Cos(x), Cos(x))
	assert.Equal(t, math32.Exp(x), Exp(x))
	assert.Equal(t, math32.Log(x), Log(x))
	assert.Equal(t, math32.Sqrt(x), Sqrt(x))
	assert.Equal(t, math32.Pow(x, 3), Pow(x, 3))
	assert.Equal(t, 1/x, Recip(x))
	assert.Equal(t, 1/math32.Sqrt(x), Rsqrt(x))

	var s, c float32
	SinCos(x, &s, &c)
	ws, wc := math32.Sincos(x)
	assert.Equal(t, ws, s)
	assert.Equal(t, wc, c)
}

func TestScalarMathFloat64(t *testing.T) {
	x := 2.5
	assert.Equal(t, math.Sin(x), Sin(x))
	assert.Equal(t, math.Exp(x), Exp(x))
	assert.Equal(t, math.Pow(x, -1.5), Pow(x, -1.5))
	assert.Equal(t, 0.4, Recip(x))

	var s, c float64
	SinCos(x, &s, &c)
	assert.Equal(t, math.Sin(x), s)
	assert.Equal(t, math.Cos(x), c)
}

func TestScalarMathFloat32x4(t *testing.T) {
	x := simd.New(0.5, 1, 2, 4)
	assert.Equal(t, x.Sqrt(), Sqrt(x))
	assert.Equal(t, x.Exp(), Exp(x))
	assert.Equal(t, x.Recip(), Recip(x))

	var s, c simd.Float32x4
	SinCos(x, &s, &c)
	ws, wc := x.SinCos()
	assert.Equal(t, ws, s)
	assert.Equal(t, wc, c)

	p := Pow(simd.New(-2, 2, 0, 9), simd.New(2, 2, 0, 0.5))
	assert.True(t, math.IsNaN(float64(p.Get(0))), "negative base")
	assert.InDelta(t, 4, p.Get(1), 1e-4)
	assert.Equal(t, float32(1), p.Get(2), "x**0")
	assert.InDelta(t, 3, p.Get(3), 1e-4)
}

func TestMinMaxAbs(t *testing.T) {
	nan := math.NaN()
	assert.Equal(t, 1.0, Min(nan, 1.0))
	assert.True(t, math.IsNaN(Min(1.0, nan)))
	assert.Equal(t, 1.0, Max(nan, 1.0))
	assert.True(t, math.Signbit(Min(0.0, math.Copysign(0, -1))), "equal operands return b")

	assert.Equal(t, -3, Min(-3, 4))
	assert.Equal(t, uint8(200), Max[uint8](200, 7))

	assert.Equal(t, int8(math.MinInt8), Abs[int8](math.MinInt8))
	assert.Equal(t, int64(5), Abs[int64](-5))
	assert.Equal(t, uint(5), Abs[uint](5))
	assert.False(t, math.Signbit(Abs(math.Copysign(0, -1))))

	assert.Equal(t, simd.New(1, 2, 3, 4), Abs(simd.New(-1, 2, -3, 4)))
	assert.Equal(t, simd.New(1, 2, 3, 3), Min(simd.New(1, 2, 3, 4), simd.Broadcast(3)))
}

func TestScalarArithmetic(t *testing.T) {
	assert.Equal(t, 9, Length2(-3))
	assert.Equal(t, float32(0.25), Length2[float32](0.5))
	assert.Equal(t, 7, Add(3, 4))
	assert.Equal(t, -1, Sub(3, 4))
	assert.Equal(t, 12, Mul(3, 4))
	assert.Equal(t, 2, Div(9, 4))
	assert.Equal(t, -4, Neg(4))

	assert.Equal(t, uint8(255), Const[uint8](255))
	assert.Equal(t, 0.5, Const[float64](0.5))
	assert.Equal(t, simd.Broadcast(2), Const[simd.Float32x4](2))
	assert.Equal(t, simd.New(4, 4, 6, 8), Add(simd.New(1, 2, 3, 4), simd.New(3, 2, 3, 4)))
}

func TestScalarMathIntegers(t *testing.T) {
	assert.Equal(t, 3, Sqrt(10))
	assert.Equal(t, math.Sqrt(10), Sqrt(Promote(10)))
	assert.Equal(t, uint16(1024), Pow[uint16](2, 10))
	assert.Equal(t, int8(0), Sin[int8](3))
	assert.Equal(t, int64(2), Log[int64](9))
	assert.Equal(t, 0, Recip(3))
	assert.Equal(t, 1, Rsqrt(1))

	var s, c int32
	SinCos[int32](0, &s, &c)
	assert.Equal(t, int32(0), s)
	assert.Equal(t, int32(1), c)
}

func TestOpsTablesComplete(t *testing.T) {
	assert.NotNil(t, mathOf[int16]())
	assert.NotNil(t, mathOf[uintptr]())
	assert.NotNil(t, mathOf[float32]())
	assert.NotNil(t, mathOf[float64]())
	assert.NotNil(t, mathOf[simd.Float32x4]())
	assert.NotNil(t, arithOf[uint64]().math.ifZero)
}
