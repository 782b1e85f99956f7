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

import (
	"math"

	"github.com/chewxy/math32"
)

// Reference implementations, one lane at a time. They are compiled into every
// build: the fallback backend binds to them and the parity tests compare the
// hardware backends against them.

func lanewise(a [4]float32, f func(float32) float32) [4]float32 {
	return [4]float32{f(a[0]), f(a[1]), f(a[2]), f(a[3])}
}

func lanewise2(a, b [4]float32, f func(x, y float32) float32) [4]float32 {
	return [4]float32{f(a[0], b[0]), f(a[1], b[1]), f(a[2], b[2]), f(a[3], b[3])}
}

func bitwise(a, b [4]float32, f func(x, y uint32) uint32) [4]float32 {
	var r [4]float32
	for i := range r {
		r[i] = math.Float32frombits(f(math.Float32bits(a[i]), math.Float32bits(b[i])))
	}
	return r
}

func compare(a, b [4]float32, f func(x, y float32) bool) [4]uint32 {
	return [4]uint32{laneBits(f(a[0], b[0])), laneBits(f(a[1], b[1])), laneBits(f(a[2], b[2])), laneBits(f(a[3], b[3]))}
}

func addGeneric(a, b [4]float32) [4]float32 {
	return lanewise2(a, b, func(x, y float32) float32 { return x + y })
}

func subGeneric(a, b [4]float32) [4]float32 {
	return lanewise2(a, b, func(x, y float32) float32 { return x - y })
}

func mulGeneric(a, b [4]float32) [4]float32 {
	return lanewise2(a, b, func(x, y float32) float32 { return x * y })
}

func divGeneric(a, b [4]float32) [4]float32 {
	return lanewise2(a, b, func(x, y float32) float32 { return x / y })
}

func minGeneric(a, b [4]float32) [4]float32 {
	return lanewise2(a, b, func(x, y float32) float32 {
		if x < y {
			return x
		}
		return y
	})
}

func maxGeneric(a, b [4]float32) [4]float32 {
	return lanewise2(a, b, func(x, y float32) float32 {
		if x > y {
			return x
		}
		return y
	})
}

func negGeneric(a [4]float32) [4]float32 {
	return lanewise(a, func(x float32) float32 {
		return math.Float32frombits(math.Float32bits(x) ^ 0x80000000)
	})
}

func absGeneric(a [4]float32) [4]float32 {
	return lanewise(a, math32.Abs)
}

func sqrtGeneric(a [4]float32) [4]float32 {
	return lanewise(a, math32.Sqrt)
}

func recipGeneric(a [4]float32) [4]float32 {
	return lanewise(a, func(x float32) float32 { return 1 / x })
}

func rsqrtGeneric(a [4]float32) [4]float32 {
	return lanewise(a, func(x float32) float32 { return 1 / math32.Sqrt(x) })
}

func andGeneric(a, b [4]float32) [4]float32 {
	return bitwise(a, b, func(x, y uint32) uint32 { return x & y })
}

func orGeneric(a, b [4]float32) [4]float32 {
	return bitwise(a, b, func(x, y uint32) uint32 { return x | y })
}

func xorGeneric(a, b [4]float32) [4]float32 {
	return bitwise(a, b, func(x, y uint32) uint32 { return x ^ y })
}

func andNotGeneric(a, b [4]float32) [4]float32 {
	return bitwise(a, b, func(x, y uint32) uint32 { return x &^ y })
}

func toInt32Generic(a [4]float32) [4]float32 {
	return lanewise(a, func(x float32) float32 {
		return math.Float32frombits(uint32(int32(x)))
	})
}

func fromInt32Generic(a [4]float32) [4]float32 {
	return lanewise(a, func(x float32) float32 {
		return float32(int32(math.Float32bits(x)))
	})
}

func eqGeneric(a, b [4]float32) [4]uint32 {
	return compare(a, b, func(x, y float32) bool { return x == y })
}

func neGeneric(a, b [4]float32) [4]uint32 {
	return compare(a, b, func(x, y float32) bool { return x != y })
}

func ltGeneric(a, b [4]float32) [4]uint32 {
	return compare(a, b, func(x, y float32) bool { return x < y })
}

func leGeneric(a, b [4]float32) [4]uint32 {
	return compare(a, b, func(x, y float32) bool { return x <= y })
}

func selectGeneric(m [4]uint32, a, b [4]float32) [4]float32 {
	var r [4]float32
	for i := range r {
		ab, bb := math.Float32bits(a[i]), math.Float32bits(b[i])
		r[i] = math.Float32frombits(ab&m[i] | bb&^m[i])
	}
	return r
}

// The transcendental references evaluate in float64 and round once. The
// math32 versions reduce their argument in float32 and drift by several ulps
// for large inputs, which is more than the tolerance being tested.

func sinCosGeneric(a [4]float32) (sin, cos [4]float32) {
	for i := range a {
		s, c := math.Sincos(float64(a[i]))
		sin[i], cos[i] = float32(s), float32(c)
	}
	return sin, cos
}

func expGeneric(a [4]float32) [4]float32 {
	return lanewise(a, func(x float32) float32 { return float32(math.Exp(float64(x))) })
}

func logGeneric(a [4]float32) [4]float32 {
	return lanewise(a, func(x float32) float32 { return float32(math.Log(float64(x))) })
}

func powGeneric(a, b [4]float32) [4]float32 {
	return lanewise2(a, b, func(x, y float32) float32 {
		if y == 0 {
			return 1
		}
		return float32(math.Exp(float64(y) * math.Log(float64(x))))
	})
}
