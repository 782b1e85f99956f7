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

// Package tue provides small fixed-size vectors, matrices and quaternions for
// graphics and geometry code.
//
// Every type is generic over its component type. Components may be any Go
// integer or float type, or simd.Float32x4, in which case one vector holds
// four independent vectors evaluated in lock step:
//
//	import "github.com/tuemath/go-tue/tue"
//
//	a := tue.NewVec2[float32](1, 2)
//	b := a.AddScalar(3)       // (4, 5)
//	n := b.Normalize()        // unit length
//	d := tue.NewVec3(1.0, 2.0, 2.0).Length() // 3
//
// Go has no operator overloading, so operators are methods. Each binary
// operator comes in three forms: v.Add(o) (vector op vector), v.AddScalar(s)
// (vector op scalar) and v.ScalarAdd(s) (scalar op vector), plus the
// compound-assignment forms AddAssign and AddScalarAssign on pointers.
//
// Component types never mix implicitly. Convert with the WidenN (lossless)
// and NarrowToN (native conversion) functions first.
package tue

import "github.com/tuemath/go-tue/tue/simd"

// Floats is a constraint for floating-point types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	int | int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Number is a constraint for the primitive numeric types, on which Go's
// arithmetic operators and conversions apply directly.
type Number interface {
	Floats | Integers
}

// Real is a constraint for the types with transcendental math.
type Real interface {
	Floats | simd.Float32x4
}

// Scalar is a constraint for every valid vector component type.
//
// The type terms are exact rather than ~T so the dispatch in ops.go can
// resolve every member with a type switch.
type Scalar interface {
	Number | simd.Float32x4
}
