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
	"fmt"
	"math/bits"

	"github.com/tuemath/go-tue/tue/simd"
)

// Kind identifies a component type.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr
	KindFloat32
	KindFloat64
	KindFloat32x4
)

var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindInt:       "int",
	KindInt8:      "int8",
	KindInt16:     "int16",
	KindInt32:     "int32",
	KindInt64:     "int64",
	KindUint:      "uint",
	KindUint8:     "uint8",
	KindUint16:    "uint16",
	KindUint32:    "uint32",
	KindUint64:    "uint64",
	KindUintptr:   "uintptr",
	KindFloat32:   "float32",
	KindFloat64:   "float64",
	KindFloat32x4: "simd.Float32x4",
}

// String returns the Go spelling of the type, e.g. "uint16".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// KindOf returns the Kind of T.
func KindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case int:
		return KindInt
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint:
		return KindUint
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case uintptr:
		return KindUintptr
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case simd.Float32x4:
		return KindFloat32x4
	}
	return KindInvalid
}

// IsFloat reports whether k is float32 or float64.
func (k Kind) IsFloat() bool { return k == KindFloat32 || k == KindFloat64 }

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool { return k >= KindInt && k <= KindInt64 }

// IsUnsigned reports whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool { return k >= KindUint && k <= KindUintptr }

// Bits returns the size of k in bits, 0 for KindInvalid.
func (k Kind) Bits() int {
	switch k {
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	case KindInt, KindUint, KindUintptr:
		return bits.UintSize
	case KindFloat32x4:
		return 128
	}
	return 0
}

// PromotedKind returns the component kind of a binary operation mixing a
// and b, following the usual arithmetic conversions:
//
//   - simd.Float32x4 beats everything, a scalar is broadcast to its lanes;
//   - float64 beats float32, and any float beats any integer;
//   - between integers the wider wins, and at equal width unsigned wins;
//   - otherwise the result is a.
//
// Narrow integers are not promoted to int; Go arithmetic on int8 stays int8.
func PromotedKind(a, b Kind) Kind {
	switch {
	case a == KindInvalid || b == KindInvalid:
		return KindInvalid
	case a == KindFloat32x4 || b == KindFloat32x4:
		return KindFloat32x4
	case a == KindFloat64 || b == KindFloat64:
		return KindFloat64
	case a == KindFloat32 || b == KindFloat32:
		return KindFloat32
	case a.Bits() != b.Bits():
		if a.Bits() > b.Bits() {
			return a
		}
		return b
	case a.IsSigned() && b.IsUnsigned():
		return b
	}
	return a
}

// CanWiden reports whether every value of kind from is exactly
// representable in kind to.
func CanWiden(from, to Kind) bool {
	switch {
	case from == to:
		return from != KindInvalid
	case from == KindInvalid || to == KindInvalid:
		return false
	case from == KindFloat32x4 || to == KindFloat32x4:
		return false
	case from.IsFloat():
		return from == KindFloat32 && to == KindFloat64
	case to == KindFloat32:
		// 24-bit significand
		return from.Bits() <= 16
	case to == KindFloat64:
		// 53-bit significand
		return from.Bits() <= 32
	case from.IsSigned():
		return to.IsSigned() && to.Bits() >= from.Bits()
	case to.IsUnsigned():
		return to.Bits() >= from.Bits()
	}
	// unsigned to signed needs a spare bit
	return to.Bits() > from.Bits()
}

func mustWiden[From, To Number]() {
	from, to := KindOf[From](), KindOf[To]()
	if !CanWiden(from, to) {
		panic(fmt.Sprintf("tue: widening %v to %v loses values; use NarrowTo", from, to))
	}
}
