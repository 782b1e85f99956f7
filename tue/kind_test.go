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
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuemath/go-tue/tue/simd"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindInt, KindOf[int]())
	assert.Equal(t, KindInt8, KindOf[int8]())
	assert.Equal(t, KindUint16, KindOf[uint16]())
	assert.Equal(t, KindUintptr, KindOf[uintptr]())
	assert.Equal(t, KindFloat32, KindOf[float32]())
	assert.Equal(t, KindFloat64, KindOf[float64]())
	assert.Equal(t, KindFloat32x4, KindOf[simd.Float32x4]())

	assert.Equal(t, "uint32", KindUint32.String())
	assert.Equal(t, "simd.Float32x4", KindFloat32x4.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())

	assert.Equal(t, bits.UintSize, KindInt.Bits())
	assert.Equal(t, 16, KindInt16.Bits())
	assert.Equal(t, 128, KindFloat32x4.Bits())
	assert.Equal(t, 0, KindInvalid.Bits())

	assert.True(t, KindFloat64.IsFloat())
	assert.False(t, KindFloat32x4.IsFloat())
	assert.True(t, KindInt64.IsSigned())
	assert.False(t, KindUint8.IsSigned())
	assert.True(t, KindUintptr.IsUnsigned())
}

func TestPromotedKind(t *testing.T) {
	tests := []struct {
		a, b, want Kind
	}{
		{KindInt8, KindInt8, KindInt8},
		{KindInt8, KindInt16, KindInt16},
		{KindUint32, KindInt16, KindUint32},
		{KindInt32, KindUint32, KindUint32},
		{KindUint32, KindInt32, KindUint32},
		{KindInt64, KindUint8, KindInt64},
		{KindInt64, KindFloat32, KindFloat32},
		{KindFloat32, KindFloat64, KindFloat64},
		{KindUint64, KindFloat64, KindFloat64},
		{KindFloat64, KindFloat32x4, KindFloat32x4},
		{KindInt, KindFloat32x4, KindFloat32x4},
		{KindInvalid, KindInt, KindInvalid},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PromotedKind(tt.a, tt.b), "PromotedKind(%v, %v)", tt.a, tt.b)
		assert.Equal(t, tt.want, PromotedKind(tt.b, tt.a), "PromotedKind(%v, %v)", tt.b, tt.a)
	}
}

func TestCanWiden(t *testing.T) {
	tests := []struct {
		from, to Kind
		want     bool
	}{
		{KindInt8, KindInt8, true},
		{KindInt8, KindInt64, true},
		{KindInt16, KindInt8, false},
		{KindUint8, KindUint16, true},
		{KindUint8, KindInt16, true},
		{KindUint16, KindInt16, false},
		{KindInt8, KindUint64, false},
		{KindInt16, KindFloat32, true},
		{KindInt32, KindFloat32, false},
		{KindUint32, KindFloat64, true},
		{KindInt64, KindFloat64, false},
		{KindFloat32, KindFloat64, true},
		{KindFloat64, KindFloat32, false},
		{KindFloat32, KindInt64, false},
		{KindFloat32, KindFloat32x4, false},
		{KindInvalid, KindInvalid, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanWiden(tt.from, tt.to), "CanWiden(%v, %v)", tt.from, tt.to)
	}
}
