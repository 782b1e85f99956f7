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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuemath/go-tue/tue/simd"
)

func TestTranspose4(t *testing.T) {
	r := Transpose4(
		NewVec4[float32](1, 2, 3, 4),
		NewVec4[float32](5, 6, 7, 8),
		NewVec4[float32](9, 10, 11, 12),
		NewVec4[float32](13, 14, 15, 16),
	)
	assert.Equal(t, simd.New(1, 5, 9, 13), r.X())
	assert.Equal(t, simd.New(4, 8, 12, 16), r.W())
	assert.Equal(t, Vec4[float32]{9, 10, 11, 12}, Lane4(r, 2))
}

func TestPackLaneRoundTrip(t *testing.T) {
	vs2 := [simd.Lanes]Vec2[float32]{{1, 2}, {3, 4}, {5, 6}, {7, 8}}
	vs3 := [simd.Lanes]Vec3[float32]{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {10, 11, 12}}
	vs4 := [simd.Lanes]Vec4[float32]{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}}

	p2, p3, p4 := Pack2(vs2), Pack3(vs3), Pack4(vs4)
	for i := range simd.Lanes {
		assert.Equal(t, vs2[i], Lane2(p2, i), "lane %d", i)
		assert.Equal(t, vs3[i], Lane3(p3, i), "lane %d", i)
		assert.Equal(t, vs4[i], Lane4(p4, i), "lane %d", i)
	}
}

func TestSplatLanes(t *testing.T) {
	v := NewVec3[float32](1, -2, 3)
	s := SplatLanes3(v)
	for i := range simd.Lanes {
		assert.Equal(t, v, Lane3(s, i))
	}
	assert.Equal(t, Vec2[simd.Float32x4]{simd.Broadcast(1), simd.Broadcast(2)}, SplatLanes2(NewVec2[float32](1, 2)))
	assert.Equal(t, simd.Broadcast(4), SplatLanes4(NewVec4[float32](1, 2, 3, 4)).W())

	// Lanewise math on packed vectors matches the float32 result per lane.
	a := SplatLanes3(v)
	b := Pack3([simd.Lanes]Vec3[float32]{{1, 1, 1}, {2, 2, 2}, {0, 1, 0}, {-1, 0, 1}})
	dot := a.Dot(b)
	for i := range simd.Lanes {
		assert.Equal(t, v.Dot(Lane3(b, i)), dot.Get(i), "lane %d", i)
	}
}
