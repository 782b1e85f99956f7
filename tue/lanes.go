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

import "github.com/tuemath/go-tue/tue/simd"

// A vector of simd.Float32x4 holds four float32 vectors side by side, one
// per lane. The helpers below move float32 vectors in and out of lanes.

// Pack2 places vs[i] in lane i of the result.
func Pack2(vs [simd.Lanes]Vec2[float32]) Vec2[simd.Float32x4] {
	var r Vec2[simd.Float32x4]
	for c := range r {
		r[c] = simd.New(vs[0][c], vs[1][c], vs[2][c], vs[3][c])
	}
	return r
}

// Pack3 places vs[i] in lane i of the result.
func Pack3(vs [simd.Lanes]Vec3[float32]) Vec3[simd.Float32x4] {
	var r Vec3[simd.Float32x4]
	for c := range r {
		r[c] = simd.New(vs[0][c], vs[1][c], vs[2][c], vs[3][c])
	}
	return r
}

// Pack4 places vs[i] in lane i of the result.
func Pack4(vs [simd.Lanes]Vec4[float32]) Vec4[simd.Float32x4] {
	var r Vec4[simd.Float32x4]
	for c := range r {
		r[c] = simd.New(vs[0][c], vs[1][c], vs[2][c], vs[3][c])
	}
	return r
}

// Transpose4 treats a, b, c and d as the rows of a 4x4 matrix and returns
// its columns: component i of the result holds (a[i], b[i], c[i], d[i]).
func Transpose4(a, b, c, d Vec4[float32]) Vec4[simd.Float32x4] {
	return Pack4([simd.Lanes]Vec4[float32]{a, b, c, d})
}

// Lane2 returns the vector held in lane i of v.
func Lane2(v Vec2[simd.Float32x4], i int) Vec2[float32] {
	return Vec2[float32]{v[0].Get(i), v[1].Get(i)}
}

// Lane3 returns the vector held in lane i of v.
func Lane3(v Vec3[simd.Float32x4], i int) Vec3[float32] {
	return Vec3[float32]{v[0].Get(i), v[1].Get(i), v[2].Get(i)}
}

// Lane4 returns the vector held in lane i of v.
func Lane4(v Vec4[simd.Float32x4], i int) Vec4[float32] {
	return Vec4[float32]{v[0].Get(i), v[1].Get(i), v[2].Get(i), v[3].Get(i)}
}

// SplatLanes2 copies v into every lane.
func SplatLanes2(v Vec2[float32]) Vec2[simd.Float32x4] {
	return Vec2[simd.Float32x4]{simd.Broadcast(v[0]), simd.Broadcast(v[1])}
}

// SplatLanes3 copies v into every lane.
func SplatLanes3(v Vec3[float32]) Vec3[simd.Float32x4] {
	return Vec3[simd.Float32x4]{simd.Broadcast(v[0]), simd.Broadcast(v[1]), simd.Broadcast(v[2])}
}

// SplatLanes4 copies v into every lane.
func SplatLanes4(v Vec4[float32]) Vec4[simd.Float32x4] {
	return Vec4[simd.Float32x4]{simd.Broadcast(v[0]), simd.Broadcast(v[1]), simd.Broadcast(v[2]), simd.Broadcast(v[3])}
}
