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

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/tuemath/go-tue/tue/simd"
)

func TestQuatBasics(t *testing.T) {
	q := NewQuat(1.0, 2.0, 3.0, 4.0)
	assert.Equal(t, 1.0, q.X())
	assert.Equal(t, 2.0, q.Y())
	assert.Equal(t, 3.0, q.Z())
	assert.Equal(t, 4.0, q.W())
	assert.Equal(t, Vec3[float64]{1, 2, 3}, q.Vector())
	assert.Equal(t, Quat[float64]{-1, -2, -3, 4}, q.Conjugate())
	assert.Equal(t, 30.0, q.Length2())
	assert.InDelta(t, 1.0, q.Normalize().Length2(), 1e-15)
	assert.Equal(t, Quat[float32]{0, 0, 0, 1}, IdentityQuat[float32]())
}

func TestQuatHamiltonProduct(t *testing.T) {
	i := NewQuat(1.0, 0.0, 0.0, 0.0)
	j := NewQuat(0.0, 1.0, 0.0, 0.0)
	k := NewQuat(0.0, 0.0, 1.0, 0.0)
	minusOne := NewQuat(0.0, 0.0, 0.0, -1.0)

	assert.Equal(t, k, i.Mul(j))
	assert.Equal(t, i, j.Mul(k))
	assert.Equal(t, j, k.Mul(i))
	assert.Equal(t, Quat[float64]{0, 0, -1, 0}, j.Mul(i))
	assert.Equal(t, minusOne, i.Mul(i))
	assert.Equal(t, minusOne, i.Mul(j).Mul(k))

	q := NewQuat(0.5, -1.0, 2.0, 3.0)
	assert.Equal(t, q, IdentityQuat[float64]().Mul(q))
	assert.Equal(t, q, q.Mul(IdentityQuat[float64]()))
	assert.Equal(t, q.Length2(), q.Mul(q.Conjugate()).W())
}

func TestQuatRotate(t *testing.T) {
	q := QuatFromAxisAngle(ZAxis3[float64](), math.Pi/2)
	assert.InDelta(t, 1.0, q.Length2(), 1e-15)
	assert.Empty(t, cmp.Diff(Vec3[float64]{0, 1, 0}, q.Rotate(XAxis3[float64]()), approx))
	assert.Empty(t, cmp.Diff(Vec3[float64]{-1, 0, 0}, q.Rotate(YAxis3[float64]()), approx))
	assert.Empty(t, cmp.Diff(Vec3[float64]{0, 0, 1}, q.Rotate(ZAxis3[float64]()), approx))

	// Two quarter turns are a half turn.
	half := q.Mul(q)
	assert.Empty(t, cmp.Diff(Vec3[float64]{-1, 0, 0}, half.Rotate(XAxis3[float64]()), approx))
}

func TestAxisAngle(t *testing.T) {
	assert.Equal(t, Vec4[float64]{0, 0, 1, 0}, AxisAngle(0.0, 0.0, 0.0))
	assert.Equal(t, Vec4[float64]{0, 1, 0, 3}, AxisAngle(0.0, 3.0, 0.0))
	assert.Equal(t, Vec4[float32]{0.6, 0, -0.8, 5}, AxisAngle[float32](3, 0, -4))

	x := simd.New(0, 2, 0, 0)
	z := simd.New(0, 0, 0, 5)
	r := AxisAngle(x, simd.Zero(), z)
	assert.Equal(t, Vec4[float32]{0, 0, 1, 0}, Lane4(r, 0))
	assert.Equal(t, Vec4[float32]{1, 0, 0, 2}, Lane4(r, 1))
	assert.Equal(t, Vec4[float32]{0, 0, 1, 0}, Lane4(r, 2))
	assert.Equal(t, Vec4[float32]{0, 0, 1, 5}, Lane4(r, 3))
}
