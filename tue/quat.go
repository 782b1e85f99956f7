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

// Quat is a quaternion x*i + y*j + z*k + w. Unit quaternions represent
// rotations; the identity rotation is (0, 0, 0, 1).
type Quat[T Real] [4]T

// NewQuat returns the quaternion (x, y, z, w).
func NewQuat[T Real](x, y, z, w T) Quat[T] {
	return Quat[T]{x, y, z, w}
}

// IdentityQuat returns the quaternion of the identity rotation.
func IdentityQuat[T Real]() Quat[T] {
	a := arithOf[T]()
	return Quat[T]{a.zero, a.zero, a.zero, a.one}
}

// QuatFromAxisAngle returns the rotation by angle radians about axis, which
// must have unit length.
func QuatFromAxisAngle[T Real](axis Vec3[T], angle T) Quat[T] {
	var s, c T
	SinCos(Mul(angle, Const[T](0.5)), &s, &c)
	v := axis.MulScalar(s)
	return Quat[T]{v[0], v[1], v[2], c}
}

// X returns the first imaginary component.
func (q Quat[T]) X() T { return q[0] }

// Y returns the second imaginary component.
func (q Quat[T]) Y() T { return q[1] }

// Z returns the third imaginary component.
func (q Quat[T]) Z() T { return q[2] }

// W returns the real component.
func (q Quat[T]) W() T { return q[3] }

// Vector returns the imaginary part (x, y, z).
func (q Quat[T]) Vector() Vec3[T] {
	return Vec3[T]{q[0], q[1], q[2]}
}

// Conjugate returns (-x, -y, -z, w), the inverse rotation of a unit
// quaternion.
func (q Quat[T]) Conjugate() Quat[T] {
	neg := arithOf[T]().neg
	return Quat[T]{neg(q[0]), neg(q[1]), neg(q[2]), q[3]}
}

// Mul returns the Hamilton product q·o: the rotation o followed by q.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	a := arithOf[T]()
	add, sub, mul := a.add, a.sub, a.mul
	x1, y1, z1, w1 := q[0], q[1], q[2], q[3]
	x2, y2, z2, w2 := o[0], o[1], o[2], o[3]
	return Quat[T]{
		sub(add(add(mul(w1, x2), mul(x1, w2)), mul(y1, z2)), mul(z1, y2)),
		add(add(sub(mul(w1, y2), mul(x1, z2)), mul(y1, w2)), mul(z1, x2)),
		add(sub(add(mul(w1, z2), mul(x1, y2)), mul(y1, x2)), mul(z1, w2)),
		sub(sub(sub(mul(w1, w2), mul(x1, x2)), mul(y1, y2)), mul(z1, z2)),
	}
}

// Dot returns the four-dimensional dot product of q and o.
func (q Quat[T]) Dot(o Quat[T]) T {
	return Vec4[T](q).Dot(Vec4[T](o))
}

// Length2 returns the squared norm of q.
func (q Quat[T]) Length2() T {
	return q.Dot(q)
}

// Normalize returns q scaled to unit norm.
func (q Quat[T]) Normalize() Quat[T] {
	return Quat[T](Vec4[T](q).Normalize())
}

// Rotate returns v rotated by the unit quaternion q.
func (q Quat[T]) Rotate(v Vec3[T]) Vec3[T] {
	p := Quat[T]{v[0], v[1], v[2], arithOf[T]().zero}
	return q.Mul(p).Mul(q.Conjugate()).Vector()
}

// AxisAngle converts the rotation vector (x, y, z), whose direction is the
// rotation axis and whose length is the angle in radians, to a unit axis
// followed by the angle. The zero vector maps to (0, 0, 1, 0).
func AxisAngle[T Real](x, y, z T) Vec4[T] {
	a, m := arithOf[T](), mathOf[T]()
	v := Vec3[T]{x, y, z}
	angle := v.Length()
	axis := v.DivScalar(angle)
	return Vec4[T]{
		m.ifZero(angle, a.zero, axis[0]),
		m.ifZero(angle, a.zero, axis[1]),
		m.ifZero(angle, a.one, axis[2]),
		angle,
	}
}
