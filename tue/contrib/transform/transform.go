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

// Package transform builds the matrices of common geometric transforms.
//
// Points are row vectors multiplied on the left, p' = p·M, with a trailing
// homogeneous 1: a 2D point (x, y) is transformed as m.VecMul(NewVec3(x, y, 1)).
// Composing "first A, then B" is therefore A's resize times B.
//
// Every function is generic over the component type, so with
// simd.Float32x4 components one call builds four independent transforms.
package transform

import "github.com/tuemath/go-tue/tue"

// Translation2 returns the matrix that moves 2D points by (x, y).
func Translation2[T tue.Scalar](x, y T) tue.Mat2x3[T] {
	var zero T
	one := tue.Const[T](1)
	return tue.Mat2x3[T]{
		{one, zero, x},
		{zero, one, y},
	}
}

// Translation2V returns Translation2(xy.X(), xy.Y()).
func Translation2V[T tue.Scalar](xy tue.Vec2[T]) tue.Mat2x3[T] {
	return Translation2(xy[0], xy[1])
}

// Translation3 returns the matrix that moves 3D points by (x, y, z).
func Translation3[T tue.Scalar](x, y, z T) tue.Mat3x4[T] {
	var zero T
	one := tue.Const[T](1)
	return tue.Mat3x4[T]{
		{one, zero, zero, x},
		{zero, one, zero, y},
		{zero, zero, one, z},
	}
}

// Translation3V returns Translation3(xyz.X(), xyz.Y(), xyz.Z()).
func Translation3V[T tue.Scalar](xyz tue.Vec3[T]) tue.Mat3x4[T] {
	return Translation3(xyz[0], xyz[1], xyz[2])
}

// Scale2 returns the matrix that scales 2D points by x and y.
func Scale2[T tue.Scalar](x, y T) tue.Mat2x2[T] {
	var zero T
	return tue.Mat2x2[T]{
		{x, zero},
		{zero, y},
	}
}

// Scale2V returns Scale2(xy.X(), xy.Y()).
func Scale2V[T tue.Scalar](xy tue.Vec2[T]) tue.Mat2x2[T] {
	return Scale2(xy[0], xy[1])
}

// Scale3 returns the matrix that scales 3D points by x, y and z.
func Scale3[T tue.Scalar](x, y, z T) tue.Mat3x3[T] {
	var zero T
	return tue.Mat3x3[T]{
		{x, zero, zero},
		{zero, y, zero},
		{zero, zero, z},
	}
}

// Scale3V returns Scale3(xyz.X(), xyz.Y(), xyz.Z()).
func Scale3V[T tue.Scalar](xyz tue.Vec3[T]) tue.Mat3x3[T] {
	return Scale3(xyz[0], xyz[1], xyz[2])
}

// Rotation2 returns the matrix that rotates 2D points counterclockwise by
// angle radians.
func Rotation2[T tue.Real](angle T) tue.Mat2x2[T] {
	var s, c T
	tue.SinCos(angle, &s, &c)
	return tue.Mat2x2[T]{
		{c, tue.Neg(s)},
		{s, c},
	}
}

// RotationAxis returns the matrix that rotates 3D points by angle radians
// about axis, which must have unit length.
func RotationAxis[T tue.Real](axis tue.Vec3[T], angle T) tue.Mat3x3[T] {
	var s, c T
	tue.SinCos(angle, &s, &c)
	add, sub, mul := tue.Add[T], tue.Sub[T], tue.Mul[T]
	x, y, z := axis[0], axis[1], axis[2]
	omc := sub(tue.Const[T](1), c)

	xs, ys, zs := mul(x, s), mul(y, s), mul(z, s)
	xxomc := mul(mul(x, x), omc)
	xyomc := mul(mul(x, y), omc)
	xzomc := mul(mul(x, z), omc)
	yyomc := mul(mul(y, y), omc)
	yzomc := mul(mul(y, z), omc)
	zzomc := mul(mul(z, z), omc)

	return tue.Mat3x3[T]{
		{add(xxomc, c), sub(xyomc, zs), add(xzomc, ys)},
		{add(xyomc, zs), add(yyomc, c), sub(yzomc, xs)},
		{sub(xzomc, ys), add(yzomc, xs), add(zzomc, c)},
	}
}

// RotationAxisAngle returns RotationAxis(v.XYZ(), v.W()).
func RotationAxisAngle[T tue.Real](v tue.Vec4[T]) tue.Mat3x3[T] {
	return RotationAxis(v.XYZ(), v[3])
}

// RotationVector returns the rotation about the direction of v by |v|
// radians. The zero vector gives the identity.
func RotationVector[T tue.Real](v tue.Vec3[T]) tue.Mat3x3[T] {
	return RotationAxisAngle(tue.AxisAngle(v[0], v[1], v[2]))
}

// RotationQuat returns the rotation matrix of the unit quaternion q.
func RotationQuat[T tue.Real](q tue.Quat[T]) tue.Mat3x3[T] {
	add, sub, mul := tue.Add[T], tue.Sub[T], tue.Mul[T]
	one, two := tue.Const[T](1), tue.Const[T](2)
	x, y, z, w := q[0], q[1], q[2], q[3]
	twice := func(a, b T) T { return mul(mul(a, b), two) }

	xx2, xy2, xz2, xw2 := twice(x, x), twice(x, y), twice(x, z), twice(x, w)
	yy2, yz2, yw2 := twice(y, y), twice(y, z), twice(y, w)
	zz2, zw2 := twice(z, z), twice(z, w)

	return tue.Mat3x3[T]{
		{sub(sub(one, yy2), zz2), sub(xy2, zw2), add(xz2, yw2)},
		{add(xy2, zw2), sub(sub(one, xx2), zz2), sub(yz2, xw2)},
		{sub(xz2, yw2), add(yz2, xw2), sub(sub(one, xx2), yy2)},
	}
}

func pose3[T tue.Real](rotation tue.Mat3x3[T], translation tue.Vec3[T]) tue.Mat3x4[T] {
	return tue.Mat4x4FromMat3x3(rotation).MulMat3x4(Translation3V(translation))
}

// Pose2 returns the matrix that rotates 2D points by rotation radians and
// then moves them by translation.
func Pose2[T tue.Real](translation tue.Vec2[T], rotation T) tue.Mat2x3[T] {
	return tue.Mat3x3FromMat2x2(Rotation2(rotation)).MulMat2x3(Translation2V(translation))
}

// Pose3Axis returns the matrix that rotates 3D points by angle radians about
// axis and then moves them by translation.
func Pose3Axis[T tue.Real](translation, axis tue.Vec3[T], angle T) tue.Mat3x4[T] {
	return pose3(RotationAxis(axis, angle), translation)
}

// Pose3AxisAngle is Pose3Axis with the axis and angle packed in rotation.
func Pose3AxisAngle[T tue.Real](translation tue.Vec3[T], rotation tue.Vec4[T]) tue.Mat3x4[T] {
	return pose3(RotationAxisAngle(rotation), translation)
}

// Pose3Vector is Pose3Axis with the rotation given as a rotation vector.
func Pose3Vector[T tue.Real](translation, rotation tue.Vec3[T]) tue.Mat3x4[T] {
	return pose3(RotationVector(rotation), translation)
}

// Pose3Quat is Pose3Axis with the rotation given as a unit quaternion.
func Pose3Quat[T tue.Real](translation tue.Vec3[T], rotation tue.Quat[T]) tue.Mat3x4[T] {
	return pose3(RotationQuat(rotation), translation)
}

// View2 returns the inverse of Pose2(translation, rotation): it maps world
// points into the frame of a camera with that pose.
func View2[T tue.Real](translation tue.Vec2[T], rotation T) tue.Mat2x3[T] {
	return Translation2V(translation.Neg()).MulMat2x2(Rotation2(tue.Neg(rotation)))
}

// View3Axis returns the inverse of Pose3Axis(translation, axis, angle).
func View3Axis[T tue.Real](translation, axis tue.Vec3[T], angle T) tue.Mat3x4[T] {
	return Translation3V(translation.Neg()).MulMat3x3(RotationAxis(axis, tue.Neg(angle)))
}

// View3AxisAngle returns the inverse of Pose3AxisAngle(translation, rotation).
func View3AxisAngle[T tue.Real](translation tue.Vec3[T], rotation tue.Vec4[T]) tue.Mat3x4[T] {
	return View3Axis(translation, rotation.XYZ(), rotation[3])
}

// View3Vector returns the inverse of Pose3Vector(translation, rotation).
func View3Vector[T tue.Real](translation, rotation tue.Vec3[T]) tue.Mat3x4[T] {
	return Translation3V(translation.Neg()).MulMat3x3(RotationVector(rotation.Neg()))
}

// View3Quat returns the inverse of Pose3Quat(translation, rotation).
func View3Quat[T tue.Real](translation tue.Vec3[T], rotation tue.Quat[T]) tue.Mat3x4[T] {
	return Translation3V(translation.Neg()).MulMat3x3(RotationQuat(rotation.Conjugate()))
}

// Perspective returns an OpenGL-style perspective projection with vertical
// field of view fovy radians. After the perspective divide, points at
// z = -near land at depth -1 and points at z = -far at depth 1.
func Perspective[T tue.Real](fovy, aspect, near, far T) tue.Mat4x4[T] {
	var s, c, zero T
	tue.SinCos(tue.Mul(fovy, tue.Const[T](0.5)), &s, &c)
	f := tue.Div(c, s)
	nmf := tue.Sub(near, far)
	return tue.Mat4x4[T]{
		{tue.Div(f, aspect), zero, zero, zero},
		{zero, f, zero, zero},
		{zero, zero, tue.Div(tue.Add(near, far), nmf), tue.Div(tue.Mul(tue.Const[T](2), tue.Mul(near, far)), nmf)},
		{zero, zero, tue.Const[T](-1), zero},
	}
}

// Ortho returns an orthographic projection of a width by height box
// centered on the view axis. Points at z = -near land at depth 1 and points
// at z = -far at depth -1.
func Ortho[T tue.Real](width, height, near, far T) tue.Mat4x4[T] {
	var zero T
	two := tue.Const[T](2)
	fmn := tue.Sub(far, near)
	return tue.Mat4x4[T]{
		{tue.Div(two, width), zero, zero, zero},
		{zero, tue.Div(two, height), zero, zero},
		{zero, zero, tue.Div(two, fmn), tue.Div(tue.Add(far, near), fmn)},
		{zero, zero, zero, tue.Const[T](1)},
	}
}
