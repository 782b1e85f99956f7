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

//go:build arm64 && !noasm

package simd

import "golang.org/x/sys/cpu"

const compiledBackend = BackendNEON

// FRECPE and FRSQRTE give about 8 bits; two Newton steps are needed.
const recipSteps = 2

func hardwareSupported() bool { return cpu.ARM64.HasASIMD }

// Assembly kernels in float32x4_arm64.s. Every kernel reads its operands
// through pointers and writes 16 bytes to dst.

//go:noescape
func addNEON(dst, a, b *[4]float32)

//go:noescape
func subNEON(dst, a, b *[4]float32)

//go:noescape
func mulNEON(dst, a, b *[4]float32)

//go:noescape
func divNEON(dst, a, b *[4]float32)

//go:noescape
func minNEON(dst, a, b *[4]float32)

//go:noescape
func maxNEON(dst, a, b *[4]float32)

//go:noescape
func andNEON(dst, a, b *[4]float32)

//go:noescape
func orNEON(dst, a, b *[4]float32)

//go:noescape
func xorNEON(dst, a, b *[4]float32)

//go:noescape
func andNotNEON(dst, a, b *[4]float32)

//go:noescape
func negNEON(dst, a *[4]float32)

//go:noescape
func absNEON(dst, a *[4]float32)

//go:noescape
func sqrtNEON(dst, a *[4]float32)

//go:noescape
func recpeNEON(dst, a *[4]float32)

//go:noescape
func rsqrteNEON(dst, a *[4]float32)

//go:noescape
func cvtToInt32NEON(dst, a *[4]float32)

//go:noescape
func cvtFromInt32NEON(dst, a *[4]float32)

//go:noescape
func cmpEqNEON(dst *[4]uint32, a, b *[4]float32)

//go:noescape
func cmpNeNEON(dst *[4]uint32, a, b *[4]float32)

//go:noescape
func cmpLtNEON(dst *[4]uint32, a, b *[4]float32)

//go:noescape
func cmpLeNEON(dst *[4]uint32, a, b *[4]float32)

//go:noescape
func selectNEON(dst *[4]float32, m *[4]uint32, a, b *[4]float32)

func vAdd(a, b [4]float32) (r [4]float32) {
	addNEON(&r, &a, &b)
	return r
}

func vSub(a, b [4]float32) (r [4]float32) {
	subNEON(&r, &a, &b)
	return r
}

func vMul(a, b [4]float32) (r [4]float32) {
	mulNEON(&r, &a, &b)
	return r
}

func vDiv(a, b [4]float32) (r [4]float32) {
	divNEON(&r, &a, &b)
	return r
}

func vMin(a, b [4]float32) (r [4]float32) {
	minNEON(&r, &a, &b)
	return r
}

func vMax(a, b [4]float32) (r [4]float32) {
	maxNEON(&r, &a, &b)
	return r
}

func vAnd(a, b [4]float32) (r [4]float32) {
	andNEON(&r, &a, &b)
	return r
}

func vOr(a, b [4]float32) (r [4]float32) {
	orNEON(&r, &a, &b)
	return r
}

func vXor(a, b [4]float32) (r [4]float32) {
	xorNEON(&r, &a, &b)
	return r
}

func vAndNot(a, b [4]float32) (r [4]float32) {
	andNotNEON(&r, &a, &b)
	return r
}

func vNeg(a [4]float32) (r [4]float32) {
	negNEON(&r, &a)
	return r
}

func vAbs(a [4]float32) (r [4]float32) {
	absNEON(&r, &a)
	return r
}

func vSqrt(a [4]float32) (r [4]float32) {
	sqrtNEON(&r, &a)
	return r
}

func vToInt32(a [4]float32) (r [4]float32) {
	cvtToInt32NEON(&r, &a)
	return r
}

func vFromInt32(a [4]float32) (r [4]float32) {
	cvtFromInt32NEON(&r, &a)
	return r
}

func recipEstimate(a [4]float32) (r [4]float32) {
	recpeNEON(&r, &a)
	return r
}

func rsqrtEstimate(a [4]float32) (r [4]float32) {
	rsqrteNEON(&r, &a)
	return r
}

func vEq(a, b [4]float32) (r [4]uint32) {
	cmpEqNEON(&r, &a, &b)
	return r
}

func vNe(a, b [4]float32) (r [4]uint32) {
	cmpNeNEON(&r, &a, &b)
	return r
}

func vLt(a, b [4]float32) (r [4]uint32) {
	cmpLtNEON(&r, &a, &b)
	return r
}

func vLe(a, b [4]float32) (r [4]uint32) {
	cmpLeNEON(&r, &a, &b)
	return r
}

func vSelect(m [4]uint32, a, b [4]float32) (r [4]float32) {
	selectNEON(&r, &m, &a, &b)
	return r
}
