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

//go:build amd64 && !noasm

package simd

import "golang.org/x/sys/cpu"

const compiledBackend = BackendSSE

// RCPPS and RSQRTPS are accurate to 1.5*2^-12; one Newton step reaches 2^-21.
const recipSteps = 1

func hardwareSupported() bool { return cpu.X86.HasSSE2 }

// Assembly kernels in float32x4_amd64.s. Every kernel reads its operands
// through pointers and writes 16 bytes to dst.

//go:noescape
func addSSE(dst, a, b *[4]float32)

//go:noescape
func subSSE(dst, a, b *[4]float32)

//go:noescape
func mulSSE(dst, a, b *[4]float32)

//go:noescape
func divSSE(dst, a, b *[4]float32)

//go:noescape
func minSSE(dst, a, b *[4]float32)

//go:noescape
func maxSSE(dst, a, b *[4]float32)

//go:noescape
func andSSE(dst, a, b *[4]float32)

//go:noescape
func orSSE(dst, a, b *[4]float32)

//go:noescape
func xorSSE(dst, a, b *[4]float32)

//go:noescape
func andNotSSE(dst, a, b *[4]float32)

//go:noescape
func negSSE(dst, a *[4]float32)

//go:noescape
func absSSE(dst, a *[4]float32)

//go:noescape
func sqrtSSE(dst, a *[4]float32)

//go:noescape
func rcpSSE(dst, a *[4]float32)

//go:noescape
func rsqrtSSE(dst, a *[4]float32)

//go:noescape
func cvtToInt32SSE(dst, a *[4]float32)

//go:noescape
func cvtFromInt32SSE(dst, a *[4]float32)

//go:noescape
func cmpEqSSE(dst *[4]uint32, a, b *[4]float32)

//go:noescape
func cmpNeSSE(dst *[4]uint32, a, b *[4]float32)

//go:noescape
func cmpLtSSE(dst *[4]uint32, a, b *[4]float32)

//go:noescape
func cmpLeSSE(dst *[4]uint32, a, b *[4]float32)

//go:noescape
func selectSSE(dst *[4]float32, m *[4]uint32, a, b *[4]float32)

func vAdd(a, b [4]float32) (r [4]float32) {
	addSSE(&r, &a, &b)
	return r
}

func vSub(a, b [4]float32) (r [4]float32) {
	subSSE(&r, &a, &b)
	return r
}

func vMul(a, b [4]float32) (r [4]float32) {
	mulSSE(&r, &a, &b)
	return r
}

func vDiv(a, b [4]float32) (r [4]float32) {
	divSSE(&r, &a, &b)
	return r
}

func vMin(a, b [4]float32) (r [4]float32) {
	minSSE(&r, &a, &b)
	return r
}

func vMax(a, b [4]float32) (r [4]float32) {
	maxSSE(&r, &a, &b)
	return r
}

func vAnd(a, b [4]float32) (r [4]float32) {
	andSSE(&r, &a, &b)
	return r
}

func vOr(a, b [4]float32) (r [4]float32) {
	orSSE(&r, &a, &b)
	return r
}

func vXor(a, b [4]float32) (r [4]float32) {
	xorSSE(&r, &a, &b)
	return r
}

func vAndNot(a, b [4]float32) (r [4]float32) {
	andNotSSE(&r, &a, &b)
	return r
}

func vNeg(a [4]float32) (r [4]float32) {
	negSSE(&r, &a)
	return r
}

func vAbs(a [4]float32) (r [4]float32) {
	absSSE(&r, &a)
	return r
}

func vSqrt(a [4]float32) (r [4]float32) {
	sqrtSSE(&r, &a)
	return r
}

func vToInt32(a [4]float32) (r [4]float32) {
	cvtToInt32SSE(&r, &a)
	return r
}

func vFromInt32(a [4]float32) (r [4]float32) {
	cvtFromInt32SSE(&r, &a)
	return r
}

func recipEstimate(a [4]float32) (r [4]float32) {
	rcpSSE(&r, &a)
	return r
}

func rsqrtEstimate(a [4]float32) (r [4]float32) {
	rsqrtSSE(&r, &a)
	return r
}

func vEq(a, b [4]float32) (r [4]uint32) {
	cmpEqSSE(&r, &a, &b)
	return r
}

func vNe(a, b [4]float32) (r [4]uint32) {
	cmpNeSSE(&r, &a, &b)
	return r
}

func vLt(a, b [4]float32) (r [4]uint32) {
	cmpLtSSE(&r, &a, &b)
	return r
}

func vLe(a, b [4]float32) (r [4]uint32) {
	cmpLeSSE(&r, &a, &b)
	return r
}

func vSelect(m [4]uint32, a, b [4]float32) (r [4]float32) {
	selectSSE(&r, &m, &a, &b)
	return r
}
