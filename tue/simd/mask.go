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

package simd

import "fmt"

// Mask32x4 is the per-lane result of a Float32x4 comparison. A set lane is
// all ones (0xFFFFFFFF) and a clear lane is all zeros, which is the layout
// SSE and NEON compares produce, so a mask can feed Select directly.
type Mask32x4 struct {
	m [4]uint32
}

// MaskFromBools builds a mask from four booleans.
func MaskFromBools(a, b, c, d bool) Mask32x4 {
	return Mask32x4{[4]uint32{laneBits(a), laneBits(b), laneBits(c), laneBits(d)}}
}

func laneBits(b bool) uint32 {
	if b {
		return ^uint32(0)
	}
	return 0
}

// Get reports whether lane i is set.
func (m Mask32x4) Get(i int) bool {
	return m.m[i] != 0
}

// And returns the lanes set in both masks.
func (m Mask32x4) And(o Mask32x4) Mask32x4 {
	return Mask32x4{[4]uint32{m.m[0] & o.m[0], m.m[1] & o.m[1], m.m[2] & o.m[2], m.m[3] & o.m[3]}}
}

// Or returns the lanes set in either mask.
func (m Mask32x4) Or(o Mask32x4) Mask32x4 {
	return Mask32x4{[4]uint32{m.m[0] | o.m[0], m.m[1] | o.m[1], m.m[2] | o.m[2], m.m[3] | o.m[3]}}
}

// Xor returns the lanes set in exactly one of the masks.
func (m Mask32x4) Xor(o Mask32x4) Mask32x4 {
	return Mask32x4{[4]uint32{m.m[0] ^ o.m[0], m.m[1] ^ o.m[1], m.m[2] ^ o.m[2], m.m[3] ^ o.m[3]}}
}

// Not inverts every lane.
func (m Mask32x4) Not() Mask32x4 {
	return Mask32x4{[4]uint32{^m.m[0], ^m.m[1], ^m.m[2], ^m.m[3]}}
}

// AllTrue reports whether every lane is set.
func (m Mask32x4) AllTrue() bool {
	return m.m[0]&m.m[1]&m.m[2]&m.m[3] != 0
}

// AnyTrue reports whether at least one lane is set.
func (m Mask32x4) AnyTrue() bool {
	return m.m[0]|m.m[1]|m.m[2]|m.m[3] != 0
}

// Bits packs the mask into the low four bits of an int, lane 0 in bit 0.
func (m Mask32x4) Bits() int {
	var bits int
	for i, v := range m.m {
		if v != 0 {
			bits |= 1 << i
		}
	}
	return bits
}

// String formats the mask as four 0/1 digits, lane 0 first.
func (m Mask32x4) String() string {
	return fmt.Sprintf("[%d %d %d %d]", m.m[0]&1, m.m[1]&1, m.m[2]&1, m.m[3]&1)
}
