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

// Backend identifies the instruction set a Float32x4 is compiled against.
type Backend int

const (
	// BackendFallback is the portable pure-Go implementation, one lane at a time.
	BackendFallback Backend = iota

	// BackendSSE uses 128-bit SSE instructions (x86-64 baseline).
	BackendSSE

	// BackendNEON uses 128-bit ARM Advanced SIMD instructions.
	BackendNEON
)

// String returns a human-readable name for the backend.
func (b Backend) String() string {
	switch b {
	case BackendFallback:
		return "fallback"
	case BackendSSE:
		return "sse"
	case BackendNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// CurrentBackend returns the backend selected at build time.
//
// Selection follows GOARCH: amd64 builds use SSE, arm64 builds use NEON and
// every other architecture, or any build with the noasm tag, uses the
// fallback. There is no runtime switching.
func CurrentBackend() Backend {
	return compiledBackend
}

// HardwareSupported reports whether the running CPU implements the
// instructions of CurrentBackend. It is always true for the fallback.
//
// The answer comes from golang.org/x/sys/cpu and is informational only:
// SSE2 and ASIMD are part of the amd64 and arm64 baselines, so a false
// result means the cpu package could not read the feature registers.
func HardwareSupported() bool {
	return hardwareSupported()
}

// Lanes is the number of float32 lanes in a Float32x4.
const Lanes = 4
