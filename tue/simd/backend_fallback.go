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

//go:build noasm || !(amd64 || arm64)

package simd

const compiledBackend = BackendFallback

func hardwareSupported() bool { return true }

var (
	vAdd       = addGeneric
	vSub       = subGeneric
	vMul       = mulGeneric
	vDiv       = divGeneric
	vMin       = minGeneric
	vMax       = maxGeneric
	vNeg       = negGeneric
	vAbs       = absGeneric
	vSqrt      = sqrtGeneric
	vRecip     = recipGeneric
	vRsqrt     = rsqrtGeneric
	vAnd       = andGeneric
	vOr        = orGeneric
	vXor       = xorGeneric
	vAndNot    = andNotGeneric
	vToInt32   = toInt32Generic
	vFromInt32 = fromInt32Generic
	vEq        = eqGeneric
	vNe        = neGeneric
	vLt        = ltGeneric
	vLe        = leGeneric
	vSelect    = selectGeneric
	vSinCos    = sinCosGeneric
	vExp       = expGeneric
	vLog       = logGeneric
	vPow       = powGeneric
)
