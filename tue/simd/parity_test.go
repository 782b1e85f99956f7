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

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	"github.com/viterin/vek/vek32"
)

// edgeValues covers signed zeros, subnormals, extremes, infinities and NaN.
var edgeValues = []float32{
	0, float32(math.Copysign(0, -1)),
	1, -1, 0.5, -2.25, 3.75, 1e-3, -7e5,
	1e-40, -1e-40, // subnormal
	0x1p-126, -0x1p-126, // smallest normal
	1e30, -1e30,
	math.MaxFloat32, -math.MaxFloat32,
	float32(math.Inf(1)), float32(math.Inf(-1)),
	float32(math.NaN()),
}

// quads returns every ordered pair of edge values packed four pairs at a time.
func quads() (as, bs [][4]float32) {
	var a, b [4]float32
	n := 0
	for _, x := range edgeValues {
		for _, y := range edgeValues {
			a[n], b[n] = x, y
			n++
			if n == 4 {
				as, bs = append(as, a), append(bs, b)
				n = 0
			}
		}
	}
	if n > 0 {
		as, bs = append(as, a), append(bs, b)
	}
	return as, bs
}

func sameFloat(a, b float32) bool {
	if a != a && b != b {
		return true
	}
	return math.Float32bits(a) == math.Float32bits(b)
}

func TestParityBinary(t *testing.T) {
	ops := []struct {
		name     string
		got, ref func(a, b [4]float32) [4]float32
	}{
		{"Add", vAdd, addGeneric},
		{"Sub", vSub, subGeneric},
		{"Mul", vMul, mulGeneric},
		{"Div", vDiv, divGeneric},
		{"Min", vMin, minGeneric},
		{"Max", vMax, maxGeneric},
		{"And", vAnd, andGeneric},
		{"Or", vOr, orGeneric},
		{"Xor", vXor, xorGeneric},
		{"AndNot", vAndNot, andNotGeneric},
	}
	as, bs := quads()
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			for i := range as {
				got, want := op.got(as[i], bs[i]), op.ref(as[i], bs[i])
				for l := range got {
					if !sameFloat(got[l], want[l]) {
						t.Errorf("%s(%v, %v): lane %d: got %v, want %v", op.name, as[i][l], bs[i][l], l, got[l], want[l])
					}
				}
			}
		})
	}
}

func TestParityUnary(t *testing.T) {
	ops := []struct {
		name     string
		got, ref func(a [4]float32) [4]float32
	}{
		{"Neg", vNeg, negGeneric},
		{"Abs", vAbs, absGeneric},
		{"Sqrt", vSqrt, sqrtGeneric},
	}
	as, _ := quads()
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			for _, a := range as {
				got, want := op.got(a), op.ref(a)
				for l := range got {
					if !sameFloat(got[l], want[l]) {
						t.Errorf("%s(%v): lane %d: got %v, want %v", op.name, a[l], l, got[l], want[l])
					}
				}
			}
		})
	}
}

func TestParityCompare(t *testing.T) {
	ops := []struct {
		name     string
		got, ref func(a, b [4]float32) [4]uint32
	}{
		{"Equal", vEq, eqGeneric},
		{"NotEqual", vNe, neGeneric},
		{"Less", vLt, ltGeneric},
		{"LessEqual", vLe, leGeneric},
	}
	as, bs := quads()
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			for i := range as {
				got, want := op.got(as[i], bs[i]), op.ref(as[i], bs[i])
				if got != want {
					t.Errorf("%s(%v, %v): got %x, want %x", op.name, as[i], bs[i], got, want)
				}
			}
		})
	}
}

func TestParitySelect(t *testing.T) {
	as, bs := quads()
	masks := [][4]uint32{
		{0, 0, 0, 0},
		{^uint32(0), 0, ^uint32(0), 0},
		{0, ^uint32(0), ^uint32(0), 0},
		{^uint32(0), ^uint32(0), ^uint32(0), ^uint32(0)},
	}
	for i := range as {
		m := masks[i%len(masks)]
		got, want := vSelect(m, as[i], bs[i]), selectGeneric(m, as[i], bs[i])
		for l := range got {
			if math.Float32bits(got[l]) != math.Float32bits(want[l]) {
				t.Errorf("Select(%x, %v, %v): lane %d: got %v, want %v", m, as[i], bs[i], l, got[l], want[l])
			}
		}
	}
}

func TestParityConvert(t *testing.T) {
	floats := [4]float32{-2147483520, 2147483520, 1.5, -0.75}
	if got, want := vToInt32(floats), toInt32Generic(floats); !sameBits(got, want) {
		t.Errorf("ConvertToInt32Bits(%v): got %v, want %v", floats, got, want)
	}
	as, _ := quads()
	for _, a := range as {
		// Only the int32 range is defined.
		for l, x := range a {
			if x != x || math.Abs(float64(x)) >= 1<<31 {
				a[l] = 0
			}
		}
		if got, want := vToInt32(a), toInt32Generic(a); !sameBits(got, want) {
			t.Errorf("ConvertToInt32Bits(%v): got %v, want %v", a, got, want)
		}
	}

	for _, ints := range [][4]int32{
		{0, 1, -1, math.MaxInt32},
		{math.MinInt32, 1<<24 + 1, -(1<<24 + 3), 123456789},
	} {
		var a [4]float32
		for l, v := range ints {
			a[l] = math.Float32frombits(uint32(v))
		}
		if got, want := vFromInt32(a), fromInt32Generic(a); !sameBits(got, want) {
			t.Errorf("ConvertFromInt32Bits(%v): got %v, want %v", ints, got, want)
		}
	}
}

func sameBits(a, b [4]float32) bool {
	for i := range a {
		if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
			return false
		}
	}
	return true
}

// TestArithmeticOracle checks the compiled backend against vek32, an
// independent implementation, on finite inputs.
func TestArithmeticOracle(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const n = 256
	xs := make([]float32, n)
	ys := make([]float32, n)
	for i := range xs {
		xs[i] = (rng.Float32() - 0.5) * 2000
		ys[i] = (rng.Float32()-0.5)*2000 + 1e-3
	}

	ops := []struct {
		name string
		simd func(a, b Float32x4) Float32x4
		vek  func(a, b []float32) []float32
	}{
		{"Add", Float32x4.Add, vek32.Add},
		{"Sub", Float32x4.Sub, vek32.Sub},
		{"Mul", Float32x4.Mul, vek32.Mul},
		{"Div", Float32x4.Div, vek32.Div},
	}
	for _, op := range ops {
		want := op.vek(xs, ys)
		got := make([]float32, n)
		for i := 0; i < n; i += Lanes {
			op.simd(Load(xs[i:]), Load(ys[i:])).Store(got[i:])
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("%s(%v, %v): got %v, want %v", op.name, xs[i], ys[i], got[i], want[i])
			}
		}
	}

	abs := make([]float32, n)
	for i, x := range xs {
		abs[i] = math32.Abs(x)
	}
	want := vek32.Sqrt(abs)
	for i := 0; i < n; i += Lanes {
		got := Load(abs[i:]).Sqrt().Array()
		for l := range got {
			if got[l] != want[i+l] {
				t.Errorf("Sqrt(%v): got %v, want %v", abs[i+l], got[l], want[i+l])
			}
		}
	}
}

func TestRecipRsqrtAccuracy(t *testing.T) {
	const tol = 1.0 / (1 << 20)
	rng := rand.New(rand.NewPCG(3, 4))
	for range 1000 {
		var a [4]float32
		for l := range a {
			// Magnitudes in [2^-100, 2^100] keep both results normal.
			e := rng.IntN(200) - 100
			a[l] = float32(math.Ldexp(1+rng.Float64(), e))
		}
		pos := a
		if rng.IntN(2) == 0 {
			a[0], a[2] = -a[0], -a[2]
		}

		got, want := vRecip(a), recipGeneric(a)
		for l := range got {
			if rel := math.Abs(float64(got[l]-want[l]) / float64(want[l])); rel > tol {
				t.Fatalf("Recip(%v): got %v, want %v (relative error %g)", a[l], got[l], want[l], rel)
			}
		}
		got, want = vRsqrt(pos), rsqrtGeneric(pos)
		for l := range got {
			if rel := math.Abs(float64(got[l]-want[l]) / float64(want[l])); rel > tol {
				t.Fatalf("Rsqrt(%v): got %v, want %v (relative error %g)", pos[l], got[l], want[l], rel)
			}
		}
	}
}

func TestRecipRsqrtSpecialCases(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())
	negZero := float32(math.Copysign(0, -1))

	specials := [][4]float32{
		{0, negZero, inf, -inf},
		{nan, -1, 1, 4},
	}
	for _, a := range specials {
		got, want := vRecip(a), recipGeneric(a)
		for l := range got {
			if !sameFloat(got[l], want[l]) && !(a[l] == 1 || a[l] == 4 || a[l] == -1) {
				t.Errorf("Recip(%v): got %v, want %v", a[l], got[l], want[l])
			}
		}
		got, want = vRsqrt(a), rsqrtGeneric(a)
		for l := range got {
			if !sameFloat(got[l], want[l]) && !(a[l] == 1 || a[l] == 4) {
				t.Errorf("Rsqrt(%v): got %v, want %v", a[l], got[l], want[l])
			}
		}
	}

	// Subnormal inputs, and inputs whose reciprocal is subnormal.
	scaled := [][4]float32{
		{1e-40, 5e-39, 2.5e-39, -1e-40},
		{1e-45, 2e-39, 3e38, -math.MaxFloat32},
		{-5e-39, 1.17e-38, 0x1p125, -0x1p126},
	}
	for _, a := range scaled {
		got, want := vRecip(a), recipGeneric(a)
		for l := range got {
			if !recipClose(got[l], want[l]) {
				t.Errorf("Recip(%v): got %v, want %v", a[l], got[l], want[l])
			}
		}
		got, want = vRsqrt(a), rsqrtGeneric(a)
		for l := range got {
			if !recipClose(got[l], want[l]) {
				t.Errorf("Rsqrt(%v): got %v, want %v", a[l], got[l], want[l])
			}
		}
	}
}

// recipClose reports whether got is within 2^-20 of want, relative, plus
// one rounding of the smallest subnormal.
func recipClose(got, want float32) bool {
	if want != want || math32.IsInf(want, 0) {
		return sameFloat(got, want)
	}
	diff := math.Abs(float64(got) - float64(want))
	return diff <= math.Abs(float64(want))/(1<<20)+0x1p-149
}

func TestParityEdgeValues(t *testing.T) {
	as, bs := quads()
	for _, a := range as {
		got, want := vRecip(a), recipGeneric(a)
		for l := range got {
			if !recipClose(got[l], want[l]) {
				t.Errorf("Recip(%v): got %v, want %v", a[l], got[l], want[l])
			}
		}
		got, want = vRsqrt(a), rsqrtGeneric(a)
		for l := range got {
			if !recipClose(got[l], want[l]) {
				t.Errorf("Rsqrt(%v): got %v, want %v", a[l], got[l], want[l])
			}
		}
	}

	sin := func(a [4]float32) [4]float32 { s, _ := vSinCos(a); return s }
	cos := func(a [4]float32) [4]float32 { _, c := vSinCos(a); return c }
	checkTranscendental(t, "Sin", as, sin, genericSin)
	checkTranscendental(t, "Cos", as, cos, genericCos)
	checkTranscendental(t, "Exp", as, vExp, expGeneric)
	checkTranscendental(t, "Log", as, vLog, logGeneric)

	for i := range as {
		got, want := vPow(as[i], bs[i]), powGeneric(as[i], bs[i])
		for l := range got {
			if !powClose(got[l], want[l], as[i][l], bs[i][l]) {
				t.Errorf("Pow(%v, %v): got %v, want %v", as[i][l], bs[i][l], got[l], want[l])
			}
		}
	}
}

// powClose scales the transcendental tolerance by 1 + |y*log(x)|, the
// amplification of the rounding of y*log(x) by exp. A result within that
// tolerance of MaxFloat32 may overflow to Inf.
func powClose(got, want, x, y float32) bool {
	if want != want {
		return got != got
	}
	scale := 1 + math.Abs(float64(y)*math.Log(math.Abs(float64(x))))
	if math.IsInf(scale, 0) || scale != scale {
		scale = 1
	}
	tol := transcendentalTol * scale
	g, w := float64(got), float64(want)
	if math.IsInf(g, 0) || math.IsInf(w, 0) {
		if g == w {
			return true
		}
		finite := w
		if math.IsInf(w, 0) {
			finite = g
		}
		return math.Signbit(g) == math.Signbit(w) && math.Abs(finite) >= math.MaxFloat32/(1+tol)
	}
	return math.Abs(g-w) <= tol*math.Max(1, math.Abs(w))
}

func TestSinCosLargeArguments(t *testing.T) {
	for _, a := range [][4]float32{
		{1e5, 1e6, 3e7, 1e30},
		{math.MaxFloat32, -math.MaxFloat32, -1e5, 12345.6},
		{-1e30, 1e4 + 1, 5, float32(math.Inf(1))},
	} {
		gotSin, gotCos := FromArray(a).SinCos()
		wantSin, wantCos := sinCosGeneric(a)
		for l := range a {
			if math32.Abs(a[l]) <= 1e4 {
				continue
			}
			if !sameFloat(gotSin.Get(l), wantSin[l]) || !sameFloat(gotCos.Get(l), wantCos[l]) {
				t.Errorf("SinCos(%v): got (%v, %v), want (%v, %v)", a[l], gotSin.Get(l), gotCos.Get(l), wantSin[l], wantCos[l])
			}
		}
		checkTranscendental(t, "Sin", [][4]float32{a}, func(a [4]float32) [4]float32 { return FromArray(a).Sin().v }, genericSin)
		checkTranscendental(t, "Cos", [][4]float32{a}, func(a [4]float32) [4]float32 { return FromArray(a).Cos().v }, genericCos)
	}
}

// closeEnough reports whether got is within tol of want, absolute below 1
// and relative above.
func closeEnough(got, want, tol float32) bool {
	if want != want {
		return got != got
	}
	if math32.IsInf(want, 0) {
		return got == want
	}
	return math32.Abs(got-want) <= tol*math32.Max(1, math32.Abs(want))
}

const transcendentalTol = 4e-6

func checkTranscendental(t *testing.T, name string, in [][4]float32, got, want func([4]float32) [4]float32) {
	t.Helper()
	for _, a := range in {
		g, w := got(a), want(a)
		for l := range g {
			if !closeEnough(g[l], w[l], transcendentalTol) {
				t.Errorf("%s(%v): got %v, want %v", name, a[l], g[l], w[l])
			}
		}
	}
}

func uniform(seed uint64, lo, hi float32, n int) [][4]float32 {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	out := make([][4]float32, n)
	for i := range out {
		for l := range out[i] {
			out[i][l] = lo + rng.Float32()*(hi-lo)
		}
	}
	return out
}

func polySin(a [4]float32) [4]float32 {
	s, _ := sinCosPoly(FromArray(a))
	return s.v
}

func polyCos(a [4]float32) [4]float32 {
	_, c := sinCosPoly(FromArray(a))
	return c.v
}

func genericSin(a [4]float32) [4]float32 {
	s, _ := sinCosGeneric(a)
	return s
}

func genericCos(a [4]float32) [4]float32 {
	_, c := sinCosGeneric(a)
	return c
}

func TestPolynomialsAgainstReference(t *testing.T) {
	trig := append(uniform(5, -100, 100, 500), uniform(6, -1e4, 1e4, 200)...)
	trig = append(trig, [4]float32{0, float32(math.Pi), float32(math.Pi / 2), -float32(math.Pi / 4)})
	checkTranscendental(t, "sin", trig, polySin, genericSin)
	checkTranscendental(t, "cos", trig, polyCos, genericCos)

	exps := append(uniform(7, -80, 80, 500), [4]float32{0, 1, -1, 88})
	checkTranscendental(t, "exp", exps, func(a [4]float32) [4]float32 { return expPoly(FromArray(a)).v }, expGeneric)

	logs := append(uniform(8, 1e-3, 1e3, 500), uniform(9, 0.5, 2, 200)...)
	logs = append(logs, [4]float32{1, 1e-40, 0x1p-126, math.MaxFloat32})
	checkTranscendental(t, "log", logs, func(a [4]float32) [4]float32 { return logPoly(FromArray(a)).v }, logGeneric)

	bases := uniform(10, 0.1, 10, 300)
	powers := uniform(11, -3, 3, 300)
	for i := range bases {
		got := powPoly(FromArray(bases[i]), FromArray(powers[i])).v
		want := powGeneric(bases[i], powers[i])
		for l := range got {
			if !closeEnough(got[l], want[l], transcendentalTol) {
				t.Errorf("pow(%v, %v): got %v, want %v", bases[i][l], powers[i][l], got[l], want[l])
			}
		}
	}
}

func TestPolynomialSpecialCases(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())
	specials := [][4]float32{{inf, float32(math.Inf(-1)), nan, 0}}

	checkTranscendental(t, "exp", specials, func(a [4]float32) [4]float32 { return expPoly(FromArray(a)).v }, expGeneric)
	checkTranscendental(t, "log", [][4]float32{{0, -1, inf, nan}}, func(a [4]float32) [4]float32 { return logPoly(FromArray(a)).v }, logGeneric)
	checkTranscendental(t, "sin", specials, polySin, genericSin)
	checkTranscendental(t, "cos", specials, polyCos, genericCos)
}

// The public methods route through the compiled backend.
func TestTranscendentalBackend(t *testing.T) {
	in := uniform(12, -10, 10, 200)
	checkTranscendental(t, "Sin", in, func(a [4]float32) [4]float32 { return FromArray(a).Sin().v }, genericSin)
	checkTranscendental(t, "Cos", in, func(a [4]float32) [4]float32 { return FromArray(a).Cos().v }, genericCos)
	checkTranscendental(t, "Exp", in, func(a [4]float32) [4]float32 { return FromArray(a).Exp().v }, expGeneric)
	pos := uniform(13, 1e-2, 1e2, 200)
	checkTranscendental(t, "Log", pos, func(a [4]float32) [4]float32 { return FromArray(a).Log().v }, logGeneric)
}

func BenchmarkAdd(b *testing.B) {
	x, y := New(1, 2, 3, 4), Broadcast(0.5)
	for b.Loop() {
		x = x.Add(y)
	}
	_ = x
}

func BenchmarkRecip(b *testing.B) {
	x := New(1, 2, 3, 4)
	for b.Loop() {
		x = x.Recip()
	}
	_ = x
}

func BenchmarkSinCos(b *testing.B) {
	x := New(0.1, 0.2, 0.3, 0.4)
	var s, c Float32x4
	for b.Loop() {
		s, c = x.SinCos()
	}
	_, _ = s, c
}

func BenchmarkExp(b *testing.B) {
	x := New(0.1, 1.2, -3.3, 10.4)
	for b.Loop() {
		x = x.Exp().Mul(Broadcast(0.5))
	}
	_ = x
}
