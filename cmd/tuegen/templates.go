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

package main

const templateText = `
{{- define "header" -}}
// Code generated by tuegen. DO NOT EDIT.

package {{.Package}}
{{end}}

{{- define "vec" -}}
{{template "header" .}}
// {{.Type}} is a vector of {{.N}} components, stored in order ({{.Params}}).
type {{.Type}}[T Scalar] [{{.N}}]T

// New{{.Type}} returns the vector ({{.Params}}).
func New{{.Type}}[T Scalar]({{.Params}} T) {{.Type}}[T] {
	return {{.Type}}[T]{ {{- .Params -}} }
}

// Splat{{.N}} returns a vector with every component set to s.
func Splat{{.N}}[T Scalar](s T) {{.Type}}[T] {
	return {{.Type}}[T]{ {{- each .N "s" ", " -}} }
}

// Zero{{.N}} returns the zero vector.
func Zero{{.N}}[T Scalar]() {{.Type}}[T] {
	return {{.Type}}[T]{}
}
{{range .Comps}}
// {{.Title}}Axis{{$.N}} returns the unit vector along {{.Name}}.
func {{.Title}}Axis{{$.N}}[T Scalar]() {{$.Type}}[T] {
	a := arithOf[T]()
	return {{$.Type}}[T]{ {{- unit $.N .Index -}} }
}
{{end}}
{{- range .Comps}}
// {{.Title}} returns component {{.Index}}.
func (v {{$.Type}}[T]) {{.Title}}() T {
	return v[{{.Index}}]
}

// Set{{.Title}} sets component {{.Index}} to {{.Name}}.
func (v *{{$.Type}}[T]) Set{{.Title}}({{.Name}} T) {
	v[{{.Index}}] = {{.Name}}
}
{{end}}
{{- range .Lower}}
// {{.Method}} returns the first {{.N}} components of v.
func (v {{$.Type}}[T]) {{.Method}}() {{.Type}}[T] {
	return {{.Type}}[T]{ {{- each .N "v[$i]" ", " -}} }
}

// extend{{.N}}to{{$.N}} appends {{.FillParams}} to v.
func extend{{.N}}to{{$.N}}[T Scalar](v {{.Type}}[T], {{.FillParams}} T) {{$.Type}}[T] {
	return {{$.Type}}[T]{ {{- each .N "v[$i]" ", " -}}, {{.FillParams}}}
}
{{end}}
{{- range .Binary}}
// {{.Name}} returns v {{.Symbol}} o, componentwise.
func (v {{$.Type}}[T]) {{.Name}}(o {{$.Type}}[T]) {{$.Type}}[T] {
	f := {{.Table}}.{{.Field}}
	return {{$.Type}}[T]{ {{- each $.N "f(v[$i], o[$i])" ", " -}} }
}

// {{.Name}}Scalar returns v {{.Symbol}} s for every component.
func (v {{$.Type}}[T]) {{.Name}}Scalar(s T) {{$.Type}}[T] {
	f := {{.Table}}.{{.Field}}
	return {{$.Type}}[T]{ {{- each $.N "f(v[$i], s)" ", " -}} }
}

// Scalar{{.Name}} returns s {{.Symbol}} v for every component.
func (v {{$.Type}}[T]) Scalar{{.Name}}(s T) {{$.Type}}[T] {
	f := {{.Table}}.{{.Field}}
	return {{$.Type}}[T]{ {{- each $.N "f(s, v[$i])" ", " -}} }
}

// {{.Name}}Assign sets v to v {{.Symbol}} o and returns v.
func (v *{{$.Type}}[T]) {{.Name}}Assign(o {{$.Type}}[T]) *{{$.Type}}[T] {
	*v = v.{{.Name}}(o)
	return v
}

// {{.Name}}ScalarAssign sets v to v {{.Symbol}} s and returns v.
func (v *{{$.Type}}[T]) {{.Name}}ScalarAssign(s T) *{{$.Type}}[T] {
	*v = v.{{.Name}}Scalar(s)
	return v
}
{{end}}
// Neg returns -v.
func (v {{.Type}}[T]) Neg() {{.Type}}[T] {
	f := arithOf[T]().neg
	return {{.Type}}[T]{ {{- each .N "f(v[$i])" ", " -}} }
}

{{- range .IntOps}}

// {{.Name}}{{$.N}} returns a {{.Symbol}} b, componentwise.
func {{.Name}}{{$.N}}[T Integers](a, b {{$.Type}}[T]) {{$.Type}}[T] {
	return {{$.Type}}[T]{ {{- each $.N (printf "a[$i] %s b[$i]" .Symbol) ", " -}} }
}

// {{.Name}}Scalar{{$.N}} returns a {{.Symbol}} s for every component.
func {{.Name}}Scalar{{$.N}}[T Integers](a {{$.Type}}[T], s T) {{$.Type}}[T] {
	return {{$.Type}}[T]{ {{- each $.N (printf "a[$i] %s s" .Symbol) ", " -}} }
}

// Scalar{{.Name}}{{$.N}} returns s {{.Symbol}} a for every component.
func Scalar{{.Name}}{{$.N}}[T Integers](s T, a {{$.Type}}[T]) {{$.Type}}[T] {
	return {{$.Type}}[T]{ {{- each $.N (printf "s %s a[$i]" .Symbol) ", " -}} }
}

// {{.Name}}Assign{{$.N}} sets *a to a {{.Symbol}} b and returns a.
func {{.Name}}Assign{{$.N}}[T Integers](a *{{$.Type}}[T], b {{$.Type}}[T]) *{{$.Type}}[T] {
	*a = {{.Name}}{{$.N}}(*a, b)
	return a
}

// {{.Name}}ScalarAssign{{$.N}} sets *a to a {{.Symbol}} s and returns a.
func {{.Name}}ScalarAssign{{$.N}}[T Integers](a *{{$.Type}}[T], s T) *{{$.Type}}[T] {
	*a = {{.Name}}Scalar{{$.N}}(*a, s)
	return a
}
{{- end}}

// Not{{.N}} returns the bitwise complement of v.
func Not{{.N}}[T Integers](v {{.Type}}[T]) {{.Type}}[T] {
	return {{.Type}}[T]{ {{- each .N "^v[$i]" ", " -}} }
}

// Inc adds one to every component and returns v.
func (v *{{.Type}}[T]) Inc() *{{.Type}}[T] {
	f := arithOf[T]().inc
{{- range .Comps}}
	v[{{.Index}}] = f(v[{{.Index}}])
{{- end}}
	return v
}

// Dec subtracts one from every component and returns v.
func (v *{{.Type}}[T]) Dec() *{{.Type}}[T] {
	f := arithOf[T]().dec
{{- range .Comps}}
	v[{{.Index}}] = f(v[{{.Index}}])
{{- end}}
	return v
}

// PostInc adds one to every component and returns the previous value.
func (v *{{.Type}}[T]) PostInc() {{.Type}}[T] {
	old := *v
	v.Inc()
	return old
}

// PostDec subtracts one from every component and returns the previous value.
func (v *{{.Type}}[T]) PostDec() {{.Type}}[T] {
	old := *v
	v.Dec()
	return old
}

// Equal reports whether every component of v equals the matching component
// of o. Float components compare exactly; simd.Float32x4 components must
// match in every lane.
func (v {{.Type}}[T]) Equal(o {{.Type}}[T]) bool {
	eq := arithOf[T]().eq
	return {{each .N "eq(v[$i], o[$i])" " && "}}
}

// NotEqual reports whether any component of v differs from o.
func (v {{.Type}}[T]) NotEqual(o {{.Type}}[T]) bool {
	return !v.Equal(o)
}
{{range .MathOps}}
// {{.Name}} returns the {{.Desc}} of every component.
func (v {{$.Type}}[T]) {{.Name}}() {{$.Type}}[T] {
	f := {{.Table}}.{{.Field}}
	return {{$.Type}}[T]{ {{- each $.N "f(v[$i])" ", " -}} }
}
{{end}}
// SinCos stores the sine and cosine of every component in sin and cos.
func (v {{.Type}}[T]) SinCos(sin, cos *{{.Type}}[T]) {
	f := mathOf[T]().sincos
{{- range .Comps}}
	sin[{{.Index}}], cos[{{.Index}}] = f(v[{{.Index}}])
{{- end}}
}

// Pow raises every component of v to the power of the matching component
// of e.
func (v {{.Type}}[T]) Pow(e {{.Type}}[T]) {{.Type}}[T] {
	f := mathOf[T]().pow
	return {{.Type}}[T]{ {{- each .N "f(v[$i], e[$i])" ", " -}} }
}

// PowScalar raises every component of v to the power e.
func (v {{.Type}}[T]) PowScalar(e T) {{.Type}}[T] {
	f := mathOf[T]().pow
	return {{.Type}}[T]{ {{- each .N "f(v[$i], e)" ", " -}} }
}

// Min returns the componentwise minimum of v and o.
func (v {{.Type}}[T]) Min(o {{.Type}}[T]) {{.Type}}[T] {
	f := arithOf[T]().min
	return {{.Type}}[T]{ {{- each .N "f(v[$i], o[$i])" ", " -}} }
}

// Max returns the componentwise maximum of v and o.
func (v {{.Type}}[T]) Max(o {{.Type}}[T]) {{.Type}}[T] {
	f := arithOf[T]().max
	return {{.Type}}[T]{ {{- each .N "f(v[$i], o[$i])" ", " -}} }
}

// Dot returns the dot product of v and o, summed left to right.
func (v {{.Type}}[T]) Dot(o {{.Type}}[T]) T {
	a := arithOf[T]()
	return {{fold .N "a.add" "a.mul(v[$i], o[$i])"}}
}

// Length2 returns the squared length of v.
func (v {{.Type}}[T]) Length2() T {
	return v.Dot(v)
}

// Length returns the Euclidean length of v. Integer components truncate
// the result; Promote{{.N}}(v).Length() is exact.
func (v {{.Type}}[T]) Length() T {
	return mathOf[T]().sqrt(v.Length2())
}

// Normalize returns v divided by its length. The zero vector has no
// direction; normalizing it divides by zero.
func (v {{.Type}}[T]) Normalize() {{.Type}}[T] {
	return v.DivScalar(v.Length())
}

// Widen{{.N}} converts every component of v to U. It panics unless every
// value of T is exactly representable in U; use NarrowTo{{.N}} for
// conversions that may lose values.
func Widen{{.N}}[U, T Number](v {{.Type}}[T]) {{.Type}}[U] {
	mustWiden[T, U]()
	return {{.Type}}[U]{ {{- each .N "U(v[$i])" ", " -}} }
}

// NarrowTo{{.N}} converts every component of v to U with Go's conversion
// rules.
func NarrowTo{{.N}}[U, T Number](v {{.Type}}[T]) {{.Type}}[U] {
	return {{.Type}}[U]{ {{- each .N "U(v[$i])" ", " -}} }
}

// Promote{{.N}} converts an integer vector to float64, the component type the
// usual arithmetic conversions give math on integers.
func Promote{{.N}}[T Integers](v {{.Type}}[T]) {{.Type}}[float64] {
	return {{.Type}}[float64]{ {{- each .N "float64(v[$i])" ", " -}} }
}
{{end}}

{{- define "mat" -}}
{{template "header" .}}
{{- range .Shapes}}
// {{.Type}} is a matrix of {{.C}} columns and {{.R}} rows, stored as {{.C}}
// column vectors. m[c][r] is the element in column c, row r.
type {{.Type}}[T Scalar] [{{.C}}]{{.ColType}}[T]

// New{{.Type}} returns the matrix with the given columns.
func New{{.Type}}[T Scalar]({{each .C "c$i" ", "}} {{.ColType}}[T]) {{.Type}}[T] {
	return {{.Type}}[T]{ {{- each .C "c$i" ", " -}} }
}

// {{.Type}}Diag returns the matrix with s on the main diagonal and zero
// elsewhere.
func {{.Type}}Diag[T Scalar](s T) {{.Type}}[T] {
	var m {{.Type}}[T]
	for i := range {{.Diag}} {
		m[i][i] = s
	}
	return m
}

// {{.Type}}Identity returns the matrix with ones on the main diagonal and
// zero elsewhere.
func {{.Type}}Identity[T Scalar]() {{.Type}}[T] {
	return {{.Type}}Diag(arithOf[T]().one)
}

// Column returns column i.
func (m {{.Type}}[T]) Column(i int) {{.ColType}}[T] {
	return m[i]
}

// SetColumn replaces column i with c.
func (m *{{.Type}}[T]) SetColumn(i int, c {{.ColType}}[T]) {
	m[i] = c
}

// Row returns row i.
func (m {{.Type}}[T]) Row(i int) {{.RowType}}[T] {
	return {{.RowType}}[T]{ {{- each .C "m[$i][i]" ", " -}} }
}

// SetRow replaces row i with r.
func (m *{{.Type}}[T]) SetRow(i int, r {{.RowType}}[T]) {
{{- range $c := until .C}}
	m[{{$c}}][i] = r[{{$c}}]
{{- end}}
}

// Add returns m + o, elementwise.
func (m {{.Type}}[T]) Add(o {{.Type}}[T]) {{.Type}}[T] {
	return {{.Type}}[T]{ {{- each .C "m[$i].Add(o[$i])" ", " -}} }
}

// Sub returns m - o, elementwise.
func (m {{.Type}}[T]) Sub(o {{.Type}}[T]) {{.Type}}[T] {
	return {{.Type}}[T]{ {{- each .C "m[$i].Sub(o[$i])" ", " -}} }
}

// MulScalar returns m with every element multiplied by s.
func (m {{.Type}}[T]) MulScalar(s T) {{.Type}}[T] {
	return {{.Type}}[T]{ {{- each .C "m[$i].MulScalar(s)" ", " -}} }
}

// Neg returns -m.
func (m {{.Type}}[T]) Neg() {{.Type}}[T] {
	return {{.Type}}[T]{ {{- each .C "m[$i].Neg()" ", " -}} }
}

// Equal reports whether every element of m equals the matching element of o.
func (m {{.Type}}[T]) Equal(o {{.Type}}[T]) bool {
	return {{each .C "m[$i].Equal(o[$i])" " && "}}
}
{{- if .Square}}

// Transpose returns m with rows and columns exchanged.
func (m {{.Type}}[T]) Transpose() {{.Type}}[T] {
	return {{.Type}}[T]{ {{- each .C "m.Row($i)" ", " -}} }
}
{{- end}}

// VecMul returns the row vector v times m. Component c of the result is the
// dot product of v with column c.
func (m {{.Type}}[T]) VecMul(v {{.ColType}}[T]) {{.RowType}}[T] {
	return {{.RowType}}[T]{ {{- each .C "v.Dot(m[$i])" ", " -}} }
}

// MulVec returns m times the column vector v, the sum of the columns of m
// weighted by the components of v.
func (m {{.Type}}[T]) MulVec(v {{.RowType}}[T]) {{.ColType}}[T] {
	return {{chain .C "Add" "m[$i].MulScalar(v[$i])"}}
}
{{- $m := .}}
{{- range .Products}}

// Mul{{.Other.Type}} returns the matrix product m·o.
func (m {{$m.Type}}[T]) Mul{{.Other.Type}}(o {{.Other.Type}}[T]) {{.Result.Type}}[T] {
	return {{.Result.Type}}[T]{ {{- each .Other.C "m.MulVec(o[$i])" ", " -}} }
}
{{- end}}
{{- range .Resizes}}

// {{$m.Type}}From{{.From.Type}} converts m to a {{$m.C}}x{{$m.R}} matrix. Elements
// present in both shapes are copied; the others come from the identity.
func {{$m.Type}}From{{.From.Type}}[T Scalar](m {{.From.Type}}[T]) {{$m.Type}}[T] {
{{- if .NeedsArith}}
	a := arithOf[T]()
{{- end}}
	return {{$m.Type}}[T]{
{{- range .Columns}}
		{{.}},
{{- end}}
	}
}
{{- end}}
{{end}}
{{end}}
`
