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

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var componentNames = []string{"x", "y", "z", "w"}

var title = cases.Title(language.Und)

// component is one named vector component.
type component struct {
	Index int
	Name  string // "x"
	Title string // "X"
}

func components(n int) []component {
	return lo.Map(componentNames[:n], func(name string, i int) component {
		return component{Index: i, Name: name, Title: title.String(name)}
	})
}

// binaryOp is an operator generated in its five method forms.
type binaryOp struct {
	Name   string // Method name, "Add"
	Table  string // Expression yielding the function table
	Field  string // Table entry
	Symbol string // Operator in doc comments
}

// intOp is an integer-only operator, generated as five functions
// constrained by Integers so other component types do not compile.
type intOp struct {
	Name   string // "Rem"
	Symbol string // Go operator, "%"
}

// unaryOp is a componentwise function of one argument.
type unaryOp struct {
	Name  string
	Table string
	Field string
	Desc  string
}

var (
	arithTable = "arithOf[T]()"
	mathTable  = "mathOf[T]()"
)

var binaryOps = []binaryOp{
	{Name: "Add", Table: arithTable, Field: "add", Symbol: "+"},
	{Name: "Sub", Table: arithTable, Field: "sub", Symbol: "-"},
	{Name: "Mul", Table: arithTable, Field: "mul", Symbol: "*"},
	{Name: "Div", Table: arithTable, Field: "div", Symbol: "/"},
}

var intOps = []intOp{
	{Name: "Rem", Symbol: "%"},
	{Name: "And", Symbol: "&"},
	{Name: "Or", Symbol: "|"},
	{Name: "Xor", Symbol: "^"},
	{Name: "Shl", Symbol: "<<"},
	{Name: "Shr", Symbol: ">>"},
}

var mathOps = []unaryOp{
	{Name: "Sin", Table: mathTable, Field: "sin", Desc: "sine"},
	{Name: "Cos", Table: mathTable, Field: "cos", Desc: "cosine"},
	{Name: "Exp", Table: mathTable, Field: "exp", Desc: "base-e exponential"},
	{Name: "Log", Table: mathTable, Field: "log", Desc: "natural logarithm"},
	{Name: "Recip", Table: mathTable, Field: "recip", Desc: "reciprocal"},
	{Name: "Sqrt", Table: mathTable, Field: "sqrt", Desc: "square root"},
	{Name: "Rsqrt", Table: mathTable, Field: "rsqrt", Desc: "reciprocal square root"},
	{Name: "Abs", Table: arithTable, Field: "abs", Desc: "absolute value"},
}

// lowerVec is a smaller arity reachable from a vector by truncation, and
// from which the vector is built by extension.
type lowerVec struct {
	N          int
	Type       string
	Method     string // Truncating accessor, "XY"
	FillParams string // Parameters supplying the missing components, "z, w"
}

type vecModel struct {
	Package string
	N       int
	Type    string
	Params  string
	Comps   []component
	Lower   []lowerVec
	Binary  []binaryOp
	IntOps  []intOp
	MathOps []unaryOp
}

func vecType(n int) string { return fmt.Sprintf("Vec%d", n) }

func newVecModel(pkg string, n int) vecModel {
	comps := components(n)
	names := lo.Map(comps, func(c component, _ int) string { return c.Name })
	lower := lo.Map(lo.Range(n-2), func(i, _ int) lowerVec {
		l := i + 2
		return lowerVec{
			N:          l,
			Type:       vecType(l),
			Method:     strings.ToUpper(strings.Join(names[:l], "")),
			FillParams: strings.Join(names[l:], ", "),
		}
	})
	return vecModel{
		Package: pkg,
		N:       n,
		Type:    vecType(n),
		Params:  strings.Join(names, ", "),
		Comps:   comps,
		Lower:   lower,
		Binary:  binaryOps,
		IntOps:  intOps,
		MathOps: mathOps,
	}
}

// matShape is a matrix of C columns of R rows each.
type matShape struct {
	C, R int
}

var matShapes = []matShape{{2, 2}, {2, 3}, {3, 3}, {3, 4}, {4, 4}}

func (s matShape) Type() string    { return fmt.Sprintf("Mat%dx%d", s.C, s.R) }
func (s matShape) ColType() string { return vecType(s.R) }
func (s matShape) RowType() string { return vecType(s.C) }
func (s matShape) Square() bool    { return s.C == s.R }
func (s matShape) Diag() int       { return min(s.C, s.R) }

// product is m·o for an o whose row count matches m's column count.
type product struct {
	Other  matShape
	Result matShape
}

// resize builds a matrix of one shape from a matrix of another.
type resize struct {
	From    matShape
	Columns []string // One expression per destination column
}

// NeedsArith reports whether the column expressions use the table a.
func (r resize) NeedsArith() bool {
	return lo.SomeBy(r.Columns, func(c string) bool { return strings.Contains(c, "a.") })
}

type matModel struct {
	matShape
	Products []product
	Resizes  []resize
}

type matFileModel struct {
	Package string
	Shapes  []matModel
}

func newMatFileModel(pkg string) matFileModel {
	return matFileModel{
		Package: pkg,
		Shapes: lo.Map(matShapes, func(s matShape, _ int) matModel {
			return matModel{matShape: s, Products: products(s), Resizes: resizes(s)}
		}),
	}
}

// products lists the supported shapes o for which m·o is defined, with the
// shape of the result. The result must itself be a supported shape.
func products(m matShape) []product {
	others := lo.Filter(matShapes, func(o matShape, _ int) bool {
		return o.R == m.C && lo.Contains(matShapes, matShape{o.C, m.R})
	})
	return lo.Map(others, func(o matShape, _ int) product {
		return product{Other: o, Result: matShape{o.C, m.R}}
	})
}

// resizes lists the conversions into dst from every other shape. Elements
// that exist in both are copied; the rest come from the identity matrix.
func resizes(dst matShape) []resize {
	srcs := lo.Reject(matShapes, func(s matShape, _ int) bool { return s == dst })
	return lo.Map(srcs, func(src matShape, _ int) resize {
		return resize{From: src, Columns: resizeColumns(dst, src)}
	})
}

func resizeColumns(dst, src matShape) []string {
	return lo.Map(lo.Range(dst.C), func(c, _ int) string {
		if c >= src.C {
			return identityColumn(dst.R, c)
		}
		col := fmt.Sprintf("m[%d]", c)
		switch {
		case src.R == dst.R:
			return col
		case src.R > dst.R:
			return col + "." + strings.ToUpper(strings.Join(componentNames[:dst.R], "")) + "()"
		}
		fill := lo.Map(lo.RangeFrom(src.R, dst.R-src.R), func(r, _ int) string {
			return unitElem(r, c)
		})
		return fmt.Sprintf("extend%dto%d(%s, %s)", src.R, dst.R, col, strings.Join(fill, ", "))
	})
}

func identityColumn(rows, c int) string {
	elems := lo.Map(lo.Range(rows), func(r, _ int) string { return unitElem(r, c) })
	return "{" + strings.Join(elems, ", ") + "}"
}

func unitElem(r, c int) string {
	if r == c {
		return "a.one"
	}
	return "a.zero"
}

// templateFuncs are available to every template. Patterns passed to each
// and fold use $i for the component index.
var templateFuncs = template.FuncMap{
	"each": func(n int, pattern, sep string) string {
		return strings.Join(expand(n, pattern), sep)
	},
	// fold left-folds the expansions of pattern with the binary function op:
	// fold 3 "f" "e$i" is f(f(e0, e1), e2).
	"fold": func(n int, op, pattern string) string {
		items := expand(n, pattern)
		return lo.Reduce(items[1:], func(acc, item string, _ int) string {
			return fmt.Sprintf("%s(%s, %s)", op, acc, item)
		}, items[0])
	},
	// chain calls method on the first expansion with each later one:
	// chain 3 "Add" "e$i" is e0.Add(e1).Add(e2).
	"chain": func(n int, method, pattern string) string {
		items := expand(n, pattern)
		return lo.Reduce(items[1:], func(acc, item string, _ int) string {
			return fmt.Sprintf("%s.%s(%s)", acc, method, item)
		}, items[0])
	},
	"until": func(n int) []int { return lo.Range(n) },
	"unit": func(n, axis int) string {
		return strings.Join(lo.Map(lo.Range(n), func(i, _ int) string { return unitElem(i, axis) }), ", ")
	},
}

func expand(n int, pattern string) []string {
	return lo.Map(lo.Range(n), func(i, _ int) string {
		return strings.ReplaceAll(pattern, "$i", strconv.Itoa(i))
	})
}
