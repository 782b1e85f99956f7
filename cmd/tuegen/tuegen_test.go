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
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateFuncs(t *testing.T) {
	each := templateFuncs["each"].(func(int, string, string) string)
	fold := templateFuncs["fold"].(func(int, string, string) string)
	chain := templateFuncs["chain"].(func(int, string, string) string)
	unit := templateFuncs["unit"].(func(int, int) string)

	assert.Equal(t, "v[0], v[1], v[2]", each(3, "v[$i]", ", "))
	assert.Equal(t, "f(f(e0, e1), e2)", fold(3, "f", "e$i"))
	assert.Equal(t, "e0", fold(1, "f", "e$i"))
	assert.Equal(t, "e0.Add(e1).Add(e2).Add(e3)", chain(4, "Add", "e$i"))
	assert.Equal(t, "a.zero, a.one, a.zero", unit(3, 1))
}

func TestVecModel(t *testing.T) {
	m := newVecModel("tue", 4)
	assert.Equal(t, "Vec4", m.Type)
	assert.Equal(t, "x, y, z, w", m.Params)
	require.Len(t, m.Comps, 4)
	assert.Equal(t, component{Index: 3, Name: "w", Title: "W"}, m.Comps[3])
	assert.Equal(t, []lowerVec{
		{N: 2, Type: "Vec2", Method: "XY", FillParams: "z, w"},
		{N: 3, Type: "Vec3", Method: "XYZ", FillParams: "w"},
	}, m.Lower)

	assert.Empty(t, newVecModel("tue", 2).Lower)
}

func TestMatProducts(t *testing.T) {
	tests := []struct {
		shape matShape
		want  []product
	}{
		{matShape{2, 2}, []product{{Other: matShape{2, 2}, Result: matShape{2, 2}}}},
		{matShape{2, 3}, []product{{Other: matShape{2, 2}, Result: matShape{2, 3}}}},
		{matShape{3, 3}, []product{
			{Other: matShape{2, 3}, Result: matShape{2, 3}},
			{Other: matShape{3, 3}, Result: matShape{3, 3}},
		}},
		{matShape{3, 4}, []product{{Other: matShape{3, 3}, Result: matShape{3, 4}}}},
		{matShape{4, 4}, []product{
			{Other: matShape{3, 4}, Result: matShape{3, 4}},
			{Other: matShape{4, 4}, Result: matShape{4, 4}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.shape.Type(), func(t *testing.T) {
			assert.Equal(t, tt.want, products(tt.shape))
		})
	}
}

func TestResizeColumns(t *testing.T) {
	assert.Equal(t, []string{
		"extend2to3(m[0], a.zero)",
		"extend2to3(m[1], a.zero)",
		"{a.zero, a.zero, a.one}",
	}, resizeColumns(matShape{3, 3}, matShape{2, 2}))

	assert.Equal(t, []string{"m[0].XY()", "m[1].XY()"}, resizeColumns(matShape{2, 2}, matShape{4, 4}))
	assert.Equal(t, []string{"m[0]", "m[1]"}, resizeColumns(matShape{2, 3}, matShape{3, 3}))

	r := resize{From: matShape{3, 3}, Columns: resizeColumns(matShape{2, 3}, matShape{3, 3})}
	assert.False(t, r.NeedsArith())
	assert.Len(t, resizes(matShape{4, 4}), len(matShapes)-1)
}

func TestNewGeneratorValidation(t *testing.T) {
	valid := Config{OutputDir: t.TempDir(), Package: "tue", Kind: KindAll, Arities: []int{2}}

	_, err := NewGenerator(valid, nil)
	require.NoError(t, err)

	bad := valid
	bad.Kind = "quat"
	_, err = NewGenerator(bad, nil)
	assert.ErrorContains(t, err, `unknown kind "quat"`)

	bad = valid
	bad.Arities = []int{2, 5}
	_, err = NewGenerator(bad, nil)
	assert.ErrorContains(t, err, "arity 5 out of range")

	bad = valid
	bad.Package = ""
	_, err = NewGenerator(bad, nil)
	assert.Error(t, err)
}

func fileNames(files []File) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names
}

func TestFiles(t *testing.T) {
	g, err := NewGenerator(Config{Package: "tue", Kind: KindVec, Arities: []int{3, 2, 3}}, nil)
	require.NoError(t, err)
	files, err := g.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"vec2_gen.go", "vec3_gen.go"}, fileNames(files))

	src := string(files[1].Src)
	assert.True(t, strings.HasPrefix(src, "// Code generated by tuegen. DO NOT EDIT.\n\npackage tue\n"))
	assert.Contains(t, src, "func (v Vec3[T]) XY() Vec2[T] {")
	assert.Contains(t, src, "func extend2to3[T Scalar](v Vec2[T], z T) Vec3[T] {")
	assert.Contains(t, src, "func ShlScalarAssign3[T Integers](a *Vec3[T], s T) *Vec3[T] {")
	assert.Contains(t, src, "return Vec3[T]{a[0] % b[0], a[1] % b[1], a[2] % b[2]}")
	assert.Contains(t, src, "return Vec3[T]{^v[0], ^v[1], ^v[2]}")
	assert.Contains(t, src, "func Promote3[T Integers](v Vec3[T]) Vec3[float64] {")
	assert.NotContains(t, src, "func (v Vec3[T]) Rem(", "integer operators must not be methods on every T")
	assert.Contains(t, src, "return a.add(a.add(a.mul(v[0], o[0]), a.mul(v[1], o[1])), a.mul(v[2], o[2]))")

	g.Kind = KindMat
	files, err = g.Files()
	require.NoError(t, err)
	require.Equal(t, []string{"mat_gen.go"}, fileNames(files))
	mat := string(files[0].Src)
	assert.Contains(t, mat, "func (m Mat4x4[T]) MulMat3x4(o Mat3x4[T]) Mat3x4[T] {")
	assert.Contains(t, mat, "func (m Mat3x3[T]) Transpose() Mat3x3[T] {")
	assert.NotContains(t, mat, "func (m Mat2x3[T]) Transpose()")
}

// declarations returns the sorted top-level function and type names of a Go
// source, with methods as Recv.Name.
func declarations(t *testing.T, name string, src []byte) []string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), name, src, parser.SkipObjectResolution)
	require.NoError(t, err)
	var names []string
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			n := d.Name.Name
			if d.Recv != nil {
				n = recvName(d.Recv.List[0].Type) + "." + n
			}
			names = append(names, n)
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					names = append(names, ts.Name.Name)
				}
			}
		}
	}
	slices.Sort(names)
	return names
}

func recvName(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.StarExpr:
		return recvName(e.X)
	case *ast.IndexExpr:
		return recvName(e.X)
	case *ast.Ident:
		return e.Name
	}
	return "?"
}

// TestCheckedInFilesUpToDate compares the declarations of the committed
// sources in package tue with freshly generated ones. Run go generate in
// ../../tue if it fails.
func TestCheckedInFilesUpToDate(t *testing.T) {
	g, err := NewGenerator(Config{Package: "tue", Kind: KindAll, Arities: []int{2, 3, 4}}, nil)
	require.NoError(t, err)
	files, err := g.Files()
	require.NoError(t, err)
	require.Len(t, files, 4)

	for _, f := range files {
		t.Run(f.Name, func(t *testing.T) {
			committed, err := os.ReadFile(filepath.Join("..", "..", "tue", f.Name))
			require.NoError(t, err)
			assert.Equal(t, declarations(t, f.Name, committed), declarations(t, f.Name, f.Src))
		})
	}
}

func TestRunWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--kind", "vec", "--arity", "2", "--output", dir})
	require.NoError(t, cmd.Execute())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "vec2_gen.go", entries[0].Name())

	src, err := os.ReadFile(filepath.Join(dir, "vec2_gen.go"))
	require.NoError(t, err)
	assert.NotEmpty(t, declarations(t, "vec2_gen.go", src))
}

func TestRootCommandRejectsBadKind(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--kind", "tensor", "--output", t.TempDir()})
	cmd.SetErr(new(strings.Builder))
	assert.ErrorContains(t, cmd.Execute(), "unknown kind")
}
