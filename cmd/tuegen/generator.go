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
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"text/template"

	"golang.org/x/tools/imports"
)

// Values of Config.Kind.
const (
	KindVec = "vec"
	KindMat = "mat"
	KindAll = "all"
)

// Config selects what the generator writes and where.
type Config struct {
	OutputDir string // Directory the files are written to
	Package   string // Package clause of the generated files
	Kind      string // KindVec, KindMat or KindAll
	Arities   []int  // Vector arities; matrices always need 2, 3 and 4
}

// Generator renders the vector and matrix templates.
type Generator struct {
	Config
	Logger *slog.Logger

	tmpl *template.Template
}

// NewGenerator validates cfg and parses the templates.
func NewGenerator(cfg Config, logger *slog.Logger) (*Generator, error) {
	switch cfg.Kind {
	case KindVec, KindMat, KindAll:
	default:
		return nil, fmt.Errorf("unknown kind %q: want %s, %s or %s", cfg.Kind, KindVec, KindMat, KindAll)
	}
	if cfg.Package == "" {
		return nil, fmt.Errorf("empty package name")
	}
	for _, n := range cfg.Arities {
		if n < 2 || n > 4 {
			return nil, fmt.Errorf("arity %d out of range [2, 4]", n)
		}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	tmpl, err := template.New("tuegen").Funcs(templateFuncs).Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Generator{Config: cfg, Logger: logger, tmpl: tmpl}, nil
}

// File is one generated source file.
type File struct {
	Name string
	Src  []byte
}

// Files renders every file selected by the configuration without writing
// anything.
func (g *Generator) Files() ([]File, error) {
	var files []File
	if g.Kind != KindMat {
		arities := slices.Clone(g.Arities)
		slices.Sort(arities)
		for _, n := range slices.Compact(arities) {
			src, err := g.render("vec", newVecModel(g.Package, n))
			if err != nil {
				return nil, fmt.Errorf("vec%d: %w", n, err)
			}
			files = append(files, File{Name: fmt.Sprintf("vec%d_gen.go", n), Src: src})
		}
	}
	if g.Kind != KindVec {
		src, err := g.render("mat", newMatFileModel(g.Package))
		if err != nil {
			return nil, fmt.Errorf("mat: %w", err)
		}
		files = append(files, File{Name: "mat_gen.go", Src: src})
	}
	return files, nil
}

// Run renders and writes every selected file.
func (g *Generator) Run() error {
	files, err := g.Files()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for _, f := range files {
		path := filepath.Join(g.OutputDir, f.Name)
		if err := os.WriteFile(path, f.Src, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		g.Logger.Debug("wrote file", "path", path, "bytes", len(f.Src))
	}
	g.Logger.Info("generation complete", "files", len(files), "dir", g.OutputDir)
	return nil
}

// render executes the named template and formats the result. Unformattable
// output is a template bug; the raw text is kept in the error to debug it.
func (g *Generator) render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	src, err := imports.Process(name+"_gen.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, buf.String())
	}
	return src, nil
}
