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

// Command tuegen generates the arity-repeated sources of package tue: one
// file per vector arity and one file with every matrix shape.
//
// Usage:
//
//	tuegen --kind all --output ../tue
//	tuegen --kind vec --arity 2,3 --output /tmp/out -v
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/tuegen --kind all --output .
//
// The generated files are vec2_gen.go, vec3_gen.go, vec4_gen.go and
// mat_gen.go. They are formatted and import-checked before being written.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		cfg     Config
		verbose bool
	)
	cmd := &cobra.Command{
		Use:          "tuegen",
		Short:        "Generate the vector and matrix sources of package tue",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			gen, err := NewGenerator(cfg, logger)
			if err != nil {
				return err
			}
			return gen.Run()
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.OutputDir, "output", "o", ".", "directory the generated files are written to")
	flags.StringVar(&cfg.Package, "package", "tue", "package clause of the generated files")
	flags.StringVar(&cfg.Kind, "kind", KindAll, "what to generate: vec, mat or all")
	flags.IntSliceVar(&cfg.Arities, "arity", []int{2, 3, 4}, "vector arities to generate (2 to 4)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every generated file")
	return cmd
}
