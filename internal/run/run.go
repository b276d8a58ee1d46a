// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"runtime"
	"runtime/trace"
	"strconv"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/guardflow/internal/astutil"
	"fillmore-labs.com/guardflow/internal/config"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// function is a function body to analyze.
type function struct {
	name string           // Name for diagnostics
	pos  analysis.Range   // Position of complexity diagnostics
	body inspector.Cursor // The function body
	file astutil.CurrentFile
}

// Run executes the guardflow analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("guardflow: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	pol, err := r.resolve()
	if err != nil {
		return nil, fmt.Errorf("guardflow: %w", err)
	}

	if r.Checks.Empty() {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "GuardFlow")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	functions := r.functions(p, in)

	// Analyze all functions concurrently, diagnostics are collected per function
	results := make([][]analysis.Diagnostic, len(functions))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, fun := range functions {
		g.Go(func() error {
			results[i] = r.analyze(ctx, p, pol, fun)

			return nil
		})
	}

	_ = g.Wait() // analyze never fails

	for _, diagnostics := range results {
		for _, d := range diagnostics {
			p.Report(d)
		}
	}

	return nil, nil
}

// functions collects the function bodies to analyze, in source order.
func (r *Options) functions(p *analysis.Pass, in *inspector.Inspector) []function {
	var (
		functions []function
		globals   int // package level function literals
	)

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		// Loop over all top-level declarations in this file
		for d := range f.Children() {
			switch decl := d.Node().(type) {
			case *ast.FuncDecl:
				if decl.Body == nil || astutil.DocHasNoLint(decl.Doc) {
					continue
				}

				name := decl.Name.Name
				body := d.ChildAt(edge.FuncDecl_Body, -1)

				functions = append(functions, function{name: name, pos: decl.Name, body: body, file: currentFile})
				var n int
				functions = appendLiterals(functions, body, name+".func", &n, currentFile)

			case *ast.GenDecl:
				if decl.Tok != token.VAR || astutil.DocHasNoLint(decl.Doc) {
					continue
				}

				// package level function literals, named like the compiler does
				functions = appendLiterals(functions, d, "glob..func", &globals, currentFile)
			}
		}
	}

	return functions
}

// appendLiterals appends the function literals directly inside c, numbered in source order
// after prefix, continuing at *n. Nested literals are numbered per enclosing literal, like outer.func1.1.
func appendLiterals(functions []function, c inspector.Cursor, prefix string, n *int, file astutil.CurrentFile) []function {
	for l := range c.Preorder((*ast.FuncLit)(nil)) {
		if enclosingLiteral(l, c) {
			continue
		}

		*n++
		name := prefix + strconv.Itoa(*n)
		body := l.ChildAt(edge.FuncLit_Body, -1)

		var nested int
		functions = append(functions, function{name: name, pos: l.Node().(*ast.FuncLit).Type, body: body, file: file})
		functions = appendLiterals(functions, body, name+".", &nested, file)
	}

	return functions
}

// enclosingLiteral reports whether l is nested in another function literal below root.
func enclosingLiteral(l, root inspector.Cursor) bool {
	for p := l.Parent(); p != root; p = p.Parent() {
		if _, ok := p.Node().(*ast.FuncLit); ok {
			return true
		}
	}

	return false
}
