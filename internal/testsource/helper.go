// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package testsource loads Go statement fragments for tests.
package testsource

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// Func is a parsed and type-checked function.
type Func struct {
	Fset *token.FileSet
	File *ast.File
	Decl *ast.FuncDecl
	Body inspector.Cursor // Body of Decl
	Info *types.Info
}

// Load wraps src in `func _() { ... }` inside package test, importing the given packages,
// and parses and type checks the result.
func Load(tb testing.TB, src string, imports ...string) Func {
	tb.Helper()

	var file strings.Builder
	file.WriteString("package test\n\n")

	for _, path := range imports {
		fmt.Fprintf(&file, "import %q\n", path)
	}

	fmt.Fprintf(&file, "\nfunc _() {\n%s\n}\n", src)

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", file.String(), parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Can't parse %q: %v", src, err)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Scopes:     make(map[ast.Node]*types.Scope),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Instances:  make(map[*ast.Ident]types.Instance),
	}

	conf := types.Config{Importer: importer.Default()}
	if _, err := conf.Check("test", fset, []*ast.File{f}, info); err != nil {
		tb.Fatalf("Can't type check %q: %v", src, err)
	}

	decl, ok := f.Decls[len(f.Decls)-1].(*ast.FuncDecl)
	if !ok {
		tb.Fatal("Can't find function")
	}

	c, ok := inspector.New([]*ast.File{f}).Root().FindNode(decl)
	if !ok {
		tb.Fatal("Can't find function cursor")
	}

	return Func{Fset: fset, File: f, Decl: decl, Body: c.ChildAt(edge.FuncDecl_Body, -1), Info: info}
}
