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

package guard_test

import (
	"go/ast"
	"go/types"
	"slices"
	"testing"

	"fillmore-labs.com/guardflow/internal/callee"
	"fillmore-labs.com/guardflow/internal/controlflow"
	"fillmore-labs.com/guardflow/internal/testsource"

	. "fillmore-labs.com/guardflow/internal/guard"
)

func TestAliases(t *testing.T) {
	t.Parallel()

	fn := testsource.Load(t, `
	var p string
	q := filepath.Clean(p)
	r := (q)
	s, err := filepath.Abs(r)
	var up = strings.ToUpper(p)
	n := len(p)
	f := func() { w := p; _ = w }
	_, _, _, _, _ = s, err, up, n, f
	`, "path/filepath", "strings")

	propagators, err := callee.ParseFuncNames([]string{"path/filepath.Clean", "path/filepath.Abs"})
	if err != nil {
		t.Fatalf("Can't parse propagators: %v", err)
	}

	objs := make(map[string]types.Object)
	for id, obj := range fn.Info.Defs {
		if obj != nil {
			objs[id.Name] = obj
		}
	}

	tests := []struct {
		name string
		step controlflow.FlowStep
		from string
		want []string
	}{
		{"propagated", Propagated(fn.Info, propagators), "p", []string{"p", "q", "r", "s"}},
		{"reverse", Propagated(fn.Info, propagators), "s", []string{"p", "q", "r", "s"}},
		{"unrelated", Propagated(fn.Info, propagators), "up", []string{"up"}},
		{"copies only", controlflow.NoFlowStep, "q", []string{"q", "r"}},
		{"no propagators", Propagated(fn.Info, nil), "p", []string{"p"}},
		{"function literal", Propagated(fn.Info, propagators), "w", []string{"w"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := objs[tt.from]
			if v == nil {
				t.Fatalf("Can't find variable %s", tt.from)
			}

			aliases := NewAliases(fn.Info, fn.Decl.Body, tt.step).Of(v)
			if aliases[0] != v {
				t.Errorf("Of(%s) starts with %s", tt.from, aliases[0].Name())
			}

			got := make([]string, 0, len(aliases))
			for _, a := range aliases {
				got = append(got, a.Name())
			}

			slices.Sort(got)

			if !slices.Equal(got, tt.want) {
				t.Errorf("Of(%s) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestValidatedAliases(t *testing.T) {
	t.Parallel()

	guards, err := callee.ParseFuncNames([]string{"path/filepath.IsLocal"})
	if err != nil {
		t.Fatalf("Can't parse guards: %v", err)
	}

	propagators, err := callee.ParseFuncNames([]string{"path/filepath.Clean"})
	if err != nil {
		t.Fatalf("Can't parse propagators: %v", err)
	}

	const (
		checkCleaned = `var v string
			q := filepath.Clean(v)
			if !filepath.IsLocal(q) {
				return
			}
			os.Open(v)`
		openCleaned = `var v string
			if !filepath.IsLocal(v) {
				return
			}
			q := filepath.Clean(v)
			os.Open(q)`
	)

	tests := []struct {
		name        string
		src         string
		propagators callee.Set
		want        bool
	}{
		{"guard on cleaned", checkCleaned, propagators, false},
		{"guard on cleaned without propagators", checkCleaned, nil, true},
		{"sink on cleaned", openCleaned, propagators, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fn := testsource.Load(t, tt.src, "os", "path/filepath")

			var call *ast.CallExpr

			ast.Inspect(fn.Decl.Body, func(n ast.Node) bool {
				if c, ok := n.(*ast.CallExpr); ok && call == nil {
					if sel, ok := c.Fun.(*ast.SelectorExpr); ok && sel.Sel.Name == "Open" {
						call = c
					}
				}

				return true
			})

			if call == nil {
				t.Fatal("Can't find call to os.Open")
			}

			arg, ok := call.Args[0].(*ast.Ident)
			if !ok {
				t.Fatalf("Expected identifier argument, got %T", call.Args[0])
			}

			aliases := NewAliases(fn.Info, fn.Decl.Body, Propagated(fn.Info, tt.propagators))
			pred := Validated(fn.Info, guards, aliases.Of(fn.Info.Uses[arg])...)

			if got := reach(t, fn, pred, call); got != tt.want {
				t.Errorf("Reaches = %t, want %t", got, tt.want)
			}
		})
	}
}
