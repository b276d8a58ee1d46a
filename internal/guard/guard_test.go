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
	"testing"

	"fillmore-labs.com/guardflow/internal/callee"
	"fillmore-labs.com/guardflow/internal/controlflow"
	"fillmore-labs.com/guardflow/internal/controlflow/build"
	"fillmore-labs.com/guardflow/internal/testsource"

	. "fillmore-labs.com/guardflow/internal/guard"
)

// reaches builds src and reports whether the first call to a function called sink is executable
// under the predicate returned by pred for the variable v.
func reaches(t *testing.T, src, sink string, pred func(*types.Info, types.Object) controlflow.BarrierGuard, imports ...string) bool {
	t.Helper()

	fn := testsource.Load(t, src, imports...)

	var (
		v    types.Object
		call *ast.CallExpr
	)

	ast.Inspect(fn.Decl.Body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Ident:
			if obj := fn.Info.Defs[n]; obj != nil && n.Name == "v" && v == nil {
				v = obj
			}

		case *ast.CallExpr:
			var name string
			switch f := n.Fun.(type) {
			case *ast.Ident:
				name = f.Name
			case *ast.SelectorExpr:
				name = f.Sel.Name
			}

			if name == sink && call == nil {
				call = n
			}
		}

		return true
	})

	if v == nil || call == nil {
		t.Fatalf("Can't find variable v or call %s in %q", sink, src)
	}

	return reach(t, fn, pred(fn.Info, v), call)
}

// reach reports whether call is executable in fn under pred.
func reach(t *testing.T, fn testsource.Func, pred controlflow.BarrierGuard, call ast.Node) bool {
	t.Helper()

	s := controlflow.NewSummary(build.Build(t.Context(), fn.Info, fn.Decl.Body))

	return s.Reaches(pred, call)
}

func TestValidated(t *testing.T) {
	t.Parallel()

	guards, err := callee.ParseFuncNames([]string{"path/filepath.IsLocal", "io/fs.ValidPath"})
	if err != nil {
		t.Fatalf("Can't parse guards: %v", err)
	}

	validated := func(info *types.Info, v types.Object) controlflow.BarrierGuard {
		return Validated(info, guards, v)
	}

	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"unchecked", `var v string
			os.Open(v)`, true},
		{"early return", `var v string
			if !filepath.IsLocal(v) {
				return
			}
			os.Open(v)`, false},
		{"inside branch", `var v string
			if filepath.IsLocal(v) {
				os.Open(v)
			}`, false},
		{"else branch", `var v string
			if filepath.IsLocal(v) {
				return
			} else {
				os.Open(v)
			}`, true},
		{"other variable", `var v, w string
			if filepath.IsLocal(w) {
				os.Open(v)
			}`, true},
		{"nested argument", `var v string
			if filepath.IsLocal(filepath.Clean(v)) && len(v) > 0 {
				os.Open(v)
			}`, false},
		{"alternative", `var v string
			var ok bool
			if filepath.IsLocal(v) || ok {
				os.Open(v)
			}`, true},
		{"second guard", `var v string
			if !fs.ValidPath(v) {
				panic(v)
			}
			os.Open(filepath.FromSlash(v))`, false},
		{"loop", `var v string
			for !filepath.IsLocal(v) {
				v = filepath.Base(v)
			}
			os.Open(v)`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := tt.src + "\n_, _ = fs.ValidPath, filepath.IsLocal"
			if got := reaches(t, src, "Open", validated, "io/fs", "os", "path/filepath"); got != tt.want {
				t.Errorf("Reaches = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestNonNil(t *testing.T) {
	t.Parallel()

	nonNil := func(info *types.Info, v types.Object) controlflow.BarrierGuard {
		return NonNil(info, v)
	}

	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"not equal", `var v *int
			if v != nil {
				println(*v)
			}`, false},
		{"equal", `var v *int
			if v == nil {
				return
			}
			println(*v)`, false},
		{"reversed", `var v *int
			if nil != v {
				println(*v)
			}`, false},
		{"nil branch", `var v *int
			if v == nil {
				println(v)
			}`, true},
		{"unrelated", `var v, w *int
			if w != nil {
				println(*v)
			}`, true},
		{"not a comparison", `var v *int
			var ok bool
			if ok {
				println(*v)
			}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := reaches(t, tt.src, "println", nonNil); got != tt.want {
				t.Errorf("Reaches = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestAny(t *testing.T) {
	t.Parallel()

	truthy := controlflow.BarrierGuardFunc(func(_ ast.Node, branch bool) bool { return branch })
	falsy := controlflow.BarrierGuardFunc(func(_ ast.Node, branch bool) bool { return !branch })

	guard := ast.NewIdent("g")

	tests := []struct {
		name          string
		pred          controlflow.BarrierGuard
		truthy, falsy bool
	}{
		{"none", Any(), false, false},
		{"single", Any(truthy), true, false},
		{"both", Any(truthy, falsy), true, true},
		{"no barrier", Any(controlflow.NoBarrier, falsy), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.pred.IsBarrierGuard(guard, true); got != tt.truthy {
				t.Errorf("IsBarrierGuard(true) = %t, want %t", got, tt.truthy)
			}

			if got := tt.pred.IsBarrierGuard(guard, false); got != tt.falsy {
				t.Errorf("IsBarrierGuard(false) = %t, want %t", got, tt.falsy)
			}
		})
	}
}
