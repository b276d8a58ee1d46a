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

package astutil

import (
	"go/ast"
	"go/types"
	"iter"
)

// AllLocalVars yields the distinct local variables and parameters referenced in e,
// in order of first use. Function literals are not entered.
func AllLocalVars(info *types.Info, e ast.Expr) iter.Seq[*types.Var] {
	return func(yield func(*types.Var) bool) {
		seen := make(map[*types.Var]struct{})
		done := false

		ast.Inspect(e, func(n ast.Node) bool {
			if done {
				return false
			}

			switch n := n.(type) {
			case *ast.FuncLit:
				return false

			case *ast.Ident:
				v, ok := info.Uses[n].(*types.Var)
				if !ok || v.IsField() || isPackageLevel(v) {
					return true
				}

				if _, ok := seen[v]; ok {
					return true
				}

				seen[v] = struct{}{}
				done = !yield(v)
			}

			return !done
		})
	}
}

func isPackageLevel(v *types.Var) bool {
	pkg := v.Pkg()

	return pkg != nil && v.Parent() == pkg.Scope()
}
