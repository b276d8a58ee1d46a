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

package guard

import (
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/guardflow/internal/callee"
	"fillmore-labs.com/guardflow/internal/controlflow"
)

// Propagated returns a flow step from an argument of a call to one of funcs into the call.
func Propagated(info *types.Info, funcs callee.Set) controlflow.FlowStep {
	if len(funcs) == 0 {
		return controlflow.NoFlowStep
	}

	return controlflow.FlowStepFunc(func(from, to ast.Expr) bool {
		call, ok := ast.Unparen(to).(*ast.CallExpr)
		if !ok || !funcs.Contains(info, call) {
			return false
		}

		for _, arg := range call.Args {
			if ast.Unparen(arg) == from {
				return true
			}
		}

		return false
	})
}

// Aliases groups the local variables of a function body connected by assignments.
//
// An assignment x = e connects x with y when e is y, or when step relates a use of y in e to e.
// Connections are symmetric, a guard on either variable counts for both.
type Aliases struct {
	edges map[types.Object][]types.Object
}

// NewAliases collects the assignments in body. Function literals are not entered.
func NewAliases(info *types.Info, body ast.Node, step controlflow.FlowStep) Aliases {
	a := Aliases{edges: make(map[types.Object][]types.Object)}

	connect := func(lhs ast.Expr, rhs ast.Expr) {
		x := localVar(info, lhs)
		if x == nil {
			return
		}

		if y := localVar(info, rhs); y != nil {
			a.add(x, y)

			return
		}

		ast.Inspect(rhs, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.FuncLit:
				return false

			case *ast.Ident:
				if y := localVar(info, n); y != nil && step.IsAdditionalFlowStep(n, rhs) {
					a.add(x, y)
				}
			}

			return true
		})
	}

	pairs := func(lhs, rhs []ast.Expr) {
		switch {
		case len(lhs) == len(rhs):
			for i := range lhs {
				connect(lhs[i], rhs[i])
			}

		case len(rhs) == 1 && len(lhs) > 0: // x, err := f(y)
			connect(lhs[0], rhs[0])
		}
	}

	ast.Inspect(body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncLit:
			return false

		case *ast.AssignStmt:
			if n.Tok == token.ASSIGN || n.Tok == token.DEFINE {
				pairs(n.Lhs, n.Rhs)
			}

		case *ast.ValueSpec:
			names := make([]ast.Expr, len(n.Names))
			for i, id := range n.Names {
				names[i] = id
			}

			pairs(names, n.Values)
		}

		return true
	})

	return a
}

func (a Aliases) add(x, y types.Object) {
	if x == y {
		return
	}

	a.edges[x] = append(a.edges[x], y)
	a.edges[y] = append(a.edges[y], x)
}

// Of returns v and all variables connected to it, v first.
func (a Aliases) Of(v types.Object) []types.Object {
	group := []types.Object{v}
	seen := map[types.Object]struct{}{v: {}}

	for i := 0; i < len(group); i++ {
		for _, w := range a.edges[group[i]] {
			if _, ok := seen[w]; ok {
				continue
			}

			seen[w] = struct{}{}
			group = append(group, w)
		}
	}

	return group
}

// localVar returns the function-local variable e denotes, or nil.
func localVar(info *types.Info, e ast.Expr) types.Object {
	id, ok := ast.Unparen(e).(*ast.Ident)
	if !ok {
		return nil
	}

	obj := info.ObjectOf(id)

	v, ok := obj.(*types.Var)
	if !ok || v.IsField() || v.Parent() == nil {
		return nil
	}

	if pkg := v.Pkg(); pkg != nil && v.Parent() == pkg.Scope() {
		return nil
	}

	return v
}
