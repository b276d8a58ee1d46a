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

// Package guard provides [controlflow.BarrierGuard] implementations for common validation idioms.
package guard

import (
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/guardflow/internal/callee"
	"fillmore-labs.com/guardflow/internal/controlflow"
)

// Validated returns a barrier on the truthy branch of calls to one of funcs that have
// an argument mentioning one of vars.
func Validated(info *types.Info, funcs callee.Set, vars ...types.Object) controlflow.BarrierGuard {
	objs := objectSet(vars)

	return controlflow.BarrierGuardFunc(func(guard ast.Node, branch bool) bool {
		if !branch {
			return false
		}

		call, ok := unparenExpr(guard).(*ast.CallExpr)
		if !ok || !funcs.Contains(info, call) {
			return false
		}

		for _, arg := range call.Args {
			if mentions(info, arg, objs) {
				return true
			}
		}

		return false
	})
}

// NonNil returns a barrier on the branch where one of vars is known not to be nil,
// the truthy branch of v != nil and the falsy branch of v == nil.
func NonNil(info *types.Info, vars ...types.Object) controlflow.BarrierGuard {
	objs := objectSet(vars)

	return controlflow.BarrierGuardFunc(func(guard ast.Node, branch bool) bool {
		cmp, ok := unparenExpr(guard).(*ast.BinaryExpr)
		if !ok {
			return false
		}

		switch cmp.Op {
		case token.NEQ:
			if !branch {
				return false
			}

		case token.EQL:
			if branch {
				return false
			}

		default:
			return false
		}

		switch {
		case isNil(info, cmp.Y):
			return mentions(info, cmp.X, objs)

		case isNil(info, cmp.X):
			return mentions(info, cmp.Y, objs)

		default:
			return false
		}
	})
}

// Any returns a barrier wherever one of preds reports one.
func Any(preds ...controlflow.BarrierGuard) controlflow.BarrierGuard {
	switch len(preds) {
	case 0:
		return controlflow.NoBarrier

	case 1:
		return preds[0]
	}

	return controlflow.BarrierGuardFunc(func(guard ast.Node, branch bool) bool {
		for _, p := range preds {
			if p.IsBarrierGuard(guard, branch) {
				return true
			}
		}

		return false
	})
}

func objectSet(vars []types.Object) map[types.Object]struct{} {
	objs := make(map[types.Object]struct{}, len(vars))
	for _, v := range vars {
		objs[v] = struct{}{}
	}

	return objs
}

// unparenExpr returns the unparenthesized guard, or nil if it is not an expression.
func unparenExpr(guard ast.Node) ast.Expr {
	e, ok := guard.(ast.Expr)
	if !ok {
		return nil
	}

	return ast.Unparen(e)
}

// mentions reports whether e refers to one of objs.
func mentions(info *types.Info, e ast.Expr, objs map[types.Object]struct{}) bool {
	found := false

	ast.Inspect(e, func(n ast.Node) bool {
		if found {
			return false
		}

		switch n := n.(type) {
		case *ast.Ident:
			if _, ok := objs[info.Uses[n]]; ok {
				found = true
			}

		case *ast.FuncLit:
			return false
		}

		return true
	})

	return found
}

func isNil(info *types.Info, e ast.Expr) bool {
	if tv, ok := info.Types[e]; ok && tv.IsNil() {
		return true
	}

	id, ok := ast.Unparen(e).(*ast.Ident)
	if !ok {
		return false
	}

	_, ok = info.Uses[id].(*types.Nil)

	return ok
}
