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

// Package callee resolves the functions called at call sites and names them.
package callee

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// Set is a set of qualified function names.
type Set map[FuncName]struct{}

// Contains reports whether the function called by call is in the set.
func (s Set) Contains(info *types.Info, call *ast.CallExpr) bool {
	if len(s) == 0 {
		return false
	}

	name, ok := NameOf(info, call)
	if !ok {
		return false
	}

	_, ok = s[name]

	return ok
}

// NameOf returns the qualified name of the function or method statically called by call.
// Calls of builtins, function values and type conversions have no name.
func NameOf(info *types.Info, call *ast.CallExpr) (FuncName, bool) {
	fun, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok {
		return FuncName{}, false
	}

	return FuncNameOf(fun), true
}

// IsBuiltin reports whether call calls the universe builtin named name.
func IsBuiltin(info *types.Info, call *ast.CallExpr, name string) bool {
	b, ok := typeutil.Callee(info, call).(*types.Builtin)

	return ok && b == types.Universe.Lookup(name)
}
