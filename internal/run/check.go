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
	"fmt"
	"go/ast"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/guardflow/internal/astutil"
	"fillmore-labs.com/guardflow/internal/callee"
	"fillmore-labs.com/guardflow/internal/config"
	"fillmore-labs.com/guardflow/internal/controlflow"
	"fillmore-labs.com/guardflow/internal/controlflow/build"
	"fillmore-labs.com/guardflow/internal/guard"
)

// analyze runs the enabled checks on a single function.
// Diagnostics are returned, not reported, so functions can be analyzed concurrently.
func (r *Options) analyze(ctx context.Context, p *analysis.Pass, pol policy, fun function) (diagnostics []analysis.Diagnostic) {
	defer trace.StartRegion(ctx, "Function").End()

	defer func() {
		if err := recover(); err != nil {
			diagnostics = append(diagnostics, analysis.Diagnostic{
				Pos:     fun.pos.Pos(),
				End:     fun.pos.End(),
				Message: fmt.Sprintf("Internal Error: analyzing %s: %v", fun.name, err),
			})
		}
	}()

	body := fun.body.Node().(*ast.BlockStmt)
	s := controlflow.NewSummary(build.Build(ctx, p.TypesInfo, body))

	if r.Checks.Enabled(config.ComplexityCheck) {
		if d, ok := complexity(s, pol.maxComplexity, fun); ok {
			diagnostics = append(diagnostics, d)
		}
	}

	if r.Checks.Enabled(config.UnguardedCheck) && len(pol.sinks) > 0 {
		diagnostics = append(diagnostics, r.unguarded(ctx, p, s, pol, fun)...)
	}

	return diagnostics
}

// complexity reports functions exceeding the maximum cyclomatic complexity.
//
// Every condition node is a binary decision, so the complexity is the number of reachable
// condition nodes plus one.
func complexity(s controlflow.Summary, maxComplexity int, fun function) (analysis.Diagnostic, bool) {
	c := s.ConditionNodeCount() + 1
	if c <= maxComplexity {
		return analysis.Diagnostic{}, false
	}

	return analysis.Diagnostic{
		Pos:     fun.pos.Pos(),
		End:     fun.pos.End(),
		Message: fmt.Sprintf("function %s has cyclomatic complexity %d (> %d), %d exits", fun.name, c, maxComplexity, s.ExitCount()),
	}, true
}

// unguarded reports sink arguments referencing variables that reach the sink call
// on a path not passing a guard validating them or one of their aliases.
func (r *Options) unguarded(ctx context.Context, p *analysis.Pass, s controlflow.Summary, pol policy, fun function) []analysis.Diagnostic {
	defer trace.StartRegion(ctx, "Unguarded").End()

	var diagnostics []analysis.Diagnostic

	aliases := guard.NewAliases(p.TypesInfo, fun.body.Node(), guard.Propagated(p.TypesInfo, pol.propagators))
	nilGuards := r.Behavior.Enabled(config.NilGuards)

	filter := []ast.Node{(*ast.FuncLit)(nil), (*ast.CallExpr)(nil)}
	fun.body.Inspect(filter, func(c inspector.Cursor) bool {
		call, ok := c.Node().(*ast.CallExpr)
		if !ok {
			return false // function literals are analyzed separately
		}

		if !pol.sinks.Contains(p.TypesInfo, call) || fun.file.NoLintComment(call) {
			return true
		}

		point, ok := codePoint(s.Graph(), c)
		if !ok {
			return true // unreachable code
		}

		sink, _ := callee.NameOf(p.TypesInfo, call)

		for _, arg := range call.Args {
			for v := range astutil.AllLocalVars(p.TypesInfo, arg) {
				vars := aliases.Of(v)

				pred := guard.Validated(p.TypesInfo, pol.guards, vars...)
				if nilGuards && nillable(v.Type()) {
					pred = guard.Any(pred, guard.NonNil(p.TypesInfo, vars...))
				}

				if !s.Reaches(pred, point) {
					continue
				}

				diagnostics = append(diagnostics, analysis.Diagnostic{
					Pos:     arg.Pos(),
					End:     arg.End(),
					Message: fmt.Sprintf("argument %s reaches %s without passing a guard", v.Name(), sink),
				})
			}
		}

		return true
	})

	return diagnostics
}

// codePoint returns the innermost code point of the graph enclosing the cursor.
func codePoint(g *controlflow.Graph, c inspector.Cursor) (ast.Node, bool) {
	for ; c.Node() != nil; c = c.Parent() {
		n := c.Node()
		if _, ok := g.BlockOf(n); ok {
			return n, true
		}

		if _, ok := n.(*ast.FuncDecl); ok {
			break
		}
	}

	return nil, false
}

// nillable reports whether values of type t can be compared to nil.
func nillable(t types.Type) bool {
	switch t.Underlying().(type) {
	case *types.Pointer, *types.Interface, *types.Map, *types.Slice, *types.Chan, *types.Signature:
		return true

	default:
		return false
	}
}
