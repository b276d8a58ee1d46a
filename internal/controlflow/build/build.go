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

// Package build constructs [controlflow.Graph]s from Go function bodies.
//
// Statements are code points of basic blocks. Expression statements contribute their expression,
// so calls are directly visible as reachable expressions. Boolean conditions of if, for and tagless
// switch statements are decomposed along &&, || and ! into condition nodes testing the operands.
// Other branches test the deciding clause or statement:
//
//   - *[ast.CaseClause] for tagged and type switches, truthy when the case matches
//   - *[ast.CommClause] for select statements, truthy when the clause is chosen
//   - *[ast.RangeStmt] for range loops, truthy for the next iteration
//
// Function literals are separate functions and not part of the enclosing graph.
package build

import (
	"context"
	"go/ast"
	"go/types"
	"runtime/trace"

	"fillmore-labs.com/guardflow/internal/controlflow"
)

// Build constructs the control-flow graph for the given function body.
// info is used to detect calls that can't return and may be nil.
func Build(ctx context.Context, info *types.Info, body *ast.BlockStmt) *controlflow.Graph {
	if body == nil {
		return nil
	}

	defer trace.StartRegion(ctx, "Graph").End()

	b := builder{
		Builder: controlflow.NewBuilder(),
		info:    info,
		labels:  make(map[string]*label),
	}

	entry := b.NewBlock()
	b.Link(b.Start(), entry)

	last := b.appendStmtList(entry, body.List)
	b.Link(last, b.End()) // implicit return at the end of the body

	return b.Finish()
}
