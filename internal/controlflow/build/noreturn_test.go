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

package build

import (
	"fmt"
	"go/ast"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/analysistest"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

func TestCantReturn(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	testAnalyzer := &analysis.Analyzer{
		Name:     "noreturn",
		Doc:      "test non-returning calls",
		Run:      noReturnRun,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	analysistest.Run(t, testdata, testAnalyzer, "./noreturn")
}

func noReturnRun(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("result of %s missing", inspect.Analyzer.Name)
	}

	for c := range in.Root().Preorder((*ast.ExprStmt)(nil)) {
		call, ok := c.Node().(*ast.ExprStmt).X.(*ast.CallExpr)
		if !ok || !cantReturn(p.TypesInfo, call) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:     call.Pos(),
			End:     call.End(),
			Message: "Call never returns",
		})
	}

	return any(nil), nil
}
