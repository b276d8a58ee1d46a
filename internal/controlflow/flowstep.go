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

package controlflow

import "go/ast"

// FlowStep relates two expressions whose values are derived from each other outside of plain
// assignment, like the argument and the result of a cleaning function.
//
// IsAdditionalFlowStep must be a pure function of its arguments.
type FlowStep interface {
	IsAdditionalFlowStep(from, to ast.Expr) bool
}

// FlowStepFunc adapts a function to a [FlowStep].
type FlowStepFunc func(from, to ast.Expr) bool

// IsAdditionalFlowStep calls f(from, to).
func (f FlowStepFunc) IsAdditionalFlowStep(from, to ast.Expr) bool {
	return f(from, to)
}

// NoFlowStep is a [FlowStep] that relates no expressions.
var NoFlowStep FlowStep = FlowStepFunc(func(ast.Expr, ast.Expr) bool { return false })
