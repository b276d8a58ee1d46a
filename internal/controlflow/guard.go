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

// BarrierGuard decides whether taking a branch out of a condition node blocks propagation.
//
// IsBarrierGuard is called with the guard of a condition node and the branch taken, true for the
// truthy and false for the falsy successor. It must be a pure function of its arguments.
type BarrierGuard interface {
	IsBarrierGuard(guard ast.Node, branch bool) bool
}

// BarrierGuardFunc adapts a function to a [BarrierGuard].
type BarrierGuardFunc func(guard ast.Node, branch bool) bool

// IsBarrierGuard calls f(guard, branch).
func (f BarrierGuardFunc) IsBarrierGuard(guard ast.Node, branch bool) bool {
	return f(guard, branch)
}

// NoBarrier is a [BarrierGuard] that never blocks a branch.
var NoBarrier BarrierGuard = BarrierGuardFunc(func(ast.Node, bool) bool { return false })
