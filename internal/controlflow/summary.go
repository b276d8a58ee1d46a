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

import (
	"go/ast"

	"github.com/bits-and-blooms/bitset"
)

// Summary answers reachability queries over a [Graph].
//
// A Summary has no mutable state; all queries are pure functions of the graph and the supplied
// [BarrierGuard], so one Summary can serve concurrent queries.
type Summary struct {
	g *Graph
}

// NewSummary returns a [Summary] for the finished graph g.
func NewSummary(g *Graph) Summary {
	return Summary{g: g}
}

// Graph returns the summarized graph.
func (s Summary) Graph() *Graph { return s.g }

// BasicBlocks returns the basic blocks reachable from Start, ignoring guards.
func (s Summary) BasicBlocks() NodeSet {
	return nodeSetOf(s.g, s.walk(s.g.Successors), BasicBlock)
}

// ConditionNodes returns the condition nodes reachable from Start, ignoring guards.
func (s Summary) ConditionNodes() NodeSet {
	return nodeSetOf(s.g, s.walk(s.g.Successors), Condition)
}

// ReachableBasicBlocks returns the basic blocks reachable from Start when every branch
// the predicate reports as a barrier is pruned.
//
// The truthy and falsy branch of each condition node are checked independently, so both,
// one or neither of them may be pruned.
func (s Summary) ReachableBasicBlocks(predicate BarrierGuard) NodeSet {
	return nodeSetOf(s.g, s.walk(s.guarded(predicate)), BasicBlock)
}

// CodePoints is a set of code points.
type CodePoints map[ast.Node]struct{}

// Contains reports whether p is a member of the set.
func (c CodePoints) Contains(p ast.Node) bool {
	_, ok := c[p]

	return ok
}

// Len returns the number of members.
func (c CodePoints) Len() int { return len(c) }

// ExecutableCodePoints returns the code points of all basic blocks reachable under predicate.
func (s Summary) ExecutableCodePoints(predicate BarrierGuard) CodePoints {
	points := make(CodePoints)

	for b := range s.ReachableBasicBlocks(predicate).All() {
		for _, p := range s.g.CodePoints(b) {
			points[p] = struct{}{}
		}
	}

	return points
}

// ReachableExpressions returns the executable code points under predicate that are expressions.
func (s Summary) ReachableExpressions(predicate BarrierGuard) map[ast.Expr]struct{} {
	exprs := make(map[ast.Expr]struct{})

	for p := range s.ExecutableCodePoints(predicate) {
		if e, ok := p.(ast.Expr); ok {
			exprs[e] = struct{}{}
		}
	}

	return exprs
}

// Reaches reports whether code point p is executable under predicate.
func (s Summary) Reaches(predicate BarrierGuard, p ast.Node) bool {
	b, ok := s.g.BlockOf(p)
	if !ok {
		return false
	}

	return s.walk(s.guarded(predicate)).Test(uint(b))
}

// BasicBlockCount returns the number of basic blocks reachable from Start.
func (s Summary) BasicBlockCount() int {
	return s.BasicBlocks().Len()
}

// ConditionNodeCount returns the number of condition nodes reachable from Start.
func (s Summary) ConditionNodeCount() int {
	return s.ConditionNodes().Len()
}

// ExitCount returns the number of distinct nodes leading to End.
func (s Summary) ExitCount() int {
	return len(s.g.Predecessors(s.g.End()))
}

// guarded returns the successor function for a traversal pruned by predicate.
func (s Summary) guarded(predicate BarrierGuard) func(NodeID) []NodeID {
	return func(n NodeID) []NodeID {
		if s.g.Kind(n) != Condition {
			return s.g.Successors(n)
		}

		guard, next := s.g.Guard(n), make([]NodeID, 0, 2)

		if !predicate.IsBarrierGuard(guard, true) {
			next = append(next, s.g.Truthy(n))
		}

		if !predicate.IsBarrierGuard(guard, false) {
			next = append(next, s.g.Falsy(n))
		}

		return next
	}
}

// walk visits all nodes reachable from Start using next as successor function.
// Each node is expanded at most once, End is never expanded.
func (s Summary) walk(next func(NodeID) []NodeID) *bitset.BitSet {
	visited := bitset.New(uint(s.g.Len()))
	stack := []NodeID{s.g.Start()}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited.Test(uint(n)) {
			continue
		}

		visited.Set(uint(n))

		if s.g.Kind(n) == End {
			continue
		}

		for _, succ := range next(n) {
			if !visited.Test(uint(succ)) {
				stack = append(stack, succ)
			}
		}
	}

	return visited
}
