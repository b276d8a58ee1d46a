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
	"fmt"
	"go/ast"
)

// NodeID is a handle to a node in a [Graph].
type NodeID uint32

// Handles of the two nodes every graph has.
const (
	startNode NodeID = 0
	endNode   NodeID = 1
)

// Graph is an immutable control-flow graph of a single function.
//
// Nodes are owned by the graph and referenced by [NodeID]. Graphs are created by [Builder.Finish]
// and are safe for concurrent reads.
type Graph struct {
	nodes  []node
	blocks map[ast.Node]NodeID // Code point -> owning basic block
}

// node is the arena representation of a control-flow node.
type node struct {
	kind Kind

	// Distinct successors and predecessors.
	succs, preds []NodeID

	// Condition nodes only: the truthy and falsy successor and the tested guard.
	truthy, falsy NodeID
	guard         ast.Node

	// Basic blocks only: the code points in program order.
	points []ast.Node
}

// Start returns the entry node.
func (g *Graph) Start() NodeID { return startNode }

// End returns the exit node.
func (g *Graph) End() NodeID { return endNode }

// Len returns the number of nodes in the graph, including Start and End.
func (g *Graph) Len() int { return len(g.nodes) }

// Kind returns the variant of node n.
func (g *Graph) Kind(n NodeID) Kind { return g.nodes[n].kind }

// Successors returns the distinct nodes directly reachable from n by one edge.
//
// For a condition node this is the set of its truthy and falsy successor,
// which has a single element when both branches lead to the same node.
func (g *Graph) Successors(n NodeID) []NodeID { return g.nodes[n].succs }

// Predecessors returns the distinct nodes with an edge to n.
func (g *Graph) Predecessors(n NodeID) []NodeID { return g.nodes[n].preds }

// Truthy returns the successor taken when the guard of condition node n holds.
func (g *Graph) Truthy(n NodeID) NodeID { return g.condition(n).truthy }

// Falsy returns the successor taken when the guard of condition node n does not hold.
func (g *Graph) Falsy(n NodeID) NodeID { return g.condition(n).falsy }

// Guard returns the tested guard of condition node n.
func (g *Graph) Guard(n NodeID) ast.Node { return g.condition(n).guard }

// CodePoints returns the code points of basic block n in program order.
func (g *Graph) CodePoints(n NodeID) []ast.Node {
	nd := &g.nodes[n]
	if nd.kind != BasicBlock {
		panic(fmt.Sprintf("node %d is a %s, not a basic block", n, nd.kind))
	}

	return nd.points
}

// BlockOf returns the basic block containing code point p.
func (g *Graph) BlockOf(p ast.Node) (NodeID, bool) {
	n, ok := g.blocks[p]

	return n, ok
}

func (g *Graph) condition(n NodeID) *node {
	nd := &g.nodes[n]
	if nd.kind != Condition {
		panic(fmt.Sprintf("node %d is a %s, not a condition", n, nd.kind))
	}

	return nd
}
