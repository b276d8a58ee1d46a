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
	"slices"
)

// Builder assembles a [Graph].
//
// Nodes are created unlinked. Basic blocks and Start get exactly one successor with [Builder.Link],
// condition nodes get two with [Builder.LinkBranch]. Misuse is a programming error and panics.
type Builder struct {
	nodes []draft
}

// draft is a node under construction.
type draft struct {
	kind   Kind
	linked bool

	next, falsy NodeID // next is the only successor, or the truthy successor of a condition
	guard       ast.Node
	points      []ast.Node
}

// NewBuilder returns a [Builder] containing only the Start and End node.
func NewBuilder() *Builder {
	return &Builder{nodes: []draft{startNode: {kind: Start}, endNode: {kind: End}}}
}

// Start returns the entry node.
func (b *Builder) Start() NodeID { return startNode }

// End returns the exit node.
func (b *Builder) End() NodeID { return endNode }

// NewBlock creates a new basic block with the given code points.
func (b *Builder) NewBlock(points ...ast.Node) NodeID {
	return b.add(draft{kind: BasicBlock, points: points})
}

// NewCondition creates a new condition node testing guard.
func (b *Builder) NewCondition(guard ast.Node) NodeID {
	return b.add(draft{kind: Condition, guard: guard})
}

// AddCodePoint appends a code point to basic block n.
func (b *Builder) AddCodePoint(n NodeID, p ast.Node) {
	d := b.draft(n, BasicBlock)
	d.points = append(d.points, p)
}

// Link sets the unconditional successor of Start or a basic block.
func (b *Builder) Link(from, to NodeID) {
	d := &b.nodes[from]
	switch {
	case d.kind != Start && d.kind != BasicBlock:
		panic(fmt.Sprintf("can't link %s node %d unconditionally", d.kind, from))

	case d.linked:
		panic(fmt.Sprintf("%s node %d is already linked", d.kind, from))
	}

	b.checkTarget(to)

	d.next, d.linked = to, true
}

// LinkBranch sets the truthy and falsy successor of condition node cond.
func (b *Builder) LinkBranch(cond, truthy, falsy NodeID) {
	d := b.draft(cond, Condition)
	if d.linked {
		panic(fmt.Sprintf("condition node %d is already linked", cond))
	}

	b.checkTarget(truthy)
	b.checkTarget(falsy)

	d.next, d.falsy, d.linked = truthy, falsy, true
}

func (b *Builder) add(d draft) NodeID {
	n := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, d)

	return n
}

func (b *Builder) draft(n NodeID, kind Kind) *draft {
	d := &b.nodes[n]
	if d.kind != kind {
		panic(fmt.Sprintf("node %d is a %s, not a %s", n, d.kind, kind))
	}

	return d
}

func (b *Builder) checkTarget(to NodeID) {
	if int(to) >= len(b.nodes) {
		panic(fmt.Sprintf("link to unknown node %d", to))
	}

	if to == startNode {
		panic("can't link to the start node")
	}
}

// Finish completes the graph.
//
// Empty basic blocks with a single successor are bypassed, nodes unreachable from Start are removed
// (End is always kept), and node handles are renumbered. The [Builder] must not be used afterwards.
func (b *Builder) Finish() *Graph {
	fwd := make([]NodeID, len(b.nodes))
	for i := range fwd {
		fwd[i] = unresolved
	}

	successors := func(d *draft) []NodeID {
		switch {
		case !d.linked:
			return nil

		case d.kind == Condition:
			return []NodeID{b.forward(d.next, fwd), b.forward(d.falsy, fwd)}

		default:
			return []NodeID{b.forward(d.next, fwd)}
		}
	}

	// Number the reachable nodes in breadth-first order, Start and End first.
	ids := make([]NodeID, len(b.nodes))
	for i := range ids {
		ids[i] = unresolved
	}

	ids[startNode], ids[endNode] = startNode, endNode
	order := []NodeID{startNode, endNode}

	for i := 0; i < len(order); i++ {
		d := &b.nodes[order[i]]
		if d.kind == Condition && !d.linked {
			panic(fmt.Sprintf("condition node %d without branches", order[i]))
		}

		for _, succ := range successors(d) {
			if ids[succ] != unresolved {
				continue
			}

			ids[succ] = NodeID(len(order))
			order = append(order, succ)
		}
	}

	g := &Graph{
		nodes:  make([]node, len(order)),
		blocks: make(map[ast.Node]NodeID),
	}

	for id, old := range order {
		d, n := &b.nodes[old], &g.nodes[id]

		n.kind = d.kind

		for _, succ := range successors(d) {
			if s := ids[succ]; !slices.Contains(n.succs, s) {
				n.succs = append(n.succs, s)
			}
		}

		switch d.kind {
		case Condition:
			n.truthy, n.falsy = n.succs[0], n.succs[len(n.succs)-1]
			n.guard = d.guard

		case BasicBlock:
			n.points = d.points
			for _, p := range d.points {
				if other, ok := g.blocks[p]; ok {
					panic(fmt.Sprintf("code point %T at %d in blocks %d and %d", p, p.Pos(), other, id))
				}

				g.blocks[p] = NodeID(id)
			}
		}
	}

	for id := range g.nodes {
		for _, succ := range g.nodes[id].succs {
			g.nodes[succ].preds = append(g.nodes[succ].preds, NodeID(id))
		}
	}

	b.nodes = nil

	return g
}

// Sentinels for node resolution.
const (
	unresolved NodeID = ^NodeID(0)
	inProgress NodeID = unresolved - 1
)

// forward follows the chain of empty, linked basic blocks starting at n and returns the first node
// that is not such a block. An empty cycle resolves to the block closing it.
func (b *Builder) forward(n NodeID, fwd []NodeID) NodeID {
	var path []NodeID

	target := n
	for {
		if f := fwd[target]; f == inProgress {
			break // empty cycle
		} else if f != unresolved {
			target = f
			break
		}

		d := &b.nodes[target]
		if d.kind != BasicBlock || len(d.points) > 0 || !d.linked {
			break
		}

		fwd[target] = inProgress
		path = append(path, target)
		target = d.next
	}

	for _, p := range path {
		fwd[p] = target
	}

	return target
}
