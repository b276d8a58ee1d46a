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
	"go/token"
	"go/types"

	"fillmore-labs.com/guardflow/internal/controlflow"
)

// builder translates statements into graph nodes.
//
// The append methods add to the basic block current and return the basic block where
// control continues afterwards. The returned block is always unlinked. When control can't
// continue it is a fresh block, which is pruned by [controlflow.Builder.Finish] unless it
// is the target of a jump.
type builder struct {
	*controlflow.Builder
	info    *types.Info       // for calls that can't return, may be nil
	labels  map[string]*label // label targets, function scoped
	targets branchTargets     // targets of unlabeled branch statements
}

func (b *builder) appendStmtList(current controlflow.NodeID, list []ast.Stmt) controlflow.NodeID {
	for _, s := range list {
		current = b.appendStmt(current, s, nil)
	}

	return current
}

// appendStmt appends a single statement. l is the label of a labeled statement.
func (b *builder) appendStmt(current controlflow.NodeID, stmt ast.Stmt, l *label) controlflow.NodeID {
	switch stmt := stmt.(type) {
	case *ast.AssignStmt, *ast.BadStmt, *ast.DeferStmt, *ast.GoStmt, *ast.IncDecStmt, *ast.SendStmt:
		b.AddCodePoint(current, stmt)

		return current

	case *ast.BlockStmt:
		return b.appendStmtList(current, stmt.List)

	case *ast.BranchStmt:
		return b.appendBranch(current, stmt)

	case *ast.DeclStmt:
		if d, ok := stmt.Decl.(*ast.GenDecl); ok && d.Tok == token.VAR {
			b.AddCodePoint(current, stmt)
		}

		return current

	case *ast.EmptyStmt:
		return current

	case *ast.ExprStmt:
		b.AddCodePoint(current, stmt.X)

		if call, ok := ast.Unparen(stmt.X).(*ast.CallExpr); ok && cantReturn(b.info, call) {
			b.Link(current, b.End())

			return b.NewBlock()
		}

		return current

	case *ast.ForStmt:
		return b.appendFor(current, stmt, l)

	case *ast.IfStmt:
		return b.appendIf(current, stmt)

	case *ast.LabeledStmt:
		l := b.label(stmt.Label)
		b.Link(current, l.stmt)

		return b.appendStmt(l.stmt, stmt.Stmt, l)

	case *ast.RangeStmt:
		return b.appendRange(current, stmt, l)

	case *ast.ReturnStmt:
		b.AddCodePoint(current, stmt)
		b.Link(current, b.End())

		return b.NewBlock()

	case *ast.SelectStmt:
		return b.appendSelect(current, stmt, l)

	case *ast.SwitchStmt:
		return b.appendSwitch(current, stmt, l)

	case *ast.TypeSwitchStmt:
		return b.appendTypeSwitch(current, stmt, l)

	default: // *ast.CaseClause and *ast.CommClause are handled by their statements
		panic(fmt.Sprintf("unexpected statement type: %T", stmt))
	}
}

// appendCond evaluates the boolean expression cond in current and continues at truthy or falsy.
// Operands of &&, || and ! get condition nodes of their own.
func (b *builder) appendCond(current controlflow.NodeID, cond ast.Expr, truthy, falsy controlflow.NodeID) {
	switch e := cond.(type) {
	case *ast.ParenExpr:
		b.appendCond(current, e.X, truthy, falsy)

		return

	case *ast.UnaryExpr:
		if e.Op == token.NOT {
			b.appendCond(current, e.X, falsy, truthy)

			return
		}

	case *ast.BinaryExpr:
		switch e.Op {
		case token.LAND:
			rhs := b.NewBlock()
			b.appendCond(current, e.X, rhs, falsy)
			b.appendCond(rhs, e.Y, truthy, falsy)

			return

		case token.LOR:
			rhs := b.NewBlock()
			b.appendCond(current, e.X, truthy, rhs)
			b.appendCond(rhs, e.Y, truthy, falsy)

			return
		}
	}

	b.AddCodePoint(current, cond)
	b.branch(current, cond, truthy, falsy)
}

// branch ends current with a condition node testing guard.
func (b *builder) branch(current controlflow.NodeID, guard ast.Node, truthy, falsy controlflow.NodeID) {
	c := b.NewCondition(guard)
	b.Link(current, c)
	b.LinkBranch(c, truthy, falsy)
}

func (b *builder) appendBranch(current controlflow.NodeID, stmt *ast.BranchStmt) controlflow.NodeID {
	b.AddCodePoint(current, stmt)

	var target controlflow.NodeID
	if stmt.Label != nil {
		target = b.label(stmt.Label).target(stmt.Tok)
	} else {
		target = b.targets.target(stmt.Tok)
	}

	if target != none {
		b.Link(current, target)
	}

	return b.NewBlock()
}

// label returns the targets of the named label, creating them on first reference.
// A goto can refer to a label before its statement is seen.
func (b *builder) label(id *ast.Ident) *label {
	l, ok := b.labels[id.Name]
	if !ok {
		l = &label{stmt: b.NewBlock()}
		b.labels[id.Name] = l
	}

	return l
}

// breakTarget creates the block after a loop, switch or select statement.
func (b *builder) breakTarget(l *label) (after controlflow.NodeID, restore func()) {
	after = b.NewBlock()

	if l != nil {
		l.brk = after
	}

	return after, b.targets.push(token.BREAK, after)
}

// continueTarget registers the block starting the next iteration of a loop.
func (b *builder) continueTarget(l *label, next controlflow.NodeID) (restore func()) {
	if l != nil {
		l.cont = next
	}

	return b.targets.push(token.CONTINUE, next)
}

func (b *builder) appendIf(current controlflow.NodeID, stmt *ast.IfStmt) controlflow.NodeID {
	if stmt.Init != nil {
		current = b.appendStmt(current, stmt.Init, nil)
	}

	then, after := b.NewBlock(), b.NewBlock()

	if stmt.Else == nil {
		b.appendCond(current, stmt.Cond, then, after)
	} else {
		els := b.NewBlock()
		b.appendCond(current, stmt.Cond, then, els)
		b.Link(b.appendStmt(els, stmt.Else, nil), after)
	}

	b.Link(b.appendStmtList(then, stmt.Body.List), after)

	return after
}

// appendFor handles three-clause and condition-only loops:
//
//	current -> head -> cond -> body -> post
//	            ^                        |
//	            +------------------------+
func (b *builder) appendFor(current controlflow.NodeID, stmt *ast.ForStmt, l *label) controlflow.NodeID {
	if stmt.Init != nil {
		current = b.appendStmt(current, stmt.Init, nil)
	}

	head, body := b.NewBlock(), b.NewBlock()
	after, restoreBreak := b.breakTarget(l)

	b.Link(current, head)

	if stmt.Cond != nil {
		b.appendCond(head, stmt.Cond, body, after)
	} else {
		b.Link(head, body)
	}

	next := head
	if stmt.Post != nil {
		next = b.NewBlock()
		b.Link(b.appendStmt(next, stmt.Post, nil), head)
	}

	restoreContinue := b.continueTarget(l, next)
	b.Link(b.appendStmtList(body, stmt.Body.List), next)
	restoreContinue()
	restoreBreak()

	return after
}

// appendRange handles range loops. The ranged expression is evaluated once,
// the *ast.RangeStmt guards every iteration.
func (b *builder) appendRange(current controlflow.NodeID, stmt *ast.RangeStmt, l *label) controlflow.NodeID {
	b.AddCodePoint(current, stmt.X)

	head, body := b.NewBlock(), b.NewBlock()
	after, restoreBreak := b.breakTarget(l)

	b.Link(current, head)
	b.branch(head, stmt, body, after)

	for _, e := range []ast.Expr{stmt.Key, stmt.Value} {
		if e != nil {
			b.AddCodePoint(body, e)
		}
	}

	restoreContinue := b.continueTarget(l, head)
	b.Link(b.appendStmtList(body, stmt.Body.List), head)
	restoreContinue()
	restoreBreak()

	return after
}

// caseTest appends the tests of a non-default clause, branching to body when it matches,
// and returns the block testing the following clauses.
type caseTest func(current controlflow.NodeID, clause *ast.CaseClause, body controlflow.NodeID) controlflow.NodeID

// appendSwitch handles expression switches. Clause expressions are tested in source order;
// tagless switches test them as conditions, tagged switches guard each comparison with its clause.
func (b *builder) appendSwitch(current controlflow.NodeID, stmt *ast.SwitchStmt, l *label) controlflow.NodeID {
	if stmt.Init != nil {
		current = b.appendStmt(current, stmt.Init, nil)
	}

	if stmt.Tag != nil {
		b.AddCodePoint(current, stmt.Tag)
	}

	test := func(current controlflow.NodeID, clause *ast.CaseClause, body controlflow.NodeID) controlflow.NodeID {
		for _, e := range clause.List {
			next := b.NewBlock()

			if stmt.Tag == nil {
				b.appendCond(current, e, body, next)
			} else {
				b.AddCodePoint(current, e)
				b.branch(current, clause, body, next)
			}

			current = next
		}

		return current
	}

	return b.appendClauses(current, stmt.Body, l, test, true)
}

// appendTypeSwitch handles type switches, one condition node per clause.
func (b *builder) appendTypeSwitch(current controlflow.NodeID, stmt *ast.TypeSwitchStmt, l *label) controlflow.NodeID {
	if stmt.Init != nil {
		current = b.appendStmt(current, stmt.Init, nil)
	}

	b.AddCodePoint(current, stmt.Assign)

	test := func(current controlflow.NodeID, clause *ast.CaseClause, body controlflow.NodeID) controlflow.NodeID {
		next := b.NewBlock()
		b.branch(current, clause, body, next)

		return next
	}

	return b.appendClauses(current, stmt.Body, l, test, false)
}

// appendClauses chains the clause tests of a switch. When no clause matches, control
// continues at the default clause or after the switch.
func (b *builder) appendClauses(current controlflow.NodeID, clauses *ast.BlockStmt, l *label, test caseTest, canFallthrough bool) controlflow.NodeID {
	if len(clauses.List) == 0 {
		return current
	}

	after, restoreBreak := b.breakTarget(l)

	bodies := make([]controlflow.NodeID, len(clauses.List))
	for i := range bodies {
		bodies[i] = b.NewBlock()
	}

	nomatch := after
	for i, c := range clauses.List {
		clause := c.(*ast.CaseClause)
		if clause.List == nil {
			nomatch = bodies[i]

			continue
		}

		current = test(current, clause, bodies[i])
	}

	b.Link(current, nomatch)

	for i, c := range clauses.List {
		next := none
		if canFallthrough && i+1 < len(bodies) {
			next = bodies[i+1]
		}

		restoreFallthrough := b.targets.push(token.FALLTHROUGH, next)
		b.Link(b.appendStmtList(bodies[i], c.(*ast.CaseClause).Body), after)
		restoreFallthrough()
	}

	restoreBreak()

	return after
}

// appendSelect handles select statements. All channel operands are evaluated first, then
// the clauses are offered in a cycle of condition nodes, truthy when the clause is chosen.
// Without a ready clause the cycle starts over, so select {} never continues.
func (b *builder) appendSelect(current controlflow.NodeID, stmt *ast.SelectStmt, l *label) controlflow.NodeID {
	if len(stmt.Body.List) == 0 {
		return b.NewBlock()
	}

	for _, c := range stmt.Body.List {
		switch comm := c.(*ast.CommClause).Comm.(type) {
		case nil: // default

		case *ast.SendStmt:
			b.AddCodePoint(current, comm)

		case *ast.AssignStmt:
			for _, e := range comm.Rhs {
				b.AddCodePoint(current, e)
			}

		case *ast.ExprStmt:
			b.AddCodePoint(current, comm.X)

		default:
			panic(fmt.Sprintf("unexpected communication clause: %T", comm))
		}
	}

	after, restoreBreak := b.breakTarget(l)

	conds := make([]controlflow.NodeID, len(stmt.Body.List))
	for i, c := range stmt.Body.List {
		conds[i] = b.NewCondition(c)
	}

	b.Link(current, conds[0])

	for i, c := range stmt.Body.List {
		clause := c.(*ast.CommClause)

		body := b.NewBlock()
		if assign, ok := clause.Comm.(*ast.AssignStmt); ok {
			for _, e := range assign.Lhs {
				b.AddCodePoint(body, e)
			}
		}

		b.LinkBranch(conds[i], body, conds[(i+1)%len(conds)])
		b.Link(b.appendStmtList(body, clause.Body), after)
	}

	restoreBreak()

	return after
}
