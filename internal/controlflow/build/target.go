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
	"go/token"

	"fillmore-labs.com/guardflow/internal/controlflow"
)

// none marks a missing branch target. The start node is never the target of a jump.
const none controlflow.NodeID = 0

// branchTargets are the targets of unlabeled break, continue and fallthrough statements
// in the innermost enclosing statement.
type branchTargets struct {
	brk, cont, fall controlflow.NodeID
}

func (s *branchTargets) slot(tok token.Token) *controlflow.NodeID {
	switch tok {
	case token.BREAK:
		return &s.brk

	case token.CONTINUE:
		return &s.cont

	case token.FALLTHROUGH:
		return &s.fall

	default:
		panic(fmt.Sprintf("unexpected branch token: %s", tok))
	}
}

// target returns the current target of an unlabeled branch statement.
func (s *branchTargets) target(tok token.Token) controlflow.NodeID {
	return *s.slot(tok)
}

// push sets the target for tok and returns a function restoring the enclosing one.
func (s *branchTargets) push(tok token.Token, n controlflow.NodeID) (restore func()) {
	p := s.slot(tok)
	old := *p
	*p = n

	return func() { *p = old }
}

// label holds the targets of a labeled statement. The break and continue targets
// are set when the statement is a loop, switch or select.
type label struct {
	stmt      controlflow.NodeID // the block starting with the labeled statement
	brk, cont controlflow.NodeID
}

// target returns the target of a branch statement referring to this label.
func (l *label) target(tok token.Token) controlflow.NodeID {
	switch tok {
	case token.BREAK:
		return l.brk

	case token.CONTINUE:
		return l.cont

	case token.GOTO:
		return l.stmt

	default:
		panic(fmt.Sprintf("unexpected labeled branch token: %s", tok))
	}
}
