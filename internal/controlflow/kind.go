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

//go:generate go tool stringer -type Kind -linecomment

// Kind is the variant of a control-flow node.
type Kind uint8

const (
	// Start is the entry node of a graph.
	Start Kind = iota // start

	// End is the exit node of a graph.
	End // end

	// BasicBlock is a straight-line sequence of code points.
	BasicBlock // block

	// Condition is a branch point with a truthy and a falsy successor.
	Condition // condition
)
