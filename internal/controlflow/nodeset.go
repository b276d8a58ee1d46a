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
	"iter"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// NodeSet is an immutable set of nodes of one [Graph].
// The zero value is the empty set.
type NodeSet struct {
	bits *bitset.BitSet
}

// Contains reports whether n is a member of the set.
func (s NodeSet) Contains(n NodeID) bool {
	return s.bits != nil && s.bits.Test(uint(n))
}

// Len returns the number of members.
func (s NodeSet) Len() int {
	if s.bits == nil {
		return 0
	}

	return int(s.bits.Count())
}

// All iterates over the members in ascending order.
func (s NodeSet) All() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if s.bits == nil {
			return
		}

		for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
			if !yield(NodeID(i)) {
				return
			}
		}
	}
}

// Equal reports whether both sets have the same members.
func (s NodeSet) Equal(o NodeSet) bool {
	return s.Len() == o.Len() && s.IsSubsetOf(o)
}

// IsSubsetOf reports whether every member of s is a member of o.
func (s NodeSet) IsSubsetOf(o NodeSet) bool {
	switch {
	case s.Len() == 0:
		return true

	case o.bits == nil:
		return false

	default:
		return o.bits.IsSuperSet(s.bits)
	}
}

// String formats the set as a sorted list of node handles.
func (s NodeSet) String() string {
	var b strings.Builder

	b.WriteByte('{')

	for n := range s.All() {
		if b.Len() > 1 {
			b.WriteString(", ")
		}

		b.WriteString(strconv.FormatUint(uint64(n), 10))
	}

	b.WriteByte('}')

	return b.String()
}

// nodeSetOf collects the members of visited with the given kind.
func nodeSetOf(g *Graph, visited *bitset.BitSet, kind Kind) NodeSet {
	bits := bitset.New(uint(g.Len()))

	for i, ok := visited.NextSet(0); ok; i, ok = visited.NextSet(i + 1) {
		if g.Kind(NodeID(i)) == kind {
			bits.Set(i)
		}
	}

	return NodeSet{bits: bits}
}
