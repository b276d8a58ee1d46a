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

// Package controlflow models the [control-flow graph] of a single function and answers
// reachability queries over it.
//
// A [Graph] is an arena of nodes addressed by [NodeID] handles. There are four kinds of nodes:
//
//   - [Start], the unique entry node
//   - [End], the unique exit node
//   - [BasicBlock], a straight-line sequence of code points
//   - [Condition], a branch point with a guard and a truthy and falsy successor
//
// Graphs are assembled with a [Builder] and are immutable once [Builder.Finish] returns.
//
// A [Summary] computes the blocks, condition nodes and code points reachable from Start.
// Guarded queries take a [BarrierGuard], which decides per branch whether taking it blocks
// further propagation. The same graph can be queried with different guards concurrently.
//
// [control-flow graph]: https://en.wikipedia.org/wiki/Control-flow_graph
package controlflow
