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

// Package config holds the configuration types of the guardflow analyzer.
package config

// CheckFlags represents individual checks.
type CheckFlags uint8

const (
	// UnguardedCheck reports sink arguments that reach the sink without passing a guard.
	UnguardedCheck CheckFlags = 1 << iota

	// ComplexityCheck reports functions exceeding the maximum cyclomatic complexity.
	ComplexityCheck
)

// Checks is the set of enabled checks.
type Checks = BitMask[CheckFlags]

// DefaultChecks returns the checks enabled by default.
func DefaultChecks() Checks {
	return NewBitMask(UnguardedCheck)
}

// BehaviorFlags represents behavioral options.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated BehaviorFlags = 1 << iota

	// NilGuards treats nil comparisons as guards for sink arguments that can be nil.
	NilGuards
)

// Behavior holds behavioral options.
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask[BehaviorFlags]()
}

// DefaultMaxComplexity is the cyclomatic complexity above which functions are reported.
const DefaultMaxComplexity = 15
