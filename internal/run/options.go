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

package run

import (
	"fmt"

	"fillmore-labs.com/guardflow/internal/callee"
	"fillmore-labs.com/guardflow/internal/config"
)

// Options represent configuration options for the guardflow analyzer.
type Options struct {
	// Checks are the enabled checks.
	Checks config.Checks

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// MaxComplexity is the cyclomatic complexity above which functions are reported.
	MaxComplexity int

	// Guards are the qualified names of guard functions.
	Guards []string

	// Sinks are the qualified names of sink functions.
	Sinks []string

	// Propagators are the qualified names of functions whose result is derived from their arguments.
	Propagators []string

	// ConfigFile is the path of a policy file overriding guards, sinks, propagators and the maximum complexity.
	ConfigFile string
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Checks:        config.DefaultChecks(),
		Behavior:      config.DefaultBehavior(),
		MaxComplexity: config.DefaultMaxComplexity,
		Guards:        config.DefaultGuards,
		Sinks:         config.DefaultSinks,
		Propagators:   config.DefaultPropagators,
	}
}

// policy is the resolved configuration of a single pass.
type policy struct {
	guards, sinks, propagators callee.Set
	maxComplexity              int
}

// resolve merges the policy file into the options and parses the function names.
func (r *Options) resolve() (policy, error) {
	guards, sinks, propagators, maxComplexity := r.Guards, r.Sinks, r.Propagators, r.MaxComplexity

	if r.ConfigFile != "" {
		pol, err := config.LoadPolicy(r.ConfigFile)
		if err != nil {
			return policy{}, err
		}

		if pol.Guards != nil {
			guards = pol.Guards
		}

		if pol.Sinks != nil {
			sinks = pol.Sinks
		}

		if pol.Propagators != nil {
			propagators = pol.Propagators
		}

		if pol.MaxComplexity != nil {
			maxComplexity = *pol.MaxComplexity
		}
	}

	g, err := callee.ParseFuncNames(guards)
	if err != nil {
		return policy{}, fmt.Errorf("guards: %w", err)
	}

	s, err := callee.ParseFuncNames(sinks)
	if err != nil {
		return policy{}, fmt.Errorf("sinks: %w", err)
	}

	p, err := callee.ParseFuncNames(propagators)
	if err != nil {
		return policy{}, fmt.Errorf("propagators: %w", err)
	}

	return policy{guards: g, sinks: s, propagators: p, maxComplexity: maxComplexity}, nil
}
