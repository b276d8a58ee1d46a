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

package gclplugin

import "fillmore-labs.com/guardflow/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// NilGuards treats nil comparisons as guards.
	NilGuards *bool `json:"nil-guards,omitzero"`
	// Unguarded enables reporting of sink arguments without a guard.
	Unguarded *bool `json:"unguarded,omitzero"`
	// Complexity enables reporting of functions with high cyclomatic complexity.
	Complexity *bool `json:"complexity,omitzero"`
	// MaxComplexity sets the cyclomatic complexity above which functions are reported.
	MaxComplexity *int `json:"max-complexity,omitzero"`
	// Guards are the qualified names of guard functions.
	Guards []string `json:"guards,omitzero"`
	// Sinks are the qualified names of sink functions.
	Sinks []string `json:"sinks,omitzero"`
	// Propagators are the qualified names of functions passing guards through.
	Propagators []string `json:"propagators,omitzero"`
	// Config is the path of a YAML policy file.
	Config *string `json:"config,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the guardflow analyzer.
// It processes settings and applies them only when explicitly set.
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.NilGuards, analyzer.WithNilGuards)
	opts = appendOption(opts, s.Unguarded, analyzer.WithUnguarded)
	opts = appendOption(opts, s.Complexity, analyzer.WithComplexity)
	opts = appendOption(opts, s.MaxComplexity, analyzer.WithMaxComplexity)
	opts = appendList(opts, s.Guards, analyzer.WithGuards)
	opts = appendList(opts, s.Sinks, analyzer.WithSinks)
	opts = appendList(opts, s.Propagators, analyzer.WithPropagators)
	opts = appendOption(opts, s.Config, analyzer.WithConfigFile)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// appendList appends a non-nil list setting to an [analyzer.Option] list.
func appendList(opts []analyzer.Option, values []string, constructor func(...string) analyzer.Option) []analyzer.Option {
	if values == nil {
		return opts
	}

	return append(opts, constructor(values...))
}
