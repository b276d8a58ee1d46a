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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/guardflow/internal/config"
	"fillmore-labs.com/guardflow/internal/run"
)

// Option configures specific behavior of a [New] guardflow analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithNilGuards is an [Option] to configure whether nil comparisons guard sink arguments that can be nil.
func WithNilGuards(nilGuards bool) Option { return nilGuardsOption{nilGuards: nilGuards} }

type nilGuardsOption struct{ nilGuards bool }

func (o nilGuardsOption) apply(r *run.Options) {
	r.Behavior.Set(config.NilGuards, o.nilGuards)
}

func (o nilGuardsOption) LogAttr() slog.Attr {
	return slog.Bool("nil-guards", o.nilGuards)
}

// WithUnguarded is an [Option] to configure whether unguarded sink arguments are reported.
func WithUnguarded(unguarded bool) Option { return unguardedOption{unguarded: unguarded} }

type unguardedOption struct{ unguarded bool }

func (o unguardedOption) apply(r *run.Options) {
	r.Checks.Set(config.UnguardedCheck, o.unguarded)
}

func (o unguardedOption) LogAttr() slog.Attr {
	return slog.Bool("unguarded", o.unguarded)
}

// WithComplexity is an [Option] to configure whether complex functions are reported.
func WithComplexity(complexity bool) Option { return complexityOption{complexity: complexity} }

type complexityOption struct{ complexity bool }

func (o complexityOption) apply(r *run.Options) {
	r.Checks.Set(config.ComplexityCheck, o.complexity)
}

func (o complexityOption) LogAttr() slog.Attr {
	return slog.Bool("complexity", o.complexity)
}

// WithMaxComplexity is an [Option] to configure the cyclomatic complexity above which functions are reported.
func WithMaxComplexity(maxComplexity int) Option {
	return maxComplexityOption{maxComplexity: maxComplexity}
}

type maxComplexityOption struct{ maxComplexity int }

func (o maxComplexityOption) apply(r *run.Options) {
	r.MaxComplexity = o.maxComplexity
}

func (o maxComplexityOption) LogAttr() slog.Attr {
	return slog.Int("max-complexity", o.maxComplexity)
}

// WithGuards is an [Option] to configure the guard functions, like "path/filepath.IsLocal".
func WithGuards(guards ...string) Option { return guardsOption{guards: guards} }

type guardsOption struct{ guards []string }

func (o guardsOption) apply(r *run.Options) {
	r.Guards = o.guards
}

func (o guardsOption) LogAttr() slog.Attr {
	return slog.Any("guards", o.guards)
}

// WithSinks is an [Option] to configure the sink functions, like "os.Open" or "(*os.Root).Open".
func WithSinks(sinks ...string) Option { return sinksOption{sinks: sinks} }

type sinksOption struct{ sinks []string }

func (o sinksOption) apply(r *run.Options) {
	r.Sinks = o.sinks
}

func (o sinksOption) LogAttr() slog.Attr {
	return slog.Any("sinks", o.sinks)
}

// WithPropagators is an [Option] to configure functions whose result is derived from their arguments,
// like "path/filepath.Clean". A guard on the argument or the result counts for both.
func WithPropagators(propagators ...string) Option {
	return propagatorsOption{propagators: propagators}
}

type propagatorsOption struct{ propagators []string }

func (o propagatorsOption) apply(r *run.Options) {
	r.Propagators = o.propagators
}

func (o propagatorsOption) LogAttr() slog.Attr {
	return slog.Any("propagators", o.propagators)
}

// WithConfigFile is an [Option] to read guards, sinks, propagators and the maximum complexity from a YAML policy file.
func WithConfigFile(path string) Option { return configFileOption{path: path} }

type configFileOption struct{ path string }

func (o configFileOption) apply(r *run.Options) {
	r.ConfigFile = o.path
}

func (o configFileOption) LogAttr() slog.Attr {
	return slog.String("config", o.path)
}
