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

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/guardflow/internal/callee"
)

// DefaultGuards are the guard functions used when none are configured.
var DefaultGuards = []string{
	"path/filepath.IsLocal",
	"io/fs.ValidPath",
}

// DefaultSinks are the sink functions used when none are configured.
var DefaultSinks = []string{
	"os.Create",
	"os.Open",
	"os.OpenFile",
	"os.ReadFile",
	"os.Remove",
	"os.RemoveAll",
	"os.WriteFile",
}

// DefaultPropagators are functions whose result is derived from their argument, so a guard on either
// counts for both.
var DefaultPropagators = []string{
	"path.Clean",
	"path/filepath.Clean",
	"path/filepath.FromSlash",
	"path/filepath.ToSlash",
}

// Policy is the content of a policy file.
//
//	guards: [path/filepath.IsLocal]
//	sinks: [os.Open, "(*os.Root).Open"]
//	propagators: [path/filepath.Clean]
//	max-complexity: 15
type Policy struct {
	Guards        []string `yaml:"guards"`
	Sinks         []string `yaml:"sinks"`
	Propagators   []string `yaml:"propagators"`
	MaxComplexity *int     `yaml:"max-complexity"`
}

// ErrInvalidPolicy is returned for policy files with invalid values.
var ErrInvalidPolicy = errors.New("invalid policy")

// LoadPolicy reads the policy file at path.
func LoadPolicy(path string) (*Policy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open policy: %w", err)
	}
	defer f.Close()

	p, err := ReadPolicy(f)
	if err != nil {
		return nil, fmt.Errorf("policy %s: %w", path, err)
	}

	slog.Debug("policy loaded", slog.String("path", path), slog.Any("policy", p))

	return p, nil
}

// ReadPolicy decodes a policy from r. Unknown keys are an error, an empty document is an empty policy.
func ReadPolicy(r io.Reader) (*Policy, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Policy
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("can't decode policy: %w", err)
	}

	if p.MaxComplexity != nil && *p.MaxComplexity < 1 {
		return nil, fmt.Errorf("%w: max-complexity %d must be positive", ErrInvalidPolicy, *p.MaxComplexity)
	}

	if _, err := callee.ParseFuncNames(p.Guards); err != nil {
		return nil, fmt.Errorf("%w: guards: %w", ErrInvalidPolicy, err)
	}

	if _, err := callee.ParseFuncNames(p.Sinks); err != nil {
		return nil, fmt.Errorf("%w: sinks: %w", ErrInvalidPolicy, err)
	}

	if _, err := callee.ParseFuncNames(p.Propagators); err != nil {
		return nil, fmt.Errorf("%w: propagators: %w", ErrInvalidPolicy, err)
	}

	return &p, nil
}

// LogValue implements [slog.LogValuer].
func (p *Policy) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Any("guards", p.Guards),
		slog.Any("sinks", p.Sinks),
		slog.Any("propagators", p.Propagators),
	}

	if p.MaxComplexity != nil {
		attrs = append(attrs, slog.Int("max-complexity", *p.MaxComplexity))
	}

	return slog.GroupValue(attrs...)
}
