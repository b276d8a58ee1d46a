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

package analyzer_test

import (
	"flag"
	"slices"
	"strings"
	"testing"

	. "fillmore-labs.com/guardflow/analyzer"
	"fillmore-labs.com/guardflow/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.CheckFlags
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.UnguardedCheck,
			args:    []string{"-complexity"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.ComplexityCheck,
			args:    []string{"-complexity=off"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var checks config.Checks
			checks.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.ComplexityCheck
			fv := NewCheckValue(&checks, value)
			fs.Var(fv, "complexity", "report complex functions")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if checks.Enabled(value) != tt.want {
				t.Errorf("ComplexityCheck enabled = %v, want %v", checks.Enabled(value), tt.want)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var behavior config.Behavior

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewBehaviorValue(&behavior, config.IncludeGenerated), "generated", "check generated files")

	if err := fs.Parse([]string{"-generated=maybe"}); err == nil {
		t.Error("Expected parse error")
	}
}

func TestListValue(t *testing.T) {
	t.Parallel()

	list := []string{"os.Open"}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fv := NewListValue(&list)
	fs.Var(fv, "sinks", "sink functions")

	if got := fv.String(); got != "os.Open" {
		t.Errorf("String() = %q, want %q", got, "os.Open")
	}

	if err := fs.Parse([]string{"-sinks", " os.ReadFile, (*os.Root).Open ,"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if want := []string{"os.ReadFile", "(*os.Root).Open"}; !slices.Equal(list, want) {
		t.Errorf("Got %q, want %q", list, want)
	}

	if got, ok := fv.Get().([]string); !ok || len(got) != 2 {
		t.Errorf("Get() = %v", fv.Get())
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	checks := config.NewBitMask(config.UnguardedCheck)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewCheckValue(&checks, config.UnguardedCheck)
	fs.Var(fv, "unguarded", "report unguarded arguments")

	const expectedUsage = `
  -unguarded
    	report unguarded arguments (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestAnalyzerFlags(t *testing.T) {
	t.Parallel()

	a := New()

	for _, name := range []string{"generated", "nil-guards", "unguarded", "complexity", "max-complexity", "guards", "sinks", "propagators", "config"} {
		if a.Flags.Lookup(name) == nil {
			t.Errorf("Missing flag -%s", name)
		}
	}

	if err := a.Flags.Parse([]string{"-complexity", "-max-complexity=7", "-sinks=os.Open"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := a.Flags.Lookup("sinks").Value.String(); got != "os.Open" {
		t.Errorf("sinks = %q, want %q", got, "os.Open")
	}
}
