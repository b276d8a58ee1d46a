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
	"flag"

	"fillmore-labs.com/guardflow/internal/config"
	"fillmore-labs.com/guardflow/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(NewBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(NewBehaviorValue(&r.Behavior, config.NilGuards), "nil-guards", "treat nil comparisons as guards")
	flags.Var(NewCheckValue(&r.Checks, config.UnguardedCheck), "unguarded", "report sink arguments without a guard")
	flags.Var(NewCheckValue(&r.Checks, config.ComplexityCheck), "complexity", "report functions with high cyclomatic complexity")
	flags.IntVar(&r.MaxComplexity, "max-complexity", r.MaxComplexity, "maximum cyclomatic complexity")
	flags.Var(NewListValue(&r.Guards), "guards", "comma-separated list of guard functions")
	flags.Var(NewListValue(&r.Sinks), "sinks", "comma-separated list of sink functions")
	flags.Var(NewListValue(&r.Propagators), "propagators", "comma-separated list of functions passing guards through")
	flags.StringVar(&r.ConfigFile, "config", r.ConfigFile, "YAML policy file with guards, sinks, propagators and max-complexity")
}
