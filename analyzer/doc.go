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

// Package analyzer implements the guardflow static analysis pass.
//
// # Overview
//
// GuardFlow builds the control-flow graph of every function and reports arguments of sink
// functions, like [os.Open], that can reach the call on a path where they were not validated
// by a guard function, like [path/filepath.IsLocal].
//
// # Example
//
//	func serve(name string) ([]byte, error) {
//	    if !filepath.IsLocal(name) {
//	        return nil, fs.ErrInvalid
//	    }
//
//	    return os.ReadFile(name) // ok, name is validated on every path
//	}
//
//	func leak(name string, trusted bool) ([]byte, error) {
//	    if trusted || filepath.IsLocal(name) {
//	        return os.ReadFile(name) // argument name reaches os.ReadFile without passing a guard
//	    }
//
//	    return nil, fs.ErrInvalid
//	}
//
// # Configuration
//
// Guards and sinks are qualified function names, "pkg/path.Func" or "(pkg/path.Type).Method".
// They can be set with the -guards and -sinks flags or in a YAML policy file given with -config:
//
//	guards: [path/filepath.IsLocal, io/fs.ValidPath]
//	sinks: [os.Open, os.ReadFile, "(*os.Root).Open"]
//	propagators: [path/filepath.Clean]
//	max-complexity: 15
//
// Variables assigned from each other, directly or through a propagator function set with
// -propagators, share their guards:
//
//	clean := filepath.Clean(name)
//	if !filepath.IsLocal(clean) {
//	    return fs.ErrInvalid
//	}
//
//	return os.Remove(name) // ok
//
// With -nil-guards a comparison with nil also guards sink arguments that can be nil.
//
// With -complexity functions whose cyclomatic complexity exceeds -max-complexity are reported,
// together with their number of exits.
//
// Diagnostics are suppressed by a //nolint:guardflow or bare //nolint comment on the first or last
// line of the sink call, in the function documentation, or in the file documentation.
package analyzer
