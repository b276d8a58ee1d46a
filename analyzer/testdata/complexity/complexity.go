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

package complexity

func simple(a bool) int {
	if a {
		return 1
	}

	return 0
}

func branchy(a, b, c, d bool) int { // want `function branchy has cyclomatic complexity 5 \(> 3\), 3 exits`
	if a && b {
		return 1
	}

	if c || d {
		return 2
	}

	return 0
}

func literal() func(int) string {
	return func(i int) string { // want `function literal.func1 has cyclomatic complexity 4 \(> 3\), 4 exits`
		switch i {
		case 1:
			return "one"
		case 2:
			return "two"
		case 3:
			return "three"
		}

		return "many"
	}
}

//nolint:guardflow
func suppressed(a, b, c, d bool) bool {
	if (a || b) && (c || d) {
		return true
	}

	return false
}

func nested() func() func(a, b, c bool) bool {
	return func() func(a, b, c bool) bool {
		return func(a, b, c bool) bool { // want `function nested.func1.1 has cyclomatic complexity 4 \(> 3\), 2 exits`
			if a && b && c {
				return true
			}

			return false
		}
	}
}

var global = func(a, b, c bool) bool { // want `function glob..func1 has cyclomatic complexity 4 \(> 3\), 2 exits`
	if a || b || c {
		return true
	}

	return false
}

var (
	small  = func() {}
	second = func(a, b, c bool) bool { // want `function glob..func3 has cyclomatic complexity 4 \(> 3\), 2 exits`
		if a || b || c {
			return true
		}

		return false
	}
)
