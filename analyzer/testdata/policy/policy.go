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

package policy

import "os"

func Check(name string) bool { return name != "" }

func Load(name string) error { return nil }

func use(name string) {
	if Check(name) {
		_ = Load(name)
	}

	_ = Load(name) // want "argument name reaches test/policy.Load without passing a guard"

	_, _ = os.Open(name)
}
