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

package propagators

import (
	"os"
	"path/filepath"
)

func cleaned(name string) {
	clean := filepath.Clean(name)
	if !filepath.IsLocal(clean) {
		return
	}

	_ = os.Remove(name) // want "argument name reaches os.Remove without passing a guard"
}

func copied(name string) {
	other := name
	if !filepath.IsLocal(other) {
		return
	}

	_ = os.Remove(name)
}
