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

package unguarded

import (
	"io/fs"
	"os"
	"path/filepath"
)

var global string

func unchecked(name string) {
	f, _ := os.Open(name) // want "argument name reaches os.Open without passing a guard"
	_ = f
}

func checked(name string) error {
	if !filepath.IsLocal(name) {
		return fs.ErrInvalid
	}

	_, err := os.ReadFile(name)

	return err
}

func checkedBranch(name string) {
	if filepath.IsLocal(name) {
		_ = os.Remove(name)
	}
}

func wrongVariable(name, other string) {
	if filepath.IsLocal(other) {
		_ = os.Remove(name) // want "argument name reaches os.Remove without passing a guard"
	}
}

func partial(name string, force bool) {
	if force || filepath.IsLocal(name) {
		_ = os.RemoveAll(name) // want "argument name reaches os.RemoveAll without passing a guard"
	}
}

func joined(dir, name string) {
	if !fs.ValidPath(name) {
		panic("invalid path")
	}

	_ = os.WriteFile(filepath.Join(dir, name), nil, 0o600) // want "argument dir reaches os.WriteFile without passing a guard"
}

func loop(names []string) {
	for _, name := range names {
		if !filepath.IsLocal(name) {
			continue
		}

		_ = os.Remove(name)
	}
}

func literal(name string) {
	fn := func() {
		_ = os.Remove(name) // want "argument name reaches os.Remove without passing a guard"
	}

	if filepath.IsLocal(name) {
		fn()
	}
}

func field(c struct{ name string }) {
	_ = os.Remove(c.name) // want "argument c reaches os.Remove without passing a guard"
}

func globalVar() {
	_ = os.Remove(global)
}

func suppressed(name string) {
	_ = os.Remove(name) //nolint:guardflow
}

//nolint:guardflow
func suppressedFunc(name string) {
	_ = os.Remove(name)
}

func unreachable(name string) {
	return
	_ = os.Remove(name)
}

func exited(name string) {
	if !filepath.IsLocal(name) {
		os.Exit(1)
	}

	_ = os.Remove(name)
}

func cleaned(name string) {
	clean := filepath.Clean(name)
	if !filepath.IsLocal(clean) {
		return
	}

	_ = os.Remove(name)
}

func cleanedSink(name string) {
	if !filepath.IsLocal(name) {
		return
	}

	clean := filepath.Clean(name)
	_ = os.Remove(clean)
}

func derived(name string) {
	base := filepath.Base(name)
	if filepath.IsLocal(base) {
		_ = os.Remove(name) // want "argument name reaches os.Remove without passing a guard"
	}
}

var remove = func(name string) {
	_ = os.Remove(name) // want "argument name reaches os.Remove without passing a guard"
}

func bare(name string) {
	_ = os.Remove(name) //nolint
}

func multiline(dir, name string) {
	_ = os.WriteFile(
		filepath.Join(dir, name),
		nil,
		0o600,
	) //nolint:guardflow // dir and name are trusted
}
