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

// flag is the constraint for bit flag types.
type flag interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitMask is a set of binary flags of type T.
type BitMask[T flag] struct {
	value T
}

// NewBitMask creates a new typed [BitMask] instance with the specified flags enabled.
func NewBitMask[T flag](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, f := range flags {
		b.Enable(f)
	}

	return b
}

// Set enables or disables the given flag.
func (b *BitMask[T]) Set(f T, value bool) {
	if value {
		b.Enable(f)
	} else {
		b.Disable(f)
	}
}

// Enable sets the given flag.
func (b *BitMask[T]) Enable(f T) {
	b.value |= f
}

// Disable clears the given flag.
func (b *BitMask[T]) Disable(f T) {
	b.value &^= f
}

// Enabled reports whether the given flag is set.
func (b BitMask[T]) Enabled(f T) bool {
	return b.value&f != 0
}

// Empty reports whether no flag is set.
func (b BitMask[T]) Empty() bool {
	return b.value == 0
}
