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

package nilguard

type Conn struct{}

func Send(c *Conn, msg string) {}

func unchecked(c *Conn) {
	Send(c, "hello") // want "argument c reaches test/nilguard.Send without passing a guard"
}

func checked(c *Conn) {
	if c == nil {
		return
	}

	Send(c, "hello")
}

func checkedAlias(c *Conn) {
	d := c
	if d != nil {
		Send(c, "hello")
	}
}

func wrongBranch(c *Conn) {
	if c == nil {
		Send(c, "hello") // want "argument c reaches test/nilguard.Send without passing a guard"
	}
}

func notNillable(c *Conn, msg string) {
	if c != nil && msg != "" {
		Send(c, msg) // want "argument msg reaches test/nilguard.Send without passing a guard"
	}
}
