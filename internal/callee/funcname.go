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

package callee

import (
	"errors"
	"fmt"
	"go/types"
	"strings"
)

// FuncName is the qualified name of a function or method.
type FuncName struct {
	Path     string // Package path, empty for universe and interface methods
	Receiver string // Receiver type name, empty for functions
	Name     string // Function or method name
}

// FuncNameOf returns the qualified name of fun.
//
// Methods on pointer receivers and aliases are named after the underlying named type.
// Methods of unnamed interfaces use the receiver "interface".
func FuncNameOf(fun *types.Func) FuncName {
	var path string
	if pkg := fun.Pkg(); pkg != nil {
		path = pkg.Path()
	}

	recv := fun.Signature().Recv()
	if recv == nil {
		return FuncName{Path: path, Name: fun.Name()}
	}

	typ := types.Unalias(recv.Type())
	if ptr, ok := typ.(*types.Pointer); ok {
		typ = types.Unalias(ptr.Elem())
	}

	switch t := typ.(type) {
	case *types.Named:
		obj := t.Obj()

		var rpath string
		if pkg := obj.Pkg(); pkg != nil {
			rpath = pkg.Path()
		}

		return FuncName{Path: rpath, Receiver: obj.Name(), Name: fun.Name()}

	case *types.Interface:
		return FuncName{Receiver: "interface", Name: fun.Name()}

	default:
		return FuncName{Receiver: "<invalid>", Name: fun.Name()}
	}
}

// String formats the name as "path.Name" or "(path.Receiver).Name".
func (f FuncName) String() string {
	if f.Receiver == "" {
		if f.Path == "" {
			return f.Name
		}

		return f.Path + "." + f.Name
	}

	recv := f.Receiver
	if f.Path != "" {
		recv = f.Path + "." + recv
	}

	return "(" + recv + ")." + f.Name
}

// ErrInvalidFuncName is returned when a function name can't be parsed.
var ErrInvalidFuncName = errors.New("invalid function name")

// ParseFuncName parses the format produced by [FuncName.String].
// A pointer receiver "(*path.Receiver).Name" is accepted, too.
func ParseFuncName(s string) (FuncName, error) {
	s = strings.TrimSpace(s)

	var f FuncName

	if rest, ok := strings.CutPrefix(s, "("); ok {
		recv, name, ok := strings.Cut(rest, ").")
		if !ok {
			return FuncName{}, fmt.Errorf("%w: %q", ErrInvalidFuncName, s)
		}

		recv = strings.TrimPrefix(recv, "*")
		if i := strings.LastIndexByte(recv, '.'); i >= 0 {
			f.Path, f.Receiver = recv[:i], recv[i+1:]
		} else {
			f.Receiver = recv
		}

		f.Name = name
	} else if i := strings.LastIndexByte(s, '.'); i >= 0 {
		f.Path, f.Name = s[:i], s[i+1:]
	} else {
		f.Name = s
	}

	if f.Name == "" || (f.Receiver == "" && strings.HasPrefix(s, "(")) || strings.ContainsAny(f.Name, "()*. ") {
		return FuncName{}, fmt.Errorf("%w: %q", ErrInvalidFuncName, s)
	}

	return f, nil
}

// ParseFuncNames parses a list of function names.
func ParseFuncNames(names []string) (Set, error) {
	funcs := make(Set, len(names))

	for _, s := range names {
		f, err := ParseFuncName(s)
		if err != nil {
			return nil, err
		}

		funcs[f] = struct{}{}
	}

	return funcs, nil
}
