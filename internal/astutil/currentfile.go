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

package astutil

import (
	"go/ast"
	"go/token"
	"slices"
	"strings"
)

// linterName is matched against //nolint directives.
const linterName = "guardflow"

// CurrentFile is the file under analysis together with its position table.
type CurrentFile struct {
	file      *ast.File
	tokens    *token.File
	generated bool
}

// NewCurrentFile looks up the position table of file. The result is not [CurrentFile.Valid] when the file is
// unknown to fset.
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	if tokens := fset.File(file.FileStart); tokens != nil {
		return CurrentFile{file: file, tokens: tokens, generated: ast.IsGenerated(file)}
	}

	return CurrentFile{}
}

// Valid reports whether the file has a position table.
func (c CurrentFile) Valid() bool { return c.tokens != nil }

// Generated reports whether the file carries a "Code generated ... DO NOT EDIT." marker.
func (c CurrentFile) Generated() bool { return c.generated }

// NoLint reports whether the package clause is annotated with //nolint:guardflow.
func (c CurrentFile) NoLint() bool {
	return c.file != nil && DocHasNoLint(c.file.Doc)
}

// NoLintComment reports whether the first or last line of n has a //nolint:guardflow comment.
func (c CurrentFile) NoLintComment(n ast.Node) bool {
	if c.file == nil || c.tokens == nil {
		return false
	}

	first, last := c.tokens.Line(n.Pos()), c.tokens.Line(n.End())

	groups := c.file.Comments
	i, _ := slices.BinarySearchFunc(groups, n.Pos(), func(g *ast.CommentGroup, p token.Pos) int {
		return int(g.Pos() - p)
	})

	for _, g := range groups[i:] {
		if c.tokens.Line(g.Pos()) > last {
			break
		}

		for _, comment := range g.List {
			if line := c.tokens.Line(comment.Pos()); line != first && line != last {
				continue
			}

			if CommentHasNoLint(comment) {
				return true
			}
		}
	}

	return false
}

// DocHasNoLint reports whether the last line of doc is a //nolint:guardflow directive.
func DocHasNoLint(doc *ast.CommentGroup) bool {
	if doc == nil || len(doc.List) == 0 {
		return false
	}

	return CommentHasNoLint(doc.List[len(doc.List)-1])
}

// CommentHasNoLint reports whether comment is a //nolint directive naming guardflow or "all".
// A //nolint directive without linters applies to all linters.
func CommentHasNoLint(comment *ast.Comment) bool {
	text, ok := strings.CutPrefix(comment.Text, "//")
	if !ok {
		return false
	}

	rest, ok := strings.CutPrefix(strings.TrimLeft(text, " \t"), "nolint")
	if !ok {
		return false
	}

	linters, ok := strings.CutPrefix(rest, ":")
	if !ok {
		return rest == "" || strings.IndexAny(rest[:1], " \t/") == 0 // bare //nolint
	}

	if end := strings.IndexAny(linters, " \t/"); end >= 0 {
		linters = linters[:end] // explanation follows
	}

	for name := range strings.SplitSeq(linters, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case linterName, "all":
			return true
		}
	}

	return false
}
