// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fix

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"
)

// Imports reports whether f imports path.
func Imports(f *ast.File, path string) bool {
	return importSpec(f, path) != nil
}

// importSpec returns the import spec for path, or nil if f does not
// import it.
func importSpec(f *ast.File, path string) *ast.ImportSpec {
	for _, s := range f.Imports {
		if importPath(s) == path {
			return s
		}
	}
	return nil
}

// importPath returns the unquoted import path of s, or "" if it is
// not a valid string literal.
func importPath(s *ast.ImportSpec) string {
	t, err := strconv.Unquote(s.Path.Value)
	if err != nil {
		return ""
	}
	return t
}

// IsTopName reports whether n is an identifier with the given name,
// not bound to any local declaration. Without type information this
// is the best available test for "refers to the package of that
// name".
func IsTopName(n ast.Expr, name string) bool {
	id, ok := n.(*ast.Ident)
	return ok && id.Name == name && id.Obj == nil
}

// UsesImport reports whether a selector in f still refers to the
// package imported as path. Blank and dot imports count as used.
func UsesImport(f *ast.File, path string) (used bool) {
	spec := importSpec(f, path)
	if spec == nil {
		return false
	}

	name := ""
	if spec.Name != nil {
		name = spec.Name.Name
	}
	switch name {
	case "":
		// No explicit name: guess from the last path element.
		name = path
		if i := strings.LastIndex(path, "/"); i >= 0 {
			name = path[i+1:]
		}
	case "_", ".":
		return true
	}

	Walk(f, func(n any) {
		sel, ok := n.(*ast.SelectorExpr)
		if ok && IsTopName(sel.X, name) {
			used = true
		}
	})
	return used
}

// AddImport adds an import of path to f, keeping any existing import
// block sorted. It reports whether it added anything.
func AddImport(f *ast.File, path string) bool {
	if Imports(f, path) {
		return false
	}
	spec := &ast.ImportSpec{
		Path: &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(path)},
	}

	for _, d := range f.Decls {
		gen, ok := d.(*ast.GenDecl)
		if !ok || gen.Tok != token.IMPORT {
			continue
		}
		at := len(gen.Specs)
		for i, s := range gen.Specs {
			if importPath(s.(*ast.ImportSpec)) > path {
				at = i
				break
			}
		}
		gen.Specs = append(gen.Specs, nil)
		copy(gen.Specs[at+1:], gen.Specs[at:])
		gen.Specs[at] = spec
		if len(gen.Specs) > 1 && !gen.Lparen.IsValid() {
			// A second spec needs a parenthesized block.
			gen.Lparen = gen.TokPos + token.Pos(len("import"))
		}
		f.Imports = append(f.Imports, spec)
		return true
	}

	// No import declaration at all; put one first.
	decl := &ast.GenDecl{Tok: token.IMPORT, Specs: []ast.Spec{spec}}
	f.Decls = append([]ast.Decl{decl}, f.Decls...)
	f.Imports = append(f.Imports, spec)
	return true
}

// DeleteImport removes the import of path from f, dropping the whole
// declaration when it becomes empty. It reports whether it deleted
// anything.
func DeleteImport(f *ast.File, path string) (deleted bool) {
	spec := importSpec(f, path)
	if spec == nil {
		return false
	}

	for i := 0; i < len(f.Decls); i++ {
		gen, ok := f.Decls[i].(*ast.GenDecl)
		if !ok || gen.Tok != token.IMPORT {
			continue
		}
		for j, s := range gen.Specs {
			if s != ast.Spec(spec) {
				continue
			}
			deleted = true
			gen.Specs = append(gen.Specs[:j], gen.Specs[j+1:]...)
			if len(gen.Specs) == 0 {
				f.Decls = append(f.Decls[:i], f.Decls[i+1:]...)
			}
			break
		}
		if deleted {
			break
		}
	}
	if deleted {
		for i, s := range f.Imports {
			if s == spec {
				f.Imports = append(f.Imports[:i], f.Imports[i+1:]...)
				break
			}
		}
	}
	return deleted
}

// RewriteImport retargets any import of oldPath to newPath, keeping
// the spec's position so surrounding comments do not move. It reports
// whether it rewrote anything.
func RewriteImport(f *ast.File, oldPath, newPath string) (rewrote bool) {
	for _, imp := range f.Imports {
		if importPath(imp) == oldPath {
			rewrote = true
			// Pin the end position before the path shrinks or
			// grows underneath it.
			imp.EndPos = imp.End()
			imp.Path.Value = strconv.Quote(newPath)
		}
	}
	return rewrote
}
