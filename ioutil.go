// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"go/ast"

	"gofix/fix"
)

var ioutilFix = fix.Fix{
	Name: "ioutil",
	Date: "2021-02-16",
	Applies: func(f *ast.File) bool {
		return fix.Imports(f, "io/ioutil")
	},
	F: ioutilFn,
	Desc: `Replace io/ioutil functions with their io and os equivalents.

ioutil.ReadDir is left alone: os.ReadDir returns a different element
type, so that call cannot be migrated without inspecting how the
result is used.
`,
}

// ioutilFuncs maps the deprecated ioutil names to their new homes.
var ioutilFuncs = map[string]struct {
	pkg, name string
}{
	"Discard":   {"io", "Discard"},
	"NopCloser": {"io", "NopCloser"},
	"ReadAll":   {"io", "ReadAll"},
	"ReadFile":  {"os", "ReadFile"},
	"WriteFile": {"os", "WriteFile"},
	"TempDir":   {"os", "MkdirTemp"},
	"TempFile":  {"os", "CreateTemp"},
}

func ioutilFn(f *ast.File) bool {
	fixed := false
	needed := make(map[string]bool)
	fix.Walk(f, func(n any) {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok || !fix.IsTopName(sel.X, "ioutil") {
			return
		}
		repl, ok := ioutilFuncs[sel.Sel.Name]
		if !ok {
			return
		}
		sel.X.(*ast.Ident).Name = repl.pkg
		sel.Sel.Name = repl.name
		needed[repl.pkg] = true
		fixed = true
	})
	if !fixed {
		return false
	}

	if fix.UsesImport(f, "io/ioutil") {
		// Something (ReadDir, say) still needs ioutil; just make
		// sure the new homes are imported too.
		for _, pkg := range []string{"io", "os"} {
			if needed[pkg] {
				fix.AddImport(f, pkg)
			}
		}
		return true
	}

	// Point the old import at one of the new homes and add the other
	// if both are needed; drop it when everything needed is already
	// imported.
	var missing []string
	for _, pkg := range []string{"io", "os"} {
		if needed[pkg] && !fix.Imports(f, pkg) {
			missing = append(missing, pkg)
		}
	}
	if len(missing) > 0 {
		fix.RewriteImport(f, "io/ioutil", missing[0])
		for _, pkg := range missing[1:] {
			fix.AddImport(f, pkg)
		}
	} else {
		fix.DeleteImport(f, "io/ioutil")
	}
	return true
}
