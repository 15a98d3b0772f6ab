// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fix

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"os"

	"golang.org/x/xerrors"
)

// parserMode keeps comments so they survive the round trip.
const parserMode = parser.ParseComments

// printConfig matches gofmt, so rendering a fixed tree and feeding it
// back through the pipeline reproduces the same bytes.
var printConfig = printer.Config{
	Mode:     printer.UseSpaces | printer.TabIndent,
	Tabwidth: 8,
}

// An Outcome is the complete result of processing one source unit.
// It is produced once per file and not modified afterward.
type Outcome struct {
	Path    string
	Src     []byte   // original text
	Out     []byte   // rewritten text; equals Src when nothing fired
	Applied []string // names of the fixes that fired, in firing order
	Changed bool     // Out differs from Src
	Err     error    // parse, I/O, render, or convergence failure
}

// Process parses src, drives the fix set to a fixed point, and
// renders the result. Every failure is reported through the outcome;
// Process never panics and never touches the file system. When no fix
// fires, Out is Src verbatim, so an unformatted but already-migrated
// file produces no reformat-only churn.
func Process(path string, src []byte, fixes []Fix) Outcome {
	o := Outcome{Path: path, Src: src, Out: src}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parserMode)
	if err != nil {
		o.Err = err
		return o
	}

	applied, err := Drive(path, file, fixes)
	o.Applied = applied
	if err != nil {
		o.Err = err
		return o
	}
	if len(applied) == 0 {
		return o
	}

	out, err := gofmtFile(fset, file)
	if err != nil {
		o.Err = xerrors.Errorf("%s: printing: %w", path, err)
		return o
	}
	o.Out = out
	o.Changed = !bytes.Equal(o.Out, o.Src)
	return o
}

// ProcessFile reads path and processes it. Read failures are recorded
// in the outcome like any other per-file error.
func ProcessFile(path string, fixes []Fix) Outcome {
	src, err := os.ReadFile(path)
	if err != nil {
		return Outcome{Path: path, Err: xerrors.Errorf("reading %s: %w", path, err)}
	}
	return Process(path, src, fixes)
}

// Gofmt reparses src and prints it in canonical form without applying
// any fixes. The test harness uses it to insist that fix inputs are
// already formatted, so expected outputs are exact.
func Gofmt(src []byte) ([]byte, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "gofmt.go", src, parserMode)
	if err != nil {
		return nil, err
	}
	return gofmtFile(fset, file)
}

func gofmtFile(fset *token.FileSet, file *ast.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := printConfig.Fprint(&buf, fset, file); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
