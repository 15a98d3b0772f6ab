// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fix

import (
	"fmt"
	"go/ast"
)

// maxPasses bounds the fixed-point loop. Correct fix sets settle in a
// pass or two; the cap exists only to contain a defective fix that
// keeps toggling a pattern back and forth. Fixes must never rely on
// hitting it.
const maxPasses = 10

// A ConvergenceError reports a fix set that failed to stabilize
// within the pass cap. It marks a defect in a fix, not in the input.
type ConvergenceError struct {
	Path   string
	Passes int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: fixes did not converge after %d passes", e.Path, e.Passes)
}

// Drive applies the fixes, in order, to file, repeating full passes
// until one changes nothing. A single pass is not enough: one fix may
// rewrite a pattern into a shape that a later fix (or another match
// of the same fix) now recognizes. Drive returns the names of the
// fixes that fired, in the order they first fired. The tree may have
// been mutated even when an error is returned.
func Drive(path string, file *ast.File, fixes []Fix) ([]string, error) {
	var applied []string
	fired := make(map[string]bool)
	for pass := 1; ; pass++ {
		if pass > maxPasses {
			return applied, &ConvergenceError{Path: path, Passes: maxPasses}
		}
		changed := false
		for _, f := range fixes {
			if f.Applies != nil && !f.Applies(file) {
				continue
			}
			if f.F(file) {
				changed = true
				if !fired[f.Name] {
					fired[f.Name] = true
					applied = append(applied, f.Name)
				}
			}
		}
		if !changed {
			return applied, nil
		}
	}
}
