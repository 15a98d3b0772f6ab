// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fix implements the engine behind gofix: a catalog of named,
// dated, idempotent rewrites applied to Go source files until they
// reach a fixed point.
package fix

import (
	"fmt"
	"go/ast"
	"sort"
	"strings"
)

// A Fix is a single self-contained rewrite of a source file.
// Fixes are immutable once registered.
type Fix struct {
	Name string // unique identifier, used by --rewrites and in reports
	Date string // date the fix was introduced, in YYYY-MM-DD form

	// Applies is a cheap, pure, non-mutating check that the fix is
	// even potentially relevant to the file (typically "does it
	// import the affected package"). It is an optimization only:
	// F must be safe to run unconditionally. A nil Applies means
	// always run.
	Applies func(*ast.File) bool

	// F rewrites the file in place and reports whether it changed
	// anything. The report must be exact; the driver's convergence
	// detection depends on it.
	F func(*ast.File) bool

	Desc string
}

// A Registry is an immutable, ordered catalog of fixes. It is safe
// for concurrent readers once built.
type Registry struct {
	fixes  []Fix
	byName map[string]Fix
}

// NewRegistry builds a registry from the given fixes, ordered by
// (date, name) ascending. The ordering is load-bearing: a later fix
// may assume earlier ones already normalized its input pattern.
// NewRegistry fails if two fixes share a name.
func NewRegistry(fixes ...Fix) (*Registry, error) {
	r := &Registry{byName: make(map[string]Fix, len(fixes))}
	for _, f := range fixes {
		if _, ok := r.byName[f.Name]; ok {
			return nil, fmt.Errorf("fix: duplicate fix name %q", f.Name)
		}
		r.byName[f.Name] = f
		r.fixes = append(r.fixes, f)
	}
	sort.Slice(r.fixes, func(i, j int) bool {
		fi, fj := r.fixes[i], r.fixes[j]
		if fi.Date != fj.Date {
			return fi.Date < fj.Date
		}
		return fi.Name < fj.Name
	})
	return r, nil
}

// All returns every registered fix in registry order.
func (r *Registry) All() []Fix {
	return append([]Fix(nil), r.fixes...)
}

// Select returns the fixes with the given names, in registry order.
// If any name is unknown it returns an *UnknownFixError listing every
// unknown name, so a user correcting a typo sees all of them at once.
func (r *Registry) Select(names []string) ([]Fix, error) {
	want := make(map[string]bool, len(names))
	var unknown []string
	for _, name := range names {
		if _, ok := r.byName[name]; !ok {
			unknown = append(unknown, name)
			continue
		}
		want[name] = true
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &UnknownFixError{Names: unknown}
	}
	var out []Fix
	for _, f := range r.fixes {
		if want[f.Name] {
			out = append(out, f)
		}
	}
	return out, nil
}

// An UnknownFixError reports requested fix names that are not in the
// registry. It is a usage error: the caller should fail the whole
// invocation before touching any file.
type UnknownFixError struct {
	Names []string
}

func (e *UnknownFixError) Error() string {
	if len(e.Names) == 1 {
		return "unknown fix: " + e.Names[0]
	}
	return "unknown fixes: " + strings.Join(e.Names, ", ")
}
