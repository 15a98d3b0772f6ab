// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fix

import (
	"fmt"
	"go/ast"
	"reflect"
)

// Walk traverses the syntax tree rooted at x in pre-order, calling
// visit on every node it passes through, including x itself.
// Traversal is driven by reflection over each value's shape rather
// than a per-type switch, so node kinds added to go/ast are walked
// with no change here. Children are visited in struct field order,
// slice elements in slice order; that order is what makes multiple
// rewrites inside one file land deterministically.
//
// Mutation happens through the node pointers visit receives: a visit
// callback may edit a node in place or replace a child through its
// parent (for example by assigning into the parent's element slice).
// A walk is single-threaded and non-reentrant, so no locking is
// needed on the tree.
func Walk(x any, visit func(any)) {
	walkBeforeAfter(x, visit, nop)
}

// WalkBeforeAfter is like Walk but calls before on the way down and
// after on the way back up.
func WalkBeforeAfter(x any, before, after func(any)) {
	walkBeforeAfter(x, before, after)
}

func nop(any) {}

// maxWalkDepth bounds the traversal. A well-formed tree stays far
// below it; the guard exists only so that a cycle accidentally built
// by a broken fix panics with a clear message instead of hanging.
// It is defensive and not part of the walker's contract.
const maxWalkDepth = 10000

type walker struct {
	before func(any)
	after  func(any)
}

func walkBeforeAfter(x any, before, after func(any)) {
	w := &walker{before: before, after: after}
	w.value(reflect.ValueOf(x), 0)
}

func (w *walker) value(v reflect.Value, depth int) {
	if !v.IsValid() {
		return
	}
	if depth > maxWalkDepth {
		panic(fmt.Sprintf("fix: walk depth exceeds %d (cycle in syntax tree?)", maxWalkDepth))
	}

	switch v.Kind() {
	case reflect.Interface:
		// A nil interface produces an invalid Value, handled above.
		w.value(v.Elem(), depth+1)

	case reflect.Pointer:
		if v.IsNil() || skipPointer[v.Type()] {
			return
		}
		w.node(v, depth)

	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			w.value(v.Index(i), depth+1)
		}
	}

	// Everything else (positions, token kinds, literal strings,
	// flags) is a leaf with no children.
}

// node visits a non-nil node pointer, then its fields.
func (w *walker) node(v reflect.Value, depth int) {
	x := v.Interface()
	w.before(x)
	elem := v.Elem()
	if elem.Kind() == reflect.Struct {
		t := elem.Type()
		for i := 0; i < elem.NumField(); i++ {
			if t == fileType && skipFileField[t.Field(i).Name] {
				continue
			}
			w.value(elem.Field(i), depth+1)
		}
	}
	w.after(x)
}

var fileType = reflect.TypeOf(ast.File{})

// Objects and scopes point back up and across the tree;
// following them would loop.
var skipPointer = map[reflect.Type]bool{
	reflect.TypeOf((*ast.Object)(nil)): true,
	reflect.TypeOf((*ast.Scope)(nil)):  true,
}

// Imports and Unresolved on ast.File are index views over nodes
// already reachable through Decls; walking them would visit those
// nodes a second time.
var skipFileField = map[string]bool{
	"Scope":      true,
	"Imports":    true,
	"Unresolved": true,
}
