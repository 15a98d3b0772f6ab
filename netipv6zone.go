// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"go/ast"

	"gofix/fix"
)

var netipv6zoneFix = fix.Fix{
	Name: "netipv6zone",
	Date: "2012-11-26",
	Applies: func(f *ast.File) bool {
		return fix.Imports(f, "net")
	},
	F: netipv6zone,
	Desc: `Adapt element key to IPAddr, UDPAddr or TCPAddr composite literals.

https://codereview.appspot.com/6849045/
`,
}

// netipv6zone rewrites positional net.IPAddr, net.UDPAddr and
// net.TCPAddr composite literals to keyed form. The structs grew a
// Zone field, so positional construction no longer means what it
// used to. A literal containing any key/value element is already
// migrated and is left alone. A second element that is the literal 0
// is dropped: the Port field defaults to zero anyway.
func netipv6zone(f *ast.File) bool {
	fixed := false
	fix.Walk(f, func(n any) {
		cl, ok := n.(*ast.CompositeLit)
		if !ok {
			return
		}
		se, ok := cl.Type.(*ast.SelectorExpr)
		if !ok {
			return
		}
		if !fix.IsTopName(se.X, "net") || se.Sel == nil {
			return
		}
		switch se.Sel.Name {
		case "IPAddr", "UDPAddr", "TCPAddr":
			// ok
		default:
			return
		}
		for _, e := range cl.Elts {
			if _, ok := e.(*ast.KeyValueExpr); ok {
				return
			}
		}
		for i, e := range cl.Elts {
			switch i {
			case 0:
				cl.Elts[i] = &ast.KeyValueExpr{
					Key:   ast.NewIdent("IP"),
					Value: e,
				}
			case 1:
				if lit, ok := e.(*ast.BasicLit); ok && lit.Value == "0" {
					cl.Elts = append(cl.Elts[:i], cl.Elts[i+1:]...)
				} else {
					cl.Elts[i] = &ast.KeyValueExpr{
						Key:   ast.NewIdent("Port"),
						Value: e,
					}
				}
			}
			fixed = true
		}
	})
	return fixed
}
