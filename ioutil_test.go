// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

var ioutilTests = []testCase{
	{
		// Only os replacements: the old import is retargeted in place.
		Name: "ioutil.0",
		Fix:  ioutilFix,
		In: `package main

import "io/ioutil"

func f() error {
	data, err := ioutil.ReadFile("in.txt")
	if err != nil {
		return err
	}
	return ioutil.WriteFile("out.txt", data, 0o644)
}
`,
		Out: `package main

import "os"

func f() error {
	data, err := os.ReadFile("in.txt")
	if err != nil {
		return err
	}
	return os.WriteFile("out.txt", data, 0o644)
}
`,
	},
	{
		// Only io replacements, inside an import block.
		Name: "ioutil.1",
		Fix:  ioutilFix,
		In: `package main

import (
	"io/ioutil"
	"strings"
)

func f() ([]byte, error) {
	return ioutil.ReadAll(strings.NewReader("x"))
}
`,
		Out: `package main

import (
	"io"
	"strings"
)

func f() ([]byte, error) {
	return io.ReadAll(strings.NewReader("x"))
}
`,
	},
	{
		// Both io and os are needed: one reuses the old import slot,
		// the other is added.
		Name: "ioutil.2",
		Fix:  ioutilFix,
		In: `package main

import "io/ioutil"

func f() error {
	data, err := ioutil.ReadFile("in.txt")
	if err != nil {
		return err
	}
	_ = ioutil.NopCloser(nil)
	return ioutil.WriteFile("out.txt", data, 0o644)
}
`,
		Out: `package main

import (
	"io"
	"os"
)

func f() error {
	data, err := os.ReadFile("in.txt")
	if err != nil {
		return err
	}
	_ = io.NopCloser(nil)
	return os.WriteFile("out.txt", data, 0o644)
}
`,
	},
	{
		// ReadDir has no drop-in replacement, so the ioutil import
		// stays while everything else still migrates.
		Name: "ioutil.3",
		Fix:  ioutilFix,
		In: `package main

import "io/ioutil"

func f() error {
	list, err := ioutil.ReadDir(".")
	if err != nil {
		return err
	}
	for _, fi := range list {
		if _, err := ioutil.ReadFile(fi.Name()); err != nil {
			return err
		}
	}
	return nil
}
`,
		Out: `package main

import (
	"io/ioutil"
	"os"
)

func f() error {
	list, err := ioutil.ReadDir(".")
	if err != nil {
		return err
	}
	for _, fi := range list {
		if _, err := os.ReadFile(fi.Name()); err != nil {
			return err
		}
	}
	return nil
}
`,
	},
	{
		// Everything needed is already imported: the old import is
		// simply dropped.
		Name: "ioutil.4",
		Fix:  ioutilFix,
		In: `package main

import (
	"io/ioutil"
	"os"
)

func f() ([]byte, error) {
	if _, err := os.Stat("x"); err != nil {
		return nil, err
	}
	return ioutil.ReadFile("x")
}
`,
		Out: `package main

import (
	"os"
)

func f() ([]byte, error) {
	if _, err := os.Stat("x"); err != nil {
		return nil, err
	}
	return os.ReadFile("x")
}
`,
	},
	{
		// Non-call mention through another name is left alone.
		Name: "ioutil.5",
		Fix:  ioutilFix,
		In: `package main

import iou "io/ioutil"

func f() ([]byte, error) {
	return iou.ReadFile("x")
}
`,
		Out: `package main

import iou "io/ioutil"

func f() ([]byte, error) {
	return iou.ReadFile("x")
}
`,
	},
}
