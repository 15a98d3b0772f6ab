// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "gofix/fix"

// allFixes lists every known fix in one place, so the registry is
// assembled explicitly at startup rather than by init side effects
// scattered across files.
func allFixes() []fix.Fix {
	return []fix.Fix{
		netipv6zoneFix,
		ioutilFix,
	}
}
