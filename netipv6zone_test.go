// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

var netipv6zoneTests = []testCase{
	{
		Name: "netipv6zone.0",
		Fix:  netipv6zoneFix,
		In: `package main

import "net"

func f() {
	a := &net.IPAddr{ip1}
	sub(&net.UDPAddr{ip2, 12345})
	c := &net.TCPAddr{IP: ip3, Port: 54321}
	d := &net.TCPAddr{ip4, 0}
	e := &net.TCPAddr{ip4, p}
	use(a, c, d, e)
}
`,
		Out: `package main

import "net"

func f() {
	a := &net.IPAddr{IP: ip1}
	sub(&net.UDPAddr{IP: ip2, Port: 12345})
	c := &net.TCPAddr{IP: ip3, Port: 54321}
	d := &net.TCPAddr{IP: ip4}
	e := &net.TCPAddr{IP: ip4, Port: p}
	use(a, c, d, e)
}
`,
	},
	{
		// Value literals get the same treatment as pointer literals.
		Name: "netipv6zone.1",
		Fix:  netipv6zoneFix,
		In: `package main

import "net"

var a = net.UDPAddr{ip, port}
`,
		Out: `package main

import "net"

var a = net.UDPAddr{IP: ip, Port: port}
`,
	},
	{
		// Without the net import the fix does not even look.
		Name: "netipv6zone.2",
		Fix:  netipv6zoneFix,
		In: `package main

var a = IPAddr{ip1}
`,
		Out: `package main

var a = IPAddr{ip1}
`,
	},
	{
		// An empty literal has nothing to key.
		Name: "netipv6zone.3",
		Fix:  netipv6zoneFix,
		In: `package main

import "net"

var a = &net.TCPAddr{}
`,
		Out: `package main

import "net"

var a = &net.TCPAddr{}
`,
	},
}
