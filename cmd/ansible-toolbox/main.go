// SPDX-License-Identifier: MIT

package main

import "github.com/nasgware/ansible-toolbox/internal/cli"

// Build-time variable (set via ldflags)
var version = "dev"

func main() {
	cli.Version = version
	cli.Execute()
}
