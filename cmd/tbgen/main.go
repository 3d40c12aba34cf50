// SPDX-License-Identifier: MIT

// Command tbgen builds tight-binding Hamiltonians from YAML lattice configs.
//
// Usage:
//
//	tbgen presets
//	tbgen build -c lattice.yaml [-o out.mtx] [--probe x,y,z] [-v]
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
