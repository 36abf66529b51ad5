// Command patchwall computes the cheapest way to patch a damaged wall.
//
// Usage:
//
//	patchwall solve [file ...]   print the minimum price of each input
//	patchwall plan [file]        print the patch layout and a summary
//
// Inputs are read from stdin when no file is given. See package wallio for
// the input format.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
