package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/kxue43/asset-toolkit/characters"
)

// Maintainer helper: eyeball the rename table and catch new entries whose
// target names stray from the artwork naming scheme.
func main() {
	table := characters.Table()

	spew.Dump(table)

	bad := 0

	for _, e := range table {
		if !characters.IsCanonical(e.New) {
			fmt.Fprintf(os.Stderr, "not canonical: %s\n", e.New)

			bad++
		}
	}

	if bad > 0 {
		os.Exit(1)
	}
}
