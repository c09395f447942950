// Command bdiff is a CLI front end over the bdiff/mpatch engines: compute
// the matching-block structure or binary delta between two files, apply a
// chain of deltas to an original, or just normalize whitespace.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bdiff:", err)
		os.Exit(1)
	}
}
