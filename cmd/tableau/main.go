// Command tableau parses a statement set or argument and seeds a truth
// tree from it; see root.go for the command tree and parse.go for the
// parse subcommand's flags.
package main

import (
	"fmt"
	"os"
)

func main() {
	err := Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
