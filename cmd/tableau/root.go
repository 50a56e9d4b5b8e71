package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tableau",
	Short: "Parse first-order statements and seed a truth tree from them",
	Long: `tableau provides two features:
- Parses a statement set or argument written in the Unicode surface syntax
  into its abstract syntax tree.
- Seeds a single-branch truth tree from that parse tree, for inspection.
This command does not itself decide validity or satisfiability: expanding
the tableau is left to a separate engine built on top of this package.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
