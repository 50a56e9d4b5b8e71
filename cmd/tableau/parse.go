package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tableaulogic/tableau/ast"
	"github.com/tableaulogic/tableau/parser"
	"github.com/tableaulogic/tableau/serialize"
	"github.com/tableaulogic/tableau/tree"
)

var parseFlags = struct {
	source *string
	format *string
}{}

const (
	outputFormatText = "text"
	outputFormatJSON = "json"
)

func init() {
	cmd := &cobra.Command{
		Use:     "parse",
		Short:   "Parse a statement set or argument",
		Example: `  echo '{A, B, C}' | tableau parse`,
		Args:    cobra.NoArgs,
		RunE:    runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	parseFlags.format = cmd.Flags().StringP("format", "f", outputFormatText, "output format: one of text|json")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if *parseFlags.format != outputFormatText && *parseFlags.format != outputFormatJSON {
		return fmt.Errorf("invalid output format: %v", *parseFlags.format)
	}

	src := io.Reader(os.Stdin)
	if *parseFlags.source != "" {
		f, err := os.Open(*parseFlags.source)
		if err != nil {
			return fmt.Errorf("cannot open the source file %s: %w", *parseFlags.source, err)
		}
		defer f.Close()
		src = f
	}

	pt, err := parser.Parse(src)
	if err != nil {
		return err
	}

	switch *parseFlags.format {
	case outputFormatJSON:
		tt := tree.New(tree.NewBranch(seedNodes(pt)))
		b, err := serialize.Marshal(tt)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(b))
	default:
		switch v := pt.(type) {
		case ast.StatementSet:
			fmt.Fprintln(os.Stdout, v.CanonicalString())
		case ast.Argument:
			fmt.Fprintln(os.Stdout, v.CanonicalString())
		}
	}
	return nil
}

// seedNodes flattens a ParseTree into the seed BranchNodes a tableau engine
// would start from: every statement in a StatementSet, or every premise
// plus the negated conclusion for an Argument (spec.md §1 "The user supplies
// ... tested for validity by attempting to refute the union of the premises
// with the negation of the conclusion").
func seedNodes(pt ast.ParseTree) []tree.BranchNode {
	var stmts []ast.Statement
	switch v := pt.(type) {
	case ast.StatementSet:
		stmts = v.Statements
	case ast.Argument:
		stmts = append(stmts, v.Premises...)
		stmts = append(stmts, ast.LogicalNegation{Operand: v.Conclusion})
	}
	nodes := make([]tree.BranchNode, len(stmts))
	for i, s := range stmts {
		nodes[i] = tree.BranchNode{Statement: s}
	}
	return nodes
}
