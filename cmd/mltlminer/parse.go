package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zwang271/mltl-inference/parser"
)

func init() {
	cmd := &cobra.Command{
		Use:     "parse <formula>",
		Short:   "Parse a single MLTL formula and print its canonical and pretty forms",
		Example: `  mltlminer parse "G[0,5](p0->p1)"`,
		Args:    cobra.ExactArgs(1),
		RunE:    runParse,
	}
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	f, err := parser.Parse(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	fmt.Fprintf(os.Stdout, "canonical: %s\n", f.AsString())
	fmt.Fprintf(os.Stdout, "pretty:    %s\n", f.AsPrettyString())
	return nil
}
