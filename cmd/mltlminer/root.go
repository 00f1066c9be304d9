package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mltlminer",
	Short: "Mine MLTL classifiers from labeled trace datasets",
	Long: `mltlminer provides two features:
- Searches a labeled trace dataset for MLTL formulas that classify it well.
- Parses and pretty-prints a single MLTL formula, for exercising the
  parser and AST without a dataset.`,
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
