package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lrtab",
	Short: "Generate a canonical LR(1) parsing table from a rule-definition file",
	Long: `lrtab provides three features:
- Compiles a rule-definition file into a canonical LR(1) action/goto table.
- Prints the FIRST sets, automaton states, and table for a grammar.
- Parses an input file against a grammar and reports the sequence of rules reduced.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
