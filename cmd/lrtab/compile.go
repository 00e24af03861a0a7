package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nihei9-lab/lrtab/compressor"
	"github.com/nihei9-lab/lrtab/grammar"
	"github.com/nihei9-lab/lrtab/ruledsl"
	"github.com/spf13/cobra"
)

var compileFlags = struct {
	compact *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile <rules-file>",
		Short:   "Compile a rule-definition file into an action/goto table",
		Example: "  lrtab compile grammar.rules",
		Args:    cobra.ExactArgs(1),
		RunE:    runCompile,
	}
	compileFlags.compact = cmd.Flags().Bool("compact", false, "emit a row-displacement-compressed table instead of the dense one")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}

	table, _, err := grammar.Compile(g)
	if err != nil {
		return err
	}

	if *compileFlags.compact {
		compact, err := compressor.Compact(table)
		if err != nil {
			return fmt.Errorf("cannot compress the table: %w", err)
		}
		return writeJSON(compact)
	}
	return writeJSON(table)
}

func readGrammar(path string) (*grammar.Grammar, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open the rule-definition file %s: %w", path, err)
	}
	return ruledsl.Parse(string(src), path)
}

func writeJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%s\n", b)
	return nil
}
