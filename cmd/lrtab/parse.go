package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nihei9-lab/lrtab/driver"
	"github.com/nihei9-lab/lrtab/grammar"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "parse <rules-file> <input-file>",
		Short:   "Parse an input file against a grammar and report the reduction trace",
		Example: "  lrtab parse grammar.rules input.txt",
		Args:    cobra.ExactArgs(2),
		RunE:    runParse,
	}
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}
	table, _, err := grammar.Compile(g)
	if err != nil {
		return err
	}

	input, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("cannot open the input file %s: %w", args[1], err)
	}
	toks := tokenize(string(input))

	p := driver.NewParser(table, driver.NewCallbackRegistry())
	trace, err := p.Run(driver.NewSliceTokenSource(toks))
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "accepted, reductions: %v\n", trace)
	return nil
}

// tokenize is the CLI's minimal built-in lexer (spec.md §6.2 leaves the
// lexical layer as an external collaborator): input is split on
// whitespace, and each field is classified as one of the five reserved
// token classes or, failing that, taken verbatim as a literal. Input given
// to `lrtab parse` must therefore have every literal already
// whitespace-separated from its neighbors.
func tokenize(input string) []driver.Token {
	var toks []driver.Token
	for _, field := range strings.Fields(input) {
		toks = append(toks, classify(field))
	}
	return toks
}

func classify(field string) driver.Token {
	if strings.HasPrefix(field, `"`) && strings.HasSuffix(field, `"`) && len(field) >= 2 {
		return driver.Token{Class: driver.Str, Lexeme: field[1 : len(field)-1]}
	}
	if strings.HasPrefix(field, "0x") || strings.HasPrefix(field, "0X") {
		if v, err := strconv.ParseInt(field[2:], 16, 64); err == nil {
			return driver.Token{Class: driver.Hex, Lexeme: field, Value: v}
		}
	}
	if v, err := strconv.Atoi(field); err == nil {
		return driver.Token{Class: driver.Int, Lexeme: field, Value: v}
	}
	if v, err := strconv.ParseFloat(field, 64); err == nil {
		return driver.Token{Class: driver.Real, Lexeme: field, Value: v}
	}
	if isIdentifier(field) {
		return driver.Token{Class: driver.Ident, Lexeme: field}
	}
	return driver.Token{Class: driver.Literal, Lexeme: field}
}

func isIdentifier(field string) bool {
	for i, r := range field {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		isDigit := r >= '0' && r <= '9'
		if i == 0 && !isLetter {
			return false
		}
		if !isLetter && !isDigit {
			return false
		}
	}
	return len(field) > 0
}
