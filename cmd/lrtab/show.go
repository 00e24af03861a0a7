package main

import (
	"fmt"
	"os"

	"github.com/nihei9-lab/lrtab/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var showFlags = struct {
	format *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "show <rules-file>",
		Short:   "Print the FIRST sets, automaton, and table for a grammar",
		Example: "  lrtab show grammar.rules --format pretty",
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	showFlags.format = cmd.Flags().String("format", "text", `output format: "text" or "pretty"`)
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return err
	}

	first := grammar.ComputeFirst(g)
	automaton := grammar.BuildAutomaton(g, first)
	table, err := grammar.BuildTable(automaton, g)
	if err != nil {
		return err
	}

	switch *showFlags.format {
	case "pretty":
		showPretty(g, first, automaton, table)
		return nil
	case "text":
		fmt.Fprint(os.Stdout, grammar.DumpRules(g))
		fmt.Fprint(os.Stdout, grammar.DumpFirst(first))
		fmt.Fprint(os.Stdout, grammar.DumpAutomaton(automaton))
		fmt.Fprint(os.Stdout, grammar.DumpTable(table))
		return nil
	default:
		return fmt.Errorf("unknown format %q, want %q or %q", *showFlags.format, "text", "pretty")
	}
}

// showPretty prints the rules and FIRST sets, renders the automaton as a
// pterm tree, one branch per state, with items and outgoing edges as
// leaves, and then prints the table. Grounded on the
// leveled-list tree rendering in npillmayer-gorgo's terex REPL
// (terex/terexlang/trepl/repl.go), reused here for a grammar automaton
// instead of an s-expression.
func showPretty(g *grammar.Grammar, first grammar.FirstSets, a *grammar.Automaton, t *grammar.Table) {
	pterm.Info.Println("rules")
	for _, r := range g.Rules() {
		pterm.Println(r.String())
	}

	pterm.Info.Println("FIRST sets")
	pterm.Println(grammar.DumpFirst(first))

	pterm.Info.Println("automaton")
	var ll pterm.LeveledList
	for _, s := range a.States {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: fmt.Sprintf("state %d", s.Index)})
		for _, it := range s.Items() {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: it.String()})
		}
		for _, e := range s.Out {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: fmt.Sprintf("-> %s (state %d)", e.Label, e.To.Index)})
		}
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()

	pterm.Info.Println("table")
	pterm.Println(grammar.DumpTable(t))
}
