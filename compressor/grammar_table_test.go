package compressor

import (
	"testing"

	"github.com/nihei9-lab/lrtab/grammar"
)

func TestCompact_roundTripsAgainstOriginalRows(t *testing.T) {
	g := grammar.NewGrammar()
	g.AddRule("term").NonTerminal("add")
	g.AddRule("add").NonTerminal("add").Literal("+").NonTerminal("mul")
	g.AddRule("add").NonTerminal("mul")
	g.AddRule("mul").NonTerminal("mul").Literal("*").NonTerminal("unary")
	g.AddRule("mul").NonTerminal("unary")
	g.AddRule("unary").Terminal("INT")
	g.AddRule("unary").Literal("(").NonTerminal("add").Literal(")")

	table, _, err := grammar.Compile(g)
	if err != nil {
		t.Fatalf("Compile() = %v", err)
	}

	compact, err := Compact(table)
	if err != nil {
		t.Fatalf("Compact() = %v", err)
	}

	for i, row := range table.Rows {
		for key, want := range row.Action {
			got, ok := compact.LookupAction(i, key)
			if !ok {
				t.Errorf("state %d: LookupAction(%q) missing, want %v", i, key, want)
				continue
			}
			if got != want {
				t.Errorf("state %d: LookupAction(%q) = %v, want %v", i, key, got, want)
			}
		}
		for key, want := range row.Goto {
			got, ok := compact.LookupGoto(i, key)
			if !ok || got != want {
				t.Errorf("state %d: LookupGoto(%q) = %v,%v want %v,true", i, key, got, ok, want)
			}
		}
	}
}
