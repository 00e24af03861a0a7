package grammar

import (
	"testing"
)

func arithGrammar() *Grammar {
	g := NewGrammar()
	g.AddRule("term").NonTerminal("add")
	g.AddRule("add").NonTerminal("add").Literal("+").NonTerminal("mul")
	g.AddRule("add").NonTerminal("mul")
	g.AddRule("mul").NonTerminal("mul").Literal("*").NonTerminal("unary")
	g.AddRule("mul").NonTerminal("unary")
	g.AddRule("unary").Terminal("INT")
	g.AddRule("unary").Literal("(").NonTerminal("add").Literal(")")
	return g
}

func TestComputeFirst(t *testing.T) {
	g := arithGrammar()
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	first := ComputeFirst(g)

	tests := []struct {
		nt   string
		want []string
	}{
		{"term", []string{":(", "INT"}},
		{"add", []string{":(", "INT"}},
		{"mul", []string{":(", "INT"}},
		{"unary", []string{":(", "INT"}},
	}
	for _, tt := range tests {
		got := sortedStrings(first.first(tt.nt))
		if !equalStrings(got, tt.want) {
			t.Errorf("FIRST(%s) = %v, want %v", tt.nt, got, tt.want)
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := map[string]bool{}
	for _, x := range a {
		seen[x] = true
	}
	for _, x := range b {
		if !seen[x] {
			return false
		}
	}
	return true
}

func TestComputeFirst_furtherPassAddsNothing(t *testing.T) {
	g := arithGrammar()
	first := ComputeFirst(g)
	sizesBefore := map[string]int{}
	for nt, s := range first {
		sizesBefore[nt] = s.Size()
	}

	// One further pass over every rule, applying the same leftmost-symbol
	// step ComputeFirst iterates, must add nothing (FIRST completeness,
	// spec §8).
	for _, r := range g.Rules() {
		if len(r.RHS) == 0 {
			continue
		}
		x := r.RHS[0]
		dst := first[r.LHS.Name()]
		if x.IsTerminal() {
			dst.Add(x.Name())
		} else {
			unionInto(dst, first[x.Name()])
		}
	}
	for nt, s := range first {
		if s.Size() != sizesBefore[nt] {
			t.Errorf("FIRST(%s) grew on a further pass: %d -> %d", nt, sizesBefore[nt], s.Size())
		}
	}
}
