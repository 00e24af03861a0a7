package grammar

// Grammar is an ordered sequence of rules plus the derived set of declared
// non-terminals. The first rule registered is the root rule; its LHS is the
// start symbol. Rules are immutable once table construction begins (i.e.
// once Compile or Validate has been called), but nothing in this type
// enforces that beyond convention — the caller is expected to build the
// whole grammar before handing it to the table builder.
type Grammar struct {
	rules []*Rule
}

// NewGrammar creates an empty grammar.
func NewGrammar() *Grammar {
	return &Grammar{}
}

// AddRule registers a new rule with the given LHS and returns a builder for
// its RHS. Repeated LHS values are legal and represent alternation: calling
// AddRule("expr") twice creates two distinct rules both reducing to "expr".
func (g *Grammar) AddRule(lhs string) *RuleBuilder {
	r := &Rule{
		Index: len(g.rules),
		LHS:   NonTerm(lhs),
	}
	g.rules = append(g.rules, r)
	return &RuleBuilder{rule: r}
}

// Rules returns the registered rules in registration order.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// RootRule returns the first registered rule, or nil if the grammar is
// empty.
func (g *Grammar) RootRule() *Rule {
	if len(g.rules) == 0 {
		return nil
	}
	return g.rules[0]
}

// StartSymbol returns the LHS of the root rule.
func (g *Grammar) StartSymbol() Symbol {
	return g.RootRule().LHS
}

// NonTerminals returns the set of every non-terminal name that appears as
// some rule's LHS.
func (g *Grammar) NonTerminals() map[string]bool {
	nts := map[string]bool{}
	for _, r := range g.rules {
		nts[r.LHS.Name()] = true
	}
	return nts
}

// RulesFor returns, in registration order, every rule whose LHS is nt.
func (g *Grammar) RulesFor(nt string) []*Rule {
	var out []*Rule
	for _, r := range g.rules {
		if r.LHS.Name() == nt {
			out = append(out, r)
		}
	}
	return out
}

// Validate performs the generator-time structural checks of spec §7 items
// 1-2: the grammar must be non-empty, and every non-terminal referenced on
// any RHS must appear as some rule's LHS.
func (g *Grammar) Validate() error {
	if len(g.rules) == 0 {
		return ErrEmptyGrammar
	}

	declared := g.NonTerminals()
	for _, r := range g.rules {
		for _, sym := range r.RHS {
			if sym.IsNonTerminal() && !declared[sym.Name()] {
				return &ErrUndefinedNonTerminal{Name: sym.Name()}
			}
		}
	}

	return nil
}
