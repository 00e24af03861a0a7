package grammar

// Rule is the immutable form of a grammar production once a RuleBuilder has
// finished appending to it. Index is assigned positionally when the rule is
// registered, in the order rules are added to the Grammar (root rule first);
// it is the value emitted into Reduce table entries.
type Rule struct {
	Index    int
	LHS      Symbol
	RHS      []Symbol
	Callback string
}

func (r *Rule) String() string {
	s := r.LHS.Name() + " ->"
	if len(r.RHS) == 0 {
		s += " <empty>"
	}
	for _, sym := range r.RHS {
		s += " " + sym.Name()
	}
	if r.Callback != "" {
		s += " => " + r.Callback
	}
	return s
}

// RuleBuilder accumulates the RHS of a single rule being registered with a
// Grammar. A Grammar hands one out per AddRule call; the caller appends
// terminal or non-terminal items in left-to-right order and optionally sets
// a callback identifier before moving on to the next rule.
type RuleBuilder struct {
	rule *Rule
}

// Terminal appends a token-class terminal (e.g. "INT") to the rule's RHS.
func (b *RuleBuilder) Terminal(class string) *RuleBuilder {
	b.rule.RHS = append(b.rule.RHS, TermClass(class))
	return b
}

// Literal appends a literal terminal (e.g. "+") to the rule's RHS.
func (b *RuleBuilder) Literal(lexeme string) *RuleBuilder {
	b.rule.RHS = append(b.rule.RHS, TermLiteral(lexeme))
	return b
}

// NonTerminal appends a non-terminal reference to the rule's RHS.
func (b *RuleBuilder) NonTerminal(name string) *RuleBuilder {
	b.rule.RHS = append(b.rule.RHS, NonTerm(name))
	return b
}

// Callback sets the optional semantic-action identifier fired on reduction.
func (b *RuleBuilder) Callback(name string) *RuleBuilder {
	b.rule.Callback = name
	return b
}

// Rule returns the rule under construction. It is valid to call this at any
// point; the returned pointer continues to reflect later builder calls.
func (b *RuleBuilder) Rule() *Rule {
	return b.rule
}
