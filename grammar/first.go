package grammar

import "github.com/emirpasic/gods/sets/treeset"

// FirstSets maps a non-terminal name to its FIRST set, a *treeset.Set of
// terminal-symbol name strings (spec §3 "FIRST map").
type FirstSets map[string]*treeset.Set

// ComputeFirst runs the fixed-point algorithm of spec §4.2 over g. It
// assumes g has already been validated: every non-terminal referenced on an
// RHS has at least one rule. It does not handle epsilon productions (spec
// §1 Non-goals, §9 Open Questions) — only the leftmost RHS symbol of each
// rule is ever consulted.
func ComputeFirst(g *Grammar) FirstSets {
	first := FirstSets{}
	for nt := range g.NonTerminals() {
		first[nt] = newTerminalSet()
	}

	for {
		changed := false
		for _, r := range g.Rules() {
			if len(r.RHS) == 0 {
				continue
			}
			x := r.RHS[0]
			dst := first[r.LHS.Name()]
			if x.IsTerminal() {
				if !dst.Contains(x.Name()) {
					dst.Add(x.Name())
					changed = true
				}
			} else {
				if unionInto(dst, first[x.Name()]) {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return first
}

// first returns the FIRST set of a non-terminal, or an empty set if it is
// unknown to fs (should not happen for a validated grammar).
func (fs FirstSets) first(nt string) *treeset.Set {
	if s, ok := fs[nt]; ok {
		return s
	}
	return newTerminalSet()
}
