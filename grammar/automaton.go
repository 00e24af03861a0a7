package grammar

// Automaton is the canonical LR(1) automaton: an ordered collection of
// admitted states, no two of which are item-set-equal (spec §3
// "Automaton").
type Automaton struct {
	States []*State
}

// BuildAutomaton constructs the canonical LR(1) automaton for g (spec §4.4).
// It seeds a single initial state containing the item
// [root-rule -> . rhs, {END}], then runs a LIFO worklist of tentative
// states to a fixed point, admitting each one that is not item-set-equal to
// an already-admitted state and folding the rest into their equivalent
// admitted state by redirecting incoming edges. State indices follow
// admission order, which this LIFO discipline determines; they carry no
// other meaning.
func BuildAutomaton(g *Grammar, first FirstSets) *Automaton {
	root := g.RootRule()
	initItem := newItem(root, 0, newTerminalSet(EndClass))
	initial := newTentativeState([]*lrItem{initItem})

	a := &Automaton{}
	worklist := []*State{initial}

	for len(worklist) > 0 {
		// pop the top of the (LIFO) worklist
		q := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		tentativeSuccessors := closure(q, g, first)

		if existing := a.findEqual(q); existing != nil {
			redirectIncoming(q, existing)
			// q's tentative successors are unreachable now; they were only
			// wired to q, which no longer has any incoming edges of its
			// own once redirected, and it is never admitted.
			continue
		}

		q.Index = len(a.States)
		a.States = append(a.States, q)
		worklist = append(worklist, tentativeSuccessors...)
	}

	return a
}

// findEqual returns the already-admitted state equal to q, or nil.
func (a *Automaton) findEqual(q *State) *State {
	for _, s := range a.States {
		if s.equals(q) {
			return s
		}
	}
	return nil
}

// redirectIncoming rewires every incoming edge of the discarded tentative
// state q to point at its equivalent admitted state target instead,
// deduplicating against target's existing incoming edges (spec §4.4 step 3).
func redirectIncoming(q, target *State) {
	for _, e := range q.In {
		e.To = target
		if !hasEqualEdge(target.In, e) {
			target.In = append(target.In, e)
		}
		// also fix the redirected edge's origin's record of its own
		// outgoing edge, which already points at e (same pointer), so no
		// further bookkeeping is needed there.
	}
}

func hasEqualEdge(edges []*Edge, e *Edge) bool {
	for _, x := range edges {
		if x.equals(e) {
			return true
		}
	}
	return false
}
