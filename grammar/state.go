package grammar

import "github.com/emirpasic/gods/sets/treeset"

// Edge is a labelled connection between two automaton states. A
// terminal-labelled edge is a shift/action edge; a non-terminal-labelled
// edge is a goto edge (spec §3 "Automaton").
type Edge struct {
	From  *State
	To    *State
	Label Symbol
}

func (e *Edge) equals(o *Edge) bool {
	return e.From == o.From && e.To == o.To && e.Label.equals(o.Label)
}

// State is a set of LR(1) items admitted to the automaton, together with
// its stable index and its incident edges (spec §3 "State").
type State struct {
	Index int
	set   *itemSet
	In    []*Edge
	Out   []*Edge
}

// Items returns the state's items in insertion order. Closure mutates a
// state's item set in place (spec §4.4 step 2), so this always reflects the
// fully closed set once the automaton is built.
func (s *State) Items() []*lrItem {
	return s.set.items
}

func newTentativeState(seed []*lrItem) *State {
	set := newItemSet()
	for _, it := range seed {
		set.add(it)
	}
	return &State{set: set}
}

func (s *State) equals(o *State) bool {
	return s.set.equals(o.set)
}

func (s *State) addOut(e *Edge) {
	s.Out = append(s.Out, e)
}

func (s *State) addIn(e *Edge) {
	s.In = append(s.In, e)
}

// closure computes the closure of s in place (spec §4.3 "Closure of a
// state") and returns, for every distinct symbol immediately right of a
// dot among s's items, a tentative successor state seeded by advancing the
// dot past that symbol — the raw material for GOTO (spec §4.3 "Successor
// construction").
func closure(s *State, g *Grammar, first FirstSets) []*State {
	for {
		changed := false
		for _, it := range s.set.items {
			if it.atEnd() {
				continue
			}
			b := it.dotSymbol()
			if !b.IsNonTerminal() {
				continue
			}

			look := lookaheadFor(it, first)
			for _, prod := range g.RulesFor(b.Name()) {
				newItem := newItem(prod, 0, cloneSet(look))
				if s.set.add(newItem) {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return successors(s)
}

// lookaheadFor computes the lookahead set to give closure items produced
// from it, per spec §4.3:
//   - if beyond(it) is non-empty and begins with a terminal t, {t};
//   - if it begins with a non-terminal Y, FIRST(Y);
//   - if beyond(it) is empty, propagate it.lookahead.
func lookaheadFor(it *lrItem, first FirstSets) *treeset.Set {
	beyond := it.beyond()
	if len(beyond) == 0 {
		return it.lookahead
	}
	b := beyond[0]
	if b.IsTerminal() {
		return newTerminalSet(b.Name())
	}
	return first.first(b.Name())
}

func cloneSet(s *treeset.Set) *treeset.Set {
	clone := treeset.NewWithStringComparator()
	for _, v := range s.Values() {
		clone.Add(v)
	}
	return clone
}

func symbolKey(s Symbol) string {
	if s.IsTerminal() {
		return "t:" + s.Name()
	}
	return "n:" + s.Name()
}

// successors partitions s's advancing items by the symbol immediately right
// of the dot and creates one tentative successor state per distinct symbol,
// wiring an outgoing edge from s to it (spec §4.3 "Successor construction").
func successors(s *State) []*State {
	bySymbol := map[string][]*lrItem{}
	labelBySymbol := map[string]Symbol{}
	var order []string

	for _, it := range s.set.items {
		if it.atEnd() {
			continue
		}
		x := it.dotSymbol()
		key := symbolKey(x)
		if _, ok := labelBySymbol[key]; !ok {
			order = append(order, key)
			labelBySymbol[key] = x
		}
		bySymbol[key] = append(bySymbol[key], it.advance())
	}

	var out []*State
	for _, key := range order {
		succ := newTentativeState(bySymbol[key])
		out = append(out, succ)
		e := &Edge{From: s, To: succ, Label: labelBySymbol[key]}
		s.addOut(e)
		succ.addIn(e)
	}
	return out
}
