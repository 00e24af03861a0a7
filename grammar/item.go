package grammar

import "github.com/emirpasic/gods/sets/treeset"

// itemCore identifies an LR(1) item's rule and dot position, ignoring its
// lookahead set. Two items with the same core are "core-equal" per spec §3
// and are merged (their lookaheads unioned) rather than duplicated.
type itemCore struct {
	rule int
	dot  int
}

// lrItem is a single LR(1) item: [rule, dot, lookahead] (spec §3).
type lrItem struct {
	core      itemCore
	rule      *Rule
	lookahead *treeset.Set
}

func newItem(r *Rule, dot int, lookahead *treeset.Set) *lrItem {
	return &lrItem{
		core:      itemCore{rule: r.Index, dot: dot},
		rule:      r,
		lookahead: lookahead,
	}
}

// atEnd reports whether the dot has advanced past the last RHS symbol,
// i.e. the item is reducible.
func (it *lrItem) atEnd() bool {
	return it.core.dot >= len(it.rule.RHS)
}

// dotSymbol returns the symbol immediately to the right of the dot. It must
// not be called when atEnd() is true.
func (it *lrItem) dotSymbol() Symbol {
	return it.rule.RHS[it.core.dot]
}

// beyond returns the RHS symbols strictly to the right of the dot symbol
// (i.e. rule.RHS[dot+1:]).
func (it *lrItem) beyond() []Symbol {
	return it.rule.RHS[it.core.dot+1:]
}

// advance returns a new item with the dot moved one position to the right
// and the same lookahead set (advancing the dot never changes lookahead;
// only closure does, per spec §4.3).
func (it *lrItem) advance() *lrItem {
	return newItem(it.rule, it.core.dot+1, it.lookahead)
}

func (it *lrItem) String() string {
	s := it.rule.LHS.Name() + " ->"
	for i, sym := range it.rule.RHS {
		if i == it.core.dot {
			s += " ."
		}
		s += " " + sym.Name()
	}
	if it.core.dot == len(it.rule.RHS) {
		s += " ."
	}
	s += " , " + sortedJoin(it.lookahead)
	return s
}

func sortedJoin(s *treeset.Set) string {
	out := ""
	for i, v := range sortedStrings(s) {
		if i > 0 {
			out += "/"
		}
		out += v
	}
	if out == "" {
		return "{}"
	}
	return out
}

// itemSet is an ordered collection of items, compared for equality as a set
// (spec §3 "Two items are core-equal..."; §4.3 "State equivalence").
type itemSet struct {
	items   []*lrItem
	byCore  map[itemCore]*lrItem
}

func newItemSet() *itemSet {
	return &itemSet{byCore: map[itemCore]*lrItem{}}
}

// add inserts item, merging lookaheads with any existing core-equal item
// instead of creating a duplicate. It reports whether the set changed
// (either a new core was added, or an existing core's lookahead grew).
func (s *itemSet) add(it *lrItem) bool {
	if existing, ok := s.byCore[it.core]; ok {
		return unionInto(existing.lookahead, it.lookahead)
	}
	s.byCore[it.core] = it
	s.items = append(s.items, it)
	return true
}

// equals implements the state-equivalence relation of spec §4.3: same
// cores, same lookahead sets per core. Item sets are stored as sequences
// but compared as sets, so this is the quadratic-in-the-worst-case
// comparison spec §4.3 describes as acceptable; the byCore index makes the
// common case linear.
func (s *itemSet) equals(o *itemSet) bool {
	if len(s.items) != len(o.items) {
		return false
	}
	for core, it := range s.byCore {
		oit, ok := o.byCore[core]
		if !ok {
			return false
		}
		if it.lookahead.Size() != oit.lookahead.Size() {
			return false
		}
		for _, v := range it.lookahead.Values() {
			if !oit.lookahead.Contains(v) {
				return false
			}
		}
	}
	return true
}
