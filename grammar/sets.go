package grammar

import "github.com/emirpasic/gods/sets/treeset"

// newTerminalSet creates an empty set of terminal-symbol name strings. Using
// a tree set keyed by string comparator (rather than a bare map) buys
// deterministic sorted iteration for free, which spec §4.2/§6.4 call out as
// desirable for reproducible debug output; grounded on gorgo's lr/tables.go,
// which keeps its state and edge collections in gods containers for the same
// reason.
func newTerminalSet(names ...string) *treeset.Set {
	s := treeset.NewWithStringComparator()
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// unionInto adds every element of src into dst and reports whether dst grew.
func unionInto(dst, src *treeset.Set) bool {
	before := dst.Size()
	for _, v := range src.Values() {
		dst.Add(v)
	}
	return dst.Size() != before
}

// sortedStrings returns the set's elements, already sorted by the
// comparator that backs it.
func sortedStrings(s *treeset.Set) []string {
	vals := s.Values()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.(string)
	}
	return out
}
