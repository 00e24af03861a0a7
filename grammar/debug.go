package grammar

import (
	"fmt"
	"sort"
	"strings"
)

// DumpRules renders every rule, one per line, in registration order. The
// exact text form is not part of any contract (spec §6.4); only that it is
// human-readable and deterministic for a given grammar.
func DumpRules(g *Grammar) string {
	var b strings.Builder
	for _, r := range g.Rules() {
		fmt.Fprintf(&b, "%3d: %s\n", r.Index, r)
	}
	return b.String()
}

// DumpFirst renders the FIRST set of every non-terminal, sorted by
// non-terminal name for determinism.
func DumpFirst(first FirstSets) string {
	names := make([]string, 0, len(first))
	for nt := range first {
		names = append(names, nt)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, nt := range names {
		fmt.Fprintf(&b, "FIRST(%s) = {%s}\n", nt, strings.Join(sortedStrings(first[nt]), ", "))
	}
	return b.String()
}

// DumpAutomaton renders every state's items and its incoming/outgoing
// edges.
func DumpAutomaton(a *Automaton) string {
	var b strings.Builder
	for _, s := range a.States {
		fmt.Fprintf(&b, "state %d:\n", s.Index)
		for _, it := range s.Items() {
			fmt.Fprintf(&b, "    %s\n", it)
		}
		for _, e := range s.In {
			fmt.Fprintf(&b, "  <- %s (from %d)\n", e.Label, e.From.Index)
		}
		for _, e := range s.Out {
			fmt.Fprintf(&b, "  -> %s (to %d)\n", e.Label, e.To.Index)
		}
	}
	return b.String()
}

// DumpTable renders every row's action and goto entries, sorted by key for
// determinism.
func DumpTable(t *Table) string {
	var b strings.Builder
	for i, row := range t.Rows {
		fmt.Fprintf(&b, "state %d:\n", i)

		keys := make([]string, 0, len(row.Action))
		for k := range row.Action {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			e := row.Action[k]
			fmt.Fprintf(&b, "    action[%s] = %s %d\n", k, e.Kind, e.Value)
		}

		gkeys := make([]string, 0, len(row.Goto))
		for k := range row.Goto {
			gkeys = append(gkeys, k)
		}
		sort.Strings(gkeys)
		for _, k := range gkeys {
			fmt.Fprintf(&b, "    goto[%s] = %d\n", k, row.Goto[k])
		}
	}
	return b.String()
}
