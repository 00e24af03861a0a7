package grammar

// Compile is the single generator-time entry point: it validates g, builds
// FIRST sets, the canonical LR(1) automaton, and the action/goto table, in
// that order, returning the first error encountered (spec §4-§7). All
// generator-time errors abort table construction; on error the returned
// table is nil.
func Compile(g *Grammar) (*Table, *Automaton, error) {
	if err := g.Validate(); err != nil {
		return nil, nil, err
	}

	first := ComputeFirst(g)
	automaton := BuildAutomaton(g, first)

	table, err := BuildTable(automaton, g)
	if err != nil {
		return nil, nil, err
	}

	return table, automaton, nil
}

// BuildTable translates an already-built automaton into an action/goto
// table (spec §4.5). For each admitted state in index order:
//   - every outgoing terminal-labelled edge becomes a Shift entry;
//   - every outgoing non-terminal-labelled edge becomes a Goto entry;
//   - every reducible item [A -> alpha ., L] contributes a Reduce entry for
//     every terminal in L.
//
// Conflict detection is strict: any assignment that would overwrite an
// existing entry fails with a *ConflictError. Per spec §9's resolved open
// question, this applies uniformly to all four conflict kinds — the
// teacher's original halted the process on shift/reduce and shift/shift
// without a message; here they are reported the same way reduce/reduce is.
func BuildTable(a *Automaton, g *Grammar) (*Table, error) {
	rules := g.Rules()
	t := &Table{Rules: rules}

	for range a.States {
		t.Rows = append(t.Rows, newRow())
	}

	for _, s := range a.States {
		row := t.Rows[s.Index]

		for _, e := range s.Out {
			if e.Label.IsTerminal() {
				entry := ActionEntry{Kind: Shift, Value: e.To.Index}
				if existing, ok := row.Action[e.Label.Name()]; ok {
					return nil, shiftConflict(s.Index, e.Label.Name(), existing, entry, rules)
				}
				row.Action[e.Label.Name()] = entry
			} else {
				if existing, ok := row.Goto[e.Label.Name()]; ok {
					return nil, &ConflictError{
						Kind:     GotoGotoConflict,
						State:    s.Index,
						Key:      e.Label.Name(),
						Existing: TableEntryDescription{Kind: "goto", Value: existing},
						New:      TableEntryDescription{Kind: "goto", Value: e.To.Index},
					}
				}
				row.Goto[e.Label.Name()] = e.To.Index
			}
		}

		for _, it := range s.Items() {
			if !it.atEnd() {
				continue
			}
			entry := ActionEntry{Kind: Reduce, Value: it.rule.Index}
			for _, term := range sortedStrings(it.lookahead) {
				if existing, ok := row.Action[term]; ok {
					return nil, shiftConflict(s.Index, term, existing, entry, rules)
				}
				row.Action[term] = entry
			}
		}
	}

	return t, nil
}

// shiftConflict classifies a collision between an existing action entry and
// a new one, distinguishing reduce/reduce from shift/reduce from the
// (invariant-violating) shift/shift case.
func shiftConflict(state int, key string, existing, new ActionEntry, rules []*Rule) *ConflictError {
	kind := ReduceReduceConflict
	switch {
	case existing.Kind == Shift && new.Kind == Shift:
		kind = ShiftShiftConflict
	case existing.Kind != new.Kind:
		kind = ShiftReduceConflict
	}
	return &ConflictError{
		Kind:     kind,
		State:    state,
		Key:      key,
		Existing: describeEntry(existing, rules),
		New:      describeEntry(new, rules),
	}
}

func describeEntry(e ActionEntry, rules []*Rule) TableEntryDescription {
	d := TableEntryDescription{Kind: e.Kind.String(), Value: e.Value}
	if e.Kind == Reduce && e.Value >= 0 && e.Value < len(rules) {
		d.Rule = rules[e.Value].String()
	}
	return d
}
