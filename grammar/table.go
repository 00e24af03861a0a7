package grammar

// ActionKind distinguishes a shift entry from a reduce entry in an action
// table row (spec §3 "Table").
type ActionKind int

const (
	Shift ActionKind = iota
	Reduce
)

func (k ActionKind) String() string {
	if k == Shift {
		return "shift"
	}
	return "reduce"
}

// ActionEntry is one action-table cell: a Shift to a destination state, or
// a Reduce by a rule index.
type ActionEntry struct {
	Kind  ActionKind
	Value int // destination state index (Shift) or rule index (Reduce)
}

// Row is one state's worth of action/goto entries, keyed by the same
// string namespace symbols use: colon-prefixed literals, bare class names,
// and "END" for terminals; bare non-terminal names for goto.
type Row struct {
	Action map[string]ActionEntry
	Goto   map[string]int
}

func newRow() *Row {
	return &Row{Action: map[string]ActionEntry{}, Goto: map[string]int{}}
}

// Table is the ordered sequence of rows produced by BuildTable, one per
// automaton state, plus the rules it was built from (needed by the driver
// to know each rule's LHS and RHS length at reduce time).
type Table struct {
	Rows  []*Row
	Rules []*Rule
}
