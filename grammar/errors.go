package grammar

import "fmt"

// ErrEmptyGrammar is returned when Compile is invoked on a grammar with no
// rules (spec §7 item 1).
var ErrEmptyGrammar = fmt.Errorf("a grammar needs at least one rule")

// ErrUndefinedNonTerminal is returned when a rule's RHS references a
// non-terminal that is not the LHS of any rule (spec §7 item 2).
type ErrUndefinedNonTerminal struct {
	Name string
}

func (e *ErrUndefinedNonTerminal) Error() string {
	return fmt.Sprintf("undefined non-terminal %q", e.Name)
}

// ConflictKind distinguishes the four ways a table-construction assignment
// can collide with an existing entry (spec §4.5 / §7 items 3-4).
type ConflictKind int

const (
	// ReduceReduceConflict: two rules both want to reduce on the same
	// lookahead terminal in the same state.
	ReduceReduceConflict ConflictKind = iota
	// ShiftReduceConflict: a shift and a reduce both want the same
	// terminal key's action-table entry in the same state.
	ShiftReduceConflict
	// ShiftShiftConflict: two distinct destination states were computed
	// for the same terminal edge out of one state. This should be
	// impossible for a canonical LR(1) automaton; spec §4.5 calls it a
	// fatal internal invariant violation, not a grammar defect.
	ShiftShiftConflict
	// GotoGotoConflict: the non-terminal analogue of ShiftShiftConflict.
	GotoGotoConflict
)

func (k ConflictKind) String() string {
	switch k {
	case ReduceReduceConflict:
		return "reduce/reduce conflict"
	case ShiftReduceConflict:
		return "shift/reduce conflict"
	case ShiftShiftConflict:
		return "shift/shift conflict (internal invariant violation)"
	case GotoGotoConflict:
		return "goto/goto conflict (internal invariant violation)"
	default:
		return "conflict"
	}
}

// ConflictError is raised by the table builder whenever an action- or
// goto-table assignment would overwrite an existing entry. Per spec §9's
// resolved open question, this includes shift/reduce and shift/shift (or
// goto/goto) collisions: the teacher's original source halted the process
// on those branches without a structured message; here every conflict kind
// is reported uniformly through this type instead.
type ConflictError struct {
	Kind     ConflictKind
	State    int
	Key      string
	Existing TableEntryDescription
	New      TableEntryDescription
}

// TableEntryDescription is a stringified summary of one action- or
// goto-table entry, used only for error messages (spec §6.4: stringified
// forms are for inspection, not a parsed contract).
type TableEntryDescription struct {
	Kind  string // "shift", "reduce", or "goto"
	Value int    // destination state or rule index
	Rule  string // stringified rule, populated only when Kind == "reduce"
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("%v in state %d on %q: existing %s %d", e.Kind, e.State, e.Key, e.Existing.Kind, e.Existing.Value)
	if e.Existing.Rule != "" {
		msg += fmt.Sprintf(" (%s)", e.Existing.Rule)
	}
	msg += fmt.Sprintf(", new %s %d", e.New.Kind, e.New.Value)
	if e.New.Rule != "" {
		msg += fmt.Sprintf(" (%s)", e.New.Rule)
	}
	return msg
}

// ErrUnexpectedToken is the runtime "unexpected token" error of spec §7
// item 5. The driver package does not construct it: it reports an
// unexpected token through the TokenSource's own error channel with a
// message naming the token, so the error a caller receives is whatever that
// TokenSource's Error returns.
type ErrUnexpectedToken struct {
	Lexeme string
}

func (e *ErrUnexpectedToken) Error() string {
	return fmt.Sprintf("unexpected token %q", e.Lexeme)
}

// ErrUnimplementedCallback is the runtime error of spec §7 item 6: a rule
// referenced a callback identifier that was never registered. The driver
// reports it through the TokenSource's error channel with this error's
// message.
type ErrUnimplementedCallback struct {
	Name string
}

func (e *ErrUnimplementedCallback) Error() string {
	return fmt.Sprintf("unimplemented callback %q", e.Name)
}

// ErrPrematureEnd is the runtime error of spec §7 item 7: the root rule
// reduced, but the next input token was not END. The driver reports it
// through the TokenSource's error channel with this error's message.
var ErrPrematureEnd = fmt.Errorf("input remains after the root rule was reduced")
