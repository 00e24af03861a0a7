package driver

import (
	"fmt"

	"github.com/nihei9-lab/lrtab/grammar"
)

// Parser runs the table-driven shift-reduce loop of spec.md §4.6 over a
// compiled grammar.Table. Grounded on the teacher's driver/parser.go
// ACTION_LOOP, adapted to the spec's map-based per-state rows and its
// two-key (literal-then-class) lookup instead of the teacher's flat
// Action/GoTo arrays indexed by a packed symbol number.
type Parser struct {
	table     *grammar.Table
	callbacks *CallbackRegistry
}

// NewParser pairs a compiled table with a callback registry. Passing a
// nil registry is valid for grammars with no callbacks.
func NewParser(table *grammar.Table, callbacks *CallbackRegistry) *Parser {
	if callbacks == nil {
		callbacks = NewCallbackRegistry()
	}
	return &Parser{table: table, callbacks: callbacks}
}

// stackSym is a parse-stack slot that is either a shifted Token or the
// name of a reduced non-terminal; the two cases are distinguished by
// isTerm. Modeled as a tagged variant rather than overloading interface{}
// with type assertions, matching spec.md §9's "stack of heterogeneous
// elements" note.
type stackSym struct {
	isTerm bool
	tok    Token
	ntName string
}

// Run drives src to completion: an accept (root rule reduced with END
// next) or the first error. On success it returns the ordered trace of
// rule indices reduced, in the order they fired (spec.md §8 "callback
// order" is a consequence of this same post-order sequence).
func (p *Parser) Run(src TokenSource) ([]int, error) {
	states := []int{0}
	var syms []stackSym
	var trace []int

	for {
		s := states[len(states)-1]
		row := p.table.Rows[s]
		tok := src.Current()

		entry, key, ok := lookup(row, tok)
		if !ok {
			return trace, src.Error(fmt.Sprintf("unexpected token %s (tried key %q)", tok, key))
		}

		switch entry.Kind {
		case grammar.Shift:
			syms = append(syms, stackSym{isTerm: true, tok: tok})
			states = append(states, entry.Value)
			src.Advance()

		case grammar.Reduce:
			rule := p.table.Rules[entry.Value]
			k := len(rule.RHS)

			poppedSyms := append([]stackSym(nil), syms[len(syms)-k:]...)
			syms = syms[:len(syms)-k]
			states = states[:len(states)-k]

			var terms []Token
			for i, sym := range poppedSyms {
				if rule.RHS[i].IsTerminal() && sym.isTerm {
					terms = append(terms, sym.tok)
				}
			}
			if rule.Callback != "" {
				fn, ok := p.callbacks.lookup(rule.Callback)
				if !ok {
					return trace, src.Error((&grammar.ErrUnimplementedCallback{Name: rule.Callback}).Error())
				}
				fn(terms)
			}
			trace = append(trace, rule.Index)

			if rule.Index == 0 {
				if src.Current().Class != End {
					return trace, src.Error(grammar.ErrPrematureEnd.Error())
				}
				return trace, nil
			}

			top := states[len(states)-1]
			dest, ok := p.table.Rows[top].Goto[rule.LHS.Name()]
			if !ok {
				return trace, fmt.Errorf("internal error: missing goto[%d][%s]", top, rule.LHS.Name())
			}
			syms = append(syms, stackSym{isTerm: false, ntName: rule.LHS.Name()})
			states = append(states, dest)
		}
	}
}

// lookup tries the literal-then-class key order of spec.md §4.6 step 2
// and returns the first matching action-table entry.
func lookup(row *grammar.Row, tok Token) (grammar.ActionEntry, string, bool) {
	keys := tok.keys()
	for _, key := range keys {
		if e, ok := row.Action[key]; ok {
			return e, key, true
		}
	}
	return grammar.ActionEntry{}, keys[len(keys)-1], false
}
