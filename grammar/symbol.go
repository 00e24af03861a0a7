package grammar

import "strings"

// literalPrefix distinguishes a literal terminal lexeme (e.g. the operator
// `+`) from a token-class name (e.g. `INT`) in the shared string namespace
// used by symbols, lookahead sets, and table keys.
const literalPrefix = ":"

// EndClass is the reserved token-class name that denotes end-of-input.
const EndClass = "END"

// reservedClasses is the fixed set of token-class terminal names the core
// understands; anything else appearing as a bare (non-colon-prefixed) name
// is still accepted as a class name by the grammar model itself (the model
// does not police this set), but the rule-DSL front-end only ever emits one
// of these other than END.
var reservedClasses = map[string]bool{
	"INT":  true,
	"REAL": true,
	"HEX":  true,
	"ID":   true,
	"STR":  true,
	EndClass: true,
}

// SymbolKind distinguishes terminal and non-terminal vocabulary symbols.
type SymbolKind int

const (
	NonTerminal SymbolKind = iota
	Terminal
)

func (k SymbolKind) String() string {
	if k == Terminal {
		return "terminal"
	}
	return "non-terminal"
}

// Symbol is a single grammar vocabulary element. Terminals store their name
// already normalized: a literal lexeme carries the `:` prefix, a token-class
// name does not. Non-terminals store a bare identifier.
type Symbol struct {
	kind SymbolKind
	name string
}

// NonTerm creates a non-terminal symbol named name.
func NonTerm(name string) Symbol {
	return Symbol{kind: NonTerminal, name: name}
}

// TermClass creates a token-class terminal symbol, e.g. TermClass("INT").
func TermClass(class string) Symbol {
	return Symbol{kind: Terminal, name: class}
}

// TermLiteral creates a literal terminal symbol from its lexeme, e.g.
// TermLiteral("+") is stored and keyed as ":+".
func TermLiteral(lexeme string) Symbol {
	return Symbol{kind: Terminal, name: literalPrefix + lexeme}
}

// EndSymbol is the distinguished end-of-input terminal.
var EndSymbol = TermClass(EndClass)

func (s Symbol) IsTerminal() bool {
	return s.kind == Terminal
}

func (s Symbol) IsNonTerminal() bool {
	return s.kind == NonTerminal
}

func (s Symbol) IsLiteral() bool {
	return s.kind == Terminal && strings.HasPrefix(s.name, literalPrefix)
}

// Name returns the symbol's key in the shared string namespace: a
// non-terminal identifier, a bare class name, or a colon-prefixed literal.
func (s Symbol) Name() string {
	return s.name
}

func (s Symbol) Kind() SymbolKind {
	return s.kind
}

func (s Symbol) String() string {
	return s.name
}

func (s Symbol) equals(o Symbol) bool {
	return s.kind == o.kind && s.name == o.name
}
