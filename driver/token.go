// Package driver implements the table-driven parser runtime of spec.md
// §4.6: a shift-reduce loop over a grammar.Table, a pluggable token
// source, and a callback registry for semantic actions.
package driver

import "fmt"

// TokenClass is one of the five reserved token classes the core
// understands, or Literal for a delimiter/operator/keyword presented by
// its exact lexeme.
type TokenClass int

const (
	Literal TokenClass = iota
	Int
	Real
	Hex
	Ident
	Str
	End
)

func (c TokenClass) String() string {
	switch c {
	case Int:
		return "INT"
	case Real:
		return "REAL"
	case Hex:
		return "HEX"
	case Ident:
		return "ID"
	case Str:
		return "STR"
	case End:
		return "END"
	default:
		return "literal"
	}
}

// Token is one lexical unit handed to the parser. Lexeme is always
// populated; Value carries the parsed numeric value for Int/Real/Hex
// tokens (nil otherwise). The parser dispatches only on Class and
// Lexeme; callbacks receive the whole token.
type Token struct {
	Class  TokenClass
	Lexeme string
	Value  interface{}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Class, t.Lexeme)
}

// literalKey returns the action-table lookup key for this token per spec.md
// §4.6 step 2: a literal's own lexeme, colon-prefixed, tried first, with
// the bare class name as the fallback tried by the caller on miss.
func (t Token) literalKey() string {
	return ":" + t.Lexeme
}

func (t Token) classKey() string {
	if t.Class == Literal {
		return t.Lexeme
	}
	return t.Class.String()
}

// keys returns the ordered list of action-table keys to try for t, per
// spec.md §4.6 step 2: the colon-prefixed literal form first (when t
// carries one), then the bare class name.
func (t Token) keys() []string {
	if t.Class == Literal {
		return []string{t.literalKey()}
	}
	if t.Class == End {
		return []string{t.classKey()}
	}
	return []string{":" + t.Lexeme, t.classKey()}
}

// TokenSource is the parser's view of the lexical layer (spec.md §6.2):
// the current token, advancing past it, an end-of-input predicate, and
// an error-raising operation carrying a message. Implementations are
// free to tokenize eagerly (driver.SliceTokenSource) or lazily.
type TokenSource interface {
	Current() Token
	Advance()
	AtEnd() bool
	Error(msg string) error
}
