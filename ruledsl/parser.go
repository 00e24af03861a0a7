package ruledsl

import (
	"fmt"

	verr "github.com/nihei9-lab/lrtab/error"
	"github.com/nihei9-lab/lrtab/grammar"
)

// Parse compiles a rule-definition source string into a grammar.Grammar
// (spec.md §6.1). sourceName is used only to decorate error messages; it
// is typically the path the source was read from.
func Parse(src, sourceName string) (*grammar.Grammar, error) {
	p := &parser{lex: newLexer(src, sourceName), sourceName: sourceName}
	return p.parse()
}

// parser is a hand-written recursive-descent parser over the grammar:
//
//	rules = { rule } ;
//	rule  = ID "=" rhs { "|" rhs } ";" ;
//	rhs   = { item } [ "->" ID ] ;
//	item  = "INT" | "REAL" | "HEX" | "ID" | "STR" | ID | STR ;
//
// Grounded on the teacher's spec/parser.go consume-and-peek shape, but
// driven by the hand-written lexer above instead of a maleeni-compiled
// one, and recognizing "=" in place of the teacher's ":" and the
// trailing "-> ID" callback suffix the teacher's grammar does not have.
type parser struct {
	lex        *lexer
	peeked     *token
	sourceName string
}

func (p *parser) parse() (*grammar.Grammar, error) {
	g := grammar.NewGrammar()
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokEOF {
			break
		}
		if err := p.parseRule(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (p *parser) parseRule(g *grammar.Grammar) error {
	lhs, err := p.expect(tokID, errNoRuleName)
	if err != nil {
		return err
	}
	if _, err := p.expect(tokEq, errNoEquals); err != nil {
		return err
	}

	if err := p.parseAlternative(g, lhs.text); err != nil {
		return err
	}
	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.kind != tokPipe {
			break
		}
		p.consumeOne()
		if err := p.parseAlternative(g, lhs.text); err != nil {
			return err
		}
	}

	if _, err := p.expect(tokSemi, errNoSemicolon); err != nil {
		return err
	}
	return nil
}

// parseAlternative parses one rhs and registers it as a rule with the
// given shared lhs.
func (p *parser) parseAlternative(g *grammar.Grammar, lhs string) error {
	b := g.AddRule(lhs)
	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.kind != tokID && tok.kind != tokStr {
			break
		}
		p.consumeOne()
		switch {
		case tok.kind == tokStr:
			b.Literal(tok.text)
		case reservedClasses[tok.text]:
			b.Terminal(tok.text)
		default:
			b.NonTerminal(tok.text)
		}
	}

	tok, err := p.peek()
	if err != nil {
		return err
	}
	if tok.kind == tokArrow {
		p.consumeOne()
		name, err := p.expect(tokID, errNoCallbackName)
		if err != nil {
			return err
		}
		b.Callback(name.text)
	}
	return nil
}

func (p *parser) peek() (token, error) {
	if p.peeked == nil {
		tok, err := p.lex.next()
		if err != nil {
			return token{}, err
		}
		p.peeked = &tok
	}
	return *p.peeked, nil
}

func (p *parser) consumeOne() {
	p.peeked = nil
}

func (p *parser) expect(kind tokenKind, cause error) (token, error) {
	tok, err := p.peek()
	if err != nil {
		return token{}, err
	}
	if tok.kind == tokInvalid {
		return token{}, p.errorAt(tok, errUnexpectedToken)
	}
	if tok.kind != kind {
		return token{}, p.errorAt(tok, cause)
	}
	p.consumeOne()
	return tok, nil
}

func (p *parser) errorAt(tok token, cause error) error {
	return &verr.SpecError{
		Cause:      fmt.Errorf("%v (got %s)", cause, tok),
		SourceName: p.sourceName,
		Row:        tok.row,
	}
}
