package ruledsl

import (
	"strings"
	"unicode"

	verr "github.com/nihei9-lab/lrtab/error"
)

// lexer is a hand-written scanner over the rule-definition DSL. Grounded
// on the teacher's spec/lexer.go rune-at-a-time scanning discipline, but
// without the maleeni-compiled lexical spec the teacher drives itself
// with: the DSL's tokens are few and fixed, so a direct switch over the
// next rune is the idiomatic shape here rather than a table-driven
// sub-lexer.
type lexer struct {
	src        []rune
	pos        int
	row        int
	buf        *token
	sourceName string
}

func newLexer(src, sourceName string) *lexer {
	return &lexer{src: []rune(src), row: 1, sourceName: sourceName}
}

func (l *lexer) peekRune() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *lexer) advanceRune() {
	if l.pos < len(l.src) {
		if l.src[l.pos] == '\n' {
			l.row++
		}
		l.pos++
	}
}

func (l *lexer) skipWhitespaceAndComments() {
	for {
		r, ok := l.peekRune()
		if !ok {
			return
		}
		if unicode.IsSpace(r) {
			l.advanceRune()
			continue
		}
		if r == '#' {
			for {
				r, ok := l.peekRune()
				if !ok || r == '\n' {
					break
				}
				l.advanceRune()
			}
			continue
		}
		return
	}
}

// next returns the next token, buffering none (the parser itself holds
// one token of lookahead).
func (l *lexer) next() (token, error) {
	if l.buf != nil {
		tok := *l.buf
		l.buf = nil
		return tok, nil
	}

	l.skipWhitespaceAndComments()
	row := l.row
	r, ok := l.peekRune()
	if !ok {
		return token{kind: tokEOF, row: row}, nil
	}

	switch r {
	case '=':
		l.advanceRune()
		return token{kind: tokEq, text: "=", row: row}, nil
	case '|':
		l.advanceRune()
		return token{kind: tokPipe, text: "|", row: row}, nil
	case ';':
		l.advanceRune()
		return token{kind: tokSemi, text: ";", row: row}, nil
	case '"':
		return l.lexString(row)
	case '-':
		l.advanceRune()
		r2, ok := l.peekRune()
		if !ok || r2 != '>' {
			return token{kind: tokInvalid, text: "-", row: row}, nil
		}
		l.advanceRune()
		return token{kind: tokArrow, text: "->", row: row}, nil
	}

	if isIdentStart(r) {
		return l.lexIdent(row), nil
	}

	l.advanceRune()
	return token{kind: tokInvalid, text: string(r), row: row}, nil
}

func (l *lexer) lexIdent(row int) token {
	var b strings.Builder
	for {
		r, ok := l.peekRune()
		if !ok || !isIdentPart(r) {
			break
		}
		b.WriteRune(r)
		l.advanceRune()
	}
	return token{kind: tokID, text: b.String(), row: row}
}

func (l *lexer) lexString(row int) (token, error) {
	l.advanceRune() // opening quote
	var b strings.Builder
	for {
		r, ok := l.peekRune()
		if !ok {
			return token{}, l.errAt(errUnclosedString, row)
		}
		if r == '"' {
			l.advanceRune()
			break
		}
		if r == '\\' {
			l.advanceRune()
			esc, ok := l.peekRune()
			if !ok {
				return token{}, l.errAt(errUnclosedString, row)
			}
			switch esc {
			case '"':
				b.WriteRune('"')
			case '\\':
				b.WriteRune('\\')
			default:
				return token{}, l.errAt(errIncompleteEscape, row)
			}
			l.advanceRune()
			continue
		}
		b.WriteRune(r)
		l.advanceRune()
	}
	str := b.String()
	if str == "" {
		return token{}, l.errAt(errEmptyString, row)
	}
	return token{kind: tokStr, text: str, row: row}, nil
}

func (l *lexer) errAt(cause error, row int) error {
	return &verr.SpecError{Cause: cause, SourceName: l.sourceName, Row: row}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
