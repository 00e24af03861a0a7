package driver

import (
	"strconv"
	"testing"

	"github.com/nihei9-lab/lrtab/grammar"
)

// arithGrammar builds spec.md §8's scenario-1 grammar:
//
//	term = add;
//	add  = add "+" mul | mul;
//	mul  = mul "*" unary | unary;
//	unary = INT | "(" add ")";
//
// Semantic values flow through a shared value stack captured by the
// callback closures rather than through the callback's token list: the
// only token a callback ever sees is the terminals its own rule covers
// (spec.md §6.3), so "add" and "mul" add up whatever their children
// already pushed, not anything derivable from the "+" or "*" token
// itself.
func arithGrammar(values *[]int) (*grammar.Grammar, *CallbackRegistry) {
	g := grammar.NewGrammar()
	g.AddRule("term").NonTerminal("add")
	g.AddRule("add").NonTerminal("add").Literal("+").NonTerminal("mul").Callback("add")
	g.AddRule("add").NonTerminal("mul")
	g.AddRule("mul").NonTerminal("mul").Literal("*").NonTerminal("unary").Callback("mul")
	g.AddRule("mul").NonTerminal("unary")
	g.AddRule("unary").Terminal("INT").Callback("push")
	g.AddRule("unary").Literal("(").NonTerminal("add").Literal(")")

	pop := func() int {
		v := (*values)[len(*values)-1]
		*values = (*values)[:len(*values)-1]
		return v
	}

	cb := NewCallbackRegistry()
	cb.Register("push", func(toks []Token) {
		n, _ := strconv.Atoi(toks[0].Lexeme)
		*values = append(*values, n)
	})
	cb.Register("add", func(toks []Token) {
		b, a := pop(), pop()
		*values = append(*values, a+b)
	})
	cb.Register("mul", func(toks []Token) {
		b, a := pop(), pop()
		*values = append(*values, a*b)
	})
	return g, cb
}

func intTok(lexeme string) Token { return Token{Class: Int, Lexeme: lexeme} }
func litTok(lexeme string) Token { return Token{Class: Literal, Lexeme: lexeme} }

func runArith(t *testing.T, toks []Token) int {
	t.Helper()
	var values []int
	g, cb := arithGrammar(&values)
	table, _, err := grammar.Compile(g)
	if err != nil {
		t.Fatalf("Compile() = %v", err)
	}

	p := NewParser(table, cb)
	src := NewSliceTokenSource(toks)
	if _, err := p.Run(src); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if len(values) != 1 {
		t.Fatalf("final value stack = %v, want a single value", values)
	}
	return values[0]
}

func TestParser_arithmeticScenario1(t *testing.T) {
	// 2 * (3 + 4) = 14
	toks := []Token{intTok("2"), litTok("*"), litTok("("), intTok("3"), litTok("+"), intTok("4"), litTok(")")}
	if got := runArith(t, toks); got != 14 {
		t.Errorf("2*(3+4) = %d, want 14", got)
	}
}

func TestParser_arithmeticScenario2(t *testing.T) {
	// 1 + 2 * 3 = 7 (left-associativity, "*" binds tighter than "+")
	toks := []Token{intTok("1"), litTok("+"), intTok("2"), litTok("*"), intTok("3")}
	if got := runArith(t, toks); got != 7 {
		t.Errorf("1+2*3 = %d, want 7", got)
	}
}

func TestParser_arithmeticScenario3(t *testing.T) {
	// (1+2) * (3+4) = 21
	toks := []Token{
		litTok("("), intTok("1"), litTok("+"), intTok("2"), litTok(")"),
		litTok("*"),
		litTok("("), intTok("3"), litTok("+"), intTok("4"), litTok(")"),
	}
	if got := runArith(t, toks); got != 21 {
		t.Errorf("(1+2)*(3+4) = %d, want 21", got)
	}
}

// TestParser_blubCallback is spec.md §8 scenario 4: grammar
//
//	z = s;
//	s = s "b";
//	s = "b" a "a";
//	a = "a" s "c";
//	a = "a";
//	a = "a" s INT -> blub;
//
// on input `b a b a a 42 a` must parse successfully and fire "blub"
// exactly once with a token list whose integer lexeme is "42".
func TestParser_blubCallback(t *testing.T) {
	g := grammar.NewGrammar()
	g.AddRule("z").NonTerminal("s")
	g.AddRule("s").NonTerminal("s").Literal("b")
	g.AddRule("s").Literal("b").NonTerminal("a").Literal("a")
	g.AddRule("a").Literal("a").NonTerminal("s").Literal("c")
	g.AddRule("a").Literal("a")
	g.AddRule("a").Literal("a").NonTerminal("s").Terminal("INT").Callback("blub")

	table, _, err := grammar.Compile(g)
	if err != nil {
		t.Fatalf("Compile() = %v", err)
	}

	var blubCalls int
	var blubLexeme string
	cb := NewCallbackRegistry()
	cb.Register("blub", func(toks []Token) {
		blubCalls++
		for _, tok := range toks {
			if tok.Class == Int {
				blubLexeme = tok.Lexeme
			}
		}
	})

	// b a b a a 42 a
	toks := []Token{
		litTok("b"), litTok("a"), litTok("b"), litTok("a"), litTok("a"), intTok("42"), litTok("a"),
	}
	p := NewParser(table, cb)
	if _, err := p.Run(NewSliceTokenSource(toks)); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if blubCalls != 1 {
		t.Errorf("blub fired %d times, want 1", blubCalls)
	}
	if blubLexeme != "42" {
		t.Errorf("blub saw INT lexeme %q, want %q", blubLexeme, "42")
	}
}

// TestParser_leftRecursionWithoutBase is spec.md §8 scenario 5: `x = x
// "a";` is accepted at table time but rejects every input at parse time,
// since the initial state has no shift action and the sole non-terminal
// GOTO can never be reached.
func TestParser_leftRecursionWithoutBase(t *testing.T) {
	g := grammar.NewGrammar()
	g.AddRule("x").NonTerminal("x").Literal("a")

	table, _, err := grammar.Compile(g)
	if err != nil {
		t.Fatalf("Compile() = %v", err)
	}

	p := NewParser(table, nil)
	_, err = p.Run(NewSliceTokenSource([]Token{litTok("a")}))
	if err == nil {
		t.Fatal("Run() = nil, want an unexpected-token error")
	}
}
