package ruledsl

import "testing"

func TestParse_arithmeticGrammar(t *testing.T) {
	src := `
term = add ;
add = add "+" mul | mul ;
mul = mul "*" unary | unary ;
unary = INT | "(" add ")" ;
`
	g, err := Parse(src, "arith.rules")
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if len(g.Rules()) != 7 {
		t.Fatalf("got %d rules, want 7", len(g.Rules()))
	}
	if g.StartSymbol().Name() != "term" {
		t.Errorf("start symbol = %q, want %q", g.StartSymbol().Name(), "term")
	}
}

func TestParse_callbackSuffix(t *testing.T) {
	src := `a = "a" s INT -> blub ;
s = "b" ;`
	g, err := Parse(src, "blub.rules")
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	rule := g.Rules()[0]
	if rule.Callback != "blub" {
		t.Errorf("Callback = %q, want %q", rule.Callback, "blub")
	}
}

func TestParse_missingSemicolon(t *testing.T) {
	src := `a = "a"`
	if _, err := Parse(src, "bad.rules"); err == nil {
		t.Fatal("Parse() = nil, want an error for the missing semicolon")
	}
}

func TestParse_emptySource(t *testing.T) {
	g, err := Parse("", "empty.rules")
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if len(g.Rules()) != 0 {
		t.Errorf("got %d rules, want 0", len(g.Rules()))
	}
}
