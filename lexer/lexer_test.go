package lexer

import (
	"strings"
	"testing"
)

func allTokens(t *testing.T, src string) []*Token {
	t.Helper()
	l, err := New(strings.NewReader(src))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	var toks []*Token
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks
		}
	}
}

func TestLexStatementSet(t *testing.T) {
	toks := allTokens(t, "{A, B, C}")
	kinds := make([]TokenKind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	want := []TokenKind{
		TokenLBrace, TokenUpper, TokenComma, TokenUpper, TokenComma, TokenUpper, TokenRBrace, TokenEOF,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(kinds), kinds, len(want), want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestLexPredicateLetterWithDegreeAndSubscript(t *testing.T) {
	toks := allTokens(t, "A₂¹b")
	if len(toks) != 3 { // upper, lower term, eof
		t.Fatalf("got %d tokens, want 3: %+v", len(toks), toks)
	}
	upper := toks[0]
	if upper.Kind != TokenUpper || upper.Letter != 'A' {
		t.Fatalf("unexpected first token: %+v", upper)
	}
	if !upper.Sub.EqualInt(2) {
		t.Errorf("subscript = %v, want 2", upper.Sub)
	}
	if !upper.HasDegree || upper.Degree.EqualInt(0) {
		t.Errorf("degree not decoded: %+v", upper)
	}
	if !upper.Degree.EqualInt(1) {
		t.Errorf("degree = %v, want 1", upper.Degree)
	}

	lower := toks[1]
	if lower.Kind != TokenLowerTerm || lower.Letter != 'b' {
		t.Fatalf("unexpected second token: %+v", lower)
	}
	if lower.Sub.Present() {
		t.Errorf("unexpected subscript on term: %v", lower.Sub)
	}
}

func TestLexSimpleStatementLetterHasNoDegree(t *testing.T) {
	toks := allTokens(t, "A₂")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(toks), toks)
	}
	if toks[0].HasDegree {
		t.Errorf("a bare statement letter must not carry a degree: %+v", toks[0])
	}
}

func TestLexConclusionIndicatorBothForms(t *testing.T) {
	for _, src := range []string{"A, B .:. C", "A, B ∴ C"} {
		toks := allTokens(t, src)
		found := false
		for _, tok := range toks {
			if tok.Kind == TokenConclusion {
				found = true
			}
		}
		if !found {
			t.Errorf("%q: no conclusion token found among %+v", src, toks)
		}
	}
}

func TestLexLowerVarAndTermAlphabetsAreDisjoint(t *testing.T) {
	toks := allTokens(t, "tu")
	if toks[0].Kind != TokenLowerTerm {
		t.Errorf("t should lex as a term letter, got %v", toks[0].Kind)
	}
	if toks[1].Kind != TokenLowerVar {
		t.Errorf("u should lex as a variable letter, got %v", toks[1].Kind)
	}
}

func TestLexInvalidCharacter(t *testing.T) {
	l, err := New(strings.NewReader("{A, #}"))
	if err != nil {
		t.Fatal(err)
	}
	var lastErr error
	for i := 0; i < 10; i++ {
		_, err := l.Next()
		if err != nil {
			lastErr = err
			break
		}
	}
	if lastErr == nil {
		t.Fatal("expected an error for the invalid character #")
	}
}

func TestLexPositionTracksLineAndColumn(t *testing.T) {
	toks := allTokens(t, "A,\nB")
	// A at (1,1), comma at (1,2), B at (2,1).
	if toks[0].Line != 1 || toks[0].Column != 1 {
		t.Errorf("A position = %d:%d, want 1:1", toks[0].Line, toks[0].Column)
	}
	b := toks[2]
	if b.Kind != TokenUpper || b.Letter != 'B' {
		t.Fatalf("unexpected token: %+v", b)
	}
	if b.Line != 2 || b.Column != 1 {
		t.Errorf("B position = %d:%d, want 2:1", b.Line, b.Column)
	}
}
