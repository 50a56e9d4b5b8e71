package lexer

import (
	"fmt"

	"github.com/tableaulogic/tableau/ast"
)

type TokenKind string

const (
	TokenUpper     TokenKind = "upper letter"
	TokenLowerTerm TokenKind = "lower term letter"
	TokenLowerVar  TokenKind = "lower variable letter"

	TokenAmp        TokenKind = "&"
	TokenDisj       TokenKind = "∨"
	TokenCond       TokenKind = "⊃"
	TokenNeg        TokenKind = "~"
	TokenExists     TokenKind = "∃"
	TokenForall     TokenKind = "∀"
	TokenLParen     TokenKind = "("
	TokenRParen     TokenKind = ")"
	TokenLBrace     TokenKind = "{"
	TokenRBrace     TokenKind = "}"
	TokenComma      TokenKind = ","
	TokenConclusion TokenKind = ".:."
	TokenEOF        TokenKind = "eof"
)

// Token is one lexeme of the surface syntax. For TokenUpper/TokenLowerTerm/
// TokenLowerVar, Letter/Sub (and, for TokenUpper, HasDegree/Degree) carry
// the decoded value: the lexer greedily consumes a letter's subscript and
// (for uppercase letters) superscript digits as part of the same token,
// since the grammar never allows whitespace inside one of these compound
// lexemes (spec.md §4.A/§4.B).
type Token struct {
	Kind      TokenKind
	Letter    rune
	Sub       ast.Subscript
	HasDegree bool
	Degree    ast.Degree
	Line      int
	Column    int
}

func (t *Token) String() string {
	switch t.Kind {
	case TokenUpper, TokenLowerTerm, TokenLowerVar:
		return fmt.Sprintf("%c%s", t.Letter, t.Sub)
	default:
		return string(t.Kind)
	}
}
