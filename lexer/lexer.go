package lexer

import (
	"io"

	"github.com/tableaulogic/tableau/ast"
	"github.com/tableaulogic/tableau/perr"
)

// Lexer scans the Unicode surface syntax (component A in spec.md §2) into
// Tokens. Like the teacher's driver/lexer.Lexer, it reads its entire
// source into memory up front and walks it by rune index rather than
// streaming from the io.Reader directly; a logic expression is always
// small, so there is no benefit to incremental reads, and it keeps
// position bookkeeping (row, column in code points, per spec.md §6)
// trivial to get right.
type Lexer struct {
	src  []rune
	pos  int
	line int
	col  int
}

// New reads all of src and returns a Lexer positioned at its start.
func New(src io.Reader) (*Lexer, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return &Lexer{
		src:  []rune(string(b)),
		pos:  0,
		line: 1,
		col:  1,
	}, nil
}

func (l *Lexer) peekAt(offset int) (rune, bool) {
	i := l.pos + offset
	if i >= len(l.src) {
		return 0, false
	}
	return l.src[i], true
}

func (l *Lexer) peek() (rune, bool) {
	return l.peekAt(0)
}

// advance consumes exactly one rune and updates line/column bookkeeping.
func (l *Lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.src)
}

// NewError builds a ParseError anchored at (line, col) in this lexer's
// source, rendering the offending line with an underline. Exported so the
// parser package can raise errors that point at already-consumed tokens
// using the same excerpt-rendering logic the lexer uses for its own
// lexical errors.
func (l *Lexer) NewError(kind perr.Kind, line, col int, cause error) *perr.ParseError {
	return l.newError(kind, line, col, cause)
}

func (l *Lexer) newError(kind perr.Kind, line, col int, cause error) *perr.ParseError {
	return &perr.ParseError{
		Kind:    kind,
		Line:    line,
		Column:  col,
		Cause:   cause,
		Excerpt: perr.RenderExcerpt(l.lineText(line), col, 1),
	}
}

func (l *Lexer) lineText(line int) string {
	start := -1
	cur := 1
	for i, r := range l.src {
		if cur == line && start == -1 {
			start = i
		}
		if r == '\n' {
			if cur == line {
				return string(l.src[start:i])
			}
			cur++
		}
	}
	if start == -1 {
		return ""
	}
	return string(l.src[start:])
}

func (l *Lexer) skipWhitespace() {
	for {
		r, ok := l.peek()
		if !ok {
			return
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			l.advance()
			continue
		}
		return
	}
}

// Next returns the next token. At end of input it returns a TokenEOF token
// forever.
func (l *Lexer) Next() (*Token, error) {
	l.skipWhitespace()

	line, col := l.line, l.col

	r, ok := l.peek()
	if !ok {
		return &Token{Kind: TokenEOF, Line: line, Column: col}, nil
	}

	switch {
	case isUpper(r):
		return l.lexUpper(line, col)
	case isTermLetter(r):
		return l.lexLower(line, col, TokenLowerTerm)
	case isVarLetter(r):
		return l.lexLower(line, col, TokenLowerVar)
	}

	switch r {
	case '&':
		l.advance()
		return &Token{Kind: TokenAmp, Line: line, Column: col}, nil
	case '∨':
		l.advance()
		return &Token{Kind: TokenDisj, Line: line, Column: col}, nil
	case '⊃':
		l.advance()
		return &Token{Kind: TokenCond, Line: line, Column: col}, nil
	case '~', '¬':
		l.advance()
		return &Token{Kind: TokenNeg, Line: line, Column: col}, nil
	case '∃':
		l.advance()
		return &Token{Kind: TokenExists, Line: line, Column: col}, nil
	case '∀':
		l.advance()
		return &Token{Kind: TokenForall, Line: line, Column: col}, nil
	case '∴':
		l.advance()
		return &Token{Kind: TokenConclusion, Line: line, Column: col}, nil
	case '(':
		l.advance()
		return &Token{Kind: TokenLParen, Line: line, Column: col}, nil
	case ')':
		l.advance()
		return &Token{Kind: TokenRParen, Line: line, Column: col}, nil
	case '{':
		l.advance()
		return &Token{Kind: TokenLBrace, Line: line, Column: col}, nil
	case '}':
		l.advance()
		return &Token{Kind: TokenRBrace, Line: line, Column: col}, nil
	case ',':
		l.advance()
		return &Token{Kind: TokenComma, Line: line, Column: col}, nil
	case '.':
		return l.lexConclusionTrigraph(line, col)
	}

	l.advance()
	return nil, l.newError(perr.KindSyntax, line, col, perr.ReasonInvalidCharacter)
}

func (l *Lexer) lexConclusionTrigraph(line, col int) (*Token, error) {
	c1, ok1 := l.peekAt(1)
	c2, ok2 := l.peekAt(2)
	if ok1 && c1 == ':' && ok2 && c2 == '.' {
		l.advance()
		l.advance()
		l.advance()
		return &Token{Kind: TokenConclusion, Line: line, Column: col}, nil
	}
	l.advance()
	return nil, l.newError(perr.KindSyntax, line, col, perr.ReasonUnclosedConclusionIndicator)
}

// lexUpper consumes an uppercase letter together with any immediately
// following subscript digits and, if present, any immediately following
// superscript digits (making the token's Degree a predicate letter's
// degree rather than a bare statement letter's).
func (l *Lexer) lexUpper(line, col int) (*Token, error) {
	letter := l.advance()

	sub, err := l.lexOptionalSubscript()
	if err != nil {
		return nil, err
	}

	if r, ok := l.peek(); ok && isSuperscriptDigit(r) {
		degree, err := l.lexSuperscript()
		if err != nil {
			return nil, err
		}
		return &Token{
			Kind: TokenUpper, Letter: letter, Sub: sub,
			HasDegree: true, Degree: ast.Degree(degree),
			Line: line, Column: col,
		}, nil
	}

	return &Token{Kind: TokenUpper, Letter: letter, Sub: sub, Line: line, Column: col}, nil
}

func (l *Lexer) lexLower(line, col int, kind TokenKind) (*Token, error) {
	letter := l.advance()
	sub, err := l.lexOptionalSubscript()
	if err != nil {
		return nil, err
	}
	return &Token{Kind: kind, Letter: letter, Sub: sub, Line: line, Column: col}, nil
}

func (l *Lexer) lexOptionalSubscript() (ast.Subscript, error) {
	r, ok := l.peek()
	if !ok || !isSubscriptDigit(r) {
		return ast.NoSubscript(), nil
	}
	n := 0
	for {
		r, ok := l.peek()
		if !ok || !isSubscriptDigit(r) {
			break
		}
		l.advance()
		d, ok := decodeSubscriptDigit(r)
		if !ok {
			return ast.Subscript{}, l.newError(perr.KindInternal, l.line, l.col, perr.ReasonNumeralDecodeDrift)
		}
		n = n*10 + d
	}
	return ast.NewSubscript(n), nil
}

func (l *Lexer) lexSuperscript() (int, error) {
	n := 0
	for {
		r, ok := l.peek()
		if !ok || !isSuperscriptDigit(r) {
			break
		}
		l.advance()
		d, ok := decodeSuperscriptDigit(r)
		if !ok {
			return 0, l.newError(perr.KindInternal, l.line, l.col, perr.ReasonNumeralDecodeDrift)
		}
		n = n*10 + d
	}
	return n, nil
}
