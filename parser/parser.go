// Package parser drives the grammar in spec.md §4.B/§4.D, lowering the
// token stream from lexer into an ast.ParseTree. It enforces degree
// agreement and variable-in-scope during lowering rather than as a
// separate pass, exactly as spec.md §4.D prescribes.
//
// The control-flow idiom is borrowed from the teacher's
// spec/grammar/parser.Parser: a single parser struct holds the lexer and
// a one-token lookahead buffer, every "parse*" method corresponds to one
// grammar production, and errors are raised by panicking a
// *perr.ParseError that Parse's top-level recover turns back into a
// regular returned error. The production the parser is currently lowering
// is tracked in p.rule and attached to every raised error, so
// perr.HumanRuleName can rename it for the message -- the same role
// original_source/src/parser/error.rs's renamed_rules plays for the Rust
// source's own error messages.
package parser

import (
	"io"

	"github.com/tableaulogic/tableau/ast"
	"github.com/tableaulogic/tableau/lexer"
	"github.com/tableaulogic/tableau/perr"
)

// Parse implements the public contract of spec.md §4.D:
// parse(input string) -> Result<ParseTree, ParseError>.
func Parse(src io.Reader) (ast.ParseTree, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	return p.parse()
}

type parser struct {
	lex    *lexer.Lexer
	peeked *lexer.Token
	last   *lexer.Token
	rule   string
}

func newParser(src io.Reader) (*parser, error) {
	lx, err := lexer.New(src)
	if err != nil {
		return nil, err
	}
	return &parser{lex: lx}, nil
}

func (p *parser) parse() (tree ast.ParseTree, retErr error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		pe, ok := r.(*perr.ParseError)
		if !ok {
			panic(r)
		}
		retErr = pe
	}()

	tree = p.parseInput()
	if tok := p.peek(); tok.Kind != lexer.TokenEOF {
		p.raiseUnexpected(tok, perr.ReasonTrailingInput)
	}
	return tree, nil
}

func (p *parser) peek() *lexer.Token {
	if p.peeked == nil {
		tok, err := p.lex.Next()
		if err != nil {
			panic(err)
		}
		p.peeked = tok
	}
	return p.peeked
}

func (p *parser) next() *lexer.Token {
	tok := p.peek()
	p.peeked = nil
	p.last = tok
	return tok
}

func (p *parser) expect(kind lexer.TokenKind) *lexer.Token {
	tok := p.peek()
	if tok.Kind != kind {
		p.raiseUnexpected(tok, perr.ReasonUnexpectedToken)
	}
	return p.next()
}

// expectRParen closes a grouped statement or predicate, raising
// ReasonUnclosedGroup (rather than the generic ReasonUnexpectedToken)
// when the closing ")" is missing.
func (p *parser) expectRParen() {
	tok := p.peek()
	if tok.Kind != lexer.TokenRParen {
		p.raiseUnexpected(tok, perr.ReasonUnclosedGroup)
	}
	p.next()
}

// enterRule records name as the production currently being lowered, for
// attachment to any error raised before the returned restore func runs.
// Call as `defer p.enterRule("rule_name")()` at the top of a parse*
// method; nested calls restore the enclosing rule name on return, so
// p.rule always names the innermost production in progress.
func (p *parser) enterRule(name string) func() {
	prev := p.rule
	p.rule = name
	return func() { p.rule = prev }
}

func (p *parser) raise(line, col int, kind perr.Kind, cause error) {
	pe := p.lex.NewError(kind, line, col, cause)
	pe.Rule = p.rule
	panic(pe)
}

func (p *parser) raiseUnexpected(tok *lexer.Token, cause error) {
	p.raise(tok.Line, tok.Column, perr.KindSyntax, cause)
}

func (p *parser) parseInput() ast.ParseTree {
	if p.peek().Kind == lexer.TokenLBrace {
		return p.parseStatementSet()
	}
	return p.parseArgument()
}

func (p *parser) parseStatementSet() ast.ParseTree {
	defer p.enterRule("statement_set")()
	p.expect(lexer.TokenLBrace)

	if p.peek().Kind == lexer.TokenRBrace {
		p.raiseUnexpected(p.peek(), perr.ReasonEmptyStatementSet)
	}

	var stmts []ast.Statement
	stmts = append(stmts, p.parseStatement())
	for p.peek().Kind == lexer.TokenComma {
		p.next()
		stmts = append(stmts, p.parseStatement())
	}

	if tok := p.peek(); tok.Kind != lexer.TokenRBrace {
		if tok.Kind == lexer.TokenEOF {
			p.raiseUnexpected(tok, perr.ReasonUnclosedStatementSet)
		}
		p.raiseUnexpected(tok, perr.ReasonMissingSeparator)
	}
	p.next()

	return ast.StatementSet{Statements: stmts}
}

func (p *parser) parseArgument() ast.ParseTree {
	defer p.enterRule("argument")()
	var premises []ast.Statement
	premises = append(premises, p.parseStatement())

	for {
		tok := p.peek()
		switch tok.Kind {
		case lexer.TokenComma:
			p.next()
			premises = append(premises, p.parseStatement())
		case lexer.TokenConclusion:
			p.next()
			conclusion := p.parseStatement()
			return ast.Argument{Premises: premises, Conclusion: conclusion}
		default:
			p.raiseUnexpected(tok, perr.ReasonMissingConclusion)
		}
	}
}

// parseStatement implements the "statement" production. Variable scope
// only ever comes into existence inside a quantified statement's body
// (spec.md §4.D "Scope semantics"), so no scope stack threads through
// statement-level recursion — only parsePredicate needs one.
func (p *parser) parseStatement() ast.Statement {
	tok := p.peek()
	switch tok.Kind {
	case lexer.TokenNeg:
		defer p.enterRule("logical_negation")()
		p.next()
		operand := p.parseStatement()
		return ast.LogicalNegation{Operand: operand}
	case lexer.TokenLParen:
		defer p.enterRule("complex_statement")()
		p.next()
		left := p.parseStatement()
		conn := p.expectConnective()
		p.rule = connectiveRuleName(conn)
		right := p.parseStatement()
		p.expectRParen()
		return connectStatements(conn, left, right)
	case lexer.TokenExists, lexer.TokenForall:
		if tok.Kind == lexer.TokenExists {
			defer p.enterRule("existential_statement")()
		} else {
			defer p.enterRule("universal_statement")()
		}
		p.next()
		v := p.parseVariable()
		body := p.parsePredicate([]ast.Variable{v})
		if tok.Kind == lexer.TokenExists {
			return ast.ExistentialStatement{Var: v, Body: body}
		}
		return ast.UniversalStatement{Var: v, Body: body}
	case lexer.TokenUpper:
		return p.parseSimpleOrSingularStatement()
	default:
		p.raiseUnexpected(tok, perr.ReasonExpectedStatement)
		panic("unreachable")
	}
}

func connectiveRuleName(conn lexer.TokenKind) string {
	switch conn {
	case lexer.TokenAmp:
		return "logical_conjunction"
	case lexer.TokenDisj:
		return "logical_disjunction"
	default:
		return "logical_conditional"
	}
}

func connectStatements(conn lexer.TokenKind, left, right ast.Statement) ast.Statement {
	switch conn {
	case lexer.TokenAmp:
		return ast.LogicalConjunction{Left: left, Right: right}
	case lexer.TokenDisj:
		return ast.LogicalDisjunction{Left: left, Right: right}
	default:
		return ast.LogicalConditional{Left: left, Right: right}
	}
}

func connectPredicates(conn lexer.TokenKind, left, right ast.Predicate) ast.Predicate {
	switch conn {
	case lexer.TokenAmp:
		return ast.ConjunctivePredicate{Left: left, Right: right}
	case lexer.TokenDisj:
		return ast.DisjunctivePredicate{Left: left, Right: right}
	default:
		return ast.ConditionalPredicate{Left: left, Right: right}
	}
}

func (p *parser) expectConnective() lexer.TokenKind {
	tok := p.peek()
	switch tok.Kind {
	case lexer.TokenAmp, lexer.TokenDisj, lexer.TokenCond:
		p.next()
		return tok.Kind
	default:
		p.raiseUnexpected(tok, perr.ReasonUnexpectedToken)
		panic("unreachable")
	}
}

// parseSimpleOrSingularStatement handles both simple_statement_letter
// (no superscript: a bare statement letter) and singular_statement (a
// predicate letter, which always carries a superscript, applied to one
// or more singular terms) -- the lexer's HasDegree flag is exactly the
// discriminator the grammar uses between the two productions.
func (p *parser) parseSimpleOrSingularStatement() ast.Statement {
	tok := p.next()

	if !tok.HasDegree {
		defer p.enterRule("simple_statement")()
		return ast.SimpleStatement{Letter: ast.SimpleStatementLetter{Letter: tok.Letter, Sub: tok.Sub}}
	}
	defer p.enterRule("singular_statement")()

	letter := ast.PredicateLetter{Letter: tok.Letter, Sub: tok.Sub, Degree: tok.Degree}

	var terms []ast.SingularTerm
termLoop:
	for {
		next := p.peek()
		switch next.Kind {
		case lexer.TokenLowerTerm:
			t := p.next()
			terms = append(terms, ast.SingularTerm{Letter: t.Letter, Sub: t.Sub})
		case lexer.TokenLowerVar:
			p.raiseUnexpected(next, perr.ReasonSingularStatementTerm)
		default:
			break termLoop
		}
	}
	if len(terms) == 0 {
		p.raise(tok.Line, tok.Column, perr.KindSyntax, perr.ReasonExpectedSingularTerm)
	}
	if !letter.Degree.EqualInt(len(terms)) {
		p.raise(tok.Line, tok.Column, perr.KindDegreeMismatch, perr.ReasonDegreeMismatch)
	}
	return ast.SingularStatement{Letter: letter, Terms: terms}
}

// parsePredicate implements the "predicate" production. stack is the
// variable scope visible at this point, pushed by the enclosing
// quantifier(s); compound predicates pass each side a defensive copy
// (spec.md §4.D "Branching predicates").
func (p *parser) parsePredicate(stack []ast.Variable) ast.Predicate {
	tok := p.peek()
	switch tok.Kind {
	case lexer.TokenNeg:
		defer p.enterRule("compound_predicate")()
		p.next()
		operand := p.parsePredicate(copyScope(stack))
		return ast.NegativePredicate{Operand: operand}
	case lexer.TokenLParen:
		defer p.enterRule("compound_predicate")()
		p.next()
		left := p.parsePredicate(copyScope(stack))
		conn := p.expectConnective()
		right := p.parsePredicate(copyScope(stack))
		p.expectRParen()
		return connectPredicates(conn, left, right)
	case lexer.TokenUpper:
		return p.parseSimplePredicate(stack)
	default:
		p.raiseUnexpected(tok, perr.ReasonExpectedPredicate)
		panic("unreachable")
	}
}

func (p *parser) parseSimplePredicate(stack []ast.Variable) ast.Predicate {
	defer p.enterRule("simple_predicate")()
	tok := p.next()
	if !tok.HasDegree {
		p.raise(tok.Line, tok.Column, perr.KindSyntax, perr.ReasonExpectedPredicateLetter)
	}
	letter := ast.PredicateLetter{Letter: tok.Letter, Sub: tok.Sub, Degree: tok.Degree}

	var terms []ast.Term
termLoop:
	for {
		next := p.peek()
		switch next.Kind {
		case lexer.TokenLowerTerm:
			t := p.next()
			terms = append(terms, ast.SingularTerm{Letter: t.Letter, Sub: t.Sub})
		case lexer.TokenLowerVar:
			t := p.next()
			v := ast.Variable{Letter: t.Letter, Sub: t.Sub}
			if !scopeContains(stack, v) {
				p.raise(t.Line, t.Column, perr.KindFreeVariable, perr.ReasonFreeVariable)
			}
			terms = append(terms, v)
		default:
			break termLoop
		}
	}
	if len(terms) == 0 {
		p.raise(tok.Line, tok.Column, perr.KindSyntax, perr.ReasonExpectedTerm)
	}
	if !letter.Degree.EqualInt(len(terms)) {
		p.raise(tok.Line, tok.Column, perr.KindDegreeMismatch, perr.ReasonDegreeMismatch)
	}
	return ast.SimplePredicate{Letter: letter, Terms: terms}
}

func (p *parser) parseVariable() ast.Variable {
	tok := p.peek()
	if tok.Kind != lexer.TokenLowerVar {
		p.raiseUnexpected(tok, perr.ReasonExpectedVariable)
	}
	p.next()
	return ast.Variable{Letter: tok.Letter, Sub: tok.Sub}
}

func copyScope(stack []ast.Variable) []ast.Variable {
	cp := make([]ast.Variable, len(stack))
	copy(cp, stack)
	return cp
}

func scopeContains(stack []ast.Variable, v ast.Variable) bool {
	for _, bound := range stack {
		if bound.Equal(v) {
			return true
		}
	}
	return false
}
