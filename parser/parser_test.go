package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tableaulogic/tableau/ast"
	"github.com/tableaulogic/tableau/perr"
)

func mustParse(t *testing.T, src string) ast.ParseTree {
	t.Helper()
	tree, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse(%q) unexpected error: %v", src, err)
	}
	return tree
}

// Scenario 1 in spec.md §8.
func TestParseStatementSet(t *testing.T) {
	tree := mustParse(t, "{A, B, C}")
	set, ok := tree.(ast.StatementSet)
	if !ok {
		t.Fatalf("got %T, want ast.StatementSet", tree)
	}
	if len(set.Statements) != 3 {
		t.Fatalf("got %d statements, want 3", len(set.Statements))
	}
	for i, want := range []rune{'A', 'B', 'C'} {
		s, ok := set.Statements[i].(ast.SimpleStatement)
		if !ok {
			t.Fatalf("statement %d: got %T, want ast.SimpleStatement", i, set.Statements[i])
		}
		if s.Letter.Letter != want || s.Letter.Sub.Present() {
			t.Errorf("statement %d = %+v, want bare letter %c", i, s, want)
		}
	}
}

// Scenario 2.
func TestParseArgument(t *testing.T) {
	tree := mustParse(t, "A, B .:. C")
	arg, ok := tree.(ast.Argument)
	if !ok {
		t.Fatalf("got %T, want ast.Argument", tree)
	}
	if len(arg.Premises) != 2 {
		t.Fatalf("got %d premises, want 2", len(arg.Premises))
	}
	concl, ok := arg.Conclusion.(ast.SimpleStatement)
	if !ok || concl.Letter.Letter != 'C' {
		t.Fatalf("conclusion = %+v, want simple statement C", arg.Conclusion)
	}
}

func TestParseArgumentWithGlyphConclusionIndicator(t *testing.T) {
	tree := mustParse(t, "A, B ∴ C")
	if _, ok := tree.(ast.Argument); !ok {
		t.Fatalf("got %T, want ast.Argument", tree)
	}
}

// Scenario 3.
func TestParseSingularStatement(t *testing.T) {
	tree := mustParse(t, "{A₂¹b}")
	set := tree.(ast.StatementSet)
	st := set.Statements[0].(ast.SingularStatement)
	if st.Letter.Letter != 'A' || !st.Letter.Sub.EqualInt(2) || !st.Letter.Degree.EqualInt(1) {
		t.Fatalf("unexpected predicate letter: %+v", st.Letter)
	}
	if len(st.Terms) != 1 || st.Terms[0].Letter != 'b' || st.Terms[0].Sub.Present() {
		t.Fatalf("unexpected terms: %+v", st.Terms)
	}
}

// Scenario 4.
func TestParseExistentialConjunctivePredicate(t *testing.T) {
	tree := mustParse(t, "{∃z(A¹z & B¹z)}")
	set := tree.(ast.StatementSet)
	st := set.Statements[0].(ast.ExistentialStatement)
	if st.Var.Letter != 'z' || st.Var.Sub.Present() {
		t.Fatalf("unexpected bound variable: %+v", st.Var)
	}
	if _, ok := st.Body.(ast.ConjunctivePredicate); !ok {
		t.Fatalf("got %T, want ast.ConjunctivePredicate", st.Body)
	}
}

func TestParseUniversalStatement(t *testing.T) {
	tree := mustParse(t, "{∀z(A¹z & B¹z)}")
	set := tree.(ast.StatementSet)
	if _, ok := set.Statements[0].(ast.UniversalStatement); !ok {
		t.Fatalf("got %T, want ast.UniversalStatement", set.Statements[0])
	}
}

// Scenario 5: degree mismatch inside a quantified predicate.
func TestParseDegreeMismatch(t *testing.T) {
	_, err := Parse(strings.NewReader("{∃zA¹zs}"))
	if err == nil {
		t.Fatal("expected a DegreeMismatch error")
	}
	pe, ok := err.(*perr.ParseError)
	if !ok {
		t.Fatalf("got %T, want *perr.ParseError", err)
	}
	if pe.Kind != perr.KindDegreeMismatch {
		t.Fatalf("got kind %v, want %v", pe.Kind, perr.KindDegreeMismatch)
	}
}

// Scenario 6: free variable.
func TestParseFreeVariable(t *testing.T) {
	_, err := Parse(strings.NewReader("{∃zA¹y}"))
	if err == nil {
		t.Fatal("expected a FreeVariable error")
	}
	pe := err.(*perr.ParseError)
	if pe.Kind != perr.KindFreeVariable {
		t.Fatalf("got kind %v, want %v", pe.Kind, perr.KindFreeVariable)
	}
}

// Scenario 7: a singular statement cannot contain a variable.
func TestParseSingularStatementRejectsVariable(t *testing.T) {
	_, err := Parse(strings.NewReader("{A₂¹x}"))
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	pe := err.(*perr.ParseError)
	if pe.Kind != perr.KindSyntax {
		t.Fatalf("got kind %v, want %v", pe.Kind, perr.KindSyntax)
	}
}

func TestParseLogicalConnectives(t *testing.T) {
	tests := []struct {
		src  string
		want interface{}
	}{
		{"{(A & B)}", ast.LogicalConjunction{}},
		{"{~A}", ast.LogicalNegation{}},
		{"{(A ∨ B)}", ast.LogicalDisjunction{}},
		{"{(A ⊃ B)}", ast.LogicalConditional{}},
	}
	for _, tt := range tests {
		set := mustParse(t, tt.src).(ast.StatementSet)
		got := set.Statements[0]
		if reflect.TypeOf(got) != reflect.TypeOf(tt.want) {
			t.Errorf("%q: got %T, want %T", tt.src, got, tt.want)
		}
	}
}

func TestParseSimpleStatementLetterHasNoSuperscript(t *testing.T) {
	set := mustParse(t, "{A₂}").(ast.StatementSet)
	st := set.Statements[0].(ast.SimpleStatement)
	if st.Letter.Letter != 'A' || !st.Letter.Sub.EqualInt(2) {
		t.Fatalf("unexpected letter: %+v", st.Letter)
	}
}

// Property 1 (spec.md §8): canonicalizing then reparsing is idempotent.
func TestRoundTripCanonicalization(t *testing.T) {
	inputs := []string{
		"{A, B, C}",
		"A, B .:. C",
		"{A₂¹b}",
		"{∃z(A¹z & B¹z)}",
		"{∀z(A¹z & B¹z)}",
		"{~A}",
		"{(A & B)}",
		"{(A ∨ B)}",
		"{(A ⊃ B)}",
		"{∃z~A¹z}",
		"{∃z(A¹z ⊃ (B¹z ∨ ~C¹z))}",
	}
	for _, src := range inputs {
		first, err := Parse(strings.NewReader(src))
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", src, err)
		}
		var canon string
		switch tree := first.(type) {
		case ast.StatementSet:
			canon = tree.CanonicalString()
		case ast.Argument:
			canon = tree.CanonicalString()
		}

		second, err := Parse(strings.NewReader(canon))
		if err != nil {
			t.Fatalf("re-parsing canonical form %q of %q failed: %v", canon, src, err)
		}

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("round-trip mismatch for %q (canonical form %q) (-first +second):\n%s", src, canon, diff)
		}
	}
}

func TestParseRejectsEmptyStatementSet(t *testing.T) {
	_, err := Parse(strings.NewReader("{}"))
	if err == nil {
		t.Fatal("expected an error for an empty statement set")
	}
}

func TestParseRejectsUnclosedStatementSet(t *testing.T) {
	_, err := Parse(strings.NewReader("{A, B"))
	if err == nil {
		t.Fatal("expected an error for an unclosed statement set")
	}
}

func TestParseRejectsTrailingInput(t *testing.T) {
	_, err := Parse(strings.NewReader("{A} B"))
	if err == nil {
		t.Fatal("expected an error for trailing input after a complete parse tree")
	}
}

func TestParseErrorReportsLineAndColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("{A,\n#}"))
	if err == nil {
		t.Fatal("expected a lexical error")
	}
	pe := err.(*perr.ParseError)
	if pe.Line != 2 {
		t.Errorf("Line = %d, want 2", pe.Line)
	}
}

func TestParseRejectsMissingSeparator(t *testing.T) {
	_, err := Parse(strings.NewReader("{A B}"))
	if err == nil {
		t.Fatal("expected an error for a missing comma between statements")
	}
	pe := err.(*perr.ParseError)
	if !errorsIs(pe.Cause, perr.ReasonMissingSeparator) {
		t.Fatalf("got cause %v, want ReasonMissingSeparator", pe.Cause)
	}
}

func TestParseRejectsUnclosedGroup(t *testing.T) {
	_, err := Parse(strings.NewReader("{(A & B}"))
	if err == nil {
		t.Fatal("expected an error for an unclosed group")
	}
	pe := err.(*perr.ParseError)
	if !errorsIs(pe.Cause, perr.ReasonUnclosedGroup) {
		t.Fatalf("got cause %v, want ReasonUnclosedGroup", pe.Cause)
	}
}

func TestParseRejectsZeroArityPredicate(t *testing.T) {
	_, err := Parse(strings.NewReader("{∃zA¹}"))
	if err == nil {
		t.Fatal("expected an error for a predicate letter with no terms")
	}
	pe := err.(*perr.ParseError)
	if !errorsIs(pe.Cause, perr.ReasonExpectedTerm) {
		t.Fatalf("got cause %v, want ReasonExpectedTerm", pe.Cause)
	}
}

func TestParseRejectsZeroTermSingularStatement(t *testing.T) {
	_, err := Parse(strings.NewReader("{A₂¹}"))
	if err == nil {
		t.Fatal("expected an error for a singular statement with no terms")
	}
	pe := err.(*perr.ParseError)
	if !errorsIs(pe.Cause, perr.ReasonExpectedSingularTerm) {
		t.Fatalf("got cause %v, want ReasonExpectedSingularTerm", pe.Cause)
	}
}

func TestParseErrorNamesTheEnclosingRule(t *testing.T) {
	_, err := Parse(strings.NewReader("{(A & }"))
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	if !strings.Contains(err.Error(), "logical conjunction") {
		t.Fatalf("Error() = %q, want it to name the enclosing rule", err.Error())
	}
}

func errorsIs(err, target error) bool {
	return err == target
}
