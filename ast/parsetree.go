package ast

import "strings"

// ParseTree is the root of a parse: either a set of statements tested for
// joint satisfiability, or a premises-and-conclusion argument tested for
// validity (spec §3).
type ParseTree interface {
	isParseTree()
}

// StatementSet is an unordered-in-logic, ordered-in-source list of
// statements.
type StatementSet struct {
	Statements []Statement
}

func (StatementSet) isParseTree() {}

func (s StatementSet) CanonicalString() string {
	parts := make([]string, len(s.Statements))
	for i, st := range s.Statements {
		parts[i] = st.CanonicalString()
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Argument is an ordered list of premises together with a single
// conclusion.
type Argument struct {
	Premises   []Statement
	Conclusion Statement
}

func (Argument) isParseTree() {}

func (a Argument) CanonicalString() string {
	parts := make([]string, len(a.Premises))
	for i, st := range a.Premises {
		parts[i] = st.CanonicalString()
	}
	return strings.Join(parts, ",") + ".:." + a.Conclusion.CanonicalString()
}
