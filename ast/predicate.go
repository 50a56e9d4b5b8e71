package ast

import "strings"

// Predicate is an open formula: it always appears under the scope of at
// least one enclosing quantifier and may mention variables bound by that
// quantifier alongside singular terms (spec §3 Formulas).
type Predicate interface {
	isPredicate()
	CanonicalString() string
}

// SimplePredicate applies a predicate letter to an ordered list of terms.
type SimplePredicate struct {
	Letter PredicateLetter
	Terms  []Term
}

func (SimplePredicate) isPredicate() {}

func (p SimplePredicate) CanonicalString() string {
	var b strings.Builder
	b.WriteString(p.Letter.String())
	for _, t := range p.Terms {
		switch x := t.(type) {
		case SingularTerm:
			b.WriteString(x.String())
		case Variable:
			b.WriteString(x.String())
		}
	}
	return b.String()
}

// ConjunctivePredicate is the conjunction of two predicates.
type ConjunctivePredicate struct {
	Left, Right Predicate
}

func (ConjunctivePredicate) isPredicate() {}

func (p ConjunctivePredicate) CanonicalString() string {
	return "(" + p.Left.CanonicalString() + "&" + p.Right.CanonicalString() + ")"
}

// NegativePredicate is the negation of a predicate.
type NegativePredicate struct {
	Operand Predicate
}

func (NegativePredicate) isPredicate() {}

func (p NegativePredicate) CanonicalString() string {
	return "~" + p.Operand.CanonicalString()
}

// DisjunctivePredicate is the disjunction of two predicates.
type DisjunctivePredicate struct {
	Left, Right Predicate
}

func (DisjunctivePredicate) isPredicate() {}

func (p DisjunctivePredicate) CanonicalString() string {
	return "(" + p.Left.CanonicalString() + "∨" + p.Right.CanonicalString() + ")"
}

// ConditionalPredicate is the material conditional of two predicates.
type ConditionalPredicate struct {
	Left, Right Predicate
}

func (ConditionalPredicate) isPredicate() {}

func (p ConditionalPredicate) CanonicalString() string {
	return "(" + p.Left.CanonicalString() + "⊃" + p.Right.CanonicalString() + ")"
}
