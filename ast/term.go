// Package ast defines the algebraic data types produced by the parser:
// terms, predicate letters, open predicates, closed statements, and the
// top-level parse tree. Every type here is a persistent value type with
// structural equality; nodes are immutable once constructed (spec §3
// Lifecycles).
package ast

import "fmt"

// Subscript is an optional non-negative integer tag on a letter. The
// absent subscript is a distinct identity from the subscript of zero
// (invariant 4 in spec §3): Subscript{} != NewSubscript(0).
type Subscript struct {
	n       int
	present bool
}

// NoSubscript returns the absent subscript.
func NoSubscript() Subscript {
	return Subscript{}
}

// NewSubscript returns a present subscript wrapping n.
func NewSubscript(n int) Subscript {
	return Subscript{n: n, present: true}
}

// Present reports whether the subscript is attached (as opposed to absent).
func (s Subscript) Present() bool {
	return s.present
}

// Int returns the wrapped integer. It is only meaningful when Present
// reports true; callers that don't check first get 0, same as an absent
// subscript compared against an integer always being false.
func (s Subscript) Int() int {
	return s.n
}

// Equal compares two subscripts by identity: both absent, or both present
// with equal integer values.
func (s Subscript) Equal(o Subscript) bool {
	if s.present != o.present {
		return false
	}
	return !s.present || s.n == o.n
}

// EqualInt mirrors the original implementation's PartialEq<u64> for
// Subscript: a present subscript compares equal to a bare integer iff the
// values match; an absent subscript never compares equal to any integer.
func (s Subscript) EqualInt(n int) bool {
	return s.present && s.n == n
}

func (s Subscript) String() string {
	if !s.present {
		return ""
	}
	return encodeSubscript(s.n)
}

// Degree is a predicate letter's arity: the number of terms it takes.
// Degree is always >= 1 (spec §3).
type Degree int

// EqualInt mirrors the original's PartialEq<u64> for Degree.
func (d Degree) EqualInt(n int) bool {
	return int(d) == n
}

func (d Degree) String() string {
	return encodeSuperscript(int(d))
}

// SimpleStatementLetter identifies a zero-arity statement letter, e.g. A, B2.
type SimpleStatementLetter struct {
	Letter rune
	Sub    Subscript
}

func (l SimpleStatementLetter) Equal(o SimpleStatementLetter) bool {
	return l.Letter == o.Letter && l.Sub.Equal(o.Sub)
}

func (l SimpleStatementLetter) String() string {
	return fmt.Sprintf("%c%s", l.Letter, l.Sub)
}

// SingularTerm names a constant/individual, e.g. a, b2.
type SingularTerm struct {
	Letter rune
	Sub    Subscript
}

func (t SingularTerm) Equal(o SingularTerm) bool {
	return t.Letter == o.Letter && t.Sub.Equal(o.Sub)
}

func (t SingularTerm) String() string {
	return fmt.Sprintf("%c%s", t.Letter, t.Sub)
}

func (SingularTerm) isTerm() {}

// Variable names a symbol bound by a quantifier, e.g. x, y3.
type Variable struct {
	Letter rune
	Sub    Subscript
}

func (v Variable) Equal(o Variable) bool {
	return v.Letter == o.Letter && v.Sub.Equal(o.Sub)
}

func (v Variable) String() string {
	return fmt.Sprintf("%c%s", v.Letter, v.Sub)
}

func (Variable) isTerm() {}

// Term is either a SingularTerm or a Variable.
type Term interface {
	isTerm()
}

// PredicateLetter identifies a predicate of a fixed arity, e.g. A1, B2_3.
// Two predicate letters are identical iff letter, subscript, and degree
// all match (spec §3).
type PredicateLetter struct {
	Letter rune
	Sub    Subscript
	Degree Degree
}

func (p PredicateLetter) Equal(o PredicateLetter) bool {
	return p.Letter == o.Letter && p.Sub.Equal(o.Sub) && p.Degree == o.Degree
}

func (p PredicateLetter) String() string {
	return fmt.Sprintf("%c%s%s", p.Letter, p.Sub, p.Degree)
}

// Codepoint tables for rendering canonical surface syntax. These mirror,
// in reverse, the decode tables the lexer uses (see lexer/digits.go); the
// original Rust implementation duplicates the same mapping in each
// direction rather than sharing a single table, and we follow suit.
var subscriptDigits = [10]rune{
	'₀', '₁', '₂', '₃', '₄',
	'₅', '₆', '₇', '₈', '₉',
}

var superscriptDigits = [10]rune{
	'⁰', '¹', '²', '³', '⁴',
	'⁵', '⁶', '⁷', '⁸', '⁹',
}

func encodeSubscript(n int) string {
	return encodeDigits(n, subscriptDigits)
}

func encodeSuperscript(n int) string {
	return encodeDigits(n, superscriptDigits)
}

func encodeDigits(n int, table [10]rune) string {
	if n == 0 {
		return string(table[0])
	}
	var digits []rune
	for n > 0 {
		digits = append([]rune{table[n%10]}, digits...)
		n /= 10
	}
	return string(digits)
}
