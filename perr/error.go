// Package perr defines the parser's recoverable error type. It mirrors the
// teacher's error package (github.com/nihei9/vartan/error), which wraps a
// sentinel "reason" error together with source position information, but
// adds the column precision and underlined source excerpt spec.md §6
// requires of a ParseError.
package perr

import (
	"fmt"
	"strings"
)

// Kind classifies a ParseError, matching spec.md §7's three categories.
type Kind string

const (
	KindSyntax         Kind = "syntax error"
	KindDegreeMismatch Kind = "degree mismatch"
	KindFreeVariable   Kind = "free variable"
	// KindInternal is produced only if the lexer's digit-codepoint class
	// and the numeral decoder ever disagree about which codepoints are
	// digits (spec.md §9 Open Question, option (b)). It should never be
	// observed in practice.
	KindInternal Kind = "internal error"
)

// ParseError is a recoverable value returned by Parse. Location is
// 1-based, per spec.md §6. Rule is the raw grammar production name the
// parser was lowering when the error was raised (e.g. "logical_conjunction"),
// or empty if the error occurred outside any production (e.g. trailing
// input after a complete parse). Error() renders it through HumanRuleName,
// per spec.md §4.D: "Rule names are renamed to human-readable phrases in
// error messages."
type ParseError struct {
	Kind    Kind
	Rule    string
	Line    int
	Column  int
	Cause   error
	Excerpt string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d: %s", e.Line, e.Column, e.Kind)
	if e.Rule != "" {
		fmt.Fprintf(&b, " in %s", HumanRuleName(e.Rule))
	}
	fmt.Fprintf(&b, ": %v", e.Cause)
	if e.Excerpt != "" {
		b.WriteString("\n")
		b.WriteString(e.Excerpt)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// RenderExcerpt produces a two-line, human-readable diagnostic: the
// offending source line, followed by a caret (^) underline spanning
// [col, col+width). width is clamped to at least 1 so a zero-length span
// (e.g. an error at EOF) still renders a visible marker.
func RenderExcerpt(line string, col int, width int) string {
	if width < 1 {
		width = 1
	}
	col--
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	end := col + width
	if end > len(line) {
		end = len(line)
	}

	var underline strings.Builder
	for i := 0; i < col; i++ {
		underline.WriteByte(' ')
	}
	for i := col; i < end; i++ {
		underline.WriteByte('^')
	}
	if end == col {
		underline.WriteByte('^')
	}
	return line + "\n" + underline.String()
}
