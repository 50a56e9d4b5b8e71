package lexer

// Codepoint -> digit decode tables (spec.md §6). These are driven by the
// same rune classes the lexer itself recognizes (isSubscriptDigit,
// isSuperscriptDigit below), so the two can never disagree by
// construction — but decodeSubscriptDigit/decodeSuperscriptDigit still
// report ok=false rather than
// panicking, per spec.md §9's Open Question, option (b): a mismatch is
// reported as an internal ParseError instead of aborting the process.

var subscriptDecode = map[rune]int{
	'₀': 0, '₁': 1, '₂': 2, '₃': 3, '₄': 4,
	'₅': 5, '₆': 6, '₇': 7, '₈': 8, '₉': 9,
}

var superscriptDecode = map[rune]int{
	'⁰': 0, '¹': 1, '²': 2, '³': 3, '⁴': 4,
	'⁵': 5, '⁶': 6, '⁷': 7, '⁸': 8, '⁹': 9,
}

func isSubscriptDigit(r rune) bool {
	_, ok := subscriptDecode[r]
	return ok
}

func isSuperscriptDigit(r rune) bool {
	_, ok := superscriptDecode[r]
	return ok
}

func decodeSubscriptDigit(r rune) (int, bool) {
	d, ok := subscriptDecode[r]
	return d, ok
}

func decodeSuperscriptDigit(r rune) (int, bool) {
	d, ok := superscriptDecode[r]
	return d, ok
}

// isTermLetter/isVarLetter implement the fixed "split-at-u" lowercase
// partition spec.md §6 requires every build to document and fix:
// LOWER_TERM = a..t, LOWER_VAR = u..z.
func isTermLetter(r rune) bool {
	return r >= 'a' && r <= 't'
}

func isVarLetter(r rune) bool {
	return r >= 'u' && r <= 'z'
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
