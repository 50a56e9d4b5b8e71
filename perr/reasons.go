package perr

import "errors"

// Sentinel reasons, catalogued the way the teacher's
// spec/grammar/parser/syntax_error.go catalogues its synErr* values: one
// package-level error per distinct diagnosable condition, reused by both
// the lexer and the parser.
var (
	// Lexical reasons.
	ReasonUnclosedConclusionIndicator = errors.New("the conclusion indicator .:. is missing its final dot")
	ReasonInvalidCharacter            = errors.New("unrecognized character")
	ReasonNumeralDecodeDrift          = errors.New("internal: the lexer accepted a digit codepoint the numeral decoder does not recognize")

	// Syntax reasons.
	ReasonUnexpectedToken         = errors.New("unexpected token")
	ReasonUnclosedStatementSet    = errors.New("a statement set must be closed by }")
	ReasonUnclosedGroup           = errors.New("a grouped statement or predicate must be closed by )")
	ReasonMissingSeparator        = errors.New("statements in a set must be separated by ,")
	ReasonMissingConclusion       = errors.New("an argument must end with a conclusion indicator and a conclusion")
	ReasonEmptyStatementSet       = errors.New("a statement set must contain at least one statement")
	ReasonExpectedStatement       = errors.New("expected a statement")
	ReasonExpectedPredicate       = errors.New("expected a predicate")
	ReasonExpectedTerm            = errors.New("a predicate letter must be followed by at least one term")
	ReasonExpectedSingularTerm    = errors.New("a singular statement's predicate letter must be followed by at least one singular term")
	ReasonExpectedVariable        = errors.New("expected a variable")
	ReasonExpectedPredicateLetter = errors.New("expected a predicate letter with a degree")
	ReasonTrailingInput           = errors.New("unexpected input after a complete statement set or argument")

	// Semantic reasons (folded into lowering, spec.md §4.D).
	ReasonDegreeMismatch        = errors.New("a predicate letter's degree does not match the number of terms supplied")
	ReasonFreeVariable          = errors.New("this variable is not bound by any enclosing quantifier")
	ReasonSingularStatementTerm = errors.New("a singular statement's terms must be singular terms, not variables")
)

// ruleNames renames internal grammar production names to the
// human-readable phrases spec.md §4.D calls for in error messages (e.g.
// "logical_conjunction" -> "logical conjunction").
var ruleNames = map[string]string{
	"statement_set":         "statement set",
	"argument":              "argument",
	"simple_statement":      "simple statement",
	"singular_statement":    "singular statement",
	"complex_statement":     "complex statement",
	"logical_conjunction":   "logical conjunction",
	"logical_negation":      "logical negation",
	"logical_disjunction":   "logical disjunction",
	"logical_conditional":   "logical conditional",
	"existential_statement": "existential statement",
	"universal_statement":   "universal statement",
	"simple_predicate":      "simple predicate",
	"compound_predicate":    "compound predicate",
}

// HumanRuleName renames a grammar production name to its human-readable
// phrase, or returns the name unchanged if it has none on file.
func HumanRuleName(rule string) string {
	if phrase, ok := ruleNames[rule]; ok {
		return phrase
	}
	return rule
}
