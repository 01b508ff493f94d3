package syntax

// ErrorCode describes a failure to parse a pattern.
type ErrorCode string

const (
	// ErrUnterminatedEscape is reported for a `\` with nothing after it.
	ErrUnterminatedEscape ErrorCode = "trailing backslash at end of expression"

	// ErrUnmatchedCloseGroup is reported for a `)` with no open group.
	ErrUnmatchedCloseGroup ErrorCode = "unexpected )"

	// ErrUnmatchedOpenGroup is reported when the pattern ends inside a group.
	ErrUnmatchedOpenGroup ErrorCode = "missing closing )"

	// ErrDoubleQuantifier is reported when a second quantifier follows an
	// already quantified atom, as in `a**` or `a+?`.
	ErrDoubleQuantifier ErrorCode = "invalid nested repetition operator"

	// ErrMissingRepeatArgument is reported when a quantifier has no atom to
	// apply to, as in `*a` or `(?)`.
	ErrMissingRepeatArgument ErrorCode = "missing argument to repetition operator"
)

// String returns the human-readable message for the code.
func (e ErrorCode) String() string {
	return string(e)
}

// Error describes a pattern that failed to parse.
//
// The message format follows regexp/syntax so callers that already print
// stdlib errors see the same shape.
type Error struct {
	Code ErrorCode
	Expr string // full pattern text
	Pos  int    // byte offset of the offending token
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "error parsing regexp: " + e.Code.String() + ": `" + e.Expr + "`"
}

// Is lets errors.Is match any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Expr == "" || t.Expr == e.Expr)
}
