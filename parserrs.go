package calc

import "strconv"

// TokenError is an error indicating a token that cannot appear where the
// parser found it. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Expected describes what the parser was looking for.
	Expected string
	// Found is the text of the offending token.
	Found string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "expected "+err.Expected+", found "+strconv.Quote(err.Found))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// EOFError is an error indicating that the input ended where the parser
// required more. It implements InputError.
type EOFError struct {
	// Col is the position just past the end of the input.
	Col int
}

func (err *EOFError) Error() string {
	return errpos(err.Col, "unexpected end of input")
}

func (err *EOFError) Pos() int {
	return err.Col
}

// ParenError is an error indicating an open parenthesis with no matching
// close parenthesis. It implements InputError.
type ParenError struct {
	// Col is the position at which the close parenthesis was required.
	Col int
}

func (err *ParenError) Error() string {
	return errpos(err.Col, "unmatched parenthesis")
}

func (err *ParenError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating input left over after a complete
// expression. It implements InputError.
type TrailingError struct {
	// Col is the position of the first unconsumed token.
	Col int
	// Found is the text of the first unconsumed token.
	Found string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected trailing input: "+strconv.Quote(err.Found))
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every lexing and parsing
// error implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*EOFError)(nil)
	_ InputError = (*ParenError)(nil)
	_ InputError = (*TrailingError)(nil)
)
