package lib

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrLex is matched by every error returned from Scan.
	ErrLex = errors.New("lexical error")

	ErrEmptyExpression       = errors.New("empty expression")
	ErrMismatchedParenthesis = errors.New("mismatched parenthesis")
	ErrInvalidExpression     = errors.New("invalid expression")
	ErrInvalidOperator       = errors.New("invalid operator")
)

// UnsupportedTokenError is returned when a character matches no token rule.
type UnsupportedTokenError struct {
	Char     rune
	Location Location
}

func (e *UnsupportedTokenError) Error() string {
	return fmt.Sprintf("Error at line %s: unsupported token %q", e.Location, e.Char)
}

func (e *UnsupportedTokenError) Is(target error) bool {
	return target == ErrLex
}

// NumberParseError is returned when a digit run cannot be represented as a
// float64.
type NumberParseError struct {
	Text     string
	Location Location
	Err      error
}

func (e *NumberParseError) Error() string {
	return fmt.Sprintf("Error at line %s: cannot parse number %q: %v", e.Location, e.Text, e.Err)
}

func (e *NumberParseError) Is(target error) bool {
	return target == ErrLex
}

func (e *NumberParseError) Unwrap() error {
	return e.Err
}

func errorAt(tok Token, err error) error {
	return errors.Wrapf(err, "at <%s>", tok)
}
