package parse

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDoc      = errors.New("empty document")
	ErrIncomplete    = errors.New("incomplete document")
	ErrInvalidNumber = errors.New("invalid number")
)

// LexError reports a scan failure. Pos is the 1-based byte position in
// the input buffer as handed to Parse.
type LexError struct {
	Err error
	Pos int
}

func (e *LexError) Unwrap() error {
	return e.Err
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error %s at position %d", e.Err.Error(), e.Pos)
}

// IncompleteError reports input that ended with Open containers still
// unterminated.
type IncompleteError struct {
	Open int
}

func (e *IncompleteError) Unwrap() error {
	return ErrIncomplete
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%d containers unterminated", e.Open)
}

// NumberError reports a numeric token that scanned but does not fit the
// value model, such as an overflowing integer or an exponent out of
// float64 range. Pos is 1-based.
type NumberError struct {
	Pos int
}

func (e *NumberError) Unwrap() error {
	return ErrInvalidNumber
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("invalid number at position %d", e.Pos)
}
