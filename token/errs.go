package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated      = errors.New("unterminated")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadUnicode        = errors.New("bad unicode")
	ErrUnicodeControl    = errors.New("unicode control")
	ErrNumber            = errors.New("number")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrLiteral           = errors.New("bad literal")
	ErrMaxDepth          = errors.New("max depth exceeded")
	ErrOutsideContainer  = errors.New("value outside container")
)

type ScanError struct {
	Err error
	Pos Pos
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func NewScanError(err error, p *Pos) *ScanError {
	return &ScanError{Err: err, Pos: *p}
}

func ExpectedErr(what string, p *Pos) error {
	return NewScanError(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewScanError(fmt.Errorf("unexpected %s", what), p)
}
