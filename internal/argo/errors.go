package argo

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEnd is matched by every EndOfStreamError via errors.Is.
var ErrUnexpectedEnd = errors.New("argo: unexpected end of token stream")

// FormatError reports a malformed file header.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("argo: line %d: %s", e.Line, e.Msg)
	}
	return "argo: " + e.Msg
}

// EndOfStreamError reports that the token cursor ran out while a field
// was still expected.
type EndOfStreamError struct {
	Pos   int    // token index the read was attempted at
	Field string // name of the field being read
}

func (e *EndOfStreamError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("argo: unexpected end of data at token %d", e.Pos)
	}
	return fmt.Sprintf("argo: unexpected end of data at token %d (reading %s)", e.Pos, e.Field)
}

func (e *EndOfStreamError) Is(target error) bool {
	return target == ErrUnexpectedEnd
}

// ParseError reports a token that is not a valid number.
type ParseError struct {
	Pos   int
	Token string
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("argo: token %d %q is not a valid number (reading %s)", e.Pos, e.Token, e.Field)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
