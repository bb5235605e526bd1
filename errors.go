package aoc

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error returned by a solver or by Lines matches
// exactly one of these with errors.Is.
var (
	ErrFileAccess        = errors.New("file access")
	ErrDecode            = errors.New("decode")
	ErrParse             = errors.New("parse")
	ErrUnrecognizedInput = errors.New("unrecognized input")
	ErrLogicAssertion    = errors.New("logic assertion")
)

// InputError is an error tied to a location in the puzzle input.
//
// Line is 1-based; zero means the error is not tied to a single line
// (for example an incomplete trailing group). Lines fills in Line and
// Text for errors returned from its callbacks.
type InputError struct {
	Kind error
	Line int
	Text string
	Err  error
}

func (e *InputError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Kind.Error())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if e.Text != "" {
		fmt.Fprintf(&b, " in %q", e.Text)
	}
	return b.String()
}

func (e *InputError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func inputErrorf(kind error, format string, args ...any) error {
	return &InputError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// ParseErrorf returns an ErrParse error for malformed input.
func ParseErrorf(format string, args ...any) error {
	return inputErrorf(ErrParse, format, args...)
}

// UnrecognizedErrorf returns an ErrUnrecognizedInput error for a value
// outside a decode table.
func UnrecognizedErrorf(format string, args ...any) error {
	return inputErrorf(ErrUnrecognizedInput, format, args...)
}

// LogicErrorf returns an ErrLogicAssertion error for input that breaks a
// guarantee of the puzzle.
func LogicErrorf(format string, args ...any) error {
	return inputErrorf(ErrLogicAssertion, format, args...)
}
