package storage

import (
	"errors"
	"fmt"
)

var (
	ErrIO    = errors.New("ledger i/o error")
	ErrParse = errors.New("parse error")
)

// ParseError describes a malformed field. Line is 1-based for ledger input and
// zero for values typed at the prompt.
// It unwraps to a single cause, so multierr.Errors keeps it whole.
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError is a failed ledger read or write.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrIO, e.Op, e.Err)
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func (e *IOError) Unwrap() error {
	return e.Err
}
