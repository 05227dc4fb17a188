package filters

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds returned by the decoders. Every failure carries exactly one of
// these, so callers can match with errors.Is.
var (
	ErrUnsupportedFilter     = errors.New("unsupported filter")
	ErrUnsupportedPredictor  = errors.New("unsupported predictor")
	ErrUnsupportedRowFilter  = errors.New("unsupported PNG row filter")
	ErrMissingParameter      = errors.New("missing decode parameter")
	ErrMalformedStream       = errors.New("malformed stream")
	ErrCorruptCompressedData = errors.New("corrupt compressed data")
)

// DecodeError describes why a filter rejected its input.
// Offset is -1 when the failure is not tied to an input position.
type DecodeError struct {
	Kind     error
	Filter   string
	Offset   int
	Expected string
	Actual   string
	Msg      string
	Err      error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	if e.Filter != "" {
		b.WriteString(e.Filter)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.Error())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}
	if e.Expected != "" || e.Actual != "" {
		fmt.Fprintf(&b, " (expected %s, got %s)", e.Expected, e.Actual)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Is reports whether target is the kind of this error.
func (e *DecodeError) Is(target error) bool {
	return target == e.Kind
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// malformed builds a MalformedStream error at the given input offset.
func malformed(filter string, offset int, format string, args ...interface{}) *DecodeError {
	return &DecodeError{
		Kind:   ErrMalformedStream,
		Filter: filter,
		Offset: offset,
		Msg:    fmt.Sprintf(format, args...),
	}
}
