package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Common decoding errors
var (
	// ErrUnexpectedEndOfInput indicates a new line was required but the input ended.
	ErrUnexpectedEndOfInput = errors.New("the end of the file was encountered before parsing was finished")

	// ErrUnexpectedEndOfLine indicates a token or separator was required but the line ended.
	ErrUnexpectedEndOfLine = errors.New("the end of the line was encountered before parsing was finished")

	// ErrUnsupportedLayout indicates a column layout the decoder recognizes but cannot read.
	ErrUnsupportedLayout = errors.New("unsupported column layout")

	// ErrMissingField indicates a required header field was not present.
	ErrMissingField = errors.New("missing field")

	// ErrDuplicateField indicates a header field appeared more than once.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrUnknownField indicates a header key that is not part of the header schema.
	ErrUnknownField = errors.New("unknown field")

	// ErrFieldOrder indicates a field was decoded before a field it depends on.
	ErrFieldOrder = errors.New("field appears before the field it depends on")
)

// ParseError attaches the input position to a decoding failure.
// It is the outermost frame of every error returned by a decode.
type ParseError struct {
	// Line is the line where the error occurred (1-indexed).
	Line int
	// Column is the byte column where the error occurred (1-indexed).
	Column int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// FieldError names the header field whose value failed to decode.
type FieldError struct {
	Key string
	Err error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Key, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// InvalidSeparatorError reports a separator character outside the recognized set.
type InvalidSeparatorError struct {
	Char rune
}

func (e *InvalidSeparatorError) Error() string {
	return fmt.Sprintf("an invalid separator %q was used by the file", e.Char)
}

// UnexpectedTokenError reports a token that matched none of the accepted literals.
type UnexpectedTokenError struct {
	Found    string
	Expected []string
}

func (e *UnexpectedTokenError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("unexpected token %q", e.Found)
	}
	quoted := make([]string, len(e.Expected))
	for i, s := range e.Expected {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%q was found instead of %s", e.Found, strings.Join(quoted, " or "))
}

// SeparatorExpectedError reports text found where a bare separator was required.
type SeparatorExpectedError struct {
	Found     string
	Separator Separator
}

func (e *SeparatorExpectedError) Error() string {
	return fmt.Sprintf("unexpected text %q was found when attempting to parse a %s separator", e.Found, e.Separator)
}

// TrailingCharactersError reports unconsumed text at the point a line had to end.
type TrailingCharactersError struct {
	Remainder string
}

func (e *TrailingCharactersError) Error() string {
	return fmt.Sprintf("trailing characters %q were found instead of the end of a line", e.Remainder)
}

// NumberError reports a numeric token that failed to parse.
type NumberError struct {
	Text string
	Err  error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("parse number %q: %v", e.Text, e.Err)
}

func (e *NumberError) Unwrap() error {
	return e.Err
}

// ValueError reports a token rejected by a leaf value's own parser
// (dates, times, versions).
type ValueError struct {
	Type string
	Text string
	Err  error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("deserialization error: invalid %s %q: %v", e.Type, e.Text, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
