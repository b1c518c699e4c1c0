package lvm

import (
	"github.com/shapestone/shape-lvm/internal/parser"
	"github.com/shapestone/shape-lvm/internal/tokenizer"
)

// ParseError represents a decoding error with position information.
// Every error returned by Decode is a *ParseError; use errors.As or errors.Is
// to reach the underlying kind.
type ParseError = parser.ParseError

// FieldError names the header field whose value failed to decode.
type FieldError = parser.FieldError

// Error kinds carrying details.
type (
	// InvalidSeparatorError reports a first-line separator other than comma or tab.
	InvalidSeparatorError = parser.InvalidSeparatorError
	// UnexpectedTokenError reports a token that matched none of the accepted literals.
	UnexpectedTokenError = parser.UnexpectedTokenError
	// SeparatorExpectedError reports text found where a separator was required.
	SeparatorExpectedError = parser.SeparatorExpectedError
	// TrailingCharactersError reports unconsumed text at the end of a line.
	TrailingCharactersError = parser.TrailingCharactersError
	// NumberError reports a numeric token that failed to parse.
	NumberError = parser.NumberError
	// ValueError reports a date, time or version token that failed to parse.
	ValueError = parser.ValueError
)

// Common decoding errors
var (
	// ErrUnexpectedEndOfInput indicates the file ended before decoding was finished.
	ErrUnexpectedEndOfInput = parser.ErrUnexpectedEndOfInput

	// ErrUnexpectedEndOfLine indicates a line ended before decoding of it was finished.
	ErrUnexpectedEndOfLine = parser.ErrUnexpectedEndOfLine

	// ErrUnsupportedLayout indicates X_Columns is Multi, which cannot be decoded.
	ErrUnsupportedLayout = parser.ErrUnsupportedLayout

	// ErrMissingField indicates a required header field was not present.
	ErrMissingField = parser.ErrMissingField

	// ErrDuplicateField indicates a header field appeared more than once.
	ErrDuplicateField = parser.ErrDuplicateField

	// ErrUnknownField indicates a header key outside the schema.
	ErrUnknownField = parser.ErrUnknownField

	// ErrFieldOrder indicates a per-channel field appeared before Channels.
	ErrFieldOrder = parser.ErrFieldOrder

	// ErrInvalidUTF8 indicates a line that is not valid UTF-8 text.
	ErrInvalidUTF8 = tokenizer.ErrInvalidUTF8
)
