package parser

import (
	"unicode/utf8"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-lvm/internal/tokenizer"
)

// Separator is the field delimiter declared on the first line of a file.
type Separator rune

// Recognized separators.
const (
	Comma Separator = ','
	Tab   Separator = '\t'
)

// SeparatorFromRune validates a declared separator character.
func SeparatorFromRune(r rune) (Separator, error) {
	switch s := Separator(r); s {
	case Comma, Tab:
		return s, nil
	default:
		return 0, &InvalidSeparatorError{Char: r}
	}
}

// String returns the separator's header name ("Comma" or "Tab").
func (s Separator) String() string {
	switch s {
	case Comma:
		return "Comma"
	case Tab:
		return "Tab"
	default:
		return string(rune(s))
	}
}

// Token returns the text up to the next separator or the end of the line.
// The separator itself is left unconsumed.
//
// An empty remainder fails with ErrUnexpectedEndOfLine; a remainder that
// starts with the separator yields the empty token.
func (d *Decoder) Token() (string, error) {
	if d.cur.AtLineEnd() {
		return "", ErrUnexpectedEndOfLine
	}
	d.scan()
	token, ok := d.fields.NextToken()
	if !ok || token.Kind() != tokenizer.TokenField {
		return "", nil
	}
	tok := token.ValueString()
	d.cur.skip(len(tok))
	return tok, nil
}

// Separators consumes exactly n consecutive separators.
//
// Text found where a separator belongs fails with *SeparatorExpectedError.
// Running out of line first fails with ErrUnexpectedEndOfLine and leaves the
// cursor where it was.
func (d *Decoder) Separators(n int) error {
	if n == 0 {
		return nil
	}
	d.scan()
	for i := 0; i < n; i++ {
		token, ok := d.fields.NextToken()
		if !ok {
			return ErrUnexpectedEndOfLine
		}
		if token.Kind() != tokenizer.TokenSeparator {
			return &SeparatorExpectedError{Found: token.ValueString(), Separator: d.sep}
		}
	}
	d.cur.skip(n * utf8.RuneLen(rune(d.sep)))
	return nil
}

// blankAhead reports whether the remainder is a separator followed by an
// empty field.
func (d *Decoder) blankAhead() bool {
	d.scan()
	token, ok := d.fields.NextToken()
	if !ok || token.Kind() != tokenizer.TokenSeparator {
		return false
	}
	token, ok = d.fields.NextToken()
	return !ok || token.Kind() == tokenizer.TokenSeparator
}

// scan restarts field tokenization at the cursor.
func (d *Decoder) scan() {
	d.fields.InitializeFromStream(shapetokenizer.NewStream(d.cur.Rest()))
}

// MarshalText implements encoding.TextMarshaler.
func (s Separator) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
