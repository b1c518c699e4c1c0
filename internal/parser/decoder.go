// Package parser implements the recursive descent decoder for LabVIEW
// Measurement (LVM) files.
//
// The decoder works on one line at a time. Every operation consumes text from
// the current line only; moving to the next line is always explicit (Newline,
// NextLine). The separator is fixed by the first line of the file and never
// changes afterwards. Sequence styles are passed to each list decode instead of
// being held as decoder state.
package parser

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-lvm/internal/tokenizer"
)

const (
	// Magic is the text every LVM file starts with, followed by the separator.
	Magic = "LabVIEW Measurement"

	// EndOfHeader is the key that terminates a header block.
	EndOfHeader = "***End_of_Header***"
)

// Decoder decodes typed values from the current position of a Cursor.
type Decoder struct {
	cur     *Cursor
	fields  shapetokenizer.Tokenizer
	sep     Separator
	decimal rune
}

// NewDecoder reads the magic line from src and returns a decoder positioned
// at the end of that line. The separator is the single character that
// follows the magic text.
//
// Errors other than a missing first line are returned together with the
// decoder so the caller can attach the position with Wrap.
func NewDecoder(src LineSource) (*Decoder, error) {
	cur, err := NewCursor(src)
	if err != nil {
		return nil, &ParseError{Line: 1, Column: 1, Err: err}
	}
	d := &Decoder{cur: cur, decimal: '.'}

	line := cur.Rest()
	if line == "" {
		return d, ErrUnexpectedEndOfLine
	}
	r, size := utf8.DecodeLastRuneInString(line)
	sep, err := SeparatorFromRune(r)
	if err != nil {
		return d, err
	}
	if head := line[:len(line)-size]; head != Magic {
		return d, &UnexpectedTokenError{Found: head, Expected: []string{Magic}}
	}

	d.sep = sep
	d.fields = tokenizer.NewFieldTokenizer(r)
	cur.skip(len(line))
	return d, nil
}

// Separator returns the separator declared on the first line.
func (d *Decoder) Separator() Separator {
	return d.sep
}

// SetDecimalSeparator sets the character accepted as the decimal point in
// floating point values. The default is '.'.
func (d *Decoder) SetDecimalSeparator(r rune) {
	d.decimal = r
}

// Line returns the 1-based number of the current line.
func (d *Decoder) Line() int {
	return d.cur.Line()
}

// AtLineEnd reports whether the current line has been fully consumed.
func (d *Decoder) AtLineEnd() bool {
	return d.cur.AtLineEnd()
}

// Newline moves to the next line, which must exist.
func (d *Decoder) Newline() error {
	ok, err := d.cur.Advance()
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnexpectedEndOfInput
	}
	return nil
}

// NextLine moves to the next line, reporting false at end of input.
func (d *Decoder) NextLine() (bool, error) {
	return d.cur.Advance()
}

// SkipLine discards the rest of the current line.
func (d *Decoder) SkipLine() {
	d.cur.skip(len(d.cur.Rest()))
}

// Wrap attaches the current line and column to err. Errors that already
// carry a position are returned unchanged.
func (d *Decoder) Wrap(err error) error {
	if err == nil {
		return nil
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return err
	}
	return &ParseError{Line: d.cur.Line(), Column: d.cur.Column(), Err: err}
}

// Bool decodes the literal "Yes" or "No".
func (d *Decoder) Bool() (bool, error) {
	tok, err := d.Token()
	if err != nil {
		return false, err
	}
	switch tok {
	case "Yes":
		return true, nil
	case "No":
		return false, nil
	default:
		return false, &UnexpectedTokenError{Found: tok, Expected: []string{"No", "Yes"}}
	}
}

// Int decodes a signed decimal integer.
func (d *Decoder) Int() (int, error) {
	tok, err := d.Token()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &NumberError{Text: tok, Err: err}
	}
	return n, nil
}

// Uint decodes a non-negative decimal integer.
func (d *Decoder) Uint() (int, error) {
	tok, err := d.Token()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(tok, 10, strconv.IntSize-1)
	if err != nil {
		return 0, &NumberError{Text: tok, Err: err}
	}
	return int(n), nil
}

// Float64 decodes a floating point number.
func (d *Decoder) Float64() (float64, error) {
	return d.float(64)
}

// Float32 decodes a floating point number with float32 precision.
func (d *Decoder) Float32() (float32, error) {
	f, err := d.float(32)
	return float32(f), err
}

func (d *Decoder) float(bitSize int) (float64, error) {
	tok, err := d.Token()
	if err != nil {
		return 0, err
	}
	if isHexFloat(tok) {
		return 0, &NumberError{Text: tok, Err: strconv.ErrSyntax}
	}
	text := tok
	if d.decimal != '.' {
		text = strings.ReplaceAll(text, string(d.decimal), ".")
	}
	f, err := strconv.ParseFloat(text, bitSize)
	if err != nil {
		return 0, &NumberError{Text: tok, Err: err}
	}
	return f, nil
}

// isHexFloat reports whether s uses the 0x prefix that strconv accepts but
// LVM writers never produce.
func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// Char decodes a token that is exactly one character long.
func (d *Decoder) Char() (rune, error) {
	tok, err := d.Token()
	if err != nil {
		return 0, err
	}
	if utf8.RuneCountInString(tok) != 1 {
		return 0, &UnexpectedTokenError{Found: tok}
	}
	r, _ := utf8.DecodeRuneInString(tok)
	return r, nil
}

// Text decodes a token verbatim.
func (d *Decoder) Text() (string, error) {
	return d.Token()
}

// Tuple decodes a fixed number of elements, consuming one separator before
// every element after the first. The line end does not stop a tuple.
func (d *Decoder) Tuple(elems ...func(*Decoder) error) error {
	for i, elem := range elems {
		if i > 0 {
			if err := d.Separators(1); err != nil {
				return err
			}
		}
		if err := elem(d); err != nil {
			return err
		}
	}
	return nil
}

// Struct decodes a key-value block, one field per line, calling field for
// each key with the cursor positioned at the start of the value.
//
// The block ends at the EndOfHeader key. Its trailing separator is consumed
// but the line is not advanced; that is left to the caller. After every other
// field the line must be fully consumed and the next line must exist.
// Errors returned by field are wrapped in *FieldError.
func (d *Decoder) Struct(field func(key string) error) error {
	for {
		key, err := d.Token()
		if err != nil {
			return err
		}
		if key == EndOfHeader {
			return d.Separators(1)
		}
		if err := d.Separators(1); err != nil {
			return &FieldError{Key: key, Err: err}
		}
		if err := field(key); err != nil {
			return &FieldError{Key: key, Err: err}
		}
		if err := d.Newline(); err != nil {
			return &FieldError{Key: key, Err: err}
		}
	}
}
