package parser

// LineSource supplies input one line at a time.
// Next returns ok=false once the input is exhausted.
type LineSource interface {
	Next() (line string, ok bool, err error)
}

// Cursor tracks the unconsumed part of the current line.
//
// The cursor never looks beyond the current line: the next line is only
// pulled from the source when Advance is called.
type Cursor struct {
	src  LineSource
	line string
	pos  int
	num  int
	eof  bool
}

// NewCursor creates a cursor positioned at the start of the first line.
// An input with no lines at all fails with ErrUnexpectedEndOfInput.
func NewCursor(src LineSource) (*Cursor, error) {
	c := &Cursor{src: src}
	ok, err := c.Advance()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnexpectedEndOfInput
	}
	return c, nil
}

// AtLineEnd reports whether the current line has been fully consumed.
func (c *Cursor) AtLineEnd() bool {
	return c.pos == len(c.line)
}

// AtEOF reports whether the source has been exhausted.
func (c *Cursor) AtEOF() bool {
	return c.eof
}

// Advance moves to the next line.
//
// It fails with *TrailingCharactersError if the current line still has
// unconsumed characters. It returns false, without error, when the source
// has no more lines; whether that is acceptable is up to the caller.
// A source error moves the cursor onto the empty line that could not be read,
// so the error is positioned on that line.
func (c *Cursor) Advance() (bool, error) {
	if !c.AtLineEnd() {
		return false, &TrailingCharactersError{Remainder: c.Rest()}
	}
	if c.eof {
		return false, nil
	}
	line, ok, err := c.src.Next()
	if err != nil {
		c.line, c.pos, c.eof = "", 0, true
		c.num++
		return false, err
	}
	if !ok {
		c.eof = true
		return false, nil
	}
	c.line = line
	c.pos = 0
	c.num++
	return true, nil
}

// Line returns the 1-based number of the current line.
func (c *Cursor) Line() int {
	return c.num
}

// Column returns the 1-based byte column of the next unconsumed character.
func (c *Cursor) Column() int {
	return c.pos + 1
}

// Rest returns the unconsumed remainder of the current line.
func (c *Cursor) Rest() string {
	return c.line[c.pos:]
}

// skip consumes n bytes of the current line.
func (c *Cursor) skip(n int) {
	c.pos += n
}
