package tokenizer

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// ErrInvalidUTF8 indicates a line that is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("the line is not valid UTF-8")

// NewLineTokenizer creates a tokenizer that splits text into lines.
//
// Matchers in order of specificity:
// 1. Newlines (CRLF before LF to match longer sequence first)
// 2. A carriage return not followed by LF, which is line content
// 3. Line content (everything else)
func NewLineTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenNewline, "\r\n"),
		tokenizer.StringMatcherFunc(TokenNewline, "\n"),
		tokenizer.StringMatcherFunc(TokenText, "\r"),
		LineContentMatcher(),
	)
}

// NewFieldTokenizer creates a tokenizer that splits a single line into
// fields and separators.
func NewFieldTokenizer(sep rune) tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenSeparator, string(sep)),
		FieldContentMatcher(sep),
	)
}

// LineContentMatcher matches runs of characters that are not CR or LF.
//
// Grammar:
//
//	Text = Character+ ;
//	Character = <any character except CR, LF> ;
func LineContentMatcher() tokenizer.Matcher {
	return runMatcher(TokenText, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
}

// FieldContentMatcher matches runs of characters that are not the separator.
// Lines never contain CR or LF, so the separator is the only stop character.
//
// Grammar:
//
//	Field = Character+ ;
//	Character = <any character except separator> ;
func FieldContentMatcher(sep rune) tokenizer.Matcher {
	return runMatcher(TokenField, func(r rune) bool {
		return r == sep
	})
}

// runMatcher builds a matcher for the longest non-empty run of characters
// before a stop character.
//
// Performance: Uses ByteStream for fast scanning when available. Stop
// characters are ASCII, so no multi-byte sequence can contain one.
func runMatcher(kind string, stop func(rune) bool) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if byteStream, ok := stream.(tokenizer.ByteStream); ok {
			startPos := byteStream.BytePosition()
			for {
				b, ok := byteStream.PeekByte()
				if !ok || (b < utf8.RuneSelf && stop(rune(b))) {
					break
				}
				byteStream.NextByte()
			}
			if byteStream.BytePosition() == startPos {
				return nil
			}
			return tokenizer.NewToken(kind, []rune(string(byteStream.SliceFrom(startPos))))
		}

		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || stop(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(kind, value)
	}
}

// LineReader returns the input one line at a time.
//
// Line terminators are "\n" or "\r\n" and are not part of the returned line.
// A terminator at the very end of the input does not produce an extra empty line,
// matching bufio.Scanner's ScanLines behavior.
//
// The whole input is read on the first call to Next so that characters are
// never split across reads. A line holding invalid UTF-8 fails with
// ErrInvalidUTF8 when it is reached.
type LineReader struct {
	r      io.Reader
	tok    tokenizer.Tokenizer
	loaded bool
	done   bool
	err    error
	line   int
	bad    int // first line with invalid UTF-8, 0 if none
}

// NewLineReader creates a LineReader reading from r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: r}
}

// Next returns the next line of input.
//
// ok is false once the input is exhausted. If the underlying reader failed,
// the lines before the failure are returned first, then the read error
// instead of a clean end of input.
func (lr *LineReader) Next() (line string, ok bool, err error) {
	if !lr.loaded {
		lr.load()
	}
	if lr.done {
		return "", false, lr.err
	}
	if lr.bad == lr.line+1 {
		lr.done = true
		lr.err = ErrInvalidUTF8
		return "", false, lr.err
	}

	var b strings.Builder
	for {
		token, more := lr.tok.NextToken()
		if !more {
			lr.done = true
			if b.Len() == 0 {
				return "", false, lr.err
			}
			break
		}
		if token.Kind() == TokenNewline {
			break
		}
		b.WriteString(token.ValueString())
	}

	lr.line++
	return b.String(), true, nil
}

func (lr *LineReader) load() {
	lr.loaded = true

	data, err := io.ReadAll(lr.r)
	if err != nil {
		// Keep complete lines only; the last one may have been cut short.
		lr.err = err
		data = data[:bytes.LastIndexByte(data, '\n')+1]
	}
	if i := invalidUTF8(data); i >= 0 {
		lr.bad = bytes.Count(data[:i], []byte{'\n'}) + 1
	}

	lr.tok = NewLineTokenizer()
	lr.tok.InitializeFromStream(tokenizer.NewStream(string(data)))
}

// invalidUTF8 returns the offset of the first invalid UTF-8 sequence in data,
// or -1 if data is valid.
func invalidUTF8(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
