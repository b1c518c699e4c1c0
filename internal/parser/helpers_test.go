package parser

import (
	"strings"
	"testing"
)

// lines is a LineSource over fixed lines.
type lines []string

func (l *lines) Next() (string, bool, error) {
	if len(*l) == 0 {
		return "", false, nil
	}
	line := (*l)[0]
	*l = (*l)[1:]
	return line, true, nil
}

func source(ls ...string) *lines {
	l := lines(ls)
	return &l
}

// decoderAt returns a tab-separated decoder positioned at the start of line.
func decoderAt(t *testing.T, line string) *Decoder {
	t.Helper()
	return decoderWith(t, Tab, line)
}

func decoderWith(t *testing.T, sep Separator, ls ...string) *Decoder {
	t.Helper()
	d, err := NewDecoder(source(append([]string{Magic + string(rune(sep))}, ls...)...))
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}
	if err := d.Newline(); err != nil {
		t.Fatalf("Newline() error = %v", err)
	}
	return d
}

func tabs(s string) string {
	return strings.ReplaceAll(s, "|", "\t")
}
