package parser

import "fmt"

// SequenceStyle describes where separators sit between the elements of a
// variable-length list written on a single line. Every style ends the list
// at the end of the line.
type SequenceStyle int

const (
	// Leading puts a separator before every element except the first.
	// A single separator after the last element is tolerated.
	Leading SequenceStyle = iota
	// TrailingExceptLast puts a separator after every element except the one
	// that ends the line.
	TrailingExceptLast
	// AlwaysLeading puts a separator before every element, the first included.
	AlwaysLeading
)

// String returns the style name.
func (s SequenceStyle) String() string {
	switch s {
	case Leading:
		return "Leading"
	case TrailingExceptLast:
		return "TrailingExceptLast"
	case AlwaysLeading:
		return "AlwaysLeading"
	default:
		return fmt.Sprintf("SequenceStyle(%d)", int(s))
	}
}

// Seq walks the elements of a single-line list.
//
//	it := d.Seq(parser.Leading)
//	for {
//	    ok, err := it.Next()
//	    if err != nil || !ok {
//	        break
//	    }
//	    // decode one element
//	}
type Seq struct {
	d          *Decoder
	style      SequenceStyle
	first      bool
	untilBlank bool
}

// Seq starts iterating a list written in the given style.
func (d *Decoder) Seq(style SequenceStyle) *Seq {
	return &Seq{d: d, style: style, first: true}
}

// UntilBlank makes the list also end where the field after the next
// separator is empty. The separator is left unconsumed.
func (s *Seq) UntilBlank() *Seq {
	s.untilBlank = true
	return s
}

// Next reports whether another element follows, consuming the separator
// in front of it.
func (s *Seq) Next() (bool, error) {
	if s.d.cur.AtLineEnd() {
		return false, nil
	}

	var needSep bool
	switch s.style {
	case Leading, TrailingExceptLast:
		needSep = !s.first
	case AlwaysLeading:
		needSep = true
	default:
		return false, fmt.Errorf("unknown sequence style %v", s.style)
	}

	if needSep {
		if s.untilBlank && s.d.blankAhead() {
			return false, nil
		}
		if err := s.d.Separators(1); err != nil {
			return false, err
		}
		if s.style == Leading && s.d.cur.AtLineEnd() {
			return false, nil
		}
	}

	s.first = false
	return true, nil
}
