package parser

import "sort"

// Enum decodes a bare token as one of the named variants. The variant value
// is the index of the matching name; matching is case-sensitive.
func Enum[T ~int](d *Decoder, names []string) (T, error) {
	tok, err := d.Token()
	if err != nil {
		return 0, err
	}
	for i, name := range names {
		if tok == name {
			return T(i), nil
		}
	}
	expected := append([]string(nil), names...)
	sort.Strings(expected)
	return 0, &UnexpectedTokenError{Found: tok, Expected: expected}
}

// Optional decodes an element unless the line has already ended, in which
// case it returns nil.
func Optional[T any](d *Decoder, elem func(*Decoder) (T, error)) (*T, error) {
	if d.AtLineEnd() {
		return nil, nil
	}
	v, err := elem(d)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Sequence decodes elements in the given style until the end of the line.
// The result is never nil.
func Sequence[T any](d *Decoder, style SequenceStyle, elem func(*Decoder) (T, error)) ([]T, error) {
	return collect(d.Seq(style), d, elem)
}

// SequenceUntilBlank is Sequence with the list also ending in front of an
// empty field.
func SequenceUntilBlank[T any](d *Decoder, style SequenceStyle, elem func(*Decoder) (T, error)) ([]T, error) {
	return collect(d.Seq(style).UntilBlank(), d, elem)
}

func collect[T any](it *Seq, d *Decoder, elem func(*Decoder) (T, error)) ([]T, error) {
	out := make([]T, 0, 4)
	for {
		ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		v, err := elem(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

// Value decodes a token with a leaf type's own parser. Parser failures are
// reported as *ValueError naming typeName.
func Value[T any](d *Decoder, typeName string, parse func(string) (T, error)) (T, error) {
	var zero T
	tok, err := d.Token()
	if err != nil {
		return zero, err
	}
	v, err := parse(tok)
	if err != nil {
		return zero, &ValueError{Type: typeName, Text: tok, Err: err}
	}
	return v, nil
}

// Method values with the element signature used by Sequence and Optional.
var (
	Uint    = (*Decoder).Uint
	Float64 = (*Decoder).Float64
	Text    = (*Decoder).Text
)
