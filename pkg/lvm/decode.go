package lvm

import (
	"fmt"
	"log/slog"

	"github.com/shapestone/shape-lvm/internal/parser"
)

// fields that hold one entry per channel and therefore need Channels first.
var channelFields = map[string]bool{
	"Date":         true,
	"Delta_X":      true,
	"Samples":      true,
	"Time":         true,
	"X0":           true,
	"X_Dimension":  true,
	"X_Unit_Label": true,
	"Y_Dimension":  true,
	"Y_Unit_Label": true,
}

var requiredFileFields = []string{"Date", "Reader_Version", "Time", "Writer_Version"}

// fileDecoder drives a parser.Decoder through the LVM grammar.
//
// Grammar:
//
//	File          = Magic FileHeader Blank { Segment } ;
//	FileHeader    = { Field } EndOfHeader ;
//	Segment       = SegmentHeader ChannelPad Headings { Row } [ BlankLine ] ;
type fileDecoder struct {
	d    *parser.Decoder
	opts Options
	log  *slog.Logger
}

func decode(src parser.LineSource, opts Options) (*File, error) {
	d, err := parser.NewDecoder(src)
	if err != nil {
		if d == nil {
			return nil, err
		}
		return nil, d.Wrap(err)
	}

	fd := &fileDecoder{d: d, opts: opts, log: opts.logger()}
	f, err := fd.parseFile()
	if err != nil {
		return nil, d.Wrap(err)
	}
	return f, nil
}

// parseFile parses everything after the magic line.
func (fd *fileDecoder) parseFile() (*File, error) {
	d := fd.d
	if err := d.Newline(); err != nil {
		return nil, err
	}

	header, err := fd.parseFileHeader()
	if err != nil {
		return nil, err
	}
	if header.Separator != d.Separator() {
		fd.log.Warn("separator field disagrees with first line",
			"field", header.Separator, "declared", d.Separator())
	}
	d.SetDecimalSeparator(header.DecimalSeparator.Rune())
	fd.log.Debug("decoded file header",
		"line", d.Line(), "writer_version", header.WriterVersion, "x_columns", header.XColumns)

	// The header is followed by a line holding a single separator.
	if err := d.Newline(); err != nil {
		return nil, err
	}
	if err := d.Separators(1); err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, 1)
	for {
		ok, err := d.NextLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		seg, err := fd.parseSegment(header)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}

	return &File{Header: header, Segments: segments}, nil
}

// parseFileHeader parses the file header block, up to and including the
// separator after the end-of-header key.
func (fd *fileDecoder) parseFileHeader() (FileHeader, error) {
	d := fd.d
	h := FileHeader{
		DecimalSeparator: DecimalDot,
		Separator:        Tab,
		TimePref:         TimePrefRelative,
		XColumns:         XColumnsOne,
	}

	seen := make(map[string]bool)
	err := d.Struct(func(key string) error {
		if seen[key] {
			return ErrDuplicateField
		}
		seen[key] = true

		var err error
		switch key {
		case "Date":
			h.Date, err = parseDate(d)
		case "Description":
			h.Description, err = parser.Optional(d, parser.Text)
		case "Decimal_Separator":
			h.DecimalSeparator, err = parseDecimalSeparator(d)
		case "Multi_Headings":
			h.MultiHeadings, err = d.Bool()
		case "Operator":
			h.Operator, err = parser.Optional(d, parser.Text)
		case "Project":
			h.Project, err = parser.Optional(d, parser.Text)
		case "Reader_Version":
			h.ReaderVersion, err = parseVersion(d)
		case "Separator":
			h.Separator, err = parseSeparatorName(d)
		case "Time":
			h.Time, err = parseTime(d)
		case "Time_Pref":
			h.TimePref, err = parser.Enum[TimePref](d, timePrefNames)
		case "Writer_Version":
			h.WriterVersion, err = parseVersion(d)
		case "X_Columns":
			h.XColumns, err = parser.Enum[XColumns](d, xColumnsNames)
		default:
			err = fd.unknownField(key)
		}
		return err
	})
	if err != nil {
		return h, err
	}

	for _, key := range requiredFileFields {
		if !seen[key] {
			return h, &FieldError{Key: key, Err: ErrMissingField}
		}
	}
	return h, nil
}

// parseSegment parses one segment, starting on the first line of its header.
// It returns with the cursor on the line that ended the segment: a blank
// line, or the last row when the input ran out.
func (fd *fileDecoder) parseSegment(fh FileHeader) (Segment, error) {
	d := fd.d
	seg := Segment{Line: d.Line()}

	header, err := fd.parseSegmentHeader()
	if err != nil {
		return seg, err
	}
	seg.Header = header

	// One blank column per channel follows the end-of-header key.
	if err := d.Separators(header.Channels); err != nil {
		return seg, err
	}
	if err := d.Newline(); err != nil {
		return seg, err
	}

	seg.Headings, err = parser.Sequence(d, parser.TrailingExceptLast, parser.Text)
	if err != nil {
		return seg, err
	}
	if err := d.Newline(); err != nil {
		return seg, err
	}

	style, err := rowStyle(fh.XColumns)
	if err != nil {
		return seg, err
	}

	seg.Rows = make([]Row, 0, 16)
	for !d.AtLineEnd() {
		row, err := parseRow(d, style)
		if err != nil {
			return seg, err
		}
		seg.Rows = append(seg.Rows, row)

		ok, err := d.NextLine()
		if err != nil {
			return seg, err
		}
		if !ok {
			break
		}
	}

	fd.log.Debug("decoded segment",
		"line", seg.Line, "channels", header.Channels, "rows", len(seg.Rows))
	return seg, nil
}

// parseSegmentHeader parses a segment header block, up to and including the
// separator after the end-of-header key.
func (fd *fileDecoder) parseSegmentHeader() (SegmentHeader, error) {
	d := fd.d
	var h SegmentHeader

	seen := make(map[string]bool)
	err := d.Struct(func(key string) error {
		if seen[key] {
			return ErrDuplicateField
		}
		if channelFields[key] && !seen["Channels"] {
			return fmt.Errorf("%w: %s needs Channels", ErrFieldOrder, key)
		}
		seen[key] = true

		var err error
		switch key {
		case "Channels":
			err = d.Tuple(
				func(d *parser.Decoder) (err error) {
					h.Channels, err = d.Uint()
					return err
				},
				func(d *parser.Decoder) (err error) {
					h.ChannelNames, err = parser.Sequence(d, parser.Leading, parser.Text)
					return err
				},
			)
		case "Date":
			h.Date, err = parser.Sequence(d, parser.Leading, parseDate)
		case "Delta_X":
			h.DeltaX, err = parser.Sequence(d, parser.Leading, parser.Float64)
		case "Notes":
			h.Notes, err = parser.Optional(d, parser.Text)
		case "Samples":
			h.Samples, err = parser.Sequence(d, parser.Leading, parser.Uint)
		case "Test_Name":
			h.TestName, err = parser.Optional(d, parser.Text)
		case "Test_Number":
			h.TestNumber, err = parser.Optional(d, parser.Text)
		case "Test_Series":
			h.TestSeries, err = parser.Optional(d, parser.Text)
		case "Time":
			h.Time, err = parser.Sequence(d, parser.Leading, parseTime)
		case "UUT_M/N":
			h.UUTModel, err = parser.Optional(d, parser.Text)
		case "UUT_Name":
			h.UUTName, err = parser.Optional(d, parser.Text)
		case "UUT_S/N":
			h.UUTSerial, err = parser.Optional(d, parser.Text)
		case "X0":
			h.X0, err = parser.Sequence(d, parser.Leading, parser.Float64)
		case "X_Dimension":
			h.XDimension, err = optionalSequence(d, parseUnitType)
		case "X_Unit_Label":
			h.XUnitLabel, err = optionalSequence(d, parseUnit)
		case "Y_Dimension":
			h.YDimension, err = parser.Sequence(d, parser.Leading, parseUnitType)
		case "Y_Unit_Label":
			h.YUnitLabel, err = parser.Sequence(d, parser.Leading, parseUnit)
		default:
			err = fd.unknownField(key)
		}
		return err
	})
	if err != nil {
		return h, err
	}

	if !seen["Channels"] {
		return h, &FieldError{Key: "Channels", Err: ErrMissingField}
	}
	return h, nil
}

// parseRow parses one data row: the numeric columns, then an optional comment
// that sits after a blank column.
//
// Grammar:
//
//	Row = Values [ Sep [ Sep Comment ] ] ;
func parseRow(d *parser.Decoder, style parser.SequenceStyle) (Row, error) {
	values, err := parser.SequenceUntilBlank(d, style, parser.Float64)
	if err != nil {
		return Row{}, err
	}
	row := Row{Values: values}
	if d.AtLineEnd() {
		return row, nil
	}

	if err := d.Separators(1); err != nil {
		return row, err
	}
	if d.AtLineEnd() {
		return row, nil
	}
	if err := d.Separators(1); err != nil {
		return row, err
	}
	row.Comment, err = parser.Optional(d, parser.Text)
	return row, err
}

// rowStyle maps the x-column layout to the separator placement of data rows.
func rowStyle(x XColumns) (parser.SequenceStyle, error) {
	switch x {
	case XColumnsNo:
		return parser.AlwaysLeading, nil
	case XColumnsOne:
		return parser.TrailingExceptLast, nil
	default:
		return 0, fmt.Errorf("%w: X_Columns %s", ErrUnsupportedLayout, x)
	}
}

func (fd *fileDecoder) unknownField(key string) error {
	if !fd.opts.AllowUnknownFields {
		return ErrUnknownField
	}
	fd.log.Warn("skipping unknown header field", "field", key, "line", fd.d.Line())
	fd.d.SkipLine()
	return nil
}

func optionalSequence[T any](d *parser.Decoder, elem func(*parser.Decoder) (T, error)) ([]T, error) {
	p, err := parser.Optional(d, func(d *parser.Decoder) ([]T, error) {
		return parser.Sequence(d, parser.Leading, elem)
	})
	if err != nil || p == nil {
		return nil, err
	}
	return *p, nil
}

func parseDate(d *parser.Decoder) (Date, error) {
	return parser.Value(d, "date", ParseDate)
}

func parseTime(d *parser.Decoder) (Time, error) {
	return parser.Value(d, "time", ParseTime)
}

func parseVersion(d *parser.Decoder) (Version, error) {
	return parser.Value(d, "version", ParseVersion)
}

func parseUnitType(d *parser.Decoder) (UnitType, error) {
	return parser.Enum[UnitType](d, unitTypeNames)
}

func parseUnit(d *parser.Decoder) (Unit, error) {
	s, err := d.Text()
	return Unit(s), err
}

func parseDecimalSeparator(d *parser.Decoder) (DecimalSeparator, error) {
	r, err := d.Char()
	if err != nil {
		return 0, err
	}
	return decimalSeparatorFromRune(r)
}

func parseSeparatorName(d *parser.Decoder) (Separator, error) {
	i, err := parser.Enum[int](d, separatorNames)
	if err != nil {
		return 0, err
	}
	if i == 0 {
		return Comma, nil
	}
	return Tab, nil
}
