package lvm

import (
	"fmt"

	"github.com/shapestone/shape-lvm/internal/parser"
)

// File is a decoded LVM file.
type File struct {
	Header   FileHeader `json:"header" yaml:"header"`
	Segments []Segment  `json:"segments" yaml:"segments"`
}

// FileHeader holds the fields of the header block at the top of the file.
type FileHeader struct {
	// Date when the data collection started. Required.
	Date Date `json:"date" yaml:"date"`

	// Description of the data in the file.
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`

	// DecimalSeparator separates the integral part of a number from the
	// fractional part. Defaults to DecimalDot.
	DecimalSeparator DecimalSeparator `json:"decimal_separator" yaml:"decimal_separator"`

	// MultiHeadings specifies whether each segment has a header.
	MultiHeadings bool `json:"multi_headings" yaml:"multi_headings"`

	// Operator who generated the measurements.
	Operator *string `json:"operator,omitempty" yaml:"operator,omitempty"`

	// Project associated with the data in the file.
	Project *string `json:"project,omitempty" yaml:"project,omitempty"`

	// ReaderVersion is the oldest reader version able to parse the file. Required.
	ReaderVersion Version `json:"reader_version" yaml:"reader_version"`

	// Separator is the field separator named in the header. The separator
	// actually used for decoding is the one declared on the first line.
	// Defaults to Tab.
	Separator Separator `json:"separator" yaml:"separator"`

	// Time at which the data series started. Required.
	Time Time `json:"time" yaml:"time"`

	// TimePref is the format of the x-axis values when X_Dimension is Time.
	// Defaults to TimePrefRelative.
	TimePref TimePref `json:"time_pref" yaml:"time_pref"`

	// WriterVersion is the version of the file type that was written. Required.
	WriterVersion Version `json:"writer_version" yaml:"writer_version"`

	// XColumns specifies which x-values are saved. Defaults to XColumnsOne.
	XColumns XColumns `json:"x_columns" yaml:"x_columns"`
}

// SegmentHeader holds the header block of a single segment.
//
// Channels must appear before every field with one entry per channel.
type SegmentHeader struct {
	Channels     int        `json:"channels" yaml:"channels"`
	ChannelNames []string   `json:"channel_names,omitempty" yaml:"channel_names,omitempty"`
	Date         []Date     `json:"date,omitempty" yaml:"date,omitempty"`
	DeltaX       []float64  `json:"delta_x,omitempty" yaml:"delta_x,omitempty"`
	Notes        *string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	Samples      []int      `json:"samples,omitempty" yaml:"samples,omitempty"`
	TestName     *string    `json:"test_name,omitempty" yaml:"test_name,omitempty"`
	TestNumber   *string    `json:"test_number,omitempty" yaml:"test_number,omitempty"`
	TestSeries   *string    `json:"test_series,omitempty" yaml:"test_series,omitempty"`
	Time         []Time     `json:"time,omitempty" yaml:"time,omitempty"`
	UUTModel     *string    `json:"uut_model,omitempty" yaml:"uut_model,omitempty"`
	UUTName      *string    `json:"uut_name,omitempty" yaml:"uut_name,omitempty"`
	UUTSerial    *string    `json:"uut_serial,omitempty" yaml:"uut_serial,omitempty"`
	X0           []float64  `json:"x0,omitempty" yaml:"x0,omitempty"`
	XDimension   []UnitType `json:"x_dimension,omitempty" yaml:"x_dimension,omitempty"`
	XUnitLabel   []Unit     `json:"x_unit_label,omitempty" yaml:"x_unit_label,omitempty"`
	YDimension   []UnitType `json:"y_dimension,omitempty" yaml:"y_dimension,omitempty"`
	YUnitLabel   []Unit     `json:"y_unit_label,omitempty" yaml:"y_unit_label,omitempty"`
}

// Segment is one block of measurements: its header, the column headings and
// the data rows.
type Segment struct {
	Header   SegmentHeader `json:"header" yaml:"header"`
	Headings []string      `json:"headings" yaml:"headings"`
	Rows     []Row         `json:"rows" yaml:"rows"`
	// Line is the line on which the segment header starts.
	Line int `json:"line" yaml:"line"`
}

// Row is a single data row: the numeric columns and an optional comment.
type Row struct {
	Values  []float64 `json:"values" yaml:"values,flow"`
	Comment *string   `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Separator is a field separator character.
type Separator = parser.Separator

// Recognized separators.
const (
	Comma = parser.Comma
	Tab   = parser.Tab
)

var separatorNames = []string{"Comma", "Tab"}

// DecimalSeparator is the character between the integral and fractional
// part of a number.
type DecimalSeparator int

const (
	// DecimalDot is '.'.
	DecimalDot DecimalSeparator = iota
	// DecimalComma is ','.
	DecimalComma
)

// Rune returns the separator character.
func (s DecimalSeparator) Rune() rune {
	if s == DecimalComma {
		return ','
	}
	return '.'
}

// String returns the separator character as text.
func (s DecimalSeparator) String() string {
	switch s {
	case DecimalDot, DecimalComma:
		return string(s.Rune())
	default:
		return fmt.Sprintf("DecimalSeparator(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s DecimalSeparator) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func decimalSeparatorFromRune(r rune) (DecimalSeparator, error) {
	switch r {
	case '.':
		return DecimalDot, nil
	case ',':
		return DecimalComma, nil
	default:
		return 0, &UnexpectedTokenError{Found: string(r), Expected: []string{",", "."}}
	}
}

// XColumns specifies which x-values are saved in the data rows.
type XColumns int

const (
	// XColumnsNo saves no x-values; the first data column is blank.
	XColumnsNo XColumns = iota
	// XColumnsOne saves one column of x-values.
	XColumnsOne
	// XColumnsMulti saves a column of x-values for every column of y-values.
	XColumnsMulti
)

var xColumnsNames = []string{"No", "One", "Multi"}

// String returns the header name of the layout.
func (x XColumns) String() string {
	return enumName(xColumnsNames, int(x), "XColumns")
}

// MarshalText implements encoding.TextMarshaler.
func (x XColumns) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// TimePref is the format of time x-values.
type TimePref int

const (
	// TimePrefAbsolute counts seconds since midnight, January 1, 1904 GMT.
	TimePrefAbsolute TimePref = iota
	// TimePrefRelative counts seconds since the date and time stamps.
	TimePrefRelative
)

var timePrefNames = []string{"Absolute", "Relative"}

// String returns the header name of the preference.
func (p TimePref) String() string {
	return enumName(timePrefNames, int(p), "TimePref")
}

// MarshalText implements encoding.TextMarshaler.
func (p TimePref) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnitType is the physical dimension of an axis.
type UnitType int

const (
	// UnitElectricPotential is measured in volts.
	UnitElectricPotential UnitType = iota
	// UnitTime is measured in seconds.
	UnitTime
)

var unitTypeNames = []string{"Electric_Potential", "Time"}

// String returns the header name of the dimension.
func (u UnitType) String() string {
	return enumName(unitTypeNames, int(u), "UnitType")
}

// MarshalText implements encoding.TextMarshaler.
func (u UnitType) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func enumName(names []string, i int, typ string) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("%s(%d)", typ, i)
}
