package lvm

import (
	"github.com/shapestone/shape-core/pkg/ast"
)

// Node converts a decoded file to Shape's AST.
//
// The layout is:
//   - file → *ast.ObjectNode with "header" and "segments"
//   - header → *ast.ObjectNode keyed by LVM field name; absent optional fields are omitted
//   - segments → *ast.ArrayDataNode of segment objects with "header", "headings" and "rows"
//   - rows → *ast.ArrayDataNode of objects with "values" and, when present, "comment"
//   - scalars → *ast.LiteralNode; dates, times, versions and enums hold their text form
//
// Segment nodes are positioned at the line where the segment starts.
func (f *File) Node() ast.SchemaNode {
	segments := make([]ast.SchemaNode, len(f.Segments))
	for i := range f.Segments {
		segments[i] = f.Segments[i].node()
	}
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"header":   f.Header.node(),
		"segments": ast.NewArrayDataNode(segments, ast.ZeroPosition()),
	}, ast.ZeroPosition())
}

func (h FileHeader) node() ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"Date":              literal(h.Date.String()),
		"Decimal_Separator": literal(h.DecimalSeparator.String()),
		"Multi_Headings":    literal(h.MultiHeadings),
		"Reader_Version":    literal(h.ReaderVersion.String()),
		"Separator":         literal(h.Separator.String()),
		"Time":              literal(h.Time.String()),
		"Time_Pref":         literal(h.TimePref.String()),
		"Writer_Version":    literal(h.WriterVersion.String()),
		"X_Columns":         literal(h.XColumns.String()),
	}
	putOptional(props, "Description", h.Description)
	putOptional(props, "Operator", h.Operator)
	putOptional(props, "Project", h.Project)
	return ast.NewObjectNode(props, ast.ZeroPosition())
}

func (s Segment) node() ast.SchemaNode {
	pos := ast.NewPosition(0, s.Line, 1)
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"header":   s.Header.node(),
		"headings": array(s.Headings, func(v string) interface{} { return v }),
		"rows":     rowsNode(s.Rows),
	}, pos)
}

func (h SegmentHeader) node() ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"Channels":      literal(h.Channels),
		"Channel_Names": array(h.ChannelNames, func(v string) interface{} { return v }),
	}
	putArray(props, "Date", h.Date, func(v Date) interface{} { return v.String() })
	putArray(props, "Delta_X", h.DeltaX, func(v float64) interface{} { return v })
	putArray(props, "Samples", h.Samples, func(v int) interface{} { return v })
	putArray(props, "Time", h.Time, func(v Time) interface{} { return v.String() })
	putArray(props, "X0", h.X0, func(v float64) interface{} { return v })
	putArray(props, "X_Dimension", h.XDimension, func(v UnitType) interface{} { return v.String() })
	putArray(props, "X_Unit_Label", h.XUnitLabel, func(v Unit) interface{} { return string(v) })
	putArray(props, "Y_Dimension", h.YDimension, func(v UnitType) interface{} { return v.String() })
	putArray(props, "Y_Unit_Label", h.YUnitLabel, func(v Unit) interface{} { return string(v) })
	putOptional(props, "Notes", h.Notes)
	putOptional(props, "Test_Name", h.TestName)
	putOptional(props, "Test_Number", h.TestNumber)
	putOptional(props, "Test_Series", h.TestSeries)
	putOptional(props, "UUT_M/N", h.UUTModel)
	putOptional(props, "UUT_Name", h.UUTName)
	putOptional(props, "UUT_S/N", h.UUTSerial)
	return ast.NewObjectNode(props, ast.ZeroPosition())
}

// rowsNode converts data rows to an array of row objects.
func rowsNode(rows []Row) *ast.ArrayDataNode {
	elems := make([]ast.SchemaNode, len(rows))
	for i, row := range rows {
		props := map[string]ast.SchemaNode{
			"values": array(row.Values, func(v float64) interface{} { return v }),
		}
		putOptional(props, "comment", row.Comment)
		elems[i] = ast.NewObjectNode(props, ast.ZeroPosition())
	}
	return ast.NewArrayDataNode(elems, ast.ZeroPosition())
}

func literal(v interface{}) *ast.LiteralNode {
	return ast.NewLiteralNode(v, ast.ZeroPosition())
}

func array[T any](vs []T, conv func(T) interface{}) *ast.ArrayDataNode {
	elems := make([]ast.SchemaNode, len(vs))
	for i, v := range vs {
		elems[i] = literal(conv(v))
	}
	return ast.NewArrayDataNode(elems, ast.ZeroPosition())
}

func putArray[T any](props map[string]ast.SchemaNode, key string, vs []T, conv func(T) interface{}) {
	if vs != nil {
		props[key] = array(vs, conv)
	}
}

func putOptional(props map[string]ast.SchemaNode, key string, v *string) {
	if v != nil {
		props[key] = literal(*v)
	}
}
