// Package lvm decodes LabVIEW Measurement (.lvm) files.
//
// An LVM file is line oriented text. The first line declares the field
// separator (comma or tab), a header block of key-value fields follows, and
// then one or more segments, each with its own header block, a row of column
// headings and rows of numeric data.
//
// This decoder uses LL(1) recursive descent parsing over a single forward
// pass. Each production rule corresponds to a parse function in decode.go;
// the token level operations live in internal/parser.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each function call creates its own decoder with no shared mutable state.
//
// # Decoding APIs
//
//   - Decode(io.Reader) - decodes into typed Go values
//   - DecodeFile(string, Options) - opens, decodes and closes a file
//   - Parse(io.Reader) - decodes into Shape's unified AST representation
//
// # Example usage with Decode:
//
//	file, err := os.Open("data.lvm")
//	if err != nil {
//	    // handle error
//	}
//	defer file.Close()
//
//	f, err := lvm.Decode(file)
//	if err != nil {
//	    var pe *lvm.ParseError
//	    if errors.As(err, &pe) {
//	        fmt.Println("bad line:", pe.Line)
//	    }
//	    // handle error
//	}
//	for _, seg := range f.Segments {
//	    fmt.Println(seg.Headings, len(seg.Rows))
//	}
package lvm

import (
	"io"
	"os"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-lvm/internal/tokenizer"
)

// Decode decodes an LVM file from r using the default options.
//
// The whole input is decoded in one pass. On failure no partial result is
// returned and the error is a *ParseError carrying the 1-based line number
// where decoding stopped.
func Decode(r io.Reader) (*File, error) {
	return DecodeWithOptions(r, DefaultOptions())
}

// DecodeWithOptions decodes an LVM file from r with custom options.
//
// Example:
//
//	opts := lvm.DefaultOptions()
//	opts.AllowUnknownFields = true
//	opts.Logger = slog.Default()
//	f, err := lvm.DecodeWithOptions(reader, opts)
func DecodeWithOptions(r io.Reader, opts Options) (*File, error) {
	return decode(tokenizer.NewLineReader(r), opts)
}

// DecodeFile opens the named file, decodes it and closes it again.
func DecodeFile(path string, opts Options) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DecodeWithOptions(file, opts)
}

// Parse decodes an LVM file from r into an AST.
//
// Returns an *ast.ObjectNode with a "header" object and a "segments" array;
// see (*File).Node for the layout.
func Parse(r io.Reader) (ast.SchemaNode, error) {
	f, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return f.Node(), nil
}

// Format returns the format identifier for this decoder.
// Returns "LVM" to identify this as the LabVIEW Measurement format.
func Format() string {
	return "LVM"
}
