// Package tokenizer provides LVM tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for LVM format.
//
// Two tokenizers are built from these: a line tokenizer that splits the
// input at line terminators, and a field tokenizer that splits a single line
// at the separator declared on the first line of the file.
const (
	// Line structure
	TokenNewline = "Newline" // \n or \r\n (line terminator)
	TokenText    = "Text"    // Line content (anything but a line terminator)

	// Field structure
	TokenSeparator = "Separator" // , or \t as declared by the file
	TokenField     = "Field"     // Field content (any non-separator character)
)
