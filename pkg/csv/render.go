package csv

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"
)

// ErrUnrepresentable indicates a field or row that cannot be written so that
// it parses back to the same value. A quoted field ends at the next quote, so a
// field cannot both need quoting and contain a quote. A row with no fields
// would be written as a blank line.
var ErrUnrepresentable = errors.New("field cannot be represented")

// Render converts a Document back to delimited text.
//
// Fields containing the delimiter, a newline or a carriage return are quoted.
// A single empty field is written as "" so the row is not read back as a blank
// line. Each row ends with \n. A row with no fields is an error.
//
// Example:
//
//	doc, _ := csv.Parse("name,age\nAlice,30")
//	out, _ := csv.Render(doc, ',')
//	// out: name,age\nAlice,30\n
func Render(doc *Document, comma rune) ([]byte, error) {
	var buf bytes.Buffer
	for i, row := range doc.Rows() {
		if err := renderRow(&buf, row, comma); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return buf.Bytes(), nil
}

// RenderNode converts an AST produced by Document.Node back to delimited text.
func RenderNode(node ast.SchemaNode, comma rune) ([]byte, error) {
	if node == nil {
		return []byte{}, nil
	}
	doc, err := FromAST(node)
	if err != nil {
		return nil, err
	}
	return Render(doc, comma)
}

func renderRow(buf *bytes.Buffer, row []string, comma rune) error {
	if len(row) == 0 {
		// A bare newline reads back as a blank line, which holds no row.
		return fmt.Errorf("%w: row with no fields", ErrUnrepresentable)
	}
	if len(row) == 1 && row[0] == "" {
		buf.WriteString("\"\"\n")
		return nil
	}
	for i, field := range row {
		if i > 0 {
			buf.WriteRune(comma)
		}
		if err := writeField(buf, field, comma); err != nil {
			return fmt.Errorf("field %d: %w", i+1, err)
		}
	}
	buf.WriteByte('\n')
	return nil
}

// writeField writes a field, quoting it when it would otherwise be split.
func writeField(buf *bytes.Buffer, value string, comma rune) error {
	needsQuoting := strings.ContainsRune(value, comma) ||
		strings.ContainsAny(value, "\n\r") ||
		strings.HasPrefix(value, `"`)

	if !needsQuoting {
		buf.WriteString(value)
		return nil
	}
	if strings.ContainsRune(value, '"') {
		return fmt.Errorf("%w: %q", ErrUnrepresentable, value)
	}
	buf.WriteByte('"')
	buf.WriteString(value)
	buf.WriteByte('"')
	return nil
}
