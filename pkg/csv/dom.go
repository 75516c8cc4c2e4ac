package csv

import (
	"fmt"
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Document is the ordered list of rows parsed from one input.
//
// The first row is conventionally a header, but the document does not treat
// it specially; Header and Records apply that convention on request.
type Document struct {
	rows [][]string
}

// NewDocument creates a new empty Document.
func NewDocument() *Document {
	return &Document{
		rows: make([][]string, 0),
	}
}

// AddRow appends a row. Returns the Document for method chaining.
func (d *Document) AddRow(fields []string) *Document {
	d.rows = append(d.rows, fields)
	return d
}

// Rows returns all rows in input order.
func (d *Document) Rows() [][]string {
	return d.rows
}

// Len returns the number of rows, header included.
func (d *Document) Len() int {
	return len(d.rows)
}

// Row returns the row at index.
// Returns (nil, false) if the index is out of bounds.
func (d *Document) Row(index int) ([]string, bool) {
	if index < 0 || index >= len(d.rows) {
		return nil, false
	}
	return d.rows[index], true
}

// Header returns the first row, or nil for an empty document.
func (d *Document) Header() []string {
	if len(d.rows) == 0 {
		return nil
	}
	return d.rows[0]
}

// Records returns every row after the first.
func (d *Document) Records() [][]string {
	if len(d.rows) <= 1 {
		return [][]string{}
	}
	return d.rows[1:]
}

// Unique returns a new Document without repeated rows.
// The first occurrence of each row is kept.
func (d *Document) Unique() *Document {
	seen := make(map[uint64][][]string, len(d.rows))
	out := NewDocument()

	for _, row := range d.rows {
		h := RowHash(row)
		dup := false
		for _, prev := range seen[h] {
			if equalRows(prev, row) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		seen[h] = append(seen[h], row)
		out.AddRow(row)
	}
	return out
}

func equalRows(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String returns a readable multi-line dump of the document.
func (d *Document) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Document(%d rows)", len(d.rows))
	for i, row := range d.rows {
		fmt.Fprintf(&sb, "\n  %d: %q", i, row)
	}
	return sb.String()
}

// ============================================================================
// AST Conversion (for integration with AST-based APIs)
// ============================================================================

// Node converts the Document to a shape-core AST: an array of rows, each an
// array of string literals.
func (d *Document) Node() *ast.ArrayDataNode {
	rows := make([]ast.SchemaNode, 0, len(d.rows))
	for _, row := range d.rows {
		fields := make([]ast.SchemaNode, len(row))
		for i, f := range row {
			fields[i] = ast.NewLiteralNode(f, ast.ZeroPosition())
		}
		rows = append(rows, ast.NewArrayDataNode(fields, ast.ZeroPosition()))
	}
	return ast.NewArrayDataNode(rows, ast.ZeroPosition())
}

// FromAST creates a Document from an AST ArrayDataNode.
func FromAST(node ast.SchemaNode) (*Document, error) {
	arrayNode, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected *ast.ArrayDataNode, got %T", node)
	}

	doc := NewDocument()
	for _, elem := range arrayNode.Elements() {
		rowNode, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return nil, fmt.Errorf("expected row to be *ast.ArrayDataNode, got %T", elem)
		}

		fields := make([]string, 0, rowNode.Len())
		for _, fieldNode := range rowNode.Elements() {
			literalNode, ok := fieldNode.(*ast.LiteralNode)
			if !ok {
				return nil, fmt.Errorf("expected field to be *ast.LiteralNode, got %T", fieldNode)
			}

			value, ok := literalNode.Value().(string)
			if !ok {
				return nil, fmt.Errorf("expected field value to be string, got %T", literalNode.Value())
			}

			fields = append(fields, value)
		}

		doc.AddRow(fields)
	}

	return doc, nil
}
