// Package parser assembles rows from a token stream.
// Delimiter tokens are consumed here and never reach callers.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shapestone/csvline/internal/tokenizer"
)

var (
	// ErrMalformedToken indicates a token outside the Field/Delimiter/Newline set.
	ErrMalformedToken = errors.New("malformed token")

	// ErrFieldCount indicates a row has the wrong number of fields.
	ErrFieldCount = errors.New("wrong number of fields")
)

// TokenSource yields tokens the way *tokenizer.Tokenizer does.
type TokenSource interface {
	Next() (tokenizer.Token, bool)
	Err() error
}

// ParseError represents a parsing error with position information.
type ParseError struct {
	// Line is the row where the error occurred (1-indexed).
	Line int
	// Column is the field where the error occurred (1-indexed).
	Column int
	// Offset is the byte offset of the offending token, or -1 if unknown.
	Offset int
	// Err is the underlying error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("parse error on line %d, field %d (offset %d): %v", e.Line, e.Column, e.Offset, e.Err)
	}
	return fmt.Sprintf("parse error on line %d, field %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Options configures the parser behavior.
type Options struct {
	// FieldsPerRecord validates field count. >0 exact count, 0 first row sets count, <0 no validation
	FieldsPerRecord int
	// WarningCallback is invoked when a quoted field had to be closed by end of input
	WarningCallback func(line int, message string)
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		FieldsPerRecord: -1,
	}
}

// Row is one line of the input: owned field values in column order.
type Row []string

// Parser groups tokens into rows. It owns the token source it wraps.
type Parser struct {
	src            TokenSource
	opts           Options
	expectedFields int
	rows           int
	line           int
	done           bool
	warned         bool
}

// New creates a parser over src.
func New(src TokenSource, opts Options) *Parser {
	return &Parser{
		src:            src,
		opts:           opts,
		expectedFields: opts.FieldsPerRecord,
		line:           1,
	}
}

// NewFromString creates a parser over a fresh tokenizer.
func NewFromString(input string, tokOpts tokenizer.Options, opts Options) *Parser {
	return New(tokenizer.NewWithOptions(input, tokOpts), opts)
}

// Done reports whether the token source is exhausted.
func (p *Parser) Done() bool {
	return p.done
}

// Line returns the line the next row starts on.
func (p *Parser) Line() int {
	return p.line
}

// NextRow reads the next row.
//
// It stops after consuming a newline or when the source runs out. A row with
// zero fields and Done() == true means there are no more rows; a row with zero
// fields and Done() == false is a blank line.
func (p *Parser) NextRow() (Row, error) {
	var row Row
	if p.done {
		return row, nil
	}

	line := p.line
	// pending is set while a field position is open but no Field token has filled it.
	pending := false
	// joinable is set right after a Field, so an adjacent Field extends it.
	joinable := false

	for {
		token, ok := p.src.Next()
		if !ok {
			p.done = true
			if err := p.src.Err(); err != nil {
				return nil, &ParseError{Line: p.line, Column: len(row) + 1, Offset: -1, Err: err}
			}
			break
		}

		switch token.Kind {
		case tokenizer.KindDelimiter:
			if !joinable {
				row = append(row, "")
			}
			pending = true
			joinable = false
			continue
		case tokenizer.KindField:
			if joinable {
				row[len(row)-1] += token.Value
			} else {
				row = append(row, strings.Clone(token.Value))
			}
			pending = false
			joinable = true
			continue
		case tokenizer.KindNewline:
			p.line++
		default:
			p.done = true
			return nil, &ParseError{
				Line:   p.line,
				Column: len(row) + 1,
				Offset: token.Offset,
				Err:    fmt.Errorf("%w: %s", ErrMalformedToken, token.Kind),
			}
		}
		break
	}

	if pending {
		row = append(row, "")
	}

	p.notifyTruncated(line)

	if len(row) > 0 {
		if err := p.checkFieldCount(row, line); err != nil {
			return nil, err
		}
		p.rows++
	}
	p.syncLine()
	return row, nil
}

// ParseAll reads every remaining row, skipping blank lines.
func (p *Parser) ParseAll() ([]Row, error) {
	rows := make([]Row, 0, 16)
	for {
		row, err := p.NextRow()
		if err != nil {
			return nil, err
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
		if p.done {
			return rows, nil
		}
	}
}

// checkFieldCount validates the number of fields in a row.
func (p *Parser) checkFieldCount(row Row, line int) error {
	if p.opts.FieldsPerRecord < 0 {
		return nil
	}
	if p.rows == 0 && p.expectedFields == 0 {
		// First record sets expected count
		p.expectedFields = len(row)
		return nil
	}
	if len(row) != p.expectedFields {
		return &ParseError{
			Line:   line,
			Column: 1,
			Offset: -1,
			Err:    fmt.Errorf("%w (got %d, expected %d)", ErrFieldCount, len(row), p.expectedFields),
		}
	}
	return nil
}

// truncationReporter is implemented by sources that close quoted fields at end of input.
type truncationReporter interface {
	Truncated() bool
}

// notifyTruncated fires the warning callback once for a truncated quoted field.
func (p *Parser) notifyTruncated(line int) {
	if p.warned || p.opts.WarningCallback == nil {
		return
	}
	if tr, ok := p.src.(truncationReporter); ok && tr.Truncated() {
		p.warned = true
		p.opts.WarningCallback(line, "quoted field not closed before end of input")
	}
}

// lineReporter is implemented by sources that count newlines inside quoted fields.
type lineReporter interface {
	Line() int
}

// syncLine takes the line from the source when it knows better,
// since quoted newlines do not produce Newline tokens.
func (p *Parser) syncLine() {
	if lr, ok := p.src.(lineReporter); ok {
		p.line = lr.Line()
	}
}
