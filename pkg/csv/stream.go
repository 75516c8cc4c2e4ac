package csv

import (
	"github.com/shapestone/csvline/internal/parser"
)

// Scanner reads rows one at a time from an in-memory input.
// Rows are produced as they are assembled; nothing past the current row is tokenized.
//
// Example usage:
//
//	scanner := csv.NewScanner(data, csv.DefaultReaderOptions())
//	for scanner.Scan() {
//	    row := scanner.Row()
//	    fmt.Println(row)
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	p    *parser.Parser
	row  []string
	line int
	err  error
}

// NewScanner creates a Scanner over input.
// Invalid options are reported by the first call to Scan through Err.
func NewScanner(input string, opts ReaderOptions) *Scanner {
	if err := opts.Validate(); err != nil {
		return &Scanner{err: err}
	}
	return &Scanner{
		p: parser.NewFromString(input, opts.tokenizerOptions(), opts.parserOptions()),
	}
}

// Scan advances to the next non-blank row.
// It returns false when there are no more rows or an error occurs.
// After Scan returns false, the Err method will return any error that occurred.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.p == nil {
		return false
	}
	for {
		line := s.p.Line()
		row, err := s.p.NextRow()
		if err != nil {
			s.err = err
			s.row = nil
			return false
		}
		if len(row) > 0 {
			s.row = row
			s.line = line
			return true
		}
		if s.p.Done() {
			s.row = nil
			return false
		}
	}
}

// Row returns the current row.
// This should only be called after Scan() returns true.
func (s *Scanner) Row() []string {
	return s.row
}

// Line returns the line the current row started on (1-indexed).
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the error, if any, that was encountered during scanning.
func (s *Scanner) Err() error {
	return s.err
}
