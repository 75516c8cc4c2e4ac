// Package csv parses delimited text into rows of string fields.
//
// Parsing is a single forward pass: a tokenizer classifies the input into
// field, delimiter and newline tokens, and a parser groups the fields between
// newlines into rows. Quoted fields keep embedded delimiters and newlines.
// A quote ends a quoted field at the next quote character; there is no ""
// escape.
//
// # Thread Safety
//
// All package-level functions are safe for concurrent use. Each call creates
// its own tokenizer and parser. A Scanner must be used by one goroutine.
//
// # Example usage with Parse:
//
//	doc, err := csv.Parse("name,age\nAlice,30\nBob,25")
//	if err != nil {
//	    // handle error
//	}
//	header := doc.Header()   // [name age]
//	records := doc.Records() // [[Alice 30] [Bob 25]]
//
// # Example usage with Scanner:
//
//	scanner := csv.NewScanner(input, csv.DefaultReaderOptions())
//	for scanner.Scan() {
//	    fmt.Println(scanner.Row())
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
package csv

import (
	"fmt"
	"io"

	"github.com/shapestone/csvline/internal/parser"
)

// Parse parses comma-separated input into a Document.
//
// Example:
//
//	doc, err := csv.Parse("head1,head2\nval1,val2")
//	// doc.Rows() == [][]string{{"head1", "head2"}, {"val1", "val2"}}
func Parse(input string) (*Document, error) {
	return ParseWithOptions(input, DefaultReaderOptions())
}

// ParseWithOptions parses input into a Document with custom options.
//
// Example:
//
//	opts := csv.DefaultReaderOptions()
//	opts.Comma = '\t'
//	doc, err := csv.ParseWithOptions("name\tage\nAlice\t30", opts)
func ParseWithOptions(input string, opts ReaderOptions) (*Document, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	p := parser.NewFromString(input, opts.tokenizerOptions(), opts.parserOptions())
	rows, err := p.ParseAll()
	if err != nil {
		return nil, err
	}

	doc := NewDocument()
	for _, row := range rows {
		doc.AddRow(row)
	}
	return doc, nil
}

// ParseReader reads all of reader and parses it with default options.
// The tokenizer works on a complete in-memory buffer, so the input is
// read fully before parsing starts.
func ParseReader(reader io.Reader) (*Document, error) {
	return ParseReaderWithOptions(reader, DefaultReaderOptions())
}

// ParseReaderWithOptions reads all of reader and parses it with custom options.
func ParseReaderWithOptions(reader io.Reader, opts ReaderOptions) (*Document, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return ParseWithOptions(string(data), opts)
}

// Validate checks that input parses with the given options.
func Validate(input string, opts ReaderOptions) error {
	_, err := ParseWithOptions(input, opts)
	return err
}
