package csv

import (
	"github.com/shapestone/csvline/internal/parser"
	"github.com/shapestone/csvline/internal/tokenizer"
)

// ParseError represents a parsing error with position information.
// Use errors.As to inspect it and errors.Is to match the underlying cause.
type ParseError = parser.ParseError

// Common parsing errors
var (
	// ErrMalformedToken indicates the parser received a token it cannot place in a row.
	ErrMalformedToken = parser.ErrMalformedToken

	// ErrUnterminatedQuote indicates a quoted field had no closing quote
	// (only with ReaderOptions.StrictQuotes).
	ErrUnterminatedQuote = tokenizer.ErrUnterminatedQuote

	// ErrFieldCount indicates a record has the wrong number of fields.
	ErrFieldCount = parser.ErrFieldCount
)

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "csv: invalid " + e.Field + ": " + e.Message
}
