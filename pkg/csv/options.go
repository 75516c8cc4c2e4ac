package csv

import (
	"github.com/shapestone/csvline/internal/parser"
	"github.com/shapestone/csvline/internal/tokenizer"
)

// ReaderOptions configures CSV parsing behavior.
type ReaderOptions struct {
	// Comma is the field delimiter.
	// It must be a valid rune and not '"', \r, \n, or the Unicode replacement character (0xFFFD).
	// Default: ','
	Comma rune

	// StrictQuotes makes a quoted field without a closing quote an error
	// (ErrUnterminatedQuote). When false the field runs to the end of input
	// and WarningCallback, if set, is told about it.
	// Default: false
	StrictQuotes bool

	// FieldsPerRecord is the expected number of fields per record.
	// If positive, each record must have exactly this many fields.
	// If 0, the first record determines the expected field count.
	// If negative, no field count validation is performed.
	// Default: -1
	FieldsPerRecord int

	// WarningCallback receives non-fatal problems with the line they occurred on.
	WarningCallback func(line int, message string)
}

// DefaultReaderOptions returns the default reader configuration.
func DefaultReaderOptions() ReaderOptions {
	return ReaderOptions{
		Comma:           ',',
		StrictQuotes:    false,
		FieldsPerRecord: -1,
	}
}

// Validate checks if the options are valid.
func (o ReaderOptions) Validate() error {
	if !tokenizer.ValidDelimiter(o.Comma) {
		return &OptionsError{Field: "Comma", Message: "invalid delimiter"}
	}
	return nil
}

func (o ReaderOptions) tokenizerOptions() tokenizer.Options {
	return tokenizer.Options{
		Delimiter:    o.Comma,
		StrictQuotes: o.StrictQuotes,
	}
}

func (o ReaderOptions) parserOptions() parser.Options {
	return parser.Options{
		FieldsPerRecord: o.FieldsPerRecord,
		WarningCallback: o.WarningCallback,
	}
}
