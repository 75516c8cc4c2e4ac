package tokenizer

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrUnterminatedQuote is reported in strict mode when a quoted field has no
// closing quote before the end of input.
var ErrUnterminatedQuote = errors.New("unterminated quoted field")

// Options configures the tokenizer behavior.
type Options struct {
	// Delimiter is the field separator. Any single rune except '"', '\r' and '\n'. Default: ','
	Delimiter rune
	// StrictQuotes makes an unterminated quoted field an error instead of
	// letting it run to the end of input.
	StrictQuotes bool
}

// DefaultOptions returns default tokenizer options.
func DefaultOptions() Options {
	return Options{
		Delimiter: ',',
	}
}

// Tokenizer produces tokens from an in-memory input in a single forward pass.
//
// Classification at the cursor:
//  1. "\n" or "\r\n" is a Newline
//  2. the delimiter is a Delimiter
//  3. anything else starts a field, quoted if it begins with '"'
//
// A Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	input     string
	delim     string
	stops     string
	strict    bool
	pos       int
	line      int
	exhausted bool
	truncated bool
	err       error
}

// New creates a tokenizer over input using delim as the field separator.
func New(input string, delim rune) *Tokenizer {
	opts := DefaultOptions()
	opts.Delimiter = delim
	return NewWithOptions(input, opts)
}

// NewWithOptions creates a tokenizer with custom options.
// No scanning happens until the first call to Next.
func NewWithOptions(input string, opts Options) *Tokenizer {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	return &Tokenizer{
		input:  input,
		delim:  string(opts.Delimiter),
		stops:  string(opts.Delimiter) + "\n",
		strict: opts.StrictQuotes,
		line:   1,
	}
}

// Next returns the next token. The second result is false once the input is
// exhausted or the tokenizer has failed; every later call returns false too.
func (t *Tokenizer) Next() (Token, bool) {
	if t.exhausted {
		return Token{}, false
	}
	if t.pos >= len(t.input) {
		t.exhausted = true
		return Token{}, false
	}

	start := t.pos
	rest := t.input[start:]

	switch {
	case rest[0] == '\n':
		t.pos++
		t.line++
		return Token{Kind: KindNewline, Value: rest[:1], Offset: start}, true
	case strings.HasPrefix(rest, "\r\n"):
		t.pos += 2
		t.line++
		return Token{Kind: KindNewline, Value: rest[:2], Offset: start}, true
	case strings.HasPrefix(rest, t.delim):
		t.pos += len(t.delim)
		return Token{Kind: KindDelimiter, Value: rest[:len(t.delim)], Offset: start}, true
	case rest[0] == '"':
		return t.quotedField()
	default:
		return t.unquotedField(), true
	}
}

// quotedField scans from an opening quote to the next quote.
func (t *Tokenizer) quotedField() (Token, bool) {
	start := t.pos
	body := t.input[start+1:]

	end := strings.IndexByte(body, '"')
	if end < 0 {
		if t.strict {
			t.exhausted = true
			t.err = ErrUnterminatedQuote
			return Token{}, false
		}
		t.truncated = true
		t.line += strings.Count(body, "\n")
		t.pos = len(t.input)
		return Token{Kind: KindField, Value: body, Offset: start}, true
	}

	value := body[:end]
	t.line += strings.Count(value, "\n")
	t.pos = start + 1 + end + 1
	return Token{Kind: KindField, Value: value, Offset: start}, true
}

// unquotedField scans to the next delimiter, newline or end of input.
// The boundary itself is left for the next call.
func (t *Tokenizer) unquotedField() Token {
	start := t.pos
	rest := t.input[start:]

	end := t.boundary(rest)
	// A CR belongs to the following LF, not to the field.
	if end < len(rest) && rest[end] == '\n' && end > 0 && rest[end-1] == '\r' {
		end--
	}

	t.pos = start + end
	return Token{Kind: KindField, Value: rest[:end], Offset: start}
}

// boundary returns the index of the first newline or delimiter in rest,
// or len(rest) if there is none.
func (t *Tokenizer) boundary(rest string) int {
	if len(t.delim) == 1 {
		if i := strings.IndexAny(rest, t.stops); i >= 0 {
			return i
		}
		return len(rest)
	}
	lead := t.delim[0]
	for i := 0; i < len(rest); i++ {
		switch c := rest[i]; {
		case c == '\n':
			return i
		case c == lead && strings.HasPrefix(rest[i:], t.delim):
			return i
		}
	}
	return len(rest)
}

// State reports what the next call to Next will produce.
func (t *Tokenizer) State() State {
	if t.exhausted || t.pos >= len(t.input) {
		return StateExhausted
	}
	rest := t.input[t.pos:]
	switch {
	case rest[0] == '\n', strings.HasPrefix(rest, "\r\n"):
		return StateReadyAtNewline
	case strings.HasPrefix(rest, t.delim):
		return StateReadyAtDelimiter
	default:
		return StateReadyAtField
	}
}

// Err returns the error that stopped the tokenizer, if any.
func (t *Tokenizer) Err() error {
	return t.err
}

// Truncated reports whether a quoted field was closed by the end of input
// rather than by a quote. Only set when StrictQuotes is off.
func (t *Tokenizer) Truncated() bool {
	return t.truncated
}

// Offset returns the byte offset of the cursor.
func (t *Tokenizer) Offset() int {
	return t.pos
}

// Line returns the 1-based line of the cursor.
func (t *Tokenizer) Line() int {
	return t.line
}

// ValidDelimiter reports whether r can be used as a field delimiter.
func ValidDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}
