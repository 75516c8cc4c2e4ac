// Package format writes parsed documents in the output formats the CLI offers.
package format

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shapestone/csvline/pkg/csv"
)

// Encoder writes a whole document.
type Encoder interface {
	Encode(doc *csv.Document) error
}

// Options configures the encoders.
type Options struct {
	// Comma is the delimiter used by the CSV encoder. Default: ','
	Comma rune
	// Header makes the JSON encoder emit one object per record keyed by the first row.
	Header bool
	// Keys rewrites header names before they are used as JSON keys. Nil keeps them as is.
	Keys csv.HeaderConverter
}

type constructor func(w io.Writer, opts Options) Encoder

var encoders = map[string]constructor{
	"debug": func(w io.Writer, _ Options) Encoder { return NewDebugEncoder(w) },
	"json":  func(w io.Writer, opts Options) Encoder { return NewJSONEncoder(w, opts.Header, opts.Keys) },
	"csv":   func(w io.Writer, opts Options) Encoder { return NewCSVEncoder(w, opts.Comma) },
}

// Names lists the available formats.
func Names() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns the encoder registered under name.
func New(name string, w io.Writer, opts Options) (Encoder, error) {
	ctor, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	if opts.Comma == 0 {
		opts.Comma = ','
	}
	return ctor(w, opts), nil
}

// DebugEncoder dumps the document in a human-readable form.
type DebugEncoder struct {
	w io.Writer
}

func NewDebugEncoder(w io.Writer) *DebugEncoder {
	return &DebugEncoder{w: w}
}

func (e *DebugEncoder) Encode(doc *csv.Document) error {
	_, err := fmt.Fprintln(e.w, doc.String())
	return err
}

// CSVEncoder writes the document back as delimited text.
type CSVEncoder struct {
	w     io.Writer
	comma rune
}

func NewCSVEncoder(w io.Writer, comma rune) *CSVEncoder {
	return &CSVEncoder{w: w, comma: comma}
}

func (e *CSVEncoder) Encode(doc *csv.Document) error {
	out, err := csv.Render(doc, e.comma)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	_, err = e.w.Write(out)
	return err
}
