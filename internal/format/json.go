package format

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/shapestone/csvline/pkg/csv"
)

// JSONEncoder writes the document as JSON.
//
// Without a header the output is an array of string arrays. With a header it
// is an array of objects, one per record, keyed by the first row's values in
// column order. Values beyond the header get positional keys ("_4"), and a
// record shorter than the header omits the missing keys.
type JSONEncoder struct {
	w      io.Writer
	header bool
	keys   csv.HeaderConverter
}

func NewJSONEncoder(w io.Writer, header bool, keys csv.HeaderConverter) *JSONEncoder {
	return &JSONEncoder{w: w, header: header, keys: keys}
}

func (e *JSONEncoder) Encode(doc *csv.Document) error {
	enc := jsontext.NewEncoder(e.w, jsontext.Multiline(true), jsontext.WithIndent("  "))
	if !e.header {
		return json.MarshalEncode(enc, doc.Rows())
	}
	return e.encodeObjects(enc, doc)
}

func (e *JSONEncoder) encodeObjects(enc *jsontext.Encoder, doc *csv.Document) error {
	keys := make(keySet)
	names := e.columnNames(doc.Header(), keys)

	if err := enc.WriteToken(jsontext.BeginArray); err != nil {
		return err
	}
	for _, record := range doc.Records() {
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for len(names) < len(record) {
			names = append(names, keys.claim("", len(names)+1))
		}
		for i, value := range record {
			name := names[i]
			if err := enc.WriteToken(jsontext.String(name)); err != nil {
				return fmt.Errorf("key %q: %w", name, err)
			}
			if err := enc.WriteToken(jsontext.String(value)); err != nil {
				return err
			}
		}
		if err := enc.WriteToken(jsontext.EndObject); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndArray)
}

// columnNames converts header cells to unique object keys.
// Empty or repeated names get a positional suffix.
func (e *JSONEncoder) columnNames(header []string, keys keySet) []string {
	names := make([]string, len(header))
	for i, h := range header {
		if e.keys != nil {
			h = e.keys(h)
		}
		names[i] = keys.claim(h, i+1)
	}
	return names
}

// keySet tracks the object keys handed out so far.
type keySet map[string]bool

// claim returns name if it is free, otherwise name_pos, counting up from
// name_pos_2 until an unused key is found.
func (k keySet) claim(name string, pos int) string {
	if name != "" && !k[name] {
		k[name] = true
		return name
	}
	base := name + "_" + strconv.Itoa(pos)
	candidate := base
	for n := 2; k[candidate]; n++ {
		candidate = base + "_" + strconv.Itoa(n)
	}
	k[candidate] = true
	return candidate
}
