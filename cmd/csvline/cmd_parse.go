package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/shapestone/csvline/internal/format"
	"github.com/shapestone/csvline/internal/input"
	"github.com/shapestone/csvline/pkg/csv"
)

// sniffSample bounds how much input the delimiter detection looks at.
const sniffSample = 64 << 10

func newParseCmd() *cobra.Command {
	var (
		delimiter       string
		outputFormat    string
		header          bool
		strictQuotes    bool
		unique          bool
		keys            string
		fieldsPerRecord int
	)

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a delimited file and print its rows",
		Long: `Parse a delimited file and print its rows.

Files ending in .gz, .zst or .lz4 are decompressed first.
A quoted field ends at the next quote; delimiters and newlines inside it are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			data, err := input.ReadFile(path)
			if err != nil {
				return err
			}

			comma, err := resolveDelimiter(delimiter, data)
			if err != nil {
				return err
			}
			log.Debugf("using delimiter %q for %s", comma, path)

			keyConv, err := headerConverter(keys)
			if err != nil {
				return err
			}

			opts := csv.DefaultReaderOptions()
			opts.Comma = comma
			opts.StrictQuotes = strictQuotes
			opts.FieldsPerRecord = fieldsPerRecord
			opts.WarningCallback = func(line int, message string) {
				log.Warningf("%s:%d: %s", path, line, message)
			}

			doc, err := csv.ParseWithOptions(data, opts)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			log.Infof("parsed %d rows from %s", doc.Len(), path)

			if unique {
				before := doc.Len()
				doc = doc.Unique()
				log.Infof("dropped %d duplicate rows", before-doc.Len())
			}

			encoder, err := format.New(outputFormat, cmd.OutOrStdout(), format.Options{
				Comma:  comma,
				Header: header,
				Keys:   keyConv,
			})
			if err != nil {
				return err
			}
			if err := encoder.Encode(doc); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", ",", `field delimiter: one character, "tab", or "auto"`)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "debug", "output format ("+strings.Join(format.Names(), ", ")+")")
	cmd.Flags().BoolVar(&header, "header", false, "treat the first row as a header (json objects)")
	cmd.Flags().BoolVar(&strictQuotes, "strict-quotes", false, "fail on a quoted field without a closing quote")
	cmd.Flags().BoolVar(&unique, "unique", false, "drop repeated rows")
	cmd.Flags().StringVar(&keys, "keys", "raw", "header key style for json objects (raw, lower, snake)")
	cmd.Flags().IntVar(&fieldsPerRecord, "fields", -1, "expected fields per row (0: same as first row, -1: no check)")

	return cmd
}

// resolveDelimiter turns the flag value into a rune, sniffing the data for "auto".
func resolveDelimiter(flag string, data string) (rune, error) {
	switch flag {
	case "auto":
		sample := data
		if len(sample) > sniffSample {
			sample = sample[:sniffSample]
		}
		return csv.NewSniffer(sample).DetectDelimiter(), nil
	case "tab", `\t`:
		return '\t', nil
	}

	if utf8.RuneCountInString(flag) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", flag)
	}
	r, _ := utf8.DecodeRuneInString(flag)
	return r, nil
}

func headerConverter(name string) (csv.HeaderConverter, error) {
	switch name {
	case "", "raw":
		return nil, nil
	case "lower":
		return csv.LowercaseHeader, nil
	case "snake":
		return csv.SnakeCaseHeader, nil
	default:
		return nil, fmt.Errorf("unknown key style %q", name)
	}
}
