package csv

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shapestone/csvline/internal/parser"
	"github.com/shapestone/csvline/internal/tokenizer"
)

// sniffLines caps how many rows of the sample are examined.
const sniffLines = 20

// candidateDelimiters are tried in order; ties go to the earlier one.
var candidateDelimiters = []rune{',', '\t', ';', '|'}

var (
	headerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`),      // snake_case or identifier
		regexp.MustCompile(`^[a-zA-Z]+[A-Z][a-zA-Z]*$`),     // camelCase
		regexp.MustCompile(`^[A-Z][a-z]+([ ][A-Z][a-z]+)*$`), // Title Case
	}
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
		regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`),
	}
)

// Sniffer guesses the delimiter of a sample and whether its first row is a header.
type Sniffer struct {
	sample    string
	delimiter rune
	hasHeader bool
	analyzed  bool
}

// NewSniffer creates a new Sniffer with a sample of CSV data.
// For best results, provide at least 2-3 lines of data.
func NewSniffer(sample string) *Sniffer {
	return &Sniffer{
		sample: sample,
	}
}

// analyze performs dialect detection on the sample.
func (s *Sniffer) analyze() {
	if s.analyzed {
		return
	}
	s.delimiter = s.detectDelimiter()
	s.hasHeader = s.detectHeader()
	s.analyzed = true
}

// DetectDelimiter returns the detected field delimiter.
// Common delimiters checked: comma, tab, semicolon, pipe.
func (s *Sniffer) DetectDelimiter() rune {
	s.analyze()
	return s.delimiter
}

// HasHeader returns true if the first row appears to be a header.
func (s *Sniffer) HasHeader() bool {
	s.analyze()
	return s.hasHeader
}

// detectDelimiter scores each candidate by its delimiter count on the first
// row, with a bonus when every sampled row has the same count.
func (s *Sniffer) detectDelimiter() rune {
	best, bestScore := ',', 0
	for _, delim := range candidateDelimiters {
		counts := delimiterCounts(s.sample, delim)
		if len(counts) == 0 || counts[0] == 0 {
			continue
		}

		score := counts[0]
		consistent := true
		for _, c := range counts[1:] {
			if c != counts[0] {
				consistent = false
				break
			}
		}
		if consistent {
			score *= 10
		}

		if score > bestScore {
			best, bestScore = delim, score
		}
	}
	return best
}

// delimiterCounts tokenizes the sample and returns the number of delimiter
// tokens on each non-blank row. Quoted delimiters are not counted.
func delimiterCounts(sample string, delim rune) []int {
	tok := tokenizer.New(sample, delim)
	counts := make([]int, 0, sniffLines)
	current, fields := 0, 0

	flush := func() {
		if current > 0 || fields > 0 {
			counts = append(counts, current)
		}
		current, fields = 0, 0
	}

	for len(counts) < sniffLines {
		token, ok := tok.Next()
		if !ok {
			flush()
			break
		}
		switch token.Kind {
		case tokenizer.KindDelimiter:
			current++
		case tokenizer.KindField:
			fields++
		case tokenizer.KindNewline:
			flush()
		}
	}
	return counts
}

// detectHeader compares the first row against the rows below it.
func (s *Sniffer) detectHeader() bool {
	p := parser.NewFromString(s.sample, tokenizer.Options{Delimiter: s.delimiter}, parser.DefaultOptions())

	var rows []parser.Row
	for len(rows) < 2 {
		row, err := p.NextRow()
		if err != nil {
			return false
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
		if p.Done() {
			break
		}
	}
	if len(rows) < 2 {
		return false // Need at least 2 lines to compare
	}

	headerScore, dataScore := 0, 0
	for _, field := range rows[0] {
		field = strings.TrimSpace(field)
		if isLikelyHeader(field) {
			headerScore++
		}
		if isLikelyData(field) {
			dataScore++
		}
	}

	return headerScore > dataScore
}

// isLikelyHeader checks if a field looks like a header name.
func isLikelyHeader(s string) bool {
	if s == "" || isNumeric(s) {
		return false
	}
	for _, pattern := range headerPatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// isLikelyData checks if a field looks like data rather than a header.
func isLikelyData(s string) bool {
	if s == "" {
		return false
	}
	if isNumeric(s) || strings.Contains(s, "@") {
		return true
	}
	for _, pattern := range datePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// isNumeric checks if a string represents a number.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	// Allow leading minus for negative numbers
	if s[0] == '-' {
		s = s[1:]
	}

	hasDot := false
	for _, ch := range s {
		if ch == '.' {
			if hasDot {
				return false
			}
			hasDot = true
		} else if !unicode.IsDigit(ch) {
			return false
		}
	}

	return len(s) > 0
}

// HeaderConverter is a function that transforms header names.
type HeaderConverter func(string) string

// LowercaseHeader converts headers to lowercase.
func LowercaseHeader(s string) string {
	return strings.ToLower(s)
}

// SnakeCaseHeader converts headers to snake_case.
func SnakeCaseHeader(s string) string {
	var result strings.Builder
	prevWasSpace := false
	for i, ch := range s {
		if ch == ' ' {
			if result.Len() > 0 && !prevWasSpace {
				result.WriteRune('_')
			}
			prevWasSpace = true
			continue
		}
		if unicode.IsUpper(ch) && i > 0 && !prevWasSpace {
			result.WriteRune('_')
		}
		result.WriteRune(unicode.ToLower(ch))
		prevWasSpace = false
	}
	return result.String()
}
