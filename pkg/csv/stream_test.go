package csv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner_Rows tests streaming rows one at a time
func TestScanner_Rows(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      [][]string
		wantLines []int
	}{
		{
			name:      "simple rows",
			input:     "name,age\nAlice,30\nBob,25\n",
			want:      [][]string{{"name", "age"}, {"Alice", "30"}, {"Bob", "25"}},
			wantLines: []int{1, 2, 3},
		},
		{
			name:  "empty input",
			input: "",
		},
		{
			name:      "blank lines are skipped",
			input:     "a\n\nb",
			want:      [][]string{{"a"}, {"b"}},
			wantLines: []int{1, 3},
		},
		{
			name:      "quoted newline moves the line counter",
			input:     "\"x\ny\",z\nw",
			want:      [][]string{{"x\ny", "z"}, {"w"}},
			wantLines: []int{1, 3},
		},
		{
			name:      "empty fields",
			input:     "1,,3\n,,\n",
			want:      [][]string{{"1", "", "3"}, {"", "", ""}},
			wantLines: []int{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner := NewScanner(tt.input, DefaultReaderOptions())
			var got [][]string
			var lines []int
			for scanner.Scan() {
				got = append(got, scanner.Row())
				lines = append(lines, scanner.Line())
			}
			require.NoError(t, scanner.Err())
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantLines, lines)
		})
	}
}

// TestScanner_Error tests that errors stop the scan and stick
func TestScanner_Error(t *testing.T) {
	opts := DefaultReaderOptions()
	opts.StrictQuotes = true

	scanner := NewScanner("ok\n\"broken", opts)
	require.True(t, scanner.Scan(), "expected first row")
	require.False(t, scanner.Scan(), "expected scan to stop at unterminated quote")
	assert.ErrorIs(t, scanner.Err(), ErrUnterminatedQuote)
	assert.False(t, scanner.Scan(), "Scan after error")
	assert.Nil(t, scanner.Row())
}

// TestScanner_InvalidOptions tests that option errors surface through Err
func TestScanner_InvalidOptions(t *testing.T) {
	opts := DefaultReaderOptions()
	opts.Comma = '\n'

	scanner := NewScanner("a", opts)
	require.False(t, scanner.Scan(), "Scan should fail with invalid options")
	var oerr *OptionsError
	assert.ErrorAs(t, scanner.Err(), &oerr)
}
