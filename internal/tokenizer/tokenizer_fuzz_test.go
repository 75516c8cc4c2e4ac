//go:build go1.18
// +build go1.18

package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// FuzzTokenizer tests the tokenizer with random inputs to find edge cases and panics.
// Run with: go test -fuzz=FuzzTokenizer -fuzztime=30s ./internal/tokenizer
func FuzzTokenizer(f *testing.F) {
	// Add seed corpus
	seeds := []string{
		"",
		"a",
		",",
		"\n",
		"\r\n",
		"\"",
		"\"\"",
		"a,b,c",
		"\"quoted\"",
		"\"with,comma\"",
		"\"with\"\"quote\"",
		"a\nb\nc",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		tok := New(input, ',')
		last := -1
		for {
			token, ok := tok.Next()
			if !ok {
				break
			}
			require.Greater(t, token.Offset, last, "offsets must increase")
			last = token.Offset
			if token.Kind == KindField {
				require.Contains(t, input, token.Value, "field must be a span of the input")
			}
		}
		require.Equal(t, StateExhausted, tok.State())
	})
}
