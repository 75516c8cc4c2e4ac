package csv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelimiterCounts(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   []int
	}{
		{"ragged rows", "a,b\n1,2,3\n", []int{1, 2}},
		{"quoted delimiter", "\"x,y\",z", []int{1}},
		{"trailing delimiter", "a,\n", []int{1}},
		{"CRLF and blank line", "a,b\r\n\r\nc,d", []int{1, 1}},
		{"blank lines only", "\n\n", []int{}},
		{"unterminated quote swallows the rest", "a,\"open,more\nx,y", []int{1}},
		{"capped", strings.Repeat("a,b\n", sniffLines+10), []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, delimiterCounts(tt.sample, ','))
		})
	}
}
