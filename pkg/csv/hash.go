package csv

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// RowHash returns a 64-bit hash of a row.
// Each field is length-prefixed, so ["ab", "c"] and ["a", "bc"] differ.
func RowHash(fields []string) uint64 {
	var prefix [binary.MaxVarintLen64]byte
	d := xxhash.New()
	for _, f := range fields {
		n := binary.PutUvarint(prefix[:], uint64(len(f)))
		_, _ = d.Write(prefix[:n])
		_, _ = d.WriteString(f)
	}
	return d.Sum64()
}
