package input

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "head1,head2,head3\nval1,val2,val3\n"

func gzipBytes(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zstdBytes(t *testing.T, s string) []byte {
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll([]byte(s), nil)
}

func lz4Bytes(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want Compression
	}{
		{"data.csv", None},
		{"data", None},
		{"data.csv.gz", Gzip},
		{"DATA.CSV.GZ", Gzip},
		{"data.csv.zst", Zstd},
		{"data.csv.zstd", Zstd},
		{"data.csv.lz4", LZ4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Detect(tt.path), tt.path)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	files := map[string][]byte{
		"plain.csv":    []byte(sample),
		"data.csv.gz":  gzipBytes(t, sample),
		"data.csv.zst": zstdBytes(t, sample),
		"data.csv.lz4": lz4Bytes(t, sample),
		"empty.csv":    {},
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, content, 0o600))

		got, err := ReadFile(path)
		require.NoError(t, err, name)
		if len(content) == 0 {
			assert.Empty(t, got, name)
		} else {
			assert.Equal(t, sample, got, name)
		}
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "nope.csv")
}

func TestReadFile_CorruptGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip at all"), 0o600))

	_, err := ReadFile(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestRead_UnsupportedCompression(t *testing.T) {
	_, err := Read(bytes.NewReader(nil), Compression(9))
	assert.EqualError(t, err, "unsupported compression Compression(9)")
}
