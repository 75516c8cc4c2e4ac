// Package input loads a whole file into memory for parsing.
// Compressed files are recognized by extension and decompressed on the way in.
package input

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrNotFound indicates the input path does not exist.
var ErrNotFound = errors.New("input not found")

// Compression identifies how a file is encoded on disk.
type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
	LZ4
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Compression(%d)", int(c))
	}
}

// Detect picks the compression from the file extension.
func Detect(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return None
	}
}

// ReadFile reads path fully and returns its decompressed contents.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := Read(f, Detect(path))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Read reads r fully, decoding it according to c.
func Read(r io.Reader, c Compression) (string, error) {
	switch c {
	case None:
		return readAll(r)
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return "", fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		return readAll(zr)
	case Zstd:
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return "", fmt.Errorf("zstd: %w", err)
		}
		defer zr.Close()
		return readAll(zr)
	case LZ4:
		return readAll(lz4.NewReader(r))
	default:
		return "", fmt.Errorf("unsupported compression %s", c)
	}
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
