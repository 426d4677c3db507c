// Package input opens line-oriented input that may be compressed. The
// container is detected from its magic number, so callers read gzip, zstd
// and lz4 files the same way as plain text.
package input

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
)

// Format identifies the container of an input stream.
type Format int

const (
	Plain Format = iota
	Gzip
	Zstd
	LZ4
)

func (f Format) String() string {
	switch f {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	}
	return "plain"
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Detect returns the format whose magic number header starts with.
func Detect(header []byte) Format {
	switch {
	case bytes.HasPrefix(header, gzipMagic):
		return Gzip
	case bytes.HasPrefix(header, zstdMagic):
		return Zstd
	case bytes.HasPrefix(header, lz4Magic):
		return LZ4
	}
	return Plain
}

// NewReader returns a reader of the decompressed contents of r and the
// detected format. Closing the returned reader releases decoder resources
// but does not close r.
func NewReader(r io.Reader) (io.ReadCloser, Format, error) {
	br := bufio.NewReader(r)
	header, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		return nil, Plain, fmt.Errorf("read header: %w", err)
	}

	format := Detect(header)
	switch format {
	case Gzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, format, fmt.Errorf("open gzip stream: %w", err)
		}
		return zr, format, nil
	case Zstd:
		zr, err := newZstdReader(br)
		if err != nil {
			return nil, format, fmt.Errorf("open zstd stream: %w", err)
		}
		return zr, format, nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(br)), format, nil
	}
	return io.NopCloser(br), format, nil
}

// Open opens the named file for reading through [NewReader].
func Open(name string) (io.ReadCloser, Format, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Plain, err
	}
	rc, format, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, format, fmt.Errorf("%s: %w", name, err)
	}
	return &fileReader{ReadCloser: rc, file: f}, format, nil
}

// fileReader closes both the decoder and the file under it.
type fileReader struct {
	io.ReadCloser
	file *os.File
}

func (r *fileReader) Close() error {
	err := r.ReadCloser.Close()
	if cerr := r.file.Close(); err == nil {
		err = cerr
	}
	return err
}
