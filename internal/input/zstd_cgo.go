//go:build cgo && gozstd

package input

import (
	"io"

	"github.com/valyala/gozstd"
)

// gozstdReader releases the C decoder context on Close.
type gozstdReader struct {
	*gozstd.Reader
}

func (r gozstdReader) Close() error {
	r.Release()
	return nil
}

func newZstdReader(r io.Reader) (io.ReadCloser, error) {
	return gozstdReader{Reader: gozstd.NewReader(r)}, nil
}
