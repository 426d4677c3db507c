package bstr

import (
	"bytes"
	"iter"
)

// LineIter yields the lines of a byte string from either end. Lines are
// terminated by \n; a final line without terminator is still yielded, but an
// empty string has no lines.
type LineIter struct {
	b     []byte
	strip bool
}

// Lines returns an iterator over the lines of b with their \n or \r\n
// terminators removed.
func Lines(b []byte) *LineIter {
	return &LineIter{b: b, strip: true}
}

// LinesWithTerminator returns an iterator over the lines of b including
// their terminators. Concatenating the lines reproduces b.
func LinesWithTerminator(b []byte) *LineIter {
	return &LineIter{b: b}
}

// Next returns the next line from the front.
func (it *LineIter) Next() ([]byte, bool) {
	if len(it.b) == 0 {
		return nil, false
	}
	var line []byte
	if i := bytes.IndexByte(it.b, '\n'); i >= 0 {
		line, it.b = it.b[:i+1], it.b[i+1:]
	} else {
		line, it.b = it.b, nil
	}
	return it.finish(line), true
}

// NextBack returns the next line from the back.
func (it *LineIter) NextBack() ([]byte, bool) {
	if len(it.b) == 0 {
		return nil, false
	}
	i := bytes.LastIndexByte(it.b[:len(it.b)-1], '\n')
	line := it.b[i+1:]
	it.b = it.b[:i+1]
	return it.finish(line), true
}

func (it *LineIter) finish(line []byte) []byte {
	if it.strip {
		return trimLineTerminator(line)
	}
	return line
}

// All returns the remaining lines from the front as a sequence.
func (it *LineIter) All() iter.Seq[[]byte] {
	return seqOf(it.Next)
}

// Backward returns the remaining lines from the back as a sequence.
func (it *LineIter) Backward() iter.Seq[[]byte] {
	return seqOf(it.NextBack)
}

// trimLineTerminator removes a trailing \n or \r\n.
func trimLineTerminator(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line
}
