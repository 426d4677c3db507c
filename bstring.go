package bstr

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// BString is an owned, growable byte string. Like [BStr] it carries no
// UTF-8 guarantee. A BString must not be used concurrently while it is being
// modified.
type BString struct {
	buf []byte
}

// NewBString returns a BString that takes ownership of b.
func NewBString(b []byte) *BString {
	return &BString{buf: b}
}

// BStringFrom returns a BString holding a copy of v.
func BStringFrom[T ~string | ~[]byte](v T) *BString {
	return &BString{buf: append([]byte(nil), v...)}
}

// Len returns the length of the string in bytes.
func (s *BString) Len() int {
	return len(s.buf)
}

// Bytes returns the contents. The slice is valid until the next mutation.
func (s *BString) Bytes() []byte {
	return s.buf
}

// BStr returns a view of the contents, valid until the next mutation.
func (s *BString) BStr() BStr {
	return BStr{b: s.buf}
}

// String returns the contents with invalid UTF-8 replaced by U+FFFD.
func (s *BString) String() string {
	return s.BStr().String()
}

// PushByte appends c.
func (s *BString) PushByte(c byte) {
	s.buf = append(s.buf, c)
}

// PushChar appends the UTF-8 encoding of r. Invalid runes are encoded as
// U+FFFD.
func (s *BString) PushChar(r rune) {
	s.buf = utf8.AppendRune(s.buf, r)
}

// PushStr appends b.
func (s *BString) PushStr(b []byte) {
	s.buf = append(s.buf, b...)
}

// PopByte removes and returns the last byte.
func (s *BString) PopByte() (byte, bool) {
	c, ok := LastByte(s.buf)
	if ok {
		s.buf = s.buf[:len(s.buf)-1]
	}
	return c, ok
}

// PopChar removes and returns the last character. Trailing invalid bytes
// are removed one maximal subpart at a time and reported as U+FFFD.
func (s *BString) PopChar() (rune, bool) {
	if len(s.buf) == 0 {
		return 0, false
	}
	r, size := DecodeLastLossy(s.buf)
	s.buf = s.buf[:len(s.buf)-size]
	return r, true
}

// RemoveChar removes the character starting at byte offset at and returns
// it. It panics if at is not less than Len.
func (s *BString) RemoveChar(at int) rune {
	if at < 0 || at >= len(s.buf) {
		panic(fmt.Sprintf("bstr: RemoveChar offset %d out of range for length %d", at, len(s.buf)))
	}
	r, size := DecodeLossy(s.buf[at:])
	s.buf = slices.Delete(s.buf, at, at+size)
	return r
}

// InsertChar inserts the UTF-8 encoding of r at byte offset at. It panics
// if at is greater than Len.
func (s *BString) InsertChar(at int, r rune) {
	var buf [utf8.UTFMax]byte
	s.InsertStr(at, utf8.AppendRune(buf[:0], r))
}

// InsertStr inserts b at byte offset at. It panics if at is greater than
// Len.
func (s *BString) InsertStr(at int, b []byte) {
	if at < 0 || at > len(s.buf) {
		panic(fmt.Sprintf("bstr: insert offset %d out of range for length %d", at, len(s.buf)))
	}
	s.buf = slices.Insert(s.buf, at, b...)
}

// ReplaceRange replaces the bytes in [start, end) with b.
func (s *BString) ReplaceRange(start, end int, b []byte) {
	s.checkRange(start, end)
	s.buf = slices.Replace(s.buf, start, end, b...)
}

// DrainBytes removes the bytes in [start, end) and returns them.
func (s *BString) DrainBytes(start, end int) []byte {
	s.checkRange(start, end)
	drained := slices.Clone(s.buf[start:end])
	s.buf = slices.Delete(s.buf, start, end)
	return drained
}

func (s *BString) checkRange(start, end int) {
	if start < 0 || start > end || end > len(s.buf) {
		panic(fmt.Sprintf("bstr: range [%d:%d] out of range for length %d", start, end, len(s.buf)))
	}
}

// Truncate shortens the string to n bytes. It does nothing if n is not less
// than Len.
func (s *BString) Truncate(n int) {
	if n < len(s.buf) {
		s.buf = s.buf[:n]
	}
}

// Reset empties the string, keeping its capacity.
func (s *BString) Reset() {
	s.buf = s.buf[:0]
}

// IntoString converts the contents to a string without copying if they are
// valid UTF-8, and leaves s empty. Otherwise s is left unchanged and the
// returned [*FromUtf8Error] holds the original bytes.
func (s *BString) IntoString() (string, error) {
	if err := Validate(s.buf); err != nil {
		return "", &FromUtf8Error{original: s.buf, err: err.(*Utf8Error)}
	}
	str := viewString(s.buf)
	s.buf = nil
	return str, nil
}

// IntoStringLossy is like [BString.IntoString] but replaces invalid UTF-8
// with U+FFFD instead of failing.
func (s *BString) IntoStringLossy() string {
	str, _ := ToStrLossy(s.buf)
	s.buf = nil
	return str
}
