package bstr

import (
	"bytes"
	"fmt"
)

// BStr is a read-only view of a byte string. It carries no UTF-8 guarantee:
// text operations decode it on the fly and treat invalid bytes as U+FFFD.
type BStr struct {
	b []byte
}

// NewBStr returns a view of b. No copy is made.
func NewBStr(b []byte) BStr {
	return BStr{b: b}
}

// BStrFrom returns a view of v. Strings are copied into a new byte slice,
// byte slices are used as is.
func BStrFrom[T ~string | ~[]byte](v T) BStr {
	return BStr{b: []byte(v)}
}

// Bytes returns the underlying bytes. The returned slice shares its backing
// array with the view and must not be modified.
func (s BStr) Bytes() []byte {
	return s.b
}

// Len returns the length of the view in bytes.
func (s BStr) Len() int {
	return len(s.b)
}

// String returns the contents with each maximal invalid subpart replaced by
// U+FFFD.
func (s BStr) String() string {
	str, borrowed := ToStrLossy(s.b)
	if borrowed {
		// Do not hand out a view a later writer could change.
		return string(s.b)
	}
	return str
}

// Format implements [fmt.Formatter]. %s and %v print the lossy text, %q
// prints the debug rendering produced by [Quote] and %x prints hex.
func (s BStr) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprint(f, Quote(s.b))
	case 'x', 'X':
		fmt.Fprintf(f, fmt.FormatString(f, verb), s.b)
	default:
		fmt.Fprint(f, s.String())
	}
}

// ToStr returns the contents as a string if they are valid UTF-8.
func (s BStr) ToStr() (string, error) {
	return ToStr(s.b)
}

// ToStrLossy is like [ToStrLossy].
func (s BStr) ToStrLossy() (string, bool) {
	return ToStrLossy(s.b)
}

// IsUTF8 reports whether the view is valid UTF-8.
func (s BStr) IsUTF8() bool {
	return IsUTF8(s.b)
}

// Find returns the index of the first occurrence of needle, or -1.
func (s BStr) Find(needle []byte) int {
	return Find(s.b, needle)
}

// RFind returns the index of the last occurrence of needle, or -1.
func (s BStr) RFind(needle []byte) int {
	return RFind(s.b, needle)
}

// Contains reports whether needle occurs in the view.
func (s BStr) Contains(needle []byte) bool {
	return Contains(s.b, needle)
}

// HasPrefix reports whether the view begins with prefix.
func (s BStr) HasPrefix(prefix []byte) bool {
	return HasPrefix(s.b, prefix)
}

// HasSuffix reports whether the view ends with suffix.
func (s BStr) HasSuffix(suffix []byte) bool {
	return HasSuffix(s.b, suffix)
}

// Trim returns the view without leading and trailing white space.
func (s BStr) Trim() BStr {
	return BStr{b: Trim(s.b)}
}

// Lines returns an iterator over the lines of the view.
func (s BStr) Lines() *LineIter {
	return Lines(s.b)
}

// Chars returns an iterator over the characters of the view.
func (s BStr) Chars() *CharIter {
	return Chars(s.b)
}

// Graphemes returns an iterator over the grapheme clusters of the view.
func (s BStr) Graphemes() *SegmentIter {
	return Graphemes(s.b)
}

// Words returns an iterator over the words of the view.
func (s BStr) Words() *SegmentIter {
	return Words(s.b)
}

// Sentences returns an iterator over the sentences of the view.
func (s BStr) Sentences() *SegmentIter {
	return Sentences(s.b)
}

// ToLower returns a lowercased copy of the view.
func (s BStr) ToLower() []byte {
	return ToLower(s.b)
}

// ToUpper returns an uppercased copy of the view.
func (s BStr) ToUpper() []byte {
	return ToUpper(s.b)
}

// HasPrefix reports whether b begins with prefix.
func HasPrefix(b, prefix []byte) bool {
	return bytes.HasPrefix(b, prefix)
}

// HasSuffix reports whether b ends with suffix.
func HasSuffix(b, suffix []byte) bool {
	return bytes.HasSuffix(b, suffix)
}

// LastByte returns the last byte of b. ok is false if b is empty.
func LastByte(b []byte) (c byte, ok bool) {
	if len(b) == 0 {
		return 0, false
	}
	return b[len(b)-1], true
}
