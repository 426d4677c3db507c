package bstr

import "bytes"

// byteset is a 256-bit membership table.
type byteset [4]uint64

func newByteset(set []byte) *byteset {
	var s byteset
	for _, c := range set {
		s[c>>6] |= 1 << (c & 63)
	}
	return &s
}

func (s *byteset) contains(c byte) bool {
	return s[c>>6]&(1<<(c&63)) != 0
}

// FindByteset returns the index of the first byte of haystack that occurs
// in set, or -1.
func FindByteset(haystack, set []byte) int {
	switch len(set) {
	case 0:
		return -1
	case 1:
		return bytes.IndexByte(haystack, set[0])
	}
	s := newByteset(set)
	for i, c := range haystack {
		if s.contains(c) {
			return i
		}
	}
	return -1
}

// FindNotByteset returns the index of the first byte of haystack that does
// not occur in set, or -1.
func FindNotByteset(haystack, set []byte) int {
	s := newByteset(set)
	for i, c := range haystack {
		if !s.contains(c) {
			return i
		}
	}
	return -1
}

// RFindByteset returns the index of the last byte of haystack that occurs in
// set, or -1.
func RFindByteset(haystack, set []byte) int {
	switch len(set) {
	case 0:
		return -1
	case 1:
		return bytes.LastIndexByte(haystack, set[0])
	}
	s := newByteset(set)
	for i := len(haystack) - 1; i >= 0; i-- {
		if s.contains(haystack[i]) {
			return i
		}
	}
	return -1
}

// RFindNotByteset returns the index of the last byte of haystack that does
// not occur in set, or -1.
func RFindNotByteset(haystack, set []byte) int {
	s := newByteset(set)
	for i := len(haystack) - 1; i >= 0; i-- {
		if !s.contains(haystack[i]) {
			return i
		}
	}
	return -1
}
