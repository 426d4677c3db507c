package bstr

import "bytes"

// Finder searches for a fixed needle in many haystacks. Building a Finder
// precomputes a Horspool skip table so repeated searches for the same needle
// avoid per-call setup.
type Finder struct {
	needle []byte
	skip   [256]int
}

// NewFinder returns a Finder for needle. The needle is copied.
func NewFinder(needle []byte) *Finder {
	f := &Finder{needle: bytes.Clone(needle)}
	n := len(f.needle)
	for i := range f.skip {
		f.skip[i] = n
	}
	for i := 0; i < n-1; i++ {
		f.skip[f.needle[i]] = n - 1 - i
	}
	return f
}

// Needle returns the needle this Finder searches for.
func (f *Finder) Needle() []byte {
	return f.needle
}

// Find returns the index of the first occurrence of the needle in haystack,
// or -1. An empty needle matches at 0.
func (f *Finder) Find(haystack []byte) int {
	n := len(f.needle)
	switch {
	case n == 0:
		return 0
	case n == 1:
		return bytes.IndexByte(haystack, f.needle[0])
	case n > len(haystack):
		return -1
	}
	last := f.needle[n-1]
	head := f.needle[:n-1]
	for i := 0; i <= len(haystack)-n; {
		c := haystack[i+n-1]
		if c == last && bytes.Equal(haystack[i:i+n-1], head) {
			return i
		}
		i += f.skip[c]
	}
	return -1
}

// ReverseFinder is the mirror image of [Finder]: it reports the last
// occurrence of its needle, keyed on the first byte of each window.
type ReverseFinder struct {
	needle []byte
	skip   [256]int
}

// NewReverseFinder returns a ReverseFinder for needle. The needle is copied.
func NewReverseFinder(needle []byte) *ReverseFinder {
	f := &ReverseFinder{needle: bytes.Clone(needle)}
	n := len(f.needle)
	for i := range f.skip {
		f.skip[i] = n
	}
	for i := n - 1; i > 0; i-- {
		f.skip[f.needle[i]] = i
	}
	return f
}

// Needle returns the needle this ReverseFinder searches for.
func (f *ReverseFinder) Needle() []byte {
	return f.needle
}

// RFind returns the index of the last occurrence of the needle in haystack,
// or -1. An empty needle matches at len(haystack).
func (f *ReverseFinder) RFind(haystack []byte) int {
	n := len(f.needle)
	switch {
	case n == 0:
		return len(haystack)
	case n == 1:
		return bytes.LastIndexByte(haystack, f.needle[0])
	case n > len(haystack):
		return -1
	}
	firstByte := f.needle[0]
	tail := f.needle[1:]
	for i := len(haystack) - n; i >= 0; {
		c := haystack[i]
		if c == firstByte && bytes.Equal(haystack[i+1:i+n], tail) {
			return i
		}
		i -= f.skip[c]
	}
	return -1
}
