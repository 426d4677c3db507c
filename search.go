package bstr

import (
	"bytes"
	"iter"
	"unicode/utf8"
)

// Haystacks shorter than this are searched without building a skip table.
const finderCutover = 64

// Find returns the index of the first occurrence of needle in haystack, or
// -1 if there is none. An empty needle matches at 0.
func Find(haystack, needle []byte) int {
	if len(needle) <= 1 || len(haystack) < finderCutover {
		return bytes.Index(haystack, needle)
	}
	return NewFinder(needle).Find(haystack)
}

// RFind returns the index of the last occurrence of needle in haystack, or
// -1 if there is none. An empty needle matches at len(haystack).
func RFind(haystack, needle []byte) int {
	if len(needle) <= 1 || len(haystack) < finderCutover {
		return bytes.LastIndex(haystack, needle)
	}
	return NewReverseFinder(needle).RFind(haystack)
}

// Contains reports whether needle occurs in haystack.
func Contains(haystack, needle []byte) bool {
	return Find(haystack, needle) >= 0
}

// FindByte returns the index of the first c in haystack, or -1.
func FindByte(haystack []byte, c byte) int {
	return bytes.IndexByte(haystack, c)
}

// RFindByte returns the index of the last c in haystack, or -1.
func RFindByte(haystack []byte, c byte) int {
	return bytes.LastIndexByte(haystack, c)
}

// FindChar returns the index of the first UTF-8 encoding of r in haystack,
// or -1. Searching for U+FFFD only matches its encoding, never invalid
// bytes.
func FindChar(haystack []byte, r rune) int {
	var buf [utf8.UTFMax]byte
	return Find(haystack, utf8.AppendRune(buf[:0], r))
}

// RFindChar returns the index of the last UTF-8 encoding of r in haystack,
// or -1.
func RFindChar(haystack []byte, r rune) int {
	var buf [utf8.UTFMax]byte
	return RFind(haystack, utf8.AppendRune(buf[:0], r))
}

// FindIter yields the starting offsets of non-overlapping occurrences of a
// needle, from the front.
type FindIter struct {
	haystack []byte
	finder   *Finder
	pos      int
	done     bool
}

// FindAll returns an iterator over the non-overlapping occurrences of needle
// in haystack. An empty needle matches at every offset from 0 to
// len(haystack) inclusive.
func FindAll(haystack, needle []byte) *FindIter {
	return &FindIter{haystack: haystack, finder: NewFinder(needle)}
}

// Next returns the offset of the next match.
func (it *FindIter) Next() (int, bool) {
	if it.done || it.pos > len(it.haystack) {
		return -1, false
	}
	i := it.finder.Find(it.haystack[it.pos:])
	if i < 0 {
		it.done = true
		return -1, false
	}
	at := it.pos + i
	it.pos = at + max(len(it.finder.needle), 1)
	return at, true
}

// All returns the remaining offsets as a sequence.
func (it *FindIter) All() iter.Seq[int] {
	return seqOf(it.Next)
}

// RFindIter yields the starting offsets of non-overlapping occurrences of a
// needle, from the back.
type RFindIter struct {
	haystack []byte
	finder   *ReverseFinder
	end      int
}

// RFindAll is like [FindAll] but reports matches from last to first. An
// empty needle matches at every offset from len(haystack) down to 0.
func RFindAll(haystack, needle []byte) *RFindIter {
	return &RFindIter{haystack: haystack, finder: NewReverseFinder(needle), end: len(haystack)}
}

// Next returns the offset of the next match, moving towards the front.
func (it *RFindIter) Next() (int, bool) {
	if it.end < 0 {
		return -1, false
	}
	i := it.finder.RFind(it.haystack[:it.end])
	if i < 0 {
		it.end = -1
		return -1, false
	}
	if len(it.finder.needle) == 0 {
		it.end = i - 1
	} else {
		it.end = i
	}
	return i, true
}

// All returns the remaining offsets as a sequence.
func (it *RFindIter) All() iter.Seq[int] {
	return seqOf(it.Next)
}

// Replace returns a copy of haystack with every non-overlapping occurrence
// of needle replaced by replacement. An empty needle inserts replacement at
// every offset.
func Replace(haystack, needle, replacement []byte) []byte {
	return ReplaceInto(nil, haystack, needle, replacement, -1)
}

// Replacen is like [Replace] but replaces at most limit occurrences. A
// negative limit means no limit.
func Replacen(haystack, needle, replacement []byte, limit int) []byte {
	return ReplaceInto(nil, haystack, needle, replacement, limit)
}

// ReplaceInto appends the result of [Replacen] to dst and returns the
// extended buffer.
func ReplaceInto(dst, haystack, needle, replacement []byte, limit int) []byte {
	last := 0
	it := FindAll(haystack, needle)
	for n := 0; limit < 0 || n < limit; n++ {
		i, ok := it.Next()
		if !ok {
			break
		}
		dst = append(dst, haystack[last:i]...)
		dst = append(dst, replacement...)
		last = i + len(needle)
	}
	return append(dst, haystack[last:]...)
}

// seqOf adapts a Next method to a single-use sequence.
func seqOf[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
