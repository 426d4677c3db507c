package bstr

import (
	"iter"
	"unicode"
)

// SplitIter yields the pieces of a haystack between occurrences of a
// separator, from the front.
type SplitIter struct {
	haystack []byte
	finder   *Finder
	pos      int
	limit    int // remaining pieces, negative for unlimited
	done     bool
}

// Split returns an iterator over the pieces of haystack separated by sep.
// Adjacent separators produce empty pieces and an empty haystack yields a
// single empty piece. Split panics with [ErrEmptySeparator] if sep is empty.
func Split(haystack, sep []byte) *SplitIter {
	return SplitN(haystack, sep, -1)
}

// SplitN is like [Split] but yields at most limit pieces; the last piece
// holds the unsplit remainder. A negative limit means no limit.
func SplitN(haystack, sep []byte, limit int) *SplitIter {
	if len(sep) == 0 {
		panic(ErrEmptySeparator)
	}
	return &SplitIter{haystack: haystack, finder: NewFinder(sep), limit: limit, done: limit == 0}
}

// Next returns the next piece.
func (it *SplitIter) Next() ([]byte, bool) {
	if it.done {
		return nil, false
	}
	rest := it.haystack[it.pos:]
	if it.limit == 1 {
		it.done = true
		return rest, true
	}
	i := it.finder.Find(rest)
	if i < 0 {
		it.done = true
		return rest, true
	}
	it.pos += i + len(it.finder.needle)
	if it.limit > 0 {
		it.limit--
	}
	return rest[:i], true
}

// All returns the remaining pieces as a sequence.
func (it *SplitIter) All() iter.Seq[[]byte] {
	return seqOf(it.Next)
}

// RSplitIter yields the pieces of a haystack between occurrences of a
// separator, from the back.
type RSplitIter struct {
	haystack []byte
	finder   *ReverseFinder
	end      int
	limit    int
	done     bool
}

// RSplit is like [Split] but yields pieces from last to first.
func RSplit(haystack, sep []byte) *RSplitIter {
	return RSplitN(haystack, sep, -1)
}

// RSplitN is like [RSplit] but yields at most limit pieces; the last piece
// yielded holds the unsplit front of the haystack.
func RSplitN(haystack, sep []byte, limit int) *RSplitIter {
	if len(sep) == 0 {
		panic(ErrEmptySeparator)
	}
	return &RSplitIter{haystack: haystack, finder: NewReverseFinder(sep), end: len(haystack), limit: limit, done: limit == 0}
}

// Next returns the next piece, moving towards the front.
func (it *RSplitIter) Next() ([]byte, bool) {
	if it.done {
		return nil, false
	}
	rest := it.haystack[:it.end]
	if it.limit == 1 {
		it.done = true
		return rest, true
	}
	i := it.finder.RFind(rest)
	if i < 0 {
		it.done = true
		return rest, true
	}
	it.end = i
	if it.limit > 0 {
		it.limit--
	}
	return rest[i+len(it.finder.needle):], true
}

// All returns the remaining pieces as a sequence.
func (it *RSplitIter) All() iter.Seq[[]byte] {
	return seqOf(it.Next)
}

// SplitOnce splits haystack around the first occurrence of sep. ok is false
// if sep does not occur. It panics with [ErrEmptySeparator] if sep is empty.
func SplitOnce(haystack, sep []byte) (before, after []byte, ok bool) {
	if len(sep) == 0 {
		panic(ErrEmptySeparator)
	}
	i := Find(haystack, sep)
	if i < 0 {
		return nil, nil, false
	}
	return haystack[:i], haystack[i+len(sep):], true
}

// RSplitOnce splits haystack around the last occurrence of sep.
func RSplitOnce(haystack, sep []byte) (before, after []byte, ok bool) {
	if len(sep) == 0 {
		panic(ErrEmptySeparator)
	}
	i := RFind(haystack, sep)
	if i < 0 {
		return nil, nil, false
	}
	return haystack[:i], haystack[i+len(sep):], true
}

// FieldsIter yields runs of characters not matching a predicate.
type FieldsIter struct {
	b     []byte
	isSep func(rune) bool
}

// Fields returns an iterator over the maximal runs of b that contain no
// Unicode White_Space. Invalid bytes are never white space.
func Fields(b []byte) *FieldsIter {
	return FieldsFunc(b, isWhiteSpace)
}

// FieldsFunc returns an iterator over the maximal runs of b whose
// characters do not satisfy isSep. Invalid UTF-8 is passed to isSep as
// U+FFFD, one call per maximal invalid subpart.
func FieldsFunc(b []byte, isSep func(rune) bool) *FieldsIter {
	return &FieldsIter{b: b, isSep: isSep}
}

// Next returns the next field.
func (it *FieldsIter) Next() ([]byte, bool) {
	for len(it.b) > 0 {
		r, size := DecodeLossy(it.b)
		if !it.isSep(r) {
			break
		}
		it.b = it.b[size:]
	}
	if len(it.b) == 0 {
		return nil, false
	}
	end := 0
	for end < len(it.b) {
		r, size := DecodeLossy(it.b[end:])
		if it.isSep(r) {
			break
		}
		end += size
	}
	field := it.b[:end]
	it.b = it.b[end:]
	return field, true
}

// All returns the remaining fields as a sequence.
func (it *FieldsIter) All() iter.Seq[[]byte] {
	return seqOf(it.Next)
}

func isWhiteSpace(r rune) bool {
	if r < 0x80 {
		return r == ' ' || '\t' <= r && r <= '\r'
	}
	return unicode.Is(unicode.White_Space, r)
}

// ChunkIter yields consecutive runs of a fixed number of characters.
type ChunkIter struct {
	b []byte
	n int
}

// ChunkChars returns an iterator over b in pieces of n characters; the last
// piece may be shorter. A maximal invalid subpart counts as one character.
// It panics if n is not positive.
func ChunkChars(b []byte, n int) *ChunkIter {
	if n <= 0 {
		panic("bstr: chunk size must be positive")
	}
	return &ChunkIter{b: b, n: n}
}

// Next returns the next chunk.
func (it *ChunkIter) Next() ([]byte, bool) {
	if len(it.b) == 0 {
		return nil, false
	}
	end := 0
	for range it.n {
		if end == len(it.b) {
			break
		}
		_, size := DecodeLossy(it.b[end:])
		end += size
	}
	chunk := it.b[:end]
	it.b = it.b[end:]
	return chunk, true
}

// All returns the remaining chunks as a sequence.
func (it *ChunkIter) All() iter.Seq[[]byte] {
	return seqOf(it.Next)
}
