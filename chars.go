package bstr

import "iter"

// CharIter iterates over the scalar values of a byte string, yielding
// U+FFFD for each maximal invalid subpart. It can be consumed from both ends.
type CharIter struct {
	b      []byte
	offset int // position of b within the original input
}

// Chars returns an iterator over the characters of b.
func Chars(b []byte) *CharIter {
	return &CharIter{b: b}
}

// Next returns the next character from the front.
func (it *CharIter) Next() (rune, bool) {
	r, _, _, ok := it.next()
	return r, ok
}

// NextBack returns the next character from the back.
func (it *CharIter) NextBack() (rune, bool) {
	r, _, _, ok := it.nextBack()
	return r, ok
}

// Rest returns the bytes not yet consumed from either end.
func (it *CharIter) Rest() []byte {
	return it.b
}

func (it *CharIter) next() (r rune, start, end int, ok bool) {
	if len(it.b) == 0 {
		return 0, 0, 0, false
	}
	r, size := DecodeLossy(it.b)
	start = it.offset
	it.b = it.b[size:]
	it.offset += size
	return r, start, start + size, true
}

func (it *CharIter) nextBack() (r rune, start, end int, ok bool) {
	if len(it.b) == 0 {
		return 0, 0, 0, false
	}
	r, size := DecodeLastLossy(it.b)
	end = it.offset + len(it.b)
	it.b = it.b[:len(it.b)-size]
	return r, end - size, end, true
}

// All returns the remaining characters as a sequence.
func (it *CharIter) All() iter.Seq[rune] {
	return seqOf(it.Next)
}

// CharIndex is a character together with the byte range it was decoded
// from. For U+FFFD produced from invalid bytes, End-Start is the length of
// the invalid subpart.
type CharIndex struct {
	Start, End int
	Char       rune
}

// CharIndexIter is like [CharIter] but also reports byte offsets.
type CharIndexIter struct {
	chars CharIter
}

// CharIndices returns an iterator over the characters of b and their
// positions.
func CharIndices(b []byte) *CharIndexIter {
	return &CharIndexIter{chars: CharIter{b: b}}
}

// Next returns the next character from the front.
func (it *CharIndexIter) Next() (CharIndex, bool) {
	r, start, end, ok := it.chars.next()
	return CharIndex{Start: start, End: end, Char: r}, ok
}

// NextBack returns the next character from the back.
func (it *CharIndexIter) NextBack() (CharIndex, bool) {
	r, start, end, ok := it.chars.nextBack()
	return CharIndex{Start: start, End: end, Char: r}, ok
}

// All returns the remaining characters as a sequence.
func (it *CharIndexIter) All() iter.Seq[CharIndex] {
	return seqOf(it.Next)
}
