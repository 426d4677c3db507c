package bstr

import "iter"

// Segment is a piece of a byte string together with its byte range. For
// invalid UTF-8, Text is "�" and End-Start is the length of the invalid
// bytes it replaces.
type Segment struct {
	Start, End int
	Text       string
}

// segmenter decodes one segment from the front or the back of a slice.
type segmenter struct {
	first func([]byte) (string, int)
	last  func([]byte) (string, int)
	keep  func(string) bool // nil keeps every segment
}

var (
	graphemeSegmenter  = segmenter{first: DecodeGrapheme, last: DecodeLastGrapheme}
	wordSegmenter      = segmenter{first: DecodeWord, last: DecodeLastWord, keep: hasWordCharacter}
	wordBreakSegmenter = segmenter{first: DecodeWord, last: DecodeLastWord}
	sentenceSegmenter  = segmenter{first: DecodeSentence, last: DecodeLastSentence}
)

// SegmentIter yields the segments of a byte string from either end.
type SegmentIter struct {
	b      []byte
	offset int
	seg    segmenter
}

func (it *SegmentIter) next() (Segment, bool) {
	for len(it.b) > 0 {
		text, n := it.seg.first(it.b)
		s := Segment{Start: it.offset, End: it.offset + n, Text: text}
		it.b = it.b[n:]
		it.offset += n
		if it.seg.keep == nil || it.seg.keep(text) {
			return s, true
		}
	}
	return Segment{}, false
}

func (it *SegmentIter) nextBack() (Segment, bool) {
	for len(it.b) > 0 {
		text, n := it.seg.last(it.b)
		end := it.offset + len(it.b)
		s := Segment{Start: end - n, End: end, Text: text}
		it.b = it.b[:len(it.b)-n]
		if it.seg.keep == nil || it.seg.keep(text) {
			return s, true
		}
	}
	return Segment{}, false
}

// Next returns the next segment from the front.
func (it *SegmentIter) Next() (string, bool) {
	s, ok := it.next()
	return s.Text, ok
}

// NextBack returns the next segment from the back.
func (it *SegmentIter) NextBack() (string, bool) {
	s, ok := it.nextBack()
	return s.Text, ok
}

// All returns the remaining segments from the front as a sequence.
func (it *SegmentIter) All() iter.Seq[string] {
	return seqOf(it.Next)
}

// Backward returns the remaining segments from the back as a sequence.
func (it *SegmentIter) Backward() iter.Seq[string] {
	return seqOf(it.NextBack)
}

// SegmentIndexIter is like [SegmentIter] but also reports byte offsets.
type SegmentIndexIter struct {
	it SegmentIter
}

// Next returns the next segment from the front.
func (it *SegmentIndexIter) Next() (Segment, bool) {
	return it.it.next()
}

// NextBack returns the next segment from the back.
func (it *SegmentIndexIter) NextBack() (Segment, bool) {
	return it.it.nextBack()
}

// All returns the remaining segments from the front as a sequence.
func (it *SegmentIndexIter) All() iter.Seq[Segment] {
	return seqOf(it.Next)
}

// Backward returns the remaining segments from the back as a sequence.
func (it *SegmentIndexIter) Backward() iter.Seq[Segment] {
	return seqOf(it.NextBack)
}

// Graphemes returns an iterator over the grapheme clusters of b.
func Graphemes(b []byte) *SegmentIter {
	return &SegmentIter{b: b, seg: graphemeSegmenter}
}

// GraphemeIndices returns an iterator over the grapheme clusters of b and
// their positions.
func GraphemeIndices(b []byte) *SegmentIndexIter {
	return &SegmentIndexIter{it: *Graphemes(b)}
}

// Words returns an iterator over the words of b: the word segments that
// contain at least one word character (a letter, mark, digit, connector
// punctuation or join control). White space and punctuation are skipped.
func Words(b []byte) *SegmentIter {
	return &SegmentIter{b: b, seg: wordSegmenter}
}

// WordIndices is like [Words] but also reports positions.
func WordIndices(b []byte) *SegmentIndexIter {
	return &SegmentIndexIter{it: *Words(b)}
}

// WordsWithBreaks returns an iterator over all word segments of b,
// including white space and punctuation. Concatenating them reproduces b,
// with U+FFFD in place of invalid bytes.
func WordsWithBreaks(b []byte) *SegmentIter {
	return &SegmentIter{b: b, seg: wordBreakSegmenter}
}

// WordsWithBreakIndices is like [WordsWithBreaks] but also reports
// positions.
func WordsWithBreakIndices(b []byte) *SegmentIndexIter {
	return &SegmentIndexIter{it: *WordsWithBreaks(b)}
}

// Sentences returns an iterator over the sentences of b.
func Sentences(b []byte) *SegmentIter {
	return &SegmentIter{b: b, seg: sentenceSegmenter}
}

// SentenceIndices is like [Sentences] but also reports positions.
func SentenceIndices(b []byte) *SegmentIndexIter {
	return &SegmentIndexIter{it: *Sentences(b)}
}

func hasWordCharacter(s string) bool {
	for _, r := range s {
		if isWordCharacter(r) {
			return true
		}
	}
	return false
}
