package bstr

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Bit masks for extracting boundary information from [Step] return values.
//
// The boundaries return value is a bit-packed integer containing:
//   - Line break (bits 0-1): LineDontBreak, LineCanBreak, or LineMustBreak
//   - Word boundary (bit 2): 1 if word boundary, 0 otherwise
//   - Sentence boundary (bit 3): 1 if sentence boundary, 0 otherwise
//   - Character width (bits 4+): monospace display width
const (
	MaskLine     = 3 // bits 0-1: line break type
	MaskWord     = 4 // bit 2: word boundary flag
	MaskSentence = 8 // bit 3: sentence boundary flag
)

// ShiftWidth is the number of bits to right-shift boundaries to get character width.
const ShiftWidth = 4

// Internal bit positions for boundary flags in the boundaries return value.
const (
	shiftWord     = 2
	shiftSentence = 3
)

// State carries word and sentence context from one [Step] call to the
// next. The zero value is the state at the start of a text.
type State struct {
	started  bool
	word     wordState
	sentence sentenceState
}

func (s *State) reset() {
	s.started = true
	s.word = newWordState()
	s.sentence = newSentenceState()
}

// Step returns the first grapheme cluster found in b. It also returns
// information about the boundary between that cluster and the one following
// it, as well as the monospace width of the cluster. There are three kinds of
// boundary information: word boundaries, sentence boundaries and a simple
// line break classification.
//
// The "boundaries" return value can be evaluated as follows:
//
//   - boundaries&MaskWord != 0: The boundary is a word boundary.
//   - boundaries&MaskSentence != 0: The boundary is a sentence boundary.
//   - boundaries&MaskLine: one of LineDontBreak, LineCanBreak or
//     LineMustBreak.
//   - boundaries >> ShiftWidth: The width of the grapheme cluster for most
//     monospace fonts where a value of 1 represents one character cell.
//
// Pass the zero State for the first call and the returned state for each
// consecutive call, together with the returned "rest" slice. The final
// cluster of a text always reports word and sentence boundaries and a
// mandatory line break.
//
// Invalid UTF-8 forms clusters of its own (one per maximal invalid
// subpart) with width 1, and word and sentence parsing restart after it.
// Given an empty b, Step returns zero values.
func Step(b []byte, state State) (cluster, rest []byte, boundaries int, newState State) {
	if len(b) == 0 {
		return
	}
	if !state.started {
		state.reset()
	}

	_, n := DecodeGrapheme(b)
	cluster, rest = b[:n], b[n:]

	invalid := false
	if _, _, status := decodeStep(cluster); status != decodeOK {
		invalid = true
		boundaries = 1 << ShiftWidth
		state.reset()
	} else {
		for i := 0; i < len(cluster); {
			r, size := utf8.DecodeRune(cluster[i:])
			state.word.advance(propertyWords(r))
			state.sentence.advance(propertySentences(r))
			i += size
		}
		boundaries = clusterWidth(viewString(cluster)) << ShiftWidth
	}

	if len(rest) == 0 {
		boundaries |= LineMustBreak | 1<<shiftWord | 1<<shiftSentence
		return cluster, rest, boundaries, State{}
	}

	r, size, status := decodeStep(rest)
	if invalid || status != decodeOK {
		boundaries |= 1<<shiftWord | 1<<shiftSentence
	} else {
		if state.word.wordBreak(r, propertyWords(r), rest[size:]) {
			boundaries |= 1 << shiftWord
		}
		if state.sentence.sentenceBreak(propertySentences(r), rest[size:]) {
			boundaries |= 1 << shiftSentence
		}
	}
	boundaries |= lineBreakAfter(cluster, rest, boundaries&MaskWord != 0)
	return cluster, rest, boundaries, state
}

// StepString is like [Step] but its input and outputs are strings.
func StepString(str string, state State) (cluster, rest string, boundaries int, newState State) {
	c, _, boundaries, newState := Step(viewBytes(str), state)
	return str[:len(c)], str[len(c):], boundaries, newState
}

// clusterWidth returns the monospace width of a valid grapheme cluster.
func clusterWidth(cluster string) int {
	r, _ := utf8.DecodeRuneInString(cluster)
	switch {
	case r < 0x20 || r == 0x7f:
		return 0
	case r >= 0x1f1e6 && r <= 0x1f1ff:
		return 2
	case isExtendedPictographic(r):
		// An explicit presentation selector decides the width of an emoji.
		for _, c := range cluster {
			switch c {
			case vs15:
				return 1
			case vs16:
				return 2
			}
		}
	}
	return runewidth.StringWidth(cluster)
}

// GraphemeClusterCount returns the number of user-perceived characters
// (grapheme clusters) in s. Each maximal invalid subpart counts as one.
func GraphemeClusterCount(s string) (n int) {
	b := viewBytes(s)
	for len(b) > 0 {
		_, size := DecodeGrapheme(b)
		b = b[size:]
		n++
	}
	return
}

// StringWidth returns the monospace width of s, summing the widths of its
// grapheme clusters as reported by [Step].
func StringWidth(s string) (width int) {
	var (
		boundaries int
		state      State
	)
	for len(s) > 0 {
		_, s, boundaries, state = StepString(s, state)
		width += boundaries >> ShiftWidth
	}
	return
}
