package bstr

// wbSot marks the start of text (or a restart point) in the word parser's
// context fields.
const wbSot = -1

// wordState is the context the word boundary parser keeps between code
// points.
type wordState struct {
	prev  int // property of the previous code point
	last  int // previous property after WB4 folding of Extend/Format/ZWJ
	last2 int // the one before last
	ri    int // length of the current run of regional indicators
}

func newWordState() wordState {
	return wordState{prev: wbSot, last: wbSot, last2: wbSot}
}

func isAHLetter(prop int) bool {
	return prop == prALetter || prop == prHebrewLetter
}

func isMidNumLetQ(prop int) bool {
	return prop == prMidNumLet || prop == prSingleQuote
}

func isWordIgnorable(prop int) bool {
	return prop == prExtend || prop == prFormat || prop == prZWJ
}

// nextWordProperty returns the property of the first code point of rest
// that WB4 does not fold away, or prAny if there is none.
func nextWordProperty(rest []byte) int {
	for len(rest) > 0 {
		r, size, status := decodeStep(rest)
		if status != decodeOK {
			return prAny
		}
		if prop := propertyWords(r); !isWordIgnorable(prop) {
			return prop
		}
		rest = rest[size:]
	}
	return prAny
}

// wordBreak reports whether there is a word boundary before a code point r
// with property prop, given the context so far and the bytes following r.
func (s *wordState) wordBreak(r rune, prop int, rest []byte) bool {
	switch {
	// WB3
	case s.prev == prCR && prop == prLF:
		return false

	// WB3a, WB3b
	case s.prev == prNewline || s.prev == prCR || s.prev == prLF,
		prop == prNewline || prop == prCR || prop == prLF:
		return true

	// WB3c
	case s.prev == prZWJ && isExtendedPictographic(r):
		return false

	// WB3d
	case s.prev == prWSegSpace && prop == prWSegSpace:
		return false

	// WB4
	case isWordIgnorable(prop):
		return false
	}

	l := s.last
	switch {
	// WB5
	case isAHLetter(l) && isAHLetter(prop):
		return false

	// WB6
	case isAHLetter(l) && (prop == prMidLetter || isMidNumLetQ(prop)) && isAHLetter(nextWordProperty(rest)):
		return false

	// WB7
	case isAHLetter(s.last2) && (l == prMidLetter || isMidNumLetQ(l)) && isAHLetter(prop):
		return false

	// WB7a
	case l == prHebrewLetter && prop == prSingleQuote:
		return false

	// WB7b
	case l == prHebrewLetter && prop == prDoubleQuote && nextWordProperty(rest) == prHebrewLetter:
		return false

	// WB7c
	case s.last2 == prHebrewLetter && l == prDoubleQuote && prop == prHebrewLetter:
		return false

	// WB8, WB9, WB10
	case (l == prNumeric || isAHLetter(l)) && (prop == prNumeric || isAHLetter(prop)):
		return false

	// WB11
	case s.last2 == prNumeric && (l == prMidNum || isMidNumLetQ(l)) && prop == prNumeric:
		return false

	// WB12
	case l == prNumeric && (prop == prMidNum || isMidNumLetQ(prop)) && nextWordProperty(rest) == prNumeric:
		return false

	// WB13
	case l == prKatakana && prop == prKatakana:
		return false

	// WB13a
	case (isAHLetter(l) || l == prNumeric || l == prKatakana || l == prExtendNumLet) && prop == prExtendNumLet:
		return false

	// WB13b
	case l == prExtendNumLet && (isAHLetter(prop) || prop == prNumeric || prop == prKatakana):
		return false

	// WB15, WB16
	case l == prRegionalIndicator && prop == prRegionalIndicator && s.ri%2 == 1:
		return false
	}

	// WB999
	return true
}

// advance records a code point with property prop as part of the context.
func (s *wordState) advance(prop int) {
	folded := isWordIgnorable(prop) &&
		s.last != wbSot && s.last != prNewline && s.last != prCR && s.last != prLF
	s.prev = prop
	if folded {
		return
	}
	s.last2, s.last = s.last, prop
	if prop == prRegionalIndicator {
		s.ri++
	} else {
		s.ri = 0
	}
}
