package bstr

// Where the sentence parser stands relative to a terminator.
const (
	sbNone        = iota
	sbAfterTerm   // SATerm Close*
	sbAfterSpaces // SATerm Close* Sp+
)

// sentenceState is the context the sentence boundary parser keeps between
// code points.
type sentenceState struct {
	prev  int // property of the previous code point
	last  int // previous property after SB5 folding of Extend/Format
	last2 int // the one before last
	phase int // one of the sb* constants
	term  int // prATerm or prSTerm that opened the current phase
}

func newSentenceState() sentenceState {
	return sentenceState{prev: wbSot, last: wbSot, last2: wbSot}
}

func isParaSep(prop int) bool {
	return prop == prSep || prop == prCR || prop == prLF
}

// lowerFollows implements the lookahead of SB8: it reports whether rest
// continues with ( ¬(OLetter | Upper | Lower | ParaSep | SATerm) )* Lower.
func lowerFollows(rest []byte) bool {
	for len(rest) > 0 {
		r, size, status := decodeStep(rest)
		if status != decodeOK {
			return false
		}
		switch propertySentences(r) {
		case prLower:
			return true
		case prOLetter, prUpper, prSep, prCR, prLF, prATerm, prSTerm:
			return false
		}
		rest = rest[size:]
	}
	return false
}

// sentenceBreak reports whether there is a sentence boundary before a code
// point with property prop, given the context so far and the bytes
// following it.
func (s *sentenceState) sentenceBreak(prop int, rest []byte) bool {
	switch {
	// SB3
	case s.prev == prCR && prop == prLF:
		return false

	// SB4
	case isParaSep(s.prev):
		return true

	// SB5
	case prop == prExtend || prop == prFormat:
		return false

	// SB6
	case s.last == prATerm && prop == prNumeric:
		return false

	// SB7
	case (s.last2 == prUpper || s.last2 == prLower) && s.last == prATerm && prop == prUpper:
		return false
	}

	if s.phase == sbNone {
		// SB998
		return false
	}

	switch {
	// SB8
	case s.term == prATerm && (prop == prLower || !isSentenceStarter(prop) && lowerFollows(rest)):
		return false

	// SB8a
	case prop == prSContinue || prop == prATerm || prop == prSTerm:
		return false

	// SB9
	case s.phase == sbAfterTerm && (prop == prClose || prop == prSp || isParaSep(prop)):
		return false

	// SB10
	case prop == prSp || isParaSep(prop):
		return false
	}

	// SB11
	return true
}

// isSentenceStarter reports whether prop stops the SB8 lookahead.
func isSentenceStarter(prop int) bool {
	switch prop {
	case prOLetter, prUpper, prLower, prSep, prCR, prLF, prATerm, prSTerm:
		return true
	}
	return false
}

// advance records a code point with property prop as part of the context.
func (s *sentenceState) advance(prop int) {
	folded := (prop == prExtend || prop == prFormat) && s.last != wbSot && !isParaSep(s.last)
	s.prev = prop
	if folded {
		return
	}
	s.last2, s.last = s.last, prop
	switch {
	case prop == prATerm || prop == prSTerm:
		s.phase, s.term = sbAfterTerm, prop
	case prop == prClose && s.phase == sbAfterTerm:
	case prop == prSp && s.phase != sbNone:
		s.phase = sbAfterSpaces
	default:
		s.phase = sbNone
	}
}
