package bstr

// DecodeSentence returns the first sentence of b (UAX #29) and its length in
// bytes. The sentence includes its terminator and trailing white space, and
// shares memory with b.
//
// If b starts with invalid UTF-8, the segment is "�" and the length is
// that of the maximal invalid subpart. A valid sentence never extends over
// invalid bytes. An empty b returns ("", 0).
func DecodeSentence(b []byte) (string, int) {
	n := sentenceLength(b)
	if n == 0 {
		return "", 0
	}
	if n < 0 {
		return replacement, -n
	}
	return viewString(b[:n]), n
}

// sentenceLength returns the length of the first sentence in b, or the
// negated length of the invalid prefix of b.
func sentenceLength(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	r, length, status := decodeStep(b)
	if status != decodeOK {
		return -length
	}
	state := newSentenceState()
	state.advance(propertySentences(r))
	for length < len(b) {
		r, size, status := decodeStep(b[length:])
		if status != decodeOK {
			break
		}
		prop := propertySentences(r)
		if state.sentenceBreak(prop, b[length+size:]) {
			break
		}
		state.advance(prop)
		length += size
	}
	return length
}

// DecodeLastSentence returns the last sentence of b and its length in
// bytes. It agrees with repeated [DecodeSentence] calls over b.
//
// If b ends with invalid UTF-8, the segment is "�" and the length is that
// reported by [DecodeLastLossy]. An empty b returns ("", 0).
func DecodeLastSentence(b []byte) (string, int) {
	if len(b) == 0 {
		return "", 0
	}
	if _, size, status := decodeLastStep(b); status != decodeOK {
		return replacement, size
	}
	start := lastSegmentStart(b, sentenceRestart(b), sentenceLength)
	return viewString(b[start:]), len(b) - start
}

// sentenceRestart returns the last offset before the final code point of b
// that follows a paragraph separator (other than the CR of a CRLF pair) or
// invalid UTF-8. Sentences always break there.
func sentenceRestart(b []byte) int {
	pos := len(b)
	next := wbSot
	for pos > 0 {
		r, size, status := decodeLastStep(b[:pos])
		if status != decodeOK && pos < len(b) {
			return pos
		}
		prop := propertySentences(r)
		if pos < len(b) && isParaSep(prop) && !(prop == prCR && next == prLF) {
			return pos
		}
		next = prop
		pos -= size
	}
	return 0
}
