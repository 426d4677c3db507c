package bstr

// DecodeWord returns the first word segment of b (UAX #29) and its length
// in bytes. Segments include runs of white space and punctuation; see
// [Words] for an iterator that skips those. The segment shares memory with
// b.
//
// If b starts with invalid UTF-8, the segment is "�" and the length is
// that of the maximal invalid subpart. A valid segment never extends over
// invalid bytes. An empty b returns ("", 0).
func DecodeWord(b []byte) (string, int) {
	n := wordLength(b)
	if n == 0 {
		return "", 0
	}
	if n < 0 {
		return replacement, -n
	}
	return viewString(b[:n]), n
}

// wordLength returns the length of the first word segment in b, or the
// negated length of the invalid prefix of b.
func wordLength(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	r, length, status := decodeStep(b)
	if status != decodeOK {
		return -length
	}
	state := newWordState()
	state.advance(propertyWords(r))
	for length < len(b) {
		r, size, status := decodeStep(b[length:])
		if status != decodeOK {
			break
		}
		prop := propertyWords(r)
		if state.wordBreak(r, prop, b[length+size:]) {
			break
		}
		state.advance(prop)
		length += size
	}
	return length
}

// DecodeLastWord returns the last word segment of b and its length in
// bytes. It agrees with repeated [DecodeWord] calls over b.
//
// If b ends with invalid UTF-8, the segment is "�" and the length is that
// reported by [DecodeLastLossy]. An empty b returns ("", 0).
func DecodeLastWord(b []byte) (string, int) {
	if len(b) == 0 {
		return "", 0
	}
	if _, size, status := decodeLastStep(b); status != decodeOK {
		return replacement, size
	}
	start := lastSegmentStart(b, wordRestart(b), wordLength)
	return viewString(b[start:]), len(b) - start
}

// wordRestart returns the last offset before the final code point of b at
// which a word boundary is certain and the word parser can start afresh
// without context: after invalid UTF-8, after a line terminator other than
// the CR of a CRLF pair, or after white space that is not followed by more
// white space or by a code point WB4 would attach to it.
func wordRestart(b []byte) int {
	pos := len(b)
	next := wbSot
	for pos > 0 {
		r, size, status := decodeLastStep(b[:pos])
		if status != decodeOK {
			if pos < len(b) {
				return pos
			}
			next = wbSot
			pos -= size
			continue
		}
		prop := propertyWords(r)
		if pos < len(b) {
			switch {
			case prop == prNewline || prop == prLF:
				return pos
			case prop == prCR && next != prLF:
				return pos
			case prop == prWSegSpace && next != wbSot && next != prWSegSpace && !isWordIgnorable(next):
				return pos
			}
		}
		next = prop
		pos -= size
	}
	return 0
}

// lastSegmentStart runs a forward segmenter over b from from, a known
// boundary, and returns the offset of the last segment. length reports the
// segment length at a position, negated for invalid bytes.
func lastSegmentStart(b []byte, from int, length func([]byte) int) int {
	start := from
	for {
		n := length(b[start:])
		if n < 0 {
			n = -n
		}
		if start+n >= len(b) {
			return start
		}
		start += n
	}
}
