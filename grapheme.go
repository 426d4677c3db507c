package bstr

// replacement is the string returned for segments made of invalid UTF-8.
const replacement = "�"

// DecodeGrapheme returns the first grapheme cluster in b and its length in
// bytes. The cluster shares memory with b.
//
// If b starts with invalid UTF-8, the cluster is "�" and the length is
// that of the maximal invalid subpart. A valid cluster never extends over
// invalid bytes. An empty b returns ("", 0).
func DecodeGrapheme(b []byte) (string, int) {
	if len(b) == 0 {
		return "", 0
	}

	// Two ASCII bytes always have a boundary between them, except CR LF.
	if len(b) >= 2 && b[0] < 0x80 && b[1] < 0x80 && !isASCIISpace(b[0]) {
		return viewString(b[:1]), 1
	}

	r, length, status := decodeStep(b)
	if status != decodeOK {
		return replacement, length
	}
	state, _, _ := transitionGraphemeState(-1, r)
	for length < len(b) {
		r, size, status := decodeStep(b[length:])
		if status != decodeOK {
			break
		}
		var boundary bool
		state, _, boundary = transitionGraphemeState(state, r)
		if boundary {
			break
		}
		length += size
	}
	return viewString(b[:length]), length
}

// DecodeLastGrapheme returns the last grapheme cluster in b and its length
// in bytes. It agrees with repeated [DecodeGrapheme] calls over b: the
// result is always the final cluster those calls would produce.
//
// If b ends with invalid UTF-8, the cluster is "�" and the length is
// that reported by [DecodeLastLossy]. An empty b returns ("", 0).
func DecodeLastGrapheme(b []byte) (string, int) {
	if len(b) == 0 {
		return "", 0
	}

	r, size, status := decodeLastStep(b)
	if status != decodeOK {
		return replacement, size
	}
	start := len(b) - size
	rprop := propertyGraphemes(r)
	riCount := 0
	if rprop == prRegionalIndicator {
		riCount = 1
	}
	for start > 0 {
		l, lsize, status := decodeLastStep(b[:start])
		if status != decodeOK {
			break
		}
		lprop := propertyGraphemes(l)
		if lprop == prRegionalIndicator && rprop == prRegionalIndicator {
			// GB12/GB13: the pair is only real if an even number of RIs
			// precede it. Otherwise its first RI closes the previous flag.
			if riCount != 1 || regionalIndicatorsBefore(b[:start-lsize])%2 == 1 {
				break
			}
		} else if !graphemeJoinsBackward(b[:start], l, lprop, r, rprop) {
			break
		}
		if lprop == prRegionalIndicator {
			riCount++
		}
		start -= lsize
		r, rprop = l, lprop
	}
	return viewString(b[start:]), len(b) - start
}

// regionalIndicatorsBefore counts the contiguous regional indicators at the
// end of b.
func regionalIndicatorsBefore(b []byte) int {
	n := 0
	for len(b) > 0 {
		r, size, status := decodeLastStep(b)
		if status != decodeOK || propertyGraphemes(r) != prRegionalIndicator {
			break
		}
		n++
		b = b[:len(b)-size]
	}
	return n
}

func isASCIISpace(c byte) bool {
	return c == ' ' || '\t' <= c && c <= '\r'
}
