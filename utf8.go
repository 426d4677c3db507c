package bstr

import "unicode/utf8"

// Continuation byte bounds.
const (
	locb = 0x80 // 1000 0000
	hicb = 0xBF // 1011 1111
)

// The names of these constants are chosen to give nice alignment in the
// table below. The first nibble is an index into acceptRanges or F for
// special one-byte cases. The second nibble is the sequence length.
const (
	xx = 0xF1 // invalid: size 1
	as = 0xF0 // ASCII: size 1
	s1 = 0x02 // accept 0, size 2
	s2 = 0x13 // accept 1, size 3
	s3 = 0x03 // accept 0, size 3
	s4 = 0x23 // accept 2, size 3
	s5 = 0x34 // accept 3, size 4
	s6 = 0x04 // accept 0, size 4
	s7 = 0x44 // accept 4, size 4
)

// first describes the first byte of a UTF-8 sequence.
var first = [256]uint8{
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x00-0x0F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x10-0x1F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x20-0x2F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x30-0x3F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x40-0x4F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x50-0x5F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x60-0x6F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x70-0x7F
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x80-0x8F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x90-0x9F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xA0-0xAF
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xB0-0xBF
	xx, xx, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xC0-0xCF
	s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xD0-0xDF
	s2, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s4, s3, s3, // 0xE0-0xEF
	s5, s6, s6, s6, s7, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xF0-0xFF
}

// acceptRange gives the range of valid values for the second byte in a UTF-8
// sequence.
type acceptRange struct {
	lo uint8
	hi uint8
}

var acceptRanges = [...]acceptRange{
	0: {locb, hicb},
	1: {0xA0, hicb}, // E0: no overlong 3-byte forms
	2: {locb, 0x9F}, // ED: no surrogates
	3: {0x90, hicb}, // F0: no overlong 4-byte forms
	4: {locb, 0x8F}, // F4: nothing above U+10FFFF
}

// Outcomes of a single decoding step.
const (
	decodeOK         = iota
	decodeInvalid    // size is the length of the maximal invalid subpart
	decodeIncomplete // the input ended inside a valid prefix of size bytes
	decodeEmpty
)

// decodeStep decodes the first scalar value in b. On failure, size is the
// length of the maximal subpart of an ill-formed sequence, which is always
// at least 1 and at most 3, so that consumers substitute exactly one
// replacement character per subpart.
func decodeStep(b []byte) (r rune, size int, status int) {
	n := len(b)
	if n < 1 {
		return utf8.RuneError, 0, decodeEmpty
	}
	b0 := b[0]
	x := first[b0]
	if x >= as {
		if x == as {
			return rune(b0), 1, decodeOK
		}
		return utf8.RuneError, 1, decodeInvalid
	}
	sz := int(x & 7)
	accept := acceptRanges[x>>4]
	if n < 2 {
		return utf8.RuneError, 1, decodeIncomplete
	}
	b1 := b[1]
	if b1 < accept.lo || accept.hi < b1 {
		return utf8.RuneError, 1, decodeInvalid
	}
	if sz == 2 {
		return rune(b0&0x1F)<<6 | rune(b1&0x3F), 2, decodeOK
	}
	if n < 3 {
		return utf8.RuneError, 2, decodeIncomplete
	}
	b2 := b[2]
	if b2 < locb || hicb < b2 {
		return utf8.RuneError, 2, decodeInvalid
	}
	if sz == 3 {
		return rune(b0&0x0F)<<12 | rune(b1&0x3F)<<6 | rune(b2&0x3F), 3, decodeOK
	}
	if n < 4 {
		return utf8.RuneError, 3, decodeIncomplete
	}
	b3 := b[3]
	if b3 < locb || hicb < b3 {
		return utf8.RuneError, 3, decodeInvalid
	}
	return rune(b0&0x07)<<18 | rune(b1&0x3F)<<12 | rune(b2&0x3F)<<6 | rune(b3&0x3F), 4, decodeOK
}

// decodeLastStep is the mirror of decodeStep for the end of b.
func decodeLastStep(b []byte) (r rune, size int, status int) {
	end := len(b)
	if end == 0 {
		return utf8.RuneError, 0, decodeEmpty
	}
	limit := max(end-utf8.UTFMax, 0)
	start := end - 1
	for start > limit && b[start]&0xC0 == 0x80 {
		start--
	}
	r, size, status = decodeStep(b[start:])
	if start+size != end {
		return utf8.RuneError, 1, decodeInvalid
	}
	return r, size, status
}

// Decode decodes the first scalar value in b. It reports ok=false if b does
// not start with a valid UTF-8 sequence, in which case size is the number of
// bytes making up the invalid prefix. An empty b returns size 0.
func Decode(b []byte) (r rune, size int, ok bool) {
	r, size, status := decodeStep(b)
	return r, size, status == decodeOK
}

// DecodeLast is like [Decode] but decodes the last scalar value in b.
func DecodeLast(b []byte) (r rune, size int, ok bool) {
	r, size, status := decodeLastStep(b)
	return r, size, status == decodeOK
}

// DecodeLossy decodes the first scalar value in b. Invalid UTF-8 yields
// [utf8.RuneError] along with the length of the maximal invalid subpart, so
// repeated calls substitute one replacement character per subpart and always
// make progress. An empty b returns (utf8.RuneError, 0).
func DecodeLossy(b []byte) (rune, int) {
	r, size, _ := decodeStep(b)
	return r, size
}

// DecodeLastLossy is like [DecodeLossy] but decodes the last scalar value.
func DecodeLastLossy(b []byte) (rune, int) {
	r, size, _ := decodeLastStep(b)
	return r, size
}

// Validate reports whether b is entirely valid UTF-8. A non-nil error is
// always a [*Utf8Error] with a concrete [Utf8Error.ErrorLen], including for a
// sequence truncated by the end of b.
func Validate(b []byte) error {
	return validate(b, false)
}

// ValidateStream is like [Validate] but treats a valid prefix of a sequence
// at the very end of b as incomplete rather than invalid: the returned
// error's ErrorLen reports ok=false, signalling that more input may complete
// the sequence.
func ValidateStream(b []byte) error {
	return validate(b, true)
}

func validate(b []byte, stream bool) error {
	i := 0
	for i < len(b) {
		// Skip ASCII runs quickly.
		if b[i] < utf8.RuneSelf {
			i++
			for i < len(b) && b[i] < utf8.RuneSelf {
				i++
			}
			continue
		}
		_, size, status := decodeStep(b[i:])
		switch status {
		case decodeOK:
			i += size
		case decodeIncomplete:
			if stream {
				return &Utf8Error{validUpTo: i}
			}
			return &Utf8Error{validUpTo: i, errorLen: size}
		default:
			return &Utf8Error{validUpTo: i, errorLen: size}
		}
	}
	return nil
}

// IsUTF8 reports whether b is entirely valid UTF-8.
func IsUTF8(b []byte) bool {
	return Validate(b) == nil
}

// ToStr converts b to a string if it is valid UTF-8. The returned string
// shares memory with b.
func ToStr(b []byte) (string, error) {
	if err := Validate(b); err != nil {
		return "", err
	}
	return viewString(b), nil
}

// ToStrLossy converts b to a string, replacing each maximal invalid subpart
// with U+FFFD. If b is valid UTF-8, the result shares memory with b and
// borrowed is true; no allocation takes place. Otherwise a new string is
// built and borrowed is false.
func ToStrLossy(b []byte) (s string, borrowed bool) {
	if Validate(b) == nil {
		return viewString(b), true
	}
	return string(ToStrLossyInto(make([]byte, 0, len(b)+utf8.UTFMax), b)), false
}

// ToStrLossyInto appends the lossy conversion of b to dst and returns the
// extended buffer.
func ToStrLossyInto(dst, b []byte) []byte {
	chunks := Utf8Chunks(b)
	for {
		chunk, ok := chunks.Next()
		if !ok {
			return dst
		}
		dst = append(dst, chunk.Valid...)
		if len(chunk.Invalid) > 0 {
			dst = utf8.AppendRune(dst, utf8.RuneError)
		}
	}
}

// FindNonASCIIByte returns the index of the first byte >= 0x80, or -1.
func FindNonASCIIByte(b []byte) int {
	for i, c := range b {
		if c >= utf8.RuneSelf {
			return i
		}
	}
	return -1
}

// IsASCII reports whether every byte of b is ASCII.
func IsASCII(b []byte) bool {
	return FindNonASCIIByte(b) < 0
}
