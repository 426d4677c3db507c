package bstr

// Trim returns b without leading and trailing Unicode White_Space. Trimming
// stops at the first invalid byte from either end.
func Trim(b []byte) []byte {
	return TrimFunc(b, isWhiteSpace)
}

// TrimStart returns b without leading Unicode White_Space.
func TrimStart(b []byte) []byte {
	return TrimStartFunc(b, isWhiteSpace)
}

// TrimEnd returns b without trailing Unicode White_Space.
func TrimEnd(b []byte) []byte {
	return TrimEndFunc(b, isWhiteSpace)
}

// TrimFunc returns b without the leading and trailing characters that
// satisfy f. Invalid UTF-8 is never trimmed.
func TrimFunc(b []byte, f func(rune) bool) []byte {
	return TrimEndFunc(TrimStartFunc(b, f), f)
}

// TrimStartFunc returns b without the leading characters that satisfy f.
func TrimStartFunc(b []byte, f func(rune) bool) []byte {
	for len(b) > 0 {
		r, size, ok := Decode(b)
		if !ok || !f(r) {
			break
		}
		b = b[size:]
	}
	return b
}

// TrimEndFunc returns b without the trailing characters that satisfy f.
func TrimEndFunc(b []byte, f func(rune) bool) []byte {
	for len(b) > 0 {
		r, size, ok := DecodeLast(b)
		if !ok || !f(r) {
			break
		}
		b = b[:len(b)-size]
	}
	return b
}
