package bstr

import "slices"

// ReverseBytes reverses b in place.
func ReverseBytes(b []byte) {
	slices.Reverse(b)
}

// ReverseChars reverses the order of the characters of b in place. Each
// maximal invalid subpart is moved as a unit with its bytes kept in order.
func ReverseChars(b []byte) {
	reverseUnits(b, func(b []byte) int {
		_, size := DecodeLossy(b)
		return size
	})
}

// ReverseGraphemes reverses the order of the grapheme clusters of b in
// place, keeping each cluster intact.
func ReverseGraphemes(b []byte) {
	reverseUnits(b, func(b []byte) int {
		_, size := DecodeGrapheme(b)
		return size
	})
}

// reverseUnits reverses every unit reported by next, then the whole slice,
// which restores each unit and reverses their order.
func reverseUnits(b []byte, next func([]byte) int) {
	for i := 0; i < len(b); {
		n := next(b[i:])
		slices.Reverse(b[i : i+n])
		i += n
	}
	slices.Reverse(b)
}
