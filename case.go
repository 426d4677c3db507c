package bstr

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToLower returns a copy of b with every character mapped to its full
// Unicode lowercase mapping. Invalid UTF-8 is copied through unchanged.
func ToLower(b []byte) []byte {
	return ToLowerInto(make([]byte, 0, len(b)), b)
}

// ToLowerInto appends the lowercase mapping of b to dst and returns the
// extended buffer.
func ToLowerInto(dst, b []byte) []byte {
	if IsASCII(b) {
		start := len(dst)
		dst = append(dst, b...)
		MakeASCIILower(dst[start:])
		return dst
	}
	return mapValidInto(dst, b, cases.Lower(language.Und))
}

// ToUpper returns a copy of b with every character mapped to its full
// Unicode uppercase mapping, so "ß" becomes "SS". Invalid UTF-8 is copied
// through unchanged.
func ToUpper(b []byte) []byte {
	return ToUpperInto(make([]byte, 0, len(b)), b)
}

// ToUpperInto appends the uppercase mapping of b to dst and returns the
// extended buffer.
func ToUpperInto(dst, b []byte) []byte {
	if IsASCII(b) {
		start := len(dst)
		dst = append(dst, b...)
		MakeASCIIUpper(dst[start:])
		return dst
	}
	return mapValidInto(dst, b, cases.Upper(language.Und))
}

// ToFold returns a copy of b case folded for caseless comparison.
func ToFold(b []byte) []byte {
	return mapValidInto(make([]byte, 0, len(b)), b, cases.Fold())
}

// ToTitle returns a copy of b with the first letter of each word in title
// case and the rest lowercased.
func ToTitle(b []byte) []byte {
	return mapValidInto(make([]byte, 0, len(b)), b, cases.Title(language.Und))
}

// mapValidInto appends b to dst with c applied to each valid UTF-8 run.
func mapValidInto(dst, b []byte, c cases.Caser) []byte {
	chunks := Utf8Chunks(b)
	for {
		chunk, ok := chunks.Next()
		if !ok {
			return dst
		}
		dst = append(dst, c.String(chunk.Valid)...)
		dst = append(dst, chunk.Invalid...)
	}
}

// ToASCIILower returns a copy of b with ASCII letters lowercased. Other
// bytes are unchanged.
func ToASCIILower(b []byte) []byte {
	dst := append([]byte(nil), b...)
	MakeASCIILower(dst)
	return dst
}

// ToASCIIUpper returns a copy of b with ASCII letters uppercased.
func ToASCIIUpper(b []byte) []byte {
	dst := append([]byte(nil), b...)
	MakeASCIIUpper(dst)
	return dst
}

// MakeASCIILower lowercases the ASCII letters of b in place.
func MakeASCIILower(b []byte) {
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
}

// MakeASCIIUpper uppercases the ASCII letters of b in place.
func MakeASCIIUpper(b []byte) {
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
}
