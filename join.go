package bstr

import "bytes"

// Concat returns the concatenation of parts in a new slice.
func Concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

// Join returns the concatenation of parts with sep between each pair.
func Join(sep []byte, parts ...[]byte) []byte {
	return bytes.Join(parts, sep)
}

// Repeat returns b repeated n times. It panics if n is negative.
func Repeat(b []byte, n int) []byte {
	return bytes.Repeat(b, n)
}
