package bstr

import "unsafe"

// viewString returns a string sharing memory with b. The caller must not
// modify b while the string is in use.
func viewString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// viewBytes returns a byte slice sharing memory with s. The slice must never
// be written to.
func viewBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
