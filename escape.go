package bstr

import "strings"

const hexDigits = "0123456789ABCDEF"

// EscapeBytes renders b as printable ASCII. NUL, tab, newline, carriage
// return and backslash are written as \0, \t, \n, \r and \\, other
// printable ASCII is kept as is and every other byte becomes \xNN.
// [UnescapeBytes] reverses it.
func EscapeBytes(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		switch {
		case c == 0:
			sb.WriteString(`\0`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c == '\\':
			sb.WriteString(`\\`)
		case c >= 0x20 && c < 0x7f:
			sb.WriteByte(c)
		default:
			sb.WriteString(`\x`)
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0xF])
		}
	}
	return sb.String()
}

// UnescapeBytes decodes the escapes written by [EscapeBytes]. \xNN accepts
// hex digits of either case. Unknown or malformed escapes are kept
// literally.
func UnescapeBytes(s string) []byte {
	dst := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			dst = append(dst, c)
			continue
		}
		switch s[i+1] {
		case '0':
			dst = append(dst, 0)
		case 't':
			dst = append(dst, '\t')
		case 'n':
			dst = append(dst, '\n')
		case 'r':
			dst = append(dst, '\r')
		case '\\':
			dst = append(dst, '\\')
		case 'x':
			if i+3 < len(s) {
				hi, okHi := unhex(s[i+2])
				lo, okLo := unhex(s[i+3])
				if okHi && okLo {
					dst = append(dst, hi<<4|lo)
					i += 3
					continue
				}
			}
			dst = append(dst, c)
			continue
		default:
			dst = append(dst, c)
			continue
		}
		i++
	}
	return dst
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
