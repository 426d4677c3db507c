package bstr

// These constants define whether a given text may be broken into the next line.
// If the break is optional (LineCanBreak), you may choose to break or not based
// on your own criteria, for example, if the text has reached the available
// width.
//
// They are reported in the MaskLine bits of the boundaries returned by [Step].
const (
	LineDontBreak = iota // You may not break the line here.
	LineCanBreak         // You may or may not break the line here.
	LineMustBreak        // You must break the line here.
)

// lineBreakAfter classifies the line break opportunity between cluster and
// the text that follows it. This is a simplified form of UAX #14: hard line
// terminators force a break and white space may be broken after when it
// ends a word segment.
func lineBreakAfter(cluster, rest []byte, wordBoundary bool) int {
	r, _ := DecodeLastLossy(cluster)
	switch r {
	case '\n', 0x0b, 0x0c, 0x85, 0x2028, 0x2029:
		return LineMustBreak
	case '\r':
		if len(rest) > 0 && rest[0] == '\n' {
			return LineDontBreak
		}
		return LineMustBreak
	case ' ', '\t', 0x1680, 0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005, 0x2006, 0x2008,
		0x2009, 0x200a, 0x205f, 0x3000, 0x200b:
		if wordBoundary {
			return LineCanBreak
		}
	}
	return LineDontBreak
}
