package bstr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Elision limits used by [DebugBytes].
const (
	linesMinOverflow = 80
	linesMaxStart    = 20
	linesMaxEnd      = 40

	bytesMinOverflow = 8192
	bytesMaxStart    = 2048
	bytesMaxEnd      = 2048
)

// Quote returns a double-quoted debug rendering of b. Valid text is
// escaped the way Go escapes string literals, except that NUL is written as
// \0 and other ASCII control characters as lowercase \xNN. Each invalid
// byte is written as uppercase \xNN, so the rendering tells a literal
// U+FFFD apart from bytes that failed to decode.
func Quote(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) + 2)
	sb.WriteByte('"')
	writeQuoted(&sb, b)
	sb.WriteByte('"')
	return sb.String()
}

func writeQuoted(sb *strings.Builder, b []byte) {
	for len(b) > 0 {
		r, size, status := decodeStep(b)
		if status != decodeOK {
			for _, c := range b[:size] {
				sb.WriteString(`\x`)
				sb.WriteByte(hexDigits[c>>4])
				sb.WriteByte(hexDigits[c&0xF])
			}
			b = b[size:]
			continue
		}
		switch {
		case r == 0:
			sb.WriteString(`\0`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '"':
			sb.WriteString(`\"`)
		case r == '\\':
			sb.WriteString(`\\`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(sb, `\x%02x`, r)
		case r < utf8.RuneSelf || strconv.IsPrint(r):
			sb.Write(b[:size])
		case r < 0x10000:
			fmt.Fprintf(sb, `\u%04x`, r)
		default:
			fmt.Fprintf(sb, `\U%08x`, r)
		}
		b = b[size:]
	}
}

// DebugBytes renders b for diagnostics. A single line is rendered as by
// [Quote]. Multiple lines are written unquoted between ``` fences, one
// escaped line per output line. Large inputs are elided: with 80 or more
// lines only the first 20 and last 40 are shown, and with 8192 or more
// bytes only the first and last 2048 bytes.
func DebugBytes(b []byte) string {
	var sb strings.Builder
	total := 0
	for range LinesWithTerminator(b).All() {
		total++
	}
	multiline := total > 1

	switch {
	case total >= linesMinOverflow:
		omitted := total - linesMaxStart - linesMaxEnd
		lines := LinesWithTerminator(b)
		fmt.Fprintf(&sb, "<%d lines total>\n", total)
		writeDebugLines(&sb, true, takeLines(lines, linesMaxStart))
		fmt.Fprintf(&sb, "<%d lines omitted>\n", omitted)
		for range omitted {
			lines.Next()
		}
		writeDebugLines(&sb, true, takeLines(lines, linesMaxEnd))
	case len(b) >= bytesMinOverflow:
		sep := ""
		if multiline {
			sep = "\n"
		}
		fmt.Fprintf(&sb, "<%d bytes total>%s", len(b), sep)
		writeDebugLines(&sb, multiline, takeLines(LinesWithTerminator(b[:bytesMaxStart]), -1))
		fmt.Fprintf(&sb, "<%d bytes omitted>%s", len(b)-bytesMaxStart-bytesMaxEnd, sep)
		writeDebugLines(&sb, multiline, takeLines(LinesWithTerminator(b[len(b)-bytesMaxEnd:]), -1))
	default:
		writeDebugLines(&sb, multiline, takeLines(LinesWithTerminator(b), -1))
	}
	return sb.String()
}

// takeLines collects up to n lines from it, or all of them if n < 0.
func takeLines(it *LineIter, n int) [][]byte {
	var lines [][]byte
	for n < 0 || len(lines) < n {
		line, ok := it.Next()
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	return lines
}

func writeDebugLines(sb *strings.Builder, multiline bool, lines [][]byte) {
	if !multiline {
		var first []byte
		if len(lines) > 0 {
			first = lines[0]
		}
		sb.WriteString(Quote(first))
		return
	}
	sb.WriteString("```\n")
	for _, line := range lines {
		newline := false
		if n := len(line); n > 0 && line[n-1] == '\n' {
			line, newline = line[:n-1], true
		}
		writeQuoted(sb, line)
		if newline {
			sb.WriteByte('\n')
		}
	}
	sb.WriteString("```\n")
}
