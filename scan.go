package bstr

import (
	"bytes"
	"unicode/utf8"
)

// ScanGraphemes is a [bufio.SplitFunc] that returns grapheme clusters.
// Invalid UTF-8 is returned as is, one maximal invalid subpart per token.
func ScanGraphemes(data []byte, atEOF bool) (advance int, token []byte, err error) {
	return scanSegments(data, atEOF, DecodeGrapheme)
}

// ScanWords is a [bufio.SplitFunc] that returns word segments, including
// white space and punctuation, as [WordsWithBreaks] does.
func ScanWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	return scanSegments(data, atEOF, DecodeWord)
}

// ScanSentences is a [bufio.SplitFunc] that returns sentences.
func ScanSentences(data []byte, atEOF bool) (advance int, token []byte, err error) {
	return scanSegments(data, atEOF, DecodeSentence)
}

func scanSegments(data []byte, atEOF bool, decode func([]byte) (string, int)) (int, []byte, error) {
	if !atEOF {
		// A sequence cut by the read would end lookahead early.
		data = trimIncomplete(data)
	}
	if len(data) == 0 {
		return 0, nil, nil
	}
	_, n := decode(data)
	if !atEOF {
		// Boundary rules look ahead, so only trust a boundary that is
		// followed by another complete segment.
		if n == len(data) {
			return 0, nil, nil
		}
		if _, m := decode(data[n:]); n+m == len(data) {
			return 0, nil, nil
		}
	}
	return n, data[:n], nil
}

// trimIncomplete drops a trailing UTF-8 sequence that more input could
// still complete.
func trimIncomplete(data []byte) []byte {
	start := len(data) - 1
	for start > 0 && len(data)-start < utf8.UTFMax && !utf8.RuneStart(data[start]) {
		start--
	}
	if start < 0 {
		return data
	}
	if _, size, status := decodeStep(data[start:]); status == decodeIncomplete && start+size == len(data) {
		return data[:start]
	}
	return data
}

// ScanLines is a [bufio.SplitFunc] that returns lines including their
// terminator, so that the tokens concatenate back to the input. The last
// line may lack a terminator.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
