/*
Package bstr treats arbitrary byte slices as text without requiring them to
be valid UTF-8.

Go strings and byte slices are conventionally, but not necessarily, UTF-8.
Data read from files, sockets and process output often is not. This package
gives such data the text operations of a string type: decoding, searching,
case mapping and Unicode text segmentation, all defined for every input.

This package conforms to:
  - Unicode Standard Annex #29 (https://unicode.org/reports/tr29/) for text segmentation
  - The Unicode Standard, chapter 3, "U+FFFD Substitution of Maximal Subparts"

# Overview

Using this package, you can:
  - Validate and decode UTF-8 with precise error positions
  - Convert bytes to strings losslessly or lossily, without copying valid input
  - Search forward and backward for substrings, bytes, byte sets and characters
  - Split bytes into grapheme clusters, words and sentences from either end
  - Trim, case map, escape and debug-print byte strings

# Invalid UTF-8

Wherever a character is expected, a maximal invalid subpart of the input
(the longest prefix of a well-formed sequence, or a single byte) stands for
one U+FFFD replacement character. Every decoding function consumes at least
one byte for it, so loops over decoders always terminate:

	b := []byte("a\xF0\x9F\x87b")
	for len(b) > 0 {
		r, size := bstr.DecodeLossy(b)
		fmt.Printf("%q %d\n", r, size) // 'a' 1, '�' 3, 'b' 1
		b = b[size:]
	}

Segmenters never let a segment extend over invalid bytes.

# Getting Started

For simple use cases:
  - [ToStrLossy] - Convert to a string, copying only when needed
  - [GraphemeClusterCount] - Count user-perceived characters
  - [StringWidth] - Get display width for monospace fonts

For iteration:
  - [Chars], [Graphemes], [Words], [Sentences], [Lines] - double-ended iterators
  - [Step] / [StepString] - Process text with all boundary info
  - [ScanGraphemes], [ScanWords], [ScanSentences], [ScanLines] - [bufio.Scanner] split functions

For byte string values:
  - [BStr] - a read-only view with text methods
  - [BString] - an owned, growable byte string

# Grapheme Clusters

A grapheme cluster is what users perceive as a single "character." For example,
the flag 🇩🇪 is two regional indicator code points but one cluster, and é may
be written as "e" followed by a combining acute accent.

[DecodeGrapheme] and [DecodeLastGrapheme] return the first and last cluster of
a byte slice. Decoding from the end needs care with regional indicators, whose
pairing depends on how many precede them; DecodeLastGrapheme counts them so
that both directions agree.

# Word Boundaries

Word boundaries are used for:
  - Double-click text selection
  - Cursor movement (Ctrl+Arrow)
  - "Whole word" search

Use [Words] for words only, or [WordsWithBreaks] to also see the white space
and punctuation between them.

# Sentence Boundaries

Use [Sentences] or [DecodeSentence]. A sentence includes its terminator and
the white space that follows it.
*/
package bstr
