package bstr

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Unicode properties used by the text segmentation parsers (UAX #29).
//
// Note: Grapheme properties come first to minimize bits in state values.
const (
	prAny = iota // Default/any property (must be 0)

	// Grapheme Cluster Break properties
	prPrepend              // Characters that don't break before following char
	prCR                   // Carriage return
	prLF                   // Line feed
	prControl              // Control characters
	prExtend               // Extending characters (combining marks)
	prRegionalIndicator    // Flag emoji components (paired)
	prSpacingMark          // Spacing combining marks
	prL                    // Hangul leading consonant (Jamo L)
	prV                    // Hangul vowel (Jamo V)
	prT                    // Hangul trailing consonant (Jamo T)
	prLV                   // Hangul syllable LV
	prLVT                  // Hangul syllable LVT
	prZWJ                  // Zero Width Joiner
	prExtendedPictographic // Emoji and pictographic characters

	// Word Break properties
	prNewline      // Newline characters
	prWSegSpace    // Whitespace for WB3d
	prDoubleQuote  // Double quotation mark
	prSingleQuote  // Single quotation mark (apostrophe)
	prMidNumLet    // Mid-word/number (e.g., period)
	prNumeric      // Numeric digits
	prMidLetter    // Mid-letter (e.g., colon, middle dot)
	prMidNum       // Mid-number (e.g., comma in numbers)
	prExtendNumLet // Underscore and similar
	prALetter      // Alphabetic letters
	prFormat       // Format characters
	prHebrewLetter // Hebrew letters
	prKatakana     // Japanese Katakana

	// Sentence Break properties
	prSp        // Space
	prSTerm     // Sentence terminal (! ?)
	prClose     // Close punctuation
	prSContinue // Sentence continue
	prATerm     // Ambiguous terminal (.)
	prUpper     // Uppercase letters
	prLower     // Lowercase letters
	prSep       // Paragraph separator
	prOLetter   // Other letters

	// Indic_Conjunct_Break property values for grapheme rule GB9c
	prInCBNone      // Default - not part of conjunct
	prInCBLinker    // Virama - links consonants in conjuncts
	prInCBConsonant // Consonant - can form conjuncts
	prInCBExtend    // Extend - extends within conjuncts
)

// Variation Selectors for emoji presentation control.
const (
	vs15 = 0xfe0e // Variation Selector-15: force text presentation (width 1)
	vs16 = 0xfe0f // Variation Selector-16: force emoji presentation (width 2)
)

// Derived core properties that Go's unicode package does not export
// directly, composed from the categories and contributory properties it does.
var (
	graphemeExtend = rangetable.Merge(unicode.Mn, unicode.Me, unicode.Other_Grapheme_Extend)
	alphabetic     = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_Alphabetic)
	lowercase      = rangetable.Merge(unicode.Ll, unicode.Other_Lowercase)
	uppercase      = rangetable.Merge(unicode.Lu, unicode.Lt, unicode.Other_Uppercase)
	emojiModifier  = rangetable.New(0x1f3fb, 0x1f3fc, 0x1f3fd, 0x1f3fe, 0x1f3ff)
	control        = rangetable.Merge(unicode.Cc, unicode.Zl, unicode.Zp, unicode.Cf)

	// Word characters as matched by \w: letters, marks, decimal digits,
	// connector punctuation and the join controls.
	wordCharacter = rangetable.Merge(alphabetic, unicode.M, unicode.Nd, unicode.Pc, unicode.Join_Control)

	// Scripts whose words are delimited by dictionary lookup rather than
	// by UAX #29 (Line_Break=SA); their letters are not ALetter.
	complexContext = rangetable.Merge(unicode.Thai, unicode.Lao, unicode.Myanmar, unicode.Khmer,
		unicode.Tai_Tham, unicode.Tai_Viet, unicode.New_Tai_Lue, unicode.Tai_Le)

	prependTable = rangetable.Merge(unicode.Prepended_Concatenation_Mark, rangetable.New(
		0x0d4e, 0x111c2, 0x111c3, 0x1193f, 0x11941, 0x11a3a,
		0x11a84, 0x11a85, 0x11a86, 0x11a87, 0x11a88, 0x11a89, 0x11d46, 0x11f02))

	// Mc code points that are not SpacingMark.
	spacingMarkExceptions = rangetable.New(
		0x102b, 0x102c, 0x1038, 0x1062, 0x1063, 0x1064, 0x1067, 0x1068, 0x1069,
		0x106a, 0x106b, 0x106c, 0x106d, 0x1083, 0x1087, 0x1088, 0x1089, 0x108a,
		0x108b, 0x108c, 0x108f, 0x109a, 0x109b, 0x109c, 0x1a61, 0x1a63, 0x1a64,
		0xaa7b, 0xaa7d, 0x11720, 0x11721)

	katakanaTable = rangetable.Merge(unicode.Katakana, rangetable.New(
		0x3031, 0x3032, 0x3033, 0x3034, 0x3035, 0x309b, 0x309c, 0x30a0, 0x30fc, 0xff70))

	midLetterTable = rangetable.New(0x003a, 0x00b7, 0x0387, 0x055f, 0x05f4, 0x2027, 0xfe13, 0xfe55, 0xff1a)
	midNumTable    = rangetable.New(0x002c, 0x003b, 0x037e, 0x0589, 0x060c, 0x060d, 0x066c, 0x07f8,
		0x2044, 0xfe10, 0xfe14, 0xfe50, 0xfe54, 0xff0c, 0xff1b)
	midNumLetTable = rangetable.New(0x002e, 0x2018, 0x2019, 0x2024, 0xfe52, 0xff07, 0xff0e)
	wsegSpaceTable = rangetable.New(0x0020, 0x1680, 0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005,
		0x2006, 0x2008, 0x2009, 0x200a, 0x205f, 0x3000)
	extendNumLetTable = rangetable.Merge(unicode.Pc, rangetable.New(0x202f))

	aTermTable     = rangetable.New(0x002e, 0x2024, 0xfe52, 0xff0e)
	closeTable     = rangetable.Merge(unicode.Ps, unicode.Pe, unicode.Pi, unicode.Pf, unicode.Quotation_Mark)
	sContinueTable = rangetable.New(0x002c, 0x002d, 0x003a, 0x055d, 0x060c, 0x060d, 0x07f8, 0x1802,
		0x1808, 0x2013, 0x2014, 0x3001, 0xfe10, 0xfe11, 0xfe13, 0xfe31, 0xfe32, 0xfe50, 0xfe51,
		0xfe55, 0xfe58, 0xfe63, 0xff0c, 0xff0d, 0xff1a, 0xff64)
)

// extendedPictographic lists the Extended_Pictographic code point ranges
// (emoji-data.txt). Each entry is [first, last, property].
var extendedPictographic = [][3]int{
	{0x00a9, 0x00a9, prExtendedPictographic},
	{0x00ae, 0x00ae, prExtendedPictographic},
	{0x203c, 0x203c, prExtendedPictographic},
	{0x2049, 0x2049, prExtendedPictographic},
	{0x2122, 0x2122, prExtendedPictographic},
	{0x2139, 0x2139, prExtendedPictographic},
	{0x2194, 0x2199, prExtendedPictographic},
	{0x21a9, 0x21aa, prExtendedPictographic},
	{0x231a, 0x231b, prExtendedPictographic},
	{0x2328, 0x2328, prExtendedPictographic},
	{0x2388, 0x2388, prExtendedPictographic},
	{0x23cf, 0x23cf, prExtendedPictographic},
	{0x23e9, 0x23f3, prExtendedPictographic},
	{0x23f8, 0x23fa, prExtendedPictographic},
	{0x24c2, 0x24c2, prExtendedPictographic},
	{0x25aa, 0x25ab, prExtendedPictographic},
	{0x25b6, 0x25b6, prExtendedPictographic},
	{0x25c0, 0x25c0, prExtendedPictographic},
	{0x25fb, 0x25fe, prExtendedPictographic},
	{0x2600, 0x2605, prExtendedPictographic},
	{0x2607, 0x2612, prExtendedPictographic},
	{0x2614, 0x2685, prExtendedPictographic},
	{0x2690, 0x2705, prExtendedPictographic},
	{0x2708, 0x2712, prExtendedPictographic},
	{0x2714, 0x2714, prExtendedPictographic},
	{0x2716, 0x2716, prExtendedPictographic},
	{0x271d, 0x271d, prExtendedPictographic},
	{0x2721, 0x2721, prExtendedPictographic},
	{0x2728, 0x2728, prExtendedPictographic},
	{0x2733, 0x2734, prExtendedPictographic},
	{0x2744, 0x2744, prExtendedPictographic},
	{0x2747, 0x2747, prExtendedPictographic},
	{0x274c, 0x274c, prExtendedPictographic},
	{0x274e, 0x274e, prExtendedPictographic},
	{0x2753, 0x2755, prExtendedPictographic},
	{0x2757, 0x2757, prExtendedPictographic},
	{0x2763, 0x2767, prExtendedPictographic},
	{0x2795, 0x2797, prExtendedPictographic},
	{0x27a1, 0x27a1, prExtendedPictographic},
	{0x27b0, 0x27b0, prExtendedPictographic},
	{0x27bf, 0x27bf, prExtendedPictographic},
	{0x2934, 0x2935, prExtendedPictographic},
	{0x2b05, 0x2b07, prExtendedPictographic},
	{0x2b1b, 0x2b1c, prExtendedPictographic},
	{0x2b50, 0x2b50, prExtendedPictographic},
	{0x2b55, 0x2b55, prExtendedPictographic},
	{0x3030, 0x3030, prExtendedPictographic},
	{0x303d, 0x303d, prExtendedPictographic},
	{0x3297, 0x3297, prExtendedPictographic},
	{0x3299, 0x3299, prExtendedPictographic},
	{0x1f000, 0x1f0ff, prExtendedPictographic},
	{0x1f10d, 0x1f10f, prExtendedPictographic},
	{0x1f12f, 0x1f12f, prExtendedPictographic},
	{0x1f16c, 0x1f171, prExtendedPictographic},
	{0x1f17e, 0x1f17f, prExtendedPictographic},
	{0x1f18e, 0x1f18e, prExtendedPictographic},
	{0x1f191, 0x1f19a, prExtendedPictographic},
	{0x1f1ad, 0x1f1e5, prExtendedPictographic},
	{0x1f201, 0x1f20f, prExtendedPictographic},
	{0x1f21a, 0x1f21a, prExtendedPictographic},
	{0x1f22f, 0x1f22f, prExtendedPictographic},
	{0x1f232, 0x1f23a, prExtendedPictographic},
	{0x1f23c, 0x1f23f, prExtendedPictographic},
	{0x1f249, 0x1f3fa, prExtendedPictographic},
	{0x1f400, 0x1f53d, prExtendedPictographic},
	{0x1f546, 0x1f64f, prExtendedPictographic},
	{0x1f680, 0x1f6ff, prExtendedPictographic},
	{0x1f774, 0x1f77f, prExtendedPictographic},
	{0x1f7d5, 0x1f7ff, prExtendedPictographic},
	{0x1f80c, 0x1f80f, prExtendedPictographic},
	{0x1f848, 0x1f84f, prExtendedPictographic},
	{0x1f85a, 0x1f85f, prExtendedPictographic},
	{0x1f888, 0x1f88f, prExtendedPictographic},
	{0x1f8ae, 0x1f8ff, prExtendedPictographic},
	{0x1f90c, 0x1f93a, prExtendedPictographic},
	{0x1f93c, 0x1f945, prExtendedPictographic},
	{0x1f947, 0x1faff, prExtendedPictographic},
	{0x1fc00, 0x1fffd, prExtendedPictographic},
}

// incbCodePoints lists the Indic_Conjunct_Break=Linker and =Consonant code
// points. InCB=Extend is derived from Grapheme_Extend in [propertyInCB].
var incbCodePoints = [][3]int{
	{0x0915, 0x0939, prInCBConsonant}, // Devanagari
	{0x094d, 0x094d, prInCBLinker},
	{0x0958, 0x095f, prInCBConsonant},
	{0x0978, 0x097f, prInCBConsonant},
	{0x0995, 0x09a8, prInCBConsonant}, // Bengali
	{0x09aa, 0x09b0, prInCBConsonant},
	{0x09b2, 0x09b2, prInCBConsonant},
	{0x09b6, 0x09b9, prInCBConsonant},
	{0x09cd, 0x09cd, prInCBLinker},
	{0x09dc, 0x09dd, prInCBConsonant},
	{0x09df, 0x09df, prInCBConsonant},
	{0x09f0, 0x09f1, prInCBConsonant},
	{0x0a95, 0x0aa8, prInCBConsonant}, // Gujarati
	{0x0aaa, 0x0ab0, prInCBConsonant},
	{0x0ab2, 0x0ab3, prInCBConsonant},
	{0x0ab5, 0x0ab9, prInCBConsonant},
	{0x0acd, 0x0acd, prInCBLinker},
	{0x0af9, 0x0af9, prInCBConsonant},
	{0x0b15, 0x0b28, prInCBConsonant}, // Oriya
	{0x0b2a, 0x0b30, prInCBConsonant},
	{0x0b32, 0x0b33, prInCBConsonant},
	{0x0b35, 0x0b39, prInCBConsonant},
	{0x0b4d, 0x0b4d, prInCBLinker},
	{0x0b5c, 0x0b5d, prInCBConsonant},
	{0x0b5f, 0x0b5f, prInCBConsonant},
	{0x0b71, 0x0b71, prInCBConsonant},
	{0x0c15, 0x0c28, prInCBConsonant}, // Telugu
	{0x0c2a, 0x0c39, prInCBConsonant},
	{0x0c4d, 0x0c4d, prInCBLinker},
	{0x0c58, 0x0c5a, prInCBConsonant},
	{0x0d15, 0x0d3a, prInCBConsonant}, // Malayalam
	{0x0d4d, 0x0d4d, prInCBLinker},
}

// propertySearch performs a binary search on a sorted property table.
// Each entry is [startCodePoint, endCodePoint, property].
// Returns the matching entry, or zero-initialized entry if not found.
func propertySearch(dictionary [][3]int, r rune) (result [3]int) {
	from := 0
	to := len(dictionary)
	for to > from {
		middle := (from + to) / 2
		cpRange := dictionary[middle]
		if int(r) < cpRange[0] {
			to = middle
			continue
		}
		if int(r) > cpRange[1] {
			from = middle + 1
			continue
		}
		return cpRange
	}
	return
}

// isExtendedPictographic reports whether r has the Extended_Pictographic
// property.
func isExtendedPictographic(r rune) bool {
	return r >= 0xa9 && propertySearch(extendedPictographic, r)[2] == prExtendedPictographic
}

// isGraphemeExtend reports whether r belongs to the Extend class shared by
// all three segmenters: Grapheme_Extend plus the emoji modifiers.
func isGraphemeExtend(r rune) bool {
	return unicode.Is(graphemeExtend, r) || unicode.Is(emojiModifier, r)
}

// hangulSyllable classifies precomposed Hangul syllables, which are laid out
// algorithmically: every 28th syllable has no trailing consonant.
func hangulSyllable(r rune) int {
	if (r-0xac00)%28 == 0 {
		return prLV
	}
	return prLVT
}

// propertyGraphemes returns the Unicode grapheme cluster property value of the
// given code point while fast tracking ASCII characters.
func propertyGraphemes(r rune) int {
	if r >= 0x20 && r <= 0x7e {
		return prAny
	}
	if r == 0x0a {
		return prLF
	}
	if r == 0x0d {
		return prCR
	}
	if r >= 0 && r <= 0x1f || r == 0x7f {
		return prControl
	}
	switch {
	case r == 0x200d:
		return prZWJ
	case r >= 0x1f1e6 && r <= 0x1f1ff:
		return prRegionalIndicator
	case r >= 0xac00 && r <= 0xd7a3:
		return hangulSyllable(r)
	case r >= 0x1100 && r <= 0x115f, r >= 0xa960 && r <= 0xa97c:
		return prL
	case r >= 0x1160 && r <= 0x11a7, r >= 0xd7b0 && r <= 0xd7c6:
		return prV
	case r >= 0x11a8 && r <= 0x11ff, r >= 0xd7cb && r <= 0xd7fb:
		return prT
	case isGraphemeExtend(r):
		return prExtend
	case unicode.Is(prependTable, r):
		return prPrepend
	case unicode.Is(control, r):
		return prControl
	case r == 0x0e33 || r == 0x0eb3:
		return prSpacingMark
	case unicode.Is(unicode.Mc, r) && !unicode.Is(spacingMarkExceptions, r):
		return prSpacingMark
	case isExtendedPictographic(r):
		return prExtendedPictographic
	}
	return prAny
}

// propertyInCB returns the Indic_Conjunct_Break property value for the given
// code point. This is used for the GB9c grapheme cluster boundary rule.
func propertyInCB(r rune) int {
	// Fast track ASCII and Latin - no InCB properties
	if r < 0x0300 {
		return prInCBNone
	}
	if p := propertySearch(incbCodePoints, r)[2]; p != 0 {
		return p
	}
	if r == 0x200d || isGraphemeExtend(r) {
		return prInCBExtend
	}
	return prInCBNone
}

// propertyWords returns the Unicode word break property value of the given
// code point while fast tracking ASCII letters and digits.
func propertyWords(r rune) int {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return prALetter
	case r >= '0' && r <= '9':
		return prNumeric
	case r == ' ':
		return prWSegSpace
	case r == '\n':
		return prLF
	case r == '\r':
		return prCR
	case r == 0x0b, r == 0x0c, r == 0x85, r == 0x2028, r == 0x2029:
		return prNewline
	case r == '_':
		return prExtendNumLet
	case r == '\'':
		return prSingleQuote
	case r == '"':
		return prDoubleQuote
	case r < 0x80 && unicode.Is(midNumLetTable, r):
		return prMidNumLet
	case r < 0x80 && unicode.Is(midLetterTable, r):
		return prMidLetter
	case r < 0x80 && unicode.Is(midNumTable, r):
		return prMidNum
	case r < 0x80:
		return prAny
	case r == 0x200d:
		return prZWJ
	case r >= 0x1f1e6 && r <= 0x1f1ff:
		return prRegionalIndicator
	case isGraphemeExtend(r), unicode.Is(unicode.Mc, r):
		return prExtend
	case unicode.Is(unicode.Cf, r):
		if r == 0x200b || r == 0x200c {
			return prAny
		}
		return prFormat
	case unicode.Is(katakanaTable, r):
		return prKatakana
	case unicode.Is(unicode.Hebrew, r) && unicode.Is(unicode.Lo, r):
		return prHebrewLetter
	case unicode.Is(wsegSpaceTable, r):
		return prWSegSpace
	case unicode.Is(midNumLetTable, r):
		return prMidNumLet
	case unicode.Is(midLetterTable, r):
		return prMidLetter
	case unicode.Is(midNumTable, r):
		return prMidNum
	case r == 0x066b:
		return prNumeric
	case unicode.Is(unicode.Nd, r):
		return prNumeric
	case unicode.Is(extendNumLetTable, r):
		return prExtendNumLet
	case unicode.Is(alphabetic, r):
		if unicode.Is(unicode.Ideographic, r) || unicode.Is(unicode.Hiragana, r) || unicode.Is(complexContext, r) {
			return prAny
		}
		return prALetter
	case r == 0x05f3:
		return prALetter
	}
	return prAny
}

// propertySentences returns the Unicode sentence break property value of the
// given code point while fast tracking ASCII characters.
func propertySentences(r rune) int {
	if r < 0x80 {
		switch {
		case r >= 'a' && r <= 'z':
			return prLower
		case r >= 'A' && r <= 'Z':
			return prUpper
		case r >= '0' && r <= '9':
			return prNumeric
		case r == '\n':
			return prLF
		case r == '\r':
			return prCR
		case r == ' ', r == '\t', r == 0x0b, r == 0x0c:
			return prSp
		case r == '.':
			return prATerm
		case r == '!', r == '?':
			return prSTerm
		case r == '"', r == '\'', r == '(', r == ')', r == '[', r == ']', r == '{', r == '}':
			return prClose
		case r == ',', r == '-', r == ':':
			return prSContinue
		}
		return prAny
	}
	switch {
	case r == 0x85, r == 0x2028, r == 0x2029:
		return prSep
	case r == 0x200d, isGraphemeExtend(r), unicode.Is(unicode.Mc, r):
		return prExtend
	case unicode.Is(unicode.Cf, r):
		if r == 0x200c {
			return prExtend
		}
		return prFormat
	case unicode.Is(unicode.White_Space, r):
		return prSp
	case unicode.Is(lowercase, r):
		return prLower
	case unicode.Is(uppercase, r):
		return prUpper
	case unicode.Is(alphabetic, r), r == 0x05f3:
		return prOLetter
	case unicode.Is(unicode.Nd, r), r == 0x066b, r == 0x066c:
		return prNumeric
	case unicode.Is(aTermTable, r):
		return prATerm
	case unicode.Is(unicode.Sentence_Terminal, r):
		return prSTerm
	case unicode.Is(closeTable, r):
		return prClose
	case unicode.Is(sContinueTable, r):
		return prSContinue
	}
	return prAny
}

// isWordCharacter reports whether r counts as a word character when
// filtering word segments.
func isWordCharacter(r rune) bool {
	if r < 0x80 {
		return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_'
	}
	return unicode.Is(wordCharacter, r)
}
