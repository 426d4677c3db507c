package bstr

import (
	"testing"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		words []string
	}{
		{"simple", "foo bar baz", []string{"foo", "bar", "baz"}},
		{"punctuation", "The quick (\"brown\") fox can't jump 32.3 feet, right?",
			[]string{"The", "quick", "brown", "fox", "can't", "jump", "32.3", "feet", "right"}},
		{"numbers", "1,000.5 3.14", []string{"1,000.5", "3.14"}},
		{"underscore", "snake_case __init__", []string{"snake_case", "__init__"}},
		{"invalid", "ab\xFFcd", []string{"ab", "cd"}},
		{"emoji only", "👍 🇩🇪", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.words, collectSegments(Words([]byte(tt.input))))
		})
	}
}

func TestWordsWithBreaks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		segments []string
	}{
		{"simple", "foo bar baz", []string{"foo", " ", "bar", " ", "baz"}},
		{"spaces", "a  b", []string{"a", "  ", "b"}},
		{"crlf", "a\r\nb", []string{"a", "\r\n", "b"}},
		{"comma", "Hello, world!", []string{"Hello", ",", " ", "world", "!"}},
		{"mid letter", "e.g. x:y", []string{"e.g", ".", " ", "x:y"}},
		{"trailing mid letter", "a.", []string{"a", "."}},
		{"flags", "🇦🇧🇨", []string{"🇦🇧", "🇨"}},
		{"emoji zwj", "👨‍👩 x", []string{"👨‍👩", " ", "x"}},
		{"extend folds", "e\u0301\u0301t", []string{"e\u0301\u0301t"}},
		{"invalid", "ab\xFF\xFEcd", []string{"ab", replacement, replacement, "cd"}},
		{"katakana", "カタカナ漢字", []string{"カタカナ", "漢", "字"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.segments, collectSegments(WordsWithBreaks([]byte(tt.input))))
			assert.Equal(t, tt.segments, collectSegmentsBackward(WordsWithBreaks([]byte(tt.input))))
		})
	}
}

func TestDecodeWord(t *testing.T) {
	word, n := DecodeWord([]byte("can't stop"))
	assert.Equal(t, "can't", word)
	assert.Equal(t, 5, n)

	word, n = DecodeLastWord([]byte("can't stop"))
	assert.Equal(t, "stop", word)
	assert.Equal(t, 4, n)

	word, n = DecodeWord([]byte("\xE2\x98x"))
	assert.Equal(t, replacement, word)
	assert.Equal(t, 2, n)

	word, n = DecodeWord([]byte("\uff11\uff12\uff13 x"))
	assert.Equal(t, "\uff11\uff12\uff13", word)
	assert.Equal(t, 9, n)

	word, n = DecodeWord([]byte("7\uff11"))
	assert.Equal(t, "7\uff11", word)
	assert.Equal(t, 4, n)

	word, n = DecodeLastWord([]byte("a \uff10.\uff15"))
	assert.Equal(t, "\uff10.\uff15", word)
	assert.Equal(t, 7, n)

	word, n = DecodeLastWord(nil)
	assert.Equal(t, "", word)
	assert.Equal(t, 0, n)
}

func TestWordIndices(t *testing.T) {
	var got []Segment
	for seg := range WordIndices([]byte("¿Qué tal?")).All() {
		got = append(got, seg)
	}
	assert.Equal(t, []Segment{
		{Start: 2, End: 6, Text: "Qué"},
		{Start: 7, End: 10, Text: "tal"},
	}, got)
}

func TestWordsAgainstUniseg(t *testing.T) {
	for _, text := range segmentationCorpus {
		var want []string
		rest, state := text, -1
		for len(rest) > 0 {
			var word string
			word, rest, state = uniseg.FirstWordInString(rest, state)
			want = append(want, word)
		}
		assert.Equal(t, want, collectSegments(WordsWithBreaks([]byte(text))), "%q", text)
	}
}
