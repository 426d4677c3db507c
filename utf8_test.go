package bstr

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		r     rune
		size  int
		ok    bool
	}{
		{"empty", "", utf8.RuneError, 0, false},
		{"ascii", "abc", 'a', 1, true},
		{"two bytes", "é", 'é', 2, true},
		{"four bytes", "💩!", '💩', 4, true},
		{"lone continuation", "\x80abc", utf8.RuneError, 1, false},
		{"truncated prefix", "\xF0\x9F\x92", utf8.RuneError, 3, false},
		{"broken prefix", "\xF0\x9F\x92a", utf8.RuneError, 3, false},
		{"surrogate", "\xED\xA0\x80", utf8.RuneError, 1, false},
		{"overlong", "\xC0\xAF", utf8.RuneError, 1, false},
		{"too large", "\xF4\x90\x80\x80", utf8.RuneError, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, size, ok := Decode([]byte(tt.input))
			assert.Equal(t, tt.r, r)
			assert.Equal(t, tt.size, size)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestDecodeLast(t *testing.T) {
	tests := []struct {
		name  string
		input string
		r     rune
		size  int
		ok    bool
	}{
		{"empty", "", utf8.RuneError, 0, false},
		{"ascii", "abc", 'c', 1, true},
		{"four bytes", "!💩", '💩', 4, true},
		{"truncated", "a\xF0\x9F\x92", utf8.RuneError, 3, false},
		{"lone continuation", "abc\x80", utf8.RuneError, 1, false},
		{"extra continuation", "💩\x80", utf8.RuneError, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, size, ok := DecodeLast([]byte(tt.input))
			assert.Equal(t, tt.r, r)
			assert.Equal(t, tt.size, size)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestDecodeLossyReplacesMaximalSubparts(t *testing.T) {
	// One replacement per maximal subpart: "\xF0\x9F\x87" is a single
	// truncated sequence, "\x80" and "\xFF" are one each.
	b := []byte("a\xF0\x9F\x87b\x80\xFFc")
	var got []rune
	var sizes []int
	for len(b) > 0 {
		r, size := DecodeLossy(b)
		got = append(got, r)
		sizes = append(sizes, size)
		b = b[size:]
	}
	assert.Equal(t, []rune{'a', utf8.RuneError, 'b', utf8.RuneError, utf8.RuneError, 'c'}, got)
	assert.Equal(t, []int{1, 3, 1, 1, 1, 1}, sizes)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate([]byte("hello, 世界")))
	require.NoError(t, Validate(nil))

	err := Validate([]byte("hello\xFF"))
	var uerr *Utf8Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, 5, uerr.ValidUpTo())
	n, ok := uerr.ErrorLen()
	assert.True(t, ok)
	assert.Equal(t, 1, n)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Equal(t, "invalid UTF-8 found at byte offset 5", err.Error())

	// A truncated sequence at the end is still a concrete error.
	err = Validate([]byte("ab\xE2\x98"))
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, 2, uerr.ValidUpTo())
	n, ok = uerr.ErrorLen()
	assert.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestValidateStream(t *testing.T) {
	err := ValidateStream([]byte("ab\xE2\x98"))
	var uerr *Utf8Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, 2, uerr.ValidUpTo())
	_, ok := uerr.ErrorLen()
	assert.False(t, ok)

	// Invalid bytes in the middle are reported as usual.
	err = ValidateStream([]byte("ab\xE2\x98x"))
	require.ErrorAs(t, err, &uerr)
	n, ok := uerr.ErrorLen()
	assert.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestValidateAgreesWithStdlib(t *testing.T) {
	inputs := []string{
		"", "plain", "\xC3", "\xC3\xA9", "\xE0\x80\x80", "\xED\x9F\xBF",
		"\xED\xA0\x80", "\xF0\x90\x80\x80", "\xF4\x8F\xBF\xBF", "\xF5\x80\x80\x80",
		strings.Repeat("abc", 40) + "\xFE",
	}
	for _, in := range inputs {
		assert.Equal(t, utf8.ValidString(in), IsUTF8([]byte(in)), "%q", in)
	}
}

func TestValidateAgreesWithLossyBorrow(t *testing.T) {
	inputs := []string{"", "ascii", "caf\u00e9", "\xC3", "ok\xFF", "\xF0\x9F\x98\x80", "\xED\xA0\x80"}
	for _, in := range inputs {
		_, borrowed := ToStrLossy([]byte(in))
		assert.Equal(t, Validate([]byte(in)) == nil, borrowed, "%q", in)
	}
}

func TestToStrLossy(t *testing.T) {
	s, borrowed := ToStrLossy([]byte("valid"))
	assert.Equal(t, "valid", s)
	assert.True(t, borrowed)

	s, borrowed = ToStrLossy([]byte("a\xF0\x9F\x87b\xFF"))
	assert.Equal(t, "a\uFFFDb\uFFFD", s)
	assert.False(t, borrowed)

	assert.Equal(t, []byte("x:\uFFFD"), ToStrLossyInto([]byte("x:"), []byte{0x80}))
}

func TestToStr(t *testing.T) {
	s, err := ToStr([]byte("ok"))
	require.NoError(t, err)
	assert.Equal(t, "ok", s)

	_, err = ToStr([]byte{'o', 0xC0})
	assert.True(t, errors.Is(err, ErrInvalidUTF8))
}

func TestUtf8Chunks(t *testing.T) {
	var chunks []Utf8Chunk
	for c := range Utf8Chunks([]byte("ab\xFFcd\xE2\x98")).All() {
		chunks = append(chunks, c)
	}
	require.Len(t, chunks, 2)
	assert.Equal(t, "ab", chunks[0].Valid)
	assert.Equal(t, []byte{0xFF}, chunks[0].Invalid)
	assert.False(t, chunks[0].Incomplete)
	assert.Equal(t, "cd", chunks[1].Valid)
	assert.Equal(t, []byte{0xE2, 0x98}, chunks[1].Invalid)
	assert.True(t, chunks[1].Incomplete)

	chunks = chunks[:0]
	for c := range Utf8Chunks([]byte("tail")).All() {
		chunks = append(chunks, c)
	}
	assert.Equal(t, []Utf8Chunk{{Valid: "tail"}}, chunks)

	_, ok := Utf8Chunks(nil).Next()
	assert.False(t, ok)
}

func TestASCII(t *testing.T) {
	assert.True(t, IsASCII([]byte("plain text")))
	assert.False(t, IsASCII([]byte("naïve")))
	assert.Equal(t, 2, FindNonASCIIByte([]byte("naïve")))
	assert.Equal(t, -1, FindNonASCIIByte(nil))
}

func TestChars(t *testing.T) {
	b := []byte("a\xFFé💩")
	var forward []rune
	for r := range Chars(b).All() {
		forward = append(forward, r)
	}
	assert.Equal(t, []rune{'a', utf8.RuneError, 'é', '💩'}, forward)

	it := Chars(b)
	var backward []rune
	for {
		r, ok := it.NextBack()
		if !ok {
			break
		}
		backward = append(backward, r)
	}
	assert.Equal(t, []rune{'💩', 'é', utf8.RuneError, 'a'}, backward)

	// Meeting in the middle.
	it = Chars(b)
	r, _ := it.Next()
	assert.Equal(t, 'a', r)
	r, _ = it.NextBack()
	assert.Equal(t, '💩', r)
	assert.Equal(t, []byte("\xFFé"), it.Rest())
}

func TestCharIndices(t *testing.T) {
	var got []CharIndex
	for ci := range CharIndices([]byte("a\xF0\x9F\x87é")).All() {
		got = append(got, ci)
	}
	assert.Equal(t, []CharIndex{
		{Start: 0, End: 1, Char: 'a'},
		{Start: 1, End: 4, Char: utf8.RuneError},
		{Start: 4, End: 6, Char: 'é'},
	}, got)

	it := CharIndices([]byte("xé"))
	last, ok := it.NextBack()
	require.True(t, ok)
	assert.Equal(t, CharIndex{Start: 1, End: 3, Char: 'é'}, last)
}
