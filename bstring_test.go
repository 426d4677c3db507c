package bstr

import (
	"errors"
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBStringMutation(t *testing.T) {
	s := BStringFrom("h\u00e9llo")
	s.PushByte('!')
	s.PushChar('😀')
	s.PushChar(-1)
	assert.Equal(t, "h\u00e9llo!😀\uFFFD", string(s.Bytes()))

	r, ok := s.PopChar()
	require.True(t, ok)
	assert.Equal(t, utf8.RuneError, r)
	r, _ = s.PopChar()
	assert.Equal(t, '😀', r)
	c, _ := s.PopByte()
	assert.Equal(t, byte('!'), c)

	assert.Equal(t, '\u00e9', s.RemoveChar(1))
	assert.Equal(t, "hllo", s.String())

	s.InsertChar(1, 'e')
	s.InsertStr(0, []byte(">> "))
	assert.Equal(t, ">> hello", s.String())

	s.ReplaceRange(0, 3, []byte("["))
	assert.Equal(t, "[hello", s.String())
	assert.Equal(t, []byte("hel"), s.DrainBytes(1, 4))
	assert.Equal(t, "[lo", s.String())

	s.Truncate(10)
	assert.Equal(t, 3, s.Len())
	s.Truncate(1)
	assert.Equal(t, "[", s.String())
	s.Reset()
	assert.Zero(t, s.Len())

	_, ok = s.PopChar()
	assert.False(t, ok)
	_, ok = s.PopByte()
	assert.False(t, ok)
}

func TestBStringPopsInvalidSubparts(t *testing.T) {
	s := NewBString([]byte("a\xF0\x9F\x87"))
	r, ok := s.PopChar()
	require.True(t, ok)
	assert.Equal(t, utf8.RuneError, r)
	assert.Equal(t, "a", string(s.Bytes()))
}

func TestBStringPanics(t *testing.T) {
	s := BStringFrom("abc")
	assert.Panics(t, func() { s.RemoveChar(3) })
	assert.Panics(t, func() { s.InsertStr(4, []byte("x")) })
	assert.Panics(t, func() { s.ReplaceRange(2, 1, nil) })
	assert.Panics(t, func() { s.DrainBytes(0, 4) })
	assert.Equal(t, "abc", s.String())
}

func TestBStringFromCopies(t *testing.T) {
	b := []byte("abc")
	s := BStringFrom(b)
	b[0] = 'x'
	assert.Equal(t, "abc", s.String())

	owned := NewBString(b)
	b[1] = 'y'
	assert.Equal(t, "xyc", owned.String())
}

func TestIntoString(t *testing.T) {
	s := BStringFrom("valid")
	str, err := s.IntoString()
	require.NoError(t, err)
	assert.Equal(t, "valid", str)
	assert.Zero(t, s.Len())

	s = BStringFrom("bad\xFF")
	_, err = s.IntoString()
	var ferr *FromUtf8Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, []byte("bad\xFF"), ferr.Bytes())
	assert.Equal(t, 3, ferr.Utf8Error().ValidUpTo())
	assert.True(t, errors.Is(err, ErrInvalidUTF8))
	assert.Equal(t, 4, s.Len())

	assert.Equal(t, "bad�", s.IntoStringLossy())
	assert.Zero(t, s.Len())
}

func TestBStr(t *testing.T) {
	v := BStrFrom("  Gr\u00fc\u00dfe, Welt\xFF  ")
	assert.Equal(t, 18, v.Len())
	assert.False(t, v.IsUTF8())
	assert.Equal(t, "Grüße, Welt\xFF", string(v.Trim().Bytes()))
	assert.Equal(t, 2, v.Find([]byte("Gr")))
	assert.Equal(t, 11, v.RFind([]byte("W")))
	assert.True(t, v.Contains([]byte("ße")))
	assert.True(t, v.HasPrefix([]byte("  ")))
	assert.True(t, v.HasSuffix([]byte("\xFF  ")))
	assert.Equal(t, "  grüße, welt\xFF  ", string(v.ToLower()))
	assert.Equal(t, "  GRÜSSE, WELT\xFF  ", string(v.ToUpper()))

	_, err := v.ToStr()
	assert.Error(t, err)
	s, borrowed := v.ToStrLossy()
	assert.False(t, borrowed)
	assert.Equal(t, "  Grüße, Welt�  ", s)

	assert.Equal(t, []string{"Grüße", "Welt"}, collectSegments(v.Words()))
	// Sentences never extend over invalid bytes.
	assert.Equal(t, []string{"  Gr\u00fc\u00dfe, Welt", replacement, "  "}, collectSegments(v.Sentences()))
	assert.Equal(t, 16, len(collectSegments(v.Graphemes())))

	var chars int
	for range v.Chars().All() {
		chars++
	}
	assert.Equal(t, 16, chars)
}

func TestBStrFormat(t *testing.T) {
	v := NewBStr([]byte("a\"b\xFF"))
	assert.Equal(t, "a\"b�", fmt.Sprint(v))
	assert.Equal(t, "a\"b�", fmt.Sprintf("%v", v))
	assert.Equal(t, `"a\"b\xFF"`, fmt.Sprintf("%q", v))
	assert.Equal(t, "612262ff", fmt.Sprintf("%x", v))
	assert.Equal(t, "61 22 62 ff", fmt.Sprintf("% x", v))
}

func TestPath(t *testing.T) {
	p, err := FromPath("/tmp/data.txt").ToPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/data.txt", p)

	_, err = NewBStr([]byte("/tmp/\xFF")).ToPath()
	assert.ErrorIs(t, err, ErrPathNotUTF8)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Equal(t, "/tmp/�", NewBStr([]byte("/tmp/\xFF")).ToPathLossy())
}

func TestLastByte(t *testing.T) {
	c, ok := LastByte([]byte("ab"))
	assert.True(t, ok)
	assert.Equal(t, byte('b'), c)
	_, ok = LastByte(nil)
	assert.False(t, ok)
}
