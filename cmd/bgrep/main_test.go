package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const text = "Hello world\nhello WORLD\nworldwide\nbyte \xFF soup\nHELLO again\nhello world\n"

func bgrep(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
		code int
	}{
		{"plain", []string{"hello"}, "hello WORLD\nhello world\n", 0},
		{"ignore case", []string{"-i", "hello"}, "Hello world\nhello WORLD\nHELLO again\nhello world\n", 0},
		{"long flag", []string{"--ignore-case", "HELLO"}, "Hello world\nhello WORLD\nHELLO again\nhello world\n", 0},
		{"word", []string{"-w", "world"}, "Hello world\nhello world\n", 0},
		{"word ignore case", []string{"-w", "-i", "world"}, "Hello world\nhello WORLD\nhello world\n", 0},
		{"invert", []string{"-v", "-i", "world"}, "byte \xFF soup\nHELLO again\n", 0},
		{"line numbers", []string{"-n", "again"}, "5:HELLO again\n", 0},
		{"count", []string{"-c", "world"}, "3\n", 0},
		{"unique", []string{"-u", "-i", "hello world"}, "Hello world\nhello WORLD\nhello world\n", 0},
		{"escape", []string{"-b", "soup"}, `byte \xFF soup` + "\n", 0},
		{"invalid query byte", []string{"\xFF"}, "byte \xFF soup\n", 0},
		{"quiet", []string{"-q", "world"}, "", 0},
		{"no match", []string{"absent"}, "", 1},
		{"no match count", []string{"-c", "absent"}, "0\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := bgrep(t, text, tt.args...)
			assert.Equal(t, tt.want, stdout)
			assert.Empty(t, stderr)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestRunUniqueAfterEscape(t *testing.T) {
	stdout, _, code := bgrep(t, "a\xFF\na\xFF\na\\xFF\n", "-u", "-b", "a")
	assert.Equal(t, 0, code)
	assert.Equal(t, "a\\xFF\na\\\\xFF\n", stdout)
}

func TestRunCaseInsensitiveEnv(t *testing.T) {
	t.Setenv("CASE_INSENSITIVE", "1")
	stdout, _, code := bgrep(t, text, "-c", "HELLO")
	assert.Equal(t, 0, code)
	assert.Equal(t, "4\n", stdout)
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(plain, []byte("alpha\nbeta\n"), 0o644))

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte("gamma\nalphabet\r\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	compressed := filepath.Join(dir, "packed.gz")
	require.NoError(t, os.WriteFile(compressed, buf.Bytes(), 0o644))

	stdout, _, code := bgrep(t, "", "-n", "alpha", plain, compressed)
	assert.Equal(t, 0, code)
	assert.Equal(t, plain+":1:alpha\n"+compressed+":2:alphabet\n", stdout)

	stdout, _, _ = bgrep(t, "", "-c", "a", plain, compressed)
	assert.Equal(t, plain+":2\n"+compressed+":2\n", stdout)

	stdout, stderr, code := bgrep(t, "", "alpha", plain, filepath.Join(dir, "missing"))
	assert.Equal(t, 2, code)
	assert.Equal(t, "alpha\n", strings.TrimPrefix(stdout, plain+":"))
	assert.Contains(t, stderr, "search failed")

	_, _, code = bgrep(t, "", "-q", "alpha", plain, filepath.Join(dir, "missing"))
	assert.Equal(t, 0, code)
}

func TestRunCompressedStdin(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	stdout, _, code := bgrep(t, buf.String(), "-c", "-i", "hello")
	assert.Equal(t, 0, code)
	assert.Equal(t, "4\n", stdout)

	stdout, _, _ = bgrep(t, text, "-n", "again", "-")
	assert.Equal(t, "5:HELLO again\n", stdout)
}

func TestRunUsage(t *testing.T) {
	_, stderr, code := bgrep(t, "")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage: bgrep")

	_, _, code = bgrep(t, "", "--no-such-flag", "x")
	assert.Equal(t, 2, code)

	stdout, _, code := bgrep(t, "a\xFF\n", "--escape", "a")
	assert.Equal(t, 0, code)
	assert.Equal(t, "a\\xFF\n", stdout)

	_, _, code = bgrep(t, "", "-e", "x")
	assert.Equal(t, 2, code)
}

func TestMatcherWordFold(t *testing.T) {
	m := newMatcher([]byte("\u00fcber"), options{wordRegexp: true, ignoreCase: true})
	assert.True(t, m.match([]byte("das \u00dcBER-Ding")))
	assert.False(t, m.match([]byte("\u00dcberall")))

	m = newMatcher([]byte("can"), options{wordRegexp: true})
	assert.False(t, m.match([]byte("can't")))
	assert.True(t, m.match([]byte("yes, can.")))
	assert.True(t, m.match([]byte("scan can")))
}
