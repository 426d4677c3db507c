package bstr

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepResult struct {
	cluster   string
	width     int
	word      bool
	sentence  bool
	lineBreak int
}

func stepAll(s string) []stepResult {
	var (
		out        []stepResult
		c          string
		boundaries int
		state      State
	)
	for len(s) > 0 {
		c, s, boundaries, state = StepString(s, state)
		out = append(out, stepResult{
			cluster:   c,
			width:     boundaries >> ShiftWidth,
			word:      boundaries&MaskWord != 0,
			sentence:  boundaries&MaskSentence != 0,
			lineBreak: boundaries & MaskLine,
		})
	}
	return out
}

func TestStep(t *testing.T) {
	got := stepAll("Hi, 世界!\n")
	want := []stepResult{
		{"H", 1, false, false, LineDontBreak},
		{"i", 1, true, false, LineDontBreak},
		{",", 1, true, false, LineDontBreak},
		{" ", 1, true, false, LineCanBreak},
		{"世", 2, true, false, LineDontBreak},
		{"界", 2, true, false, LineDontBreak},
		{"!", 1, true, false, LineDontBreak},
		{"\n", 0, true, true, LineMustBreak},
	}
	assert.Equal(t, want, got)
}

func TestStepWidths(t *testing.T) {
	tests := []struct {
		cluster string
		width   int
	}{
		{"a", 1},
		{"\t", 0},
		{"🇩🇪", 2},
		{"🏳️‍🌈", 2},
		{"\u263a\ufe0e", 1},
		{"\u263a\ufe0f", 2},
		{"e\u0301", 1},
		{"\xFF", 1},
	}
	for _, tt := range tests {
		t.Run(tt.cluster, func(t *testing.T) {
			got := stepAll(tt.cluster)
			require.Len(t, got, 1)
			assert.Equal(t, tt.width, got[0].width)
		})
	}
}

func TestStepWordBoundariesMatchWordSegments(t *testing.T) {
	for _, text := range segmentationCorpus {
		var ends []int
		for seg := range WordsWithBreakIndices([]byte(text)).All() {
			ends = append(ends, seg.End)
		}
		var stepEnds []int
		pos := 0
		for _, r := range stepAll(text) {
			pos += len(r.cluster)
			if r.word {
				stepEnds = append(stepEnds, pos)
			}
		}
		assert.Equal(t, ends, stepEnds, "%q", text)
	}
}

func TestStepSentenceBoundariesMatchSentences(t *testing.T) {
	for _, text := range segmentationCorpus {
		var ends []int
		for seg := range SentenceIndices([]byte(text)).All() {
			ends = append(ends, seg.End)
		}
		var stepEnds []int
		pos := 0
		for _, r := range stepAll(text) {
			pos += len(r.cluster)
			if r.sentence {
				stepEnds = append(stepEnds, pos)
			}
		}
		assert.Equal(t, ends, stepEnds, "%q", text)
	}
}

func TestStepInvalid(t *testing.T) {
	got := stepAll("a\xFFb")
	require.Len(t, got, 3)
	assert.Equal(t, "\xFF", got[1].cluster)
	for _, r := range got {
		assert.True(t, r.word)
		assert.True(t, r.sentence)
	}
}

func TestStepEmpty(t *testing.T) {
	cluster, rest, boundaries, _ := Step(nil, State{})
	assert.Nil(t, cluster)
	assert.Nil(t, rest)
	assert.Zero(t, boundaries)
}

func TestStringWidth(t *testing.T) {
	assert.Equal(t, 11, StringWidth("Hello, 世界"))
	assert.Equal(t, 4, StringWidth("🇩🇪🏳️‍🌈"))
	assert.Equal(t, 0, StringWidth(""))
}

func scanAll(t *testing.T, input string, split bufio.SplitFunc) []string {
	t.Helper()
	// A tiny reader buffer forces tokens to straddle reads.
	scanner := bufio.NewScanner(&oneByteReader{s: input})
	scanner.Split(split)
	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	return tokens
}

type oneByteReader struct {
	s string
}

func (r *oneByteReader) Read(p []byte) (int, error) {
	if len(r.s) == 0 {
		return 0, io.EOF
	}
	n := copy(p[:1], r.s)
	r.s = r.s[n:]
	return n, nil
}

func TestScanners(t *testing.T) {
	for _, text := range segmentationCorpus {
		assert.Equal(t, collectSegments(Graphemes([]byte(text))), scanAll(t, text, ScanGraphemes), "%q", text)
		assert.Equal(t, collectSegments(WordsWithBreaks([]byte(text))), scanAll(t, text, ScanWords), "%q", text)
		assert.Equal(t, collectSegments(Sentences([]byte(text))), scanAll(t, text, ScanSentences), "%q", text)
	}
}

func TestScanAcrossSplitSequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		split bufio.SplitFunc
		want  []string
	}{
		{"mid letter", "a'\u00e9 b", ScanWords, []string{"a'\u00e9", " ", "b"}},
		{"hebrew quote", "\u05d5\"\u05d4", ScanWords, []string{"\u05d5\"\u05d4"}},
		{"decimal", "3.\u0661", ScanWords, []string{"3.\u0661"}},
		{"lowercase after abbreviation", "etc. \u00e9t\u00e9", ScanSentences, []string{"etc. \u00e9t\u00e9"}},
		{"combining mark", "e\u0301\u0301", ScanGraphemes, []string{"e\u0301\u0301"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanAll(t, tt.input, tt.split))
		})
	}
}

func TestTrimIncomplete(t *testing.T) {
	assert.Equal(t, "a", string(trimIncomplete([]byte("a\xF0\x9F\x98"))))
	assert.Equal(t, "a", string(trimIncomplete([]byte("a\xC3"))))
	assert.Equal(t, "a\u00e9", string(trimIncomplete([]byte("a\u00e9"))))
	assert.Equal(t, "a\x80", string(trimIncomplete([]byte("a\x80"))))
	assert.Equal(t, "\xF0\x9F\x98\x80", string(trimIncomplete([]byte("\xF0\x9F\x98\x80"))))
	assert.Empty(t, trimIncomplete(nil))
}

func TestScanLines(t *testing.T) {
	assert.Equal(t, []string{"a\r\n", "\n", "b"}, scanAll(t, "a\r\n\nb", ScanLines))
	assert.Nil(t, scanAll(t, "", ScanLines))
	assert.Equal(t, "a\nb\n", strings.Join(scanAll(t, "a\nb\n", ScanLines), ""))
}
