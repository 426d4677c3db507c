package main

import "github.com/scalecode-solutions/bstr"

// matcher reports whether a line contains the query, honouring the case
// and whole-word options.
type matcher struct {
	query  []byte
	finder *bstr.Finder
	fold   bool
	word   bool
}

func newMatcher(query []byte, opts options) *matcher {
	return &matcher{
		query:  query,
		finder: bstr.NewFinder(query),
		fold:   opts.ignoreCase,
		word:   opts.wordRegexp,
	}
}

func (m *matcher) match(line []byte) bool {
	if !m.word {
		if m.fold {
			return bstr.ContainsFold(line, m.query)
		}
		return m.finder.Find(line) >= 0
	}
	if len(m.query) == 0 {
		return true
	}

	var bounds map[int]bool
	for at := range m.occurrences(line) {
		if bounds == nil {
			bounds = wordBoundaries(line)
		}
		if !bounds[at] {
			continue
		}
		if !m.fold {
			if bounds[at+len(m.query)] {
				return true
			}
			continue
		}
		// A case-folded match may differ in length from the query.
		for end := at + 1; end <= len(line); end++ {
			if bounds[end] && bstr.EqualFold(line[at:end], m.query) {
				return true
			}
		}
	}
	return false
}

// occurrences yields the start offsets of the query in line.
func (m *matcher) occurrences(line []byte) func(yield func(int) bool) {
	return func(yield func(int) bool) {
		pos := 0
		for pos <= len(line) {
			var i int
			if m.fold {
				i = bstr.FindFold(line[pos:], m.query)
			} else {
				i = m.finder.Find(line[pos:])
			}
			if i < 0 || !yield(pos+i) {
				return
			}
			_, size := bstr.DecodeLossy(line[pos+i:])
			pos += i + max(size, 1)
		}
	}
}

// wordBoundaries returns the set of word boundary offsets of line,
// including 0 and len(line).
func wordBoundaries(line []byte) map[int]bool {
	bounds := map[int]bool{0: true, len(line): true}
	segments := bstr.WordsWithBreakIndices(line)
	for seg := range segments.All() {
		bounds[seg.End] = true
	}
	return bounds
}
