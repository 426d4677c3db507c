package bstr

import "iter"

// Utf8Chunk is a maximal run of valid UTF-8 followed by the invalid bytes
// that ended it.
type Utf8Chunk struct {
	// Valid is the valid UTF-8 prefix of the chunk. It shares memory with
	// the input.
	Valid string

	// Invalid holds the bytes of one maximal invalid subpart (at most 3
	// bytes). It is empty only for the final chunk.
	Invalid []byte

	// Incomplete reports whether Invalid is a truncated sequence at the
	// very end of the input, one that more bytes could have completed.
	Incomplete bool
}

// Utf8ChunkIter yields the [Utf8Chunk]s of a byte string.
type Utf8ChunkIter struct {
	b []byte
}

// Utf8Chunks returns an iterator splitting b into chunks of valid UTF-8,
// each followed by at most one maximal invalid subpart. Concatenating the
// Valid and Invalid fields of all chunks reproduces b.
func Utf8Chunks(b []byte) *Utf8ChunkIter {
	return &Utf8ChunkIter{b: b}
}

// Next returns the next chunk. ok is false once the input is exhausted.
func (it *Utf8ChunkIter) Next() (chunk Utf8Chunk, ok bool) {
	if len(it.b) == 0 {
		return Utf8Chunk{}, false
	}
	b := it.b
	i := 0
	for i < len(b) {
		if b[i] < 0x80 {
			i++
			continue
		}
		_, size, status := decodeStep(b[i:])
		if status == decodeOK {
			i += size
			continue
		}
		chunk = Utf8Chunk{
			Valid:      viewString(b[:i]),
			Invalid:    b[i : i+size],
			Incomplete: status == decodeIncomplete,
		}
		it.b = b[i+size:]
		return chunk, true
	}
	it.b = nil
	return Utf8Chunk{Valid: viewString(b)}, true
}

// All returns the remaining chunks as a sequence.
func (it *Utf8ChunkIter) All() iter.Seq[Utf8Chunk] {
	return seqOf(it.Next)
}
