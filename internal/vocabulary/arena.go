// Package vocabulary builds the byte expansion of every token id in a
// merge table into a single shared arena, grounded on
// _examples/original_source/src/bpe_tokenizer.c (bpe_vocab_build).
package vocabulary

// TokenView is a borrowed {offset, length} view into an Arena's bytes.
type TokenView struct {
	Offset int
	Length int
}

// Arena holds the byte expansion of every token id 0..vocabSize-1,
// contiguous in a single allocation: the 256 single-byte tokens occupy
// the first 256 bytes, followed by each derived token's bytes in
// merge-table order.
type Arena struct {
	Bytes  []byte
	Tokens []TokenView
}

// Pair is the minimal view of a merge-table entry this package needs:
// the ids of the two tokens being merged.
type Pair struct {
	First  uint64
	Second uint64
}

// Build constructs an Arena for vocabSize = 256 + len(merges) tokens,
// in two passes exactly as the original bpe_vocab_build does: first
// compute each derived token's expansion length, then allocate the
// arena once and copy every expansion into it.
func Build(merges []Pair) *Arena {
	k := len(merges)

	sizes := make([]int, k) // sizes[i] is the byte length of token 256+i
	total := 256
	for i, m := range merges {
		sizes[i] = expansionLength(m.First, sizes) + expansionLength(m.Second, sizes)
		total += sizes[i]
	}

	arena := &Arena{
		Bytes:  make([]byte, total),
		Tokens: make([]TokenView, 256+k),
	}

	for b := 0; b < 256; b++ {
		arena.Bytes[b] = byte(b)
		arena.Tokens[b] = TokenView{Offset: b, Length: 1}
	}

	cursor := 256
	for i, m := range merges {
		firstView := arena.Tokens[m.First]
		secondView := arena.Tokens[m.Second]

		copy(arena.Bytes[cursor:], arena.Bytes[firstView.Offset:firstView.Offset+firstView.Length])
		copy(arena.Bytes[cursor+firstView.Length:], arena.Bytes[secondView.Offset:secondView.Offset+secondView.Length])

		length := firstView.Length + secondView.Length
		arena.Tokens[256+i] = TokenView{Offset: cursor, Length: length}
		cursor += length
	}

	return arena
}

// expansionLength returns the byte length a token id expands to: 1 for
// a raw byte id, or the already-computed size of a derived id.
func expansionLength(id uint64, sizes []int) int {
	if id < 256 {
		return 1
	}
	return sizes[id-256]
}
