package microbpe

import "github.com/agentstation/microbpe/internal/vocabulary"

// Vocabulary maps every token id 0..Size()-1 to the exact byte string
// it expands to, backed by a single shared arena (spec.md §4.5).
// Views returned by Bytes are borrows into the Vocabulary's own arena
// and are valid exactly as long as the Vocabulary is referenced.
type Vocabulary struct {
	arena *vocabulary.Arena
}

// BuildVocabulary materializes the byte expansion of every id implied
// by merges: 0..255 are the raw bytes, and 256+i is the concatenation
// of the expansions of merges[i].First and merges[i].Second. merges
// must already be validated.
func BuildVocabulary(merges []Pair) *Vocabulary {
	pairs := make([]vocabulary.Pair, len(merges))
	for i, m := range merges {
		pairs[i] = vocabulary.Pair{First: m.First, Second: m.Second}
	}
	return &Vocabulary{arena: vocabulary.Build(pairs)}
}

// Size returns the vocabulary size, 256 + len(merges).
func (v *Vocabulary) Size() int { return len(v.arena.Tokens) }

// Bytes returns the byte expansion for id. The returned slice aliases
// the Vocabulary's arena and must be treated as read-only.
func (v *Vocabulary) Bytes(id uint64) []byte {
	view := v.arena.Tokens[id]
	return v.arena.Bytes[view.Offset : view.Offset+view.Length]
}

// Len returns the byte length of id's expansion without allocating a
// slice header for the bytes themselves.
func (v *Vocabulary) Len(id uint64) int {
	return v.arena.Tokens[id].Length
}
