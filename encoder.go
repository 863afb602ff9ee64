package microbpe

import (
	"github.com/agentstation/microbpe/internal/pairmap"
	"github.com/agentstation/microbpe/internal/training"
)

// Tokenizer is a bytes<->token-id codec built from a validated merge
// table (spec.md §6). It is safe for concurrent Encode/Decode calls
// from multiple goroutines as long as each StreamDecoder it hands out
// is only driven by one goroutine at a time (spec.md §5).
type Tokenizer struct {
	merges  []Pair
	ranks   *pairmap.Map // Pair -> assigned id (256+i), for the encoder's merge pass
	vocab   *Vocabulary
	special *specialTokens
	cache   encodeCache
	warnf   func(format string, args ...any)
}

// NewTokenizer validates merges and builds a Tokenizer ready to
// Encode/Decode. merges must satisfy spec.md §4.2 (forward-reference
// and duplicate-free).
func NewTokenizer(merges []Pair, opts ...TokenizerOption) (*Tokenizer, error) {
	if err := ValidateMerges(merges); err != nil {
		return nil, err
	}

	cfg := defaultTokenizerConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	ranks := pairmap.New(len(merges))
	for i, m := range merges {
		idx, _ := ranks.InsertOrGet(pairmap.Key{First: m.First, Second: m.Second})
		ranks.SetValue(idx, int64(baseVocabSize+i))
	}

	var cache encodeCache
	if cfg.cacheSize == 0 {
		cache = newSimpleCache()
	} else {
		cache = newLRUCache(cfg.cacheSize)
	}

	return &Tokenizer{
		merges:  append([]Pair(nil), merges...),
		ranks:   ranks,
		vocab:   BuildVocabulary(merges),
		special: newSpecialTokens(cfg.specialTokens),
		cache:   cache,
		warnf:   cfg.warnf,
	}, nil
}

// Merges returns the tokenizer's merge table, in rank order.
func (t *Tokenizer) Merges() []Pair { return t.merges }

// Vocabulary returns the tokenizer's derived vocabulary.
func (t *Tokenizer) Vocabulary() *Vocabulary { return t.vocab }

// VocabSize returns the number of in-vocabulary ids (256 + len(merges)),
// not counting special tokens, which live outside the vocabulary
// proper (spec.md §6: "a flat vocabulary mapping id→bytes (including
// specials)" is a separate, richer view — see FlatVocabulary).
func (t *Tokenizer) VocabSize() int { return t.vocab.Size() }

// Encode converts input bytes into a token-id sequence (spec.md §4.4).
// If special tokens are configured and input matches one exactly, the
// result is that token's single id with no merge pass. Empty input
// yields an empty (nil) result.
func (t *Tokenizer) Encode(input []byte) []uint64 {
	if len(input) == 0 {
		return nil
	}

	if id, ok := t.special.lookupBytes(input); ok {
		return []uint64{id}
	}

	key := string(input)
	if cached, ok := t.cache.get(key); ok {
		return append([]uint64(nil), cached...)
	}

	ids := make([]uint64, len(input))
	for i, b := range input {
		ids[i] = uint64(b)
	}

	for len(ids) >= 2 {
		bestPos := -1
		var bestRank uint64

		for j := 0; j+1 < len(ids); j++ {
			idx, ok := t.ranks.Lookup(pairmap.Key{First: ids[j], Second: ids[j+1]})
			if !ok {
				continue
			}
			rank := uint64(t.ranks.Value(idx))
			if bestPos == -1 || rank < bestRank {
				bestRank = rank
				bestPos = j
			}
		}

		if bestPos == -1 {
			break
		}

		first, second := ids[bestPos], ids[bestPos+1]
		ids = training.RewritePiece(ids, first, second, bestRank)
	}

	t.cache.put(key, ids)
	return ids
}
