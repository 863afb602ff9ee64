package microbpe

// Decode converts a token-id sequence back into bytes (spec.md §4.5/§7).
// Each id is resolved independently: in-vocabulary ids expand from the
// shared vocabulary arena, special-token ids substitute their bound
// bytes, and any other id is reported through the configured warn
// callback and dropped rather than treated as fatal.
func (t *Tokenizer) Decode(ids []uint64) []byte {
	if len(ids) == 0 {
		return nil
	}

	out := make([]byte, 0, len(ids)*2)
	for _, id := range ids {
		if id < uint64(t.vocab.Size()) {
			out = append(out, t.vocab.Bytes(id)...)
			continue
		}
		if bs, ok := t.special.lookupID(id); ok {
			out = append(out, bs...)
			continue
		}
		t.warnf("%d: %s", id, ErrUnknownTokenID)
	}
	return out
}

// FlatVocabulary returns every id the Tokenizer can decode, including
// registered special tokens, mapped to its byte expansion. Intended
// for inspection tooling (the vocab CLI subcommand), not hot paths:
// it allocates a fresh map and copies every vocabulary entry's bytes.
func (t *Tokenizer) FlatVocabulary() map[uint64][]byte {
	flat := make(map[uint64][]byte, t.vocab.Size())
	for id := 0; id < t.vocab.Size(); id++ {
		bs := t.vocab.Bytes(uint64(id))
		cp := make([]byte, len(bs))
		copy(cp, bs)
		flat[uint64(id)] = cp
	}
	if t.special != nil {
		for id, bs := range t.special.byID {
			flat[id] = bs
		}
	}
	return flat
}
