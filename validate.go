package microbpe

import "github.com/agentstation/microbpe/internal/pairmap"

// ValidateMerges checks that an externally supplied merge table is
// well-formed, per spec.md §4.2: every pair's components must already
// be a known id when the merge is introduced, and no pair may appear
// twice. Grounded on original_source/src/bpe_common.c (bpe_check).
func ValidateMerges(pairs []Pair) error {
	maxID := uint64(baseVocabSize)
	seen := pairmap.New(len(pairs))

	for i, p := range pairs {
		if p.First >= maxID || p.Second >= maxID {
			return NewMergeError("range", i, p)
		}
		maxID++

		key := pairmap.Key{First: p.First, Second: p.Second}
		if _, wasNew := seen.InsertOrGet(key); !wasNew {
			return NewMergeError("duplicate", i, p)
		}
	}
	return nil
}
