package microbpe

import (
	"github.com/agentstation/microbpe/internal/training"
)

// Trainer holds a working corpus of byte pieces and greedily discovers
// the most frequent adjacent pair across all of them, rank by rank,
// the way spec.md §4.3 describes bpe_get_max_count_pair.
//
// A Trainer is not safe for concurrent use; Step and LoadMerges mutate
// the corpus and the merge list and must be serialized by the caller
// (spec.md §5).
type Trainer struct {
	pieces   [][]uint64
	merges   []Pair
	nextRank uint64
}

// NewTrainer creates a Trainer seeded with one piece per byte buffer in
// pieces. Each piece starts as one token id per byte. pieces must be
// non-empty.
func NewTrainer(pieces [][]byte) (*Trainer, error) {
	if len(pieces) == 0 {
		return nil, NewConfigError("pieces", 0, ErrInputShape)
	}

	t := &Trainer{
		pieces:   make([][]uint64, len(pieces)),
		nextRank: trainInitialRank,
	}
	for i, p := range pieces {
		ids := make([]uint64, len(p))
		for j, b := range p {
			ids[j] = uint64(b)
		}
		t.pieces[i] = ids
	}
	return t, nil
}

// Step scans the corpus for the most frequent adjacent pair, assigns
// it the next rank, and rewrites every piece in place to absorb it.
// ok is false once every piece has length <= 1 (spec.md §4.7
// Saturated state); Step is idempotent in that state.
func (t *Trainer) Step() (pair Pair, rank uint64, count uint64, ok bool) {
	first, second, n, found := training.LeadingPair(t.pieces)
	if !found {
		return Pair{}, 0, 0, false
	}

	t.nextRank++
	newID := t.nextRank

	for i, piece := range t.pieces {
		if len(piece) > 1 {
			t.pieces[i] = training.RewritePiece(piece, first, second, newID)
		}
	}

	p := Pair{First: first, Second: second}
	t.merges = append(t.merges, p)
	return p, newID, n, true
}

// LoadMerges replays an externally supplied, already-validated merge
// sequence onto the corpus without recomputing statistics. It is only
// valid when the Trainer has not yet learned or loaded any merges.
func (t *Trainer) LoadMerges(pairs []Pair) error {
	if len(t.merges) != 0 {
		return ErrAlreadyInitialized
	}
	if err := ValidateMerges(pairs); err != nil {
		return err
	}

	for _, p := range pairs {
		t.nextRank++
		newID := t.nextRank
		for i, piece := range t.pieces {
			if len(piece) > 1 {
				t.pieces[i] = training.RewritePiece(piece, p.First, p.Second, newID)
			}
		}
	}
	t.merges = append(t.merges, pairs...)
	return nil
}

// Merges returns the accumulated merge table, in learned/loaded order.
// The returned slice must not be mutated by the caller.
func (t *Trainer) Merges() []Pair { return t.merges }

// NextRank returns the current rank counter.
func (t *Trainer) NextRank() uint64 { return t.nextRank }

// Pieces returns the current state of the training corpus, one slice
// of token ids per piece. The returned slices must not be mutated by
// the caller.
func (t *Trainer) Pieces() [][]uint64 { return t.pieces }
