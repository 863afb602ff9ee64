// Package microbpe implements the core of a byte-pair-encoding tokenizer:
// a bytes<->token-id codec and an offline trainer that learns a merge
// table from a corpus of byte strings.
package microbpe

// Pair is an ordered pair of token ids, the unit the trainer counts and
// the encoder replays merges against.
type Pair struct {
	First  uint64
	Second uint64
}

// Compare returns <0, 0, or >0 as p sorts before, equal to, or after
// other, lexicographically on (First, Second).
func (p Pair) Compare(other Pair) int {
	if p.First != other.First {
		if p.First < other.First {
			return -1
		}
		return 1
	}
	if p.Second != other.Second {
		if p.Second < other.Second {
			return -1
		}
		return 1
	}
	return 0
}
