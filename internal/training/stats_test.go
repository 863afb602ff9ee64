package training

import "testing"

func TestLeadingPairPicksMostFrequent(t *testing.T) {
	pieces := [][]uint64{{97, 97, 97, 98, 100, 97, 97, 97, 98, 97, 99}}
	first, second, count, ok := LeadingPair(pieces)
	if !ok {
		t.Fatal("expected a leading pair")
	}
	if first != 97 || second != 97 || count != 4 {
		t.Fatalf("got (%d,%d) count %d, want (97,97) count 4", first, second, count)
	}
}

func TestLeadingPairTieBreaksOnFirstInsertion(t *testing.T) {
	// "abba" yields three distinct pairs (a,b), (b,b), (b,a), each with
	// count 1; (a,b) is discovered first and must win the tie.
	pieces := [][]uint64{{97, 98, 98, 97}}
	first, second, count, ok := LeadingPair(pieces)
	if !ok {
		t.Fatal("expected a leading pair")
	}
	if first != 97 || second != 98 || count != 1 {
		t.Fatalf("got (%d,%d) count %d, want (97,98) count 1", first, second, count)
	}
}

func TestLeadingPairNoneWhenNoPairExists(t *testing.T) {
	pieces := [][]uint64{{97}, {98}}
	if _, _, _, ok := LeadingPair(pieces); ok {
		t.Fatal("expected no leading pair across single-byte pieces")
	}
}
