package microbpe

import "testing"

func TestValidateMergesAcceptsWellFormedTable(t *testing.T) {
	merges := []Pair{
		{First: 'a', Second: 'b'},
		{First: baseVocabSize, Second: 'c'},
	}
	if err := ValidateMerges(merges); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateMergesRejectsForwardReference(t *testing.T) {
	merges := []Pair{
		{First: baseVocabSize, Second: 'c'}, // references id 256 before it exists
	}
	if err := ValidateMerges(merges); err == nil {
		t.Fatal("expected an error for a forward reference")
	}
}

func TestValidateMergesRejectsDuplicatePair(t *testing.T) {
	merges := []Pair{
		{First: 'a', Second: 'b'},
		{First: 'c', Second: 'd'},
		{First: 'a', Second: 'b'},
	}
	if err := ValidateMerges(merges); err == nil {
		t.Fatal("expected an error for a duplicate pair")
	}
}
