package microbpe

import "testing"

func TestDecodeEmptyIds(t *testing.T) {
	tok, err := NewTokenizer(nil)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	if out := tok.Decode(nil); out != nil {
		t.Fatalf("got %v, want nil", out)
	}
}

func TestDecodeUnknownIDWarnsAndDrops(t *testing.T) {
	var warned []uint64
	tok, err := NewTokenizer(nil, WithWarnFunc(func(format string, args ...any) {
		warned = append(warned, args[0].(uint64))
	}))
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}

	out := tok.Decode([]uint64{'h', 9999, 'i'})
	if string(out) != "hi" {
		t.Fatalf("got %q, want %q", out, "hi")
	}
	if len(warned) != 1 || warned[0] != 9999 {
		t.Fatalf("got warned=%v, want [9999]", warned)
	}
}

func TestDecodeSubstitutesSpecialTokens(t *testing.T) {
	tok, err := NewTokenizer(nil, WithSpecialTokens(map[string]uint64{"<eos>": 1000}))
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	out := tok.Decode([]uint64{'h', 'i', 1000})
	if string(out) != "hi<eos>" {
		t.Fatalf("got %q, want %q", out, "hi<eos>")
	}
}

func TestFlatVocabularyIncludesSpecials(t *testing.T) {
	merges := []Pair{{First: 'a', Second: 'b'}}
	tok, err := NewTokenizer(merges, WithSpecialTokens(map[string]uint64{"<eos>": 1000}))
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}

	flat := tok.FlatVocabulary()
	if len(flat) != baseVocabSize+1+1 {
		t.Fatalf("got %d entries, want %d", len(flat), baseVocabSize+2)
	}
	if string(flat[baseVocabSize]) != "ab" {
		t.Fatalf("got %q for id 256, want %q", flat[baseVocabSize], "ab")
	}
	if string(flat[1000]) != "<eos>" {
		t.Fatalf("got %q for id 1000, want %q", flat[1000], "<eos>")
	}
}
