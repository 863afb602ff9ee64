package vocabulary

import "testing"

func TestBuildIdentityBytes(t *testing.T) {
	arena := Build(nil)
	if len(arena.Tokens) != 256 {
		t.Fatalf("got %d tokens, want 256", len(arena.Tokens))
	}
	for b := 0; b < 256; b++ {
		view := arena.Tokens[b]
		if view.Length != 1 || arena.Bytes[view.Offset] != byte(b) {
			t.Fatalf("id %d: got offset=%d length=%d byte=%d, want identity",
				b, view.Offset, view.Length, arena.Bytes[view.Offset])
		}
	}
}

func TestBuildExpandsNestedMerges(t *testing.T) {
	merges := []Pair{
		{First: 'a', Second: 'b'},          // 256: "ab"
		{First: 256, Second: 'c'},          // 257: "abc"
		{First: 257, Second: 256},          // 258: "abcab"
	}
	arena := Build(merges)

	if len(arena.Tokens) != 259 {
		t.Fatalf("got %d tokens, want 259", len(arena.Tokens))
	}

	want := map[int]string{256: "ab", 257: "abc", 258: "abcab"}
	for id, expected := range want {
		view := arena.Tokens[id]
		got := string(arena.Bytes[view.Offset : view.Offset+view.Length])
		if got != expected {
			t.Fatalf("id %d: got %q, want %q", id, got, expected)
		}
	}
}

func TestBuildEmptyMergesIsBaseAlphabetOnly(t *testing.T) {
	arena := Build([]Pair{})
	if len(arena.Bytes) != 256 {
		t.Fatalf("got %d bytes, want 256", len(arena.Bytes))
	}
}
