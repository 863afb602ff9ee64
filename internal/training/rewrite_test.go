package training

import (
	"reflect"
	"testing"
)

func TestRewritePieceMergesNonOverlapping(t *testing.T) {
	piece := []uint64{1, 2, 1, 2, 1}
	got := RewritePiece(piece, 1, 2, 99)
	want := []uint64{99, 99, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRewritePieceNoMatchIsUnchanged(t *testing.T) {
	piece := []uint64{1, 2, 3}
	got := RewritePiece(piece, 5, 6, 99)
	want := []uint64{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRewritePieceShortPieceIsUnchanged(t *testing.T) {
	for _, piece := range [][]uint64{nil, {1}} {
		got := RewritePiece(piece, 1, 2, 99)
		if len(got) != len(piece) {
			t.Fatalf("got %v, want unchanged %v", got, piece)
		}
	}
}
