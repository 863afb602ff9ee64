package microbpe

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestStreamDecoderHoldsIncompleteUTF8Sequence(t *testing.T) {
	merges := []Pair{
		{First: 0xB8, Second: 0x80}, // -> 256: the continuation half of U+4E00
	}
	tok, err := NewTokenizer(merges)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}

	dec := tok.NewStreamDecoder()

	out := dec.Feed(0xE4) // lead byte of a 3-byte sequence, held back
	if len(out) != 0 {
		t.Fatalf("got %v, want nothing emitted yet", out)
	}

	out = dec.Feed(baseVocabSize) // completes 0xE4 0xB8 0x80
	want := []byte{0xE4, 0xB8, 0x80}
	if !bytes.Equal(out, want) {
		t.Fatalf("got % x, want % x", out, want)
	}
}

func TestStreamDecoderPassesThroughASCII(t *testing.T) {
	tok, err := NewTokenizer(nil)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	dec := tok.NewStreamDecoder()

	var out []byte
	for _, b := range []byte("hi") {
		out = append(out, dec.Feed(uint64(b))...)
	}
	if string(out) != "hi" {
		t.Fatalf("got %q, want %q", out, "hi")
	}
}

func TestStreamDecoderResetDiscardsCarry(t *testing.T) {
	tok, err := NewTokenizer(nil)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	dec := tok.NewStreamDecoder()

	dec.Feed(0xE4) // holds back as carry
	dec.Reset()
	out := dec.Feed('h')
	if string(out) != "h" {
		t.Fatalf("got %q, want %q (carry should have been cleared)", out, "h")
	}
}

func TestDecodeProcessRoundTripsWireFormat(t *testing.T) {
	merges := []Pair{
		{First: 'a', Second: 'b'},
		{First: baseVocabSize, Second: 'c'},
	}
	tok, err := NewTokenizer(merges)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}

	original := []byte("abcab \xE6\x97\xA5 abcab")
	ids := tok.Encode(original)

	var wire bytes.Buffer
	for _, id := range ids {
		var idBuf [4]byte
		binary.LittleEndian.PutUint32(idBuf[:], uint32(id))
		wire.Write(idBuf[:])
	}

	var out bytes.Buffer
	n, err := tok.DecodeProcess(&wire, &out)
	if err != nil {
		t.Fatalf("DecodeProcess: %v", err)
	}
	if n != int64(out.Len()) {
		t.Fatalf("got written=%d, want %d (out.Len())", n, out.Len())
	}
	if !bytes.Equal(out.Bytes(), original) {
		t.Fatalf("got %q, want %q", out.Bytes(), original)
	}
}

func TestDecodeTokenStreamRoundTripsIds(t *testing.T) {
	merges := []Pair{
		{First: 'a', Second: 'b'},
		{First: baseVocabSize, Second: 'c'},
	}
	tok, err := NewTokenizer(merges)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}

	original := []byte("abcab \xE6\x97\xA5 abcab")
	ids := tok.Encode(original)

	in := make(chan uint64)
	out, errc := tok.DecodeTokenStream(in)

	go func() {
		defer close(in)
		for _, id := range ids {
			in <- id
		}
	}()

	var got []byte
	for chunk := range out {
		got = append(got, chunk...)
	}
	if err := <-errc; err != nil {
		t.Fatalf("DecodeTokenStream: %v", err)
	}
	if !bytes.Equal(got, original) {
		t.Fatalf("got %q, want %q", got, original)
	}
}

func TestUTF8LenFromLead(t *testing.T) {
	cases := map[byte]int{
		0x41: 1, // ASCII
		0xC2: 2,
		0xE4: 3,
		0xF0: 4,
		0x80: 1, // continuation byte, defensive fallback
		0xFF: 1, // illegal lead byte, defensive fallback
	}
	for b, want := range cases {
		if got := utf8LenFromLead(b); got != want {
			t.Fatalf("byte 0x%X: got %d, want %d", b, got, want)
		}
	}
}
