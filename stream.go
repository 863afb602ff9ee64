package microbpe

import (
	"encoding/binary"
	"fmt"
	"io"
)

// utf8LenFromLead returns the byte length of the UTF-8 sequence a lead
// byte begins. Continuation bytes and otherwise malformed lead bytes
// fall back to length 1, matching the defensive behavior of the
// original C decoder rather than rejecting them outright (spec.md §4.6).
func utf8LenFromLead(b byte) int {
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// completeTailCut scans up to the last maxCarryBytes bytes of buf for
// a lead byte whose sequence is not yet fully present, and returns the
// index at which emission should stop. If no pending sequence is
// found, it returns len(buf) (emit everything).
func completeTailCut(buf []byte) int {
	n := len(buf)
	lookback := maxCarryBytes
	if lookback > n {
		lookback = n
	}
	for i := 0; i < lookback; i++ {
		p := n - 1 - i
		b := buf[p]
		if b&0xC0 == 0x80 {
			continue // continuation byte, keep walking back to find its lead
		}
		need := utf8LenFromLead(b)
		have := n - p
		if need > have {
			return p
		}
		return n
	}
	return n
}

// StreamDecoder decodes a token-id sequence one id at a time, holding
// back trailing bytes that might be an incomplete UTF-8 rune until a
// later Feed completes them. It is not safe for concurrent use.
//
// Grounded on the teacher's streaming decode path (llama3/tokenizer.go
// Process/TokenStream), generalized from the teacher's fixed Llama-3
// byte-to-unicode mapping to plain UTF-8 boundary tracking, which is
// what this core's wire format actually needs.
type StreamDecoder struct {
	t     *Tokenizer
	carry [maxCarryBytes]byte
	n     int
}

// NewStreamDecoder returns a StreamDecoder bound to t.
func (t *Tokenizer) NewStreamDecoder() *StreamDecoder {
	return &StreamDecoder{t: t}
}

// Reset discards any held-back carry bytes, as if decoding were
// starting fresh.
func (d *StreamDecoder) Reset() {
	d.n = 0
}

// Feed decodes a single token id and returns the bytes now safe to
// emit. The returned slice is only valid until the next Feed or Reset
// call; callers that need to retain it must copy it.
func (d *StreamDecoder) Feed(id uint64) []byte {
	var piece []byte
	if id < uint64(d.t.vocab.Size()) {
		piece = d.t.vocab.Bytes(id)
	} else if bs, ok := d.t.special.lookupID(id); ok {
		piece = bs
	} else {
		d.t.warnf("%d: %s", id, ErrUnknownTokenID)
		d.n = 0
		return nil
	}

	buf := make([]byte, 0, d.n+len(piece))
	buf = append(buf, d.carry[:d.n]...)
	buf = append(buf, piece...)
	d.n = 0

	cut := completeTailCut(buf)
	tail := buf[cut:]
	if len(tail) > maxCarryBytes {
		return buf
	}
	d.n = copy(d.carry[:], tail)
	return buf[:cut]
}

// DecodeBulk decodes ids as one contiguous sequence with no carry
// state: every piece is emitted in full, independent of UTF-8
// boundaries. Equivalent to Tokenizer.Decode; provided on StreamDecoder
// so callers can mix incremental and one-shot decoding against the
// same Tokenizer without an extra lookup.
func (d *StreamDecoder) DecodeBulk(ids []uint64) []byte {
	return d.t.Decode(ids)
}

// DecodeProcess reads a stream of little-endian uint32 token ids from r
// and writes their decoded bytes to w, preserving UTF-8 boundaries
// across id reads via an internal StreamDecoder. It returns the number
// of bytes written. Grounded on the teacher's llama3/tokenizer.go
// Process, generalized from a fixed record format to a flat 4-byte id
// stream since this core has no on-disk token-id framing of its own.
func (t *Tokenizer) DecodeProcess(r io.Reader, w io.Writer) (int64, error) {
	dec := t.NewStreamDecoder()
	var written int64
	var idBuf [4]byte

	for {
		if _, err := io.ReadFull(r, idBuf[:]); err != nil {
			if err == io.EOF {
				return written, nil
			}
			return written, fmt.Errorf("microbpe: decode process: read id: %w", err)
		}

		id := uint64(binary.LittleEndian.Uint32(idBuf[:]))
		out := dec.Feed(id)
		if len(out) == 0 {
			continue
		}
		n, err := w.Write(out)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("microbpe: decode process: write: %w", err)
		}
	}
}

// DecodeTokenStream decodes ids received on in as they arrive,
// emitting decoded byte chunks on the returned channel and reporting
// the first error (if any) before both channels close. Grounded on the
// teacher's llama3/tokenizer.go TokenStream.
func (t *Tokenizer) DecodeTokenStream(in <-chan uint64) (<-chan []byte, <-chan error) {
	out := make(chan []byte)
	errc := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errc)

		dec := t.NewStreamDecoder()
		for id := range in {
			chunk := dec.Feed(id)
			if len(chunk) == 0 {
				continue
			}
			cp := make([]byte, len(chunk))
			copy(cp, chunk)
			out <- cp
		}
	}()

	return out, errc
}
