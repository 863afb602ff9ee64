// Package training implements the BPE trainer's statistics pass and
// in-place piece rewrite, grounded on
// _examples/original_source/src/bpe_trainer.c (bpe_get_max_count_pair,
// merge_piece, bpe_apply_merges).
package training

// RewritePiece replaces every non-overlapping left-to-right occurrence
// of (first, second) in piece with newID, using a single pass with two
// indices into the same backing array (read index never trails the
// write index). Returns the rewritten, possibly-shorter slice sharing
// piece's backing array.
func RewritePiece(piece []uint64, first, second, newID uint64) []uint64 {
	if len(piece) < 2 {
		return piece
	}

	write := 0
	for read := 0; read < len(piece); {
		if piece[read] == first && read+1 < len(piece) && piece[read+1] == second {
			piece[write] = newID
			write++
			read += 2
		} else {
			piece[write] = piece[read]
			write++
			read++
		}
	}
	return piece[:write]
}
