// Package microbpe implements a byte-level Byte-Pair-Encoding core: an
// offline trainer that learns a merge table from sample byte strings,
// and a Tokenizer that encodes bytes to token ids and decodes ids back
// to bytes using that table.
//
// # Overview
//
// There is no built-in vocabulary and no pre-tokenization. Callers
// supply either raw byte pieces to train on, or an already-trained
// merge table to build a Tokenizer from:
//
//	trainer, err := microbpe.NewTrainer(pieces)
//	for i := 0; i < numMerges; i++ {
//	    if _, _, _, ok := trainer.Step(); !ok {
//	        break // no mergeable pair remains
//	    }
//	}
//
//	tok, err := microbpe.NewTokenizer(trainer.Merges())
//	ids := tok.Encode([]byte("hello world"))
//	out := tok.Decode(ids)
//
// # Architecture
//
//	┌────────────┐     ┌─────────────────┐     ┌───────────────┐
//	│ byte pieces│────▶│ Trainer.Step    │────▶│ merge table   │
//	└────────────┘     │ (pairmap + heap)│     │ (Pair, rank)  │
//	                   └─────────────────┘     └───────┬───────┘
//	                                                    │
//	                                                    ▼
//	                                           ┌─────────────────┐
//	                                           │ Vocabulary arena│
//	                                           └────────┬────────┘
//	                                                    │
//	                              ┌─────────────────────┼─────────────────────┐
//	                              ▼                                           ▼
//	                     ┌─────────────────┐                        ┌─────────────────┐
//	                     │ Tokenizer.Encode│                        │ Tokenizer.Decode │
//	                     │ (min-rank merge)│                        │ StreamDecoder    │
//	                     └─────────────────┘                        └─────────────────┘
//
// The merge table is stored twice, in two shapes tuned for the two
// directions: internal/pairmap gives the encoder O(log n) pair→rank
// lookups during the merge loop, and internal/vocabulary gives the
// decoder O(1) id→bytes access via a single shared byte arena.
//
// # Special tokens and streaming
//
// WithSpecialTokens registers byte strings that bypass the merge
// mechanism for both directions. StreamDecoder lets a caller feed ids
// one at a time (as they arrive off a network connection, say) while
// keeping multi-byte UTF-8 sequences intact across Feed calls.
package microbpe
