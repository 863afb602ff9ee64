package training

import (
	"container/heap"

	"github.com/agentstation/microbpe/internal/pairmap"
)

// LeadingPair scans pieces for adjacent token-id pairs, counts them,
// and returns the most frequent one. Ties are broken by the smallest
// traversal index in the first-insertion order of the statistics pass
// (spec.md §4.3 step 3): the pair encountered earliest among those
// tied for the maximum count wins.
//
// ok is false if no piece has length >= 2 (nothing left to merge).
func LeadingPair(pieces [][]uint64) (first, second, count uint64, ok bool) {
	stats := pairmap.New(0)
	var cands []candidate
	insertionIdx := 0

	for _, piece := range pieces {
		for j := 0; j+1 < len(piece); j++ {
			key := pairmap.Key{First: piece[j], Second: piece[j+1]}
			idx, wasNew := stats.InsertOrGet(key)
			if wasNew {
				stats.SetValue(idx, 1)
				cands = append(cands, candidate{key: key, mapIdx: idx, insertionIdx: insertionIdx})
				insertionIdx++
			} else {
				stats.SetValue(idx, stats.Value(idx)+1)
			}
		}
	}

	if len(cands) == 0 {
		return 0, 0, 0, false
	}

	h := &candidateHeap{cands: cands, stats: stats}
	heap.Init(h)
	best := heap.Pop(h).(candidate)

	return best.key.First, best.key.Second, uint64(stats.Value(best.mapIdx)), true
}
