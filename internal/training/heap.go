package training

import "github.com/agentstation/microbpe/internal/pairmap"

// candidate is one distinct pair observed during a statistics pass,
// remembering the order in which it was first seen so ties can be
// broken by earliest insertion, exactly as spec.md's "running leader,
// strict greater-than" rule does.
//
// This is the Go analogue of the teacher's llama3/priority_queue.go
// mergeNode/priorityQueue: a container/heap min-heap of merge
// candidates ordered by a priority value with a position-derived
// tie-break. Here the heap is a max-heap on live pair count (read
// through the pairmap so it always reflects the final tally, since all
// counting happens before the heap is ever queried) with the
// tie-break on insertion order instead of intra-token position.
type candidate struct {
	key          pairmap.Key
	mapIdx       int
	insertionIdx int
}

// candidateHeap implements container/heap.Interface as a max-heap: Pop
// returns the candidate with the highest live count, ties broken by
// the smallest insertionIdx.
type candidateHeap struct {
	cands []candidate
	stats *pairmap.Map
}

func (h *candidateHeap) Len() int { return len(h.cands) }

func (h *candidateHeap) Less(i, j int) bool {
	vi := h.stats.Value(h.cands[i].mapIdx)
	vj := h.stats.Value(h.cands[j].mapIdx)
	if vi != vj {
		return vi > vj
	}
	return h.cands[i].insertionIdx < h.cands[j].insertionIdx
}

func (h *candidateHeap) Swap(i, j int) {
	h.cands[i], h.cands[j] = h.cands[j], h.cands[i]
}

func (h *candidateHeap) Push(x any) {
	h.cands = append(h.cands, x.(candidate))
}

func (h *candidateHeap) Pop() any {
	old := h.cands
	n := len(old)
	x := old[n-1]
	h.cands = old[:n-1]
	return x
}
