package wbt

// gridCell is a priority-queue entry: a cell location and the elevation
// assigned to it at push time. seq is the push sequence number, used as a
// secondary key so that equal elevations resolve in first-pushed order and
// the traversal stays deterministic.
type gridCell struct {
	r, c int
	z    float64
	seq  int
}

// cellHeap is a min-heap on assigned elevation, implemented directly rather
// than by inverting a max-heap comparison. Satisfies container/heap.Interface.
type cellHeap []gridCell

func (h cellHeap) Len() int { return len(h) }
func (h cellHeap) Less(i, j int) bool {
	if h[i].z == h[j].z {
		return h[i].seq < h[j].seq
	}
	return h[i].z < h[j].z
}
func (h cellHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *cellHeap) Push(x interface{}) { *h = append(*h, x.(gridCell)) }

func (h *cellHeap) Pop() interface{} {
	old := *h
	n := len(old)
	gc := old[n-1]
	*h = old[:n-1]
	return gc
}
