package astar

// node is one search state, stored in the runner's arena. Its arena index is
// also its discovery order, which breaks f-cost ties.
type node struct {
	cell    int     // row-major cell index
	g, h, f float64 // cost so far, estimate to goal, g+h
	parent  int32   // arena index of the predecessor; -1 for the start
	heapIdx int     // position in openQueue; -1 once popped
	closed  bool
}

// openQueue is a min-heap of arena indices ordered by f ascending, then by
// discovery order. It keeps node.heapIdx current so a relaxed node can be
// re-prioritized in place with heap.Fix.
type openQueue struct {
	r     *runner
	items []int32
}

func (q *openQueue) Len() int { return len(q.items) }

func (q *openQueue) Less(i, j int) bool {
	a, b := &q.r.nodes[q.items[i]], &q.r.nodes[q.items[j]]
	if a.f != b.f {
		return a.f < b.f
	}

	return q.items[i] < q.items[j]
}

func (q *openQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.r.nodes[q.items[i]].heapIdx = i
	q.r.nodes[q.items[j]].heapIdx = j
}

func (q *openQueue) Push(x interface{}) {
	id := x.(int32)
	q.r.nodes[id].heapIdx = len(q.items)
	q.items = append(q.items, id)
}

func (q *openQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	id := old[n-1]
	q.items = old[:n-1]
	q.r.nodes[id].heapIdx = -1

	return id
}
