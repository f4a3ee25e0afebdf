package stivalg

import "container/heap"

// pqItem is one entry of the Dijkstra frontier: a candidate node and its
// current tentative total time. seq breaks ties by insertion order (the
// lowest-inserted node wins), giving deterministic results independent of
// container/heap's internal ordering, per spec.md §5.
type pqItem struct {
	node  int
	total float64
	seq   int
}

// nodeQueue is a binary min-heap over pqItem, ordered by (total, seq).
// This plays the role of the teacher's DtNodeQueue (nodequeue.go), but
// uses container/heap the way katalvlaran/lvlath's dijkstra package does
// instead of the teacher's hand-rolled bubbleUp/trickleDown: spec.md §4.6
// and §9 explicitly allow a heap as a drop-in replacement for the
// reference's linear scan, provided ties still break deterministically
// (here: by insertion order).
//
// Stale entries (a node pushed more than once because its tentative time
// improved after it was already queued) are left in the heap; the caller
// skips them when they are popped (shortestPath checks visited).
type nodeQueue struct {
	items  []pqItem
	nextSeq int
}

func newNodeQueue() *nodeQueue {
	return &nodeQueue{}
}

func (q *nodeQueue) Len() int { return len(q.items) }

func (q *nodeQueue) Less(i, j int) bool {
	if q.items[i].total != q.items[j].total {
		return q.items[i].total < q.items[j].total
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *nodeQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *nodeQueue) Push(x any) { q.items = append(q.items, x.(pqItem)) }

func (q *nodeQueue) Pop() any {
	old := q.items
	n := len(old)
	it := old[n-1]
	q.items = old[:n-1]
	return it
}

// push inserts node with the given tentative total time, tie-broken by
// insertion order.
func (q *nodeQueue) push(node int, total float64) {
	heap.Push(q, pqItem{node: node, total: total, seq: q.nextSeq})
	q.nextSeq++
}

// pop removes and returns the item with the smallest (total, seq).
func (q *nodeQueue) pop() pqItem {
	return heap.Pop(q).(pqItem)
}

func (q *nodeQueue) empty() bool { return len(q.items) == 0 }
