package metaheuristic

import "mstop/model"

// eliteItem pairs a Solution with its revenue for ordering inside the
// elite heap.
type eliteItem struct {
	revenue  float64
	solution *model.Solution
}

// eliteHeap is a min-heap on revenue: the root is always the current
// worst elite, so evicting it when the pool overflows is O(log k).
type eliteHeap []eliteItem

func (h eliteHeap) Len() int            { return len(h) }
func (h eliteHeap) Less(i, j int) bool  { return h[i].revenue < h[j].revenue }
func (h eliteHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *eliteHeap) Push(x interface{}) { *h = append(*h, x.(eliteItem)) }
func (h *eliteHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
