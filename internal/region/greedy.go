package region

import (
	"container/heap"

	"github.com/arl/assertgo"

	"github.com/arl/polyfence/internal/grid"
)

// heapItem is one lazily-invalidated candidate in the greedy grower's
// marginal-cost heap.
type heapItem struct {
	cell  grid.Cell
	delta float64
}

// cellHeap is a binary min-heap over heapItem.delta, implemented against
// container/heap.Interface.
type cellHeap []heapItem

func (h cellHeap) Len() int            { return len(h) }
func (h cellHeap) Less(i, j int) bool  { return h[i].delta < h[j].delta }
func (h cellHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *cellHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *cellHeap) Pop() interface{} {
	old := *h
	n := len(old)
	assert.True(n > 0, "pop from empty cellHeap")
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Grow expands a region one marginal-cost-minimizing neighbor at a time
// from the cheapest seed cell, vetoing any addition that would create a
// hole. It returns the lowest-cost snapshot whose coverage reached k, and
// false if no such snapshot was ever recorded (e.g. total point count < k,
// or no cell in g contains a point).
func Grow(g *grid.Grid, k int) (*Region, bool) {
	seed, ok := seedCell(g)
	if !ok {
		return nil, false
	}

	r := New(g)
	r.Add(seed)

	h := &cellHeap{}
	heap.Init(h)
	for _, nb := range grid.Neighbors4(seed) {
		if !g.InDomain(nb) {
			continue
		}
		heap.Push(h, heapItem{cell: nb, delta: r.DeltaAdd(nb)})
	}

	var best *Region
	bestCost := 0.0
	// total bounds the region size the grower is willing to explore. It
	// cannot be g.NonEmptyCount(): the grower may need to cross empty
	// corridor cells to connect two non-adjacent point clusters into one
	// simply-connected region, so every neighbor of a committed cell is a
	// candidate, occupied or not. Candidates are confined to the grid
	// domain, where every cell is eventually reachable, so the whole domain
	// is the exact exhaustion bound.
	total := int(g.Split) * int(g.Split)

	if r.Coverage() >= k {
		best = r.Clone()
		bestCost = r.Cost()
	}

	for h.Len() > 0 && r.Len() < total {
		item := heap.Pop(h).(heapItem)
		if r.Has(item.cell) || item.delta != r.DeltaAdd(item.cell) {
			// stale: already committed via another path, or queued before a
			// neighbor joined and changed its marginal cost
			continue
		}

		// Tentatively add, vetoing if it would create a hole.
		r.Add(item.cell)
		if !IsHoleFree(r.Cells()) {
			r.Remove(item.cell)
			continue
		}
		assert.True(IsConnected(r.Cells()), "region disconnected after committing a heap-popped neighbor")

		for _, nb := range grid.Neighbors4(item.cell) {
			if r.Has(nb) || !g.InDomain(nb) {
				continue
			}
			heap.Push(h, heapItem{cell: nb, delta: r.DeltaAdd(nb)})
		}

		if r.Coverage() >= k && (best == nil || r.Cost() < bestCost) {
			best = r.Clone()
			bestCost = r.Cost()
		}
	}

	if best == nil {
		return nil, false
	}
	return best, true
}

// seedCell chooses the cell minimizing 4*s + weight_sum among non-empty
// cells, breaking ties by lowest (I, J) in lexicographic order.
func seedCell(g *grid.Grid) (grid.Cell, bool) {
	var (
		best    grid.Cell
		bestVal float64
		found   bool
	)
	for c, agg := range g.Cells {
		if agg.PointCount < 1 {
			continue
		}
		val := 4*g.S + agg.WeightSum
		if !found || val < bestVal ||
			(val == bestVal && (c.I < best.I || (c.I == best.I && c.J < best.J))) {
			best, bestVal, found = c, val, true
		}
	}
	return best, found
}
