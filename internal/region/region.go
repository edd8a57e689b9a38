// Package region implements the hole-freeness check, the greedy grower and
// the simulated-annealing refiner. All three operate on a Region: a finite
// set of grid cells with incrementally maintained perimeter, coverage, and
// cost.
package region

import (
	"sort"

	"github.com/arl/polyfence/internal/grid"
)

// Region is a finite, incrementally-maintained set of grid cells standing
// for a candidate polygon. Perimeter, coverage and cost are never
// recomputed from scratch; Add and Remove carry the running aggregates.
type Region struct {
	g *grid.Grid

	cells     map[grid.Cell]bool
	perimeter float64
	weight    float64
	coverage  int
}

// New returns an empty region over g.
func New(g *grid.Grid) *Region {
	return &Region{g: g, cells: make(map[grid.Cell]bool)}
}

// Clone returns a deep copy of r, sharing the same underlying grid.
func (r *Region) Clone() *Region {
	cp := &Region{
		g:         r.g,
		cells:     make(map[grid.Cell]bool, len(r.cells)),
		perimeter: r.perimeter,
		weight:    r.weight,
		coverage:  r.coverage,
	}
	for c := range r.cells {
		cp.cells[c] = true
	}
	return cp
}

// Grid returns the grid this region is defined over.
func (r *Region) Grid() *grid.Grid { return r.g }

// Len returns the number of cells in the region.
func (r *Region) Len() int { return len(r.cells) }

// Has reports whether c is in the region.
func (r *Region) Has(c grid.Cell) bool { return r.cells[c] }

// Cells returns the region's cell set. Callers must not mutate the returned
// map.
func (r *Region) Cells() map[grid.Cell]bool { return r.cells }

// Coverage returns the total point count covered by the region's cells.
func (r *Region) Coverage() int { return r.coverage }

// Perimeter returns the region's current perimeter length, in world units.
func (r *Region) Perimeter() float64 { return r.perimeter }

// Cost returns the region's perimeter plus the summed weight of its cells.
func (r *Region) Cost() float64 { return r.perimeter + r.weight }

// neighborsInRegion returns the number of c's 4-neighbors already in the
// region.
func (r *Region) neighborsInRegion(c grid.Cell) int {
	n := 0
	for _, nb := range grid.Neighbors4(c) {
		if r.cells[nb] {
			n++
		}
	}
	return n
}

// DeltaAdd returns the marginal cost of adding c to the region: the change
// in perimeter (s * (4 - 2*neighborsInRegion)) plus c's weight_sum. It does
// not mutate r or check hole-freeness; callers Add c tentatively, check
// IsHoleFree, and Remove c again on a veto.
func (r *Region) DeltaAdd(c grid.Cell) float64 {
	agg, _ := r.g.At(c)
	nIn := r.neighborsInRegion(c)
	deltaPerimeter := r.g.S * float64(4-2*nIn)
	return deltaPerimeter + agg.WeightSum
}

// Add commits c to the region, updating perimeter, weight and coverage
// incrementally. c must not already be in the region.
func (r *Region) Add(c grid.Cell) {
	agg, _ := r.g.At(c)
	nIn := r.neighborsInRegion(c)
	r.perimeter += r.g.S * float64(4-2*nIn)
	r.weight += agg.WeightSum
	r.coverage += agg.PointCount
	r.cells[c] = true
}

// Remove evicts c from the region, reversing the perimeter/weight/coverage
// accounting Add applied. c must be in the region.
func (r *Region) Remove(c grid.Cell) {
	delete(r.cells, c)
	nIn := r.neighborsInRegion(c) // neighbors still in R, after eviction
	agg, _ := r.g.At(c)
	r.perimeter -= r.g.S * float64(4-2*nIn)
	r.weight -= agg.WeightSum
	r.coverage -= agg.PointCount
}

// Border returns the cells in the region with at least one 4-neighbor
// outside the region, sorted by (I, J). The annealer indexes this slice
// with a seeded RNG, so the order must not depend on map iteration order or
// replaying a run with the same seed would diverge.
func (r *Region) Border() []grid.Cell {
	border := make([]grid.Cell, 0, len(r.cells)/2+1)
	for c := range r.cells {
		for _, nb := range grid.Neighbors4(c) {
			if !r.cells[nb] {
				border = append(border, c)
				break
			}
		}
	}
	sort.Slice(border, func(i, j int) bool {
		if border[i].I != border[j].I {
			return border[i].I < border[j].I
		}
		return border[i].J < border[j].J
	})
	return border
}
