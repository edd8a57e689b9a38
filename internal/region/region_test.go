package region

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/polyfence/internal/grid"
)

func weightedGrid() *grid.Grid {
	g := &grid.Grid{S: 2, Split: 10, Cells: make(map[grid.Cell]*grid.Aggregate)}
	g.Cells[grid.Cell{I: 0, J: 0}] = &grid.Aggregate{WeightSum: -3, PointCount: 2}
	g.Cells[grid.Cell{I: 1, J: 0}] = &grid.Aggregate{WeightSum: 5, PointCount: 1}
	return g
}

func TestRegionAddUpdatesAggregates(t *testing.T) {
	g := weightedGrid()
	r := New(g)

	r.Add(grid.Cell{I: 0, J: 0})
	assert.Equal(t, 8.0, r.Perimeter(), "a lone cell contributes 4 sides of length s=2")
	assert.Equal(t, 2, r.Coverage())
	assert.Equal(t, 5.0, r.Cost(), "8 perimeter - 3 weight")

	r.Add(grid.Cell{I: 1, J: 0})
	assert.Equal(t, 12.0, r.Perimeter(), "the shared side removes 2*s from the sum")
	assert.Equal(t, 3, r.Coverage())
	assert.Equal(t, 14.0, r.Cost(), "12 perimeter - 3 + 5 weight")
}

func TestRegionRemoveReversesAdd(t *testing.T) {
	g := weightedGrid()
	r := New(g)
	r.Add(grid.Cell{I: 0, J: 0})
	r.Add(grid.Cell{I: 1, J: 0})

	r.Remove(grid.Cell{I: 1, J: 0})
	assert.Equal(t, 8.0, r.Perimeter())
	assert.Equal(t, 2, r.Coverage())
	assert.Equal(t, 5.0, r.Cost())
	assert.False(t, r.Has(grid.Cell{I: 1, J: 0}))
	assert.Equal(t, 1, r.Len())
}

func TestRegionAddEmptyCell(t *testing.T) {
	// Corridor cells carry no aggregate; adding one costs perimeter only.
	g := weightedGrid()
	r := New(g)
	r.Add(grid.Cell{I: 0, J: 0})
	r.Add(grid.Cell{I: 0, J: 1})

	assert.Equal(t, 12.0, r.Perimeter())
	assert.Equal(t, 2, r.Coverage(), "an empty cell adds no coverage")
	assert.Equal(t, 9.0, r.Cost())
}

func TestRegionDeltaAddMatchesCommittedCost(t *testing.T) {
	g := weightedGrid()
	r := New(g)
	r.Add(grid.Cell{I: 0, J: 0})

	c := grid.Cell{I: 1, J: 0}
	delta := r.DeltaAdd(c)
	before := r.Cost()
	r.Add(c)
	assert.Equal(t, before+delta, r.Cost())
}

func TestRegionBorder(t *testing.T) {
	g := &grid.Grid{S: 1, Split: 10, Cells: make(map[grid.Cell]*grid.Aggregate)}
	r := New(g)
	// A 3x3 block: every cell except the center is a border cell.
	for i := int32(0); i < 3; i++ {
		for j := int32(0); j < 3; j++ {
			r.Add(grid.Cell{I: i, J: j})
		}
	}

	border := r.Border()
	assert.Len(t, border, 8)
	for _, c := range border {
		assert.NotEqual(t, grid.Cell{I: 1, J: 1}, c, "the center cell has no outside neighbor")
	}
}

func TestRegionBorderIsSorted(t *testing.T) {
	g := &grid.Grid{S: 1, Split: 10, Cells: make(map[grid.Cell]*grid.Aggregate)}
	r := New(g)
	for i := int32(0); i < 4; i++ {
		for j := int32(0); j < 4; j++ {
			r.Add(grid.Cell{I: i, J: j})
		}
	}

	border := r.Border()
	for n := 1; n < len(border); n++ {
		a, b := border[n-1], border[n]
		less := a.I < b.I || (a.I == b.I && a.J < b.J)
		assert.True(t, less, "border must be sorted by (I, J): %v before %v", a, b)
	}
}

func TestRegionCloneIsIndependent(t *testing.T) {
	g := weightedGrid()
	r := New(g)
	r.Add(grid.Cell{I: 0, J: 0})

	cp := r.Clone()
	assert.Equal(t, r.Cost(), cp.Cost())

	r.Add(grid.Cell{I: 1, J: 0})
	assert.False(t, cp.Has(grid.Cell{I: 1, J: 0}), "mutating the original must not leak into the clone")
	assert.Equal(t, 1, cp.Len())
}
