// Package grid bins weighted points into a regular square grid and
// aggregates per-cell weight and point count. It is the leaf of the solver
// pipeline: regions (package region) and boundaries (package boundary) are
// expressed purely in terms of the Cell coordinates this package produces.
package grid

import "github.com/arl/math32"

// Cell is the integer (column, row) coordinate of one grid cell.
type Cell struct {
	I, J int32
}

// Direction offsets for the 4-neighborhood, indexed 0..3. With the
// ordering (-x, +y, +x, -y), opposite directions are always (d+2)&3 apart.
var (
	dirX = [4]int32{-1, 0, 1, 0}
	dirY = [4]int32{0, 1, 0, -1}
)

// Neighbor returns the cell adjacent to c in direction dir (0..3).
func Neighbor(c Cell, dir int) Cell {
	return Cell{I: c.I + dirX[dir&3], J: c.J + dirY[dir&3]}
}

// Neighbors4 returns the four 4-neighbors of c, in direction order.
func Neighbors4(c Cell) [4]Cell {
	return [4]Cell{
		{c.I + dirX[0], c.J + dirY[0]},
		{c.I + dirX[1], c.J + dirY[1]},
		{c.I + dirX[2], c.J + dirY[2]},
		{c.I + dirX[3], c.J + dirY[3]},
	}
}

// Aggregate holds the per-cell accumulated statistics.
type Aggregate struct {
	WeightSum  float64
	PointCount int
}

// Point is the minimal point shape the grid builder needs: an (x, y)
// position and a weight.
type Point struct {
	X, Y, W float64
}

// Grid is a regular partition of the plane, Split cells to a side, with
// cell size S. Only non-empty cells are stored.
type Grid struct {
	S     float64 // cell side length, in world units
	Split int32
	Cells map[Cell]*Aggregate
}

// Build bins points into a split x split grid. s is derived as
// (maxCoord/split) * jitter, where maxCoord is the largest X or Y among
// points (0 if points is empty). Points landing exactly on the top/right
// edge of the domain are clamped into the last row/column.
func Build(points []Point, split int32, jitter float64) *Grid {
	if split < 1 {
		split = 1
	}
	var maxCoord float64
	for _, p := range points {
		if p.X > maxCoord {
			maxCoord = p.X
		}
		if p.Y > maxCoord {
			maxCoord = p.Y
		}
	}

	s := (maxCoord / float64(split)) * jitter
	if s <= 0 {
		// Degenerate instance (no points, or every point at the origin):
		// fall back to a unit cell so binning stays well defined.
		s = 1
	}

	g := &Grid{S: s, Split: split, Cells: make(map[Cell]*Aggregate)}
	invS := float32(1.0 / s)
	maxIdx := split - 1

	for _, p := range points {
		i := int32(math32.Floor(float32(p.X) * invS))
		j := int32(math32.Floor(float32(p.Y) * invS))
		if i > maxIdx {
			i = maxIdx
		}
		if i < 0 {
			i = 0
		}
		if j > maxIdx {
			j = maxIdx
		}
		if j < 0 {
			j = 0
		}
		c := Cell{I: i, J: j}
		agg, ok := g.Cells[c]
		if !ok {
			agg = &Aggregate{}
			g.Cells[c] = agg
		}
		agg.WeightSum += p.W
		agg.PointCount++
	}

	return g
}

// At returns the aggregate stored at c and whether c is non-empty.
func (g *Grid) At(c Cell) (Aggregate, bool) {
	agg, ok := g.Cells[c]
	if !ok {
		return Aggregate{}, false
	}
	return *agg, true
}

// NonEmptyCount returns the number of non-empty cells in the grid.
func (g *Grid) NonEmptyCount() int {
	return len(g.Cells)
}

// InDomain reports whether c lies inside the split x split domain the grid
// was built over. Cells outside the domain carry no points, so a region
// gains nothing by crossing into them; growers and refiners use this to
// confine candidate cells.
func (g *Grid) InDomain(c Cell) bool {
	return c.I >= 0 && c.J >= 0 && c.I < g.Split && c.J < g.Split
}
