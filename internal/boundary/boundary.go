// Package boundary extracts a clockwise, simplified edge list from a final
// cell set.
package boundary

import (
	"sort"

	"github.com/arl/polyfence/internal/grid"
)

// Edge is an axis-aligned boundary segment in world coordinates.
type Edge struct {
	X1, Y1, X2, Y2 float64
}

// vertex is a lattice-space (not world-space) grid-line coordinate: vertex
// {x, y} is the corner shared by cells (x-1,y-1), (x,y-1), (x-1,y) and
// (x,y). Keeping these as exact integers until emission avoids any
// floating-point stitching error; world scaling happens once, on output.
type vertex struct{ x, y int32 }

// Extract enumerates the exposed unit edges of cells, stitches them into a
// single closed clockwise polyline, collapses collinear runs, and emits the
// result scaled by s into world coordinates. cells must be connected and
// hole-free (region.IsConnected, region.IsHoleFree); Extract does not
// re-validate those invariants.
func Extract(cells map[grid.Cell]bool, s float64) []Edge {
	if len(cells) == 0 {
		return nil
	}

	next := unitEdges(cells)

	start := smallestVertex(next)
	path := walk(next, start)
	corners := collapse(path)

	edges := make([]Edge, 0, len(corners))
	n := len(corners)
	for i := 0; i < n; i++ {
		a := corners[i]
		b := corners[(i+1)%n]
		edges = append(edges, Edge{
			X1: float64(a.x) * s, Y1: float64(a.y) * s,
			X2: float64(b.x) * s, Y2: float64(b.y) * s,
		})
	}
	return edges
}

// unitEdges enumerates every exposed unit edge of cells and returns a
// mapping from each edge's start vertex to its end vertex. Each of the four
// sides is oriented clockwise around its owning cell: top left->right,
// right top->bottom, bottom right->left, left bottom->top.
func unitEdges(cells map[grid.Cell]bool) map[vertex]vertex {
	next := make(map[vertex]vertex, len(cells)*2)

	for c := range cells {
		i, j := c.I, c.J

		// Top: neighbor (i, j+1) not in region.
		if !cells[grid.Cell{I: i, J: j + 1}] {
			next[vertex{i, j + 1}] = vertex{i + 1, j + 1}
		}
		// Right: neighbor (i+1, j) not in region.
		if !cells[grid.Cell{I: i + 1, J: j}] {
			next[vertex{i + 1, j + 1}] = vertex{i + 1, j}
		}
		// Bottom: neighbor (i, j-1) not in region.
		if !cells[grid.Cell{I: i, J: j - 1}] {
			next[vertex{i + 1, j}] = vertex{i, j}
		}
		// Left: neighbor (i-1, j) not in region.
		if !cells[grid.Cell{I: i - 1, J: j}] {
			next[vertex{i, j}] = vertex{i, j + 1}
		}
	}

	return next
}

// smallestVertex returns the lexicographically smallest (x, then y) vertex
// appearing as a key of next, giving Extract a deterministic starting point
// regardless of map iteration order.
func smallestVertex(next map[vertex]vertex) vertex {
	keys := make([]vertex, 0, len(next))
	for v := range next {
		keys = append(keys, v)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].x != keys[j].x {
			return keys[i].x < keys[j].x
		}
		return keys[i].y < keys[j].y
	})
	return keys[0]
}

// walk follows next from start until it returns to start, producing the
// ordered (non-simplified) vertex sequence of the closed boundary.
func walk(next map[vertex]vertex, start vertex) []vertex {
	path := make([]vertex, 0, len(next))
	v := start
	for {
		path = append(path, v)
		v = next[v]
		if v == start {
			break
		}
	}
	return path
}

// collapse merges consecutive unit edges that share a direction, returning
// only the corner vertices of the simplified polygon (interior angle 90° or
// 270°). Without this step the edge count would track region size rather
// than polygon complexity.
func collapse(path []vertex) []vertex {
	n := len(path)
	corners := make([]vertex, 0, n)
	for i := 0; i < n; i++ {
		prev := path[(i-1+n)%n]
		cur := path[i]
		nxt := path[(i+1)%n]
		dxIn, dyIn := cur.x-prev.x, cur.y-prev.y
		dxOut, dyOut := nxt.x-cur.x, nxt.y-cur.y
		if dxIn != dxOut || dyIn != dyOut {
			corners = append(corners, cur)
		}
	}
	return corners
}
