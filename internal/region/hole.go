package region

import "github.com/arl/polyfence/internal/grid"

// IsHoleFree pads the occupied index range by one empty cell on every
// side, flood-fills from that outer frame through the complement of cells
// (4-connectivity), and reports whether every non-member cell bounded by
// the frame was reached. A non-member cell the flood cannot reach is
// enclosed on all sides, so the region has a hole.
func IsHoleFree(cells map[grid.Cell]bool) bool {
	if len(cells) == 0 {
		return true
	}

	minI, minJ, maxI, maxJ := bounds(cells)
	// Pad by one cell on every side.
	minI--
	minJ--
	maxI++
	maxJ++

	visited := make(map[grid.Cell]bool)
	queue := []grid.Cell{{I: minI, J: minJ}}
	visited[queue[0]] = true

	for len(queue) > 0 {
		c := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, nb := range grid.Neighbors4(c) {
			if nb.I < minI || nb.I > maxI || nb.J < minJ || nb.J > maxJ {
				continue
			}
			if cells[nb] || visited[nb] {
				continue
			}
			visited[nb] = true
			queue = append(queue, nb)
		}
	}

	total := int64(maxI-minI+1) * int64(maxJ-minJ+1)
	nonMember := total - int64(len(cells))
	return int64(len(visited)) == nonMember
}

// IsConnected reports whether the 4-neighbor induced subgraph on cells is
// connected. An empty set is vacuously connected.
func IsConnected(cells map[grid.Cell]bool) bool {
	if len(cells) == 0 {
		return true
	}
	var start grid.Cell
	for c := range cells {
		start = c
		break
	}

	visited := make(map[grid.Cell]bool, len(cells))
	queue := []grid.Cell{start}
	visited[start] = true
	for len(queue) > 0 {
		c := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, nb := range grid.Neighbors4(c) {
			if cells[nb] && !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return len(visited) == len(cells)
}

func bounds(cells map[grid.Cell]bool) (minI, minJ, maxI, maxJ int32) {
	first := true
	for c := range cells {
		if first {
			minI, maxI = c.I, c.I
			minJ, maxJ = c.J, c.J
			first = false
			continue
		}
		if c.I < minI {
			minI = c.I
		}
		if c.I > maxI {
			maxI = c.I
		}
		if c.J < minJ {
			minJ = c.J
		}
		if c.J > maxJ {
			maxJ = c.J
		}
	}
	return
}
