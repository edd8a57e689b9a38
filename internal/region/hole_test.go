package region

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/polyfence/internal/grid"
)

func cellSet(cells ...grid.Cell) map[grid.Cell]bool {
	m := make(map[grid.Cell]bool, len(cells))
	for _, c := range cells {
		m[c] = true
	}
	return m
}

func TestIsHoleFreeSolidBlock(t *testing.T) {
	cells := cellSet(
		grid.Cell{I: 0, J: 0}, grid.Cell{I: 1, J: 0},
		grid.Cell{I: 0, J: 1}, grid.Cell{I: 1, J: 1},
	)
	assert.True(t, IsHoleFree(cells))
}

func TestIsHoleFreeRing(t *testing.T) {
	// A 3x3 ring with the center cell missing encloses exactly one hole.
	cells := cellSet(
		grid.Cell{I: 0, J: 0}, grid.Cell{I: 1, J: 0}, grid.Cell{I: 2, J: 0},
		grid.Cell{I: 0, J: 1} /* (1,1) deliberately absent */, grid.Cell{I: 2, J: 1},
		grid.Cell{I: 0, J: 2}, grid.Cell{I: 1, J: 2}, grid.Cell{I: 2, J: 2},
	)
	assert.False(t, IsHoleFree(cells))
}

func TestIsHoleFreeEmpty(t *testing.T) {
	assert.True(t, IsHoleFree(nil))
}

func TestIsHoleFreeLShape(t *testing.T) {
	// An L shape has no enclosed cells at all.
	cells := cellSet(
		grid.Cell{I: 0, J: 0}, grid.Cell{I: 0, J: 1}, grid.Cell{I: 0, J: 2},
		grid.Cell{I: 1, J: 0}, grid.Cell{I: 2, J: 0},
	)
	assert.True(t, IsHoleFree(cells))
}

func TestIsConnectedSingleBlock(t *testing.T) {
	cells := cellSet(grid.Cell{I: 0, J: 0}, grid.Cell{I: 1, J: 0})
	assert.True(t, IsConnected(cells))
}

func TestIsConnectedTwoDisjointBlocks(t *testing.T) {
	// Hole-free (neither blob encloses anything) but not connected.
	cells := cellSet(
		grid.Cell{I: 0, J: 0},
		grid.Cell{I: 10, J: 10},
	)
	assert.True(t, IsHoleFree(cells))
	assert.False(t, IsConnected(cells))
}

func TestIsConnectedEmpty(t *testing.T) {
	assert.True(t, IsConnected(nil))
}
