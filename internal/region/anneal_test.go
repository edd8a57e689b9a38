package region

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arl/polyfence/internal/grid"
)

func blockGrid(n int32) *grid.Grid {
	g := &grid.Grid{S: 1, Split: n, Cells: make(map[grid.Cell]*grid.Aggregate)}
	for i := int32(0); i < n; i++ {
		for j := int32(0); j < n; j++ {
			g.Cells[grid.Cell{I: i, J: j}] = &grid.Aggregate{WeightSum: 1, PointCount: 1}
		}
	}
	return g
}

func TestAnnealNeverDropsBelowCoverage(t *testing.T) {
	g := blockGrid(5)
	seed := New(g)
	for c := range g.Cells {
		seed.Add(c)
	}

	rng := rand.New(rand.NewSource(1))
	best := Anneal(seed, 5, 5.0, 0.05, 2000, time.Second, rng)

	assert.GreaterOrEqual(t, best.Coverage(), 5)
	assert.True(t, IsHoleFree(best.Cells()))
	assert.True(t, IsConnected(best.Cells()))
}

func TestAnnealNeverWorsensBestCost(t *testing.T) {
	g := blockGrid(6)
	seed := New(g)
	for c := range g.Cells {
		seed.Add(c)
	}
	seedCost := seed.Cost()

	rng := rand.New(rand.NewSource(42))
	best := Anneal(seed, 4, 5.0, 0.05, 5000, time.Second, rng)

	assert.LessOrEqual(t, best.Cost(), seedCost)
}

func TestAnnealZeroIterationsReturnsSeed(t *testing.T) {
	g := blockGrid(3)
	seed := New(g)
	for c := range g.Cells {
		seed.Add(c)
	}
	rng := rand.New(rand.NewSource(1))
	best := Anneal(seed, 1, 5.0, 0.05, 0, time.Second, rng)
	assert.Equal(t, seed.Cost(), best.Cost())
}

func TestAnnealRespectsTimeBudget(t *testing.T) {
	g := blockGrid(4)
	seed := New(g)
	for c := range g.Cells {
		seed.Add(c)
	}
	rng := rand.New(rand.NewSource(7))

	start := time.Now()
	Anneal(seed, 2, 5.0, 0.05, 1_000_000_000, 20*time.Millisecond, rng)
	elapsed := time.Since(start)

	assert.Less(t, elapsed, time.Second)
}

func TestAcceptAlwaysTakesImprovingMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.True(t, accept(-1, 1.0, rng))
	assert.True(t, accept(0, 1.0, rng))
}

func TestAcceptRejectsWorseningAtZeroTemperature(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.False(t, accept(1, 0, rng))
}
