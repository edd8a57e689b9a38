package region

import (
	"math"
	"math/rand"
	"time"

	"github.com/arl/assertgo"
	"github.com/arl/math32"

	"github.com/arl/polyfence/internal/grid"
)

// Anneal runs a time-budgeted Metropolis refinement over add/remove flips.
// It starts from a copy of seed and returns the best valid region observed
// (which may be seed itself, unmodified, if no improving or accepted move
// was ever found). k is the minimum coverage every visited region must keep.
func Anneal(seed *Region, k int, t0, tEnd float64, iMax int, budget time.Duration, rng *rand.Rand) *Region {
	current := seed.Clone()
	best := seed.Clone()
	bestCost := seed.Cost()

	if iMax <= 0 {
		return best
	}
	beta := float32(0)
	if tEnd > 0 && t0 > tEnd {
		// The temperature schedule is derived once per trial, not once per
		// iteration, so the extra precision of the standard library's
		// math.Log (versus the math32 package used elsewhere in the hot
		// loop) costs nothing measurable.
		beta = float32(math.Log(t0/tEnd)) / float32(iMax)
	}

	start := time.Now()
	for t := 0; t < iMax; t++ {
		if time.Since(start) >= budget {
			break
		}

		temperature := float32(t0) * math32.Exp(-beta*float32(t))

		border := current.Border()
		if len(border) == 0 {
			continue
		}
		b := border[rng.Intn(len(border))]
		dir := rng.Intn(4)
		c := grid.Neighbor(b, dir)

		var accepted bool
		if current.Has(c) {
			accepted = tryRemove(current, c, k, temperature, rng)
		} else {
			accepted = tryAdd(current, c, temperature, rng)
		}

		if accepted {
			assert.True(current.Coverage() >= k, "anneal committed a move dropping coverage below %d", k)
			if current.Cost() < bestCost {
				best = current.Clone()
				bestCost = current.Cost()
			}
		}
	}

	return best
}

// tryRemove attempts to evict c from r, accepting or rejecting per the
// Metropolis criterion, and reverses the mutation if the move is infeasible
// or rejected. It reports whether the move was committed.
func tryRemove(r *Region, c grid.Cell, k int, temperature float32, rng *rand.Rand) bool {
	if r.Len() <= 1 {
		return false
	}

	before := r.Cost()
	r.Remove(c)

	if r.Coverage() < k || !IsConnected(r.Cells()) || !IsHoleFree(r.Cells()) {
		r.Add(c)
		return false
	}

	delta := r.Cost() - before
	if accept(delta, temperature, rng) {
		return true
	}
	r.Add(c)
	return false
}

// tryAdd attempts to add c to r. c is always a 4-neighbor of an existing
// border cell, so the result stays connected; only the domain bound and the
// hole test can veto it.
func tryAdd(r *Region, c grid.Cell, temperature float32, rng *rand.Rand) bool {
	if !r.g.InDomain(c) {
		return false
	}
	before := r.Cost()
	r.Add(c)

	if !IsHoleFree(r.Cells()) {
		r.Remove(c)
		return false
	}

	delta := r.Cost() - before
	if accept(delta, temperature, rng) {
		return true
	}
	r.Remove(c)
	return false
}

// accept implements the Metropolis acceptance rule: always accept a
// non-worsening move, otherwise accept with probability exp(-delta/T).
func accept(delta float64, temperature float32, rng *rand.Rand) bool {
	if delta <= 0 {
		return true
	}
	if temperature <= 0 {
		return false
	}
	p := math32.Exp(-float32(delta) / temperature)
	return float32(rng.Float64()) < p
}
