package polyfence

import (
	"time"

	"github.com/arl/polyfence/internal/boundary"
	"github.com/arl/polyfence/internal/grid"
	"github.com/arl/polyfence/internal/region"
)

// Solve sweeps every grid split in 1..cfg.SMax, running
// cfg.trialsForSplit(S) trials of grid-build -> greedy-grow -> anneal ->
// boundary-extract at each, and returns the lowest-cost valid region found
// across the whole sweep.
//
// ctx may be nil; if non-nil, it receives progress messages and per-stage
// timing (see context.go).
func Solve(points []Point, k int, cfg Config, ctx *BuildContext) (Solution, error) {
	if k > len(points) {
		return Solution{}, newError(ErrInfeasible, "K (%d) exceeds N (%d)", k, len(points))
	}

	seed := resolveSeed(cfg.Seed, ctx)
	gridPoints := toGridPoints(points)

	ctx.StartTimer(TimerTrial)
	defer ctx.StopTimer(TimerTrial)

	var (
		best     *region.Region
		bestGrid *grid.Grid
		anyTrial bool
	)

	for s := 1; s <= cfg.SMax; s++ {
		trials := cfg.trialsForSplit(s)
		results := runSplit(gridPoints, k, int32(s), trials, seed, cfg, ctx)
		for _, res := range results {
			anyTrial = true
			if res == nil {
				continue
			}
			if best == nil || res.r.Cost() < best.Cost() {
				best = res.r
				bestGrid = res.g
			}
		}
		ctx.Progressf("split %d: %d trial(s), best cost so far %v", s, trials, costOrNil(best))
	}

	if best == nil {
		if !anyTrial {
			return Solution{}, newError(ErrInfeasible, "no split produced any trial")
		}
		return Solution{}, newError(ErrInfeasible,
			"no trial across splits 1..%d reached coverage K=%d", cfg.SMax, k)
	}

	ctx.StartTimer(TimerBoundary)
	edges := boundary.Extract(best.Cells(), bestGrid.S)
	ctx.StopTimer(TimerBoundary)

	return Solution{
		Cost:     best.Cost(),
		Enclosed: best.Coverage(),
		Edges:    toPolyfenceEdges(edges),
	}, nil
}

type trialResult struct {
	r *region.Region
	g *grid.Grid
}

// runSplit runs every trial for one grid split, sequentially or across
// cfg.Workers goroutines, and returns one result slot per trial (nil where
// the trial failed to reach coverage K).
func runSplit(points []grid.Point, k int, split int32, trials int, seed int64, cfg Config, ctx *BuildContext) []*trialResult {
	results := make([]*trialResult, trials)

	if cfg.Workers <= 1 {
		for t := 0; t < trials; t++ {
			results[t] = runTrial(points, k, split, t, seed, cfg, ctx)
		}
		return results
	}

	type job struct{ idx int }
	jobs := make(chan job, trials)
	out := make(chan struct {
		idx int
		res *trialResult
	}, trials)

	workers := cfg.Workers
	if workers > trials {
		workers = trials
	}
	for w := 0; w < workers; w++ {
		go func() {
			// ctx has no locking, so worker trials run without one; only
			// the sequential Workers<=1 path gets per-stage timing. The
			// per-split progress line is logged by Solve in both modes.
			for j := range jobs {
				out <- struct {
					idx int
					res *trialResult
				}{j.idx, runTrial(points, k, split, j.idx, seed, cfg, nil)}
			}
		}()
	}
	for t := 0; t < trials; t++ {
		jobs <- job{t}
	}
	close(jobs)
	for t := 0; t < trials; t++ {
		r := <-out
		results[r.idx] = r.res
	}
	return results
}

// runTrial runs the grid/grow/anneal pipeline for one (split, trial) pair.
// It returns nil if the trial failed to reach coverage K (empty seed set,
// degenerate grid, or a greedy grower that never satisfied coverage); the
// driver skips such trials rather than failing the solve.
func runTrial(points []grid.Point, k int, split int32, trial int, seed int64, cfg Config, ctx *BuildContext) *trialResult {
	rng := newTrialRand(seed, int(split), trial)
	eps := jitterEpsilon(int(split))
	jitter := 1 - eps*rng.Float64()

	ctx.StartTimer(TimerGrid)
	g := grid.Build(points, split, jitter)
	ctx.StopTimer(TimerGrid)

	ctx.StartTimer(TimerGreedy)
	r, ok := region.Grow(g, k)
	ctx.StopTimer(TimerGreedy)
	if !ok {
		return nil
	}

	ctx.StartTimer(TimerAnneal)
	budget := time.Duration(cfg.SATime * float64(time.Second))
	r = region.Anneal(r, k, cfg.T0, cfg.TEnd, cfg.IMax, budget, rng)
	ctx.StopTimer(TimerAnneal)

	return &trialResult{r: r, g: g}
}

func toGridPoints(points []Point) []grid.Point {
	out := make([]grid.Point, len(points))
	for i, p := range points {
		out[i] = grid.Point{X: p.X, Y: p.Y, W: p.W}
	}
	return out
}

func toPolyfenceEdges(edges []boundary.Edge) []Edge {
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[i] = Edge{X1: e.X1, Y1: e.Y1, X2: e.X2, Y2: e.Y2}
	}
	return out
}

func costOrNil(r *region.Region) interface{} {
	if r == nil {
		return "none"
	}
	return r.Cost()
}
