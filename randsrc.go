package polyfence

import (
	"math/rand"
	"time"
)

// mixSeed derives a well-distributed 64-bit seed from a base seed and an
// index (trial or worker number), so that every trial draws from an
// independent, reproducible stream: a handful of xor-shift/multiply rounds
// over a 64-bit word, good enough to decorrelate sequential indices without
// pulling in a dedicated hashing library.
func mixSeed(base int64, index int64) int64 {
	z := uint64(base) + uint64(index)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return int64(z)
}

// newTrialRand returns a *rand.Rand private to one (split, trial) pair.
func newTrialRand(seed int64, split, trial int) *rand.Rand {
	idx := int64(split)*1_000_003 + int64(trial)
	return rand.New(rand.NewSource(mixSeed(seed, idx)))
}

// resolveSeed returns seed unchanged unless it is zero, in which case it
// derives one from the wall clock and logs it so the run can be replayed.
func resolveSeed(seed int64, ctx *BuildContext) int64 {
	if seed != 0 {
		return seed
	}
	derived := time.Now().UnixNano()
	ctx.Progressf("seed not set, derived %d for this run", derived)
	return derived
}
