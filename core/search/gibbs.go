package search

import (
	"math/rand"

	"isgmotif-core/motif"
)

// Gibbs runs n single-position resampling steps from a random start and
// returns the best-scoring motif set visited, which need not be the last.
//
// Each step picks a sequence i uniformly, profiles the other t-1 motifs and
// replaces motif i with a window drawn in proportion to its probability.
func Gibbs(rng *rand.Rand, seqs []string, k, n int) Result {
	cur := randomStart(rng, seqs, k)
	best := cur.clone()

	maxWindows := 0
	for _, s := range seqs {
		if w := len(s) - k + 1; w > maxWindows {
			maxWindows = w
		}
	}
	weights := make([]float64, maxWindows)

	for it := 0; it < n; it++ {
		i := rng.Intn(len(seqs))
		prof := motif.BuildProfile(cur.Motifs, i)

		s := seqs[i]
		w := weights[:len(s)-k+1]
		for off := range w {
			w[off] = prof.Prob(s[off : off+k])
		}
		off := weightedChoice(rng, w)
		cur.Offsets[i] = off
		cur.Motifs[i] = s[off : off+k]

		cur.Score = motif.Score(cur.Motifs)
		if cur.Score < best.Score {
			best = cur.clone()
		}
	}
	return best
}

// weightedChoice draws an index with probability proportional to weights.
// A zero total falls back to a uniform draw over all indices.
func weightedChoice(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return rng.Intn(len(weights))
	}
	r := rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if acc >= r {
			return i
		}
	}
	return len(weights) - 1
}
