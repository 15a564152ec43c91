package search

import (
	"math/rand"

	"isgmotif-core/motif"
)

// Randomized runs one profile-greedy hill climb from a random start and
// returns the best motif set it saw. It stops at the first iteration that
// fails to improve strictly, so it always terminates.
func Randomized(rng *rand.Rand, seqs []string, k int) Result {
	return randomized(rng, seqs, k, nil)
}

func randomized(rng *rand.Rand, seqs []string, k int, observe func(score int)) Result {
	cur := randomStart(rng, seqs, k)
	best := cur.clone()
	if observe != nil {
		observe(cur.Score)
	}
	for {
		prof := motif.BuildProfile(cur.Motifs, -1)
		next := Result{Motifs: make(motif.Set, len(seqs)), Offsets: make([]int, len(seqs))}
		for i, s := range seqs {
			off := mostProbable(s, k, prof)
			next.Offsets[i] = off
			next.Motifs[i] = s[off : off+k]
		}
		next.Score = motif.Score(next.Motifs)
		if observe != nil {
			observe(next.Score)
		}
		if next.Score >= best.Score {
			return best
		}
		best = next.clone()
		cur = next
	}
}

// mostProbable returns the offset of the k-mer of seq with the highest
// probability under prof. Scanning is left to right with strict >, so the
// earliest window wins ties.
func mostProbable(seq string, k int, prof motif.Profile) int {
	bestOff, bestProb := 0, -1.0
	for off := 0; off+k <= len(seq); off++ {
		if p := prof.Prob(seq[off : off+k]); p > bestProb {
			bestOff, bestProb = off, p
		}
	}
	return bestOff
}
