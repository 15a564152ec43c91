// Package search implements the stochastic motif finders and the
// multi-restart harness that turns either of them into a global search.
//
// All randomness comes from the *rand.Rand handed in by the caller. For a
// fixed seed the draw order is: one start offset per sequence, then (Gibbs
// only) one sequence index plus one weighted draw per iteration, repeated
// for every restart.
package search

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"isgmotif-core/motif"
)

// ErrConfiguration marks parameters rejected before any search begins.
var ErrConfiguration = errors.New("invalid configuration")

type Strategy string

const (
	StrategyRandomized Strategy = "randomized"
	StrategyGibbs      Strategy = "gibbs"
)

// Config is passed into Optimize per call.
type Config struct {
	Strategy   Strategy
	K          int
	Iterations int // Gibbs iteration budget N
	Restarts   int
	Seed       int64
	UseEntropy bool // ignore Seed and seed from the clock
	Threads    int  // <= 1 runs restarts sequentially on one stream
}

// DefaultConfig mirrors the parameters the ISG promoter study used.
func DefaultConfig() Config {
	return Config{
		Strategy:   StrategyRandomized,
		K:          12,
		Iterations: 2000,
		Restarts:   1000,
		Seed:       42,
		Threads:    1,
	}
}

// Validate rejects non-positive k, N or restart count and unknown strategies.
func (c Config) Validate() error {
	switch {
	case c.K <= 0:
		return fmt.Errorf("%w: k must be > 0 (got %d)", ErrConfiguration, c.K)
	case c.Iterations <= 0:
		return fmt.Errorf("%w: iterations must be > 0 (got %d)", ErrConfiguration, c.Iterations)
	case c.Restarts <= 0:
		return fmt.Errorf("%w: restarts must be > 0 (got %d)", ErrConfiguration, c.Restarts)
	case c.Threads < 0:
		return fmt.Errorf("%w: threads must be >= 0 (got %d)", ErrConfiguration, c.Threads)
	}
	if _, err := c.Strategy.runner(); err != nil {
		return err
	}
	return nil
}

// Resolve replaces UseEntropy with a concrete clock-derived seed so the
// caller can report the seed that was actually used.
func (c Config) Resolve() Config {
	if c.UseEntropy {
		c.Seed = time.Now().UnixNano()
		c.UseEntropy = false
	}
	return c
}

// Result pairs a motif set with its score. Offsets[i] is the start of
// Motifs[i] within sequence i.
type Result struct {
	Motifs  motif.Set
	Offsets []int
	Score   int
}

func (r Result) clone() Result {
	return Result{
		Motifs:  r.Motifs.Clone(),
		Offsets: append([]int(nil), r.Offsets...),
		Score:   r.Score,
	}
}

// Consensus is motif.Consensus of the result's motif set.
func (r Result) Consensus() string { return motif.Consensus(r.Motifs) }

// runFunc performs one restart.
type runFunc func(rng *rand.Rand, seqs []string, k, iterations int) Result

func (s Strategy) runner() (runFunc, error) {
	switch s {
	case StrategyRandomized:
		return func(rng *rand.Rand, seqs []string, k, _ int) Result {
			return Randomized(rng, seqs, k)
		}, nil
	case StrategyGibbs:
		return Gibbs, nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q (want %s or %s)",
			ErrConfiguration, s, StrategyRandomized, StrategyGibbs)
	}
}

// randomStart draws one uniform offset in [0, len(seq)-k] per sequence.
func randomStart(rng *rand.Rand, seqs []string, k int) Result {
	r := Result{Motifs: make(motif.Set, len(seqs)), Offsets: make([]int, len(seqs))}
	for i, s := range seqs {
		off := rng.Intn(len(s) - k + 1)
		r.Offsets[i] = off
		r.Motifs[i] = s[off : off+k]
	}
	r.Score = motif.Score(r.Motifs)
	return r
}
