package search

import (
	"context"
	"math/rand"
	"sync"

	"isgmotif-core/motif"
)

// RestartFunc is called once per finished restart. Calls are serialized
// but, with Threads > 1, arrive in completion order rather than index order.
type RestartFunc func(restart int, r Result)

// Optimize validates cfg and seqs, then runs cfg.Restarts independent
// restarts of cfg.Strategy and keeps the lowest score. A later restart only
// replaces the best on a strictly lower score, so the earliest restart wins
// ties.
//
// With Threads <= 1 every restart draws from a single stream seeded once
// from cfg.Seed. With Threads > 1 each restart gets a private stream whose
// seed is drawn, in restart order, from that master stream; results then
// depend on seed and restart count but not on the number of threads.
//
// ctx is checked between restarts.
func Optimize(ctx context.Context, seqs []string, cfg Config, onRestart RestartFunc) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if err := motif.Validate(seqs, cfg.K); err != nil {
		return Result{}, err
	}
	run, _ := cfg.Strategy.runner()
	cfg = cfg.Resolve()
	rng := rand.New(rand.NewSource(cfg.Seed))
	if onRestart == nil {
		onRestart = func(int, Result) {}
	}

	if cfg.Threads <= 1 {
		return optimizeSerial(ctx, rng, seqs, cfg, run, onRestart)
	}
	return optimizeParallel(ctx, rng, seqs, cfg, run, onRestart)
}

func optimizeSerial(ctx context.Context, rng *rand.Rand, seqs []string, cfg Config, run runFunc, onRestart RestartFunc) (Result, error) {
	var best Result
	for r := 0; r < cfg.Restarts; r++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		res := run(rng, seqs, cfg.K, cfg.Iterations)
		onRestart(r, res)
		if r == 0 || res.Score < best.Score {
			best = res
		}
	}
	return best, nil
}

func optimizeParallel(ctx context.Context, rng *rand.Rand, seqs []string, cfg Config, run runFunc, onRestart RestartFunc) (Result, error) {
	seeds := make([]int64, cfg.Restarts)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	threads := cfg.Threads
	if threads > cfg.Restarts {
		threads = cfg.Restarts
	}

	results := make([]Result, cfg.Restarts)
	jobs := make(chan int, threads*2)
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for r := range jobs {
				if ctx.Err() != nil {
					continue // drain
				}
				res := run(rand.New(rand.NewSource(seeds[r])), seqs, cfg.K, cfg.Iterations)
				results[r] = res
				mu.Lock()
				onRestart(r, res)
				mu.Unlock()
			}
		}()
	}

feed:
	for r := 0; r < cfg.Restarts; r++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- r:
		}
	}
	close(jobs)
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	best := results[0]
	for _, res := range results[1:] {
		if res.Score < best.Score {
			best = res
		}
	}
	return best, nil
}
