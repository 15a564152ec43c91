// Package pipeline fans fixed-pattern scans of corpus records out over a
// bounded worker pool.
package pipeline

import (
	"context"
	"sync"

	"isgmotif-core/fasta"
	"isgmotif-core/isre"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads int          // number of worker goroutines (>=1)
	Pattern isre.Pattern // pattern to scan for
}

// ScanRecords scans every record with cfg.Pattern and returns one hit per
// record, in record order regardless of Threads. visit, when non-nil, is
// called once per finished record from a single goroutine, in completion
// order. It returns ctx.Err() if the context is cancelled before all
// records are scanned.
func ScanRecords(ctx context.Context, cfg Config, recs []fasta.Record, visit func(isre.Hit)) ([]isre.Hit, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if visit == nil {
		visit = func(isre.Hit) {}
	}

	type result struct {
		idx int
		hit isre.Hit
	}
	jobs := make(chan int, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					h := cfg.Pattern.Scan(recs[i].ID, recs[i].Seq)
					select {
					case results <- result{idx: i, hit: h}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	hits := make([]isre.Hit, len(recs))
	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			hits[r.idx] = r.hit
			visit(r.hit)
		}
	}()

	// Feed work
feed:
	for i := range recs {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return hits, nil
}
