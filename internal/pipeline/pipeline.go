// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"mitocheck-core/fasta"
	"mitocheck-core/kmer"
)

// Config controls the counting pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// CountKmers counts all k-windows of recs into one table. done, if non-nil,
// is called from the collector goroutine once per finished record.
// It returns the first error encountered (including context cancellation).
func CountKmers(
	ctx context.Context,
	cfg Config,
	recs []fasta.Record,
	k int,
	done func(fasta.Record),
) (kmer.Counts, error) {
	if err := kmer.ValidateK(k); err != nil {
		return nil, err
	}
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type shard struct {
		rec    fasta.Record
		counts kmer.Counts
	}
	jobs := make(chan fasta.Record, cfg.Threads*2)
	results := make(chan shard, cfg.Threads*2)

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
				case r, ok := <-jobs:
					if !ok {
						return
					}
					c := make(kmer.Counts)
					kmer.CountInto(c, r.Seq, k)
					select {
					case results <- shard{rec: r, counts: c}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector + reducer
	total := make(kmer.Counts)
	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for s := range results {
			kmer.Merge(total, s.counts)
			if done != nil {
				done(s.rec)
			}
		}
	}()

	// Feed work
feed:
	for _, r := range recs {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- r:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return total, nil
}
