package wordoccur

import (
	"context"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CountReaderParallel counts the tokens of r with a pool of workers and
// returns the same mapping CountReader would.
//
// The algorithm:
//  1. One goroutine reads lines and feeds them to the workers.
//  2. Each worker folds its lines into a local Occurrences.
//  3. Workers emit their local maps; the caller merges them by word.
//
// Counting is commutative, so the order in which lines reach workers does not
// change the result. workers <= 0 defaults to runtime.GOMAXPROCS(0);
// workers == 1 counts sequentially without goroutines.
// A read error or a cancelled ctx stops the fold and is returned.
func CountReaderParallel(ctx context.Context, r io.Reader, t Tokenizer, workers int) (Occurrences, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 {
		return CountReader(r, t, nil)
	}

	g, ctx := errgroup.WithContext(ctx)
	lines := make(chan string)
	partials := make(chan Occurrences, workers)

	g.Go(func() error {
		defer close(lines)
		return eachLine(r, func(line string) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case lines <- line:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			local := make(Occurrences)
			for line := range lines {
				Count(line, t, local)
			}
			partials <- local
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(partials)

	var out Occurrences
	for part := range partials {
		if out == nil {
			// take the first worker's accumulator as-is
			out = part
			continue
		}
		Merge(out, part)
	}
	return out, nil
}
