// Package dparallel provides the opt-in, work-stealing-free data
// parallelism used at two fork-join points: commitment-weight accumulation
// and FK20 column work. Per-cell scatter runs sequentially and does not use
// this package.
//
// It chunks a range into contiguous, disjoint slices -- one per CPU, the
// same partitioning nume-crypto-gnark's internal/dag package uses for its
// level-by-level worker fan-out -- and runs each chunk on an
// golang.org/x/sync/errgroup.Group goroutine. Results are combined by the
// caller in a fixed, index-derived order, so output is deterministic
// regardless of how many goroutines actually ran.
package dparallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Range runs fn(start, end) over disjoint, contiguous sub-ranges of
// [0, n), one per available CPU, and waits for all of them to finish. fn
// must only touch the slice positions in [start, end) it is given. Range
// is a barrier: it returns only after every chunk has completed, and
// propagates the first error any chunk returns.
func Range(n int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		start := start
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			return fn(start, end)
		})
	}
	return g.Wait()
}
