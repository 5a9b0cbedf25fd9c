// Package parallel splits index ranges across a bounded set of goroutines.
// Kernels in the cpu backend use it to spread element loops over the worker
// count of the device they run on.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Upper bound on concurrently running goroutines.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	return WithWorkers(runtime.NumCPU())
}

// WithWorkers returns a config that uses n workers. n <= 1 disables parallelism.
func WithWorkers(n int) Config {
	return Config{
		Enabled:      n > 1,
		NumWorkers:   max(n, 1),
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// Serial reports whether work runs on the calling goroutine.
func (c Config) Serial() bool {
	return !c.Enabled || c.NumWorkers <= 1
}

// chunk returns the chunk length for n items, or 0 when n should run serially.
func (c Config) chunk(n int) int {
	if c.Serial() || n < 2*c.MinChunkSize {
		return 0
	}
	return max((n+c.NumWorkers-1)/c.NumWorkers, c.MinChunkSize)
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForChunks(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			f(i)
		}
	}, cfg)
}

// ForChunks calls f on disjoint half-open ranges covering [0, n).
// Each range is handled by exactly one goroutine.
func ForChunks(n int, f func(lo, hi int), cfg Config) {
	_ = ForChunksErr(n, func(lo, hi int) error {
		f(lo, hi)
		return nil
	}, cfg)
}

// Split partitions [0, n) into the ranges ForChunks hands to workers.
// A single range means the work runs serially.
func (c Config) Split(n int) [][2]int {
	if n <= 0 {
		return nil
	}
	size := c.chunk(n)
	if size == 0 {
		return [][2]int{{0, n}}
	}
	ranges := make([][2]int, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		ranges = append(ranges, [2]int{start, min(start+size, n)})
	}
	return ranges
}

// ForChunksErr is ForChunks for work that can fail. The first error is
// returned after all started chunks have finished.
func ForChunksErr(n int, f func(lo, hi int) error, cfg Config) error {
	ranges := cfg.Split(n)
	if len(ranges) <= 1 {
		if n <= 0 {
			return nil
		}
		return f(0, n)
	}

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for _, r := range ranges {
		g.Go(func() error {
			return f(r[0], r[1])
		})
	}
	return g.Wait()
}

// ForEach runs f(i) for i in [0, n), one goroutine per item, with at most
// NumWorkers running at once. Use it for few, coarse items.
func ForEach(n int, f func(i int), cfg Config) {
	if cfg.Serial() || n <= 1 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}
	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			f(i)
			return nil
		})
	}
	_ = g.Wait()
}

// ForBatch is For over a batch x rows grid, as used by batched matmul.
func ForBatch(batch, rows int, f func(b, r int), cfg Config) {
	if rows == 0 {
		return
	}
	For(batch*rows, func(k int) {
		f(k/rows, k%rows)
	}, cfg)
}
