// Package sweep runs independent gradient-descent runs over a set of step
// sizes, optionally in parallel.
package sweep

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/born-ml/gradient/internal/descent"
)

// Config controls parallel execution of a sweep.
type Config struct {
	Workers      int // Number of worker goroutines; <= 1 runs sequentially.
	MinChunkSize int // Minimum runs per goroutine.
}

// DefaultConfig returns one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Workers:      runtime.NumCPU(),
		MinChunkSize: 1,
	}
}

// RuleFactory builds a fresh update rule for one step size. Each run gets
// its own rule, so stateful rules are never shared between goroutines.
type RuleFactory func(lr float64) descent.Rule

// Point is the outcome of one run in a sweep.
type Point struct {
	LR     float64
	Result *descent.Result
}

// Job describes what every run of a sweep has in common.
type Job struct {
	Objective  descent.Objective
	Start      float64
	Iterations int
	Strict     bool
	NewRule    RuleFactory // default: descent.NewFixed
}

// Run performs one Minimize per step size and returns the points in the
// order of rates. Errors from individual runs are joined; points for failed
// runs have a nil Result.
func Run(job Job, rates []float64, cfg Config) ([]Point, error) {
	newRule := job.NewRule
	if newRule == nil {
		newRule = func(lr float64) descent.Rule { return descent.NewFixed(lr) }
	}

	points := make([]Point, len(rates))
	errs := make([]error, len(rates))

	forEach(len(rates), func(i int) {
		res, err := descent.Minimize(job.Objective, job.Start, descent.Config{
			Iterations: job.Iterations,
			Rule:       newRule(rates[i]),
			Strict:     job.Strict,
		})
		points[i] = Point{LR: rates[i], Result: res}
		if err != nil {
			errs[i] = fmt.Errorf("lr %v: %w", rates[i], err)
		}
	}, cfg)

	return points, errors.Join(errs...)
}

// forEach executes f(i) for i in [0, n), splitting the range into chunks
// across cfg.Workers goroutines.
func forEach(n int, f func(i int), cfg Config) {
	minChunk := max(cfg.MinChunkSize, 1)
	if cfg.Workers <= 1 || n <= minChunk {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.Workers-1)/cfg.Workers, minChunk)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
