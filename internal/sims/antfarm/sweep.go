package antfarm

import (
	"runtime"
	"sync"
)

// SeedReport pairs a seed with the report of a run started from it.
type SeedReport struct {
	Seed   int64
	Report Report
	Err    error
}

// SimulateSeeds runs cfg once per seed for ticks steps on a pool of workers.
// Results come back in the order of seeds. workers <= 0 uses one per CPU.
func SimulateSeeds(cfg Config, ticks int, seeds []int64, workers int) []SeedReport {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(seeds) {
		workers = len(seeds)
	}

	out := make([]SeedReport, len(seeds))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				run := cfg
				run.Seed = seeds[idx]
				_, rep, err := Simulate(run, ticks)
				out[idx] = SeedReport{Seed: seeds[idx], Report: rep, Err: err}
			}
		}()
	}
	for i := range seeds {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return out
}
