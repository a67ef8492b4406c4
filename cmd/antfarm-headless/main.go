package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"antfarm/internal/app"
	"antfarm/internal/sims/antfarm"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return errors.New("expected key=value")
	}
	*l = append(*l, value)
	return nil
}

func (l kvList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	ticks := flag.Int("ticks", 20000, "number of ticks to simulate")
	runs := flag.Int("runs", 1, "number of seeds to run, starting at -seed (more than one skips checkpoints)")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs when -runs > 1")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	logger := cfg.Logger(os.Stderr)
	simCfg, err := cfg.SimConfig(flag.CommandLine)
	if err == nil {
		simCfg.Apply(overrides.Map())
		err = simCfg.Validate()
	}
	if err != nil {
		logger.Error("bad configuration", "err", err)
		os.Exit(2)
	}

	if *runs > 1 {
		seeds := make([]int64, *runs)
		for i := range seeds {
			seeds[i] = simCfg.Seed + int64(i)
		}
		fmt.Printf("Running %d seeds (%d workers, %d ticks, %dx%d, %d ants)\n",
			len(seeds), *workers, *ticks, simCfg.Width, simCfg.Height, simCfg.Ants)
		for _, res := range antfarm.SimulateSeeds(simCfg, *ticks, seeds, *workers) {
			if res.Err != nil {
				logger.Error("run failed", "seed", res.Seed, "err", res.Err)
				continue
			}
			printReport(res.Seed, res.Report)
		}
		return
	}

	w := antfarm.NewWithConfig(simCfg)
	w.Reset(0)
	saver := &antfarm.Autosaver{Path: cfg.Checkpoint, Every: cfg.CheckpointEvery, Logger: logger}
	if cfg.Checkpoint != "" {
		loaded, err := w.LoadCheckpointFile(cfg.Checkpoint)
		if err != nil {
			logger.Error("cannot resume", "err", err)
			os.Exit(1)
		}
		logger.Info("starting", "checkpoint", cfg.Checkpoint, "resumed", loaded, "seed", simCfg.Seed)
	}

	rep, err := w.Run(*ticks, saver.Observe)
	if err != nil {
		logger.Error("run stopped", "tick", w.Tick(), "err", err)
		os.Exit(1)
	}
	if err := saver.Save(w); err != nil {
		os.Exit(1)
	}
	printReport(simCfg.Seed, rep)
}

func printReport(seed int64, rep antfarm.Report) {
	s := rep.Stats
	fmt.Printf("seed %d: %d ticks, air %d dirt %d sand %d, peak falling %d\n",
		seed, rep.Ticks, rep.Air, rep.Dirt, rep.Sand, rep.PeakFalling)
	fmt.Printf("  digs %d drops %d falls %d tips %d compactions %d trapped %d\n",
		s.Digs, s.Drops, s.Falls, s.Tips, s.Compactions, s.Trapped)
	fmt.Printf("  ants: %d wandering, %d carrying, %d panicking\n",
		rep.Behaviors[antfarm.Wandering], rep.Behaviors[antfarm.Carrying], rep.Behaviors[antfarm.Panicking])
}
