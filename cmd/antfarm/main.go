//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"antfarm/internal/app"
	"antfarm/internal/sims/antfarm"

	"github.com/hajimehoshi/ebiten/v2"
)

const hudWidth = 240

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [checkpoint]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		cfg.Checkpoint = flag.Arg(0)
	}

	logger := cfg.Logger(os.Stderr)
	simCfg, err := cfg.SimConfig(flag.CommandLine)
	if err != nil {
		logger.Error("bad configuration", "err", err)
		os.Exit(2)
	}

	world := antfarm.NewWithConfig(simCfg)
	world.Reset(0)
	saver := &antfarm.Autosaver{Path: cfg.Checkpoint, Every: cfg.CheckpointEvery, Logger: logger}
	if cfg.Checkpoint != "" {
		loaded, err := world.LoadCheckpointFile(cfg.Checkpoint)
		if err != nil {
			logger.Error("cannot resume", "err", err)
			os.Exit(1)
		}
		logger.Info("starting", "checkpoint", cfg.Checkpoint, "resumed", loaded, "seed", simCfg.Seed)
	}

	game := app.New(world, app.Options{
		Scale:    cfg.Scale,
		TPS:      cfg.TPS,
		Seed:     simCfg.Seed,
		HUDWidth: hudWidth,
		OnStep:   func() { saver.Observe(world) },
		Save:     func() error { return saver.Save(world) },
		CopyText: world.CheckpointText,
		Logger:   logger,
	})

	size := world.Size()
	ebiten.SetWindowTitle("xantfarm")
	ebiten.SetTPS(max(ebiten.DefaultTPS, cfg.TPS))
	ebiten.SetWindowSize(size.W*cfg.Scale+hudWidth, size.H*cfg.Scale)

	err = ebiten.RunGame(game)
	if saveErr := saver.Save(world); saveErr != nil && err == nil {
		err = saveErr
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("exiting", "err", err)
		os.Exit(1)
	}
}
