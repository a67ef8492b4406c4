package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"antfarm/internal/app"
	"antfarm/internal/sims/antfarm"
	"antfarm/internal/tty"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "file to write logs to (the terminal is busy drawing)")
	flag.Parse()
	if flag.NArg() > 0 {
		cfg.Checkpoint = flag.Arg(0)
	}

	if err := run(cfg, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *app.Config, logPath string) error {
	var logOut io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger := cfg.Logger(logOut)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	simCfg, err := cfg.SimConfig(flag.CommandLine)
	if err != nil {
		return err
	}
	// The grid fills the terminal unless -w or -h were given.
	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	cols, rows := tty.GridSize(screen)
	if !explicit["w"] {
		simCfg.Width = cols
	}
	if !explicit["h"] {
		simCfg.Height = rows
	}
	if err := simCfg.Validate(); err != nil {
		return err
	}
	world := antfarm.NewWithConfig(simCfg)
	world.Reset(0)
	saver := &antfarm.Autosaver{Path: cfg.Checkpoint, Every: cfg.CheckpointEvery, Logger: logger}
	if cfg.Checkpoint != "" {
		loaded, err := world.LoadCheckpointFile(cfg.Checkpoint)
		if err != nil {
			return err
		}
		logger.Info("starting", "checkpoint", cfg.Checkpoint, "resumed", loaded, "seed", simCfg.Seed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	host := tty.New(screen, world, tty.Options{
		TPS:    cfg.TPS,
		Seed:   simCfg.Seed,
		OnStep: func() { saver.Observe(world) },
		Save:   func() error { return saver.Save(world) },
		Logger: logger,
	})
	err = host.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return errors.Join(err, saver.Save(world))
}
