package app

import (
	"flag"
	"io"
	"log/slog"
	"time"

	"antfarm/internal/sims/antfarm"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Scale int
	TPS   int
	Seed  int64

	Width  int
	Height int
	Ants   int

	ConfigFile      string
	Checkpoint      string
	CheckpointEvery int
	Verbose         bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := antfarm.DefaultConfig()
	return &Config{
		Scale:           4,
		TPS:             15,
		Seed:            def.Seed,
		Width:           def.Width,
		Height:          def.Height,
		Ants:            def.Ants,
		Checkpoint:      "xantfarm.ckpt",
		CheckpointEvery: antfarm.DefaultCheckpointEvery,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second (0 steps only on demand)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 picks one from the clock)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Ants, "ants", c.Ants, "number of ants")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "TOML file with world and behavior settings")
	fs.StringVar(&c.Checkpoint, "checkpoint", c.Checkpoint, "checkpoint file to resume from and save to (empty disables)")
	fs.IntVar(&c.CheckpointEvery, "checkpoint-every", c.CheckpointEvery, "ticks between automatic checkpoints")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log debug messages")
}

// SimConfig resolves the world configuration: defaults, then the TOML file
// if one was named, then any flag set explicitly on fs.
func (c *Config) SimConfig(fs *flag.FlagSet) (antfarm.Config, error) {
	cfg := antfarm.DefaultConfig()
	if c.ConfigFile != "" {
		loaded, err := antfarm.LoadConfigFile(c.ConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	set := map[string]bool{}
	if fs != nil {
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	}
	if set["w"] || c.ConfigFile == "" {
		cfg.Width = c.Width
	}
	if set["h"] || c.ConfigFile == "" {
		cfg.Height = c.Height
	}
	if set["ants"] || c.ConfigFile == "" {
		cfg.Ants = c.Ants
	}
	if set["seed"] || c.ConfigFile == "" {
		cfg.Seed = c.Seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, cfg.Validate()
}

// Logger returns a text logger writing to w at the level picked by -v.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
