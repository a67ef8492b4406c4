package antfarm

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// ErrBadConfig reports a configuration value outside its valid range.
var ErrBadConfig = errors.New("antfarm: invalid configuration")

// Params holds the behavioral tunables. Chances are per-decision
// probabilities in [0, 1]; timers are base tick counts before jitter.
type Params struct {
	DirtFraction float64 `toml:"dirt_fraction"`
	CompactDepth int     `toml:"compact_depth"`

	DigChance         float64 `toml:"dig_chance"`
	DropChance        float64 `toml:"drop_chance"`
	TurnChance        float64 `toml:"turn_chance"`
	ConcaveDigChance  float64 `toml:"concave_dig_chance"`
	ConvexDropChance  float64 `toml:"convex_drop_chance"`
	CalmChance        float64 `toml:"calm_chance"`
	TrappedDropChance float64 `toml:"trapped_drop_chance"`

	WanderTimer int `toml:"wander_timer"`
	CarryTimer  int `toml:"carry_timer"`
	PanicTimer  int `toml:"panic_timer"`

	// AntReach is half of an ant's footprint in cells. It sizes both the
	// repaint box around an ant and the area a poke affects.
	AntReach int `toml:"ant_reach"`
}

// Config controls the world dimensions, population and seed.
type Config struct {
	Width  int   `toml:"width"`
	Height int   `toml:"height"`
	Seed   int64 `toml:"seed"`
	Ants   int   `toml:"ants"`

	Params Params `toml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  200,
		Height: 150,
		Seed:   1991,
		Ants:   10,
		Params: Params{
			DirtFraction:      0.666667,
			CompactDepth:      15,
			DigChance:         0.003,
			DropChance:        0.003,
			TurnChance:        0.005,
			ConcaveDigChance:  0.1,
			ConvexDropChance:  0.1,
			CalmChance:        0.01,
			TrappedDropChance: 0.05,
			WanderTimer:       4,
			CarryTimer:        5,
			PanicTimer:        1,
			AntReach:          1,
		},
	}
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrBadConfig, c.Width, c.Height)
	}
	if c.Ants <= 0 {
		return fmt.Errorf("%w: ants=%d must be positive", ErrBadConfig, c.Ants)
	}
	p := c.Params
	if p.DirtFraction < 0 || p.DirtFraction > 1 {
		return fmt.Errorf("%w: dirt_fraction=%v outside [0,1]", ErrBadConfig, p.DirtFraction)
	}
	if p.CompactDepth <= 0 {
		return fmt.Errorf("%w: compact_depth=%d must be positive", ErrBadConfig, p.CompactDepth)
	}
	chances := []struct {
		key string
		v   float64
	}{
		{"dig_chance", p.DigChance},
		{"drop_chance", p.DropChance},
		{"turn_chance", p.TurnChance},
		{"concave_dig_chance", p.ConcaveDigChance},
		{"convex_drop_chance", p.ConvexDropChance},
		{"calm_chance", p.CalmChance},
		{"trapped_drop_chance", p.TrappedDropChance},
	}
	for _, ch := range chances {
		if ch.v < 0 || ch.v > 1 {
			return fmt.Errorf("%w: %s=%v outside [0,1]", ErrBadConfig, ch.key, ch.v)
		}
	}
	if p.WanderTimer < 1 || p.CarryTimer < 1 || p.PanicTimer < 1 {
		return fmt.Errorf("%w: behavior timers must be at least 1", ErrBadConfig)
	}
	if p.AntReach < 0 {
		return fmt.Errorf("%w: ant_reach=%d must not be negative", ErrBadConfig, p.AntReach)
	}
	return nil
}

// LoadConfigFile decodes a TOML file on top of the defaults. Keys absent from
// the file keep their default values.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parse %s: %v", ErrBadConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overrides fields named in kv. Unknown keys and unparsable or
// out-of-range values are ignored.
func (c *Config) Apply(kv map[string]string) {
	if kv == nil {
		return
	}
	if v, ok := kv["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := kv["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := kv["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := kv["ants"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Ants = parsed
		}
	}
	for key, v := range kv {
		if dst := c.Params.intField(key); dst != nil {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*dst = parsed
			}
			continue
		}
		if dst := c.Params.floatField(key); dst != nil {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
				*dst = parsed
			}
		}
	}
}

func (p *Params) intField(key string) *int {
	switch key {
	case "compact_depth":
		return &p.CompactDepth
	case "wander_timer":
		return &p.WanderTimer
	case "carry_timer":
		return &p.CarryTimer
	case "panic_timer":
		return &p.PanicTimer
	case "ant_reach":
		return &p.AntReach
	}
	return nil
}

func (p *Params) floatField(key string) *float64 {
	switch key {
	case "dirt_fraction":
		return &p.DirtFraction
	case "dig_chance":
		return &p.DigChance
	case "drop_chance":
		return &p.DropChance
	case "turn_chance":
		return &p.TurnChance
	case "concave_dig_chance":
		return &p.ConcaveDigChance
	case "convex_drop_chance":
		return &p.ConvexDropChance
	case "calm_chance":
		return &p.CalmChance
	case "trapped_drop_chance":
		return &p.TrappedDropChance
	}
	return nil
}
