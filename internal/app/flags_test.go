package app

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"antfarm/internal/sims/antfarm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*Config, *flag.FlagSet) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return cfg, fs
}

func TestDefaultsMatchWorldDefaults(t *testing.T) {
	cfg, fs := parse(t)
	sim, err := cfg.SimConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, antfarm.DefaultConfig(), sim)
	assert.Equal(t, 15, cfg.TPS)
	assert.Equal(t, antfarm.DefaultCheckpointEvery, cfg.CheckpointEvery)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farm.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 30\nheight = 20\nants = 2\n[params]\ncarry_timer = 9\n"), 0o644))

	cfg, fs := parse(t, "-config", path, "-ants", "7")
	sim, err := cfg.SimConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, 30, sim.Width)
	assert.Equal(t, 20, sim.Height)
	assert.Equal(t, 7, sim.Ants, "explicit flag wins")
	assert.Equal(t, 9, sim.Params.CarryTimer)
	assert.Equal(t, antfarm.DefaultConfig().Seed, sim.Seed)
}

func TestZeroSeedPicksOne(t *testing.T) {
	cfg, fs := parse(t, "-seed", "0")
	sim, err := cfg.SimConfig(fs)
	require.NoError(t, err)
	assert.NotZero(t, sim.Seed)
}

func TestInvalidFlagsRejected(t *testing.T) {
	cfg, fs := parse(t, "-ants", "0")
	_, err := cfg.SimConfig(fs)
	assert.ErrorIs(t, err, antfarm.ErrBadConfig)

	cfg, fs = parse(t, "-config", filepath.Join(t.TempDir(), "missing.toml"))
	_, err = cfg.SimConfig(fs)
	assert.Error(t, err)
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg, _ := parse(t)
	cfg.Logger(&buf).Debug("hidden")
	assert.Empty(t, buf.String())

	cfg, _ = parse(t, "-v")
	cfg.Logger(&buf).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
