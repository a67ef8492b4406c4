package antfarm

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutosaverSavesOnSchedule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farm.ckpt")
	var logs bytes.Buffer
	saver := &Autosaver{
		Path:   path,
		Every:  3,
		Logger: slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}

	cfg := busyConfig()
	w := NewWithConfig(cfg)
	w.Reset(6)
	require.NoError(t, saver.Observe(w), "tick 0 never saves")
	_, err := os.Stat(path)
	require.True(t, errors.Is(err, os.ErrNotExist))

	_, err = w.Run(2, saver.Observe)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.True(t, errors.Is(err, os.ErrNotExist))

	_, err = w.Run(1, saver.Observe)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text, err := w.CheckpointText()
	require.NoError(t, err)
	assert.Equal(t, text, string(data))
	assert.Contains(t, logs.String(), "checkpoint saved")
	assert.Contains(t, logs.String(), "tick=3")
}

func TestAutosaverReportsFailure(t *testing.T) {
	var logs bytes.Buffer
	saver := &Autosaver{
		Path:   filepath.Join(t.TempDir(), "missing", "farm.ckpt"),
		Logger: slog.New(slog.NewTextHandler(&logs, nil)),
	}
	w := New(5, 5)
	w.Reset(1)
	assert.Error(t, saver.Save(w))
	assert.Contains(t, logs.String(), "checkpoint failed")
}

func TestRunSurvivesFailingAutosave(t *testing.T) {
	var logs bytes.Buffer
	saver := &Autosaver{
		Path:   filepath.Join(t.TempDir(), "missing", "farm.ckpt"),
		Every:  10,
		Logger: slog.New(slog.NewTextHandler(&logs, nil)),
	}
	w := NewWithConfig(busyConfig())
	w.Reset(2)
	rep, err := w.Run(100, saver.Observe)
	require.NoError(t, err)
	assert.Equal(t, 100, rep.Ticks)
	assert.Equal(t, 100, w.Tick())
	assert.Equal(t, 10, strings.Count(logs.String(), "checkpoint failed"))
}

func TestAutosaverDisabled(t *testing.T) {
	var saver *Autosaver
	w := New(5, 5)
	w.Reset(1)
	assert.NoError(t, saver.Observe(w))
	assert.NoError(t, (&Autosaver{}).Save(w))
}

func TestSimulateReport(t *testing.T) {
	cfg := busyConfig()
	cfg.Seed = 12
	_, a, err := Simulate(cfg, 600)
	require.NoError(t, err)
	_, b, err := Simulate(cfg, 600)
	require.NoError(t, err)

	assert.Equal(t, a, b, "same config, same report")
	assert.Equal(t, 600, a.Ticks)
	assert.Equal(t, cfg.Width*cfg.Height, a.Air+a.Dirt+a.Sand)
	assert.Equal(t, cfg.Ants, a.Behaviors[0]+a.Behaviors[1]+a.Behaviors[2])
	assert.Positive(t, a.Stats.Digs)
}

func TestRunStopsOnObserverError(t *testing.T) {
	stop := errors.New("stop")
	w := NewWithConfig(busyConfig())
	w.Reset(1)
	rep, err := w.Run(100, func(w *World) error {
		if w.Tick() == 10 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 10, rep.Ticks)
}

func TestSimulateSeedsMatchesSerialRuns(t *testing.T) {
	cfg := busyConfig()
	seeds := []int64{3, 1, 4, 1, 5}
	got := SimulateSeeds(cfg, 200, seeds, 3)
	require.Len(t, got, len(seeds))
	for i, res := range got {
		require.NoError(t, res.Err)
		assert.Equal(t, seeds[i], res.Seed)
		run := cfg
		run.Seed = seeds[i]
		_, want, err := Simulate(run, 200)
		require.NoError(t, err)
		assert.Equal(t, want, res.Report, "seed %d", seeds[i])
	}
	assert.Equal(t, got[1].Report, got[3].Report)
	assert.Empty(t, SimulateSeeds(cfg, 10, nil, 0))
}
