package antfarm

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pokeWorld(t *testing.T, seed int64, a Ant) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Ants = 12, 12, 1
	w := NewWithConfig(cfg)
	w.Reset(seed)
	w.ants[0] = a
	return w
}

func TestPokeOnAntPanicsAndShovesOneCell(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		w := pokeWorld(t, seed, Ant{X: 5, Y: 5, Dir: LeftDown, Behavior: Wandering, Timer: 3})
		w.Poke(5, 5)

		a := w.Ants()[0]
		require.Equal(t, Panicking, a.Behavior, "seed %d", seed)
		assert.LessOrEqual(t, abs(a.X-5), 1, "seed %d", seed)
		assert.LessOrEqual(t, abs(a.Y-5), 1, "seed %d", seed)
		assert.True(t, a.Dir.Valid())
		assert.True(t, a.Timer >= 0 && a.Timer <= 2, "seed %d timer=%d", seed, a.Timer)
		assert.Equal(t, 1, w.Stats().Pokes)
	}
}

func TestPokeBesideAntPushesAway(t *testing.T) {
	w := pokeWorld(t, 3, Ant{X: 5, Y: 5, Dir: LeftDown, Behavior: Wandering, Timer: 3})
	w.Poke(4, 6)
	a := w.Ants()[0]
	assert.Equal(t, 6, a.X)
	assert.Equal(t, 4, a.Y)
}

func TestPokeOutOfReachIsIgnored(t *testing.T) {
	before := Ant{X: 5, Y: 5, Dir: LeftDown, Behavior: Wandering, Timer: 3}
	w := pokeWorld(t, 3, before)
	w.Poke(7, 5)
	assert.Equal(t, before, w.Ants()[0])
	assert.Zero(t, w.Stats().Pokes)
}

func TestPokeMakesCarrierDrop(t *testing.T) {
	w := pokeWorld(t, 9, Ant{X: 5, Y: 2, Dir: LeftDown, Behavior: Carrying, Timer: 3})
	require.Equal(t, Air, w.Terrain().Get(5, 2))
	w.Poke(5, 3)

	assert.Equal(t, Sand, w.Terrain().Get(5, 2))
	assert.Equal(t, 1, w.Stats().Drops)
	assert.Equal(t, Panicking, w.Ants()[0].Behavior)
	assert.Contains(t, w.FallingCells(), image.Pt(5, 2))
}

func TestPokeClampsAtEdges(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		w := pokeWorld(t, seed, Ant{X: 0, Y: 0, Dir: RightDown, Timer: 3})
		w.Poke(0, 0)
		a := w.Ants()[0]
		assert.True(t, a.X >= 0 && a.X <= 1, "seed %d x=%d", seed, a.X)
		assert.True(t, a.Y >= 0 && a.Y <= 1, "seed %d y=%d", seed, a.Y)

		w = pokeWorld(t, seed, Ant{X: 11, Y: 11, Dir: RightDown, Timer: 3})
		w.Poke(10, 10)
		a = w.Ants()[0]
		assert.Equal(t, 11, a.X)
		assert.Equal(t, 11, a.Y)
	}
}

func TestPokePixelScalesCoordinates(t *testing.T) {
	w := pokeWorld(t, 4, Ant{X: 5, Y: 5, Dir: LeftDown, Timer: 3})
	w.PokePixel(-3, 20, 4)
	assert.Zero(t, w.Stats().Pokes)
	w.PokePixel(23, 21, 4)
	assert.Equal(t, 1, w.Stats().Pokes)
	assert.Equal(t, Panicking, w.Ants()[0].Behavior)
}

func TestPanickingAntCalmsDown(t *testing.T) {
	// Deep in the dirt so the ant always has footing.
	w := pokeWorld(t, 2, Ant{X: 5, Y: 8, Dir: LeftDown, Timer: 3})
	w.cfg.Params.CalmChance = 1
	w.Poke(5, 8)
	for i := 0; i < 5; i++ {
		w.Step()
	}
	assert.NotEqual(t, Panicking, w.Ants()[0].Behavior)
}
