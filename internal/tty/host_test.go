package tty

import (
	"context"
	"image"
	"testing"
	"time"

	"antfarm/internal/core"
	"antfarm/internal/sims/antfarm"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

// recorder is a minimal sim that remembers what the host asked of it.
type recorder struct {
	size  core.Size
	cells []uint8
	steps int
	seeds []int64
	pokes []image.Point
}

func newRecorder(w, h int) *recorder {
	return &recorder{size: core.Size{W: w, H: h}, cells: make([]uint8, w*h)}
}

func (r *recorder) Name() string          { return "recorder" }
func (r *recorder) Size() core.Size       { return r.size }
func (r *recorder) Reset(seed int64)      { r.seeds = append(r.seeds, seed) }
func (r *recorder) Step()                 { r.steps++ }
func (r *recorder) Cells() []uint8        { return r.cells }
func (r *recorder) Poke(x, y int)         { r.pokes = append(r.pokes, image.Pt(x, y)) }
func (r *recorder) StatusLines() []string { return []string{"hello", "world"} }

func TestGridSize(t *testing.T) {
	screen := newScreen(t, 30, 11)
	w, h := GridSize(screen)
	assert.Equal(t, 30, w)
	assert.Equal(t, 20, h)
}

func TestDrawUsesHalfBlocks(t *testing.T) {
	screen := newScreen(t, 8, 5)
	w, h := GridSize(screen)
	world := antfarm.New(w, h)
	world.Reset(3)

	host := New(screen, world, Options{TPS: 15})
	host.Draw(world.TakeDirty())

	cells, cols, rows := screen.GetContents()
	require.Equal(t, 8, cols)
	require.Equal(t, 5, rows)

	palette := world.Palette()
	air := tcell.NewRGBColor(int32(palette[antfarm.DisplayAir].R), int32(palette[antfarm.DisplayAir].G), int32(palette[antfarm.DisplayAir].B))
	dirt := tcell.NewRGBColor(int32(palette[antfarm.DisplayDirt].R), int32(palette[antfarm.DisplayDirt].G), int32(palette[antfarm.DisplayDirt].B))

	// Surface is row 3 of 8, so terminal row 3 (grid rows 6 and 7) is dirt.
	bottom := cells[3*cols+0]
	require.Equal(t, []rune{halfBlock}, bottom.Runes)
	fg, bg, _ := bottom.Style.Decompose()
	assert.Equal(t, dirt, fg)
	assert.Equal(t, dirt, bg)

	// Terminal row 1 holds grid rows 2 (air) and 3 (dirt) unless an ant is
	// standing there.
	mixed := cells[1*cols+7]
	fg, bg, _ = mixed.Style.Decompose()
	if world.Cells()[2*w+7] == antfarm.DisplayAir && world.Cells()[3*w+7] == antfarm.DisplayDirt {
		assert.Equal(t, air, fg)
		assert.Equal(t, dirt, bg)
	}

	status := cells[4*cols : 5*cols]
	assert.Equal(t, []rune{'t'}, status[0].Runes)
}

func TestHandleEventKeys(t *testing.T) {
	screen := newScreen(t, 10, 4)
	sim := newRecorder(10, 6)
	saved := 0
	host := New(screen, sim, Options{TPS: 10, Seed: 5, Save: func() error { saved++; return nil }})
	require.False(t, host.Paused())

	assert.False(t, host.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.True(t, host.Paused())
	assert.False(t, host.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.False(t, host.Paused())

	host.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	assert.Equal(t, 1, sim.steps)

	host.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	assert.Equal(t, []int64{5}, sim.seeds)
	host.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
	require.Len(t, sim.seeds, 2)
	host.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	assert.Equal(t, sim.seeds[1], sim.seeds[2], "r repeats the latest seed")

	host.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	assert.Equal(t, 1, saved)

	assert.True(t, host.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, host.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestMouseMotionPokes(t *testing.T) {
	screen := newScreen(t, 10, 4)
	sim := newRecorder(10, 6)
	host := New(screen, sim, Options{})

	host.HandleEvent(tcell.NewEventMouse(4, 2, tcell.ButtonNone, tcell.ModNone))
	host.HandleEvent(tcell.NewEventMouse(4, 2, tcell.ButtonNone, tcell.ModNone))
	host.HandleEvent(tcell.NewEventMouse(4, 3, tcell.ButtonNone, tcell.ModNone))
	host.HandleEvent(tcell.NewEventMouse(5, 1, tcell.ButtonNone, tcell.ModNone))

	assert.Equal(t, []image.Point{{X: 4, Y: 4}, {X: 4, Y: 5}, {X: 5, Y: 2}, {X: 5, Y: 3}}, sim.pokes,
		"repeats and the status row are ignored")
}

func TestMouseMotionOddHeightPokesTopRowOnly(t *testing.T) {
	screen := newScreen(t, 10, 4)
	sim := newRecorder(10, 5)
	host := New(screen, sim, Options{})

	host.HandleEvent(tcell.NewEventMouse(1, 2, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, []image.Point{{X: 1, Y: 4}}, sim.pokes)
}

func TestManualModeStartsPaused(t *testing.T) {
	screen := newScreen(t, 10, 4)
	host := New(screen, newRecorder(10, 6), Options{TPS: 0})
	assert.True(t, host.Paused())
}

func TestRunStepsUntilQuit(t *testing.T) {
	screen := newScreen(t, 10, 4)
	sim := newRecorder(10, 6)
	stepped := make(chan struct{}, 1)
	host := New(screen, sim, Options{TPS: 1000, OnStep: func() {
		select {
		case stepped <- struct{}{}:
		default:
		}
	}})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- host.Run(ctx) }()

	select {
	case <-stepped:
	case <-ctx.Done():
		t.Fatal("no step before timeout")
	}
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.NoError(t, <-done)

	cells, cols, _ := screen.GetContents()
	status := cells[3*cols : 4*cols]
	assert.Equal(t, []rune{'h'}, status[0].Runes)
}

func TestRunStopsWithContext(t *testing.T) {
	screen := newScreen(t, 10, 4)
	host := New(screen, newRecorder(10, 6), Options{TPS: 0})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, host.Run(ctx), context.Canceled)
}
