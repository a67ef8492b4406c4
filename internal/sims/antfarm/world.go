package antfarm

import (
	"fmt"
	"image"

	"antfarm/internal/core"
)

// Stats counts notable events since the last Reset.
type Stats struct {
	Digs        int
	Drops       int
	Falls       int
	Tips        int
	Compactions int
	Pokes       int
	Trapped     int
}

// World is the whole simulation: terrain, ants and loose sand. It is not safe
// for concurrent use; hosts drive it from a single loop.
type World struct {
	cfg Config

	w, h    int
	surface int

	terrain *Terrain
	ants    []Ant
	grains  []grain
	dirty   Dirty
	display []uint8

	tick  int
	stats Stats
	rng   *core.RNG
}

// New returns a world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. The
// world is empty until Reset is called.
func NewWithConfig(cfg Config) *World {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	if cfg.Ants < 0 {
		cfg.Ants = 0
	}
	w := &World{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		surface: SurfaceRow(cfg.Height, cfg.Params.DirtFraction),
		terrain: NewTerrain(cfg.Width, cfg.Height),
		ants:    make([]Ant, cfg.Ants),
		dirty:   newDirty(cfg.Width, cfg.Height),
		display: make([]uint8, cfg.Width*cfg.Height),
		rng:     core.NewRNG(cfg.Seed),
	}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "antfarm" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the display buffer: terrain with ants stamped on top.
func (w *World) Cells() []uint8 { return w.display }

// Terrain exposes the live terrain grid.
func (w *World) Terrain() *Terrain { return w.terrain }

// Ants exposes the ant list. Callers must treat it as read-only.
func (w *World) Ants() []Ant { return w.ants }

// Surface returns the row where dirt started at generation time.
func (w *World) Surface() int { return w.surface }

// Tick returns the number of steps taken since Reset.
func (w *World) Tick() int { return w.tick }

// Stats returns the event counters.
func (w *World) Stats() Stats { return w.stats }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Reset builds a fresh world. A zero seed falls back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.terrain.Generate(w.surface)
	w.grains = w.grains[:0]
	w.tick = 0
	w.stats = Stats{}

	row := 1
	if row >= w.h {
		row = w.h - 1
	}
	for i := range w.ants {
		w.ants[i] = Ant{
			X:   w.rng.IntN(w.w),
			Y:   row,
			Dir: Direction(w.rng.IntN(int(numDirections))),
		}
		w.behave(&w.ants[i], Wandering)
	}

	w.dirty.MarkAll()
	w.refreshDisplay()
}

// Step advances the world by one tick: every ant in index order, then one
// pass of falling sand.
func (w *World) Step() {
	w.moveAnts()
	if len(w.grains) > 0 {
		w.sandFall()
	}
	w.tick++
	w.refreshDisplay()
}

// TakeDirty returns the grid rectangles changed since the previous call.
func (w *World) TakeDirty() []image.Rectangle { return w.dirty.Take() }

// StatusLines summarizes the world for a HUD.
func (w *World) StatusLines() []string {
	var wandering, carrying, panicking int
	for _, a := range w.ants {
		switch a.Behavior {
		case Wandering:
			wandering++
		case Carrying:
			carrying++
		case Panicking:
			panicking++
		}
	}
	return []string{
		fmt.Sprintf("tick %d", w.tick),
		fmt.Sprintf("ants %d/%d/%d wander/carry/panic", wandering, carrying, panicking),
		fmt.Sprintf("falling %d", w.Falling()),
		fmt.Sprintf("digs %d drops %d", w.stats.Digs, w.stats.Drops),
		fmt.Sprintf("compactions %d", w.stats.Compactions),
	}
}
