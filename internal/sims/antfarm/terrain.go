package antfarm

import (
	"math"

	"antfarm/internal/core"
)

// Element enumerates the contents of a terrain cell.
type Element uint8

const (
	Air Element = iota
	Dirt
	Sand
)

func (e Element) String() string {
	switch e {
	case Air:
		return "air"
	case Dirt:
		return "dirt"
	case Sand:
		return "sand"
	default:
		return "invalid"
	}
}

// Terrain is the fixed W×H element grid. Rows grow downward, which is also
// the direction of gravity. Get and Set panic on out-of-range coordinates;
// callers check In first.
type Terrain struct {
	grid *core.ByteGrid
}

// NewTerrain allocates an all-air terrain.
func NewTerrain(w, h int) *Terrain {
	return &Terrain{grid: core.NewByteGrid(w, h)}
}

// Width returns the number of columns.
func (t *Terrain) Width() int { return t.grid.W }

// Height returns the number of rows.
func (t *Terrain) Height() int { return t.grid.H }

// In reports whether (x, y) is inside the terrain.
func (t *Terrain) In(x, y int) bool { return t.grid.In(x, y) }

// Get returns the element at (x, y).
func (t *Terrain) Get(x, y int) Element { return Element(t.grid.At(x, y)) }

// Set stores e at (x, y).
func (t *Terrain) Set(x, y int, e Element) { t.grid.Set(x, y, uint8(e)) }

// IsAir reports whether (x, y) is inside the terrain and holds air.
func (t *Terrain) IsAir(x, y int) bool {
	return t.grid.In(x, y) && Element(t.grid.At(x, y)) == Air
}

// Cells exposes the raw element values in row-major order.
func (t *Terrain) Cells() []uint8 { return t.grid.Cells() }

// Generate lays out open sky above the surface row and dirt from it down.
func (t *Terrain) Generate(surface int) {
	t.grid.FillRows(0, surface, uint8(Air))
	t.grid.FillRows(surface, t.grid.H, uint8(Dirt))
}

// CopyFrom replaces the contents of t with src. Sizes must match.
func (t *Terrain) CopyFrom(src *Terrain) error {
	return t.grid.CopyFrom(src.grid)
}

// Count returns the number of cells holding e.
func (t *Terrain) Count(e Element) int {
	n := 0
	for _, c := range t.grid.Cells() {
		if Element(c) == e {
			n++
		}
	}
	return n
}

// SurfaceRow returns the first dirt row for a terrain of height h whose lower
// dirtFraction starts as dirt.
func SurfaceRow(h int, dirtFraction float64) int {
	s := int(math.Round(float64(h) * (1 - dirtFraction)))
	if s < 0 {
		return 0
	}
	if s > h {
		return h
	}
	return s
}
