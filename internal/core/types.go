package core

import (
	"image"
	"image/color"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a grid simulation must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Disturber accepts point disturbances in grid coordinates, e.g. from a
// pointer hovering over the view.
type Disturber interface {
	Poke(x, y int)
}

// DirtyReporter hands out the grid rectangles that changed since the last
// call so hosts can repaint only those regions.
type DirtyReporter interface {
	TakeDirty() []image.Rectangle
}

// Palettized sims map their cell values to colors.
type Palettized interface {
	Palette() []color.RGBA
}

// StatusReporter exposes short human-readable status lines for a HUD.
type StatusReporter interface {
	StatusLines() []string
}
