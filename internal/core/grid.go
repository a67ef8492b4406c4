package core

import "fmt"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). Out-of-range coordinates are a programming
// error and panic.
func (g *ByteGrid) At(x, y int) uint8 {
	g.mustContain(x, y)
	return g.data[y*g.W+x]
}

// Set stores v at (x, y). Out-of-range coordinates panic.
func (g *ByteGrid) Set(x, y int, v uint8) {
	g.mustContain(x, y)
	g.data[y*g.W+x] = v
}

// Fill sets every cell to v.
func (g *ByteGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// FillRows sets rows [y0, y1) to v.
func (g *ByteGrid) FillRows(y0, y1 int, v uint8) {
	if y0 < 0 {
		y0 = 0
	}
	if y1 > g.H {
		y1 = g.H
	}
	for i := y0 * g.W; i < y1*g.W; i++ {
		g.data[i] = v
	}
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions.
func (g *ByteGrid) CopyFrom(src *ByteGrid) error {
	if src.W != g.W || src.H != g.H {
		return fmt.Errorf("grid size %dx%d does not match %dx%d", src.W, src.H, g.W, g.H)
	}
	copy(g.data, src.data)
	return nil
}

func (g *ByteGrid) mustContain(x, y int) {
	if !g.In(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
}
