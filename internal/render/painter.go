//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an RGBA image of a palettized grid and uploads only the
// regions that changed.
type GridPainter struct {
	w, h   int
	img    *ebiten.Image
	buf    []byte
	primed bool
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Update uploads the cells inside each dirty rectangle. The first call and a
// call after Invalidate upload the whole grid regardless of dirty.
func (gp *GridPainter) Update(cells []uint8, palette []color.RGBA, dirty []image.Rectangle) {
	if len(cells) != gp.w*gp.h {
		return
	}
	bounds := image.Rect(0, 0, gp.w, gp.h)
	if !gp.primed {
		dirty = []image.Rectangle{bounds}
		gp.primed = true
	}
	for _, r := range dirty {
		r = r.Intersect(bounds)
		if r.Empty() {
			continue
		}
		gp.buf = fillPaletteRect(gp.buf, cells, gp.w, r, palette)
		gp.img.SubImage(r).(*ebiten.Image).WritePixels(gp.buf)
	}
}

// Invalidate forces the next Update to repaint everything.
func (gp *GridPainter) Invalidate() { gp.primed = false }

// Draw scales the grid image onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
