//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"antfarm/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type fallingProvider interface {
	FallingCells() []image.Point
}

// Overlay draws optional debugging visuals on top of the grid: key 1 toggles
// the loose grains still settling, key 2 the regions repainted last step.
type Overlay struct {
	sim         core.Sim
	scale       int
	showFalling bool
	showDirty   bool
	dirty       []image.Rectangle
	pixel       *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showFalling = !o.showFalling
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showDirty = !o.showDirty
	}
}

// SetDirty records the regions repainted by the latest step.
func (o *Overlay) SetDirty(rects []image.Rectangle) {
	o.dirty = append(o.dirty[:0], rects...)
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	scale := float64(o.scale)
	if scale <= 0 {
		scale = 1
	}
	if o.showFalling {
		if provider, ok := o.sim.(fallingProvider); ok {
			tint := color.RGBA{R: 255, G: 90, B: 40, A: 200}
			for _, p := range provider.FallingCells() {
				o.fill(screen, float64(p.X)*scale, float64(p.Y)*scale, scale, scale, tint)
			}
		}
	}
	if o.showDirty {
		tint := color.RGBA{R: 60, G: 200, B: 255, A: 160}
		for _, r := range o.dirty {
			x0, y0 := float64(r.Min.X)*scale, float64(r.Min.Y)*scale
			w, h := float64(r.Dx())*scale, float64(r.Dy())*scale
			o.fill(screen, x0, y0, w, 1, tint)
			o.fill(screen, x0, y0+h-1, w, 1, tint)
			o.fill(screen, x0, y0, 1, h, tint)
			o.fill(screen, x0+w-1, y0, 1, h, tint)
		}
	}
}

func (o *Overlay) fill(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
