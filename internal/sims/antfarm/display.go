package antfarm

import "image/color"

// Display values beyond the three elements mark ant sprites.
const (
	DisplayAir   = uint8(Air)
	DisplayDirt  = uint8(Dirt)
	DisplaySand  = uint8(Sand)
	DisplayAnt   = 3
	DisplayGait  = 4
	DisplayGrain = 5
)

var antfarmPalette = []color.RGBA{
	DisplayAir:   {R: 196, G: 222, B: 240, A: 255},
	DisplayDirt:  {R: 104, G: 74, B: 44, A: 255},
	DisplaySand:  {R: 214, G: 184, B: 118, A: 255},
	DisplayAnt:   {R: 20, G: 14, B: 10, A: 255},
	DisplayGait:  {R: 58, G: 30, B: 22, A: 255},
	DisplayGrain: {R: 240, G: 214, B: 150, A: 255},
}

// Palette exposes the colors used for each display value.
func (w *World) Palette() []color.RGBA {
	return antfarmPalette
}

// refreshDisplay copies the terrain into the display buffer and draws each
// ant as a three-cell body along its heading. The second gait frame uses a
// lighter body and a carried grain shows at the head.
func (w *World) refreshDisplay() {
	copy(w.display, w.terrain.Cells())
	for i := range w.ants {
		a := &w.ants[i]
		body := uint8(DisplayAnt)
		if a.Phase == 1 {
			body = DisplayGait
		}
		dx, dy := a.Dir.Delta()
		w.stamp(a.X-dx, a.Y-dy, body)
		w.stamp(a.X, a.Y, body)
		head := body
		if a.Behavior == Carrying {
			head = DisplayGrain
		}
		w.stamp(a.X+dx, a.Y+dy, head)
	}
}

func (w *World) stamp(x, y int, v uint8) {
	if x < 0 || x >= w.w || y < 0 || y >= w.h {
		return
	}
	w.display[y*w.w+x] = v
}
