package antfarm

import "image"

// grain tracks one loose sand cell while it is settling.
type grain struct {
	x, y   int
	active bool
}

// loosen starts tracking the sand at (x, y). It reports false when an active
// tracker already covers that cell. Inactive slots are reused before the
// list grows.
func (w *World) loosen(x, y int) bool {
	free := -1
	for i := range w.grains {
		g := &w.grains[i]
		if g.active {
			if g.x == x && g.y == y {
				return false
			}
			continue
		}
		if free < 0 {
			free = i
		}
	}
	if free >= 0 {
		w.grains[free] = grain{x: x, y: y, active: true}
		return true
	}
	w.grains = append(w.grains, grain{x: x, y: y, active: true})
	return true
}

// release stops tracking (x, y) after the sand there was removed or compacted.
func (w *World) release(x, y int) {
	for i := range w.grains {
		g := &w.grains[i]
		if g.active && g.x == x && g.y == y {
			g.active = false
			return
		}
	}
}

// loosenNeighbors loosens every sand cell in the 5×5 block around (xc, yc),
// bottom rows first.
func (w *World) loosenNeighbors(xc, yc int) {
	for y := yc + 2; y >= yc-2; y-- {
		for x := xc - 2; x <= xc+2; x++ {
			if x == xc && y == yc {
				continue
			}
			if w.terrain.In(x, y) && w.terrain.Get(x, y) == Sand {
				w.loosen(x, y)
			}
		}
	}
}

// sandFall advances every active grain by at most one cell. Grains loosened
// during the pass are appended and processed in the same pass.
func (w *World) sandFall() {
	t := w.terrain
	h := t.Height()
	gotOne := false
	for i := 0; i < len(w.grains); i++ {
		if !w.grains[i].active {
			continue
		}
		gotOne = true
		x, y := w.grains[i].x, w.grains[i].y

		// The cell was dug out from under the tracker; nothing left to move.
		if t.Get(x, y) != Sand {
			w.grains[i].active = false
			continue
		}
		if y+1 >= h {
			w.grains[i].active = false
			continue
		}

		if t.Get(x, y+1) == Air {
			w.shiftGrain(i, x, y+1)
			w.stats.Falls++
			continue
		}

		left := w.canTip(x-1, y)
		right := w.canTip(x+1, y)
		if left && right {
			if w.rng.Bool() {
				left = false
			} else {
				right = false
			}
		}
		if left || right {
			nx := x + 1
			if left {
				nx = x - 1
			}
			w.shiftGrain(i, nx, y+1)
			w.stats.Tips++
			continue
		}

		w.grains[i].active = false
		w.compact(x, y)
	}
	if !gotOne {
		w.grains = w.grains[:0]
	}
}

// canTip reports whether a grain beside column x can slide into it: the cell
// level with the grain and the two beneath must all be air.
func (w *World) canTip(x, y int) bool {
	t := w.terrain
	if x < 0 || x >= t.Width() || y+2 >= t.Height() {
		return false
	}
	return t.Get(x, y) == Air && t.Get(x, y+1) == Air && t.Get(x, y+2) == Air
}

// shiftGrain moves tracker i to (nx, ny). The tracker is updated before its
// old neighborhood is loosened so the grain is not registered twice.
func (w *World) shiftGrain(i, nx, ny int) {
	x, y := w.grains[i].x, w.grains[i].y
	w.grains[i].x, w.grains[i].y = nx, ny
	w.terrain.Set(x, y, Air)
	w.terrain.Set(nx, ny, Sand)
	w.dirty.AddCell(x, y)
	w.dirty.AddCell(nx, ny)
	w.loosenNeighbors(x, y)
}

// compact turns the top of a tall sand column under a resting grain into dirt.
func (w *World) compact(x, y int) {
	t := w.terrain
	run := 0
	for yy := y + 1; yy < t.Height() && t.Get(x, yy) == Sand; yy++ {
		run++
	}
	if run >= w.cfg.Params.CompactDepth {
		t.Set(x, y+1, Dirt)
		w.release(x, y+1)
		w.dirty.AddCell(x, y+1)
		w.stats.Compactions++
	}
}

// Falling returns the number of grains still settling.
func (w *World) Falling() int {
	n := 0
	for _, g := range w.grains {
		if g.active {
			n++
		}
	}
	return n
}

// FallingCells returns the positions of the grains still settling.
func (w *World) FallingCells() []image.Point {
	var out []image.Point
	for _, g := range w.grains {
		if g.active {
			out = append(out, image.Pt(g.x, g.y))
		}
	}
	return out
}

// Loosen starts tracking the sand at (x, y) and reports whether a new tracker
// was created. Non-sand and out-of-range cells are ignored.
func (w *World) Loosen(x, y int) bool {
	if !w.terrain.In(x, y) || w.terrain.Get(x, y) != Sand {
		return false
	}
	return w.loosen(x, y)
}
