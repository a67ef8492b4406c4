package antfarm

// Poke disturbs every ant whose footprint covers grid cell (x, y): a carried
// grain is dropped where the ant stands, the ant is shoved one cell away from
// the point and it panics in a random direction.
func (w *World) Poke(x, y int) {
	reach := w.cfg.Params.AntReach
	for i := range w.ants {
		a := &w.ants[i]
		if x < a.X-reach || x > a.X+reach || y < a.Y-reach || y > a.Y+reach {
			continue
		}
		w.stats.Pokes++
		if a.Behavior == Carrying {
			w.drop(a)
		}

		nx, ny := a.X, a.Y
		if x == nx && y == ny {
			nx += w.rng.Jitter()
			ny += w.rng.Jitter()
		} else {
			nx += away(x, nx)
			ny += away(y, ny)
		}
		nx = clamp(nx, 0, w.w-1)
		ny = clamp(ny, 0, w.h-1)
		if nx != a.X || ny != a.Y {
			w.relocate(a, nx, ny)
		}
		a.Dir = Direction(w.rng.IntN(int(numDirections)))
		w.markAnt(a)
		w.behave(a, Panicking)
	}
	w.refreshDisplay()
}

// PokePixel is Poke for host surface coordinates drawn at cellSize pixels
// per grid cell.
func (w *World) PokePixel(px, py, cellSize int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	if px < 0 || py < 0 {
		return
	}
	w.Poke(px/cellSize, py/cellSize)
}

// away returns the one-cell push that moves pos away from src.
func away(src, pos int) int {
	switch {
	case src < pos:
		return 1
	case src > pos:
		return -1
	default:
		return 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
