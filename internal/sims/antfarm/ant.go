package antfarm

// Behavior is the mode an ant is in.
type Behavior uint8

const (
	// Wandering ants explore and may dig.
	Wandering Behavior = iota
	// Carrying ants hold a dug grain and look for a place to drop it.
	Carrying
	// Panicking ants were just disturbed and neither dig nor drop.
	Panicking
)

func (b Behavior) String() string {
	switch b {
	case Wandering:
		return "wandering"
	case Carrying:
		return "carrying"
	case Panicking:
		return "panicking"
	default:
		return "invalid"
	}
}

// Ant is one agent. Timer counts ticks until its next decision and Phase
// alternates between the two gait frames on every decision.
type Ant struct {
	X, Y     int
	Dir      Direction
	Behavior Behavior
	Timer    int
	Phase    uint8
}

func (w *World) moveAnts() {
	p := &w.cfg.Params
	for i := range w.ants {
		a := &w.ants[i]
		a.Timer--
		if a.Timer > 0 {
			continue
		}
		a.Phase ^= 1

		// The surface under the ant may have been dug or may have fallen away.
		fdx, fdy := a.Dir.Foot().Delta()
		if w.terrain.IsAir(a.X+fdx, a.Y+fdy) {
			if w.terrain.IsAir(a.X, a.Y+1) {
				w.relocate(a, a.X, a.Y+1)
			} else {
				w.turn(a)
			}
			continue
		}

		switch a.Behavior {
		case Wandering:
			if w.rng.Chance(p.DigChance) {
				w.tryDig(a, false)
			} else if w.rng.Chance(p.TurnChance) {
				w.turn(a)
			} else {
				w.behave(a, Wandering)
				w.move(a)
			}
		case Carrying:
			if w.rng.Chance(p.DropChance) {
				w.drop(a)
			} else {
				w.behave(a, Carrying)
				w.move(a)
			}
		case Panicking:
			if w.rng.Chance(p.CalmChance) {
				w.behave(a, Wandering)
			} else {
				w.behave(a, Panicking)
				w.move(a)
			}
		}
	}
}

func (w *World) move(a *Ant) {
	dx, dy := a.Dir.Delta()
	nx, ny := a.X+dx, a.Y+dy
	if !w.terrain.In(nx, ny) {
		w.turn(a)
		return
	}

	if e := w.terrain.Get(nx, ny); e != Air {
		if a.Behavior == Wandering && a.Y >= w.surface &&
			(e == Sand || w.rng.Chance(w.cfg.Params.ConcaveDigChance)) {
			w.tryDig(a, true)
		} else {
			w.turn(a)
		}
		return
	}

	// Walking off a convex corner: wrap around it onto the new face.
	foot := a.Dir.Foot()
	fdx, fdy := foot.Delta()
	if w.terrain.IsAir(nx+fdx, ny+fdy) {
		if a.Behavior == Carrying && a.Y < w.surface && w.rng.Chance(w.cfg.Params.ConvexDropChance) {
			w.drop(a)
		}
		nx, ny = nx+fdx, ny+fdy
		a.Dir = foot
	}
	w.relocate(a, nx, ny)
}

func (w *World) turn(a *Ant) {
	back := a.Dir.Back()
	switch {
	case w.legalDir(a, back):
		a.Dir = back
	case w.legalDir(a, back.Back()):
		a.Dir = back.Back()
	default:
		var legal [numDirections]Direction
		n := 0
		for d := Direction(0); d < numDirections; d++ {
			if d != a.Dir && w.legalDir(a, d) {
				legal[n] = d
				n++
			}
		}
		if n > 0 {
			a.Dir = legal[w.rng.IntN(n)]
			break
		}
		// Boxed in. Shed the load if there is room for it and hope a random
		// heading lets the ant dig its way out.
		w.stats.Trapped++
		if a.Behavior == Carrying &&
			(w.terrain.Get(a.X, a.Y) == Air || w.rng.Chance(w.cfg.Params.TrappedDropChance)) {
			w.drop(a)
		}
		a.Dir = Direction(w.rng.IntN(int(numDirections)))
	}
	w.markAnt(a)
}

// legalDir reports whether stepping in d lands on air with solid footing.
func (w *World) legalDir(a *Ant, d Direction) bool {
	dx, dy := d.Delta()
	nx, ny := a.X+dx, a.Y+dy
	if !w.terrain.IsAir(nx, ny) {
		return false
	}
	fdx, fdy := d.Foot().Delta()
	return !w.terrain.IsAir(nx+fdx, ny+fdy)
}

// tryDig removes the cell ahead of the ant, or under its feet when forward is
// false, and reports whether there was anything to remove.
func (w *World) tryDig(a *Ant, forward bool) bool {
	d := a.Dir
	if !forward {
		d = d.Foot()
	}
	dx, dy := d.Delta()
	x, y := a.X+dx, a.Y+dy
	if !w.terrain.In(x, y) || w.terrain.Get(x, y) == Air {
		return false
	}
	w.terrain.Set(x, y, Air)
	w.release(x, y)
	w.dirty.AddCell(x, y)
	w.loosenNeighbors(x, y)
	w.behave(a, Carrying)
	w.stats.Digs++
	return true
}

// drop leaves the carried grain in the ant's cell as loose sand.
func (w *World) drop(a *Ant) {
	w.terrain.Set(a.X, a.Y, Sand)
	w.dirty.AddCell(a.X, a.Y)
	w.loosen(a.X, a.Y)
	w.behave(a, Wandering)
	w.stats.Drops++
}

// behave switches the ant to b, re-arms its timer with ±1 jitter and marks
// its sprite for repaint.
func (w *World) behave(a *Ant, b Behavior) {
	a.Behavior = b
	a.Timer = w.baseTimer(b) + w.rng.Jitter()
	w.markAnt(a)
}

func (w *World) baseTimer(b Behavior) int {
	switch b {
	case Carrying:
		return w.cfg.Params.CarryTimer
	case Panicking:
		return w.cfg.Params.PanicTimer
	default:
		return w.cfg.Params.WanderTimer
	}
}

func (w *World) relocate(a *Ant, x, y int) {
	w.markAnt(a)
	a.X, a.Y = x, y
	w.markAnt(a)
}

func (w *World) markAnt(a *Ant) {
	w.dirty.AddBox(a.X, a.Y, w.cfg.Params.AntReach)
}
