package antfarm

// Report captures telemetry from a headless run.
type Report struct {
	// Ticks is the number of steps simulated.
	Ticks int
	// Stats holds the event counters at the end of the run.
	Stats Stats
	// PeakFalling is the largest number of grains settling after any tick.
	PeakFalling int
	// Air, Dirt and Sand count the cells of each element at the end.
	Air, Dirt, Sand int
	// Behaviors counts ants per behavior at the end.
	Behaviors [3]int
}

// Simulate builds a world from cfg, resets it with the configured seed and
// advances it ticks times. Every observer is called after each tick; a
// non-nil error from one stops the run early.
func Simulate(cfg Config, ticks int, observers ...func(*World) error) (*World, Report, error) {
	w := NewWithConfig(cfg)
	w.Reset(0)
	rep, err := w.Run(ticks, observers...)
	return w, rep, err
}

// Run advances w ticks times and summarizes the result. Dirty rectangles are
// drained after every tick since nothing repaints them.
func (w *World) Run(ticks int, observers ...func(*World) error) (Report, error) {
	var rep Report
	for i := 0; i < ticks; i++ {
		w.Step()
		w.dirty.Take()
		rep.Ticks++
		if n := w.Falling(); n > rep.PeakFalling {
			rep.PeakFalling = n
		}
		for _, obs := range observers {
			if err := obs(w); err != nil {
				w.summarize(&rep)
				return rep, err
			}
		}
	}
	w.summarize(&rep)
	return rep, nil
}

func (w *World) summarize(rep *Report) {
	rep.Stats = w.stats
	rep.Air = w.terrain.Count(Air)
	rep.Dirt = w.terrain.Count(Dirt)
	rep.Sand = w.terrain.Count(Sand)
	rep.Behaviors = [3]int{}
	for _, a := range w.ants {
		if int(a.Behavior) < len(rep.Behaviors) {
			rep.Behaviors[a.Behavior]++
		}
	}
}
