package antfarm

import "log/slog"

// DefaultCheckpointEvery is how many ticks pass between automatic saves.
const DefaultCheckpointEvery = 5000

// Autosaver writes the terrain to Path every Every ticks. A failed periodic
// save is logged and the simulation carries on.
type Autosaver struct {
	Path   string
	Every  int
	Logger *slog.Logger
}

// Observe saves the world when its tick count is due. It never returns an
// error so it can be passed to Run directly; use Save to see failures.
func (s *Autosaver) Observe(w *World) error {
	if s == nil || s.Path == "" {
		return nil
	}
	every := s.Every
	if every <= 0 {
		every = DefaultCheckpointEvery
	}
	if w.Tick() == 0 || w.Tick()%every != 0 {
		return nil
	}
	_ = s.Save(w)
	return nil
}

// Save writes the checkpoint immediately.
func (s *Autosaver) Save(w *World) error {
	if s == nil || s.Path == "" {
		return nil
	}
	if err := w.SaveCheckpointFile(s.Path); err != nil {
		s.logger().Warn("checkpoint failed", "path", s.Path, "tick", w.Tick(), "err", err)
		return err
	}
	s.logger().Debug("checkpoint saved", "path", s.Path, "tick", w.Tick())
	return nil
}

func (s *Autosaver) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
