// Package tty runs a simulation in a terminal. Each character cell shows two
// grid rows with an upper half block: the top row as foreground and the
// bottom row as background. The last terminal row holds the status line.
package tty

import (
	"context"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"time"

	"antfarm/internal/core"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// Options tune the terminal host.
type Options struct {
	TPS  int
	Seed int64

	// OnStep runs after every simulation step.
	OnStep func()
	// Save writes a checkpoint now. Bound to w.
	Save func() error

	Logger *slog.Logger
}

// GridSize returns the grid dimensions that fill screen above the status
// line.
func GridSize(screen tcell.Screen) (w, h int) {
	cols, rows := screen.Size()
	if rows > 1 {
		rows--
	}
	return cols, rows * 2
}

// Host drives a sim from terminal events.
type Host struct {
	screen tcell.Screen
	sim    core.Sim
	opts   Options
	log    *slog.Logger
	colors []tcell.Color
	timer  *core.FixedStep

	paused bool
	seed   int64
	cursor image.Point
}

// New returns a host drawing sim on screen. The screen must already be
// initialized.
func New(screen tcell.Screen, sim core.Sim, opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	h := &Host{
		screen: screen,
		sim:    sim,
		opts:   opts,
		log:    logger,
		timer:  core.NewFixedStep(opts.TPS),
		seed:   opts.Seed,
		cursor: image.Pt(-1, -1),
	}
	h.paused = h.timer.Manual()
	if p, ok := sim.(core.Palettized); ok {
		h.colors = toColors(p.Palette())
	} else {
		h.colors = []tcell.Color{tcell.ColorBlack, tcell.ColorWhite}
	}
	return h
}

func toColors(palette []color.RGBA) []tcell.Color {
	out := make([]tcell.Color, len(palette))
	for i, c := range palette {
		out[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return out
}

// Paused reports whether automatic stepping is suspended.
func (h *Host) Paused() bool { return h.paused }

// Run processes events and steps the sim until q is pressed, the screen is
// finalized or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse(tcell.MouseMotionEvents)
	defer h.screen.DisableMouse()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	h.Draw(nil)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if !h.paused && h.timer.ShouldStep() {
				h.Step()
			}
		}
		h.Flush()
	}
}

// frameInterval is how often the loop wakes to step and repaint.
const frameInterval = 10 * time.Millisecond

// HandleEvent applies one terminal event and reports whether the host should
// quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			h.paused = false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case ' ':
				h.paused = !h.paused
			case 'n', 'N':
				h.Step()
			case 'r', 'R':
				h.reset(h.seed)
			case 's', 'S':
				h.reset(time.Now().UnixNano())
			case 'w', 'W':
				if h.opts.Save != nil {
					if err := h.opts.Save(); err != nil {
						h.log.Warn("save failed", "err", err)
					}
				}
			}
		}
	case *tcell.EventMouse:
		x, row := ev.Position()
		h.poke(x, row)
	case *tcell.EventResize:
		h.screen.Sync()
		h.Draw(nil)
	}
	return false
}

func (h *Host) poke(x, row int) {
	d, ok := h.sim.(core.Disturber)
	if !ok {
		return
	}
	size := h.sim.Size()
	cell := image.Pt(x, row*2)
	if !cell.In(image.Rect(0, 0, size.W, size.H)) {
		h.cursor = image.Pt(-1, -1)
		return
	}
	if cell == h.cursor {
		return
	}
	h.cursor = cell
	// One character shows two grid rows.
	d.Poke(cell.X, cell.Y)
	if cell.Y+1 < size.H {
		d.Poke(cell.X, cell.Y+1)
	}
}

func (h *Host) reset(seed int64) {
	h.seed = seed
	h.sim.Reset(seed)
	h.log.Debug("world reset", "seed", seed)
}

// Step advances the sim once and runs the OnStep hook.
func (h *Host) Step() {
	h.sim.Step()
	if h.opts.OnStep != nil {
		h.opts.OnStep()
	}
}

// Flush repaints whatever the sim reports as changed and shows the screen.
func (h *Host) Flush() {
	var dirty []image.Rectangle
	if r, ok := h.sim.(core.DirtyReporter); ok {
		dirty = r.TakeDirty()
		if len(dirty) == 0 {
			h.drawStatus()
			h.screen.Show()
			return
		}
	}
	h.Draw(dirty)
}

// Draw paints the given grid rectangles, or the whole grid when dirty is nil,
// then the status line, and shows the result.
func (h *Host) Draw(dirty []image.Rectangle) {
	size := h.sim.Size()
	bounds := image.Rect(0, 0, size.W, size.H)
	if dirty == nil {
		dirty = []image.Rectangle{bounds}
	}
	cells := h.sim.Cells()
	for _, r := range dirty {
		r = r.Intersect(bounds)
		if r.Empty() {
			continue
		}
		for row := r.Min.Y / 2; row < (r.Max.Y+1)/2; row++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				h.drawCell(cells, size, x, row)
			}
		}
	}
	h.drawStatus()
	h.screen.Show()
}

func (h *Host) drawCell(cells []uint8, size core.Size, x, row int) {
	top := h.color(cells[2*row*size.W+x])
	bottom := tcell.ColorBlack
	if y := 2*row + 1; y < size.H {
		bottom = h.color(cells[y*size.W+x])
	}
	h.screen.SetContent(x, row, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
}

func (h *Host) color(v uint8) tcell.Color {
	if int(v) >= len(h.colors) {
		return h.colors[len(h.colors)-1]
	}
	return h.colors[v]
}

func (h *Host) drawStatus() {
	cols, rows := h.screen.Size()
	if rows < 2 {
		return
	}
	line := ""
	if r, ok := h.sim.(core.StatusReporter); ok {
		line = strings.Join(r.StatusLines(), " | ")
	}
	if h.paused {
		line = "[paused] " + line
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	runes := []rune(line)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		h.screen.SetContent(x, rows-1, r, nil, style)
	}
}
