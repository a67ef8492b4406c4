//go:build ebiten

package app

import (
	"image"
	"image/color"
	"log/slog"
	"time"

	"antfarm/internal/core"
	"antfarm/internal/render"
	"antfarm/internal/ui"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Options tune the GUI host.
type Options struct {
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int

	// OnStep runs after every simulation step.
	OnStep func()
	// Save writes a checkpoint now. Bound to W.
	Save func() error
	// CopyText returns the text C places on the clipboard.
	CopyText func() (string, error)

	Logger *slog.Logger
}

var fallbackPalette = []color.RGBA{
	{A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep
	palette []color.RGBA
	opts    Options
	log     *slog.Logger

	paused   bool
	tickOnce bool
	seed     int64
	cursor   image.Point
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, opts Options) *Game {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, opts.Scale),
		hud:     ui.NewHUD(sim, opts.HUDWidth),
		timer:   core.NewFixedStep(opts.TPS),
		palette: fallbackPalette,
		opts:    opts,
		log:     logger,
		seed:    opts.Seed,
		cursor:  image.Pt(-1, -1),
	}
	if p, ok := sim.(core.Palettized); ok {
		g.palette = p.Palette()
	}
	// Manual mode starts paused so N is the only way forward.
	g.paused = g.timer.Manual()
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.painter.Invalidate()
	g.tickOnce = false
	g.log.Info("world reset", "seed", seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyCheckpoint()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) && g.opts.Save != nil {
		if err := g.opts.Save(); err != nil {
			g.log.Warn("save failed", "err", err)
		}
	}

	g.overlay.Update()
	g.disturb()

	stepDue := !g.paused && g.timer.ShouldStep()
	if stepDue || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		if g.opts.OnStep != nil {
			g.opts.OnStep()
		}
	}

	var dirty []image.Rectangle
	if r, ok := g.sim.(core.DirtyReporter); ok {
		dirty = r.TakeDirty()
		if len(dirty) > 0 {
			g.overlay.SetDirty(dirty)
		}
	} else {
		g.painter.Invalidate()
	}
	g.painter.Update(g.sim.Cells(), g.palette, dirty)

	g.hud.Update(g.gridWidth(), g.paused)
	return nil
}

// disturb pokes the sim wherever the cursor moved to inside the grid.
func (g *Game) disturb() {
	d, ok := g.sim.(core.Disturber)
	if !ok {
		return
	}
	x, y := ebiten.CursorPosition()
	cell := image.Pt(x/g.opts.Scale, y/g.opts.Scale)
	size := g.sim.Size()
	if x < 0 || y < 0 || !cell.In(image.Rect(0, 0, size.W, size.H)) {
		g.cursor = image.Pt(-1, -1)
		return
	}
	if cell == g.cursor {
		return
	}
	g.cursor = cell
	d.Poke(cell.X, cell.Y)
}

func (g *Game) copyCheckpoint() {
	if g.opts.CopyText == nil {
		return
	}
	text, err := g.opts.CopyText()
	if err == nil {
		err = clipboard.WriteAll(text)
	}
	if err != nil {
		g.log.Warn("copy to clipboard failed", "err", err)
		return
	}
	g.log.Info("checkpoint copied to clipboard", "bytes", len(text))
}

func (g *Game) gridWidth() int { return g.sim.Size().W * g.opts.Scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.opts.Scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidth(), g.opts.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.opts.Scale + g.hud.Width(), s.H * g.opts.Scale
}
