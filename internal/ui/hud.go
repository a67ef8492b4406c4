//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"antfarm/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the status and tuning panel to the right of the grid.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	status       []string
	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	paused       bool

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes status lines and control values and handles clicks on the
// +/- buttons.
func (h *HUD) Update(panelOffsetX int, paused bool) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.paused = paused
	h.status = h.status[:0]
	if reporter, ok := h.sim.(core.StatusReporter); ok {
		h.status = append(h.status, reporter.StatusLines()...)
	}
	h.layoutControls()
	if provider, ok := h.sim.(parameterProvider); ok {
		h.refreshControlValues(provider.Parameters())
	}
	h.handleInput()
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 22, G: 18, B: 14, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	title := "xantfarm"
	if h.paused {
		title += " (paused)"
	}
	text.Draw(h.panel, title, face, panelPadding, y, headerColor)
	for _, line := range h.status {
		y += statusSpacing
		text.Draw(h.panel, line, face, panelPadding, y, infoColor)
	}
	h.drawControls()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) controlsTop() int {
	return panelPadding + headerBaseline + len(h.status)*statusSpacing + sectionGap
}

func (h *HUD) refreshControlValues(snap core.ParameterSnapshot) {
	values := snap.Values()
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		raw, ok := values[state.control.Key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		state.current = parsed
		state.hasValue = true
		state.value = formatValue(state.control, parsed)
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	pt := image.Pt(mx-h.panelOffsetX, my)
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		switch {
		case pt.In(state.minusRect):
			h.apply(state, -1)
			return
		case pt.In(state.plusRect):
			h.apply(state, 1)
			return
		}
	}
}

// target returns the value one step from the current one in direction and
// whether it differs from the current value after clamping.
func (s *hudControlState) target(direction int) (float64, bool) {
	ctrl := s.control
	step := ctrl.Step
	if step <= 0 {
		step = 1
		if ctrl.Type == core.ParamTypeFloat {
			step = 0.05
		}
	}
	v := s.current + float64(direction)*step
	if ctrl.Type == core.ParamTypeInt {
		v = math.Round(v)
	}
	if ctrl.HasMin && v < ctrl.Min {
		v = ctrl.Min
	}
	if ctrl.HasMax && v > ctrl.Max {
		v = ctrl.Max
	}
	return v, math.Abs(v-s.current) > 1e-9
}

func (h *HUD) apply(state *hudControlState, direction int) {
	v, ok := state.target(direction)
	if !ok {
		return
	}
	var applied bool
	switch state.control.Type {
	case core.ParamTypeInt:
		applied = h.intSetter != nil && h.intSetter.SetIntParameter(state.control.Key, int(v))
	case core.ParamTypeFloat:
		applied = h.floatSetter != nil && h.floatSetter.SetFloatParameter(state.control.Key, v)
	}
	if applied {
		state.current = v
		state.value = formatValue(state.control, v)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)

		valueColor := labelColor
		if !state.hasValue {
			valueColor = infoColor
		}
		valueWidth := text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, state.minusRect.Min.X-buttonGap-valueWidth, labelY, valueColor)

		_, canDown := state.target(-1)
		_, canUp := state.target(1)
		h.drawButton(state.minusRect, "-", state.hasValue && canDown)
		h.drawButton(state.plusRect, "+", state.hasValue && canUp)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 70, G: 56, B: 40, A: 255}
	fg := color.RGBA{R: 240, G: 230, B: 210, A: 255}
	if !enabled {
		bg = color.RGBA{R: 40, G: 34, B: 28, A: 255}
		fg = color.RGBA{R: 120, G: 110, B: 100, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	top0 := h.controlsTop()
	for i := range h.controls {
		top := top0 + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

func formatValue(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(value)))
	}
	precision := 1
	switch {
	case ctrl.Step < 0.001:
		precision = 4
	case ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

type hudControlState struct {
	control  core.ParameterControl
	value    string
	current  float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	headerColor = color.RGBA{R: 230, G: 210, B: 170, A: 255}
	labelColor  = color.RGBA{R: 220, G: 214, B: 200, A: 255}
	infoColor   = color.RGBA{R: 160, G: 150, B: 140, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	statusSpacing  = 16
	sectionGap     = 14
)
