//go:build ebiten

package app

import (
	"image/color"
	"time"

	"forest-ca/internal/core"
	"forest-ca/internal/render"
	"forest-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

type igniter interface {
	Ignite(x, y int)
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	tps      int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, tps int, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim),
		scale:   scale,
		tps:     tps,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
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
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.setTPS(g.tps * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.setTPS(g.tps / 2)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.nudgeFloat("p_tree", 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.nudgeFloat("p_tree", -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.nudgeFloat("p_fire", 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.nudgeFloat("p_fire", -1)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if target, ok := g.sim.(igniter); ok && g.scale > 0 {
			cx, cy := ebiten.CursorPosition()
			target.Ignite(cx/g.scale, cy/g.scale)
		}
	}

	g.overlay.Update()
	g.hud.Update()

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	var palette []color.RGBA
	if provider, ok := g.sim.(paletteProvider); ok {
		palette = provider.Palette()
	}
	g.painter.Blit(screen, g.sim.Cells(), palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

func (g *Game) setTPS(tps int) {
	if tps < 1 {
		tps = 1
	}
	if tps > 240 {
		tps = 240
	}
	g.tps = tps
	ebiten.SetTPS(tps)
}

// nudgeFloat moves an adjustable parameter by its control step in the given
// direction. The setter clamps to the control bounds.
func (g *Game) nudgeFloat(key string, dir float64) {
	getter, ok := g.sim.(core.FloatParameterGetter)
	if !ok {
		return
	}
	setter, ok := g.sim.(core.FloatParameterSetter)
	if !ok {
		return
	}
	provider, ok := g.sim.(core.ParameterControlsProvider)
	if !ok {
		return
	}
	var step float64
	for _, ctrl := range provider.ParameterControls() {
		if ctrl.Key == key {
			step = ctrl.Step
			break
		}
	}
	if step == 0 {
		return
	}
	if v, ok := getter.FloatParameter(key); ok {
		setter.SetFloatParameter(key, v+dir*step)
	}
}
