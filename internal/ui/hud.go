//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"forest-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type fireStatsProvider interface {
	StepCount() int
	BurningCount() int
	ActiveClusterCount() int
	TrackedClusterCount() int
	LargestActiveCluster() (id, size int)
}

// HUD renders a small fire statistics readout in the top-left corner.
// Toggled with the H key.
type HUD struct {
	sim  core.Sim
	show bool
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, show: true}
}

// Update handles the HUD toggle key.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.show = !h.show
	}
}

// Draw renders the statistics text onto the screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.show {
		return
	}
	stats, ok := h.sim.(fireStatsProvider)
	if !ok {
		return
	}

	lines := []string{
		fmt.Sprintf("step %d", stats.StepCount()),
		fmt.Sprintf("burning %d", stats.BurningCount()),
		fmt.Sprintf("fires %d active / %d tracked", stats.ActiveClusterCount(), stats.TrackedClusterCount()),
	}
	if id, size := stats.LargestActiveCluster(); id > 0 {
		lines = append(lines, fmt.Sprintf("largest fire #%d (%d cells)", id, size))
	}
	if getter, ok := h.sim.(core.FloatParameterGetter); ok {
		if v, ok := getter.FloatParameter("p_tree"); ok {
			lines = append(lines, fmt.Sprintf("p_tree %.5f", v))
		}
		if v, ok := getter.FloatParameter("p_fire"); ok {
			lines = append(lines, fmt.Sprintf("p_fire %.6f", v))
		}
	}

	face := basicfont.Face7x13
	y := 14
	for _, line := range lines {
		text.Draw(screen, line, face, 5, y+1, color.Black)
		text.Draw(screen, line, face, 4, y, color.White)
		y += 14
	}
}
