//go:build ebiten

package ui

import (
	"image/color"

	"forest-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type clusterLayerProvider interface {
	ClusterIDs() []int
}

// Overlay tints burning and ash cells by their cluster ID so individual
// fires can be told apart. Toggled with the 1 key.
type Overlay struct {
	sim   core.Sim
	scale int

	show bool
	img  *ebiten.Image
	buf  []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the overlay toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the cluster tint on top of the base simulation.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(clusterLayerProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	ids := provider.ClusterIDs()
	if len(ids) != total {
		return
	}

	if o.img == nil || o.img.Bounds().Dx() != size.W || o.img.Bounds().Dy() != size.H {
		o.img = ebiten.NewImage(size.W, size.H)
		o.buf = make([]byte, 4*total)
	}

	for i, id := range ids {
		base := i * 4
		if id <= 0 {
			o.buf[base+0] = 0
			o.buf[base+1] = 0
			o.buf[base+2] = 0
			o.buf[base+3] = 0
			continue
		}
		col := clusterColor(id)
		o.buf[base+0] = col.R
		o.buf[base+1] = col.G
		o.buf[base+2] = col.B
		o.buf[base+3] = col.A
	}

	o.img.ReplacePixels(o.buf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}

// clusterColor maps a cluster ID to a stable tint. Neighboring IDs land on
// distant hues so adjacent fires contrast.
func clusterColor(id int) color.RGBA {
	h := uint32(id) * 2654435761
	r := uint8(96 + (h>>0)&0x7f)
	g := uint8(96 + (h>>8)&0x7f)
	b := uint8(96 + (h>>16)&0x7f)
	return color.RGBA{R: r, G: g, B: b, A: 170}
}
