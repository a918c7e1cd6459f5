//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/payneba/wfc-visualizer/internal/core"
	"github.com/payneba/wfc-visualizer/internal/render"
)

// Overlay draws an entropy heat layer on top of the generated output. Each
// wave cell is shaded by its current entropy; collapsed cells stay clear.
type Overlay struct {
	model  core.Model
	show   bool
	img    *ebiten.Image
	buf    []byte
	cellPx int
}

// NewOverlay constructs an overlay for the provided model. cellPx is the
// pixel side of one wave cell on the render surface.
func NewOverlay(model core.Model) *Overlay {
	grid := model.GridSize()
	surface := model.RenderSize()
	cellPx := 1
	if grid.W > 0 {
		cellPx = surface.W / grid.W
	}
	return &Overlay{
		model:  model,
		img:    ebiten.NewImage(grid.W, grid.H),
		buf:    make([]byte, grid.W*grid.H*4),
		cellPx: cellPx,
	}
}

// Update toggles the overlay with the E key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		o.show = !o.show
	}
}

// Draw renders the heat layer when enabled.
func (o *Overlay) Draw(screen *ebiten.Image, scale int) {
	if !o.show {
		return
	}
	render.FillEntropyRGBA(o.buf, o.model.EntropyData())
	o.img.WritePixels(o.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.cellPx*scale), float64(o.cellPx*scale))
	screen.DrawImage(o.img, op)
}
