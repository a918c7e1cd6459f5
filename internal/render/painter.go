//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter owns an offscreen image the size of the model's render surface
// and blits packed pixel buffers onto the screen at an integer scale.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w×h pixel surface.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, w*h*4),
	}
}

// Blit uploads the packed pixels and draws them scaled onto screen.
func (p *GridPainter) Blit(screen *ebiten.Image, pixels []uint32, scale int) {
	FillRGBA(p.buf, pixels)
	p.img.WritePixels(p.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}

// BlitRGBA uploads a pre-filled RGBA byte buffer, for overlay layers.
func (p *GridPainter) BlitRGBA(screen *ebiten.Image, buf []byte, scale int) {
	p.img.WritePixels(buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}
