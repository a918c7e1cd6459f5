package render

import (
	"math"

	"github.com/payneba/wfc-visualizer/internal/core"
)

// FillRGBA expands packed pixels (R|G<<8|B<<16|A<<24) into an RGBA byte
// buffer. buf must hold 4 bytes per pixel.
func FillRGBA(buf []byte, pixels []uint32) {
	for i, p := range pixels {
		base := i * 4
		buf[base+0] = uint8(p)
		buf[base+1] = uint8(p >> 8)
		buf[base+2] = uint8(p >> 16)
		buf[base+3] = uint8(p >> 24)
	}
}

// FillEntropyRGBA converts per-cell entropy data into a heat overlay:
// collapsed cells are transparent, uncollapsed ones shade from dark blue
// (nearly decided) to warm red (maximal uncertainty).
func FillEntropyRGBA(buf []byte, cells []core.CellEntropy) {
	maxEntropy := 0.0
	for _, c := range cells {
		if !c.Collapsed && c.Entropy > maxEntropy {
			maxEntropy = c.Entropy
		}
	}

	for i, c := range cells {
		base := i * 4
		if c.Collapsed || c.Remaining == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		heat := 1.0
		if maxEntropy > 0 {
			heat = c.Entropy / maxEntropy
		}
		heat = math.Max(0, math.Min(1, heat))
		buf[base+0] = uint8(200 * heat)
		buf[base+1] = uint8(40 * heat)
		buf[base+2] = uint8(180 * (1 - heat))
		buf[base+3] = 160
	}
}
