package overlapping

import "github.com/payneba/wfc-visualizer/internal/sample"

// Render writes the current wave into out, one packed pixel per cell.
// Collapsed cells take their pattern's anchor (top-left) color. Uncollapsed
// cells blend every pattern pixel that could still land on them, averaging
// the channels equally across contributors; a cell with no contributors is
// opaque black.
func (m *Model) Render(out []uint32) {
	wv := m.Wave()
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			i := x + y*m.w
			if wv.Remaining(i) == 1 {
				for t := 0; t < len(m.patterns); t++ {
					if wv.Get(i, t) {
						out[i] = m.palette[m.patterns[t][0]]
						break
					}
				}
				continue
			}
			out[i] = m.blend(x, y)
		}
	}
}

func (m *Model) blend(x, y int) uint32 {
	var rSum, gSum, bSum, contributors int
	for dy := 0; dy < m.n; dy++ {
		for dx := 0; dx < m.n; dx++ {
			sx, sy := x-dx, y-dy
			if m.periodic {
				sx = (sx + m.w) % m.w
				sy = (sy + m.h) % m.h
			} else if sx < 0 || sy < 0 || sx >= m.w || sy >= m.h {
				continue
			}
			cell := sx + sy*m.w
			for t := 0; t < len(m.patterns); t++ {
				if !m.Wave().Get(cell, t) {
					continue
				}
				r, g, b, _ := sample.Unpack(m.palette[m.patterns[t][dx+dy*m.n]])
				rSum += int(r)
				gSum += int(g)
				bSum += int(b)
				contributors++
			}
		}
	}
	if contributors == 0 {
		return sample.Pack(0, 0, 0, 255)
	}
	return sample.Pack(
		uint8(rSum/contributors),
		uint8(gSum/contributors),
		uint8(bSum/contributors),
		255,
	)
}
