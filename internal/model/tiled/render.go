package tiled

import "github.com/payneba/wfc-visualizer/internal/sample"

// Render stamps the wave into out, tileSize×tileSize pixels per cell.
// Collapsed cells take their tile's pixels verbatim. Uncollapsed cells are
// opaque black when the black background is enabled, otherwise a per-pixel
// blend of the still-possible tiles weighted by their relative weights.
func (m *Model) Render(out []uint32) {
	ts := m.tileset.TileSize
	stride := m.w * ts
	wv := m.Wave()

	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			cell := x + y*m.w
			switch {
			case wv.Remaining(cell) == 1:
				t := 0
				for ; t < len(m.tileset.Pixels); t++ {
					if wv.Get(cell, t) {
						break
					}
				}
				m.stamp(out, stride, x, y, m.tileset.Pixels[t])
			case m.blackBackground:
				m.fill(out, stride, x, y, sample.Pack(0, 0, 0, 255))
			default:
				m.blend(out, stride, x, y, cell)
			}
		}
	}
}

func (m *Model) stamp(out []uint32, stride, x, y int, px []uint32) {
	ts := m.tileset.TileSize
	for dy := 0; dy < ts; dy++ {
		row := (y*ts+dy)*stride + x*ts
		copy(out[row:row+ts], px[dy*ts:(dy+1)*ts])
	}
}

func (m *Model) fill(out []uint32, stride, x, y int, p uint32) {
	ts := m.tileset.TileSize
	for dy := 0; dy < ts; dy++ {
		row := (y*ts+dy)*stride + x*ts
		for dx := 0; dx < ts; dx++ {
			out[row+dx] = p
		}
	}
}

func (m *Model) blend(out []uint32, stride, x, y, cell int) {
	ts := m.tileset.TileSize
	wv := m.Wave()

	weightSum := 0.0
	for t := range m.tileset.Pixels {
		if wv.Get(cell, t) {
			weightSum += m.tileset.Weights[t]
		}
	}
	if weightSum == 0 {
		m.fill(out, stride, x, y, sample.Pack(0, 0, 0, 255))
		return
	}

	for dy := 0; dy < ts; dy++ {
		for dx := 0; dx < ts; dx++ {
			var rAcc, gAcc, bAcc float64
			for t, px := range m.tileset.Pixels {
				if !wv.Get(cell, t) {
					continue
				}
				w := m.tileset.Weights[t] / weightSum
				r, g, b, _ := sample.Unpack(px[dx+dy*ts])
				rAcc += w * float64(r)
				gAcc += w * float64(g)
				bAcc += w * float64(b)
			}
			out[(y*ts+dy)*stride+x*ts+dx] = sample.Pack(uint8(rAcc), uint8(gAcc), uint8(bAcc), 255)
		}
	}
}
