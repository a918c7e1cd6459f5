// Package overlapping implements the overlapping model: patterns are N×N
// patches extracted from a sample bitmap, and two patterns may neighbor each
// other when their patches agree pixelwise on the overlap.
package overlapping

import (
	"errors"
	"fmt"

	"github.com/payneba/wfc-visualizer/internal/config"
	"github.com/payneba/wfc-visualizer/internal/core"
	"github.com/payneba/wfc-visualizer/internal/sample"
)

// Model holds the extracted pattern set and the solver run over it.
type Model struct {
	*core.Solver

	w, h     int
	n        int
	periodic bool

	palette  []uint32
	patterns [][]byte
	weights  []float64
	ground   bool
}

// Options collects the extraction parameters.
type Options struct {
	N             int
	Symmetry      int
	PeriodicInput bool
	Ground        bool
	Periodic      bool
	Heuristic     core.Heuristic
	Seed          uint32
	W, H          int
}

func init() {
	core.Register("overlapping", func(cfg config.Config) (core.Model, error) {
		bm, err := sample.Load(cfg.Overlapping.Sample)
		if err != nil {
			return nil, err
		}
		h, err := core.ParseHeuristic(cfg.Heuristic)
		if err != nil {
			return nil, err
		}
		return New(bm, Options{
			N:             cfg.Overlapping.N,
			Symmetry:      cfg.Overlapping.Symmetry,
			PeriodicInput: cfg.Overlapping.PeriodicInput,
			Ground:        cfg.Overlapping.Ground,
			Periodic:      cfg.Periodic,
			Heuristic:     h,
			Seed:          cfg.Seed,
			W:             cfg.Width,
			H:             cfg.Height,
		})
	})
}

// New extracts patterns from the sample bitmap and builds a ready-to-step
// model.
func New(bm sample.Bitmap, opts Options) (*Model, error) {
	if opts.N < 2 || opts.N > 5 {
		return nil, fmt.Errorf("overlapping: pattern size %d out of range [2,5]", opts.N)
	}
	switch opts.Symmetry {
	case 1, 2, 8:
	default:
		return nil, fmt.Errorf("overlapping: symmetry %d must be 1, 2 or 8", opts.Symmetry)
	}
	if opts.W <= 0 || opts.H <= 0 {
		return nil, fmt.Errorf("overlapping: output size %dx%d must be positive", opts.W, opts.H)
	}
	if bm.W <= 0 || bm.H <= 0 {
		return nil, errors.New("overlapping: empty sample")
	}

	m := &Model{
		w:        opts.W,
		h:        opts.H,
		n:        opts.N,
		periodic: opts.Periodic,
		ground:   opts.Ground,
	}

	// Quantize colors to dense palette indices in first-occurrence order.
	indices := make([]byte, len(bm.Pixels))
	lookup := map[uint32]int{}
	for i, px := range bm.Pixels {
		idx, ok := lookup[px]
		if !ok {
			idx = len(m.palette)
			lookup[px] = idx
			m.palette = append(m.palette, px)
		}
		indices[i] = byte(idx)
	}

	if err := m.extract(indices, bm.W, bm.H, opts.PeriodicInput, opts.Symmetry); err != nil {
		return nil, err
	}

	compat := m.buildCompat()
	wave, err := core.NewWave(m.w, m.h, m.weights)
	if err != nil {
		return nil, fmt.Errorf("overlapping: %w", err)
	}
	prop := core.NewPropagator(m.w, m.h, m.periodic, compat)
	m.Solver = core.NewSolver(wave, prop, opts.Heuristic, opts.Seed)
	if m.ground {
		m.SetClearHook(m.seedGround)
	}
	return m, nil
}

// extract registers every N×N patch of the sample, plus its reflections and
// rotations up to the symmetry count, deduplicating exact matches into
// weights.
func (m *Model) extract(indices []byte, sw, sh int, periodicInput bool, symmetry int) error {
	n := m.n
	xmax, ymax := sw, sh
	if !periodicInput {
		xmax = sw - n + 1
		ymax = sh - n + 1
	}
	if xmax <= 0 || ymax <= 0 {
		return fmt.Errorf("overlapping: sample %dx%d smaller than pattern size %d", sw, sh, n)
	}

	seen := map[string]int{}
	variants := make([][]byte, 8)
	patch := make([]byte, n*n)
	for y := 0; y < ymax; y++ {
		for x := 0; x < xmax; x++ {
			for dy := 0; dy < n; dy++ {
				for dx := 0; dx < n; dx++ {
					patch[dx+dy*n] = indices[((x+dx)%sw)+((y+dy)%sh)*sw]
				}
			}
			variants[0] = append(variants[0][:0], patch...)
			variants[1] = reflect(variants[0], n)
			variants[2] = rotate(variants[0], n)
			variants[3] = reflect(variants[2], n)
			variants[4] = rotate(variants[2], n)
			variants[5] = reflect(variants[4], n)
			variants[6] = rotate(variants[4], n)
			variants[7] = reflect(variants[6], n)

			for k := 0; k < symmetry; k++ {
				key := string(variants[k])
				if t, ok := seen[key]; ok {
					m.weights[t]++
					continue
				}
				seen[key] = len(m.patterns)
				m.patterns = append(m.patterns, append([]byte(nil), variants[k]...))
				m.weights = append(m.weights, 1)
			}
		}
	}
	if len(m.patterns) == 0 {
		return errors.New("overlapping: no patterns extracted")
	}
	return nil
}

// buildCompat lists, per pattern and direction, the patterns whose patches
// agree on the shifted overlap.
func (m *Model) buildCompat() [][core.NumDirections][]int {
	t := len(m.patterns)
	compat := make([][core.NumDirections][]int, t)
	for t1 := 0; t1 < t; t1++ {
		for d := 0; d < core.NumDirections; d++ {
			for t2 := 0; t2 < t; t2++ {
				if agree(m.patterns[t1], m.patterns[t2], m.n, core.DX[d], core.DY[d]) {
					compat[t1][d] = append(compat[t1][d], t2)
				}
			}
		}
	}
	return compat
}

// seedGround forces the highest-index pattern onto the bottom row and bans it
// everywhere else.
func (m *Model) seedGround() {
	last := len(m.patterns) - 1
	for x := 0; x < m.w; x++ {
		bottom := x + (m.h-1)*m.w
		for t := 0; t < last; t++ {
			m.Ban(bottom, t)
		}
		for y := 0; y < m.h-1; y++ {
			m.Ban(x+y*m.w, last)
		}
	}
}

// Name returns the model identifier.
func (m *Model) Name() string { return "overlapping" }

// GridSize returns the output grid dimensions in cells.
func (m *Model) GridSize() core.Size { return core.Size{W: m.w, H: m.h} }

// RenderSize returns the output surface dimensions in pixels; overlapping
// cells are single pixels.
func (m *Model) RenderSize() core.Size { return core.Size{W: m.w, H: m.h} }

// PatternCount returns the number of deduplicated patterns.
func (m *Model) PatternCount() int { return len(m.patterns) }
