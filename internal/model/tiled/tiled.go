// Package tiled implements the simple tiled model: discrete square tiles
// with explicit neighbor rules, expanded over each tile's symmetry class.
package tiled

import (
	"fmt"
	"path/filepath"

	"github.com/payneba/wfc-visualizer/internal/config"
	"github.com/payneba/wfc-visualizer/internal/core"
	"github.com/payneba/wfc-visualizer/internal/sample"
)

// Model stamps tiles from an assembled tileset onto the output grid.
type Model struct {
	*core.Solver

	w, h            int
	tileset         *Tileset
	blackBackground bool
}

// Options collects the run parameters for a tiled model.
type Options struct {
	W, H            int
	Periodic        bool
	Heuristic       core.Heuristic
	Seed            uint32
	BlackBackground bool
}

func init() {
	core.Register("tiled", func(cfg config.Config) (core.Model, error) {
		ts, err := LoadTileset(cfg.Tiled.Tileset, cfg.Tiled.Subset)
		if err != nil {
			return nil, err
		}
		h, err := core.ParseHeuristic(cfg.Heuristic)
		if err != nil {
			return nil, err
		}
		return New(ts, Options{
			W:               cfg.Width,
			H:               cfg.Height,
			Periodic:        cfg.Periodic,
			Heuristic:       h,
			Seed:            cfg.Seed,
			BlackBackground: cfg.Tiled.BlackBackground,
		})
	})
}

// LoadTileset reads a manifest, loads every tile bitmap next to it, and
// assembles the variant catalog.
func LoadTileset(path, subsetName string) (*Tileset, error) {
	manifest, err := config.LoadTileset(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)

	specs := make([]TileSpec, 0, len(manifest.Tiles))
	for _, decl := range manifest.Tiles {
		if decl.Symmetry == "" {
			decl.Symmetry = "X"
		}
		if len(decl.Symmetry) != 1 {
			return nil, fmt.Errorf("tiled: tile %q has bad symmetry %q", decl.Name, decl.Symmetry)
		}
		img := decl.Image
		if img == "" {
			img = decl.Name + ".png"
		}
		bm, err := sample.Load(filepath.Join(dir, img))
		if err != nil {
			return nil, err
		}
		if bm.W != manifest.TileSize || bm.H != manifest.TileSize {
			return nil, fmt.Errorf("tiled: tile %q is %dx%d, want %dx%d", decl.Name, bm.W, bm.H, manifest.TileSize, manifest.TileSize)
		}
		specs = append(specs, TileSpec{
			Name:     decl.Name,
			Symmetry: decl.Symmetry[0],
			Weight:   decl.Weight,
			Pixels:   bm.Pixels,
		})
	}

	rules := make([]NeighborRule, 0, len(manifest.Neighbors))
	for _, n := range manifest.Neighbors {
		leftName, leftVariant, err := config.ParseTileRef(n.Left)
		if err != nil {
			return nil, fmt.Errorf("tiled: %w", err)
		}
		rightName, rightVariant, err := config.ParseTileRef(n.Right)
		if err != nil {
			return nil, fmt.Errorf("tiled: %w", err)
		}
		rules = append(rules, NeighborRule{
			Left:         leftName,
			LeftVariant:  leftVariant,
			Right:        rightName,
			RightVariant: rightVariant,
		})
	}

	var subset []string
	if subsetName != "" {
		names, ok := manifest.Subsets[subsetName]
		if !ok {
			return nil, fmt.Errorf("tiled: tileset has no subset %q", subsetName)
		}
		subset = names
	}
	return Assemble(specs, rules, manifest.TileSize, subset)
}

// New builds a ready-to-step model over an assembled tileset.
func New(ts *Tileset, opts Options) (*Model, error) {
	if opts.W <= 0 || opts.H <= 0 {
		return nil, fmt.Errorf("tiled: output size %dx%d must be positive", opts.W, opts.H)
	}
	wave, err := core.NewWave(opts.W, opts.H, ts.Weights)
	if err != nil {
		return nil, fmt.Errorf("tiled: %w", err)
	}
	prop := core.NewPropagator(opts.W, opts.H, opts.Periodic, ts.Compat)
	return &Model{
		Solver:          core.NewSolver(wave, prop, opts.Heuristic, opts.Seed),
		w:               opts.W,
		h:               opts.H,
		tileset:         ts,
		blackBackground: opts.BlackBackground,
	}, nil
}

// Name returns the model identifier.
func (m *Model) Name() string { return "tiled" }

// GridSize returns the output grid dimensions in cells.
func (m *Model) GridSize() core.Size { return core.Size{W: m.w, H: m.h} }

// RenderSize returns the output surface dimensions in pixels; every cell is
// one tile.
func (m *Model) RenderSize() core.Size {
	return core.Size{W: m.w * m.tileset.TileSize, H: m.h * m.tileset.TileSize}
}

// Tileset exposes the assembled catalog.
func (m *Model) Tileset() *Tileset { return m.tileset }
