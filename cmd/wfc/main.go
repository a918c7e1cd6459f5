//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/payneba/wfc-visualizer/internal/app"
	"github.com/payneba/wfc-visualizer/internal/config"
	"github.com/payneba/wfc-visualizer/internal/core"
	_ "github.com/payneba/wfc-visualizer/internal/model/overlapping"
	_ "github.com/payneba/wfc-visualizer/internal/model/tiled"
)

func main() {
	opts := app.NewFlags()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		log.Fatal(err)
	}
	if opts.Model != "" {
		cfg.Model = opts.Model
	}
	if opts.Seed != 0 {
		cfg.Seed = uint32(opts.Seed)
	}

	factory, ok := core.Models()[cfg.Model]
	if !ok {
		log.Fatalf("unknown model %q", cfg.Model)
	}
	model, err := factory(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(model, opts.Scale, opts.SPS)
	surface := model.RenderSize()

	ebiten.SetWindowTitle("wfc — " + model.Name())
	ebiten.SetWindowSize(surface.W*opts.Scale, surface.H*opts.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
