package main

import (
	"flag"
	"log"
	"time"

	"github.com/payneba/wfc-visualizer/internal/config"
	"github.com/payneba/wfc-visualizer/internal/core"
	_ "github.com/payneba/wfc-visualizer/internal/model/overlapping"
	_ "github.com/payneba/wfc-visualizer/internal/model/tiled"
	"github.com/payneba/wfc-visualizer/internal/sample"
	"github.com/payneba/wfc-visualizer/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML run config (embedded defaults when empty)")
	modelName := flag.String("model", "", "model override: overlapping or tiled")
	seed := flag.Uint("seed", 0, "seed override (0 keeps the config seed)")
	out := flag.String("out", "out.png", "output PNG path")
	stats := flag.String("stats", "", "optional per-step telemetry CSV path")
	maxSteps := flag.Int("max-steps", 0, "step cap override (0 keeps the config cap)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *modelName != "" {
		cfg.Model = *modelName
	}
	if *seed != 0 {
		cfg.Seed = uint32(*seed)
	}
	if *maxSteps != 0 {
		cfg.MaxSteps = *maxSteps
	}

	factory, ok := core.Models()[cfg.Model]
	if !ok {
		log.Fatalf("unknown model %q", cfg.Model)
	}
	model, err := factory(cfg)
	if err != nil {
		log.Fatal(err)
	}

	collector := telemetry.NewCollector()
	result := core.StepContinue
	for n := 0; result == core.StepContinue && (cfg.MaxSteps <= 0 || n < cfg.MaxSteps); n++ {
		start := time.Now()
		result = model.Step()
		if *stats != "" {
			collector.RecordStep(model, result, time.Since(start))
		}
	}

	st := model.State()
	switch {
	case st.HasContradiction:
		log.Printf("contradiction after %d steps (%d/%d cells collapsed)", st.Steps, st.CollapsedCount, st.TotalCells)
	case st.IsComplete:
		log.Printf("completed in %d steps", st.Steps)
	default:
		log.Printf("step cap reached at %d steps (%d/%d cells collapsed)", st.Steps, st.CollapsedCount, st.TotalCells)
	}

	surface := model.RenderSize()
	pixels := make([]uint32, surface.W*surface.H)
	model.Render(pixels)
	if err := sample.Save(*out, pixels, surface.W, surface.H); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%dx%d)", *out, surface.W, surface.H)

	if *stats != "" {
		if err := collector.WriteCSV(*stats); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s (%d steps)", *stats, collector.Len())
	}
}
