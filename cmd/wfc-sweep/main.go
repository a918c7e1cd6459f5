package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"

	"github.com/payneba/wfc-visualizer/internal/config"
	"github.com/payneba/wfc-visualizer/internal/core"
	_ "github.com/payneba/wfc-visualizer/internal/model/overlapping"
	_ "github.com/payneba/wfc-visualizer/internal/model/tiled"
	"github.com/payneba/wfc-visualizer/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML run config (embedded defaults when empty)")
	seedStart := flag.Uint("seed-start", 1, "first seed of the sweep")
	seedCount := flag.Int("seeds", 100, "number of seeds to evaluate")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	out := flag.String("out", "sweep.csv", "summary CSV path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	factory, ok := core.Models()[cfg.Model]
	if !ok {
		log.Fatalf("unknown model %q", cfg.Model)
	}

	jobs := make(chan uint32)
	results := make([]*telemetry.SweepRecord, 0, *seedCount)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				runCfg := cfg
				runCfg.Seed = seed
				model, err := factory(runCfg)
				if err != nil {
					log.Fatal(err)
				}
				success := model.Run(runCfg.MaxSteps)
				st := model.State()
				mu.Lock()
				results = append(results, &telemetry.SweepRecord{
					Seed:      seed,
					Success:   success,
					Steps:     st.Steps,
					Collapsed: st.CollapsedCount,
					Total:     st.TotalCells,
				})
				mu.Unlock()
			}
		}()
	}

	for i := 0; i < *seedCount; i++ {
		jobs <- uint32(*seedStart) + uint32(i)
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Seed < results[j].Seed })

	successes := 0
	totalSteps := 0
	for _, r := range results {
		if r.Success {
			successes++
			totalSteps += r.Steps
		}
	}
	fmt.Printf("%d/%d seeds succeeded", successes, len(results))
	if successes > 0 {
		fmt.Printf(" (avg %d steps)", totalSteps/successes)
	}
	fmt.Println()

	if err := telemetry.WriteSweepCSV(*out, results); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)
}
