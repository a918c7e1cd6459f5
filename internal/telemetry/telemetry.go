// Package telemetry records per-step run traces and writes them as CSV.
package telemetry

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/payneba/wfc-visualizer/internal/core"
)

// StepRecord captures one observe/propagate step.
type StepRecord struct {
	Step        int     `csv:"step"`
	Collapsed   int     `csv:"collapsed"`
	Total       int     `csv:"total"`
	MeanEntropy float64 `csv:"mean_entropy"`
	Result      string  `csv:"result"`
	DurationUS  int64   `csv:"duration_us"`
}

// Collector accumulates step records for one run.
type Collector struct {
	records []*StepRecord
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordStep snapshots the model after a step that took the given duration.
func (c *Collector) RecordStep(m core.Model, result core.StepResult, took time.Duration) {
	st := m.State()
	mean := 0.0
	if cells := m.EntropyData(); len(cells) > 0 {
		sum := 0.0
		for _, cell := range cells {
			sum += cell.Entropy
		}
		mean = sum / float64(len(cells))
	}
	c.records = append(c.records, &StepRecord{
		Step:        st.Steps,
		Collapsed:   st.CollapsedCount,
		Total:       st.TotalCells,
		MeanEntropy: mean,
		Result:      result.String(),
		DurationUS:  took.Microseconds(),
	})
}

// Len returns the number of recorded steps.
func (c *Collector) Len() int {
	return len(c.records)
}

// WriteCSV dumps the collected records to path.
func (c *Collector) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := gocsv.Marshal(c.records, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// SweepRecord summarizes one seed of a sweep run.
type SweepRecord struct {
	Seed      uint32 `csv:"seed"`
	Success   bool   `csv:"success"`
	Steps     int    `csv:"steps"`
	Collapsed int    `csv:"collapsed"`
	Total     int    `csv:"total"`
}

// WriteSweepCSV dumps sweep summaries to path.
func WriteSweepCSV(path string, records []*SweepRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := gocsv.Marshal(records, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
