package core

import "github.com/payneba/wfc-visualizer/internal/config"

// Size describes grid or pixel-surface dimensions.
type Size struct {
	W int
	H int
}

// StepResult reports the outcome of one observe/propagate step.
type StepResult int

const (
	// StepContinue means the run is still in progress.
	StepContinue StepResult = iota
	// StepSuccess means every cell is collapsed.
	StepSuccess
	// StepFailure means some cell ran out of patterns. Terminal.
	StepFailure
)

func (r StepResult) String() string {
	switch r {
	case StepContinue:
		return "continue"
	case StepSuccess:
		return "success"
	case StepFailure:
		return "failure"
	}
	return "unknown"
}

// State is a queryable snapshot of a run.
type State struct {
	TotalCells       int
	CollapsedCount   int
	PatternCount     int
	IsComplete       bool
	HasContradiction bool
	LastCell         int
	Steps            int
}

// CellEntropy is the per-cell view the UI overlays consume.
type CellEntropy struct {
	Entropy   float64
	Remaining int
	Collapsed bool
}

// Model is the contract both generator models implement.
type Model interface {
	Name() string
	GridSize() Size
	RenderSize() Size
	Step() StepResult
	Run(maxSteps int) bool
	Render(out []uint32)
	State() State
	EntropyData() []CellEntropy
	Clear()
}

// Factory constructs a Model from a loaded configuration.
type Factory func(cfg config.Config) (Model, error)

var models = map[string]Factory{}

// Register adds a model factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	models[name] = f
}

// Models exposes the registry of available model factories.
func Models() map[string]Factory {
	return models
}
