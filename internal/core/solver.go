package core

// Solver owns the observe/propagate loop shared by both models: pick a cell
// via the configured heuristic, collapse it, push the removals, and run
// propagation to its fixpoint. Models embed a Solver and add their build and
// render logic on top.
type Solver struct {
	wave *Wave
	prop *Propagator
	rng  *Random

	seed      uint32
	heuristic Heuristic
	cursor    int

	steps         int
	lastCell      int
	lastPattern   int
	complete      bool
	contradiction bool

	// onClear re-seeds model-specific initial constraints (e.g. ground)
	// after a reset, by calling Ban.
	onClear func()
}

// NewSolver wires a wave and propagator to a heuristic and a seeded RNG.
func NewSolver(wave *Wave, prop *Propagator, heuristic Heuristic, seed uint32) *Solver {
	s := &Solver{
		wave:      wave,
		prop:      prop,
		rng:       NewRandom(seed),
		seed:      seed,
		heuristic: heuristic,
	}
	s.resetRun()
	return s
}

// SetClearHook installs the constraint re-seeding callback and applies it
// immediately so construction and Clear leave identical state.
func (s *Solver) SetClearHook(fn func()) {
	s.onClear = fn
	s.Clear()
}

// Wave exposes the possibility table, primarily for rendering.
func (s *Solver) Wave() *Wave { return s.wave }

func (s *Solver) resetRun() {
	s.cursor = 0
	s.steps = 0
	s.lastCell = -1
	s.lastPattern = -1
	s.complete = false
	s.contradiction = false
}

// Clear restores the initial all-possible state, re-seeds the RNG so the run
// replays identically, and re-applies any initial constraints.
func (s *Solver) Clear() {
	s.wave.Clear()
	s.prop.Reset()
	s.rng.Reseed(s.seed)
	s.resetRun()
	if s.onClear != nil {
		s.onClear()
		if !s.prop.Propagate(s.wave) {
			s.contradiction = true
		}
	}
}

// Ban removes pattern t at cell i and queues the removal for propagation.
// Used by models to seed initial constraints.
func (s *Solver) Ban(i, t int) {
	if s.wave.Remove(i, t) {
		s.prop.Push(i, t)
	}
}

// Step performs one observation plus full propagation.
func (s *Solver) Step() StepResult {
	if s.contradiction {
		return StepFailure
	}
	if s.complete {
		return StepSuccess
	}

	var cell int
	switch s.heuristic {
	case HeuristicMRV:
		cell = pickMRV(s.wave, s.rng)
	case HeuristicScanline:
		cell = pickScanline(s.wave, &s.cursor)
	default:
		cell = pickEntropy(s.wave, s.rng)
	}
	switch cell {
	case pickDone:
		s.complete = true
		return StepSuccess
	case pickContradiction:
		s.contradiction = true
		return StepFailure
	}

	chosen, removed := s.wave.Collapse(cell, s.rng)
	if chosen < 0 {
		s.contradiction = true
		return StepFailure
	}
	s.steps++
	s.lastCell = cell
	s.lastPattern = chosen
	for _, t := range removed {
		s.prop.Push(cell, t)
	}
	if !s.prop.Propagate(s.wave) {
		s.contradiction = true
		return StepFailure
	}
	return StepContinue
}

// Run steps until success, failure, or the cap. A cap of zero or less means
// unlimited. Returns true on success.
func (s *Solver) Run(maxSteps int) bool {
	for n := 0; maxSteps <= 0 || n < maxSteps; n++ {
		switch s.Step() {
		case StepSuccess:
			return true
		case StepFailure:
			return false
		}
	}
	return false
}

// State snapshots the run for hosts and telemetry.
func (s *Solver) State() State {
	collapsed := 0
	for i := 0; i < s.wave.W*s.wave.H; i++ {
		if s.wave.Remaining(i) == 1 {
			collapsed++
		}
	}
	return State{
		TotalCells:       s.wave.W * s.wave.H,
		CollapsedCount:   collapsed,
		PatternCount:     s.wave.T,
		IsComplete:       s.complete,
		HasContradiction: s.contradiction,
		LastCell:         s.lastCell,
		Steps:            s.steps,
	}
}

// EntropyData returns the per-cell entropy view in cell order.
func (s *Solver) EntropyData() []CellEntropy {
	out := make([]CellEntropy, s.wave.W*s.wave.H)
	for i := range out {
		n := s.wave.Remaining(i)
		out[i] = CellEntropy{
			Entropy:   s.wave.Entropy(i),
			Remaining: n,
			Collapsed: n == 1,
		}
	}
	return out
}
