package core

import "time"

// FixedStep paces solver stepping at a steady steps-per-second rate,
// independent of the host's frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given SPS.
func NewFixedStep(sps int) *FixedStep {
	if sps <= 0 {
		sps = 60
	}
	fs := &FixedStep{}
	fs.SetSPS(sps)
	fs.accumulator = fs.step
	return fs
}

// SetSPS changes the stepping rate. It is safe to call from the main loop.
func (f *FixedStep) SetSPS(sps int) {
	if sps <= 0 {
		sps = 60
	}
	f.step = time.Second / time.Duration(sps)
}

// ShouldStep reports whether the solver should advance by one step.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Reset drops accumulated time, e.g. after a pause.
func (f *FixedStep) Reset() {
	f.accumulator = f.step
	f.last = time.Time{}
}
