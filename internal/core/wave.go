package core

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Wave stores, for every output cell, the set of patterns still possible
// there, together with memoized scalars that keep Shannon entropy cheap to
// read: the popcount of the mask, the probability-weight sum, the Σ p·log p
// partial sum, and the entropy itself. Weights are normalized once at
// construction so a collapsed cell's entropy is exactly zero. All slices are
// flat and row-major, cell index i = x + y·W, mask bit at i*T + t.
type Wave struct {
	W, H int
	T    int

	weights []float64
	probs   []float64
	plogp   []float64

	possible  []bool
	remaining []int
	sums      []float64
	plogpSums []float64
	logSums   []float64
	entropies []float64

	sumAll          float64
	plogpAll        float64
	startingEntropy float64
	noiseScale      float64
	collapseScratch []int
}

// NewWave builds an all-possible wave over a w×h grid and the given pattern
// weights. Weights must be non-negative and sum to a positive value.
func NewWave(w, h int, weights []float64) (*Wave, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.New("wave: grid dimensions must be positive")
	}
	if len(weights) == 0 {
		return nil, errors.New("wave: empty pattern set")
	}
	total := floats.Sum(weights)
	if total <= 0 {
		return nil, errors.New("wave: pattern weights sum to zero")
	}

	t := len(weights)
	wv := &Wave{
		W:         w,
		H:         h,
		T:         t,
		weights:   append([]float64(nil), weights...),
		probs:     make([]float64, t),
		plogp:     make([]float64, t),
		possible:  make([]bool, w*h*t),
		remaining: make([]int, w*h),
		sums:      make([]float64, w*h),
		plogpSums: make([]float64, w*h),
		logSums:   make([]float64, w*h),
		entropies: make([]float64, w*h),
	}

	minPlogp := math.Inf(1)
	for i, wt := range weights {
		if wt < 0 {
			return nil, errors.New("wave: negative pattern weight")
		}
		if wt > 0 {
			p := wt / total
			wv.probs[i] = p
			wv.plogp[i] = p * math.Log(p)
			if abs := math.Abs(wv.plogp[i]); abs < minPlogp {
				minPlogp = abs
			}
		}
	}
	wv.sumAll = floats.Sum(wv.probs)
	wv.plogpAll = floats.Sum(wv.plogp)
	wv.startingEntropy = math.Log(wv.sumAll) - wv.plogpAll/wv.sumAll
	wv.noiseScale = minPlogp / 2

	wv.Clear()
	return wv, nil
}

// Clear restores the all-possible state for every cell.
func (wv *Wave) Clear() {
	for i := range wv.possible {
		wv.possible[i] = true
	}
	for i := range wv.remaining {
		wv.remaining[i] = wv.T
		wv.sums[i] = wv.sumAll
		wv.plogpSums[i] = wv.plogpAll
		wv.logSums[i] = math.Log(wv.sumAll)
		wv.entropies[i] = wv.startingEntropy
	}
}

// Get reports whether pattern t is still possible at cell i.
func (wv *Wave) Get(i, t int) bool {
	return wv.possible[i*wv.T+t]
}

// Remaining returns the number of patterns still possible at cell i.
func (wv *Wave) Remaining(i int) int {
	return wv.remaining[i]
}

// Entropy returns the memoized Shannon entropy of cell i.
func (wv *Wave) Entropy(i int) float64 {
	return wv.entropies[i]
}

// Weight returns the construction weight of pattern t.
func (wv *Wave) Weight(t int) float64 {
	return wv.weights[t]
}

// Possible lists the patterns still possible at cell i in index order.
func (wv *Wave) Possible(i int) []int {
	out := make([]int, 0, wv.remaining[i])
	base := i * wv.T
	for t := 0; t < wv.T; t++ {
		if wv.possible[base+t] {
			out = append(out, t)
		}
	}
	return out
}

// Remove bans pattern t at cell i and updates the memoized scalars. It is
// idempotent: removing an already-banned pattern returns false and changes
// nothing.
func (wv *Wave) Remove(i, t int) bool {
	idx := i*wv.T + t
	if !wv.possible[idx] {
		return false
	}
	wv.possible[idx] = false
	wv.remaining[i]--
	wv.plogpSums[i] -= wv.plogp[t]
	wv.sums[i] -= wv.probs[t]

	if wv.sums[i] > 0 {
		wv.logSums[i] = math.Log(wv.sums[i])
		wv.entropies[i] = wv.logSums[i] - wv.plogpSums[i]/wv.sums[i]
	} else {
		wv.entropies[i] = 0
	}
	return true
}

// Collapse picks one pattern at cell i by weighted random draw and removes
// every other still-possible pattern there. It returns the chosen pattern and
// the list of removed ones (valid until the next Collapse call); the caller
// must push each removal into the propagator. Returns -1 when the cell has
// no possible patterns left.
func (wv *Wave) Collapse(i int, rng *Random) (int, []int) {
	if wv.remaining[i] == 0 {
		return -1, nil
	}

	target := rng.Next() * wv.sums[i]
	base := i * wv.T
	chosen := -1
	acc := 0.0
	for t := 0; t < wv.T; t++ {
		if !wv.possible[base+t] {
			continue
		}
		acc += wv.probs[t]
		if acc >= target {
			chosen = t
			break
		}
	}
	if chosen == -1 {
		// Rounding pushed the target past the total; take the last option.
		for t := wv.T - 1; t >= 0; t-- {
			if wv.possible[base+t] {
				chosen = t
				break
			}
		}
	}

	wv.collapseScratch = wv.collapseScratch[:0]
	for t := 0; t < wv.T; t++ {
		if t != chosen && wv.possible[base+t] {
			wv.Remove(i, t)
			wv.collapseScratch = append(wv.collapseScratch, t)
		}
	}
	return chosen, wv.collapseScratch
}
